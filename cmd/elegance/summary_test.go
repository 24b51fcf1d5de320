package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/mmcdole/elegance/internal/cart"
	"github.com/mmcdole/elegance/internal/domain"
	"github.com/mmcdole/elegance/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintCartSummaryEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printCartSummary(&buf, cart.Snapshot{}))
	assert.Equal(t, "Sua sacola está vazia\n", buf.String())
}

func TestPrintCartSummary(t *testing.T) {
	snap := cart.Snapshot{
		Items: []domain.LineItem{
			{ID: "1", Name: "Vestido Midi", Price: 1200, Quantity: 2, SelectedSize: "M", SelectedColor: "Preto"},
			{ID: "2", Name: "Blusa", Price: 99.9, Quantity: 1},
		},
		Count:    3,
		Subtotal: 2499.9,
		Total:    2499.9,
	}

	var buf bytes.Buffer
	require.NoError(t, printCartSummary(&buf, snap))

	out := buf.String()
	assert.Contains(t, out, "Minha Sacola (3)")
	assert.Contains(t, out, "M / Preto")
	assert.Contains(t, out, "R$ 2.400,00")
	assert.Contains(t, out, "Subtotal  R$ 2.499,90")
	assert.Contains(t, out, "Frete     Grátis")
}

func TestExportImportCart(t *testing.T) {
	s, err := store.NewCartStore(filepath.Join(t.TempDir(), "cart.db"))
	require.NoError(t, err)
	defer s.Close()

	var buf bytes.Buffer
	require.NoError(t, exportCart(&buf, s))
	assert.Equal(t, "[]\n", buf.String())

	path := filepath.Join(t.TempDir(), "cart.json")
	data := `[{"id":7,"name":"Saia","price":79.9,"image":"","quantity":2}]`
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))
	require.NoError(t, importCart(path, s))

	items, err := s.Load()
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, domain.ProductID("7"), items[0].ID)

	buf.Reset()
	require.NoError(t, exportCart(&buf, s))
	assert.Equal(t, data+"\n", buf.String())
}

func TestImportCartRejectsMalformedFile(t *testing.T) {
	s, err := store.NewCartStore("")
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "cart.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	err = importCart(path, s)
	assert.ErrorIs(t, err, domain.ErrCorruptCart)
	assert.Nil(t, s.Raw())
}
