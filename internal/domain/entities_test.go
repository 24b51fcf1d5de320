package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductIDAcceptsNumbersAndStrings(t *testing.T) {
	var ids []ProductID
	require.NoError(t, json.Unmarshal([]byte(`[1, "sku-7", 42]`), &ids))
	assert.Equal(t, []ProductID{"1", "sku-7", "42"}, ids)
}

func TestProductIDKeepsNumericShape(t *testing.T) {
	data, err := json.Marshal([]ProductID{"1", "sku-7", "007", "-3"})
	require.NoError(t, err)
	assert.JSONEq(t, `[1, "sku-7", "007", -3]`, string(data))
}

func TestProductIDRejectsObjects(t *testing.T) {
	var id ProductID
	assert.Error(t, json.Unmarshal([]byte(`{"id": 1}`), &id))
}

func TestLineItemVariant(t *testing.T) {
	assert.Equal(t, "M / Preto", LineItem{SelectedSize: "M", SelectedColor: "Preto"}.Variant())
	assert.Equal(t, "M", LineItem{SelectedSize: "M"}.Variant())
	assert.Equal(t, "Preto", LineItem{SelectedColor: "Preto"}.Variant())
	assert.Empty(t, LineItem{}.Variant())
}

func TestLineItemKeepsDecodedForm(t *testing.T) {
	raw := `{"id":"42","name":"Saia","price":59.9,"image":"","quantity":1,"selectedSize":"","description":"Linho & seda"}`

	var item LineItem
	require.NoError(t, json.Unmarshal([]byte(raw), &item))
	assert.Equal(t, ProductID("42"), item.ID)
	assert.Empty(t, item.SelectedSize)

	data, err := json.Marshal(item)
	require.NoError(t, err)
	assert.JSONEq(t, raw, string(data))
}

func TestLineItemFreshEncoding(t *testing.T) {
	data, err := json.Marshal(LineItem{ID: "42", Name: "Saia", Price: 59.9, Quantity: 2, SelectedColor: "Azul"})
	require.NoError(t, err)
	assert.Equal(t, `{"id":42,"name":"Saia","price":59.9,"image":"","quantity":2,"selectedColor":"Azul"}`, string(data))
}

func TestLineItemSetVariantReplacesEmptyToken(t *testing.T) {
	var item LineItem
	require.NoError(t, json.Unmarshal([]byte(`{"id":1,"name":"A","price":1,"image":"","quantity":1,"selectedSize":""}`), &item))

	item.SelectedSize = "G"
	data, err := json.Marshal(item)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":1,"name":"A","price":1,"image":"","quantity":1,"selectedSize":"G"}`, string(data))
}

func TestLineItemNullIsNoOp(t *testing.T) {
	item := LineItem{ID: "1", Quantity: 2}
	require.NoError(t, json.Unmarshal([]byte(`null`), &item))
	assert.Equal(t, LineItem{ID: "1", Quantity: 2}, item)
}
