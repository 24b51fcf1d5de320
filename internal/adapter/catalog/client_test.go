package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/mmcdole/elegance/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const productsJSON = `[
	{"id": 1, "name": "Vestido Midi Floral", "price": 189.9, "oldPrice": 259.9, "image": "https://img/1.jpg",
	 "tag": "Vestidos", "isNew": true, "discount": 27, "sizes": "P, M, G", "colors": "Azul,  Rosa ,"},
	{"id": "sku-2", "name": "Blusa de Seda", "price": 129, "image": "https://img/2.jpg"},
	{"id": 3, "name": "   ", "price": 10},
	{"name": "Sem ID", "price": 10}
]`

func serve(t *testing.T, status int, body string) (*httptest.Server, *atomic.Int32) {
	t.Helper()
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv, &hits
}

func TestProductsMapsRecords(t *testing.T) {
	srv, _ := serve(t, http.StatusOK, productsJSON)
	c := NewClient(srv.URL, time.Second, nil)

	products, err := c.Products(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 2)

	p := products[0]
	assert.Equal(t, domain.ProductID("1"), p.ID)
	assert.Equal(t, "Vestido Midi Floral", p.Name)
	assert.Equal(t, 189.9, p.Price)
	assert.Equal(t, 259.9, p.OldPrice)
	assert.True(t, p.IsNew)
	assert.Equal(t, 27, p.Discount)
	assert.Equal(t, []string{"P", "M", "G"}, p.Sizes)
	assert.Equal(t, []string{"Azul", "Rosa"}, p.Colors)
	assert.True(t, p.HasVariants())

	assert.Equal(t, domain.ProductID("sku-2"), products[1].ID)
	assert.Nil(t, products[1].Sizes)
	assert.False(t, products[1].HasVariants())
}

func TestProductsAcceptsEnvelope(t *testing.T) {
	srv, _ := serve(t, http.StatusOK, `{"products": [{"id": 9, "name": "Bolsa", "price": 99}]}`)
	c := NewClient(srv.URL, time.Second, nil)

	products, err := c.Products(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Bolsa", products[0].Name)
}

func TestProductsServerError(t *testing.T) {
	srv, _ := serve(t, http.StatusInternalServerError, "boom")
	c := NewClient(srv.URL, time.Second, nil)

	_, err := c.Products(context.Background())
	assert.ErrorIs(t, err, domain.ErrCatalogUnavailable)
}

func TestProductsMalformedBody(t *testing.T) {
	srv, _ := serve(t, http.StatusOK, "<html>")
	c := NewClient(srv.URL, time.Second, nil)

	_, err := c.Products(context.Background())
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrCatalogUnavailable)
}

func TestProductsUnreachable(t *testing.T) {
	srv, _ := serve(t, http.StatusOK, "[]")
	url := srv.URL
	srv.Close()

	c := NewClient(url, time.Second, nil)
	_, err := c.Products(context.Background())
	assert.ErrorIs(t, err, domain.ErrCatalogUnavailable)
}

func TestBreakerOpensAfterConsecutiveFailures(t *testing.T) {
	srv, hits := serve(t, http.StatusBadGateway, "")
	c := NewClient(srv.URL, time.Second, nil)

	for i := 0; i < breakerThreshold; i++ {
		_, err := c.Products(context.Background())
		require.ErrorIs(t, err, domain.ErrCatalogUnavailable)
	}
	require.Equal(t, int32(breakerThreshold), hits.Load())

	_, err := c.Products(context.Background())
	assert.ErrorIs(t, err, domain.ErrCatalogUnavailable)
	assert.Equal(t, int32(breakerThreshold), hits.Load(), "open breaker must not hit the server")
}

func TestSplitOptions(t *testing.T) {
	assert.Nil(t, splitOptions(""))
	assert.Nil(t, splitOptions("  "))
	assert.Equal(t, []string{"36", "38", "40"}, splitOptions("36,38 , 40"))
	assert.Equal(t, []string{"Único"}, splitOptions(", Único ,"))
}

func TestMapProductClampsNegativePrice(t *testing.T) {
	p := MapProduct(ProductDTO{ID: "1", Name: "X", Price: -3})
	assert.Zero(t, p.Price)
}
