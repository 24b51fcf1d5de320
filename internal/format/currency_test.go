package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCurrency(t *testing.T) {
	cases := map[float64]string{
		0:      "R$ 0,00",
		189.9:  "R$ 189,90",
		100:    "R$ 100,00",
		1234.5: "R$ 1.234,50",
		1e6:    "R$ 1.000.000,00",
		-49.99: "-R$ 49,99",
	}
	for in, want := range cases {
		assert.Equal(t, want, Currency(in), "Currency(%v)", in)
	}
}

func TestDiscount(t *testing.T) {
	assert.Equal(t, "-30%", Discount(30))
	assert.Empty(t, Discount(0))
}
