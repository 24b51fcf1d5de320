package catalog

import (
	"encoding/json"

	"github.com/mmcdole/elegance/internal/domain"
)

// ProductDTO is a product record as served by the catalog endpoint
type ProductDTO struct {
	ID          domain.ProductID `json:"id"`
	Name        string           `json:"name"`
	Price       float64          `json:"price"`
	OldPrice    float64          `json:"oldPrice,omitempty"`
	Image       string           `json:"image"`
	Tag         string           `json:"tag,omitempty"`
	IsNew       bool             `json:"isNew,omitempty"`
	Discount    int              `json:"discount,omitempty"`
	Description string           `json:"description,omitempty"`
	Sizes       string           `json:"sizes,omitempty"`  // Comma-separated, e.g. "P, M, G"
	Colors      string           `json:"colors,omitempty"` // Comma-separated
}

// productEnvelope is the wrapped response shape {"products": [...]}
type productEnvelope struct {
	Products []ProductDTO `json:"products"`
}

// decodeProducts accepts a bare array or an envelope object
func decodeProducts(body []byte) ([]ProductDTO, error) {
	var list []ProductDTO
	if err := json.Unmarshal(body, &list); err == nil {
		return list, nil
	}

	var env productEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, err
	}
	return env.Products, nil
}
