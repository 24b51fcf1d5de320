package catalog

import (
	"strings"

	"github.com/mmcdole/elegance/internal/domain"
)

// MapProducts converts catalog DTOs to domain products, skipping records
// without an ID or name.
func MapProducts(dtos []ProductDTO) []domain.Product {
	products := make([]domain.Product, 0, len(dtos))
	for _, d := range dtos {
		if d.ID == "" || strings.TrimSpace(d.Name) == "" {
			continue
		}
		products = append(products, MapProduct(d))
	}
	return products
}

// MapProduct converts a single DTO
func MapProduct(d ProductDTO) domain.Product {
	price := d.Price
	if price < 0 {
		price = 0
	}
	return domain.Product{
		ID:          d.ID,
		Name:        strings.TrimSpace(d.Name),
		Price:       price,
		OldPrice:    d.OldPrice,
		Image:       d.Image,
		Tag:         d.Tag,
		IsNew:       d.IsNew,
		Discount:    d.Discount,
		Description: d.Description,
		Sizes:       splitOptions(d.Sizes),
		Colors:      splitOptions(d.Colors),
	}
}

// splitOptions splits a comma-separated option list, trimming entries and
// dropping empty ones.
func splitOptions(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
