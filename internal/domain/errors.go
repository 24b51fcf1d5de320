package domain

import "errors"

// Sentinel errors for domain operations
var (
	// ErrCorruptCart indicates the persisted cart could not be decoded
	ErrCorruptCart = errors.New("persisted cart is corrupt")

	// ErrCatalogUnavailable indicates the product catalog could not be fetched
	ErrCatalogUnavailable = errors.New("product catalog is unavailable")

	// ErrProductNotFound indicates the requested product does not exist
	ErrProductNotFound = errors.New("product not found")
)
