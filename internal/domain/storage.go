package domain

import "context"

// CartStore persists the cart line items under a single fixed key.
type CartStore interface {
	// Load returns the persisted items. Items is always usable (empty on a
	// missing key or corrupt data); a non-nil error reports corruption.
	Load() ([]LineItem, error)

	// Save overwrites the persisted items
	Save(items []LineItem) error

	// Reset removes the persisted entry
	Reset() error

	Close() error
}

// CatalogRepository provides the remote product list
type CatalogRepository interface {
	// Products returns every product in catalog order
	Products(ctx context.Context) ([]Product, error)
}
