package catalog

import (
	"context"
	"errors"
)

// ErrNotFound is returned when no product has the requested id.
var ErrNotFound = errors.New("catalog: product not found")

// Repository defines the interface for product data storage.
type Repository interface {
	List(ctx context.Context) ([]Product, error)
	GetByID(ctx context.Context, id int) (*Product, error)

	// Create assigns the next id (max existing + 1) and appends the product.
	Create(ctx context.Context, p *Product) error

	// Update replaces the stored product with a matching id. ErrNotFound when
	// there is none; the collection is left untouched either way.
	Update(ctx context.Context, p *Product) error

	// Delete removes the product with the given id. Deleting an absent id is
	// a no-op, so the call is idempotent.
	Delete(ctx context.Context, id int) error
}
