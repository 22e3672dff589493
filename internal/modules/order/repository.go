package order

import (
	"context"
	"errors"
)

// ErrNotFound is returned when no order has the requested id.
var ErrNotFound = errors.New("order: order not found")

// Repository defines data access for orders.
type Repository interface {
	// List returns all orders, most recent first.
	List(ctx context.Context) ([]Order, error)

	// Place atomically assigns the order id from the persisted counter,
	// prepends the order to the collection, and decrements stock for every
	// line item whose product still exists. Either all of those writes
	// commit or none do.
	Place(ctx context.Context, o *Order) error

	// UpdateStatus replaces the status of the order with the given id and
	// returns the updated record. ErrNotFound when there is none.
	UpdateStatus(ctx context.Context, id string, status OrderStatus) (*Order, error)
}
