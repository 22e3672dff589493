package order

import (
	"context"
	"errors"
	"time"
)

// ErrEmptyOrder is returned when PlaceOrder is called with no line items.
var ErrEmptyOrder = errors.New("order: at least one item is required")

// Service defines order management business logic.
type Service interface {
	// ListOrders returns all orders, most recent first.
	ListOrders(ctx context.Context) ([]Order, error)

	// PlaceOrder totals the items at their snapshot prices, creates the
	// order as Pending, and decrements catalog stock in the same
	// transaction. Every line quantity must be at least 1; the customer
	// name is validated by the caller.
	PlaceOrder(ctx context.Context, customerName string, items []LineItem) (*Order, error)

	// UpdateStatus sets the status of an existing order. Any of the three
	// statuses may follow any other.
	UpdateStatus(ctx context.Context, id string, status OrderStatus) (*Order, error)
}

type service struct{ repo Repository }

func NewService(repo Repository) Service { return &service{repo: repo} }

func (s *service) ListOrders(ctx context.Context) ([]Order, error) {
	return s.repo.List(ctx)
}

func (s *service) PlaceOrder(ctx context.Context, customerName string, items []LineItem) (*Order, error) {
	if len(items) == 0 {
		return nil, ErrEmptyOrder
	}
	total := 0.0
	for _, item := range items {
		total += item.Product.Price * float64(item.Quantity)
	}
	o := &Order{
		CustomerName: customerName,
		Date:         time.Now().Format("2006-01-02"),
		Total:        total,
		Status:       StatusPending,
		Items:        items,
	}
	if err := s.repo.Place(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}

func (s *service) UpdateStatus(ctx context.Context, id string, status OrderStatus) (*Order, error) {
	return s.repo.UpdateStatus(ctx, id, status)
}
