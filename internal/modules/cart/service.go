package cart

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/sanvicreation/boutique-backend/internal/modules/catalog"
	"github.com/sanvicreation/boutique-backend/internal/modules/order"
)

var (
	// ErrNotFound is returned for an unknown or already checked-out cart.
	ErrNotFound = errors.New("cart: cart not found")
	// ErrBadQuantity is returned when an added line would start below one.
	ErrBadQuantity = errors.New("cart: quantity must be at least 1")
	// ErrCustomerName is returned when checkout is attempted without a name.
	ErrCustomerName = errors.New("cart: customer name is required")
)

// Service manages transient carts and hands completed ones to the order
// service at checkout.
type Service interface {
	// CreateCart opens an empty cart and returns it with a fresh id.
	CreateCart() *Cart

	// GetCart returns a snapshot of the cart with the given id.
	GetCart(id string) (*Cart, error)

	// AddItem snapshots the product into the cart, merging quantity into an
	// existing line for the same product.
	AddItem(ctx context.Context, cartID string, productID int, quantity int) (*Cart, error)

	// SetQuantity replaces a line's quantity. Zero or below removes the
	// line entirely; a cart never holds a non-positive quantity.
	SetQuantity(ctx context.Context, cartID string, productID int, quantity int) (*Cart, error)

	// Checkout places the order for the cart's items and discards the cart.
	Checkout(ctx context.Context, cartID string, customerName string) (*order.Order, error)
}

type service struct {
	mu       sync.Mutex
	carts    map[string]*Cart
	products catalog.Service
	orders   order.Service
}

func NewService(products catalog.Service, orders order.Service) Service {
	return &service{
		carts:    map[string]*Cart{},
		products: products,
		orders:   orders,
	}
}

func (s *service) CreateCart() *Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := &Cart{ID: uuid.NewString()}
	s.carts[c.ID] = c
	return snapshot(c)
}

func (s *service) GetCart(id string) (*Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.carts[id]
	if !ok {
		return nil, ErrNotFound
	}
	return snapshot(c), nil
}

func (s *service) AddItem(ctx context.Context, cartID string, productID int, quantity int) (*Cart, error) {
	if quantity < 1 {
		return nil, ErrBadQuantity
	}
	p, err := s.products.GetProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.carts[cartID]
	if !ok {
		return nil, ErrNotFound
	}
	for i := range c.Items {
		if c.Items[i].Product.ID == productID {
			c.Items[i].Quantity += quantity
			c.recalc()
			return snapshot(c), nil
		}
	}
	c.Items = append(c.Items, order.LineItem{Product: *p, Quantity: quantity})
	c.recalc()
	return snapshot(c), nil
}

func (s *service) SetQuantity(ctx context.Context, cartID string, productID int, quantity int) (*Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.carts[cartID]
	if !ok {
		return nil, ErrNotFound
	}
	for i := range c.Items {
		if c.Items[i].Product.ID != productID {
			continue
		}
		if quantity <= 0 {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
		} else {
			c.Items[i].Quantity = quantity
		}
		c.recalc()
		return snapshot(c), nil
	}
	return nil, catalog.ErrNotFound
}

func (s *service) Checkout(ctx context.Context, cartID string, customerName string) (*order.Order, error) {
	if strings.TrimSpace(customerName) == "" {
		return nil, ErrCustomerName
	}

	s.mu.Lock()
	c, ok := s.carts[cartID]
	if !ok {
		s.mu.Unlock()
		return nil, ErrNotFound
	}
	items := append([]order.LineItem(nil), c.Items...)
	s.mu.Unlock()

	o, err := s.orders.PlaceOrder(ctx, customerName, items)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	delete(s.carts, cartID)
	s.mu.Unlock()
	return o, nil
}

func snapshot(c *Cart) *Cart {
	out := &Cart{ID: c.ID, Total: c.Total, Items: append([]order.LineItem{}, c.Items...)}
	return out
}
