package cart_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sanvicreation/boutique-backend/internal/kv"
	"github.com/sanvicreation/boutique-backend/internal/modules/cart"
	"github.com/sanvicreation/boutique-backend/internal/modules/catalog"
	"github.com/sanvicreation/boutique-backend/internal/modules/order"
)

type fixture struct {
	products catalog.Service
	orders   order.Service
	carts    cart.Service
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := kv.NewMemory()
	products := catalog.NewService(catalog.NewKVRepository(store))
	orders := order.NewService(order.NewKVRepository(store))
	return &fixture{
		products: products,
		orders:   orders,
		carts:    cart.NewService(products, orders),
	}
}

func (f *fixture) product(t *testing.T, name string, price float64, stock int) catalog.Product {
	t.Helper()
	p, err := f.products.CreateProduct(context.Background(), catalog.ProductRequest{Name: name, Price: price, Stock: stock})
	require.NoError(t, err)
	return *p
}

func TestAddItemMergesLines(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	tee := f.product(t, "Tee", 25, 50)
	c := f.carts.CreateCart()

	_, err := f.carts.AddItem(ctx, c.ID, tee.ID, 1)
	require.NoError(t, err)
	got, err := f.carts.AddItem(ctx, c.ID, tee.ID, 2)
	require.NoError(t, err)

	require.Len(t, got.Items, 1)
	assert.Equal(t, 3, got.Items[0].Quantity)
	assert.Equal(t, 75.00, got.Total)
}

func TestAddItemUnknownProduct(t *testing.T) {
	f := newFixture(t)
	c := f.carts.CreateCart()
	_, err := f.carts.AddItem(context.Background(), c.ID, 42, 1)
	assert.ErrorIs(t, err, catalog.ErrNotFound)
}

func TestAddItemRejectsNonPositiveQuantity(t *testing.T) {
	f := newFixture(t)
	c := f.carts.CreateCart()
	_, err := f.carts.AddItem(context.Background(), c.ID, 1, 0)
	assert.ErrorIs(t, err, cart.ErrBadQuantity)
}

func TestSetQuantityToZeroRemovesLine(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	tee := f.product(t, "Tee", 25, 50)
	jeans := f.product(t, "Jeans", 75, 30)
	c := f.carts.CreateCart()

	_, err := f.carts.AddItem(ctx, c.ID, tee.ID, 2)
	require.NoError(t, err)
	_, err = f.carts.AddItem(ctx, c.ID, jeans.ID, 1)
	require.NoError(t, err)

	got, err := f.carts.SetQuantity(ctx, c.ID, tee.ID, 0)
	require.NoError(t, err)
	require.Len(t, got.Items, 1)
	assert.Equal(t, jeans.ID, got.Items[0].Product.ID)
	assert.Equal(t, 75.00, got.Total)
}

func TestCheckout(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	tee := f.product(t, "Tee", 25, 50)
	c := f.carts.CreateCart()

	_, err := f.carts.AddItem(ctx, c.ID, tee.ID, 2)
	require.NoError(t, err)

	o, err := f.carts.Checkout(ctx, c.ID, "Jane Smith")
	require.NoError(t, err)
	assert.Equal(t, "ORD-001", o.ID)
	assert.Equal(t, 50.00, o.Total)

	// The cart is gone once its order is placed.
	_, err = f.carts.GetCart(c.ID)
	assert.ErrorIs(t, err, cart.ErrNotFound)

	p, err := f.products.GetProduct(ctx, tee.ID)
	require.NoError(t, err)
	assert.Equal(t, 48, p.Stock)
}

func TestCheckoutRequiresCustomerName(t *testing.T) {
	f := newFixture(t)
	c := f.carts.CreateCart()
	_, err := f.carts.Checkout(context.Background(), c.ID, "   ")
	assert.ErrorIs(t, err, cart.ErrCustomerName)
}

func TestCheckoutEmptyCart(t *testing.T) {
	f := newFixture(t)
	c := f.carts.CreateCart()
	_, err := f.carts.Checkout(context.Background(), c.ID, "Jane")
	assert.ErrorIs(t, err, order.ErrEmptyOrder)

	// A failed checkout keeps the cart around.
	_, err = f.carts.GetCart(c.ID)
	assert.NoError(t, err)
}
