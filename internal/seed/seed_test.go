package seed_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sanvicreation/boutique-backend/internal/kv"
	"github.com/sanvicreation/boutique-backend/internal/modules/catalog"
	"github.com/sanvicreation/boutique-backend/internal/modules/order"
	"github.com/sanvicreation/boutique-backend/internal/modules/sales"
	"github.com/sanvicreation/boutique-backend/internal/modules/supplier"
	"github.com/sanvicreation/boutique-backend/internal/seed"
)

func TestEnsureSeedsEmptyStore(t *testing.T) {
	store := kv.NewMemory()
	ctx := context.Background()
	require.NoError(t, seed.Ensure(ctx, store))

	products, err := catalog.NewKVRepository(store).List(ctx)
	require.NoError(t, err)
	assert.Len(t, products, 8)

	orders, err := order.NewKVRepository(store).List(ctx)
	require.NoError(t, err)
	assert.Len(t, orders, 4)
	assert.Equal(t, "ORD-001", orders[3].ID)

	suppliers, err := supplier.NewKVRepository(store).List(ctx)
	require.NoError(t, err)
	assert.Len(t, suppliers, 3)

	points, err := sales.NewKVRepository(store).List(ctx)
	require.NoError(t, err)
	assert.Len(t, points, 6)
}

func TestEnsureIsIdempotentPerKey(t *testing.T) {
	store := kv.NewMemory()
	ctx := context.Background()
	require.NoError(t, seed.Ensure(ctx, store))

	repo := catalog.NewKVRepository(store)
	require.NoError(t, repo.Delete(ctx, 1))

	require.NoError(t, seed.Ensure(ctx, store))
	products, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, products, 7, "present keys must not be re-seeded")
}

func TestEnsureSeedsEmptiedCollectionOnlyWhenKeyMissing(t *testing.T) {
	store := kv.NewMemory()
	ctx := context.Background()

	// An explicitly empty collection is a present key and stays empty.
	err := store.Update(ctx, func(tx kv.Tx) error {
		return catalog.WriteProducts(tx, []catalog.Product{})
	})
	require.NoError(t, err)

	require.NoError(t, seed.Ensure(ctx, store))
	products, err := catalog.NewKVRepository(store).List(ctx)
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestSeededCounterContinuesSequence(t *testing.T) {
	store := kv.NewMemory()
	ctx := context.Background()
	require.NoError(t, seed.Ensure(ctx, store))

	products, err := catalog.NewKVRepository(store).List(ctx)
	require.NoError(t, err)
	svc := order.NewService(order.NewKVRepository(store))

	o, err := svc.PlaceOrder(ctx, "New Customer", []order.LineItem{{Product: products[0], Quantity: 1}})
	require.NoError(t, err)
	assert.Equal(t, "ORD-005", o.ID)
}
