package dashboard_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sanvicreation/boutique-backend/internal/kv"
	"github.com/sanvicreation/boutique-backend/internal/modules/catalog"
	"github.com/sanvicreation/boutique-backend/internal/modules/dashboard"
	"github.com/sanvicreation/boutique-backend/internal/modules/order"
	"github.com/sanvicreation/boutique-backend/internal/modules/sales"
)

func TestOverview(t *testing.T) {
	store := kv.NewMemory()
	ctx := context.Background()

	catalogRepo := catalog.NewKVRepository(store)
	orderRepo := order.NewKVRepository(store)
	salesRepo := sales.NewKVRepository(store)

	products := catalog.NewService(catalogRepo)
	tee, err := products.CreateProduct(ctx, catalog.ProductRequest{Name: "Tee", Price: 25, Stock: 50})
	require.NoError(t, err)
	jacket, err := products.CreateProduct(ctx, catalog.ProductRequest{Name: "Jacket", Price: 250, Stock: 15})
	require.NoError(t, err)

	orders := order.NewService(orderRepo)
	_, err = orders.PlaceOrder(ctx, "A", []order.LineItem{{Product: *tee, Quantity: 2}})
	require.NoError(t, err)
	_, err = orders.PlaceOrder(ctx, "B", []order.LineItem{{Product: *jacket, Quantity: 1}})
	require.NoError(t, err)

	series := []sales.Point{{Month: "Jul", Sales: 4800}, {Month: "Aug", Sales: 3800}}
	err = store.Update(ctx, func(tx kv.Tx) error { return sales.WriteSales(tx, series) })
	require.NoError(t, err)

	ov, err := dashboard.NewService(catalogRepo, orderRepo, salesRepo).Overview(ctx)
	require.NoError(t, err)

	assert.Equal(t, 300.00, ov.TotalSales)
	assert.Equal(t, 2, ov.TotalOrders)
	assert.Equal(t, 2, ov.TotalProducts)
	assert.Equal(t, 1, ov.LowStockCount, "jacket stock fell below 20")
	assert.Equal(t, series, ov.MonthlySales)
}

func TestOverviewEmptyStore(t *testing.T) {
	store := kv.NewMemory()
	svc := dashboard.NewService(
		catalog.NewKVRepository(store),
		order.NewKVRepository(store),
		sales.NewKVRepository(store),
	)

	ov, err := svc.Overview(context.Background())
	require.NoError(t, err)
	assert.Zero(t, ov.TotalSales)
	assert.Zero(t, ov.TotalOrders)
	assert.Zero(t, ov.TotalProducts)
	assert.Zero(t, ov.LowStockCount)
	assert.NotNil(t, ov.MonthlySales)
}
