package dashboard

import (
	"context"

	"github.com/sanvicreation/boutique-backend/internal/modules/catalog"
	"github.com/sanvicreation/boutique-backend/internal/modules/order"
	"github.com/sanvicreation/boutique-backend/internal/modules/sales"
)

// Products with stock below this count show up in the low-stock figure.
const lowStockThreshold = 20

// Overview is the admin dashboard payload: headline figures plus the monthly
// sales series for the chart.
type Overview struct {
	TotalSales    float64       `json:"totalSales"`
	TotalOrders   int           `json:"totalOrders"`
	TotalProducts int           `json:"totalProducts"`
	LowStockCount int           `json:"lowStockCount"`
	MonthlySales  []sales.Point `json:"monthlySales"`
}

// Service computes dashboard aggregates.
type Service interface {
	Overview(ctx context.Context) (*Overview, error)
}

type service struct {
	products catalog.Repository
	orders   order.Repository
	sales    sales.Repository
}

func NewService(products catalog.Repository, orders order.Repository, salesRepo sales.Repository) Service {
	return &service{products: products, orders: orders, sales: salesRepo}
}

func (s *service) Overview(ctx context.Context) (*Overview, error) {
	products, err := s.products.List(ctx)
	if err != nil {
		return nil, err
	}
	orders, err := s.orders.List(ctx)
	if err != nil {
		return nil, err
	}
	points, err := s.sales.List(ctx)
	if err != nil {
		return nil, err
	}

	ov := &Overview{
		TotalOrders:   len(orders),
		TotalProducts: len(products),
		MonthlySales:  points,
	}
	if ov.MonthlySales == nil {
		ov.MonthlySales = []sales.Point{}
	}
	for _, o := range orders {
		ov.TotalSales += o.Total
	}
	for _, p := range products {
		if p.Stock < lowStockThreshold {
			ov.LowStockCount++
		}
	}
	return ov, nil
}
