package sales

import "context"

// Point is one month of aggregate sales. The series is a precomputed
// read-only dataset, independent of the order collection.
type Point struct {
	Month string  `json:"month"`
	Sales float64 `json:"sales"`
}

// Repository defines read access to the sales series.
type Repository interface {
	List(ctx context.Context) ([]Point, error)
}

// Service defines sales reporting logic.
type Service interface {
	ListSalesData(ctx context.Context) ([]Point, error)
}

type service struct{ repo Repository }

func NewService(repo Repository) Service { return &service{repo: repo} }

func (s *service) ListSalesData(ctx context.Context) ([]Point, error) {
	return s.repo.List(ctx)
}
