package catalog

import "context"

// Service defines catalog business logic.
type Service interface {
	ListProducts(ctx context.Context) ([]Product, error)
	GetProduct(ctx context.Context, id int) (*Product, error)
	CreateProduct(ctx context.Context, req ProductRequest) (*Product, error)
	UpdateProduct(ctx context.Context, id int, req ProductRequest) (*Product, error)
	DeleteProduct(ctx context.Context, id int) error
}

// ProductRequest holds the data for creating or replacing a product. Field
// validation (required name, non-negative price and stock) is the caller's
// responsibility; the store persists whatever it is handed.
type ProductRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	ImageURL    string  `json:"imageUrl"`
	Category    string  `json:"category"`
	Stock       int     `json:"stock"`
}

type service struct{ repo Repository }

func NewService(repo Repository) Service { return &service{repo: repo} }

func (s *service) ListProducts(ctx context.Context) ([]Product, error) {
	return s.repo.List(ctx)
}

func (s *service) GetProduct(ctx context.Context, id int) (*Product, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) CreateProduct(ctx context.Context, req ProductRequest) (*Product, error) {
	p := &Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
		Category:    req.Category,
		Stock:       req.Stock,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *service) UpdateProduct(ctx context.Context, id int, req ProductRequest) (*Product, error) {
	p := &Product{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
		Category:    req.Category,
		Stock:       req.Stock,
	}
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *service) DeleteProduct(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}
