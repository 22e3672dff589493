package supplier

import "context"

// Supplier is a garment supplier record. The collection is read-only in this
// system; records come from seeding or from edits made directly to the store.
type Supplier struct {
	ID            int    `json:"id"`
	Name          string `json:"name"`
	ContactPerson string `json:"contactPerson"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
}

// Repository defines read access to the supplier collection.
type Repository interface {
	List(ctx context.Context) ([]Supplier, error)
}

// Service defines supplier business logic.
type Service interface {
	ListSuppliers(ctx context.Context) ([]Supplier, error)
}

type service struct{ repo Repository }

func NewService(repo Repository) Service { return &service{repo: repo} }

func (s *service) ListSuppliers(ctx context.Context) ([]Supplier, error) {
	return s.repo.List(ctx)
}
