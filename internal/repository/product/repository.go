package product

import (
	"context"

	"product-catalog/internal/domain"
)

// ListFilter narrows List results. A nil price bound imposes no constraint;
// an empty Category matches everything.
type ListFilter struct {
	Category string
	MinPrice *float64
	MaxPrice *float64
	Skip     int64
	Limit    int64
}

type Repository interface {
	List(ctx context.Context, f ListFilter) ([]domain.Product, error)
	Search(ctx context.Context, q string, skip, limit int64) ([]domain.Product, error)
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	GetBySKU(ctx context.Context, sku string) (*domain.Product, error)
	Insert(ctx context.Context, p domain.Product) (*domain.Product, error)
	Update(ctx context.Context, id string, fields map[string]interface{}) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
}
