package product

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"product-catalog/internal/domain"
	productrepo "product-catalog/internal/repository/product"
)

// Service owns the product mutation contract: SKU uniqueness on create,
// partial-merge semantics on update, service-set timestamps everywhere.
type Service struct {
	repo   productrepo.Repository
	logger zerolog.Logger
}

func New(repo productrepo.Repository, logger zerolog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

type CreateInput struct {
	Name        string
	Description string
	Price       float64
	Category    string
	Inventory   int
	SKU         string
}

// UpdateInput carries the fields of a partial update; nil fields are left
// untouched. SKU is immutable after creation and has no slot here.
type UpdateInput struct {
	Name        *string
	Description *string
	Price       *float64
	Category    *string
	Inventory   *int
}

func (in UpdateInput) fields() map[string]interface{} {
	fields := map[string]interface{}{}
	if in.Name != nil {
		fields["name"] = *in.Name
	}
	if in.Description != nil {
		fields["description"] = *in.Description
	}
	if in.Price != nil {
		fields["price"] = *in.Price
	}
	if in.Category != nil {
		fields["category"] = *in.Category
	}
	if in.Inventory != nil {
		fields["inventory"] = *in.Inventory
	}
	return fields
}

func (s *Service) List(ctx context.Context, f productrepo.ListFilter) ([]domain.Product, error) {
	products, err := s.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Int("count", len(products)).Msg("products retrieved")
	return products, nil
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Product, error) {
	return s.repo.GetByID(ctx, id)
}

// Create rejects the payload when another product already carries the SKU.
// The check is advisory: two concurrent creates with the same SKU can both
// pass it (there is no unique index closing the race).
func (s *Service) Create(ctx context.Context, in CreateInput) (*domain.Product, error) {
	_, err := s.repo.GetBySKU(ctx, in.SKU)
	if err == nil {
		return nil, domain.ErrConflict
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("check sku: %w", err)
	}

	now := time.Now().UTC()
	created, err := s.repo.Insert(ctx, domain.Product{
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Category:    in.Category,
		Inventory:   in.Inventory,
		SKU:         in.SKU,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("product_id", created.ID.Hex()).
		Str("sku", created.SKU).
		Msg("product created")
	return created, nil
}

func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (*domain.Product, error) {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return nil, err
	}

	fields := in.fields()
	if len(fields) == 0 {
		return nil, domain.ErrEmptyUpdate
	}
	fields["updated_at"] = time.Now().UTC()

	updated, err := s.repo.Update(ctx, id, fields)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("product_id", id).
		Int("fields", len(fields)).
		Msg("product updated")
	return updated, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("product_id", id).Msg("product deleted")
	return nil
}

func (s *Service) Search(ctx context.Context, q string, skip, limit int64) ([]domain.Product, error) {
	products, err := s.repo.Search(ctx, q, skip, limit)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("query", q).Int("results", len(products)).Msg("product search performed")
	return products, nil
}
