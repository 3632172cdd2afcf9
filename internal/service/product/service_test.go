package product

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"product-catalog/internal/domain"
	productrepo "product-catalog/internal/repository/product"
)

type stubRepo struct {
	bySKU        *domain.Product
	bySKUErr     error
	byID         *domain.Product
	byIDErr      error
	inserted     *domain.Product
	insertErr    error
	lastInserted domain.Product
	updated      *domain.Product
	updateErr    error
	lastFields   map[string]interface{}
	deleteErr    error
	listResult   []domain.Product
	listErr      error
	lastFilter   productrepo.ListFilter
}

func (s *stubRepo) List(_ context.Context, f productrepo.ListFilter) ([]domain.Product, error) {
	s.lastFilter = f
	return s.listResult, s.listErr
}

func (s *stubRepo) Search(_ context.Context, _ string, _, _ int64) ([]domain.Product, error) {
	return s.listResult, s.listErr
}

func (s *stubRepo) GetByID(_ context.Context, _ string) (*domain.Product, error) {
	return s.byID, s.byIDErr
}

func (s *stubRepo) GetBySKU(_ context.Context, _ string) (*domain.Product, error) {
	return s.bySKU, s.bySKUErr
}

func (s *stubRepo) Insert(_ context.Context, p domain.Product) (*domain.Product, error) {
	s.lastInserted = p
	if s.insertErr != nil {
		return nil, s.insertErr
	}
	if s.inserted != nil {
		return s.inserted, nil
	}
	p.ID = primitive.NewObjectID()
	return &p, nil
}

func (s *stubRepo) Update(_ context.Context, _ string, fields map[string]interface{}) (*domain.Product, error) {
	s.lastFields = fields
	return s.updated, s.updateErr
}

func (s *stubRepo) Delete(_ context.Context, _ string) error {
	return s.deleteErr
}

func TestCreate_SetsTimestampsAndAssignsID(t *testing.T) {
	repo := &stubRepo{bySKUErr: domain.ErrNotFound}
	svc := New(repo, zerolog.Nop())

	before := time.Now().UTC()
	created, err := svc.Create(context.Background(), CreateInput{
		Name:        "Widget",
		Description: "A widget",
		Price:       9.99,
		Category:    "tools",
		Inventory:   5,
		SKU:         "W-1",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.ID.IsZero() {
		t.Fatalf("expected assigned id")
	}
	if created.CreatedAt.Before(before) || !created.CreatedAt.Equal(created.UpdatedAt) {
		t.Fatalf("expected fresh equal timestamps, got %v / %v", created.CreatedAt, created.UpdatedAt)
	}
	if repo.lastInserted.SKU != "W-1" || repo.lastInserted.Inventory != 5 {
		t.Fatalf("unexpected inserted product %+v", repo.lastInserted)
	}
}

func TestCreate_DuplicateSKU(t *testing.T) {
	repo := &stubRepo{bySKU: &domain.Product{SKU: "W-1"}}
	svc := New(repo, zerolog.Nop())

	_, err := svc.Create(context.Background(), CreateInput{SKU: "W-1"})
	if !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}

func TestCreate_SKUCheckFailure(t *testing.T) {
	repo := &stubRepo{bySKUErr: errors.New("boom")}
	svc := New(repo, zerolog.Nop())

	_, err := svc.Create(context.Background(), CreateInput{SKU: "W-1"})
	if err == nil || errors.Is(err, domain.ErrConflict) {
		t.Fatalf("expected store error to surface, got %v", err)
	}
}

func TestUpdate_EmptyPayload(t *testing.T) {
	repo := &stubRepo{byID: &domain.Product{}}
	svc := New(repo, zerolog.Nop())

	_, err := svc.Update(context.Background(), primitive.NewObjectID().Hex(), UpdateInput{})
	if !errors.Is(err, domain.ErrEmptyUpdate) {
		t.Fatalf("expected ErrEmptyUpdate, got %v", err)
	}
}

func TestUpdate_NotFound(t *testing.T) {
	repo := &stubRepo{byIDErr: domain.ErrNotFound}
	svc := New(repo, zerolog.Nop())

	name := "New name"
	_, err := svc.Update(context.Background(), primitive.NewObjectID().Hex(), UpdateInput{Name: &name})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUpdate_SendsOnlyProvidedFieldsPlusUpdatedAt(t *testing.T) {
	repo := &stubRepo{
		byID:    &domain.Product{},
		updated: &domain.Product{Inventory: 3},
	}
	svc := New(repo, zerolog.Nop())

	inventory := 3
	updated, err := svc.Update(context.Background(), primitive.NewObjectID().Hex(), UpdateInput{Inventory: &inventory})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Inventory != 3 {
		t.Fatalf("unexpected result %+v", updated)
	}
	if len(repo.lastFields) != 2 {
		t.Fatalf("expected inventory and updated_at only, got %v", repo.lastFields)
	}
	if repo.lastFields["inventory"] != 3 {
		t.Fatalf("expected inventory=3, got %v", repo.lastFields["inventory"])
	}
	if _, ok := repo.lastFields["updated_at"].(time.Time); !ok {
		t.Fatalf("expected updated_at to be set, got %v", repo.lastFields["updated_at"])
	}
}

func TestUpdate_NoChanges(t *testing.T) {
	repo := &stubRepo{
		byID:      &domain.Product{},
		updateErr: domain.ErrNoChanges,
	}
	svc := New(repo, zerolog.Nop())

	name := "Same"
	_, err := svc.Update(context.Background(), primitive.NewObjectID().Hex(), UpdateInput{Name: &name})
	if !errors.Is(err, domain.ErrNoChanges) {
		t.Fatalf("expected ErrNoChanges, got %v", err)
	}
}

func TestDelete_PassesThroughNotFound(t *testing.T) {
	repo := &stubRepo{deleteErr: domain.ErrNotFound}
	svc := New(repo, zerolog.Nop())

	if err := svc.Delete(context.Background(), primitive.NewObjectID().Hex()); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestList_ForwardsFilter(t *testing.T) {
	repo := &stubRepo{}
	svc := New(repo, zerolog.Nop())

	min := 10.0
	_, err := svc.List(context.Background(), productrepo.ListFilter{Category: "tools", MinPrice: &min, Skip: 5, Limit: 20})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if repo.lastFilter.Category != "tools" || repo.lastFilter.Skip != 5 || repo.lastFilter.Limit != 20 {
		t.Fatalf("unexpected filter %+v", repo.lastFilter)
	}
}
