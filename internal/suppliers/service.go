package suppliers

import (
	"context"
	"fmt"

	"github.com/meridian-erp/meridian-erp/internal/shared"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create persists a new supplier; the id is always storage-assigned.
func (s *Service) Create(ctx context.Context, req CreateSupplierRequest) (Supplier, error) {
	created, err := s.repo.Create(ctx, Supplier{Name: req.Name, TaxID: req.TaxID})
	if err != nil {
		return Supplier{}, fmt.Errorf("create supplier: %w", err)
	}
	return created, nil
}

func (s *Service) Get(ctx context.Context, id int64) (Supplier, error) {
	return s.repo.Get(ctx, id)
}

// Update merges the partial request onto the stored record.
func (s *Service) Update(ctx context.Context, id int64, req UpdateSupplierRequest) (Supplier, error) {
	stored, err := s.repo.Get(ctx, id)
	if err != nil {
		return Supplier{}, fmt.Errorf("get supplier: %w", err)
	}

	updated, err := s.repo.Update(ctx, req.apply(stored, id))
	if err != nil {
		return Supplier{}, fmt.Errorf("update supplier: %w", err)
	}
	return updated, nil
}

// Exists reports whether a supplier with the given id is on record.
func (s *Service) Exists(ctx context.Context, id int64) (bool, error) {
	return s.repo.Exists(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) Search(ctx context.Context, filter Filter, page shared.PageRequest) ([]Supplier, int, error) {
	return s.repo.Search(ctx, filter.Normalize(), page)
}
