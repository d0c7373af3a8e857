package sales

import (
	"context"
	"log/slog"

	"github.com/meridian-erp/meridian-erp/internal/products"
	"github.com/meridian-erp/meridian-erp/internal/shared"
)

// ProductCatalog resolves line item ids to full product records, in order.
type ProductCatalog interface {
	ListByIDs(ctx context.Context, ids []int64) ([]products.Product, error)
}

type Service struct {
	repo    Repository
	catalog ProductCatalog
	logger  *slog.Logger
}

func NewService(repo Repository, catalog ProductCatalog, logger *slog.Logger) *Service {
	return &Service{repo: repo, catalog: catalog, logger: logger}
}

func (s *Service) Get(ctx context.Context, id int64) (Sale, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) Search(ctx context.Context, filter Filter, page shared.PageRequest) ([]Sale, int, error) {
	return s.repo.Search(ctx, filter.Normalize(), page)
}

// Create resolves the requested line items, checks the sale invariants and
// derives the total before persisting. Any id supplied by the caller is
// discarded.
func (s *Service) Create(ctx context.Context, req CreateSaleRequest) (Sale, error) {
	items, err := s.resolveItems(ctx, req.SupplierID, req.ProductIDs)
	if err != nil {
		return Sale{}, err
	}

	sale := Sale{
		Total:        computeTotal(items),
		PurchaseDate: req.PurchaseDate,
		CustomerID:   req.CustomerID,
		SupplierID:   req.SupplierID,
		Products:     items,
	}
	created, err := s.repo.Create(ctx, sale)
	if err != nil {
		return Sale{}, err
	}
	s.logger.Info("sale created", "sale_id", created.ID, "supplier_id", created.SupplierID, "total", created.Total)
	return created, nil
}

// Update merges the partial record onto the stored sale, revalidates the
// invariants against the merged state and recomputes the total.
func (s *Service) Update(ctx context.Context, id int64, req UpdateSaleRequest) (Sale, error) {
	stored, err := s.repo.Get(ctx, id)
	if err != nil {
		return Sale{}, err
	}

	merged, lineIDs := req.apply(stored, id)
	items, err := s.resolveItems(ctx, merged.SupplierID, lineIDs)
	if err != nil {
		return Sale{}, err
	}
	merged.Products = items
	merged.Total = computeTotal(items)

	return s.repo.Update(ctx, merged)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) resolveItems(ctx context.Context, supplierID int64, ids []int64) ([]products.Product, error) {
	if supplierID == 0 {
		return nil, validateSale(0, nil)
	}
	if len(ids) == 0 {
		return nil, validateSale(supplierID, nil)
	}
	items, err := s.catalog.ListByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	if err := validateSale(supplierID, items); err != nil {
		return nil, err
	}
	return items, nil
}
