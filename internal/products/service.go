package products

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/meridian-erp/meridian-erp/internal/shared"
)

// SupplierDirectory is the narrow slice of the supplier collaborator the
// product service depends on.
type SupplierDirectory interface {
	Exists(ctx context.Context, id int64) (bool, error)
}

type Service struct {
	repo      Repository
	suppliers SupplierDirectory
	uploadDir string
}

func NewService(repo Repository, suppliers SupplierDirectory, uploadDir string) *Service {
	return &Service{repo: repo, suppliers: suppliers, uploadDir: uploadDir}
}

// Create persists a new product. The id is storage-assigned; the supplier
// reference must be present and resolve before anything is written.
func (s *Service) Create(ctx context.Context, req CreateProductRequest) (Product, error) {
	p := Product{
		Name:        req.Name,
		Code:        req.Code,
		Price:       req.Price,
		Quantity:    req.Quantity,
		OnPromotion: req.OnPromotion,
		PromoPrice:  req.PromoPrice,
		SupplierID:  req.SupplierID,
	}

	if p.SupplierID == 0 {
		return Product{}, fmt.Errorf("%w: supplier not informed", shared.ErrDataIntegrity)
	}
	if err := validatePromotion(p); err != nil {
		return Product{}, err
	}
	ok, err := s.suppliers.Exists(ctx, p.SupplierID)
	if err != nil {
		return Product{}, fmt.Errorf("resolve supplier: %w", err)
	}
	if !ok {
		return Product{}, fmt.Errorf("supplier %d: %w", p.SupplierID, shared.ErrNotFound)
	}

	created, err := s.repo.Create(ctx, p)
	if err != nil {
		return Product{}, fmt.Errorf("create product: %w", err)
	}
	return created, nil
}

func (s *Service) Get(ctx context.Context, id int64) (Product, error) {
	return s.repo.Get(ctx, id)
}

// Update merges the partial request onto the stored record and re-checks
// the promotion invariant before saving.
func (s *Service) Update(ctx context.Context, id int64, req UpdateProductRequest) (Product, error) {
	stored, err := s.repo.Get(ctx, id)
	if err != nil {
		return Product{}, fmt.Errorf("get product: %w", err)
	}

	merged := req.apply(stored, id)
	if err := validatePromotion(merged); err != nil {
		return Product{}, err
	}

	updated, err := s.repo.Update(ctx, merged)
	if err != nil {
		return Product{}, fmt.Errorf("update product: %w", err)
	}
	return updated, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) Search(ctx context.Context, filter Filter, page shared.PageRequest) ([]Product, int, error) {
	return s.repo.Search(ctx, filter.Normalize(), page)
}

// ListByIDs resolves products in the order the ids were supplied.
func (s *Service) ListByIDs(ctx context.Context, ids []int64) ([]Product, error) {
	return s.repo.ListByIDs(ctx, ids)
}

// SaveImage stores the uploaded file under the configured directory and
// persists the generated filename on the product.
func (s *Service) SaveImage(ctx context.Context, id int64, originalName string, content io.Reader) (Product, error) {
	p, err := s.repo.Get(ctx, id)
	if err != nil {
		return Product{}, fmt.Errorf("get product: %w", err)
	}

	cleaned := filepath.Base(originalName)
	if cleaned == "." || cleaned == string(filepath.Separator) || cleaned == "" {
		cleaned = "no-name"
	}
	fileName := uuid.NewString() + "_" + cleaned

	if err := os.MkdirAll(s.uploadDir, 0o755); err != nil {
		return Product{}, fmt.Errorf("prepare upload dir: %w", err)
	}
	dst, err := os.Create(filepath.Join(s.uploadDir, fileName))
	if err != nil {
		return Product{}, fmt.Errorf("create image file: %w", err)
	}
	defer dst.Close()
	if _, err := io.Copy(dst, content); err != nil {
		return Product{}, fmt.Errorf("write image file: %w", err)
	}

	p.ImageRef = &fileName
	updated, err := s.repo.Update(ctx, p)
	if err != nil {
		return Product{}, fmt.Errorf("update product image: %w", err)
	}
	return updated, nil
}
