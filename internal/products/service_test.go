package products

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/meridian-erp/meridian-erp/internal/shared"
)

type memoryRepo struct {
	products map[int64]Product
	nextID   int64
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{products: make(map[int64]Product)}
}

func (r *memoryRepo) Get(ctx context.Context, id int64) (Product, error) {
	p, ok := r.products[id]
	if !ok {
		return Product{}, fmt.Errorf("product %d: %w", id, shared.ErrNotFound)
	}
	return p, nil
}

func (r *memoryRepo) ListByIDs(ctx context.Context, ids []int64) ([]Product, error) {
	out := make([]Product, 0, len(ids))
	for _, id := range ids {
		p, ok := r.products[id]
		if !ok {
			return nil, fmt.Errorf("product %d: %w", id, shared.ErrNotFound)
		}
		out = append(out, p)
	}
	return out, nil
}

func (r *memoryRepo) Search(ctx context.Context, filter BoundedFilter, page shared.PageRequest) ([]Product, int, error) {
	var out []Product
	for _, p := range r.products {
		out = append(out, p)
	}
	return out, len(out), nil
}

func (r *memoryRepo) Create(ctx context.Context, p Product) (Product, error) {
	r.nextID++
	p.ID = r.nextID
	r.products[p.ID] = p
	return p, nil
}

func (r *memoryRepo) Update(ctx context.Context, p Product) (Product, error) {
	if _, ok := r.products[p.ID]; !ok {
		return Product{}, fmt.Errorf("product %d: %w", p.ID, shared.ErrNotFound)
	}
	r.products[p.ID] = p
	return p, nil
}

func (r *memoryRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := r.products[id]; !ok {
		return fmt.Errorf("product %d: %w", id, shared.ErrNotFound)
	}
	delete(r.products, id)
	return nil
}

type staticDirectory struct {
	known map[int64]bool
}

func (d staticDirectory) Exists(ctx context.Context, id int64) (bool, error) {
	return d.known[id], nil
}

func newService(repo *memoryRepo, supplierIDs ...int64) *Service {
	known := make(map[int64]bool, len(supplierIDs))
	for _, id := range supplierIDs {
		known[id] = true
	}
	return NewService(repo, staticDirectory{known: known}, "")
}

func TestCreateRejectsMissingSupplier(t *testing.T) {
	repo := newMemoryRepo()
	svc := newService(repo, 1)

	_, err := svc.Create(context.Background(), CreateProductRequest{Name: "Mouse", Code: "MS-1", Price: 10})
	require.ErrorIs(t, err, shared.ErrDataIntegrity)
	require.Empty(t, repo.products)
}

func TestCreateRejectsUnknownSupplier(t *testing.T) {
	repo := newMemoryRepo()
	svc := newService(repo, 1)

	_, err := svc.Create(context.Background(), CreateProductRequest{Name: "Mouse", Code: "MS-1", Price: 10, SupplierID: 99})
	require.ErrorIs(t, err, shared.ErrNotFound)
	require.Empty(t, repo.products)
}

func TestCreateEnforcesPromotionInvariant(t *testing.T) {
	repo := newMemoryRepo()
	svc := newService(repo, 1)
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateProductRequest{Name: "Mouse", Code: "MS-1", Price: 10, OnPromotion: true, SupplierID: 1})
	require.ErrorIs(t, err, shared.ErrDataIntegrity)

	promo := 8.0
	_, err = svc.Create(ctx, CreateProductRequest{Name: "Mouse", Code: "MS-1", Price: 10, PromoPrice: &promo, SupplierID: 1})
	require.ErrorIs(t, err, shared.ErrDataIntegrity)

	created, err := svc.Create(ctx, CreateProductRequest{Name: "Mouse", Code: "MS-1", Price: 10, OnPromotion: true, PromoPrice: &promo, SupplierID: 1})
	require.NoError(t, err)
	require.True(t, created.OnPromotion)
	require.NotNil(t, created.PromoPrice)
}

func TestUpdateRechecksPromotionAfterMerge(t *testing.T) {
	repo := newMemoryRepo()
	svc := newService(repo, 1)
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateProductRequest{Name: "Mouse", Code: "MS-1", Price: 10, SupplierID: 1})
	require.NoError(t, err)

	// Flagging the promotion without a price must fail against the merged
	// record, which still has no promotional price.
	flag := true
	_, err = svc.Update(ctx, created.ID, UpdateProductRequest{OnPromotion: &flag})
	require.ErrorIs(t, err, shared.ErrDataIntegrity)

	promo := 7.5
	updated, err := svc.Update(ctx, created.ID, UpdateProductRequest{OnPromotion: &flag, PromoPrice: &promo})
	require.NoError(t, err)
	require.True(t, updated.OnPromotion)
	require.Equal(t, 7.5, *updated.PromoPrice)
}

func TestUpdateEmptyRequestIsIdempotent(t *testing.T) {
	repo := newMemoryRepo()
	svc := newService(repo, 1)
	ctx := context.Background()

	promo := 8.0
	created, err := svc.Create(ctx, CreateProductRequest{Name: "Mouse", Code: "MS-1", Price: 10, Quantity: 5, OnPromotion: true, PromoPrice: &promo, SupplierID: 1})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, created.ID, UpdateProductRequest{})
	require.NoError(t, err)
	require.Equal(t, created, updated)
}

func TestUpdateMergesSuppliedFieldsOnly(t *testing.T) {
	repo := newMemoryRepo()
	svc := newService(repo, 1)
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateProductRequest{Name: "Mouse", Code: "MS-1", Price: 10, Quantity: 5, SupplierID: 1})
	require.NoError(t, err)

	price := 12.5
	updated, err := svc.Update(ctx, created.ID, UpdateProductRequest{Price: &price})
	require.NoError(t, err)
	require.Equal(t, 12.5, updated.Price)
	require.Equal(t, "Mouse", updated.Name)
	require.Equal(t, "MS-1", updated.Code)
	require.Equal(t, int64(5), updated.Quantity)
	require.Equal(t, int64(1), updated.SupplierID)
}
