package sales

import (
	"context"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/meridian-erp/meridian-erp/internal/products"
	"github.com/meridian-erp/meridian-erp/internal/shared"
)

type memoryRepo struct {
	sales      map[int64]Sale
	nextID     int64
	lastFilter BoundedFilter
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{sales: make(map[int64]Sale)}
}

func (r *memoryRepo) Get(ctx context.Context, id int64) (Sale, error) {
	s, ok := r.sales[id]
	if !ok {
		return Sale{}, fmt.Errorf("sale %d: %w", id, shared.ErrNotFound)
	}
	return s, nil
}

func (r *memoryRepo) Search(ctx context.Context, filter BoundedFilter, page shared.PageRequest) ([]Sale, int, error) {
	r.lastFilter = filter
	var out []Sale
	for _, s := range r.sales {
		out = append(out, s)
	}
	return out, len(out), nil
}

func (r *memoryRepo) Create(ctx context.Context, s Sale) (Sale, error) {
	r.nextID++
	s.ID = r.nextID
	r.sales[s.ID] = s
	return s, nil
}

func (r *memoryRepo) Update(ctx context.Context, s Sale) (Sale, error) {
	if _, ok := r.sales[s.ID]; !ok {
		return Sale{}, fmt.Errorf("sale %d: %w", s.ID, shared.ErrNotFound)
	}
	r.sales[s.ID] = s
	return s, nil
}

func (r *memoryRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := r.sales[id]; !ok {
		return fmt.Errorf("sale %d: %w", id, shared.ErrNotFound)
	}
	delete(r.sales, id)
	return nil
}

type staticCatalog struct {
	products map[int64]products.Product
}

func (c staticCatalog) ListByIDs(ctx context.Context, ids []int64) ([]products.Product, error) {
	out := make([]products.Product, 0, len(ids))
	for _, id := range ids {
		p, ok := c.products[id]
		if !ok {
			return nil, fmt.Errorf("product %d: %w", id, shared.ErrNotFound)
		}
		out = append(out, p)
	}
	return out, nil
}

func ptr(v float64) *float64 { return &v }

func fixtureCatalog() staticCatalog {
	return staticCatalog{products: map[int64]products.Product{
		1: {ID: 1, Name: "Mouse", Code: "MS-1", Price: 100, SupplierID: 1},
		2: {ID: 2, Name: "Keyboard", Code: "KB-1", Price: 200, OnPromotion: true, PromoPrice: ptr(150), SupplierID: 1},
		3: {ID: 3, Name: "Monitor", Code: "MN-1", Price: 900, SupplierID: 2},
		// Stale promotional price left behind after the flag was cleared.
		4: {ID: 4, Name: "Headset", Code: "HS-1", Price: 300, PromoPrice: ptr(250), SupplierID: 1},
	}}
}

func newService(repo *memoryRepo) *Service {
	return NewService(repo, fixtureCatalog(), slog.Default())
}

var purchaseDate = time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC)

func TestCreateDerivesTotalFromLineItems(t *testing.T) {
	repo := newMemoryRepo()
	svc := newService(repo)

	created, err := svc.Create(context.Background(), CreateSaleRequest{
		PurchaseDate: purchaseDate,
		CustomerID:   1,
		SupplierID:   1,
		ProductIDs:   []int64{1, 2, 4},
	})
	require.NoError(t, err)
	require.Equal(t, int64(1), created.ID)
	// 100 + promo 150 + regular 300 (promo price ignored when flag is off).
	require.Equal(t, 550.0, created.Total)
	require.Equal(t, []int64{1, 2, 4}, created.ProductIDs())
}

func TestCreateRejectsCrossSupplierProducts(t *testing.T) {
	repo := newMemoryRepo()
	svc := newService(repo)

	_, err := svc.Create(context.Background(), CreateSaleRequest{
		PurchaseDate: purchaseDate,
		CustomerID:   1,
		SupplierID:   1,
		ProductIDs:   []int64{1, 3},
	})
	require.ErrorIs(t, err, shared.ErrDataIntegrity)
	require.Empty(t, repo.sales)
}

func TestCreateRejectsEmptyProductList(t *testing.T) {
	repo := newMemoryRepo()
	svc := newService(repo)

	_, err := svc.Create(context.Background(), CreateSaleRequest{
		PurchaseDate: purchaseDate,
		CustomerID:   1,
		SupplierID:   1,
	})
	require.ErrorIs(t, err, shared.ErrDataIntegrity)
}

func TestCreateRejectsMissingSupplier(t *testing.T) {
	repo := newMemoryRepo()
	svc := newService(repo)

	_, err := svc.Create(context.Background(), CreateSaleRequest{
		PurchaseDate: purchaseDate,
		CustomerID:   1,
		ProductIDs:   []int64{1},
	})
	require.ErrorIs(t, err, shared.ErrDataIntegrity)
}

func TestUpdateRecomputesTotal(t *testing.T) {
	repo := newMemoryRepo()
	svc := newService(repo)
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateSaleRequest{
		PurchaseDate: purchaseDate,
		CustomerID:   1,
		SupplierID:   1,
		ProductIDs:   []int64{1},
	})
	require.NoError(t, err)
	require.Equal(t, 100.0, created.Total)

	lines := []int64{1, 2}
	updated, err := svc.Update(ctx, created.ID, UpdateSaleRequest{ProductIDs: &lines})
	require.NoError(t, err)
	require.Equal(t, 250.0, updated.Total)
	require.Equal(t, purchaseDate, updated.PurchaseDate)
	require.Equal(t, int64(1), updated.CustomerID)
}

func TestUpdateSupplierSwitchRevalidatesLineItems(t *testing.T) {
	repo := newMemoryRepo()
	svc := newService(repo)
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateSaleRequest{
		PurchaseDate: purchaseDate,
		CustomerID:   1,
		SupplierID:   1,
		ProductIDs:   []int64{1},
	})
	require.NoError(t, err)

	supplier := int64(2)
	_, err = svc.Update(ctx, created.ID, UpdateSaleRequest{SupplierID: &supplier})
	require.ErrorIs(t, err, shared.ErrDataIntegrity)

	stored, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, created.Total, stored.Total)
	require.Equal(t, int64(1), stored.SupplierID)
}

func TestSearchNormalizesBounds(t *testing.T) {
	repo := newMemoryRepo()
	svc := newService(repo)
	ctx := context.Background()

	_, _, err := svc.Search(ctx, Filter{}, shared.PageRequest{})
	require.NoError(t, err)
	require.Equal(t, shared.MinDate, repo.lastFilter.PurchaseFrom)
	require.Equal(t, shared.MaxDate, repo.lastFilter.PurchaseTo)
	require.Equal(t, 0.0, repo.lastFilter.TotalFrom)
	require.Equal(t, shared.MaxAmount, repo.lastFilter.TotalTo)

	from := 50.0
	_, _, err = svc.Search(ctx, Filter{TotalFrom: &from}, shared.PageRequest{})
	require.NoError(t, err)
	require.Equal(t, 50.0, repo.lastFilter.TotalFrom)
	require.Equal(t, shared.MaxAmount, repo.lastFilter.TotalTo)
}
