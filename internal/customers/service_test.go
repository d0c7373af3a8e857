package customers

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/meridian-erp/meridian-erp/internal/shared"
)

type memoryRepo struct {
	customers  map[int64]Customer
	nextID     int64
	lastFilter BoundedFilter
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{customers: make(map[int64]Customer)}
}

func (r *memoryRepo) Get(ctx context.Context, id int64) (Customer, error) {
	c, ok := r.customers[id]
	if !ok {
		return Customer{}, fmt.Errorf("customer %d: %w", id, shared.ErrNotFound)
	}
	return c, nil
}

func (r *memoryRepo) FindByEmail(ctx context.Context, email string) (Customer, error) {
	for _, c := range r.customers {
		if c.Email == email {
			return c, nil
		}
	}
	return Customer{}, fmt.Errorf("customer %s: %w", email, shared.ErrNotFound)
}

func (r *memoryRepo) Search(ctx context.Context, filter BoundedFilter, page shared.PageRequest) ([]Customer, int, error) {
	r.lastFilter = filter
	var out []Customer
	for _, c := range r.customers {
		out = append(out, c)
	}
	return out, len(out), nil
}

func (r *memoryRepo) Create(ctx context.Context, c Customer) (Customer, error) {
	r.nextID++
	c.ID = r.nextID
	r.customers[c.ID] = c
	return c, nil
}

func (r *memoryRepo) Update(ctx context.Context, c Customer) (Customer, error) {
	if _, ok := r.customers[c.ID]; !ok {
		return Customer{}, fmt.Errorf("customer %d: %w", c.ID, shared.ErrNotFound)
	}
	r.customers[c.ID] = c
	return c, nil
}

func (r *memoryRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := r.customers[id]; !ok {
		return fmt.Errorf("customer %d: %w", id, shared.ErrNotFound)
	}
	delete(r.customers, id)
	return nil
}

func TestCreateDefaultsRegistrationDateAndHashesPassword(t *testing.T) {
	repo := newMemoryRepo()
	svc := NewService(repo)
	svc.now = func() time.Time { return time.Date(2026, 3, 15, 17, 45, 0, 0, time.UTC) }
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateCustomerRequest{
		Name:     "Ana",
		Email:    "ana@example.com",
		Password: "hunter2hunter2",
		Document: "12345678901",
	})
	require.NoError(t, err)
	require.Equal(t, int64(1), created.ID)
	require.Equal(t, time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC), created.RegisteredAt)
	require.NotEqual(t, "hunter2hunter2", created.PasswordHash)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("hunter2hunter2")))
}

func TestCreateHonoursExplicitRegistrationDate(t *testing.T) {
	repo := newMemoryRepo()
	svc := NewService(repo)
	ctx := context.Background()

	explicit := time.Date(2020, 1, 2, 0, 0, 0, 0, time.UTC)
	created, err := svc.Create(ctx, CreateCustomerRequest{
		Name:         "Bruno",
		Email:        "bruno@example.com",
		Password:     "s3cretpass",
		Document:     "98765432100",
		RegisteredAt: &explicit,
	})
	require.NoError(t, err)
	require.Equal(t, explicit, created.RegisteredAt)
}

func TestUpdateMergesOnlySuppliedFields(t *testing.T) {
	repo := newMemoryRepo()
	svc := NewService(repo)
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateCustomerRequest{
		Name:     "Carla",
		Email:    "carla@example.com",
		Password: "originalpw",
		Document: "11122233344",
	})
	require.NoError(t, err)

	name := "Carla Souza"
	updated, err := svc.Update(ctx, created.ID, UpdateCustomerRequest{Name: &name})
	require.NoError(t, err)
	require.Equal(t, "Carla Souza", updated.Name)
	require.Equal(t, "carla@example.com", updated.Email)
	require.Equal(t, "11122233344", updated.Document)
	require.Equal(t, created.RegisteredAt, updated.RegisteredAt)
	require.Equal(t, created.PasswordHash, updated.PasswordHash)
}

func TestUpdateRehashesOnlyWhenPasswordSupplied(t *testing.T) {
	repo := newMemoryRepo()
	svc := NewService(repo)
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateCustomerRequest{
		Name:     "Davi",
		Email:    "davi@example.com",
		Password: "firstsecret",
		Document: "55566677788",
	})
	require.NoError(t, err)

	email := "davi.new@example.com"
	updated, err := svc.Update(ctx, created.ID, UpdateCustomerRequest{Email: &email})
	require.NoError(t, err)
	require.Equal(t, created.PasswordHash, updated.PasswordHash)

	password := "secondsecret"
	updated, err = svc.Update(ctx, created.ID, UpdateCustomerRequest{Password: &password})
	require.NoError(t, err)
	require.NotEqual(t, created.PasswordHash, updated.PasswordHash)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(updated.PasswordHash), []byte("secondsecret")))
}

func TestUpdateUnknownCustomer(t *testing.T) {
	repo := newMemoryRepo()
	svc := NewService(repo)

	name := "nobody"
	_, err := svc.Update(context.Background(), 42, UpdateCustomerRequest{Name: &name})
	require.ErrorIs(t, err, shared.ErrNotFound)
}

func TestSearchNormalizesOpenBounds(t *testing.T) {
	repo := newMemoryRepo()
	svc := NewService(repo)
	ctx := context.Background()

	_, _, err := svc.Search(ctx, Filter{}, shared.PageRequest{})
	require.NoError(t, err)
	require.Equal(t, "", repo.lastFilter.Name)
	require.Equal(t, shared.MinDate, repo.lastFilter.RegisteredFrom)
	require.Equal(t, shared.MaxDate, repo.lastFilter.RegisteredTo)

	name := "ana"
	from := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	_, _, err = svc.Search(ctx, Filter{Name: &name, RegisteredFrom: &from}, shared.PageRequest{})
	require.NoError(t, err)
	require.Equal(t, "ana", repo.lastFilter.Name)
	require.Equal(t, from, repo.lastFilter.RegisteredFrom)
	require.Equal(t, shared.MaxDate, repo.lastFilter.RegisteredTo)
}
