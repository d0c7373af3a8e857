package customers

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/meridian-erp/meridian-erp/internal/shared"
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// Create persists a new customer. The id is always storage-assigned, the
// registration date defaults to today and the password is stored hashed.
func (s *Service) Create(ctx context.Context, req CreateCustomerRequest) (Customer, error) {
	registeredAt := s.today()
	if req.RegisteredAt != nil {
		registeredAt = *req.RegisteredAt
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return Customer{}, fmt.Errorf("hash password: %w", err)
	}

	c := Customer{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		Document:     req.Document,
		RegisteredAt: registeredAt,
	}

	created, err := s.repo.Create(ctx, c)
	if err != nil {
		return Customer{}, fmt.Errorf("create customer: %w", err)
	}
	return created, nil
}

func (s *Service) Get(ctx context.Context, id int64) (Customer, error) {
	return s.repo.Get(ctx, id)
}

// FindByEmail exposes the narrow credentials lookup consumed by auth.
func (s *Service) FindByEmail(ctx context.Context, email string) (Customer, error) {
	return s.repo.FindByEmail(ctx, email)
}

// Update merges the partial request onto the stored record; fields the
// caller omitted keep their stored values. A newly supplied plaintext
// password is re-hashed, an untouched one keeps its stored hash.
func (s *Service) Update(ctx context.Context, id int64, req UpdateCustomerRequest) (Customer, error) {
	stored, err := s.repo.Get(ctx, id)
	if err != nil {
		return Customer{}, fmt.Errorf("get customer: %w", err)
	}

	merged := req.apply(stored, id)
	if req.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return Customer{}, fmt.Errorf("hash password: %w", err)
		}
		merged.PasswordHash = string(hash)
	}

	updated, err := s.repo.Update(ctx, merged)
	if err != nil {
		return Customer{}, fmt.Errorf("update customer: %w", err)
	}
	return updated, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) Search(ctx context.Context, filter Filter, page shared.PageRequest) ([]Customer, int, error) {
	return s.repo.Search(ctx, filter.Normalize(), page)
}

func (s *Service) today() time.Time {
	y, m, d := s.now().UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
