package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/meridian-erp/meridian-erp/internal/customers"
	"github.com/meridian-erp/meridian-erp/internal/shared"
)

// CustomerDirectory looks up the account record behind a login attempt.
type CustomerDirectory interface {
	FindByEmail(ctx context.Context, email string) (customers.Customer, error)
}

type Service struct {
	directory CustomerDirectory
	logger    *slog.Logger
}

func NewService(directory CustomerDirectory, logger *slog.Logger) *Service {
	return &Service{directory: directory, logger: logger}
}

// Authenticate checks the credentials against the stored hash. Unknown email
// and wrong password collapse into the same error so callers cannot probe
// which accounts exist.
func (s *Service) Authenticate(ctx context.Context, email, password string) (customers.Customer, error) {
	customer, err := s.directory.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return customers.Customer{}, shared.ErrInvalidCredentials
		}
		return customers.Customer{}, fmt.Errorf("authenticate %s: %w", email, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(customer.PasswordHash), []byte(password)); err != nil {
		return customers.Customer{}, shared.ErrInvalidCredentials
	}
	return customer, nil
}
