package customers

import (
	"time"

	"github.com/meridian-erp/meridian-erp/internal/shared"
)

type CreateCustomerRequest struct {
	Name         string     `json:"name" validate:"required,max=100"`
	Email        string     `json:"email" validate:"required,email"`
	Password     string     `json:"password" validate:"required,min=8"`
	Document     string     `json:"document" validate:"required,max=20"`
	RegisteredAt *time.Time `json:"registered_at,omitempty"`
}

// UpdateCustomerRequest carries a partial record: nil means the caller never
// supplied the field, a pointer to the zero value still counts as supplied.
type UpdateCustomerRequest struct {
	Name         *string    `json:"name,omitempty" validate:"omitempty,max=100"`
	Email        *string    `json:"email,omitempty" validate:"omitempty,email"`
	Password     *string    `json:"password,omitempty" validate:"omitempty,min=8"`
	Document     *string    `json:"document,omitempty" validate:"omitempty,max=20"`
	RegisteredAt *time.Time `json:"registered_at,omitempty"`
}

// apply merges the partial update onto the stored record. The explicit id is
// authoritative; the stored password hash is preserved, re-hashing of a new
// plaintext password happens in the service.
func (req UpdateCustomerRequest) apply(stored Customer, id int64) Customer {
	return Customer{
		ID:           id,
		Name:         shared.Coalesce(req.Name, stored.Name),
		Email:        shared.Coalesce(req.Email, stored.Email),
		PasswordHash: stored.PasswordHash,
		Document:     shared.Coalesce(req.Document, stored.Document),
		RegisteredAt: shared.Coalesce(req.RegisteredAt, stored.RegisteredAt),
	}
}
