package customers

import (
	"time"

	"github.com/meridian-erp/meridian-erp/internal/shared"
)

// Filter carries optional search constraints.
type Filter struct {
	Name           *string
	Email          *string
	Document       *string
	RegisteredFrom *time.Time
	RegisteredTo   *time.Time
}

// BoundedFilter has every bound resolved and is safe to run as a range query.
type BoundedFilter struct {
	Name           string
	Email          string
	Document       string
	RegisteredFrom time.Time
	RegisteredTo   time.Time
}

// Normalize resolves every missing constraint to its unconstrained default.
// It never fails; absence always means "match everything".
func (f Filter) Normalize() BoundedFilter {
	return BoundedFilter{
		Name:           shared.TextOr(f.Name),
		Email:          shared.TextOr(f.Email),
		Document:       shared.TextOr(f.Document),
		RegisteredFrom: shared.DateFloor(f.RegisteredFrom),
		RegisteredTo:   shared.DateCeil(f.RegisteredTo),
	}
}
