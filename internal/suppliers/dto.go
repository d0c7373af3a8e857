package suppliers

import "github.com/meridian-erp/meridian-erp/internal/shared"

type CreateSupplierRequest struct {
	Name  string `json:"name" validate:"required,max=100"`
	TaxID string `json:"tax_id" validate:"required,len=14"`
}

type UpdateSupplierRequest struct {
	Name  *string `json:"name,omitempty" validate:"omitempty,max=100"`
	TaxID *string `json:"tax_id,omitempty" validate:"omitempty,len=14"`
}

func (req UpdateSupplierRequest) apply(stored Supplier, id int64) Supplier {
	return Supplier{
		ID:    id,
		Name:  shared.Coalesce(req.Name, stored.Name),
		TaxID: shared.Coalesce(req.TaxID, stored.TaxID),
	}
}

// Filter carries optional search constraints.
type Filter struct {
	Name  *string
	TaxID *string
}

// BoundedFilter has every bound resolved.
type BoundedFilter struct {
	Name  string
	TaxID string
}

func (f Filter) Normalize() BoundedFilter {
	return BoundedFilter{
		Name:  shared.TextOr(f.Name),
		TaxID: shared.TextOr(f.TaxID),
	}
}
