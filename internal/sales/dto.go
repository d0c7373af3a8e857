package sales

import (
	"time"

	"github.com/meridian-erp/meridian-erp/internal/shared"
)

type CreateSaleRequest struct {
	PurchaseDate time.Time `json:"purchase_date" validate:"required"`
	CustomerID   int64     `json:"customer_id" validate:"required,gt=0"`
	SupplierID   int64     `json:"supplier_id"`
	ProductIDs   []int64   `json:"product_ids"`
}

// UpdateSaleRequest carries a partial record; nil fields keep their stored
// values. A supplied ProductIDs list replaces the stored line items wholesale.
type UpdateSaleRequest struct {
	PurchaseDate *time.Time `json:"purchase_date,omitempty"`
	CustomerID   *int64     `json:"customer_id,omitempty" validate:"omitempty,gt=0"`
	SupplierID   *int64     `json:"supplier_id,omitempty"`
	ProductIDs   *[]int64   `json:"product_ids,omitempty"`
}

// apply merges the partial update onto the stored sale and reports the line
// item ids the merged sale should carry. The total is left for the service
// to recompute.
func (req UpdateSaleRequest) apply(stored Sale, id int64) (Sale, []int64) {
	merged := Sale{
		ID:           id,
		Total:        stored.Total,
		PurchaseDate: shared.Coalesce(req.PurchaseDate, stored.PurchaseDate),
		CustomerID:   shared.Coalesce(req.CustomerID, stored.CustomerID),
		SupplierID:   shared.Coalesce(req.SupplierID, stored.SupplierID),
	}
	if req.ProductIDs != nil {
		return merged, *req.ProductIDs
	}
	return merged, stored.ProductIDs()
}

// Filter carries optional search constraints.
type Filter struct {
	PurchaseFrom *time.Time
	PurchaseTo   *time.Time
	TotalFrom    *float64
	TotalTo      *float64
}

// BoundedFilter has every bound resolved.
type BoundedFilter struct {
	PurchaseFrom time.Time
	PurchaseTo   time.Time
	TotalFrom    float64
	TotalTo      float64
}

func (f Filter) Normalize() BoundedFilter {
	return BoundedFilter{
		PurchaseFrom: shared.DateFloor(f.PurchaseFrom),
		PurchaseTo:   shared.DateCeil(f.PurchaseTo),
		TotalFrom:    shared.AmountFloor(f.TotalFrom),
		TotalTo:      shared.AmountCeil(f.TotalTo),
	}
}
