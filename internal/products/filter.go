package products

import "github.com/meridian-erp/meridian-erp/internal/shared"

// Filter carries optional search constraints.
type Filter struct {
	Name           *string
	Code           *string
	PriceFrom      *float64
	PriceTo        *float64
	QuantityFrom   *int64
	QuantityTo     *int64
	PromoPriceFrom *float64
	PromoPriceTo   *float64
}

// BoundedFilter has every bound resolved and is safe to run as a range query.
type BoundedFilter struct {
	Name           string
	Code           string
	PriceFrom      float64
	PriceTo        float64
	QuantityFrom   int64
	QuantityTo     int64
	PromoPriceFrom float64
	PromoPriceTo   float64
}

// Normalize resolves every missing constraint to its unconstrained default.
func (f Filter) Normalize() BoundedFilter {
	return BoundedFilter{
		Name:           shared.TextOr(f.Name),
		Code:           shared.TextOr(f.Code),
		PriceFrom:      shared.AmountFloor(f.PriceFrom),
		PriceTo:        shared.AmountCeil(f.PriceTo),
		QuantityFrom:   shared.QuantityFloor(f.QuantityFrom),
		QuantityTo:     shared.QuantityCeil(f.QuantityTo),
		PromoPriceFrom: shared.AmountFloor(f.PromoPriceFrom),
		PromoPriceTo:   shared.AmountCeil(f.PromoPriceTo),
	}
}
