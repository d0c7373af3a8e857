package shared

import "time"

// Sentinels used to turn optional filter bounds into a fully bounded range
// query. MaxAmount must exceed any realistic price or sale total.
var (
	// MinDate is the lower bound applied to unconstrained date filters.
	MinDate = time.Date(1970, time.January, 1, 0, 0, 0, 0, time.UTC)
	// MaxDate is the upper bound applied to unconstrained date filters.
	MaxDate = time.Date(3000, time.December, 31, 0, 0, 0, 0, time.UTC)
)

const (
	// MaxAmount is the upper bound applied to unconstrained monetary filters.
	MaxAmount float64 = 9_999_999
	// MaxQuantity is the upper bound applied to unconstrained stock filters.
	MaxQuantity int64 = 9_999_999
)

// Coalesce returns the incoming value when it was supplied, else the stored
// one. A non-nil pointer to a zero value still counts as supplied; only nil
// means "the caller never sent this field".
func Coalesce[T any](incoming *T, stored T) T {
	if incoming != nil {
		return *incoming
	}
	return stored
}

// TextOr maps an absent text filter to the empty string, matched downstream
// as ILIKE '%%' (no constraint).
func TextOr(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}

// AmountFloor maps an absent lower monetary bound to zero.
func AmountFloor(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

// AmountCeil maps an absent upper monetary bound to MaxAmount.
func AmountCeil(v *float64) float64 {
	if v == nil {
		return MaxAmount
	}
	return *v
}

// QuantityFloor maps an absent lower quantity bound to zero.
func QuantityFloor(v *int64) int64 {
	if v == nil {
		return 0
	}
	return *v
}

// QuantityCeil maps an absent upper quantity bound to MaxQuantity.
func QuantityCeil(v *int64) int64 {
	if v == nil {
		return MaxQuantity
	}
	return *v
}

// DateFloor maps an absent lower date bound to MinDate.
func DateFloor(v *time.Time) time.Time {
	if v == nil {
		return MinDate
	}
	return *v
}

// DateCeil maps an absent upper date bound to MaxDate.
func DateCeil(v *time.Time) time.Time {
	if v == nil {
		return MaxDate
	}
	return *v
}
