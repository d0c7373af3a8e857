package shared

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestCoalescePrefersSuppliedValue(t *testing.T) {
	v := "new"
	require.Equal(t, "new", Coalesce(&v, "old"))
	require.Equal(t, "old", Coalesce(nil, "old"))

	// A pointer to the zero value still counts as supplied.
	empty := ""
	require.Equal(t, "", Coalesce(&empty, "old"))

	zero := 0.0
	require.Equal(t, 0.0, Coalesce(&zero, 9.99))
}

func TestBoundsResolveToSentinels(t *testing.T) {
	require.Equal(t, MinDate, DateFloor(nil))
	require.Equal(t, MaxDate, DateCeil(nil))
	require.Equal(t, 0.0, AmountFloor(nil))
	require.Equal(t, MaxAmount, AmountCeil(nil))
	require.Equal(t, int64(0), QuantityFloor(nil))
	require.Equal(t, MaxQuantity, QuantityCeil(nil))
	require.Equal(t, "", TextOr(nil))

	at := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	require.Equal(t, at, DateFloor(&at))
	require.Equal(t, at, DateCeil(&at))

	amount := 12.5
	require.Equal(t, 12.5, AmountCeil(&amount))

	text := "mouse"
	require.Equal(t, "mouse", TextOr(&text))
}
