package products

import (
	"fmt"

	"github.com/meridian-erp/meridian-erp/internal/shared"
)

const promoMessage = "a promotional price requires the promotion flag, and the promotion flag requires a promotional price"

// validatePromotion enforces the promotion invariant: the flag and the
// promotional price are present or absent together.
func validatePromotion(p Product) error {
	if p.OnPromotion && p.PromoPrice == nil {
		return fmt.Errorf("%w: %s", shared.ErrDataIntegrity, promoMessage)
	}
	if !p.OnPromotion && p.PromoPrice != nil {
		return fmt.Errorf("%w: %s", shared.ErrDataIntegrity, promoMessage)
	}
	return nil
}
