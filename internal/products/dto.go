package products

import "github.com/meridian-erp/meridian-erp/internal/shared"

type CreateProductRequest struct {
	Name        string   `json:"name" validate:"required,max=100"`
	Code        string   `json:"code" validate:"required,max=50"`
	Price       float64  `json:"price" validate:"gte=0"`
	Quantity    int64    `json:"quantity" validate:"gte=0"`
	OnPromotion bool     `json:"on_promotion"`
	PromoPrice  *float64 `json:"promo_price,omitempty" validate:"omitempty,gte=0"`
	SupplierID  int64    `json:"supplier_id"`
}

// UpdateProductRequest carries a partial record; nil fields keep their
// stored values. An omitted promo_price keeps the stored one, so turning a
// promotion off requires withdrawing the price in the same request's terms —
// the promotion invariant is re-checked after the merge.
type UpdateProductRequest struct {
	Name        *string  `json:"name,omitempty" validate:"omitempty,max=100"`
	Code        *string  `json:"code,omitempty" validate:"omitempty,max=50"`
	Price       *float64 `json:"price,omitempty" validate:"omitempty,gte=0"`
	Quantity    *int64   `json:"quantity,omitempty" validate:"omitempty,gte=0"`
	OnPromotion *bool    `json:"on_promotion,omitempty"`
	PromoPrice  *float64 `json:"promo_price,omitempty" validate:"omitempty,gte=0"`
	SupplierID  *int64   `json:"supplier_id,omitempty"`
}

func (req UpdateProductRequest) apply(stored Product, id int64) Product {
	merged := Product{
		ID:          id,
		Name:        shared.Coalesce(req.Name, stored.Name),
		Code:        shared.Coalesce(req.Code, stored.Code),
		Price:       shared.Coalesce(req.Price, stored.Price),
		Quantity:    shared.Coalesce(req.Quantity, stored.Quantity),
		OnPromotion: shared.Coalesce(req.OnPromotion, stored.OnPromotion),
		PromoPrice:  stored.PromoPrice,
		SupplierID:  shared.Coalesce(req.SupplierID, stored.SupplierID),
		ImageRef:    stored.ImageRef,
	}
	if req.PromoPrice != nil {
		v := *req.PromoPrice
		merged.PromoPrice = &v
	}
	return merged
}
