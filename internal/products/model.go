package products

// Product belongs to exactly one supplier. PromoPrice is present exactly
// when OnPromotion is set; the pair is validated before every write.
type Product struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Code        string   `json:"code"`
	Price       float64  `json:"price"`
	Quantity    int64    `json:"quantity"`
	OnPromotion bool     `json:"on_promotion"`
	PromoPrice  *float64 `json:"promo_price,omitempty"`
	SupplierID  int64    `json:"supplier_id"`
	ImageRef    *string  `json:"image,omitempty"`
}
