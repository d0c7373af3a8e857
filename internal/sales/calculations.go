package sales

import "github.com/meridian-erp/meridian-erp/internal/products"

// computeTotal sums the line items in order, taking the promotional price
// when the promotion flag is set, else the regular price.
func computeTotal(items []products.Product) float64 {
	var total float64
	for _, p := range items {
		if p.OnPromotion && p.PromoPrice != nil {
			total += *p.PromoPrice
		} else {
			total += p.Price
		}
	}
	return total
}
