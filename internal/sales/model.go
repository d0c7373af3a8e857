package sales

import (
	"time"

	"github.com/meridian-erp/meridian-erp/internal/products"
)

// Sale records an ordered list of products bought from one supplier by one
// customer. Total is derived from the line items and never caller-supplied.
type Sale struct {
	ID           int64              `json:"id"`
	Total        float64            `json:"total"`
	PurchaseDate time.Time          `json:"purchase_date"`
	CustomerID   int64              `json:"customer_id"`
	SupplierID   int64              `json:"supplier_id"`
	Products     []products.Product `json:"products"`
}

// ProductIDs returns the line item ids in order.
func (s Sale) ProductIDs() []int64 {
	ids := make([]int64, 0, len(s.Products))
	for _, p := range s.Products {
		ids = append(ids, p.ID)
	}
	return ids
}
