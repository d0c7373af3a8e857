package sales

import (
	"fmt"

	"github.com/meridian-erp/meridian-erp/internal/products"
	"github.com/meridian-erp/meridian-erp/internal/shared"
)

// validateSale runs the sale invariants in order, failing on the first
// violation: supplier informed, non-empty product list, and every line item
// owned by the sale's supplier.
func validateSale(supplierID int64, items []products.Product) error {
	if supplierID == 0 {
		return fmt.Errorf("%w: supplier not informed", shared.ErrDataIntegrity)
	}
	if len(items) == 0 {
		return fmt.Errorf("%w: a product list is required", shared.ErrDataIntegrity)
	}
	for _, p := range items {
		if p.SupplierID != supplierID {
			return fmt.Errorf("%w: products must belong to the informed supplier", shared.ErrDataIntegrity)
		}
	}
	return nil
}
