package suppliers

// Supplier represents a product vendor.
type Supplier struct {
	ID       int64        `json:"id"`
	Name     string       `json:"name"`
	TaxID    string       `json:"tax_id"`
	Products []ProductRef `json:"products,omitempty"`
}

// ProductRef is the read-only back-reference to a product owned by the
// supplier, loaded on Get.
type ProductRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Code string `json:"code"`
}
