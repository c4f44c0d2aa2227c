package catalog

import "time"

// Product statuses. Status is derived from stock, never set directly.
const (
	ProductActive     = "Active"
	ProductLowStock   = "Low Stock"
	ProductOutOfStock = "Out of Stock"
)

// DefaultLowStockThreshold is the stock level below which a product is
// flagged Low Stock. Overridable through business settings.
const DefaultLowStockThreshold = 500

// Numeric field bounds.
const (
	MaxStock = 999999
	MaxPrice = 999999
)

// Product is one inventory item.
type Product struct {
	ID       string    `json:"id" jsonschema:"description=Sequential product id (C###)"`
	Name     string    `json:"name"`
	Formula  string    `json:"formula,omitempty" jsonschema:"description=Chemical formula"`
	Stock    int       `json:"stock"`
	Unit     string    `json:"unit,omitempty"`
	Price    int       `json:"price" jsonschema:"description=Unit price in rupees"`
	Status   string    `json:"status"`
	Created  time.Time `json:"created"`
	Modified time.Time `json:"modified,omitzero"`
}

func (p *Product) Clone() *Product {
	c := *p
	return &c
}

func (p *Product) GetID() string { return p.ID }

func (p *Product) Validate() error {
	fields := map[string]string{}
	if p.ID == "" {
		fields["id"] = "required"
	}
	if p.Name == "" {
		fields["name"] = "required"
	}
	if p.Stock < 0 || p.Stock > MaxStock {
		fields["stock"] = "must be between 0 and 999999"
	}
	if p.Price < 0 || p.Price > MaxPrice {
		fields["price"] = "must be between 0 and 999999"
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

func (p *Product) SearchFields() []string { return []string{p.ID, p.Name, p.Formula} }
func (p *Product) PhoneFields() []string  { return nil }
func (p *Product) CreatedTime() time.Time { return p.Created }

// StatusForStock derives a product status from its stock level. A threshold
// of zero or less falls back to the default.
func StatusForStock(stock, threshold int) string {
	if threshold <= 0 {
		threshold = DefaultLowStockThreshold
	}
	switch {
	case stock <= 0:
		return ProductOutOfStock
	case stock < threshold:
		return ProductLowStock
	default:
		return ProductActive
	}
}

// ProductFilters is the product listing's filter predicate set.
type ProductFilters struct {
	// Status filters by exact match; "" and "All" pass everything.
	Status string
	// HideOutOfStock excludes out-of-stock products when set.
	HideOutOfStock bool
}

// MatchProduct applies the product filter predicates.
func MatchProduct(p *Product, f ProductFilters) bool {
	if f.Status != "" && f.Status != "All" && p.Status != f.Status {
		return false
	}
	if f.HideOutOfStock && p.Status == ProductOutOfStock {
		return false
	}
	return true
}
