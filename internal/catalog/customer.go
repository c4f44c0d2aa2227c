package catalog

import "time"

// Customer statuses.
const (
	CustomerActive   = "Active"
	CustomerInactive = "Inactive"
)

// Customer is one business customer.
type Customer struct {
	ID          string    `json:"id" jsonschema:"description=Sequential customer id (CUST-###)"`
	Name        string    `json:"name"`
	Email       string    `json:"email,omitempty"`
	Phone       string    `json:"phone,omitempty"`
	Company     string    `json:"company,omitempty"`
	Address     string    `json:"address,omitempty"`
	Status      string    `json:"status"`
	TotalOrders int       `json:"totalOrders"`
	TotalSpent  int       `json:"totalSpent"`
	LastOrder   time.Time `json:"lastOrder,omitzero"`
	Joined      time.Time `json:"joined"`
}

func (c *Customer) Clone() *Customer {
	d := *c
	return &d
}

func (c *Customer) GetID() string { return c.ID }

func (c *Customer) Validate() error {
	fields := map[string]string{}
	if c.ID == "" {
		fields["id"] = "required"
	}
	if c.Name == "" {
		fields["name"] = "required"
	}
	if c.TotalOrders < 0 {
		fields["totalOrders"] = "must not be negative"
	}
	if c.TotalSpent < 0 {
		fields["totalSpent"] = "must not be negative"
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

func (c *Customer) SearchFields() []string {
	return []string{c.ID, c.Name, c.Email, c.Company}
}
func (c *Customer) PhoneFields() []string  { return []string{c.Phone} }
func (c *Customer) CreatedTime() time.Time { return c.Joined }

// CustomerFilters is the customer listing's filter predicate set.
type CustomerFilters struct {
	Status string
}

// MatchCustomer applies the customer filter predicates.
func MatchCustomer(c *Customer, f CustomerFilters) bool {
	return f.Status == "" || f.Status == "All" || c.Status == f.Status
}
