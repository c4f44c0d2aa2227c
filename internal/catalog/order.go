package catalog

import (
	"math"
	"time"
)

// Order statuses.
const (
	OrderPending    = "Pending"
	OrderProcessing = "Processing"
	OrderShipped    = "Shipped"
	OrderDelivered  = "Delivered"
	OrderCancelled  = "Cancelled"
)

// Payment statuses.
const (
	PaymentPaid    = "Paid"
	PaymentPending = "Pending"
	PaymentFailed  = "Failed"
)

// OrderItem is one line of an order.
type OrderItem struct {
	ProductID string `json:"productId,omitempty"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	Unit      string `json:"unit,omitempty"`
	Price     int    `json:"price"`
	Total     int    `json:"total"`
}

// Order is one customer order.
type Order struct {
	ID            string      `json:"id" jsonschema:"description=Sequential order id (ORD-###)"`
	CustomerID    string      `json:"customerId,omitempty"`
	CustomerName  string      `json:"customerName"`
	CustomerPhone string      `json:"customerPhone,omitempty"`
	Items         []OrderItem `json:"items,omitempty"`
	Subtotal      int         `json:"subtotal"`
	Tax           int         `json:"tax"`
	Shipping      int         `json:"shipping"`
	TotalAmount   int         `json:"totalAmount"`
	Status        string      `json:"status"`
	Payment       string      `json:"payment"`
	PaymentMethod string      `json:"paymentMethod,omitempty"`
	Created       time.Time   `json:"created"`
	Modified      time.Time   `json:"modified,omitzero"`
}

func (o *Order) Clone() *Order {
	c := *o
	c.Items = make([]OrderItem, len(o.Items))
	copy(c.Items, o.Items)
	return &c
}

func (o *Order) GetID() string { return o.ID }

func (o *Order) Validate() error {
	fields := map[string]string{}
	if o.ID == "" {
		fields["id"] = "required"
	}
	if o.CustomerName == "" {
		fields["customerName"] = "required"
	}
	if o.TotalAmount < 0 {
		fields["totalAmount"] = "must not be negative"
	}
	for _, item := range o.Items {
		if item.Quantity < 0 {
			fields["items"] = "quantity must not be negative"
			break
		}
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

func (o *Order) SearchFields() []string { return []string{o.ID, o.CustomerName} }
func (o *Order) PhoneFields() []string  { return []string{o.CustomerPhone} }
func (o *Order) CreatedTime() time.Time { return o.Created }

// ComputeTotals fills the order's derived money fields from its items:
// subtotal is the sum of line totals, tax is the rounded percentage of the
// subtotal, and the total amount adds shipping on top.
func (o *Order) ComputeTotals(taxPercent float64) {
	subtotal := 0
	for i := range o.Items {
		o.Items[i].Total = o.Items[i].Quantity * o.Items[i].Price
		subtotal += o.Items[i].Total
	}
	o.Subtotal = subtotal
	o.Tax = int(math.Round(float64(subtotal) * taxPercent / 100))
	o.TotalAmount = o.Subtotal + o.Tax + o.Shipping
}

// OrderFilters is the order listing's filter predicate set. From and To are
// "2006-01-02" dates; the range is inclusive from 00:00:00 on From through
// 23:59:59 on To, and a single bound filters as an open range.
type OrderFilters struct {
	Status  string
	Payment string
	From    string
	To      string
}

// MatchOrder applies the order filter predicates.
func MatchOrder(o *Order, f OrderFilters) bool {
	if f.Status != "" && f.Status != "All" && o.Status != f.Status {
		return false
	}
	if f.Payment != "" && f.Payment != "All" && o.Payment != f.Payment {
		return false
	}
	return inDateRange(o.Created, f.From, f.To)
}

// inDateRange reports whether ts falls within the inclusive [from, to] day
// range. Unset bounds are open; unparsable bounds are ignored.
func inDateRange(ts time.Time, from, to string) bool {
	if from != "" {
		if day, err := time.ParseInLocation(time.DateOnly, from, ts.Location()); err == nil && ts.Before(day) {
			return false
		}
	}
	if to != "" {
		if day, err := time.ParseInLocation(time.DateOnly, to, ts.Location()); err == nil && !ts.Before(day.AddDate(0, 0, 1)) {
			return false
		}
	}
	return true
}
