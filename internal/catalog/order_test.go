package catalog

import (
	"testing"
	"time"
)

func TestMatchOrderStatusAndPayment(t *testing.T) {
	o := &Order{ID: "ORD-001", CustomerName: "Ramesh", Status: OrderShipped, Payment: PaymentPaid, Created: time.Now()}

	tests := []struct {
		name    string
		filters OrderFilters
		want    bool
	}{
		{"no filters", OrderFilters{}, true},
		{"all sentinels", OrderFilters{Status: "All", Payment: "All"}, true},
		{"status match", OrderFilters{Status: OrderShipped}, true},
		{"status mismatch", OrderFilters{Status: OrderPending}, false},
		{"payment match", OrderFilters{Payment: PaymentPaid}, true},
		{"payment mismatch", OrderFilters{Payment: PaymentFailed}, false},
		{"both must pass", OrderFilters{Status: OrderShipped, Payment: PaymentFailed}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MatchOrder(o, tt.filters); got != tt.want {
				t.Errorf("MatchOrder(%+v) = %v, want %v", tt.filters, got, tt.want)
			}
		})
	}
}

func TestMatchOrderDateRange(t *testing.T) {
	at := func(s string) *Order {
		ts, err := time.Parse(time.RFC3339, s)
		if err != nil {
			t.Fatalf("bad timestamp %s: %v", s, err)
		}
		return &Order{ID: "ORD-001", CustomerName: "x", Created: ts}
	}

	tests := []struct {
		name     string
		order    *Order
		from, to string
		want     bool
	}{
		{"inside range", at("2026-08-10T12:00:00Z"), "2026-08-01", "2026-08-31", true},
		{"start of from day", at("2026-08-01T00:00:00Z"), "2026-08-01", "2026-08-31", true},
		{"end of to day", at("2026-08-31T23:59:59Z"), "2026-08-01", "2026-08-31", true},
		{"before range", at("2026-07-31T23:59:59Z"), "2026-08-01", "2026-08-31", false},
		{"after range", at("2026-09-01T00:00:00Z"), "2026-08-01", "2026-08-31", false},
		{"from only open range", at("2026-12-01T00:00:00Z"), "2026-08-01", "", true},
		{"from only excludes earlier", at("2026-07-01T00:00:00Z"), "2026-08-01", "", false},
		{"to only open range", at("2026-01-01T00:00:00Z"), "", "2026-08-31", true},
		{"to only excludes later", at("2026-09-15T00:00:00Z"), "", "2026-08-31", false},
		{"no bounds", at("2026-08-10T12:00:00Z"), "", "", true},
		{"unparsable bound ignored", at("2026-08-10T12:00:00Z"), "garbage", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MatchOrder(tt.order, OrderFilters{From: tt.from, To: tt.to})
			if got != tt.want {
				t.Errorf("MatchOrder(from=%q, to=%q) = %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestOrderComputeTotals(t *testing.T) {
	o := &Order{
		ID:           "ORD-001",
		CustomerName: "Ramesh",
		Items: []OrderItem{
			{Name: "Sodium Chloride", Quantity: 100, Price: 45},
			{Name: "Sulfuric Acid", Quantity: 20, Price: 320},
		},
		Shipping: 500,
	}
	o.ComputeTotals(10)

	if o.Subtotal != 10900 {
		t.Errorf("Subtotal = %d, want 10900", o.Subtotal)
	}
	if o.Tax != 1090 {
		t.Errorf("Tax = %d, want 1090", o.Tax)
	}
	if o.TotalAmount != 12490 {
		t.Errorf("TotalAmount = %d, want 12490", o.TotalAmount)
	}
	if o.Items[0].Total != 4500 || o.Items[1].Total != 6400 {
		t.Errorf("line totals = %d/%d, want 4500/6400", o.Items[0].Total, o.Items[1].Total)
	}
}

func TestOrderCloneDeepCopiesItems(t *testing.T) {
	o := &Order{ID: "ORD-001", CustomerName: "x", Items: []OrderItem{{Name: "A", Quantity: 1}}}
	c := o.Clone()
	c.Items[0].Quantity = 99
	if o.Items[0].Quantity != 1 {
		t.Error("Clone shares the items slice")
	}
}

func TestMatchProductStockVisibility(t *testing.T) {
	out := &Product{ID: "C001", Name: "x", Status: ProductOutOfStock}
	if MatchProduct(out, ProductFilters{HideOutOfStock: true}) {
		t.Error("out-of-stock product visible with HideOutOfStock set")
	}
	if !MatchProduct(out, ProductFilters{}) {
		t.Error("out-of-stock product hidden by default")
	}
}

func TestStatusForStock(t *testing.T) {
	tests := []struct {
		stock, threshold int
		want             string
	}{
		{0, 500, ProductOutOfStock},
		{499, 500, ProductLowStock},
		{500, 500, ProductActive},
		{2500, 500, ProductActive},
		{50, 100, ProductLowStock},
		{50, 0, ProductLowStock}, // falls back to the default threshold
	}
	for _, tt := range tests {
		if got := StatusForStock(tt.stock, tt.threshold); got != tt.want {
			t.Errorf("StatusForStock(%d, %d) = %s, want %s", tt.stock, tt.threshold, got, tt.want)
		}
	}
}
