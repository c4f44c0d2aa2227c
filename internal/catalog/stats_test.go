package catalog

import (
	"testing"
	"time"
)

func TestComputeDashboardStats(t *testing.T) {
	orders := []*Order{
		{ID: "ORD-001", CustomerName: "a", TotalAmount: 100, Payment: PaymentPaid, Status: OrderDelivered},
		{ID: "ORD-002", CustomerName: "b", TotalAmount: 50, Payment: PaymentPending, Status: OrderPending},
		{ID: "ORD-003", CustomerName: "c", TotalAmount: 200, Payment: PaymentPaid, Status: OrderShipped},
	}
	customers := []*Customer{
		{ID: "CUST-001", Name: "a", Status: CustomerActive},
		{ID: "CUST-002", Name: "b", Status: CustomerInactive},
	}
	products := []*Product{
		{ID: "C001", Name: "a", Status: ProductActive},
		{ID: "C002", Name: "b", Status: ProductLowStock},
		{ID: "C003", Name: "c", Status: ProductOutOfStock},
	}

	s := ComputeDashboardStats(orders, customers, products)
	if s.TotalRevenue != 300 {
		t.Errorf("TotalRevenue = %d, want 300 (paid only)", s.TotalRevenue)
	}
	if s.TotalOrders != 3 || s.TotalCustomers != 2 || s.TotalProducts != 3 {
		t.Errorf("totals = %d/%d/%d, want 3/2/3", s.TotalOrders, s.TotalCustomers, s.TotalProducts)
	}
	if s.PendingOrders != 1 {
		t.Errorf("PendingOrders = %d, want 1", s.PendingOrders)
	}
	if s.ActiveCustomers != 1 {
		t.Errorf("ActiveCustomers = %d, want 1", s.ActiveCustomers)
	}
	if s.LowStockProducts != 2 {
		t.Errorf("LowStockProducts = %d, want 2", s.LowStockProducts)
	}
}

func TestComputeDashboardStatsEmpty(t *testing.T) {
	s := ComputeDashboardStats(nil, nil, nil)
	if s != (DashboardStats{}) {
		t.Errorf("empty stats = %+v, want zeros", s)
	}
}

func TestRecentOrders(t *testing.T) {
	base := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	var orders []*Order
	for i := range 8 {
		orders = append(orders, &Order{
			ID:           "ORD-00" + string(rune('1'+i)),
			CustomerName: "x",
			Created:      base.AddDate(0, 0, i),
		})
	}
	recent := RecentOrders(orders, 5)
	if len(recent) != 5 {
		t.Fatalf("len = %d, want 5", len(recent))
	}
	if recent[0].ID != "ORD-008" {
		t.Errorf("first = %s, want ORD-008 (newest)", recent[0].ID)
	}
	for i := 1; i < len(recent); i++ {
		if recent[i].Created.After(recent[i-1].Created) {
			t.Errorf("not sorted newest first at %d", i)
		}
	}
}

func TestTopProducts(t *testing.T) {
	orders := []*Order{
		{ID: "ORD-001", CustomerName: "a", Payment: PaymentPaid, Items: []OrderItem{
			{Name: "Sodium Chloride", Quantity: 100, Total: 4500, Unit: "kg"},
			{Name: "Sulfuric Acid", Quantity: 20, Total: 6400, Unit: "L"},
		}},
		{ID: "ORD-002", CustomerName: "b", Payment: PaymentPaid, Items: []OrderItem{
			{Name: "Sodium Chloride", Quantity: 50, Total: 2250, Unit: "kg"},
		}},
		{ID: "ORD-003", CustomerName: "c", Payment: PaymentPending, Items: []OrderItem{
			{Name: "Nitric Acid", Quantity: 10, Total: 18000, Unit: "L"},
		}},
	}

	top := TopProducts(orders, 5)
	if len(top) != 2 {
		t.Fatalf("len = %d, want 2 (unpaid order excluded)", len(top))
	}
	if top[0].Name != "Sodium Chloride" || top[0].Revenue != 6750 || top[0].Quantity != 150 {
		t.Errorf("top[0] = %+v, want Sodium Chloride 6750/150", top[0])
	}
	if top[1].Name != "Sulfuric Acid" {
		t.Errorf("top[1] = %s, want Sulfuric Acid", top[1].Name)
	}
}

func TestTopProductsStableTies(t *testing.T) {
	orders := []*Order{
		{ID: "ORD-001", CustomerName: "a", Payment: PaymentPaid, Items: []OrderItem{
			{Name: "First", Quantity: 1, Total: 100},
			{Name: "Second", Quantity: 1, Total: 100},
			{Name: "Third", Quantity: 1, Total: 100},
		}},
	}
	top := TopProducts(orders, 5)
	want := []string{"First", "Second", "Third"}
	for i, name := range want {
		if top[i].Name != name {
			t.Errorf("top[%d] = %s, want %s (first-appearance order)", i, top[i].Name, name)
		}
	}
}

func TestLowStock(t *testing.T) {
	products := []*Product{
		{ID: "C001", Name: "a", Stock: 2000, Status: ProductActive},
		{ID: "C002", Name: "b", Stock: 120, Status: ProductLowStock},
		{ID: "C003", Name: "c", Stock: 0, Status: ProductOutOfStock},
		{ID: "C004", Name: "d", Stock: 450, Status: ProductLowStock},
	}
	low := LowStock(products, 10)
	if len(low) != 3 {
		t.Fatalf("len = %d, want 3", len(low))
	}
	if low[0].ID != "C003" || low[1].ID != "C002" || low[2].ID != "C004" {
		t.Errorf("order = %s/%s/%s, want C003/C002/C004 (lowest first)",
			low[0].ID, low[1].ID, low[2].ID)
	}
}

func TestDailyRevenueSeries(t *testing.T) {
	now := time.Date(2026, 8, 20, 15, 0, 0, 0, time.UTC)
	orders := []*Order{
		{ID: "ORD-001", CustomerName: "a", TotalAmount: 100, Payment: PaymentPaid,
			Created: time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC)},
		{ID: "ORD-002", CustomerName: "b", TotalAmount: 250, Payment: PaymentPaid,
			Created: time.Date(2026, 8, 18, 9, 0, 0, 0, time.UTC)},
		{ID: "ORD-003", CustomerName: "c", TotalAmount: 999, Payment: PaymentPending,
			Created: time.Date(2026, 8, 20, 11, 0, 0, 0, time.UTC)},
		{ID: "ORD-004", CustomerName: "d", TotalAmount: 500, Payment: PaymentPaid,
			Created: time.Date(2026, 8, 1, 11, 0, 0, 0, time.UTC)}, // outside window
	}

	series := DailyRevenueSeries(orders, 7, now)
	if len(series) != 7 {
		t.Fatalf("len = %d, want 7", len(series))
	}
	if series[0].Date != "2026-08-14" || series[6].Date != "2026-08-20" {
		t.Errorf("range = %s..%s, want 2026-08-14..2026-08-20", series[0].Date, series[6].Date)
	}
	if series[6].Revenue != 100 {
		t.Errorf("today revenue = %d, want 100 (unpaid excluded)", series[6].Revenue)
	}
	if series[4].Revenue != 250 {
		t.Errorf("day -2 revenue = %d, want 250", series[4].Revenue)
	}
	if series[0].Revenue != 0 {
		t.Errorf("empty day revenue = %d, want 0", series[0].Revenue)
	}
}

func TestDistributions(t *testing.T) {
	orders := []*Order{
		{ID: "ORD-001", CustomerName: "a", Status: OrderPending, Payment: PaymentPaid},
		{ID: "ORD-002", CustomerName: "b", Status: OrderPending, Payment: PaymentPending},
		{ID: "ORD-003", CustomerName: "c", Status: OrderDelivered, Payment: PaymentPaid},
	}

	t.Run("order status omits empty", func(t *testing.T) {
		dist := OrderStatusDistribution(orders)
		if len(dist) != 2 {
			t.Fatalf("len = %d, want 2", len(dist))
		}
		if dist[0].Name != OrderPending || dist[0].Value != 2 {
			t.Errorf("dist[0] = %+v, want Pending 2", dist[0])
		}
		if dist[1].Name != OrderDelivered || dist[1].Value != 1 {
			t.Errorf("dist[1] = %+v, want Delivered 1", dist[1])
		}
	})

	t.Run("payment keeps zero counts", func(t *testing.T) {
		dist := PaymentDistribution(orders)
		if len(dist) != 3 {
			t.Fatalf("len = %d, want 3", len(dist))
		}
		if dist[2].Name != PaymentFailed || dist[2].Value != 0 {
			t.Errorf("dist[2] = %+v, want Failed 0", dist[2])
		}
	})
}

func TestTopCustomers(t *testing.T) {
	orders := []*Order{
		{ID: "ORD-001", CustomerID: "CUST-001", CustomerName: "Ramesh", TotalAmount: 100, Payment: PaymentPaid},
		{ID: "ORD-002", CustomerID: "CUST-002", CustomerName: "Priya", TotalAmount: 500, Payment: PaymentPaid},
		{ID: "ORD-003", CustomerID: "CUST-001", CustomerName: "Ramesh", TotalAmount: 300, Payment: PaymentPaid},
		{ID: "ORD-004", CustomerID: "CUST-003", CustomerName: "Amit", TotalAmount: 9999, Payment: PaymentFailed},
	}
	top := TopCustomers(orders, 5)
	if len(top) != 2 {
		t.Fatalf("len = %d, want 2 (unpaid excluded)", len(top))
	}
	if top[0].CustomerID != "CUST-002" || top[0].TotalSpent != 500 {
		t.Errorf("top[0] = %+v, want CUST-002 500", top[0])
	}
	if top[1].CustomerID != "CUST-001" || top[1].TotalSpent != 400 || top[1].TotalOrders != 2 {
		t.Errorf("top[1] = %+v, want CUST-001 400/2", top[1])
	}
}

func TestComputeSummaryStats(t *testing.T) {
	orders := []*Order{
		{ID: "ORD-001", CustomerName: "a", TotalAmount: 100, Payment: PaymentPaid, Status: OrderDelivered},
		{ID: "ORD-002", CustomerName: "b", TotalAmount: 300, Payment: PaymentPaid, Status: OrderPending},
		{ID: "ORD-003", CustomerName: "c", TotalAmount: 50, Payment: PaymentPending, Status: OrderPending},
	}
	s := ComputeSummaryStats(orders)
	if s.TotalRevenue != 400 || s.PaidOrders != 2 {
		t.Errorf("revenue/paid = %d/%d, want 400/2", s.TotalRevenue, s.PaidOrders)
	}
	if s.AverageOrderValue != 200 {
		t.Errorf("AverageOrderValue = %v, want 200", s.AverageOrderValue)
	}
	if s.CompletedOrders != 1 || s.PendingOrders != 2 {
		t.Errorf("completed/pending = %d/%d, want 1/2", s.CompletedOrders, s.PendingOrders)
	}

	if got := ComputeSummaryStats(nil); got != (SummaryStats{}) {
		t.Errorf("empty summary = %+v, want zeros", got)
	}
}

func TestPredictOrders(t *testing.T) {
	t.Run("upward trend", func(t *testing.T) {
		series := []DailyCount{
			{Count: 10}, {Count: 10}, {Count: 10},
			{Count: 15}, {Count: 20}, {Count: 20}, {Count: 20},
		}
		p := PredictOrders(series)
		if p.Trend != "up" {
			t.Errorf("Trend = %s, want up", p.Trend)
		}
		// avg = 105/7 = 15; 15 * 7 * 0.3 = 31.5 -> 32
		if p.Prediction != 32 {
			t.Errorf("Prediction = %d, want 32", p.Prediction)
		}
		if p.Confidence != 85 {
			t.Errorf("Confidence = %d, want 85", p.Confidence)
		}
	})

	t.Run("stable trend", func(t *testing.T) {
		series := []DailyCount{
			{Count: 10}, {Count: 10}, {Count: 10},
			{Count: 10}, {Count: 10}, {Count: 10}, {Count: 10},
		}
		if p := PredictOrders(series); p.Trend != "stable" {
			t.Errorf("Trend = %s, want stable", p.Trend)
		}
	})

	t.Run("empty series", func(t *testing.T) {
		p := PredictOrders(nil)
		if p.Prediction != 0 || p.Trend != "stable" || p.Confidence != 0 {
			t.Errorf("empty = %+v, want zero stable", p)
		}
	})
}

func TestPredictRevenue(t *testing.T) {
	t.Run("downward trend", func(t *testing.T) {
		series := []DailyRevenue{
			{Revenue: 1000}, {Revenue: 1000}, {Revenue: 1000},
			{Revenue: 800}, {Revenue: 500}, {Revenue: 500}, {Revenue: 500},
		}
		p := PredictRevenue(series)
		if p.Trend != "down" {
			t.Errorf("Trend = %s, want down", p.Trend)
		}
		if p.Confidence != 82 {
			t.Errorf("Confidence = %d, want 82", p.Confidence)
		}
	})

	t.Run("all zero days", func(t *testing.T) {
		series := []DailyRevenue{{Revenue: 0}, {Revenue: 0}, {Revenue: 0}}
		p := PredictRevenue(series)
		if p.Prediction != 0 || p.Trend != "stable" {
			t.Errorf("zero series = %+v, want zero stable", p)
		}
	})
}

func TestAnalyzeSentiment(t *testing.T) {
	chats := []*ChatLog{
		{ID: "CH-001", Customer: "a", Sentiment: SentimentPositive},
		{ID: "CH-002", Customer: "b", Sentiment: SentimentPositive},
		{ID: "CH-003", Customer: "c", Sentiment: SentimentPositive},
		{ID: "CH-004", Customer: "d", Sentiment: SentimentNegative},
	}
	s := AnalyzeSentiment(chats)
	if s.Positive != 75 || s.Negative != 25 {
		t.Errorf("positive/negative = %v/%v, want 75/25", s.Positive, s.Negative)
	}
	if s.Overall != "positive" {
		t.Errorf("Overall = %s, want positive", s.Overall)
	}

	if got := AnalyzeSentiment(nil); got.Overall != "neutral" {
		t.Errorf("empty overall = %s, want neutral", got.Overall)
	}
}

func TestAnalyzeChatBehavior(t *testing.T) {
	at := func(hour int) time.Time {
		return time.Date(2026, 8, 20, hour, 0, 0, 0, time.UTC)
	}
	chats := []*ChatLog{
		{ID: "CH-001", Customer: "a", Status: ChatCompleted, ResponseTimeSecs: 20, Created: at(10)},
		{ID: "CH-002", Customer: "b", Status: ChatCompleted, ResponseTimeSecs: 30, Created: at(10)},
		{ID: "CH-003", Customer: "c", Status: ChatActive, ResponseTimeSecs: 40, Created: at(14)},
		{ID: "CH-004", Customer: "d", Status: ChatPending, ResponseTimeSecs: 30, Created: at(10)},
	}
	b := AnalyzeChatBehavior(chats)
	if b.PeakHour != "10:00" {
		t.Errorf("PeakHour = %s, want 10:00", b.PeakHour)
	}
	if b.AvgResponseTimeSecs != 30 {
		t.Errorf("AvgResponseTimeSecs = %d, want 30", b.AvgResponseTimeSecs)
	}
	if b.SatisfactionRatePct != 50 {
		t.Errorf("SatisfactionRatePct = %v, want 50", b.SatisfactionRatePct)
	}

	if got := AnalyzeChatBehavior(nil); got.PeakHour != "N/A" {
		t.Errorf("empty PeakHour = %s, want N/A", got.PeakHour)
	}
}

func TestStockAlerts(t *testing.T) {
	products := []*Product{
		{ID: "C001", Name: "Fine", Stock: 2000},
		{ID: "C002", Name: "Warning", Stock: 150},
		{ID: "C003", Name: "Critical", Stock: 40},
		{ID: "C004", Name: "Empty", Stock: 0},
		{ID: "C005", Name: "AlsoLow", Stock: 180},
	}
	alerts := StockAlerts(products)
	if len(alerts) != 3 {
		t.Fatalf("len = %d, want 3", len(alerts))
	}
	if alerts[0].Name != "Empty" || alerts[0].Status != "critical" || alerts[0].RecommendedOrder != 500 {
		t.Errorf("alerts[0] = %+v, want Empty/critical/500", alerts[0])
	}
	if alerts[1].Name != "Critical" || alerts[1].Status != "critical" {
		t.Errorf("alerts[1] = %+v, want Critical/critical", alerts[1])
	}
	if alerts[2].Name != "Warning" || alerts[2].Status != "warning" {
		t.Errorf("alerts[2] = %+v, want Warning/warning", alerts[2])
	}
}

func TestFilterOrdersByDateRange(t *testing.T) {
	at := func(day int) *Order {
		return &Order{ID: "ORD-001", CustomerName: "x",
			Created: time.Date(2026, 8, day, 12, 0, 0, 0, time.UTC)}
	}
	orders := []*Order{at(1), at(15), at(31)}

	if got := FilterOrdersByDateRange(orders, "", ""); len(got) != 3 {
		t.Errorf("no bounds len = %d, want 3", len(got))
	}
	if got := FilterOrdersByDateRange(orders, "2026-08-10", "2026-08-20"); len(got) != 1 {
		t.Errorf("bounded len = %d, want 1", len(got))
	}
	if got := FilterOrdersByDateRange(orders, "2026-08-10", ""); len(got) != 2 {
		t.Errorf("from-only len = %d, want 2", len(got))
	}
}
