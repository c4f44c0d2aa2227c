package catalog

import (
	"math"
	"slices"
	"time"
)

// Aggregate statistics operate over the full collection, never the paginated
// slice. Every function treats an empty input as a zero result.

// DashboardStats is the dashboard summary card data.
type DashboardStats struct {
	TotalOrders      int `json:"totalOrders"`
	TotalCustomers   int `json:"totalCustomers"`
	TotalProducts    int `json:"totalProducts"`
	TotalRevenue     int `json:"totalRevenue"`
	PendingOrders    int `json:"pendingOrders"`
	ActiveCustomers  int `json:"activeCustomers"`
	LowStockProducts int `json:"lowStockProducts"`
}

// ComputeDashboardStats computes the summary cards in one pass per
// collection. Revenue counts paid orders only.
func ComputeDashboardStats(orders []*Order, customers []*Customer, products []*Product) DashboardStats {
	s := DashboardStats{
		TotalOrders:    len(orders),
		TotalCustomers: len(customers),
		TotalProducts:  len(products),
	}
	for _, o := range orders {
		if o.Payment == PaymentPaid {
			s.TotalRevenue += o.TotalAmount
		}
		if o.Status == OrderPending {
			s.PendingOrders++
		}
	}
	for _, c := range customers {
		if c.Status == CustomerActive {
			s.ActiveCustomers++
		}
	}
	for _, p := range products {
		if p.Status == ProductLowStock || p.Status == ProductOutOfStock {
			s.LowStockProducts++
		}
	}
	return s
}

// RecentOrders returns the n most recently created orders, newest first.
func RecentOrders(orders []*Order, n int) []*Order {
	sorted := slices.Clone(orders)
	slices.SortStableFunc(sorted, func(a, b *Order) int {
		return b.Created.Compare(a.Created)
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

// ProductSales aggregates one product's sales across paid orders.
type ProductSales struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Revenue  int    `json:"revenue"`
	Orders   int    `json:"orders"`
	Unit     string `json:"unit,omitempty"`
}

// TopProducts aggregates line items across paid orders and returns the top n
// products by revenue. Ties keep first-appearance order.
func TopProducts(orders []*Order, n int) []ProductSales {
	byName := map[string]int{}
	var sales []ProductSales
	for _, o := range orders {
		if o.Payment != PaymentPaid {
			continue
		}
		for _, item := range o.Items {
			i, ok := byName[item.Name]
			if !ok {
				i = len(sales)
				byName[item.Name] = i
				sales = append(sales, ProductSales{Name: item.Name, Unit: item.Unit})
			}
			sales[i].Quantity += item.Quantity
			sales[i].Revenue += item.Total
			sales[i].Orders++
		}
	}
	slices.SortStableFunc(sales, func(a, b ProductSales) int {
		return b.Revenue - a.Revenue
	})
	if len(sales) > n {
		sales = sales[:n]
	}
	return sales
}

// LowStock returns up to n products that are low on or out of stock, lowest
// stock first.
func LowStock(products []*Product, n int) []*Product {
	var low []*Product
	for _, p := range products {
		if p.Status == ProductLowStock || p.Status == ProductOutOfStock {
			low = append(low, p)
		}
	}
	slices.SortStableFunc(low, func(a, b *Product) int {
		return a.Stock - b.Stock
	})
	if len(low) > n {
		low = low[:n]
	}
	return low
}

// DailyRevenue is one day of the revenue chart.
type DailyRevenue struct {
	Date    string `json:"date"`
	Day     string `json:"day"`
	Revenue int    `json:"revenue"`
}

// DailyRevenueSeries computes paid revenue per day for the last days days
// ending at now, oldest first.
func DailyRevenueSeries(orders []*Order, days int, now time.Time) []DailyRevenue {
	out := make([]DailyRevenue, 0, days)
	for i := days - 1; i >= 0; i-- {
		day := now.AddDate(0, 0, -i)
		start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
		end := start.AddDate(0, 0, 1)
		revenue := 0
		for _, o := range orders {
			if o.Payment == PaymentPaid && !o.Created.Before(start) && o.Created.Before(end) {
				revenue += o.TotalAmount
			}
		}
		out = append(out, DailyRevenue{
			Date:    start.Format(time.DateOnly),
			Day:     start.Format("Mon"),
			Revenue: revenue,
		})
	}
	return out
}

// StatusCount is one slice of a distribution chart.
type StatusCount struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// OrderStatusDistribution counts orders per status in a fixed status order,
// omitting statuses with no orders.
func OrderStatusDistribution(orders []*Order) []StatusCount {
	statuses := []string{OrderPending, OrderProcessing, OrderShipped, OrderDelivered, OrderCancelled}
	counts := map[string]int{}
	for _, o := range orders {
		counts[o.Status]++
	}
	var out []StatusCount
	for _, s := range statuses {
		if counts[s] > 0 {
			out = append(out, StatusCount{Name: s, Value: counts[s]})
		}
	}
	return out
}

// PaymentDistribution counts orders per payment status. All statuses appear,
// including zero counts.
func PaymentDistribution(orders []*Order) []StatusCount {
	statuses := []string{PaymentPaid, PaymentPending, PaymentFailed}
	counts := map[string]int{}
	for _, o := range orders {
		counts[o.Payment]++
	}
	out := make([]StatusCount, 0, len(statuses))
	for _, s := range statuses {
		out = append(out, StatusCount{Name: s, Value: counts[s]})
	}
	return out
}

// CustomerSales aggregates one customer's paid orders.
type CustomerSales struct {
	CustomerID   string `json:"customerId"`
	CustomerName string `json:"customerName"`
	TotalSpent   int    `json:"totalSpent"`
	TotalOrders  int    `json:"totalOrders"`
}

// TopCustomers returns the top n customers by paid revenue. Ties keep
// first-appearance order.
func TopCustomers(orders []*Order, n int) []CustomerSales {
	byID := map[string]int{}
	var sales []CustomerSales
	for _, o := range orders {
		if o.Payment != PaymentPaid {
			continue
		}
		i, ok := byID[o.CustomerID]
		if !ok {
			i = len(sales)
			byID[o.CustomerID] = i
			sales = append(sales, CustomerSales{CustomerID: o.CustomerID, CustomerName: o.CustomerName})
		}
		sales[i].TotalSpent += o.TotalAmount
		sales[i].TotalOrders++
	}
	slices.SortStableFunc(sales, func(a, b CustomerSales) int {
		return b.TotalSpent - a.TotalSpent
	})
	if len(sales) > n {
		sales = sales[:n]
	}
	return sales
}

// SummaryStats is the sales report header.
type SummaryStats struct {
	TotalRevenue      int     `json:"totalRevenue"`
	TotalOrders       int     `json:"totalOrders"`
	CompletedOrders   int     `json:"completedOrders"`
	PendingOrders     int     `json:"pendingOrders"`
	PaidOrders        int     `json:"paidOrders"`
	AverageOrderValue float64 `json:"averageOrderValue"`
}

// ComputeSummaryStats computes the sales report header in one pass.
func ComputeSummaryStats(orders []*Order) SummaryStats {
	var s SummaryStats
	s.TotalOrders = len(orders)
	for _, o := range orders {
		switch o.Status {
		case OrderDelivered:
			s.CompletedOrders++
		case OrderPending:
			s.PendingOrders++
		}
		if o.Payment == PaymentPaid {
			s.PaidOrders++
			s.TotalRevenue += o.TotalAmount
		}
	}
	if s.PaidOrders > 0 {
		s.AverageOrderValue = float64(s.TotalRevenue) / float64(s.PaidOrders)
	}
	return s
}

// FilterOrdersByDateRange returns orders created within the inclusive
// [from, to] day range. Open bounds pass everything on that side.
func FilterOrdersByDateRange(orders []*Order, from, to string) []*Order {
	if from == "" && to == "" {
		return orders
	}
	var out []*Order
	for _, o := range orders {
		if inDateRange(o.Created, from, to) {
			out = append(out, o)
		}
	}
	return out
}

// DailyCount is one day of the conversation chart.
type DailyCount struct {
	Date  string `json:"date"`
	Day   string `json:"day"`
	Count int    `json:"count"`
}

// ConversationSeries counts chats per day for the last days days ending at
// now, oldest first.
func ConversationSeries(chats []*ChatLog, days int, now time.Time) []DailyCount {
	out := make([]DailyCount, 0, days)
	for i := days - 1; i >= 0; i-- {
		day := now.AddDate(0, 0, -i)
		start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
		end := start.AddDate(0, 0, 1)
		count := 0
		for _, c := range chats {
			if !c.Created.Before(start) && c.Created.Before(end) {
				count++
			}
		}
		out = append(out, DailyCount{
			Date:  start.Format(time.DateOnly),
			Day:   start.Format("Mon"),
			Count: count,
		})
	}
	return out
}

// Prediction is a projected weekly figure with its trend direction.
type Prediction struct {
	Prediction int     `json:"prediction"`
	Trend      string  `json:"trend"`
	Percentage float64 `json:"percentage"`
	Confidence int     `json:"confidence"`
}

// orderConversionRate is the assumed share of conversations that convert to
// orders.
const orderConversionRate = 0.3

// PredictOrders projects next week's orders from the conversation trend:
// average daily conversations times seven times the conversion rate. The
// trend compares the last three days against the first three; swings above
// ten percent mark it up or down.
func PredictOrders(series []DailyCount) Prediction {
	if len(series) == 0 {
		return Prediction{Trend: "stable"}
	}
	total := 0
	for _, d := range series {
		total += d.Count
	}
	avg := float64(total) / float64(len(series))

	change := trendChange(series, func(d DailyCount) float64 { return float64(d.Count) })
	trend := "stable"
	if change > 10 {
		trend = "up"
	} else if change < -10 {
		trend = "down"
	}
	return Prediction{
		Prediction: int(math.Round(avg * 7 * orderConversionRate)),
		Trend:      trend,
		Percentage: math.Abs(change),
		Confidence: 85,
	}
}

// PredictRevenue projects next week's revenue from the daily revenue series,
// scaled by the observed growth rate. Swings above five percent mark the
// trend up or down.
func PredictRevenue(series []DailyRevenue) Prediction {
	if len(series) == 0 {
		return Prediction{Trend: "stable"}
	}
	total := 0
	for _, d := range series {
		total += d.Revenue
	}
	avg := float64(total) / float64(len(series))

	growth := trendChange(series, func(d DailyRevenue) float64 { return float64(d.Revenue) })
	trend := "stable"
	if growth > 5 {
		trend = "up"
	} else if growth < -5 {
		trend = "down"
	}
	return Prediction{
		Prediction: int(math.Round(avg * 7 * (1 + growth/100))),
		Trend:      trend,
		Percentage: growth,
		Confidence: 82,
	}
}

// trendChange compares the mean of the last three points against the first
// three, as a percentage of the earlier mean. Zero when the earlier mean is
// zero.
func trendChange[T any](series []T, value func(T) float64) float64 {
	n := min(3, len(series))
	recent, previous := 0.0, 0.0
	for _, d := range series[len(series)-n:] {
		recent += value(d)
	}
	for _, d := range series[:n] {
		previous += value(d)
	}
	if previous == 0 {
		return 0
	}
	return (recent - previous) / previous * 100
}

// SentimentBreakdown is the chat sentiment distribution in percent.
type SentimentBreakdown struct {
	Positive float64 `json:"positive"`
	Neutral  float64 `json:"neutral"`
	Negative float64 `json:"negative"`
	Overall  string  `json:"overall"`
}

// AnalyzeSentiment computes the sentiment split over all chats. Overall is
// positive above 60% positive, negative above 30% negative, else neutral.
func AnalyzeSentiment(chats []*ChatLog) SentimentBreakdown {
	out := SentimentBreakdown{Overall: "neutral"}
	if len(chats) == 0 {
		return out
	}
	var pos, neu, neg int
	for _, c := range chats {
		switch c.Sentiment {
		case SentimentPositive:
			pos++
		case SentimentNeutral:
			neu++
		case SentimentNegative:
			neg++
		}
	}
	total := float64(len(chats))
	out.Positive = float64(pos) / total * 100
	out.Neutral = float64(neu) / total * 100
	out.Negative = float64(neg) / total * 100
	if out.Positive > 60 {
		out.Overall = "positive"
	} else if out.Negative > 30 {
		out.Overall = "negative"
	}
	return out
}

// ChatBehavior summarizes bot interaction patterns.
type ChatBehavior struct {
	PeakHour            string  `json:"peakHour"`
	AvgResponseTimeSecs int     `json:"avgResponseTimeSecs"`
	SatisfactionRatePct float64 `json:"satisfactionRatePct"`
	TotalInteractions   int     `json:"totalInteractions"`
}

// AnalyzeChatBehavior computes the busiest hour, the mean response time, and
// the share of completed conversations.
func AnalyzeChatBehavior(chats []*ChatLog) ChatBehavior {
	out := ChatBehavior{PeakHour: "N/A"}
	if len(chats) == 0 {
		return out
	}
	hours := map[int]int{}
	totalResponse := 0
	completed := 0
	for _, c := range chats {
		hours[c.Created.Hour()]++
		totalResponse += c.ResponseTimeSecs
		if c.Status == ChatCompleted {
			completed++
		}
	}
	peak, best := 0, 0
	for h := 0; h < 24; h++ {
		if hours[h] > best {
			peak, best = h, hours[h]
		}
	}
	out.PeakHour = time.Date(0, 1, 1, peak, 0, 0, 0, time.UTC).Format("15:00")
	out.AvgResponseTimeSecs = int(math.Round(float64(totalResponse) / float64(len(chats))))
	out.SatisfactionRatePct = float64(completed) / float64(len(chats)) * 100
	out.TotalInteractions = len(chats)
	return out
}

// StockAlert is one entry of the restock recommendation list.
type StockAlert struct {
	Name             string `json:"name"`
	CurrentStock     int    `json:"currentStock"`
	Status           string `json:"status"`
	RecommendedOrder int    `json:"recommendedOrder"`
}

// Restock alert thresholds.
const (
	stockCritical = 100
	stockWarning  = 200
)

// StockAlerts returns up to three products below the warning threshold with
// a recommended restock quantity, lowest stock first.
func StockAlerts(products []*Product) []StockAlert {
	var alerts []StockAlert
	for _, p := range products {
		if p.Stock >= stockWarning {
			continue
		}
		status := "warning"
		if p.Stock < stockCritical {
			status = "critical"
		}
		alerts = append(alerts, StockAlert{
			Name:             p.Name,
			CurrentStock:     p.Stock,
			Status:           status,
			RecommendedOrder: max(DefaultLowStockThreshold-p.Stock, 0),
		})
	}
	slices.SortStableFunc(alerts, func(a, b StockAlert) int {
		return a.CurrentStock - b.CurrentStock
	})
	if len(alerts) > 3 {
		alerts = alerts[:3]
	}
	return alerts
}
