// Handles dashboard stats and chart series.

package handlers

import (
	"context"
	"time"

	"github.com/chembot/admin/internal/catalog"
	"github.com/chembot/admin/internal/server/dto"
)

// Panel sizes matching the admin dashboard layout.
const (
	recentOrdersCount = 5
	lowStockCount     = 5
	topProductsCount  = 5
	defaultChartDays  = 7
)

// DashboardHandler handles dashboard requests.
type DashboardHandler struct {
	svc *Services
}

// NewDashboardHandler creates a new dashboard handler.
func NewDashboardHandler(svc *Services) *DashboardHandler {
	return &DashboardHandler{svc: svc}
}

// Stats returns the summary cards plus the recent orders and low stock
// panels, aggregated over the full collections.
func (h *DashboardHandler) Stats(ctx context.Context, req *dto.GetDashboardStatsRequest) (*dto.DashboardStatsResponse, error) {
	orders := h.svc.Orders.All()
	customers := h.svc.Customers.All()
	products := h.svc.Products.All()

	stats := catalog.ComputeDashboardStats(orders, customers, products)
	return &dto.DashboardStatsResponse{
		TotalOrders:      stats.TotalOrders,
		TotalCustomers:   stats.TotalCustomers,
		TotalProducts:    stats.TotalProducts,
		TotalRevenue:     stats.TotalRevenue,
		PendingOrders:    stats.PendingOrders,
		ActiveCustomers:  stats.ActiveCustomers,
		LowStockProducts: stats.LowStockProducts,
		RecentOrders:     ordersToResponse(catalog.RecentOrders(orders, recentOrdersCount)),
		LowStock:         productsToResponse(catalog.LowStock(products, lowStockCount)),
	}, nil
}

// Charts returns the dashboard time series and distributions.
func (h *DashboardHandler) Charts(ctx context.Context, req *dto.GetDashboardChartsRequest) (*dto.DashboardChartsResponse, error) {
	days := req.Days
	if days == 0 {
		days = defaultChartDays
	}
	now := time.Now()
	orders := h.svc.Orders.All()
	chats := h.svc.Chats.All()

	return &dto.DashboardChartsResponse{
		Revenue:       revenuePoints(catalog.DailyRevenueSeries(orders, days, now)),
		Conversations: countPoints(catalog.ConversationSeries(chats, days, now)),
		OrderStatus:   nameValues(catalog.OrderStatusDistribution(orders)),
		TopProducts:   productSalesRows(catalog.TopProducts(orders, topProductsCount)),
	}, nil
}

// Insights returns the projections plus the recommendations derived from
// them, aggregated over the full collections.
func (h *DashboardHandler) Insights(ctx context.Context, req *dto.GetDashboardInsightsRequest) (*dto.DashboardInsightsResponse, error) {
	days := req.Days
	if days == 0 {
		days = defaultChartDays
	}
	insights := catalog.ComputeInsights(h.svc.Orders.All(), h.svc.Products.All(), h.svc.Chats.All(), days, time.Now())

	return &dto.DashboardInsightsResponse{
		PredictedOrders:  predictionRow(insights.OrderPrediction),
		PredictedRevenue: predictionRow(insights.RevenuePrediction),
		StockAlerts:      stockAlertRows(insights.StockAlerts),
		Sentiment: dto.SentimentRow{
			Positive: insights.Sentiment.Positive,
			Neutral:  insights.Sentiment.Neutral,
			Negative: insights.Sentiment.Negative,
			Overall:  insights.Sentiment.Overall,
		},
		ChatBehavior: dto.ChatBehaviorRow{
			PeakHour:            insights.ChatBehavior.PeakHour,
			AvgResponseTimeSecs: insights.ChatBehavior.AvgResponseTimeSecs,
			SatisfactionRatePct: insights.ChatBehavior.SatisfactionRatePct,
			TotalInteractions:   insights.ChatBehavior.TotalInteractions,
		},
		Recommendations: recommendationRows(catalog.Recommendations(insights)),
	}, nil
}
