// Handles the sales, products, and customers reports.

package handlers

import (
	"context"
	"time"

	"github.com/chembot/admin/internal/catalog"
	"github.com/chembot/admin/internal/server/dto"
)

const topCustomersCount = 5

// ReportHandler handles report requests.
type ReportHandler struct {
	svc *Services
}

// NewReportHandler creates a new report handler.
func NewReportHandler(svc *Services) *ReportHandler {
	return &ReportHandler{svc: svc}
}

// Sales returns the sales report. From/To restrict the summary; the series
// and projections always cover the trailing week.
func (h *ReportHandler) Sales(ctx context.Context, req *dto.SalesReportRequest) (*dto.SalesReportResponse, error) {
	now := time.Now()
	orders := h.svc.Orders.All()
	chats := h.svc.Chats.All()

	scoped := catalog.FilterOrdersByDateRange(orders, req.From, req.To)
	summary := catalog.ComputeSummaryStats(scoped)
	revenue := catalog.DailyRevenueSeries(orders, defaultChartDays, now)
	conversations := catalog.ConversationSeries(chats, defaultChartDays, now)

	return &dto.SalesReportResponse{
		Summary: dto.SalesSummary{
			TotalRevenue:      summary.TotalRevenue,
			TotalOrders:       summary.TotalOrders,
			CompletedOrders:   summary.CompletedOrders,
			PendingOrders:     summary.PendingOrders,
			PaidOrders:        summary.PaidOrders,
			AverageOrderValue: summary.AverageOrderValue,
		},
		Revenue:          revenuePoints(revenue),
		PaymentStatus:    nameValues(catalog.PaymentDistribution(scoped)),
		PredictedOrders:  predictionRow(catalog.PredictOrders(conversations)),
		PredictedRevenue: predictionRow(catalog.PredictRevenue(revenue)),
	}, nil
}

// Products returns the products report.
func (h *ReportHandler) Products(ctx context.Context, req *dto.ProductsReportRequest) (*dto.ProductsReportResponse, error) {
	orders := h.svc.Orders.All()
	products := h.svc.Products.All()
	return &dto.ProductsReportResponse{
		TopProducts: productSalesRows(catalog.TopProducts(orders, topProductsCount)),
		StockAlerts: stockAlertRows(catalog.StockAlerts(products)),
	}, nil
}

// Customers returns the customers report.
func (h *ReportHandler) Customers(ctx context.Context, req *dto.CustomersReportRequest) (*dto.CustomersReportResponse, error) {
	orders := h.svc.Orders.All()
	chats := h.svc.Chats.All()

	sentiment := catalog.AnalyzeSentiment(chats)
	behavior := catalog.AnalyzeChatBehavior(chats)
	return &dto.CustomersReportResponse{
		TopCustomers: customerSalesRows(catalog.TopCustomers(orders, topCustomersCount)),
		Sentiment: dto.SentimentRow{
			Positive: sentiment.Positive,
			Neutral:  sentiment.Neutral,
			Negative: sentiment.Negative,
			Overall:  sentiment.Overall,
		},
		ChatBehavior: dto.ChatBehaviorRow{
			PeakHour:            behavior.PeakHour,
			AvgResponseTimeSecs: behavior.AvgResponseTimeSecs,
			SatisfactionRatePct: behavior.SatisfactionRatePct,
			TotalInteractions:   behavior.TotalInteractions,
		},
	}, nil
}
