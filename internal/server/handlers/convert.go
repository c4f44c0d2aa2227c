// Converts between catalog/identity entities and dto types.

package handlers

import (
	"time"

	"github.com/chembot/admin/internal/catalog"
	"github.com/chembot/admin/internal/server/dto"
	"github.com/chembot/admin/internal/storage"
	"github.com/chembot/admin/internal/storage/identity"
)

// timeToString formats a timestamp as RFC3339, or "" for the zero time.
func timeToString(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339)
}

func pageMeta[T any](p catalog.Page[T]) dto.Meta {
	return dto.Meta{
		Total: p.Total,
		Page:  p.Page,
		Pages: p.Pages,
		Limit: p.PageSize,
	}
}

func userToResponse(u *identity.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:        u.ID.String(),
		Email:     u.Email,
		Name:      u.Name,
		Theme:     u.Theme,
		Language:  u.Language,
		Created:   timeToString(u.Created),
		LastLogin: timeToString(u.LastLogin),
	}
}

func productToResponse(p *catalog.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:       p.ID,
		Name:     p.Name,
		Formula:  p.Formula,
		Stock:    p.Stock,
		Unit:     p.Unit,
		Price:    p.Price,
		Status:   p.Status,
		Created:  timeToString(p.Created),
		Modified: timeToString(p.Modified),
	}
}

func productsToResponse(products []*catalog.Product) []dto.ProductResponse {
	out := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, productToResponse(p))
	}
	return out
}

func orderToResponse(o *catalog.Order) dto.OrderResponse {
	items := make([]dto.OrderItemResponse, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, dto.OrderItemResponse{
			ProductID: it.ProductID,
			Name:      it.Name,
			Quantity:  it.Quantity,
			Unit:      it.Unit,
			Price:     it.Price,
			Total:     it.Total,
		})
	}
	return dto.OrderResponse{
		ID:            o.ID,
		CustomerID:    o.CustomerID,
		CustomerName:  o.CustomerName,
		CustomerPhone: o.CustomerPhone,
		Items:         items,
		Subtotal:      o.Subtotal,
		Tax:           o.Tax,
		Shipping:      o.Shipping,
		TotalAmount:   o.TotalAmount,
		Status:        o.Status,
		Payment:       o.Payment,
		PaymentMethod: o.PaymentMethod,
		Created:       timeToString(o.Created),
		Modified:      timeToString(o.Modified),
	}
}

func ordersToResponse(orders []*catalog.Order) []dto.OrderResponse {
	out := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, orderToResponse(o))
	}
	return out
}

func customerToResponse(c *catalog.Customer) dto.CustomerResponse {
	return dto.CustomerResponse{
		ID:          c.ID,
		Name:        c.Name,
		Email:       c.Email,
		Phone:       c.Phone,
		Company:     c.Company,
		Address:     c.Address,
		Status:      c.Status,
		TotalOrders: c.TotalOrders,
		TotalSpent:  c.TotalSpent,
		LastOrder:   timeToString(c.LastOrder),
		Joined:      timeToString(c.Joined),
	}
}

func chatToResponse(c *catalog.ChatLog) dto.ChatLogResponse {
	return dto.ChatLogResponse{
		ID:               c.ID,
		Customer:         c.Customer,
		Product:          c.Product,
		Status:           c.Status,
		Sentiment:        c.Sentiment,
		Messages:         c.Messages,
		ResponseTimeSecs: c.ResponseTimeSecs,
		Created:          timeToString(c.Created),
	}
}

func settingsToResponse(s *storage.Settings) *dto.SettingsResponse {
	return &dto.SettingsResponse{
		Business: dto.BusinessSettings{
			StoreName:         s.Business.StoreName,
			Currency:          s.Business.Currency,
			TaxPercent:        s.Business.TaxPercent,
			LowStockThreshold: s.Business.LowStockThreshold,
		},
		Notifications: dto.NotificationSettings{
			LowStockAlerts: s.Notifications.LowStockAlerts,
			OrderUpdates:   s.Notifications.OrderUpdates,
			DailySummary:   s.Notifications.DailySummary,
		},
		Profile: dto.ProfileSettings{
			Name:  s.Profile.Name,
			Email: s.Profile.Email,
			Phone: s.Profile.Phone,
		},
	}
}

func revenuePoints(series []catalog.DailyRevenue) []dto.RevenuePoint {
	out := make([]dto.RevenuePoint, 0, len(series))
	for _, p := range series {
		out = append(out, dto.RevenuePoint{Date: p.Date, Day: p.Day, Revenue: p.Revenue})
	}
	return out
}

func countPoints(series []catalog.DailyCount) []dto.CountPoint {
	out := make([]dto.CountPoint, 0, len(series))
	for _, p := range series {
		out = append(out, dto.CountPoint{Date: p.Date, Day: p.Day, Count: p.Count})
	}
	return out
}

func nameValues(counts []catalog.StatusCount) []dto.NameValue {
	out := make([]dto.NameValue, 0, len(counts))
	for _, c := range counts {
		out = append(out, dto.NameValue{Name: c.Name, Value: c.Value})
	}
	return out
}

func productSalesRows(sales []catalog.ProductSales) []dto.ProductSalesRow {
	out := make([]dto.ProductSalesRow, 0, len(sales))
	for _, s := range sales {
		out = append(out, dto.ProductSalesRow{
			Name:     s.Name,
			Quantity: s.Quantity,
			Revenue:  s.Revenue,
			Orders:   s.Orders,
			Unit:     s.Unit,
		})
	}
	return out
}

func customerSalesRows(sales []catalog.CustomerSales) []dto.CustomerSalesRow {
	out := make([]dto.CustomerSalesRow, 0, len(sales))
	for _, s := range sales {
		out = append(out, dto.CustomerSalesRow{
			CustomerID:   s.CustomerID,
			CustomerName: s.CustomerName,
			TotalSpent:   s.TotalSpent,
			TotalOrders:  s.TotalOrders,
		})
	}
	return out
}

func stockAlertRows(alerts []catalog.StockAlert) []dto.StockAlertRow {
	out := make([]dto.StockAlertRow, 0, len(alerts))
	for _, a := range alerts {
		out = append(out, dto.StockAlertRow{
			Name:             a.Name,
			CurrentStock:     a.CurrentStock,
			Status:           a.Status,
			RecommendedOrder: a.RecommendedOrder,
		})
	}
	return out
}

func predictionRow(p catalog.Prediction) dto.PredictionRow {
	return dto.PredictionRow{
		Prediction: p.Prediction,
		Trend:      p.Trend,
		Percentage: p.Percentage,
		Confidence: p.Confidence,
	}
}

func recommendationRows(recs []catalog.Recommendation) []dto.RecommendationRow {
	out := make([]dto.RecommendationRow, 0, len(recs))
	for _, r := range recs {
		out = append(out, dto.RecommendationRow{
			Type:        r.Type,
			Priority:    r.Priority,
			Title:       r.Title,
			Description: r.Description,
			Action:      r.Action,
		})
	}
	return out
}
