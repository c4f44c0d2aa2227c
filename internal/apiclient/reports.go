package apiclient

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/chembot/admin/internal/server/dto"
)

// DashboardStats returns the dashboard stat cards and panels.
func (c *Client) DashboardStats(ctx context.Context) (*dto.DashboardStatsResponse, error) {
	out := &dto.DashboardStatsResponse{}
	if err := c.do(ctx, http.MethodGet, "/api/dashboard/stats", nil, out); err != nil {
		return nil, err
	}
	return out, nil
}

// DashboardCharts returns the dashboard chart series. days <= 0 uses the
// server default.
func (c *Client) DashboardCharts(ctx context.Context, days int) (*dto.DashboardChartsResponse, error) {
	v := url.Values{}
	if days > 0 {
		v.Set("days", strconv.Itoa(days))
	}
	out := &dto.DashboardChartsResponse{}
	if err := c.do(ctx, http.MethodGet, "/api/dashboard/charts"+encodeQuery(v), nil, out); err != nil {
		return nil, err
	}
	return out, nil
}

// DashboardInsights returns the projections and recommendations. days <= 0
// uses the server default.
func (c *Client) DashboardInsights(ctx context.Context, days int) (*dto.DashboardInsightsResponse, error) {
	v := url.Values{}
	if days > 0 {
		v.Set("days", strconv.Itoa(days))
	}
	out := &dto.DashboardInsightsResponse{}
	if err := c.do(ctx, http.MethodGet, "/api/dashboard/insights"+encodeQuery(v), nil, out); err != nil {
		return nil, err
	}
	return out, nil
}

// SalesReport returns the sales report, optionally scoped to a date range.
// Dates are YYYY-MM-DD; an empty string leaves that side of the range open.
func (c *Client) SalesReport(ctx context.Context, from, to string) (*dto.SalesReportResponse, error) {
	v := url.Values{}
	if from != "" {
		v.Set("from", from)
	}
	if to != "" {
		v.Set("to", to)
	}
	out := &dto.SalesReportResponse{}
	if err := c.do(ctx, http.MethodGet, "/api/reports/sales"+encodeQuery(v), nil, out); err != nil {
		return nil, err
	}
	return out, nil
}

// ProductsReport returns the product performance report.
func (c *Client) ProductsReport(ctx context.Context) (*dto.ProductsReportResponse, error) {
	out := &dto.ProductsReportResponse{}
	if err := c.do(ctx, http.MethodGet, "/api/reports/products", nil, out); err != nil {
		return nil, err
	}
	return out, nil
}

// CustomersReport returns the customer insights report.
func (c *Client) CustomersReport(ctx context.Context) (*dto.CustomersReportResponse, error) {
	out := &dto.CustomersReportResponse{}
	if err := c.do(ctx, http.MethodGet, "/api/reports/customers", nil, out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetSettings returns the business settings blob.
func (c *Client) GetSettings(ctx context.Context) (*dto.SettingsResponse, error) {
	out := &dto.SettingsResponse{}
	if err := c.do(ctx, http.MethodGet, "/api/settings", nil, out); err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateSettings replaces the business settings blob.
func (c *Client) UpdateSettings(ctx context.Context, req *dto.UpdateSettingsRequest) (*dto.SettingsResponse, error) {
	out := &dto.SettingsResponse{}
	if err := c.do(ctx, http.MethodPut, "/api/settings", req, out); err != nil {
		return nil, err
	}
	return out, nil
}

// Subscribe registers a browser push subscription for the current user.
func (c *Client) Subscribe(ctx context.Context, req *dto.SubscribeRequest) (*dto.SubscribeResponse, error) {
	out := &dto.SubscribeResponse{}
	if err := c.do(ctx, http.MethodPost, "/api/notifications/subscribe", req, out); err != nil {
		return nil, err
	}
	return out, nil
}
