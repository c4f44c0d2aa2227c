package server

import (
	"context"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/chembot/admin/internal/server/dto"
	"github.com/chembot/admin/internal/server/handlers"
	"github.com/chembot/admin/internal/server/ratelimit"
	"github.com/chembot/admin/internal/storage/identity"
)

// authed adapts a handler that requires authentication but does not use the
// authenticated user.
func authed[In any, PtrIn interface {
	*In
	dto.Validatable
}, Out any](fn func(context.Context, PtrIn) (*Out, error), svc *handlers.Services, cfg *handlers.Config, limiters *ratelimit.Config) http.Handler {
	return WrapAuth(func(ctx context.Context, _ *identity.User, in PtrIn) (*Out, error) {
		return fn(ctx, in)
	}, svc, cfg, limiters)
}

// NewRouter creates the HTTP router with all API endpoints.
func NewRouter(svc *handlers.Services, cfg *handlers.Config, limiters *ratelimit.Config) http.Handler {
	mux := http.NewServeMux()

	authHandler := handlers.NewAuthHandler(svc, cfg)
	productHandler := handlers.NewProductHandler(svc, cfg)
	orderHandler := handlers.NewOrderHandler(svc, cfg)
	customerHandler := handlers.NewCustomerHandler(svc, cfg)
	chatHandler := handlers.NewChatHandler(svc)
	dashboardHandler := handlers.NewDashboardHandler(svc)
	reportHandler := handlers.NewReportHandler(svc)
	settingsHandler := handlers.NewSettingsHandler(svc)
	notificationHandler := handlers.NewNotificationHandler(svc)
	healthHandler := handlers.NewHealthHandler(cfg.Version)

	// Public endpoints.
	mux.Handle("GET /api/health", Wrap(healthHandler.Health, cfg, limiters))
	mux.Handle("POST /api/auth/login", Wrap(authHandler.Login, cfg, limiters))
	mux.Handle("GET /metrics", promhttp.Handler())

	// Session endpoints.
	mux.Handle("POST /api/auth/logout", WrapAuth(authHandler.Logout, svc, cfg, limiters))
	mux.Handle("GET /api/auth/me", WrapAuth(authHandler.GetMe, svc, cfg, limiters))
	mux.Handle("PUT /api/auth/settings", WrapAuth(authHandler.UpdateUserSettings, svc, cfg, limiters))

	// Products.
	mux.Handle("GET /api/products", authed(productHandler.List, svc, cfg, limiters))
	mux.Handle("POST /api/products", authed(productHandler.Create, svc, cfg, limiters))
	mux.Handle("POST /api/products/sync", authed(productHandler.Sync, svc, cfg, limiters))
	mux.Handle("GET /api/products/{id}", authed(productHandler.Get, svc, cfg, limiters))
	mux.Handle("PUT /api/products/{id}", authed(productHandler.Update, svc, cfg, limiters))
	mux.Handle("PATCH /api/products/{id}", authed(productHandler.Patch, svc, cfg, limiters))
	mux.Handle("DELETE /api/products/{id}", authed(productHandler.Delete, svc, cfg, limiters))

	// Orders.
	mux.Handle("GET /api/orders", authed(orderHandler.List, svc, cfg, limiters))
	mux.Handle("POST /api/orders", authed(orderHandler.Create, svc, cfg, limiters))
	mux.Handle("GET /api/orders/{id}", authed(orderHandler.Get, svc, cfg, limiters))
	mux.Handle("PUT /api/orders/{id}", authed(orderHandler.Update, svc, cfg, limiters))
	mux.Handle("PATCH /api/orders/{id}", authed(orderHandler.PatchStatus, svc, cfg, limiters))
	mux.Handle("DELETE /api/orders/{id}", authed(orderHandler.Delete, svc, cfg, limiters))

	// Customers.
	mux.Handle("GET /api/customers", authed(customerHandler.List, svc, cfg, limiters))
	mux.Handle("POST /api/customers", authed(customerHandler.Create, svc, cfg, limiters))
	mux.Handle("GET /api/customers/{id}", authed(customerHandler.Get, svc, cfg, limiters))
	mux.Handle("PUT /api/customers/{id}", authed(customerHandler.Update, svc, cfg, limiters))
	mux.Handle("PATCH /api/customers/{id}", authed(customerHandler.Patch, svc, cfg, limiters))
	mux.Handle("DELETE /api/customers/{id}", authed(customerHandler.Delete, svc, cfg, limiters))

	// Chats.
	mux.Handle("GET /api/chats", authed(chatHandler.List, svc, cfg, limiters))

	// Dashboard.
	mux.Handle("GET /api/dashboard/stats", authed(dashboardHandler.Stats, svc, cfg, limiters))
	mux.Handle("GET /api/dashboard/charts", authed(dashboardHandler.Charts, svc, cfg, limiters))
	mux.Handle("GET /api/dashboard/insights", authed(dashboardHandler.Insights, svc, cfg, limiters))

	// Reports.
	mux.Handle("GET /api/reports/sales", authed(reportHandler.Sales, svc, cfg, limiters))
	mux.Handle("GET /api/reports/products", authed(reportHandler.Products, svc, cfg, limiters))
	mux.Handle("GET /api/reports/customers", authed(reportHandler.Customers, svc, cfg, limiters))

	// Settings.
	mux.Handle("GET /api/settings", authed(settingsHandler.Get, svc, cfg, limiters))
	mux.Handle("PUT /api/settings", authed(settingsHandler.Update, svc, cfg, limiters))

	// Notifications.
	mux.Handle("POST /api/notifications/subscribe", WrapAuth(notificationHandler.Subscribe, svc, cfg, limiters))

	return withRequestID(withMetrics(mux))
}
