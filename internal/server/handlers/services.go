// Defines shared service dependencies for handlers.

package handlers

import (
	"github.com/chembot/admin/internal/catalog"
	"github.com/chembot/admin/internal/jsonldb"
	"github.com/chembot/admin/internal/notifier"
	"github.com/chembot/admin/internal/server/ipgeo"
	"github.com/chembot/admin/internal/storage"
	"github.com/chembot/admin/internal/storage/audit"
	"github.com/chembot/admin/internal/storage/identity"
)

// Services holds all service dependencies for handlers.
type Services struct {
	Products  *catalog.Controller[*catalog.Product, catalog.ProductFilters]
	Orders    *catalog.Controller[*catalog.Order, catalog.OrderFilters]
	Customers *catalog.Controller[*catalog.Customer, catalog.CustomerFilters]
	Chats     *catalog.Controller[*catalog.ChatLog, catalog.ChatFilters]

	// ProductTable backs the product controller; the sync endpoint
	// replaces its rows wholesale.
	ProductTable *jsonldb.Table[*catalog.Product]

	Settings     *storage.SettingsService
	User         *identity.UserService
	Session      *identity.SessionService
	Subscription *identity.PushSubscriptionService

	Audit    *audit.Log           // may be nil
	Notifier *notifier.Dispatcher // may be nil
	Geo      *ipgeo.Checker       // may be nil
}

// Config holds configuration values needed by handlers.
type Config struct {
	JWTSecret []byte
	Version   string
	Quotas    storage.ServerQuotas
}
