// Package main is the entry point for the chembot admin server.
//
// chembot serves the admin REST API for a chemical distributor storefront:
// product inventory, orders, customers, chatbot conversation logs, dashboard
// analytics and reports. Data is stored as JSONL tables under the data
// directory, with an audit trail of every mutation committed to a local git
// repository. Configuration is read from CLI flags, a .env file, and
// config.yaml (JWT secret, VAPID keys, quotas, rate limits).
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"runtime/debug"
	"strings"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"

	"github.com/chembot/admin/internal/catalog"
	"github.com/chembot/admin/internal/jsonldb"
	"github.com/chembot/admin/internal/notifier"
	"github.com/chembot/admin/internal/server"
	"github.com/chembot/admin/internal/server/handlers"
	"github.com/chembot/admin/internal/server/ipgeo"
	"github.com/chembot/admin/internal/server/ratelimit"
	"github.com/chembot/admin/internal/storage"
	"github.com/chembot/admin/internal/storage/audit"
	"github.com/chembot/admin/internal/storage/identity"
)

const (
	defaultAdminEmail    = "admin@chembot.local"
	defaultAdminPassword = "changeme123"
)

func main() {
	if err := mainImpl(); err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintf(os.Stderr, "chembot: %v\n", err)
		os.Exit(1)
	}
}

func mainImpl() error {
	version := flag.Bool("version", false, "Print version and exit")
	httpAddr := flag.String("http", "localhost:8080", "Address to listen on (e.g., localhost:8080, :8080, 0.0.0.0:8080). Use 0.0.0.0:port to listen on all interfaces.")
	dataDir := flag.String("data-dir", "./data", "Data directory")
	logLevel := flag.String("log-level", "info", "Log level (debug, info, warn, error)")
	geoDB := flag.String("geo-db", "", "Path to MaxMind MMDB file for IP geolocation (optional)")
	seed := flag.Bool("seed", false, "Re-seed catalog tables from the demo dataset and exit")
	flag.Parse()
	if len(flag.Args()) > 0 {
		return fmt.Errorf("unknown arguments: %v", flag.Args())
	}

	if *version {
		printVersion()
		return nil
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	defer stop()
	ll := &slog.LevelVar{}
	ll.Set(slog.LevelInfo)
	// Skip timestamps when running under systemd (it adds its own).
	underSystemd := os.Getenv("JOURNAL_STREAM") != ""
	logger := slog.New(tint.NewHandler(colorable.NewColorable(os.Stderr), &tint.Options{
		Level:      ll,
		TimeFormat: "15:04:05.000", // Like time.TimeOnly plus milliseconds.
		NoColor:    !isatty.IsTerminal(os.Stderr.Fd()),
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			// Drop time when running under systemd.
			if underSystemd && a.Key == slog.TimeKey && len(groups) == 0 {
				return slog.Attr{}
			}
			// Drop localhost IPs (not useful in logs).
			if a.Key == "ip" {
				if v := a.Value.String(); v == "127.0.0.1" || v == "::1" {
					return slog.Attr{}
				}
			}
			val := a.Value.Any()
			skip := false
			switch t := val.(type) {
			case string:
				skip = t == ""
			case bool:
				skip = !t
			case uint64:
				skip = t == 0
			case int64:
				skip = t == 0
			case float64:
				skip = t == 0
			case time.Time:
				skip = t.IsZero()
			case time.Duration:
				skip = t == 0
			case nil:
				skip = true
			}
			if skip {
				return slog.Attr{}
			}
			return a
		},
	}))
	slog.SetDefault(logger)

	if err := os.MkdirAll(*dataDir, 0o755); err != nil { //nolint:gosec // G301: 0o755 is intentional for data directories
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	// Load .env for overrides not given as flags.
	if err := godotenv.Load(filepath.Join(*dataDir, ".env")); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to load .env: %w", err)
	}
	set := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) {
		set[f.Name] = true
	})
	if !set["http"] {
		if v := os.Getenv("HTTP"); v != "" {
			*httpAddr = v
		}
	}
	if !set["log-level"] {
		if v := os.Getenv("LOG_LEVEL"); v != "" {
			*logLevel = v
		}
	}
	if !set["geo-db"] {
		if v := os.Getenv("GEO_DB"); v != "" {
			*geoDB = v
		}
	}

	switch *logLevel {
	case "debug":
		ll.Set(slog.LevelDebug)
	case "info":
	case "warn":
		ll.Set(slog.LevelWarn)
	case "error":
		ll.Set(slog.LevelError)
	default:
		return fmt.Errorf("unknown log level: %q", *logLevel)
	}

	// Normalize addr: ":8080" becomes "localhost:8080".
	addr := *httpAddr
	if strings.HasPrefix(addr, ":") {
		addr = "localhost" + addr
	}
	if _, _, err := net.SplitHostPort(addr); err != nil {
		return fmt.Errorf("invalid listen address %q: %w", addr, err)
	}

	serverCfg, err := storage.LoadServerConfig(*dataDir)
	if err != nil {
		return fmt.Errorf("failed to load server config: %w", err)
	}

	dbDir := filepath.Join(*dataDir, "db")
	if err := os.MkdirAll(dbDir, 0o755); err != nil { //nolint:gosec // G301: 0o755 is intentional for data directories
		return fmt.Errorf("failed to create db directory: %w", err)
	}

	productTable, err := jsonldb.NewTable[*catalog.Product](filepath.Join(dbDir, "products.jsonl"))
	if err != nil {
		return fmt.Errorf("failed to open products table: %w", err)
	}
	orderTable, err := jsonldb.NewTable[*catalog.Order](filepath.Join(dbDir, "orders.jsonl"))
	if err != nil {
		return fmt.Errorf("failed to open orders table: %w", err)
	}
	customerTable, err := jsonldb.NewTable[*catalog.Customer](filepath.Join(dbDir, "customers.jsonl"))
	if err != nil {
		return fmt.Errorf("failed to open customers table: %w", err)
	}
	chatTable, err := jsonldb.NewTable[*catalog.ChatLog](filepath.Join(dbDir, "chats.jsonl"))
	if err != nil {
		return fmt.Errorf("failed to open chats table: %w", err)
	}

	if err := seedTables(ctx, *seed, productTable, orderTable, customerTable, chatTable); err != nil {
		return err
	}
	if *seed {
		return nil
	}

	settingsService, err := storage.NewSettingsService(filepath.Join(dbDir, "settings.jsonl"))
	if err != nil {
		return fmt.Errorf("failed to initialize settings service: %w", err)
	}
	userService, err := identity.NewUserService(filepath.Join(dbDir, "users.jsonl"))
	if err != nil {
		return fmt.Errorf("failed to initialize user service: %w", err)
	}
	sessionService, err := identity.NewSessionService(filepath.Join(dbDir, "sessions.jsonl"))
	if err != nil {
		return fmt.Errorf("failed to initialize session service: %w", err)
	}
	subscriptionService, err := identity.NewPushSubscriptionService(filepath.Join(dbDir, "push_subscriptions.jsonl"))
	if err != nil {
		return fmt.Errorf("failed to initialize push subscription service: %w", err)
	}

	adminEmail := os.Getenv("ADMIN_EMAIL")
	if adminEmail == "" {
		adminEmail = defaultAdminEmail
	}
	adminPassword := os.Getenv("ADMIN_PASSWORD")
	if adminPassword == "" {
		adminPassword = defaultAdminPassword
	}
	if err := userService.EnsureAdmin(adminEmail, adminPassword); err != nil {
		return fmt.Errorf("failed to ensure admin account: %w", err)
	}

	// Cleanup old expired sessions (older than 7 days past expiration).
	if count, err := sessionService.CleanupExpired(7 * 24 * time.Hour); err != nil {
		slog.WarnContext(ctx, "Failed to cleanup expired sessions", "error", err)
	} else if count > 0 {
		slog.InfoContext(ctx, "Cleaned up expired sessions", "count", count)
	}

	auditLog, err := audit.Open(dbDir)
	if err != nil {
		return fmt.Errorf("failed to open audit log: %w", err)
	}

	var geoChecker *ipgeo.Checker
	if *geoDB != "" {
		geoChecker, err = ipgeo.Open(*geoDB)
		if err != nil {
			return fmt.Errorf("failed to open geo database: %w", err)
		}
		defer func() { _ = geoChecker.Close() }()
		slog.InfoContext(ctx, "IP geolocation enabled", "db", *geoDB)
	}

	dispatcher := notifier.New(settingsService, subscriptionService, serverCfg.VAPID)
	if dispatcher == nil {
		slog.InfoContext(ctx, "Push notifications disabled: no VAPID key pair")
	}

	// Watch own executable for modifications (for development restarts).
	if err := watchExecutable(ctx, stop); err != nil {
		return fmt.Errorf("failed to watch executable: %w", err)
	}

	svc := &handlers.Services{
		Products:     catalog.NewController(productTable, catalog.MatchProduct, catalog.NextProductID),
		Orders:       catalog.NewController(orderTable, catalog.MatchOrder, catalog.NextOrderID),
		Customers:    catalog.NewController(customerTable, catalog.MatchCustomer, catalog.NextCustomerID),
		Chats:        catalog.NewController(chatTable, catalog.MatchChatLog, catalog.NextChatLogID),
		ProductTable: productTable,
		Settings:     settingsService,
		User:         userService,
		Session:      sessionService,
		Subscription: subscriptionService,
		Audit:        auditLog,
		Notifier:     dispatcher,
		Geo:          geoChecker,
	}
	buildVersion := getBuildVersion()
	cfg := &handlers.Config{
		JWTSecret: serverCfg.JWTSecret,
		Version:   buildVersion,
		Quotas:    serverCfg.Quotas,
	}
	limiters := ratelimit.NewConfig(serverCfg.RateLimits.AuthRatePerMin, serverCfg.RateLimits.WriteRatePerMin, serverCfg.RateLimits.ReadRatePerMin)
	defer limiters.Close()

	httpServer := &http.Server{
		Addr:              addr,
		Handler:           server.NewRouter(svc, cfg, limiters),
		BaseContext:       func(_ net.Listener) context.Context { return ctx },
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		slog.InfoContext(ctx, "Starting server", "addr", addr, "version", buildVersion)
		serverErr <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErr:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
	case <-ctx.Done():
		slog.InfoContext(ctx, "Shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown error: %w", err)
		}
		slog.InfoContext(ctx, "Server stopped")
	}
	return nil
}

// seedTables fills empty catalog tables with the demo dataset. With force,
// tables are replaced wholesale.
func seedTables(ctx context.Context, force bool, products *jsonldb.Table[*catalog.Product], orders *jsonldb.Table[*catalog.Order], customers *jsonldb.Table[*catalog.Customer], chats *jsonldb.Table[*catalog.ChatLog]) error {
	if force || products.Len() == 0 {
		if err := products.Replace(catalog.SeedProducts()); err != nil {
			return fmt.Errorf("failed to seed products: %w", err)
		}
		slog.InfoContext(ctx, "Seeded products", "count", products.Len())
	}
	if force || orders.Len() == 0 {
		if err := orders.Replace(catalog.SeedOrders()); err != nil {
			return fmt.Errorf("failed to seed orders: %w", err)
		}
		slog.InfoContext(ctx, "Seeded orders", "count", orders.Len())
	}
	if force || customers.Len() == 0 {
		if err := customers.Replace(catalog.SeedCustomers()); err != nil {
			return fmt.Errorf("failed to seed customers: %w", err)
		}
		slog.InfoContext(ctx, "Seeded customers", "count", customers.Len())
	}
	if force || chats.Len() == 0 {
		if err := chats.Replace(catalog.SeedChatLogs()); err != nil {
			return fmt.Errorf("failed to seed chat logs: %w", err)
		}
		slog.InfoContext(ctx, "Seeded chat logs", "count", chats.Len())
	}
	return nil
}

func printVersion() {
	fmt.Printf("chembot %s\n", getBuildVersion())
	if info, ok := debug.ReadBuildInfo(); ok {
		fmt.Printf("  Go version: %s\n", info.GoVersion)
		for _, setting := range info.Settings {
			switch setting.Key {
			case "vcs.revision":
				fmt.Printf("  Revision:   %s\n", setting.Value)
			case "vcs.modified":
				if setting.Value == "true" {
					fmt.Printf("  Modified:   true\n")
				}
			}
		}
	}
}

func getBuildVersion() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "unknown"
	}
	version := info.Main.Version
	if version == "" || version == "(devel)" {
		return "dev"
	}
	return version
}

// watchExecutable watches the current executable for modifications and calls
// stop to trigger graceful shutdown when detected. This enables seamless
// restarts during development.
func watchExecutable(ctx context.Context, stop context.CancelFunc) error {
	exe, err := os.Executable()
	if err != nil {
		return err
	}
	exe, err = filepath.EvalSymlinks(exe)
	if err != nil {
		return err
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	if err := w.Add(exe); err != nil {
		_ = w.Close()
		return err
	}
	go func() {
		defer func() { _ = w.Close() }()
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-w.Events:
				if !ok {
					return
				}
				if event.Has(fsnotify.Write) || event.Has(fsnotify.Chmod) {
					slog.InfoContext(ctx, "Executable modified, initiating shutdown")
					stop()
					return
				}
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				slog.WarnContext(ctx, "Error watching executable", "err", err)
			}
		}
	}()
	return nil
}
