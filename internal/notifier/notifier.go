// Package notifier dispatches web push notifications for inventory events.
//
// Delivery is asynchronous and fire-and-forget: failures are logged and
// ignored, and expired subscriptions are removed when the push service
// reports 410 Gone.
package notifier

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	webpush "github.com/SherClockHolmes/webpush-go"

	"github.com/chembot/admin/internal/catalog"
	"github.com/chembot/admin/internal/storage"
	"github.com/chembot/admin/internal/storage/identity"
)

// Dispatcher sends low-stock alerts to subscribed browsers.
type Dispatcher struct {
	settings      *storage.SettingsService
	subscriptions *identity.PushSubscriptionService
	vapidPublic   string
	vapidPrivate  string
}

// New creates a dispatcher. Returns nil when the VAPID key pair is missing,
// in which case callers treat notifications as disabled.
func New(settings *storage.SettingsService, subscriptions *identity.PushSubscriptionService, vapid storage.VAPIDConfig) *Dispatcher {
	if vapid.PublicKey == "" || vapid.PrivateKey == "" {
		return nil
	}
	return &Dispatcher{
		settings:      settings,
		subscriptions: subscriptions,
		vapidPublic:   vapid.PublicKey,
		vapidPrivate:  vapid.PrivateKey,
	}
}

// VAPIDPublicKey returns the public key browsers use to subscribe.
func (d *Dispatcher) VAPIDPublicKey() string {
	return d.vapidPublic
}

// stockRank orders product statuses from healthy to empty.
func stockRank(status string) int {
	switch status {
	case catalog.ProductActive:
		return 0
	case catalog.ProductLowStock:
		return 1
	case catalog.ProductOutOfStock:
		return 2
	}
	return 0
}

// ProductStockChanged sends a low-stock alert when a product's status
// worsened. It never blocks or returns errors.
func (d *Dispatcher) ProductStockChanged(ctx context.Context, p *catalog.Product, prevStatus string) {
	if d == nil {
		return
	}
	if stockRank(p.Status) <= stockRank(prevStatus) {
		return
	}
	if !d.settings.Get().Notifications.LowStockAlerts {
		return
	}
	title := "Low stock: " + p.Name
	body := p.Name + " is running low"
	if p.Status == catalog.ProductOutOfStock {
		title = "Out of stock: " + p.Name
		body = p.Name + " is out of stock"
	}
	d.send(ctx, map[string]string{
		"title":     title,
		"body":      body,
		"productId": p.ID,
		"tag":       "stock-" + p.ID,
	})
}

// send delivers a payload to every subscription in the background.
func (d *Dispatcher) send(ctx context.Context, fields map[string]string) {
	payload, _ := json.Marshal(fields)
	subs := make([]*identity.PushSubscription, 0, d.subscriptions.Len())
	for sub := range d.subscriptions.All() {
		subs = append(subs, sub)
	}
	go func() {
		for _, sub := range subs {
			resp, err := webpush.SendNotification(payload, &webpush.Subscription{
				Endpoint: sub.Endpoint,
				Keys:     webpush.Keys{P256dh: sub.P256dh, Auth: sub.Auth},
			}, &webpush.Options{
				VAPIDPublicKey:  d.vapidPublic,
				VAPIDPrivateKey: d.vapidPrivate,
				TTL:             86400,
			})
			if err != nil {
				slog.ErrorContext(ctx, "Web push send failed", "err", err, "endpoint", sub.Endpoint)
				continue
			}
			_ = resp.Body.Close()
			// 410 Gone means the subscription is invalid.
			if resp.StatusCode == http.StatusGone {
				if err := d.subscriptions.RemoveByEndpoint(sub.Endpoint); err != nil {
					slog.ErrorContext(ctx, "Failed to delete expired push subscription", "err", err, "endpoint", sub.Endpoint)
				}
			}
		}
	}()
}
