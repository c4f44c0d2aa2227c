// Handles web push subscription registration.

package handlers

import (
	"context"

	"github.com/chembot/admin/internal/server/dto"
	"github.com/chembot/admin/internal/storage/identity"
)

// NotificationHandler handles push subscription requests.
type NotificationHandler struct {
	svc *Services
}

// NewNotificationHandler creates a new notification handler.
func NewNotificationHandler(svc *Services) *NotificationHandler {
	return &NotificationHandler{svc: svc}
}

// Subscribe registers the caller's browser for push notifications.
func (h *NotificationHandler) Subscribe(ctx context.Context, user *identity.User, req *dto.SubscribeRequest) (*dto.SubscribeResponse, error) {
	if h.svc.Notifier == nil {
		return nil, dto.Internal("Push notifications are not configured")
	}
	sub, err := h.svc.Subscription.Add(user.ID, req.Endpoint, req.Keys.P256dh, req.Keys.Auth)
	if err != nil {
		return nil, dto.InternalWithError("Failed to register subscription", err)
	}
	return &dto.SubscribeResponse{
		Ok:             true,
		VAPIDPublicKey: h.svc.Notifier.VAPIDPublicKey(),
		SubscriptionID: sub.ID.String(),
	}, nil
}
