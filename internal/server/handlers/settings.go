// Handles the business settings blob.

package handlers

import (
	"context"

	"github.com/chembot/admin/internal/server/dto"
	"github.com/chembot/admin/internal/storage"
)

// SettingsHandler handles business settings requests.
type SettingsHandler struct {
	svc *Services
}

// NewSettingsHandler creates a new settings handler.
func NewSettingsHandler(svc *Services) *SettingsHandler {
	return &SettingsHandler{svc: svc}
}

// Get returns the business settings blob.
func (h *SettingsHandler) Get(ctx context.Context, req *dto.GetSettingsRequest) (*dto.SettingsResponse, error) {
	return settingsToResponse(h.svc.Settings.Get()), nil
}

// Update replaces the business settings blob.
func (h *SettingsHandler) Update(ctx context.Context, req *dto.UpdateSettingsRequest) (*dto.SettingsResponse, error) {
	updated, err := h.svc.Settings.Update(func(s *storage.Settings) error {
		s.Business = storage.BusinessSettings{
			StoreName:         req.Business.StoreName,
			Currency:          req.Business.Currency,
			TaxPercent:        req.Business.TaxPercent,
			LowStockThreshold: req.Business.LowStockThreshold,
		}
		s.Notifications = storage.NotificationSettings{
			LowStockAlerts: req.Notifications.LowStockAlerts,
			OrderUpdates:   req.Notifications.OrderUpdates,
			DailySummary:   req.Notifications.DailySummary,
		}
		s.Profile = storage.ProfileSettings{
			Name:  req.Profile.Name,
			Email: req.Profile.Email,
			Phone: req.Profile.Phone,
		}
		return nil
	})
	if err != nil {
		return nil, dto.BadRequest(err.Error())
	}
	return settingsToResponse(updated), nil
}
