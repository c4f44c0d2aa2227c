package storage

import (
	"path/filepath"
	"testing"
)

func setupSettings(t *testing.T) *SettingsService {
	t.Helper()
	svc, err := NewSettingsService(filepath.Join(t.TempDir(), "settings.jsonl"))
	if err != nil {
		t.Fatalf("NewSettingsService failed: %v", err)
	}
	return svc
}

func TestSettingsDefaults(t *testing.T) {
	svc := setupSettings(t)
	s := svc.Get()
	if s.Business.TaxPercent != 10 {
		t.Errorf("TaxPercent = %v, want 10", s.Business.TaxPercent)
	}
	if s.Business.LowStockThreshold != 500 {
		t.Errorf("LowStockThreshold = %d, want 500", s.Business.LowStockThreshold)
	}
	if !s.Notifications.LowStockAlerts {
		t.Error("LowStockAlerts disabled by default")
	}
}

func TestSettingsUpdate(t *testing.T) {
	svc := setupSettings(t)
	updated, err := svc.Update(func(s *Settings) error {
		s.Business.TaxPercent = 18
		return nil
	})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if updated.Business.TaxPercent != 18 {
		t.Errorf("TaxPercent = %v, want 18", updated.Business.TaxPercent)
	}
	if svc.Business().TaxPercent != 18 {
		t.Error("update not persisted")
	}

	t.Run("validation", func(t *testing.T) {
		_, err := svc.Update(func(s *Settings) error {
			s.Business.TaxPercent = 150
			return nil
		})
		if err == nil {
			t.Error("Update() expected error for tax percent out of range, got nil")
		}
		if svc.Business().TaxPercent != 18 {
			t.Error("failed update changed settings")
		}
	})
}

func TestSettingsProfileObserver(t *testing.T) {
	svc := setupSettings(t)
	var got []ProfileSettings
	svc.OnProfileChanged(func(p ProfileSettings) { got = append(got, p) })

	// A non-profile change must not notify.
	if _, err := svc.Update(func(s *Settings) error {
		s.Business.StoreName = "New Name"
		return nil
	}); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("notified %d times for non-profile change, want 0", len(got))
	}

	if _, err := svc.Update(func(s *Settings) error {
		s.Profile = ProfileSettings{Name: "Asha", Email: "asha@chembot.in"}
		return nil
	}); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if len(got) != 1 || got[0].Name != "Asha" {
		t.Errorf("observed = %v, want one Asha profile", got)
	}
}

func TestSettingsPersistAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.jsonl")
	svc, err := NewSettingsService(path)
	if err != nil {
		t.Fatalf("NewSettingsService failed: %v", err)
	}
	if _, err := svc.Update(func(s *Settings) error {
		s.Business.LowStockThreshold = 250
		return nil
	}); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	reopened, err := NewSettingsService(path)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	if reopened.Business().LowStockThreshold != 250 {
		t.Errorf("LowStockThreshold = %d, want 250", reopened.Business().LowStockThreshold)
	}
}
