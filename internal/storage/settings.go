// Manages business settings stored in a single-row JSONL table.

package storage

import (
	"sync"
	"time"

	"github.com/chembot/admin/internal/catalog"
	"github.com/chembot/admin/internal/jsonldb"
)

// Settings stores the business configuration edited on the settings screen.
// There is only one row in this table.
type Settings struct {
	ID            string               `json:"id"`
	Business      BusinessSettings     `json:"business"`
	Notifications NotificationSettings `json:"notifications"`
	Profile       ProfileSettings      `json:"profile"`
	Created       time.Time            `json:"created"`
	Modified      time.Time            `json:"modified,omitzero"`
}

// BusinessSettings holds the business-rule constants the core reads.
type BusinessSettings struct {
	StoreName         string  `json:"storeName"`
	Currency          string  `json:"currency"`
	TaxPercent        float64 `json:"taxPercent"`
	LowStockThreshold int     `json:"lowStockThreshold"`
}

// NotificationSettings toggles outgoing notification kinds.
type NotificationSettings struct {
	LowStockAlerts bool `json:"lowStockAlerts"`
	OrderUpdates   bool `json:"orderUpdates"`
	DailySummary   bool `json:"dailySummary"`
}

// ProfileSettings is the admin profile shown in the header.
type ProfileSettings struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// DefaultBusinessSettings returns the default business rules.
func DefaultBusinessSettings() BusinessSettings {
	return BusinessSettings{
		StoreName:         "ChemBot Distributors",
		Currency:          "INR",
		TaxPercent:        10,
		LowStockThreshold: catalog.DefaultLowStockThreshold,
	}
}

func (s *Settings) Clone() *Settings {
	c := *s
	return &c
}

func (s *Settings) GetID() string { return s.ID }

func (s *Settings) Validate() error {
	if s.ID == "" {
		return errIDRequired
	}
	if s.Business.TaxPercent < 0 || s.Business.TaxPercent > 100 {
		return errTaxPercentRange
	}
	if s.Business.LowStockThreshold < 0 {
		return errThresholdNegative
	}
	return nil
}

// settingsID is the fixed ID for the single settings row.
const settingsID = "settings"

// SettingsService manages the business settings row and broadcasts profile
// changes to subscribers.
type SettingsService struct {
	table *jsonldb.Table[*Settings]

	mu        sync.Mutex
	observers []func(ProfileSettings)
}

// NewSettingsService creates the service, writing default settings if none
// exist yet.
func NewSettingsService(tablePath string) (*SettingsService, error) {
	table, err := jsonldb.NewTable[*Settings](tablePath)
	if err != nil {
		return nil, err
	}
	svc := &SettingsService{table: table}
	if err := svc.ensureDefaults(); err != nil {
		return nil, err
	}
	return svc, nil
}

func (s *SettingsService) ensureDefaults() error {
	if _, ok := s.table.Lookup(settingsID); ok {
		return nil
	}
	return s.table.Append(&Settings{
		ID:       settingsID,
		Business: DefaultBusinessSettings(),
		Notifications: NotificationSettings{
			LowStockAlerts: true,
			OrderUpdates:   true,
		},
		Created: time.Now(),
	})
}

// Get returns the current settings.
func (s *SettingsService) Get() *Settings {
	settings, ok := s.table.Lookup(settingsID)
	if !ok {
		// Should never happen after ensureDefaults, but return defaults as fallback
		return &Settings{ID: settingsID, Business: DefaultBusinessSettings()}
	}
	return settings
}

// Business returns the current business rules.
func (s *SettingsService) Business() BusinessSettings {
	return s.Get().Business
}

// Update applies fn to the settings row. Profile observers are notified when
// the profile changed.
func (s *SettingsService) Update(fn func(*Settings) error) (*Settings, error) {
	prev := s.Get().Profile
	updated, err := s.table.Modify(settingsID, func(settings *Settings) error {
		settings.Modified = time.Now()
		return fn(settings)
	})
	if err != nil {
		return nil, err
	}
	if updated.Profile != prev {
		s.mu.Lock()
		observers := make([]func(ProfileSettings), len(s.observers))
		copy(observers, s.observers)
		s.mu.Unlock()
		for _, o := range observers {
			o(updated.Profile)
		}
	}
	return updated, nil
}

// OnProfileChanged registers a callback invoked after each profile change.
func (s *SettingsService) OnProfileChanged(fn func(ProfileSettings)) {
	s.mu.Lock()
	s.observers = append(s.observers, fn)
	s.mu.Unlock()
}
