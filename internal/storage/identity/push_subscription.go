package identity

import (
	"errors"
	"iter"
	"time"

	"github.com/maruel/ksid"

	"github.com/chembot/admin/internal/jsonldb"
)

var (
	errSubscriptionEndpointRequired = errors.New("subscription endpoint is required")
	errSubscriptionKeysRequired     = errors.New("subscription keys are required")
)

// PushSubscription is a browser web push subscription for a user.
type PushSubscription struct {
	ID       ksid.ID   `json:"id"`
	UserID   ksid.ID   `json:"user_id"`
	Endpoint string    `json:"endpoint" jsonschema:"description=Push service endpoint URL"`
	P256dh   string    `json:"p256dh"`
	Auth     string    `json:"auth"`
	Created  time.Time `json:"created"`
}

func (p *PushSubscription) Clone() *PushSubscription {
	c := *p
	return &c
}

func (p *PushSubscription) GetID() string { return p.ID.String() }

func (p *PushSubscription) Validate() error {
	if p.ID.IsZero() {
		return errSessionIDRequired
	}
	if p.UserID.IsZero() {
		return errSessionUserIDRequired
	}
	if p.Endpoint == "" {
		return errSubscriptionEndpointRequired
	}
	if p.P256dh == "" || p.Auth == "" {
		return errSubscriptionKeysRequired
	}
	return nil
}

// PushSubscriptionService stores web push subscriptions, deduplicated by
// endpoint. Resubscribing from the same browser replaces the old row.
type PushSubscriptionService struct {
	table      *jsonldb.Table[*PushSubscription]
	byEndpoint *jsonldb.UniqueIndex[string, *PushSubscription]
}

// NewPushSubscriptionService creates a new push subscription service.
func NewPushSubscriptionService(tablePath string) (*PushSubscriptionService, error) {
	table, err := jsonldb.NewTable[*PushSubscription](tablePath)
	if err != nil {
		return nil, err
	}
	byEndpoint := jsonldb.NewUniqueIndex(table, func(p *PushSubscription) string { return p.Endpoint })
	return &PushSubscriptionService{table: table, byEndpoint: byEndpoint}, nil
}

// Add registers a subscription. An existing subscription with the same
// endpoint is replaced.
func (s *PushSubscriptionService) Add(userID ksid.ID, endpoint, p256dh, auth string) (*PushSubscription, error) {
	if existing := s.byEndpoint.Get(endpoint); existing != nil {
		if err := s.table.Delete(existing.ID.String()); err != nil {
			return nil, err
		}
	}
	sub := &PushSubscription{
		ID:       ksid.NewID(),
		UserID:   userID,
		Endpoint: endpoint,
		P256dh:   p256dh,
		Auth:     auth,
		Created:  time.Now(),
	}
	if err := sub.Validate(); err != nil {
		return nil, err
	}
	if err := s.table.Append(sub); err != nil {
		return nil, err
	}
	return sub.Clone(), nil
}

// RemoveByEndpoint deletes the subscription for an endpoint, if present.
func (s *PushSubscriptionService) RemoveByEndpoint(endpoint string) error {
	existing := s.byEndpoint.Get(endpoint)
	if existing == nil {
		return nil
	}
	return s.table.Delete(existing.ID.String())
}

// All returns an iterator over all subscriptions.
func (s *PushSubscriptionService) All() iter.Seq[*PushSubscription] {
	return s.table.All()
}

// Len returns the number of subscriptions.
func (s *PushSubscriptionService) Len() int {
	return s.table.Len()
}
