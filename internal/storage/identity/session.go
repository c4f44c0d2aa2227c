// Handles active user sessions and token management.

package identity

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"iter"
	"time"

	"github.com/maruel/ksid"

	"github.com/chembot/admin/internal/jsonldb"
)

var (
	// ErrSessionNotFound is returned when a session does not exist or the
	// token hash does not match an active session.
	ErrSessionNotFound = errors.New("session not found")
	// ErrSessionQuotaExceeded is returned when a user has too many active
	// sessions.
	ErrSessionQuotaExceeded = errors.New("session quota exceeded")

	errSessionIDRequired        = errors.New("session id is required")
	errSessionUserIDRequired    = errors.New("session user id is required")
	errSessionTokenHashRequired = errors.New("session token hash is required")
)

// Session represents an active user session.
type Session struct {
	ID          ksid.ID   `json:"id" jsonschema:"description=Unique session identifier"`
	UserID      ksid.ID   `json:"user_id" jsonschema:"description=User who owns this session"`
	TokenHash   string    `json:"token_hash" jsonschema:"description=SHA-256 hash of the JWT token"`
	DeviceInfo  string    `json:"device_info,omitempty"`
	IPAddress   string    `json:"ip_address,omitempty"`
	CountryCode string    `json:"country_code,omitempty" jsonschema:"description=ISO 3166-1 alpha-2 country code at login"`
	Created     time.Time `json:"created"`
	LastUsed    time.Time `json:"last_used,omitzero"`
	ExpiresAt   time.Time `json:"expires_at"`
	RevokedAt   time.Time `json:"revoked_at,omitzero"`
}

func (s *Session) Clone() *Session {
	c := *s
	return &c
}

func (s *Session) GetID() string { return s.ID.String() }

func (s *Session) Validate() error {
	if s.ID.IsZero() {
		return errSessionIDRequired
	}
	if s.UserID.IsZero() {
		return errSessionUserIDRequired
	}
	if s.TokenHash == "" {
		return errSessionTokenHashRequired
	}
	return nil
}

// Active reports whether the session is usable at the given time.
func (s *Session) Active(now time.Time) bool {
	return s.RevokedAt.IsZero() && now.Before(s.ExpiresAt)
}

// HashToken returns the hex SHA-256 of a token. Only the hash is stored.
func HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

// SessionService handles session management.
type SessionService struct {
	table       *jsonldb.Table[*Session]
	byUserID    *jsonldb.Index[ksid.ID, *Session]
	byTokenHash *jsonldb.UniqueIndex[string, *Session]
}

// NewSessionService creates a new session service.
func NewSessionService(tablePath string) (*SessionService, error) {
	table, err := jsonldb.NewTable[*Session](tablePath)
	if err != nil {
		return nil, err
	}
	byUserID := jsonldb.NewIndex(table, func(s *Session) ksid.ID { return s.UserID })
	byTokenHash := jsonldb.NewUniqueIndex(table, func(s *Session) string { return s.TokenHash })
	return &SessionService{table: table, byUserID: byUserID, byTokenHash: byTokenHash}, nil
}

// CreateWithID creates a session with a pre-specified ID, so the ID can be
// embedded in the JWT before the session row exists. maxSessions limits
// active sessions per user; 0 disables the limit.
func (s *SessionService) CreateWithID(id, userID ksid.ID, tokenHash, deviceInfo, ipAddress, countryCode string, expiresAt time.Time, maxSessions int) (*Session, error) {
	if id.IsZero() {
		return nil, errSessionIDRequired
	}
	if userID.IsZero() {
		return nil, errSessionUserIDRequired
	}
	if tokenHash == "" {
		return nil, errSessionTokenHashRequired
	}
	if maxSessions > 0 {
		active := 0
		now := time.Now()
		for sess := range s.byUserID.Iter(userID) {
			if sess.Active(now) {
				active++
			}
		}
		if active >= maxSessions {
			return nil, ErrSessionQuotaExceeded
		}
	}
	session := &Session{
		ID:          id,
		UserID:      userID,
		TokenHash:   tokenHash,
		DeviceInfo:  deviceInfo,
		IPAddress:   ipAddress,
		CountryCode: countryCode,
		Created:     time.Now(),
		ExpiresAt:   expiresAt,
	}
	if err := s.table.Append(session); err != nil {
		return nil, err
	}
	return session.Clone(), nil
}

// GetActiveByTokenHash returns the active session matching the token hash.
func (s *SessionService) GetActiveByTokenHash(tokenHash string) (*Session, error) {
	session := s.byTokenHash.Get(tokenHash)
	if session == nil || !session.Active(time.Now()) {
		return nil, ErrSessionNotFound
	}
	return session, nil
}

// Touch updates the session's last-used timestamp.
func (s *SessionService) Touch(id ksid.ID) error {
	_, err := s.table.Modify(id.String(), func(sess *Session) error {
		sess.LastUsed = time.Now()
		return nil
	})
	if errors.Is(err, jsonldb.ErrRowNotFound) {
		return ErrSessionNotFound
	}
	return err
}

// Revoke marks a session revoked. Revoking twice is a no-op.
func (s *SessionService) Revoke(id ksid.ID) error {
	_, err := s.table.Modify(id.String(), func(sess *Session) error {
		if sess.RevokedAt.IsZero() {
			sess.RevokedAt = time.Now()
		}
		return nil
	})
	if errors.Is(err, jsonldb.ErrRowNotFound) {
		return ErrSessionNotFound
	}
	return err
}

// RevokeAllForUser revokes every active session of a user.
func (s *SessionService) RevokeAllForUser(userID ksid.ID) error {
	for sess := range s.byUserID.Iter(userID) {
		if sess.RevokedAt.IsZero() {
			if err := s.Revoke(sess.ID); err != nil {
				return err
			}
		}
	}
	return nil
}

// CleanupExpired deletes sessions whose expiration is older than the grace
// period. Returns the number of sessions deleted.
func (s *SessionService) CleanupExpired(grace time.Duration) (int, error) {
	cutoff := time.Now().Add(-grace)
	var stale []ksid.ID
	for sess := range s.table.All() {
		if sess.ExpiresAt.Before(cutoff) {
			stale = append(stale, sess.ID)
		}
	}
	for _, id := range stale {
		if err := s.table.Delete(id.String()); err != nil {
			return 0, err
		}
	}
	return len(stale), nil
}

// ActiveByUserID returns an iterator over a user's active sessions.
func (s *SessionService) ActiveByUserID(userID ksid.ID) iter.Seq[*Session] {
	return func(yield func(*Session) bool) {
		now := time.Now()
		for sess := range s.byUserID.Iter(userID) {
			if sess.Active(now) && !yield(sess) {
				return
			}
		}
	}
}
