package identity

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/maruel/ksid"
)

func newSessionService(t *testing.T) *SessionService {
	t.Helper()
	svc, err := NewSessionService(filepath.Join(t.TempDir(), "sessions.jsonl"))
	if err != nil {
		t.Fatal(err)
	}
	return svc
}

func createSession(t *testing.T, svc *SessionService, userID ksid.ID, token string) *Session {
	t.Helper()
	sess, err := svc.CreateWithID(ksid.NewID(), userID, HashToken(token), "test", "127.0.0.1", "IN", time.Now().Add(time.Hour), 0)
	if err != nil {
		t.Fatal(err)
	}
	return sess
}

func TestSessionService_CreateWithID(t *testing.T) {
	t.Run("create and look up by token hash", func(t *testing.T) {
		svc := newSessionService(t)
		userID := ksid.NewID()
		sess := createSession(t, svc, userID, "tok-1")
		got, err := svc.GetActiveByTokenHash(HashToken("tok-1"))
		if err != nil {
			t.Fatal(err)
		}
		if got.ID != sess.ID {
			t.Errorf("id = %v, want %v", got.ID, sess.ID)
		}
		if got.CountryCode != "IN" {
			t.Errorf("country = %q, want IN", got.CountryCode)
		}
	})
	t.Run("quota limits active sessions", func(t *testing.T) {
		svc := newSessionService(t)
		userID := ksid.NewID()
		for i := range 3 {
			if _, err := svc.CreateWithID(ksid.NewID(), userID, HashToken(string(rune('a'+i))), "", "", "", time.Now().Add(time.Hour), 3); err != nil {
				t.Fatal(err)
			}
		}
		_, err := svc.CreateWithID(ksid.NewID(), userID, HashToken("d"), "", "", "", time.Now().Add(time.Hour), 3)
		if !errors.Is(err, ErrSessionQuotaExceeded) {
			t.Errorf("err = %v, want ErrSessionQuotaExceeded", err)
		}
	})
	t.Run("revoked sessions do not count against quota", func(t *testing.T) {
		svc := newSessionService(t)
		userID := ksid.NewID()
		sess := createSession(t, svc, userID, "tok-1")
		if err := svc.Revoke(sess.ID); err != nil {
			t.Fatal(err)
		}
		if _, err := svc.CreateWithID(ksid.NewID(), userID, HashToken("tok-2"), "", "", "", time.Now().Add(time.Hour), 1); err != nil {
			t.Fatal(err)
		}
	})
}

func TestSessionService_GetActiveByTokenHash(t *testing.T) {
	t.Run("unknown hash", func(t *testing.T) {
		svc := newSessionService(t)
		if _, err := svc.GetActiveByTokenHash(HashToken("nope")); !errors.Is(err, ErrSessionNotFound) {
			t.Errorf("err = %v, want ErrSessionNotFound", err)
		}
	})
	t.Run("expired session", func(t *testing.T) {
		svc := newSessionService(t)
		if _, err := svc.CreateWithID(ksid.NewID(), ksid.NewID(), HashToken("tok"), "", "", "", time.Now().Add(-time.Minute), 0); err != nil {
			t.Fatal(err)
		}
		if _, err := svc.GetActiveByTokenHash(HashToken("tok")); !errors.Is(err, ErrSessionNotFound) {
			t.Errorf("err = %v, want ErrSessionNotFound", err)
		}
	})
	t.Run("revoked session", func(t *testing.T) {
		svc := newSessionService(t)
		sess := createSession(t, svc, ksid.NewID(), "tok")
		if err := svc.Revoke(sess.ID); err != nil {
			t.Fatal(err)
		}
		if _, err := svc.GetActiveByTokenHash(HashToken("tok")); !errors.Is(err, ErrSessionNotFound) {
			t.Errorf("err = %v, want ErrSessionNotFound", err)
		}
	})
}

func TestSessionService_RevokeAllForUser(t *testing.T) {
	svc := newSessionService(t)
	userID := ksid.NewID()
	createSession(t, svc, userID, "tok-1")
	createSession(t, svc, userID, "tok-2")
	other := createSession(t, svc, ksid.NewID(), "tok-3")
	if err := svc.RevokeAllForUser(userID); err != nil {
		t.Fatal(err)
	}
	count := 0
	for range svc.ActiveByUserID(userID) {
		count++
	}
	if count != 0 {
		t.Errorf("active sessions = %d, want 0", count)
	}
	if got, err := svc.GetActiveByTokenHash(HashToken("tok-3")); err != nil || got.ID != other.ID {
		t.Errorf("other user's session should survive: %v", err)
	}
}

func TestSessionService_Touch(t *testing.T) {
	svc := newSessionService(t)
	sess := createSession(t, svc, ksid.NewID(), "tok")
	if !sess.LastUsed.IsZero() {
		t.Error("LastUsed set before first use")
	}
	if err := svc.Touch(sess.ID); err != nil {
		t.Fatal(err)
	}
	got, err := svc.GetActiveByTokenHash(HashToken("tok"))
	if err != nil {
		t.Fatal(err)
	}
	if got.LastUsed.IsZero() {
		t.Error("LastUsed not updated")
	}
}

func TestPushSubscriptionService(t *testing.T) {
	svc, err := NewPushSubscriptionService(filepath.Join(t.TempDir(), "subscriptions.jsonl"))
	if err != nil {
		t.Fatal(err)
	}
	userID := ksid.NewID()
	t.Run("add and dedupe by endpoint", func(t *testing.T) {
		first, err := svc.Add(userID, "https://push.example/a", "p256", "auth")
		if err != nil {
			t.Fatal(err)
		}
		second, err := svc.Add(userID, "https://push.example/a", "p256-new", "auth-new")
		if err != nil {
			t.Fatal(err)
		}
		if svc.Len() != 1 {
			t.Fatalf("len = %d, want 1", svc.Len())
		}
		if second.ID == first.ID {
			t.Error("resubscribe should create a new row")
		}
	})
	t.Run("remove by endpoint", func(t *testing.T) {
		if err := svc.RemoveByEndpoint("https://push.example/a"); err != nil {
			t.Fatal(err)
		}
		if svc.Len() != 0 {
			t.Errorf("len = %d, want 0", svc.Len())
		}
		// Removing an unknown endpoint is a no-op.
		if err := svc.RemoveByEndpoint("https://push.example/missing"); err != nil {
			t.Fatal(err)
		}
	})
}

func TestSessionService_CleanupExpired(t *testing.T) {
	svc := newSessionService(t)
	userID := ksid.NewID()
	if _, err := svc.CreateWithID(ksid.NewID(), userID, HashToken("old"), "", "", "", time.Now().Add(-48*time.Hour), 0); err != nil {
		t.Fatal(err)
	}
	createSession(t, svc, userID, "fresh")

	n, err := svc.CleanupExpired(24 * time.Hour)
	if err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Errorf("deleted = %d, want 1", n)
	}
	if _, err := svc.GetActiveByTokenHash(HashToken("fresh")); err != nil {
		t.Errorf("fresh session gone: %v", err)
	}
}
