package session

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"github.com/CarlJazper/PSPWeb-AdminBack/internal/models"
)

func signedToken(t *testing.T, expiresAt time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "admin",
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	})
	signed, err := token.SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func TestSetAndCurrent(t *testing.T) {
	store := NewStore()
	if store.Current() != nil {
		t.Fatal("expected empty store before login")
	}

	expires := time.Now().Add(time.Hour).Truncate(time.Second)
	store.Set(signedToken(t, expires), &models.User{ID: "u1", Role: "admin"})

	current := store.Current()
	if current == nil {
		t.Fatal("expected a session after Set")
	}
	if current.User.ID != "u1" {
		t.Fatalf("expected user u1, got %s", current.User.ID)
	}
	if current.ExpiresAt == nil || !current.ExpiresAt.Equal(expires) {
		t.Fatalf("expected expiry %v decoded from claims, got %v", expires, current.ExpiresAt)
	}
	if store.Token() == "" {
		t.Fatal("expected a bearer token")
	}
}

func TestClearNotifiesSubscribers(t *testing.T) {
	store := NewStore()
	ch, cancel := store.Subscribe()
	defer cancel()

	store.Set(signedToken(t, time.Now().Add(time.Hour)), &models.User{ID: "u1"})

	select {
	case sess := <-ch:
		if sess.User == nil || sess.User.ID != "u1" {
			t.Fatalf("expected login notification, got %+v", sess)
		}
	case <-time.After(time.Second):
		t.Fatal("expected a notification on Set")
	}

	store.Clear()
	select {
	case sess := <-ch:
		if sess.Token != "" || sess.User != nil {
			t.Fatalf("expected zero session on Clear, got %+v", sess)
		}
	case <-time.After(time.Second):
		t.Fatal("expected a notification on Clear")
	}
	if store.Token() != "" {
		t.Fatal("expected empty token after Clear")
	}
}

func TestLatestNotificationWinsWhenSlow(t *testing.T) {
	store := NewStore()
	ch, cancel := store.Subscribe()
	defer cancel()

	store.Set(signedToken(t, time.Now().Add(time.Hour)), &models.User{ID: "first"})
	store.Set(signedToken(t, time.Now().Add(time.Hour)), &models.User{ID: "second"})

	sess := <-ch
	if sess.User == nil || sess.User.ID != "second" {
		t.Fatalf("expected the latest session, got %+v", sess.User)
	}
}

func TestCancelledSubscriberGetsNothing(t *testing.T) {
	store := NewStore()
	ch, cancel := store.Subscribe()
	cancel()

	store.Set(signedToken(t, time.Now().Add(time.Hour)), &models.User{ID: "u1"})

	if _, open := <-ch; open {
		t.Fatal("expected the channel closed after cancel")
	}
}

func TestExpiryMissingForOpaqueToken(t *testing.T) {
	store := NewStore()
	store.Set("not-a-jwt", &models.User{ID: "u1"})

	current := store.Current()
	if current == nil {
		t.Fatal("expected the session stored regardless of token shape")
	}
	if current.ExpiresAt != nil {
		t.Fatalf("expected no expiry for an opaque token, got %v", current.ExpiresAt)
	}
}
