// Package session holds the authenticated backend session shared by the
// whole process. The dashboard it replaces polled browser storage every
// second to notice login state changes; here subscribers are notified
// synchronously when the session is set or cleared.
package session

import (
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"github.com/CarlJazper/PSPWeb-AdminBack/internal/models"
)

// Session is a snapshot of the current authenticated state.
type Session struct {
	Token     string
	User      *models.User
	ExpiresAt *time.Time
}

// Store is a read-mostly observable holding at most one session. Writes
// happen only at login and logout.
type Store struct {
	mu          sync.RWMutex
	current     *Session
	subscribers map[chan Session]struct{}
}

func NewStore() *Store {
	return &Store{
		subscribers: make(map[chan Session]struct{}),
	}
}

// Set installs the session obtained at login. Token expiry is read from the
// JWT claims without verifying the signature; the backend owns verification
// and this service only displays the deadline.
func (s *Store) Set(token string, user *models.User) {
	sess := Session{Token: token, User: user, ExpiresAt: tokenExpiry(token)}

	s.mu.Lock()
	s.current = &sess
	s.notifyLocked(sess)
	s.mu.Unlock()
}

// Clear drops the session at logout and notifies subscribers with a zero
// session.
func (s *Store) Clear() {
	s.mu.Lock()
	s.current = nil
	s.notifyLocked(Session{})
	s.mu.Unlock()
}

// Current returns a copy of the session, or nil when logged out.
func (s *Store) Current() *Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return nil
	}
	sess := *s.current
	return &sess
}

// Token returns the bearer token, or "" when logged out. Satisfies
// gymapi.TokenSource so the pollers' client follows login state.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return ""
	}
	return s.current.Token
}

// Subscribe registers for change notifications. The returned cancel func
// must be called on teardown; after it returns no more notifications are
// delivered.
func (s *Store) Subscribe() (<-chan Session, func()) {
	ch := make(chan Session, 1)

	s.mu.Lock()
	s.subscribers[ch] = struct{}{}
	s.mu.Unlock()

	cancel := func() {
		s.mu.Lock()
		if _, ok := s.subscribers[ch]; ok {
			delete(s.subscribers, ch)
			close(ch)
		}
		s.mu.Unlock()
	}
	return ch, cancel
}

func (s *Store) notifyLocked(sess Session) {
	for ch := range s.subscribers {
		// Replace a stale pending notification instead of blocking.
		select {
		case ch <- sess:
		default:
			select {
			case <-ch:
			default:
			}
			ch <- sess
		}
	}
}

func tokenExpiry(token string) *time.Time {
	claims := jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return nil
	}
	if claims.ExpiresAt == nil {
		return nil
	}
	expires := claims.ExpiresAt.Time
	return &expires
}
