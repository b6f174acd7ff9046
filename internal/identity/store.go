// Package identity holds the signed-in user of this portal process.
//
// The identity provider is external: it hands a bearer token to Init at sign-in
// and the session ends with Teardown at logout. Everything else reads an
// immutable Snapshot or subscribes to changes.
package identity

import (
	"context"
	"sync"
	"time"

	"go-gin-event-portal/internal/model"
	apperrors "go-gin-event-portal/pkg/app_errors"
	"go-gin-event-portal/pkg/logger"

	"go.uber.org/zap"
	"golang.org/x/oauth2"
)

// Snapshot is a read-only view of the session.
type Snapshot struct {
	Authenticated bool       `json:"authenticated"`
	Subject       string     `json:"subject,omitempty"`
	Username      string     `json:"username,omitempty"`
	Name          string     `json:"name,omitempty"`
	Email         string     `json:"email,omitempty"`
	Roles         []string   `json:"roles,omitempty"`
	Role          model.Role `json:"role"`
	ExpiresAt     time.Time  `json:"expiresAt,omitempty"`

	token *oauth2.Token
}

func anonymous() Snapshot {
	return Snapshot{Role: model.RolePublicUser}
}

func (s Snapshot) copy() Snapshot {
	if s.Roles != nil {
		s.Roles = append([]string(nil), s.Roles...)
	}
	return s
}

type Store struct {
	mu     sync.RWMutex
	snap   Snapshot
	subs   map[uint64]chan Snapshot
	nextID uint64
	now    func() time.Time
}

func NewStore() *Store {
	return &Store{
		snap: anonymous(),
		subs: make(map[uint64]chan Snapshot),
		now:  time.Now,
	}
}

// Init starts a session from a bearer token issued by the identity provider.
func (s *Store) Init(rawToken string) (Snapshot, error) {
	claims, err := ParseClaims(rawToken)
	if err != nil {
		return Snapshot{}, err
	}

	snap := Snapshot{
		Authenticated: true,
		Subject:       claims.Subject,
		Username:      claims.PreferredUsername,
		Name:          claims.Name,
		Email:         claims.Email,
		Roles:         claims.AllRoles(),
		Role:          claims.Role(),
		token: &oauth2.Token{
			AccessToken: rawToken,
			TokenType:   "Bearer",
		},
	}
	if claims.ExpiresAt != nil {
		snap.ExpiresAt = claims.ExpiresAt.Time
		snap.token.Expiry = claims.ExpiresAt.Time
	}

	s.publish(snap)
	logger.WithComponent("identity").Info("session started",
		zap.String("subject", snap.Subject),
		zap.String("role", string(snap.Role)),
	)
	return snap.copy(), nil
}

// Teardown ends the session.
func (s *Store) Teardown() {
	s.publish(anonymous())
	logger.WithComponent("identity").Info("session ended")
}

func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap.copy()
}

// Subscribe delivers every later snapshot. A slow reader only misses
// intermediate snapshots, never the latest one. Call cancel to stop.
func (s *Store) Subscribe() (<-chan Snapshot, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	ch := make(chan Snapshot, 1)
	s.subs[id] = ch

	cancel := func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if c, ok := s.subs[id]; ok {
			delete(s.subs, id)
			close(c)
		}
	}
	return ch, cancel
}

func (s *Store) publish(snap Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snap = snap
	for _, ch := range s.subs {
		select {
		case ch <- snap.copy():
		default:
			// drop the stale pending snapshot and replace it
			select {
			case <-ch:
			default:
			}
			ch <- snap.copy()
		}
	}
}

// Token implements oauth2.TokenSource.
func (s *Store) Token() (*oauth2.Token, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.snap.token == nil {
		return nil, apperrors.ErrUnauthenticated
	}
	t := *s.snap.token
	return &t, nil
}

// AccessToken returns the current bearer token. Expiry is not checked here;
// the event service is the judge of that.
func (s *Store) AccessToken(ctx context.Context) (string, bool) {
	t, err := s.Token()
	if err != nil {
		return "", false
	}
	return t.AccessToken, true
}

// Expired reports whether the session token is past its expiry.
func (s *Store) Expired() bool {
	snap := s.Snapshot()
	return snap.Authenticated && !snap.ExpiresAt.IsZero() && s.now().After(snap.ExpiresAt)
}

type ctxKey struct{}

func NewContext(ctx context.Context, snap Snapshot) context.Context {
	return context.WithValue(ctx, ctxKey{}, snap)
}

// FromContext returns the snapshot stored by NewContext, or an anonymous one.
func FromContext(ctx context.Context) Snapshot {
	if snap, ok := ctx.Value(ctxKey{}).(Snapshot); ok {
		return snap
	}
	return anonymous()
}
