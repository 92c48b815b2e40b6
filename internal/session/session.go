// Package session owns the per-login state of the storefront. Every login
// gets its own freshly seeded catalog and an empty cart; both are discarded
// wholesale on logout or expiry. Nothing survives across sessions.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/noah-isme/backend-apotek/internal/cart"
	"github.com/noah-isme/backend-apotek/internal/catalog"
	"github.com/noah-isme/backend-apotek/internal/common"
)

const defaultTTL = 12 * time.Hour

// Session bundles one user's state between login and logout.
type Session struct {
	ID        string
	Role      string
	Name      string
	Catalog   *catalog.Store
	Cart      *cart.Cart
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Manager tracks live sessions.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*Session
	ttl      time.Duration
	now      func() time.Time
	seed     func() []catalog.Medicine
}

// Config groups Manager options.
type Config struct {
	TTL  time.Duration
	Now  func() time.Time
	Seed func() []catalog.Medicine
}

// NewManager constructs a session manager. Zero-value options fall back to a
// 12 hour TTL, the wall clock, and the fixed catalog seed.
func NewManager(cfg Config) *Manager {
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = defaultTTL
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	seed := cfg.Seed
	if seed == nil {
		seed = catalog.Seed
	}
	return &Manager{
		sessions: make(map[string]*Session),
		ttl:      ttl,
		now:      now,
		seed:     seed,
	}
}

// Create opens a session for the given role and display name, seeding a new
// catalog and an empty cart.
func (m *Manager) Create(role, name string) *Session {
	now := m.now()
	s := &Session{
		ID:        uuid.NewString(),
		Role:      role,
		Name:      name,
		Catalog:   catalog.NewStore(m.seed()),
		Cart:      cart.New(),
		CreatedAt: now,
		ExpiresAt: now.Add(m.ttl),
	}
	m.mu.Lock()
	m.sessions[s.ID] = s
	m.mu.Unlock()
	return s
}

// Get returns the live session with the given id. Expired sessions are
// dropped on access.
func (m *Manager) Get(id string) (*Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[id]
	if !ok {
		return nil, false
	}
	if m.now().After(s.ExpiresAt) {
		delete(m.sessions, id)
		return nil, false
	}
	return s, true
}

// Delete discards the session and with it the session's catalog and cart.
func (m *Manager) Delete(id string) {
	m.mu.Lock()
	delete(m.sessions, id)
	m.mu.Unlock()
}

// Count reports the number of tracked sessions, expired ones included until
// their next access.
func (m *Manager) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// FromContext resolves the session referenced by the request identity.
func (m *Manager) FromContext(ctx context.Context) (*Session, bool) {
	identity, ok := common.IdentityFrom(ctx)
	if !ok {
		return nil, false
	}
	return m.Get(identity.SessionID)
}

// CatalogFor implements the catalog store resolver used by HTTP handlers.
func (m *Manager) CatalogFor(ctx context.Context) (*catalog.Store, bool) {
	s, ok := m.FromContext(ctx)
	if !ok {
		return nil, false
	}
	return s.Catalog, true
}

// CartFor implements the cart resolver used by HTTP handlers.
func (m *Manager) CartFor(ctx context.Context) (*cart.Cart, bool) {
	s, ok := m.FromContext(ctx)
	if !ok {
		return nil, false
	}
	return s.Cart, true
}
