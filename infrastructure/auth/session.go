// Package auth keeps the dashboard's backend session: unauthenticated, or
// authenticated with a stored token and user identity.
package auth

import (
	"context"
	"sync"

	"github.com/data-center-bgp/po-bunker/infrastructure/tokenstore"
	"github.com/data-center-bgp/po-bunker/models"
)

// Manager holds the in-memory session derived from the token store. Login
// and logout write through to the store; the two always move together.
type Manager struct {
	tokens *tokenstore.Store

	mu      sync.RWMutex
	session models.Session
	authed  bool
}

// NewManager hydrates the session from the token store. A stored token is
// trusted without a network probe; if it has expired the next backend call
// fails with the unauthorized message and the operator logs out.
func NewManager(tokens *tokenstore.Store) *Manager {
	m := &Manager{tokens: tokens}
	token, okToken := tokens.Token()
	userID, email, okUser := tokens.User()
	if okToken && okUser {
		m.session = models.Session{Token: token, UserID: userID, Email: email}
		m.authed = true
	}
	return m
}

// Login stores the session triple atomically and flips to authenticated.
func (m *Manager) Login(ctx context.Context, token string, userID int64, email string) error {
	if err := m.tokens.SetSession(ctx, token, userID, email); err != nil {
		return err
	}
	m.mu.Lock()
	m.session = models.Session{Token: token, UserID: userID, Email: email}
	m.authed = true
	m.mu.Unlock()
	return nil
}

// Logout clears the token store and flips to unauthenticated.
func (m *Manager) Logout(ctx context.Context) error {
	if err := m.tokens.Clear(ctx); err != nil {
		return err
	}
	m.mu.Lock()
	m.session = models.Session{}
	m.authed = false
	m.mu.Unlock()
	return nil
}

// Session returns the current session and whether it is authenticated.
func (m *Manager) Session() (models.Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.session, m.authed
}

// IsAuthenticated reports whether a session is active.
func (m *Manager) IsAuthenticated() bool {
	_, ok := m.Session()
	return ok
}
