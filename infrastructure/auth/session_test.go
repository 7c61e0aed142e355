package auth

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/data-center-bgp/po-bunker/infrastructure/sqlite"
	"github.com/data-center-bgp/po-bunker/infrastructure/tokenstore"
)

func newTestTokens(t *testing.T) *tokenstore.Store {
	t.Helper()
	db, err := sqlite.OpenDB(filepath.Join(t.TempDir(), "auth-test.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	if err := sqlite.ApplyMigrations(context.Background(), db); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	tokens, err := tokenstore.Open(context.Background(), db)
	if err != nil {
		t.Fatalf("open token store: %v", err)
	}
	return tokens
}

func TestNewManagerStartsUnauthenticatedOnEmptyStore(t *testing.T) {
	m := NewManager(newTestTokens(t))
	if m.IsAuthenticated() {
		t.Fatalf("empty store must not yield a session")
	}
	if _, ok := m.Session(); ok {
		t.Fatalf("Session reported ok on empty store")
	}
}

func TestNewManagerHydratesFromStoredTriple(t *testing.T) {
	tokens := newTestTokens(t)
	if err := tokens.SetSession(context.Background(), "tok-7", 7, "ops@example.com"); err != nil {
		t.Fatalf("seed session: %v", err)
	}

	m := NewManager(tokens)
	session, ok := m.Session()
	if !ok {
		t.Fatalf("stored triple must hydrate an authenticated session")
	}
	if session.Token != "tok-7" || session.UserID != 7 || session.Email != "ops@example.com" {
		t.Fatalf("session = %+v", session)
	}
}

func TestNewManagerIgnoresTokenWithoutUser(t *testing.T) {
	tokens := newTestTokens(t)
	if err := tokens.SetToken(context.Background(), "orphan"); err != nil {
		t.Fatalf("seed token: %v", err)
	}

	m := NewManager(tokens)
	if m.IsAuthenticated() {
		t.Fatalf("token without a user identity must not authenticate")
	}
}

func TestLoginLogoutWriteThroughToStore(t *testing.T) {
	tokens := newTestTokens(t)
	m := NewManager(tokens)

	if err := m.Login(context.Background(), "tok-1", 1, "a@b.c"); err != nil {
		t.Fatalf("login: %v", err)
	}
	if !m.IsAuthenticated() {
		t.Fatalf("login must flip to authenticated")
	}
	if got, ok := tokens.Token(); !ok || got != "tok-1" {
		t.Fatalf("token store after login = %q, %v", got, ok)
	}

	if err := m.Logout(context.Background()); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if m.IsAuthenticated() {
		t.Fatalf("logout must flip to unauthenticated")
	}
	if _, ok := tokens.Token(); ok {
		t.Fatalf("logout must clear the stored token")
	}
	if _, _, ok := tokens.User(); ok {
		t.Fatalf("logout must clear the stored user")
	}
}
