// Package tokenstore persists the backend access token and the user
// identity it belongs to, so the session survives process restarts.
package tokenstore

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"github.com/uptrace/bun"

	"github.com/data-center-bgp/po-bunker/infrastructure/sqlite"
	"github.com/data-center-bgp/po-bunker/models"
)

const (
	keyAccessToken = "access_token"
	keyUserID      = "user_id"
	keyUserEmail   = "user_email"
)

// Store is a sqlite-backed key/value store with an in-memory mirror.
// Reads are synchronous; writes go through to the database. Absence is a
// false second return, never an error.
type Store struct {
	db *sqlite.DB

	mu     sync.RWMutex
	values map[string]string
}

// Open loads the persisted rows and returns a ready store.
func Open(ctx context.Context, db *sqlite.DB) (*Store, error) {
	s := &Store{db: db, values: make(map[string]string)}

	var entries []models.TokenEntry
	err := db.WithReadTx(ctx, func(ctx context.Context, tx bun.Tx) error {
		return tx.NewSelect().Model(&entries).Scan(ctx)
	})
	if err != nil {
		return nil, fmt.Errorf("load token store: %w", err)
	}
	for _, entry := range entries {
		s.values[entry.Key] = entry.Value
	}
	return s, nil
}

// SetToken stores the backend access token.
func (s *Store) SetToken(ctx context.Context, token string) error {
	return s.set(ctx, map[string]string{keyAccessToken: token})
}

// Token returns the stored access token, if any.
func (s *Store) Token() (string, bool) {
	return s.get(keyAccessToken)
}

// RemoveToken deletes the stored access token.
func (s *Store) RemoveToken(ctx context.Context) error {
	return s.remove(ctx, keyAccessToken)
}

// SetUser stores the user identity behind the token.
func (s *Store) SetUser(ctx context.Context, userID int64, email string) error {
	return s.set(ctx, map[string]string{
		keyUserID:    strconv.FormatInt(userID, 10),
		keyUserEmail: email,
	})
}

// User returns the stored user identity. Both id and email must be present.
func (s *Store) User() (int64, string, bool) {
	rawID, okID := s.get(keyUserID)
	email, okEmail := s.get(keyUserEmail)
	if !okID || !okEmail {
		return 0, "", false
	}
	userID, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		return 0, "", false
	}
	return userID, email, true
}

// ClearUser deletes the stored user identity.
func (s *Store) ClearUser(ctx context.Context) error {
	return s.remove(ctx, keyUserID, keyUserEmail)
}

// IsAuthenticated reports whether a token is present.
func (s *Store) IsAuthenticated() bool {
	_, ok := s.Token()
	return ok
}

// SetSession writes token and user identity in one transaction. Token
// presence implies user presence, so the triple always lands together.
func (s *Store) SetSession(ctx context.Context, token string, userID int64, email string) error {
	return s.set(ctx, map[string]string{
		keyAccessToken: token,
		keyUserID:      strconv.FormatInt(userID, 10),
		keyUserEmail:   email,
	})
}

// Clear removes the token and user identity in one transaction.
func (s *Store) Clear(ctx context.Context) error {
	return s.remove(ctx, keyAccessToken, keyUserID, keyUserEmail)
}

func (s *Store) get(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

func (s *Store) set(ctx context.Context, pairs map[string]string) error {
	err := s.db.WithWriteTx(ctx, func(ctx context.Context, tx bun.Tx) error {
		for key, value := range pairs {
			if _, err := tx.ExecContext(ctx, `
INSERT INTO token_store (key, value, updated_at)
VALUES (?, ?, CURRENT_TIMESTAMP)
ON CONFLICT(key) DO UPDATE SET
  value = excluded.value,
  updated_at = CURRENT_TIMESTAMP`, key, value); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("persist token store keys: %w", err)
	}

	s.mu.Lock()
	for key, value := range pairs {
		s.values[key] = value
	}
	s.mu.Unlock()
	return nil
}

func (s *Store) remove(ctx context.Context, keys ...string) error {
	err := s.db.WithWriteTx(ctx, func(ctx context.Context, tx bun.Tx) error {
		for _, key := range keys {
			if _, err := tx.NewDelete().Model((*models.TokenEntry)(nil)).Where("key = ?", key).Exec(ctx); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("clear token store keys: %w", err)
	}

	s.mu.Lock()
	for _, key := range keys {
		delete(s.values, key)
	}
	s.mu.Unlock()
	return nil
}
