// Package activity records operator actions in the local database.
package activity

import (
	"context"
	"log/slog"

	"github.com/uptrace/bun"

	"github.com/data-center-bgp/po-bunker/infrastructure/sqlite"
	"github.com/data-center-bgp/po-bunker/models"
)

// Service writes activity rows. Failures are logged, never surfaced: the
// log is advisory and must not block the action it records.
type Service struct {
	db *sqlite.DB
}

func NewService(db *sqlite.DB) *Service {
	return &Service{db: db}
}

// Record inserts one activity row for the given user.
func (s *Service) Record(ctx context.Context, userID int64, action, detail string) {
	if s == nil || s.db == nil {
		return
	}
	err := s.db.WithWriteTx(ctx, func(ctx context.Context, tx bun.Tx) error {
		entry := &models.ActivityLog{
			UserID: userID,
			Action: action,
			Detail: detail,
		}
		_, insertErr := tx.NewInsert().Model(entry).Exec(ctx)
		return insertErr
	})
	if err != nil {
		slog.Error("write activity log failed", slog.String("action", action), slog.Any("err", err))
	}
}

// Recent returns the latest n activity rows, newest first.
func (s *Service) Recent(ctx context.Context, n int) ([]models.ActivityLog, error) {
	var entries []models.ActivityLog
	err := s.db.WithReadTx(ctx, func(ctx context.Context, tx bun.Tx) error {
		return tx.NewSelect().
			Model(&entries).
			Order("created_at DESC", "id DESC").
			Limit(n).
			Scan(ctx)
	})
	if err != nil {
		return nil, err
	}
	return entries, nil
}
