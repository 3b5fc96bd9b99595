package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/DerickW126/Volleyball-App/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type LedgerRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewLedgerRepo(db *dbpg.DB) *LedgerRepository {
	return &LedgerRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *LedgerRepository) Insert(ctx context.Context, a *domain.ScheduledAction) error {
	query := `INSERT INTO scheduled_actions (handle, event_id, kind, target_status, label, eta, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		a.Handle, a.EventID, a.Kind, a.TargetStatus, a.Label, a.ETA, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("insert scheduled action: %w", err)
	}

	return nil
}

// Delete removes a ledger row by handle. Deleting an already-removed handle
// is not an error: cancellation races with firing.
func (r *LedgerRepository) Delete(ctx context.Context, handle string) error {
	query := `DELETE FROM scheduled_actions WHERE handle=$1`
	if _, err := r.db.ExecWithRetry(ctx, r.strategy, query, handle); err != nil {
		return fmt.Errorf("delete scheduled action: %w", err)
	}

	return nil
}

func (r *LedgerRepository) ListByEvent(ctx context.Context, eventID string) ([]*domain.ScheduledAction, error) {
	query := `SELECT handle, event_id, kind, COALESCE(target_status, ''), COALESCE(label, ''), eta, created_at
			  FROM scheduled_actions
			  WHERE event_id=$1
			  ORDER BY eta`
	return r.list(ctx, query, eventID)
}

func (r *LedgerRepository) DueBefore(ctx context.Context, t time.Time) ([]*domain.ScheduledAction, error) {
	query := `SELECT handle, event_id, kind, COALESCE(target_status, ''), COALESCE(label, ''), eta, created_at
			  FROM scheduled_actions
			  WHERE eta <= $1
			  ORDER BY eta`
	return r.list(ctx, query, t)
}

func (r *LedgerRepository) list(ctx context.Context, query string, args ...any) ([]*domain.ScheduledAction, error) {
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list scheduled actions: %w", err)
	}
	defer rows.Close()

	var res []*domain.ScheduledAction
	for rows.Next() {
		var a domain.ScheduledAction
		if err = rows.Scan(
			&a.Handle, &a.EventID, &a.Kind, &a.TargetStatus, &a.Label, &a.ETA, &a.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan scheduled action: %w", err)
		}
		res = append(res, &a)
	}

	return res, rows.Err()
}
