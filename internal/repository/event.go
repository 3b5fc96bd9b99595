package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/DerickW126/Volleyball-App/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const eventColumns = `id, name, location, date, start_time, end_time, is_overnight,
		cost, additional_comments, spots_left, net_type, status,
		COALESCE(cancellation_message, ''), created_by, created_at, updated_at`

type EventRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewEventRepo(db *dbpg.DB) *EventRepository {
	return &EventRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *EventRepository) Create(ctx context.Context, e *domain.Event) error {
	query := `INSERT INTO events (id, name, location, date, start_time, end_time, is_overnight,
				cost, additional_comments, spots_left, net_type, status, created_by, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	now := time.Now().UTC()
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		e.ID, e.Name, e.Location, e.Date, e.StartTime, e.EndTime, e.IsOvernight,
		e.Cost, e.AdditionalComments, e.SpotsLeft, e.NetType, e.Status, e.CreatedBy, now, now,
	)
	if err != nil {
		return fmt.Errorf("insert event: %w", err)
	}

	return nil
}

func (r *EventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	query := `SELECT ` + eventColumns + `
			  FROM events
			  WHERE id=$1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}

	e, err := scanEvent(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("scan event: %w", err)
	}

	return e, nil
}

// Update merges the edited fields into the stored row under a row lock and
// returns the result. The row is re-read inside the transaction, so fields
// the edit did not set (spots_left after a parallel approval) keep their
// current value, and a row canceled in the meantime is never rewritten.
func (r *EventRepository) Update(ctx context.Context, id string, input domain.UpdateEventInput) (*domain.Event, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	// Блокируем строку события на время редактирования
	lockQuery := `SELECT ` + eventColumns + ` FROM events WHERE id=$1 FOR UPDATE`
	e, err := scanEvent(tx.QueryRowContext(ctx, lockQuery, id).Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("lock event: %w", err)
	}

	if e.IsCanceled() {
		return nil, domain.ErrEventCanceled
	}

	e.ApplyUpdate(input)

	query := `UPDATE events
			  SET name=$2, location=$3, date=$4, start_time=$5, end_time=$6, is_overnight=$7,
			      cost=$8, additional_comments=$9, spots_left=$10, net_type=$11,
			      updated_at=now()
			  WHERE id=$1`
	if _, err = tx.ExecContext(
		ctx, query,
		e.ID, e.Name, e.Location, e.Date, e.StartTime, e.EndTime, e.IsOvernight,
		e.Cost, e.AdditionalComments, e.SpotsLeft, e.NetType,
	); err != nil {
		return nil, fmt.Errorf("update event: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	return e, nil
}

// UpdateStatus never overwrites a canceled event: the WHERE clause is the
// database-side half of the sticky-canceled invariant.
func (r *EventRepository) UpdateStatus(ctx context.Context, id string, status domain.Status) error {
	query := `UPDATE events
			  SET status=$2, updated_at=now()
			  WHERE id=$1 AND status <> $3`
	_, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, status, domain.StatusCanceled)
	if err != nil {
		return fmt.Errorf("update event status: %w", err)
	}

	return nil
}

func (r *EventRepository) Cancel(ctx context.Context, id, message string) error {
	query := `UPDATE events
			  SET status=$2, cancellation_message=$3, updated_at=now()
			  WHERE id=$1`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, domain.StatusCanceled, message)
	if err != nil {
		return fmt.Errorf("cancel event: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("cancel event rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrEventNotFound
	}

	return nil
}

func (r *EventRepository) List(ctx context.Context) ([]*domain.Event, error) {
	query := `SELECT ` + eventColumns + `
			  FROM events
			  ORDER BY date DESC, start_time DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	var res []*domain.Event
	for rows.Next() {
		e, err := scanEvent(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		res = append(res, e)
	}

	return res, rows.Err()
}

func scanEvent(scan func(dest ...any) error) (*domain.Event, error) {
	var e domain.Event
	err := scan(
		&e.ID, &e.Name, &e.Location, &e.Date, &e.StartTime, &e.EndTime, &e.IsOvernight,
		&e.Cost, &e.AdditionalComments, &e.SpotsLeft, &e.NetType, &e.Status,
		&e.CancellationMessage, &e.CreatedBy, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}
