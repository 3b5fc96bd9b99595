package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/DerickW126/Volleyball-App/internal/domain"
	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const registrationColumns = `id, event_id, user_id, number_of_people, is_approved,
		previously_approved, COALESCE(notes, ''), created_at, updated_at`

type RegistrationRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewRegistrationRepo(db *dbpg.DB) *RegistrationRepository {
	return &RegistrationRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *RegistrationRepository) Create(ctx context.Context, reg *domain.Registration) error {
	query := `INSERT INTO registrations (id, event_id, user_id, number_of_people, is_approved,
				previously_approved, notes, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	now := time.Now().UTC()
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		reg.ID, reg.EventID, reg.UserID, reg.NumberOfPeople,
		reg.IsApproved, reg.PreviouslyApproved, reg.Notes, now, now,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrAlreadyRegistered
		}
		return fmt.Errorf("insert registration: %w", err)
	}

	return nil
}

func (r *RegistrationRepository) GetByID(ctx context.Context, id string) (*domain.Registration, error) {
	query := `SELECT ` + registrationColumns + `
			  FROM registrations
			  WHERE id=$1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get registration: %w", err)
	}

	reg, err := scanRegistration(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRegistrationNotFound
		}
		return nil, fmt.Errorf("scan registration: %w", err)
	}

	return reg, nil
}

func (r *RegistrationRepository) GetByEventAndUser(ctx context.Context, eventID, userID string) (*domain.Registration, error) {
	query := `SELECT ` + registrationColumns + `
			  FROM registrations
			  WHERE event_id=$1 AND user_id=$2`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, eventID, userID)
	if err != nil {
		return nil, fmt.Errorf("get registration: %w", err)
	}

	reg, err := scanRegistration(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRegistrationNotFound
		}
		return nil, fmt.Errorf("scan registration: %w", err)
	}

	return reg, nil
}

func (r *RegistrationRepository) Update(ctx context.Context, reg *domain.Registration) error {
	// previously_approved только взводится, никогда не сбрасывается
	query := `UPDATE registrations
			  SET number_of_people=$2, is_approved=$3,
			      previously_approved=(previously_approved OR $4), notes=$5, updated_at=now()
			  WHERE id=$1`
	res, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		reg.ID, reg.NumberOfPeople, reg.IsApproved, reg.IsApproved, reg.Notes,
	)
	if err != nil {
		return fmt.Errorf("update registration: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update registration rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrRegistrationNotFound
	}

	return nil
}

func (r *RegistrationRepository) Approve(ctx context.Context, registrationID string) (*domain.Registration, *domain.Event, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	reg, err := lockRegistration(ctx, tx, registrationID)
	if err != nil {
		return nil, nil, err
	}
	if reg.IsApproved {
		return nil, nil, domain.ErrAlreadyApproved
	}

	// Блокируем событие: проверка вместимости и списание мест атомарны
	lockQuery := `SELECT spots_left, status FROM events WHERE id = $1 FOR UPDATE`
	var spotsLeft int
	var status domain.Status
	if err = tx.QueryRowContext(ctx, lockQuery, reg.EventID).Scan(&spotsLeft, &status); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil, domain.ErrEventNotFound
		}
		return nil, nil, fmt.Errorf("lock event: %w", err)
	}

	if status == domain.StatusCanceled {
		return nil, nil, domain.ErrEventCanceled
	}
	if spotsLeft < reg.NumberOfPeople {
		return nil, nil, domain.ErrNotEnoughSpots
	}

	regQuery := `UPDATE registrations
				 SET is_approved = TRUE, previously_approved = TRUE, updated_at = now()
				 WHERE id = $1
				 RETURNING ` + registrationColumns
	reg, err = scanRegistration(tx.QueryRowContext(ctx, regQuery, registrationID).Scan)
	if err != nil {
		return nil, nil, fmt.Errorf("approve registration: %w", err)
	}

	eventQuery := `UPDATE events
				   SET spots_left = spots_left - $2, updated_at = now()
				   WHERE id = $1
				   RETURNING ` + eventColumns
	event, err := scanEvent(tx.QueryRowContext(ctx, eventQuery, reg.EventID, reg.NumberOfPeople).Scan)
	if err != nil {
		return nil, nil, fmt.Errorf("take spots: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, nil, fmt.Errorf("commit: %w", err)
	}

	return reg, event, nil
}

func (r *RegistrationRepository) Unapprove(ctx context.Context, registrationID string) (*domain.Registration, *domain.Event, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	reg, err := lockRegistration(ctx, tx, registrationID)
	if err != nil {
		return nil, nil, err
	}
	if !reg.IsApproved {
		return nil, nil, domain.ErrNotApproved
	}

	regQuery := `UPDATE registrations
				 SET is_approved = FALSE, updated_at = now()
				 WHERE id = $1
				 RETURNING ` + registrationColumns
	reg, err = scanRegistration(tx.QueryRowContext(ctx, regQuery, registrationID).Scan)
	if err != nil {
		return nil, nil, fmt.Errorf("unapprove registration: %w", err)
	}

	eventQuery := `UPDATE events
				   SET spots_left = spots_left + $2, updated_at = now()
				   WHERE id = $1
				   RETURNING ` + eventColumns
	event, err := scanEvent(tx.QueryRowContext(ctx, eventQuery, reg.EventID, reg.NumberOfPeople).Scan)
	if err != nil {
		return nil, nil, fmt.Errorf("return spots: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, nil, fmt.Errorf("commit: %w", err)
	}

	return reg, event, nil
}

func (r *RegistrationRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM registrations WHERE id=$1`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return fmt.Errorf("delete registration: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete registration rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrRegistrationNotFound
	}

	return nil
}

func (r *RegistrationRepository) ListApproved(ctx context.Context, eventID string) ([]*domain.Registration, error) {
	query := `SELECT ` + registrationColumns + `
			  FROM registrations
			  WHERE event_id=$1 AND is_approved=TRUE
			  ORDER BY created_at`
	return r.list(ctx, query, eventID)
}

func (r *RegistrationRepository) ListByEvent(ctx context.Context, eventID string) ([]*domain.Registration, error) {
	query := `SELECT ` + registrationColumns + `
			  FROM registrations
			  WHERE event_id=$1
			  ORDER BY created_at`
	return r.list(ctx, query, eventID)
}

func (r *RegistrationRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Registration, error) {
	query := `SELECT ` + registrationColumns + `
			  FROM registrations
			  WHERE user_id=$1
			  ORDER BY created_at DESC`
	return r.list(ctx, query, userID)
}

func (r *RegistrationRepository) ListPendingByHost(ctx context.Context, hostID string) ([]*domain.Registration, error) {
	query := `SELECT r.id, r.event_id, r.user_id, r.number_of_people, r.is_approved,
					 r.previously_approved, COALESCE(r.notes, ''), r.created_at, r.updated_at
			  FROM registrations r
			  JOIN events e ON e.id = r.event_id
			  WHERE e.created_by = $1 AND r.is_approved = FALSE
			  ORDER BY r.created_at`
	return r.list(ctx, query, hostID)
}

func (r *RegistrationRepository) list(ctx context.Context, query string, args ...any) ([]*domain.Registration, error) {
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list registrations: %w", err)
	}
	defer rows.Close()

	var res []*domain.Registration
	for rows.Next() {
		reg, err := scanRegistration(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan registration: %w", err)
		}
		res = append(res, reg)
	}

	return res, rows.Err()
}

func lockRegistration(ctx context.Context, tx *sql.Tx, id string) (*domain.Registration, error) {
	query := `SELECT ` + registrationColumns + `
			  FROM registrations
			  WHERE id=$1
			  FOR UPDATE`
	reg, err := scanRegistration(tx.QueryRowContext(ctx, query, id).Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRegistrationNotFound
		}
		return nil, fmt.Errorf("lock registration: %w", err)
	}
	return reg, nil
}

func scanRegistration(scan func(dest ...any) error) (*domain.Registration, error) {
	var reg domain.Registration
	err := scan(
		&reg.ID, &reg.EventID, &reg.UserID, &reg.NumberOfPeople, &reg.IsApproved,
		&reg.PreviouslyApproved, &reg.Notes, &reg.CreatedAt, &reg.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &reg, nil
}
