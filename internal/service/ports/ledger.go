package ports

import (
	"context"
	"time"

	"github.com/DerickW126/Volleyball-App/internal/domain"
)

// LedgerRepo is the durable record of pending scheduled actions. Rows are
// owned by the scheduler/executor pair: inserted on submit, deleted on cancel
// or once the action has run.
type LedgerRepo interface {
	Insert(ctx context.Context, a *domain.ScheduledAction) error
	Delete(ctx context.Context, handle string) error
	ListByEvent(ctx context.Context, eventID string) ([]*domain.ScheduledAction, error)
	// DueBefore returns actions whose eta is not after t, oldest first.
	DueBefore(ctx context.Context, t time.Time) ([]*domain.ScheduledAction, error)
}
