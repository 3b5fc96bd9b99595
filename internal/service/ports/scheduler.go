package ports

import (
	"context"
	"time"

	"github.com/DerickW126/Volleyball-App/internal/domain"
)

// EventScheduler is what the API-facing services see of the scheduling core.
type EventScheduler interface {
	// ScheduleEvent applies the current status and submits all future
	// transitions and reminders for the event.
	ScheduleEvent(ctx context.Context, e *domain.Event) error
	// Reschedule cancels every pending action for the event and, unless the
	// event is canceled, submits a fresh set.
	Reschedule(ctx context.Context, e *domain.Event) error
}

// TaskExecutor is the delayed-execution facility: run-at-eta with
// cancel-by-handle, at-least-once firing.
type TaskExecutor interface {
	Submit(ctx context.Context, a *domain.ScheduledAction) (handle string, err error)
	// Cancel is best effort: cancelling an unknown or already-fired handle
	// is not an error.
	Cancel(ctx context.Context, handle string) error
}

// Clock supplies the current time so scheduling logic is testable without
// wall-clock waits.
type Clock interface {
	Now() time.Time
}
