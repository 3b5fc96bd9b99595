package executor

import (
	"context"
	"fmt"
	"time"

	"github.com/DerickW126/Volleyball-App/internal/domain"
	"github.com/DerickW126/Volleyball-App/internal/service/ports"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"
)

// DispatchFunc runs one fired action. Errors are terminal for the action:
// they are logged and the action is considered complete, never retried.
type DispatchFunc func(ctx context.Context, a *domain.ScheduledAction) error

// Executor is a delayed-execution facility backed by the scheduled_actions
// table: Submit inserts a row with an eta, Cancel deletes it by handle, and
// a polling loop fires whatever is due. Rows are deleted after dispatch, so
// firing is at-least-once and handlers must be idempotent.
type Executor struct {
	ledger   ports.LedgerRepo
	clock    ports.Clock
	interval time.Duration
	logger   logger.Logger
}

func New(ledger ports.LedgerRepo, clock ports.Clock, interval time.Duration, logger logger.Logger) *Executor {
	return &Executor{
		ledger:   ledger,
		clock:    clock,
		interval: interval,
		logger:   logger,
	}
}

func (e *Executor) Submit(ctx context.Context, a *domain.ScheduledAction) (string, error) {
	a.Handle = uuid.New().String()
	a.CreatedAt = e.clock.Now()

	if err := e.ledger.Insert(ctx, a); err != nil {
		return "", fmt.Errorf("submit action: %w", err)
	}

	return a.Handle, nil
}

// Cancel removes a pending action. An unknown or already-fired handle is not
// an error.
func (e *Executor) Cancel(ctx context.Context, handle string) error {
	if err := e.ledger.Delete(ctx, handle); err != nil {
		return fmt.Errorf("cancel action: %w", err)
	}

	return nil
}

func (e *Executor) Start(ctx context.Context, dispatch DispatchFunc) {
	ticker := time.NewTicker(e.interval)
	defer ticker.Stop()

	e.logger.Info("executor started",
		logger.Duration("interval", e.interval),
	)

	for {
		select {
		case <-ctx.Done():
			e.logger.Info("executor stopped")
			return
		case <-ticker.C:
			e.tick(ctx, dispatch)
		}
	}
}

func (e *Executor) tick(ctx context.Context, dispatch DispatchFunc) {
	due, err := e.ledger.DueBefore(ctx, e.clock.Now())
	if err != nil {
		e.logger.Error("failed to fetch due actions",
			logger.String("error", err.Error()),
		)
		return
	}

	for _, a := range due {
		e.run(ctx, dispatch, a)
	}
}

func (e *Executor) run(ctx context.Context, dispatch DispatchFunc, a *domain.ScheduledAction) {
	defer func() {
		if r := recover(); r != nil {
			e.logger.Error("panic in scheduled action",
				logger.String("handle", a.Handle),
				logger.Any("panic", r),
			)
		}
		if err := e.ledger.Delete(ctx, a.Handle); err != nil {
			e.logger.Error("failed to delete fired action",
				logger.String("handle", a.Handle),
				logger.String("error", err.Error()),
			)
		}
	}()

	if err := dispatch(ctx, a); err != nil {
		e.logger.Error("scheduled action failed",
			logger.String("handle", a.Handle),
			logger.String("event_id", a.EventID),
			logger.String("kind", string(a.Kind)),
			logger.String("error", err.Error()),
		)
	}
}
