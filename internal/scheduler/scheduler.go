package scheduler

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/DerickW126/Volleyball-App/internal/domain"
	"github.com/DerickW126/Volleyball-App/internal/service/ports"
	"github.com/wb-go/wbf/logger"
	"golang.org/x/sync/errgroup"
)

const (
	DefaultLeeway      = 10 * time.Second
	DefaultFanOutLimit = 8

	labelStartingNow = "starting now"
	reminderTitle    = "Event reminder"
)

type reminderOffset struct {
	offset time.Duration
	label  string
}

var reminderOffsets = []reminderOffset{
	{24 * time.Hour, "24 hours"},
	{time.Hour, "1 hour"},
	{30 * time.Minute, "30 minutes"},
	{0, labelStartingNow},
}

type Config struct {
	// Leeway is the tolerance window around an expected transition time;
	// a SetStatus action firing outside it is considered stale and skipped.
	Leeway time.Duration
	// FanOutLimit bounds concurrent reminder deliveries.
	FanOutLimit int
}

// Scheduler decides what future work an event needs, submits it to the task
// executor, and handles the actions when they fire. One live action set per
// event: Reschedule cancels every pending handle before submitting new ones.
type Scheduler struct {
	events   ports.EventRepo
	regs     ports.RegistrationRepo
	ledger   ports.LedgerRepo
	executor ports.TaskExecutor
	pusher   ports.Pusher
	clock    ports.Clock
	cfg      Config
	logger   logger.Logger
}

func New(
	events ports.EventRepo,
	regs ports.RegistrationRepo,
	ledger ports.LedgerRepo,
	executor ports.TaskExecutor,
	pusher ports.Pusher,
	clock ports.Clock,
	cfg Config,
	logger logger.Logger,
) *Scheduler {
	if cfg.Leeway <= 0 {
		cfg.Leeway = DefaultLeeway
	}
	if cfg.FanOutLimit <= 0 {
		cfg.FanOutLimit = DefaultFanOutLimit
	}
	return &Scheduler{
		events:   events,
		regs:     regs,
		ledger:   ledger,
		executor: executor,
		pusher:   pusher,
		clock:    clock,
		cfg:      cfg,
		logger:   logger,
	}
}

// ScheduleEvent applies the event's current status synchronously, then
// submits the future status transitions and reminder fan-outs. Reminders
// whose eta is already in the past are skipped, never fired late.
func (s *Scheduler) ScheduleEvent(ctx context.Context, e *domain.Event) error {
	now := s.clock.Now()
	start, end := e.StartAt(), e.EndAt()

	if cur := e.CurrentStatus(now); cur != e.Status {
		if err := s.events.UpdateStatus(ctx, e.ID, cur); err != nil {
			return fmt.Errorf("apply status: %w", err)
		}
		e.Status = cur
	}

	if e.IsCanceled() || !now.Before(end) {
		return nil
	}

	if now.Before(start) {
		if err := s.submit(ctx, &domain.ScheduledAction{
			EventID:      e.ID,
			Kind:         domain.ActionSetStatus,
			TargetStatus: domain.StatusPlaying,
			ETA:          start,
		}); err != nil {
			return err
		}
	}

	if err := s.submit(ctx, &domain.ScheduledAction{
		EventID:      e.ID,
		Kind:         domain.ActionSetStatus,
		TargetStatus: domain.StatusPast,
		ETA:          end,
	}); err != nil {
		return err
	}

	for _, ro := range reminderOffsets {
		eta := start.Add(-ro.offset)
		if !eta.After(now) {
			s.logger.Info("reminder already past, skipping",
				logger.String("event_id", e.ID),
				logger.String("label", ro.label),
			)
			continue
		}
		if err := s.submit(ctx, &domain.ScheduledAction{
			EventID: e.ID,
			Kind:    domain.ActionRemind,
			Label:   ro.label,
			ETA:     eta,
		}); err != nil {
			return err
		}
	}

	return nil
}

// Reschedule cancels every pending action for the event, then submits a fresh
// set unless the event is canceled. Cancellation is best effort: a handle
// that already fired is not an error, the staleness guard in the handlers
// covers that race.
func (s *Scheduler) Reschedule(ctx context.Context, e *domain.Event) error {
	entries, err := s.ledger.ListByEvent(ctx, e.ID)
	if err != nil {
		return fmt.Errorf("list pending actions: %w", err)
	}

	for _, entry := range entries {
		if err := s.executor.Cancel(ctx, entry.Handle); err != nil {
			s.logger.Warn("cancel pending action",
				logger.String("event_id", e.ID),
				logger.String("handle", entry.Handle),
				logger.String("error", err.Error()),
			)
		}
	}

	if e.IsCanceled() {
		s.logger.Info("event canceled, pending actions dropped",
			logger.String("event_id", e.ID),
			logger.Int("dropped", len(entries)),
		)
		return nil
	}

	return s.ScheduleEvent(ctx, e)
}

// HandleAction is the dispatch target for fired actions. Every failure here
// is terminal for the action: handlers no-op on missing or canceled events
// and on stale timing instead of erroring, so the executor never retries.
func (s *Scheduler) HandleAction(ctx context.Context, a *domain.ScheduledAction) error {
	switch a.Kind {
	case domain.ActionSetStatus:
		return s.handleSetStatus(ctx, a)
	case domain.ActionRemind:
		return s.handleRemind(ctx, a)
	default:
		s.logger.Warn("unknown action kind",
			logger.String("handle", a.Handle),
			logger.String("kind", string(a.Kind)),
		)
		return nil
	}
}

func (s *Scheduler) handleSetStatus(ctx context.Context, a *domain.ScheduledAction) error {
	e, err := s.events.GetByID(ctx, a.EventID)
	if err != nil {
		if errors.Is(err, domain.ErrEventNotFound) {
			s.logger.Info("event gone before status transition",
				logger.String("event_id", a.EventID),
			)
			return nil
		}
		return fmt.Errorf("get event: %w", err)
	}

	if e.IsCanceled() {
		return nil
	}

	var expected time.Time
	switch a.TargetStatus {
	case domain.StatusPlaying:
		expected = e.StartAt()
	case domain.StatusPast:
		expected = e.EndAt()
	}

	now := s.clock.Now()
	if !expected.IsZero() && absDuration(now.Sub(expected)) > s.cfg.Leeway {
		// the event was edited after this task was submitted
		s.logger.Warn("stale status transition skipped",
			logger.String("event_id", e.ID),
			logger.String("target", string(a.TargetStatus)),
			logger.String("expected_at", expected.Format(time.RFC3339)),
		)
		return nil
	}

	if err := s.events.UpdateStatus(ctx, e.ID, a.TargetStatus); err != nil {
		return fmt.Errorf("set status: %w", err)
	}

	s.logger.Info("event status updated",
		logger.String("event_id", e.ID),
		logger.String("status", string(a.TargetStatus)),
	)

	return nil
}

func (s *Scheduler) handleRemind(ctx context.Context, a *domain.ScheduledAction) error {
	e, err := s.events.GetByID(ctx, a.EventID)
	if err != nil {
		if errors.Is(err, domain.ErrEventNotFound) {
			s.logger.Info("event gone before reminder",
				logger.String("event_id", a.EventID),
			)
			return nil
		}
		return fmt.Errorf("get event: %w", err)
	}

	if e.IsCanceled() {
		return nil
	}

	regs, err := s.regs.ListApproved(ctx, e.ID)
	if err != nil {
		return fmt.Errorf("list approved registrations: %w", err)
	}

	recipients := make([]string, 0, len(regs)+1)
	recipients = append(recipients, e.CreatedBy)
	for _, reg := range regs {
		if reg.UserID != e.CreatedBy {
			recipients = append(recipients, reg.UserID)
		}
	}

	body := fmt.Sprintf("%s starts in %s!", e.Name, a.Label)
	if a.Label == labelStartingNow {
		body = fmt.Sprintf("%s is starting now!", e.Name)
	}

	// per-recipient failures are logged and do not block the rest
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.cfg.FanOutLimit)
	for _, userID := range recipients {
		g.Go(func() error {
			if err := s.pusher.Push(gctx, userID, e.ID, reminderTitle, body); err != nil {
				s.logger.Error("reminder delivery failed",
					logger.String("event_id", e.ID),
					logger.String("user_id", userID),
					logger.String("error", err.Error()),
				)
			}
			return nil
		})
	}
	_ = g.Wait()

	s.logger.Info("reminder fan-out complete",
		logger.String("event_id", e.ID),
		logger.String("label", a.Label),
		logger.Int("recipients", len(recipients)),
	)

	return nil
}

func (s *Scheduler) submit(ctx context.Context, a *domain.ScheduledAction) error {
	handle, err := s.executor.Submit(ctx, a)
	if err != nil {
		return fmt.Errorf("submit %s action: %w", a.Kind, err)
	}

	s.logger.Debug("action scheduled",
		logger.String("event_id", a.EventID),
		logger.String("kind", string(a.Kind)),
		logger.String("handle", handle),
		logger.String("eta", a.ETA.Format(time.RFC3339)),
	)

	return nil
}

func absDuration(d time.Duration) time.Duration {
	if d < 0 {
		return -d
	}
	return d
}
