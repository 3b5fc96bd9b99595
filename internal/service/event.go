package service

import (
	"context"
	"fmt"

	"github.com/DerickW126/Volleyball-App/internal/domain"
	"github.com/DerickW126/Volleyball-App/internal/service/ports"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"
)

type EventService struct {
	repo      ports.EventRepo
	regs      ports.RegistrationRepo
	scheduler ports.EventScheduler
	pusher    ports.Pusher
	clock     ports.Clock
	logger    logger.Logger
}

func NewEventService(
	repo ports.EventRepo,
	regs ports.RegistrationRepo,
	scheduler ports.EventScheduler,
	pusher ports.Pusher,
	clock ports.Clock,
	logger logger.Logger,
) *EventService {
	return &EventService{
		repo:      repo,
		regs:      regs,
		scheduler: scheduler,
		pusher:    pusher,
		clock:     clock,
		logger:    logger,
	}
}

func (s *EventService) Create(ctx context.Context, input domain.CreateEventInput) (*domain.Event, error) {
	if input.Name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if input.Location == "" {
		return nil, fmt.Errorf("%w: location is required", domain.ErrValidation)
	}
	if input.SpotsLeft < 0 {
		return nil, fmt.Errorf("%w: spots_left must not be negative", domain.ErrValidation)
	}
	if input.NetType == "" {
		input.NetType = domain.NetBeachVolleyball
	}
	if !domain.ValidNetType(input.NetType) {
		return nil, fmt.Errorf("%w: unknown net_type %q", domain.ErrValidation, input.NetType)
	}
	if err := domain.ValidateTiming(input.StartTime, input.EndTime, input.IsOvernight); err != nil {
		return nil, err
	}

	event := &domain.Event{
		ID:                 uuid.New().String(),
		Name:               input.Name,
		Location:           input.Location,
		Date:               input.Date,
		StartTime:          input.StartTime,
		EndTime:            input.EndTime,
		IsOvernight:        input.IsOvernight,
		Cost:               input.Cost,
		AdditionalComments: input.AdditionalComments,
		SpotsLeft:          input.SpotsLeft,
		NetType:            input.NetType,
		CreatedBy:          input.CreatedBy,
	}
	event.Status = event.CurrentStatus(s.clock.Now())

	if err := s.repo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}

	if err := s.scheduler.ScheduleEvent(ctx, event); err != nil {
		return nil, fmt.Errorf("schedule event: %w", err)
	}

	s.logger.Info("event created",
		logger.String("event_id", event.ID),
		logger.String("name", event.Name),
		logger.String("status", string(event.Status)),
	)

	s.pusher.PushAsync(ctx, event.CreatedBy, event.ID,
		"Event created",
		fmt.Sprintf("You have successfully created %s", event.Name),
	)

	return event, nil
}

func (s *EventService) Update(ctx context.Context, id string, input domain.UpdateEventInput) (*domain.Event, error) {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}

	if current.CreatedBy != input.ActorID {
		return nil, domain.ErrNotEventHost
	}
	if current.IsCanceled() {
		return nil, domain.ErrEventCanceled
	}

	oldStart, oldEnd := current.StartAt(), current.EndAt()

	preview := *current
	preview.ApplyUpdate(input)

	if preview.SpotsLeft < 0 {
		return nil, fmt.Errorf("%w: spots_left must not be negative", domain.ErrValidation)
	}
	if !domain.ValidNetType(preview.NetType) {
		return nil, fmt.Errorf("%w: unknown net_type %q", domain.ErrValidation, preview.NetType)
	}
	if err := domain.ValidateTiming(preview.StartTime, preview.EndTime, preview.IsOvernight); err != nil {
		return nil, err
	}

	// The repository merges the input under a row lock and re-checks the
	// canceled flag there, so a cancel or an approval landing after the read
	// above is not overwritten.
	event, err := s.repo.Update(ctx, id, input)
	if err != nil {
		return nil, fmt.Errorf("update event: %w", err)
	}

	event.Status = event.CurrentStatus(s.clock.Now())
	if err := s.repo.UpdateStatus(ctx, event.ID, event.Status); err != nil {
		return nil, fmt.Errorf("update event status: %w", err)
	}

	// timing changes invalidate every pending transition and reminder
	if !event.StartAt().Equal(oldStart) || !event.EndAt().Equal(oldEnd) {
		if err := s.scheduler.Reschedule(ctx, event); err != nil {
			return nil, fmt.Errorf("reschedule event: %w", err)
		}
	}

	s.logger.Info("event updated",
		logger.String("event_id", event.ID),
		logger.String("status", string(event.Status)),
	)

	s.notifyRegistrants(ctx, event,
		"Event details changed",
		fmt.Sprintf("The details of %s have changed, please re-check the time, location and requirements", event.Name),
	)

	return event, nil
}

func (s *EventService) Cancel(ctx context.Context, id, actorID, message string) (*domain.Event, error) {
	if message == "" {
		return nil, fmt.Errorf("%w: cancellation message is required", domain.ErrValidation)
	}

	event, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}

	if event.CreatedBy != actorID {
		return nil, domain.ErrNotEventHost
	}
	if event.IsCanceled() {
		return nil, domain.ErrEventCanceled
	}

	if err := s.repo.Cancel(ctx, id, message); err != nil {
		return nil, fmt.Errorf("cancel event: %w", err)
	}
	event.Status = domain.StatusCanceled
	event.CancellationMessage = message

	if err := s.scheduler.Reschedule(ctx, event); err != nil {
		return nil, fmt.Errorf("drop pending actions: %w", err)
	}

	s.logger.Info("event canceled",
		logger.String("event_id", event.ID),
	)

	s.pusher.PushAsync(ctx, event.CreatedBy, event.ID,
		"Event canceled",
		fmt.Sprintf("You have canceled %s. Reason: %s", event.Name, message),
	)
	s.notifyRegistrants(ctx, event,
		"Event canceled",
		fmt.Sprintf("%s has been canceled. Reason: %s", event.Name, message),
	)

	return event, nil
}

func (s *EventService) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *EventService) List(ctx context.Context) ([]*domain.Event, error) {
	return s.repo.List(ctx)
}

func (s *EventService) ListRegistrations(ctx context.Context, eventID string) ([]*domain.Registration, error) {
	if _, err := s.repo.GetByID(ctx, eventID); err != nil {
		return nil, err
	}
	return s.regs.ListByEvent(ctx, eventID)
}

func (s *EventService) notifyRegistrants(ctx context.Context, event *domain.Event, title, message string) {
	regs, err := s.regs.ListByEvent(ctx, event.ID)
	if err != nil {
		s.logger.Error("failed to list registrants for notification",
			logger.String("event_id", event.ID),
			logger.String("error", err.Error()),
		)
		return
	}

	for _, reg := range regs {
		if reg.UserID == event.CreatedBy {
			continue
		}
		s.pusher.PushAsync(ctx, reg.UserID, event.ID, title, message)
	}
}
