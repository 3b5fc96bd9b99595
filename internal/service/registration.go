package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/DerickW126/Volleyball-App/internal/domain"
	"github.com/DerickW126/Volleyball-App/internal/service/ports"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"
)

type RegistrationService struct {
	regs   ports.RegistrationRepo
	events ports.EventRepo
	users  ports.UserRepo
	pusher ports.Pusher
	clock  ports.Clock
	logger logger.Logger
}

func NewRegistrationService(
	regs ports.RegistrationRepo,
	events ports.EventRepo,
	users ports.UserRepo,
	pusher ports.Pusher,
	clock ports.Clock,
	logger logger.Logger,
) *RegistrationService {
	return &RegistrationService{
		regs:   regs,
		events: events,
		users:  users,
		pusher: pusher,
		clock:  clock,
		logger: logger,
	}
}

// Register creates or updates the user's registration for the event. One
// registration per (event, user) pair; editing an approved registration
// returns the held spots and drops the approval, the sticky
// previously_approved flag stays set.
func (s *RegistrationService) Register(ctx context.Context, input domain.RegisterInput) (*domain.Registration, error) {
	if input.NumberOfPeople <= 0 {
		return nil, fmt.Errorf("%w: number_of_people must be positive", domain.ErrValidation)
	}

	event, err := s.events.GetByID(ctx, input.EventID)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}
	if event.IsCanceled() {
		return nil, domain.ErrEventCanceled
	}
	if !s.clock.Now().Before(event.EndAt()) {
		return nil, domain.ErrEventAlreadyEnded
	}

	user, err := s.users.GetByID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	existing, err := s.regs.GetByEventAndUser(ctx, input.EventID, input.UserID)
	switch {
	case err == nil:
		return s.amendRegistration(ctx, event, user, existing, input)
	case errors.Is(err, domain.ErrRegistrationNotFound):
		// первая заявка от этого пользователя
	default:
		return nil, fmt.Errorf("check existing registration: %w", err)
	}

	reg := &domain.Registration{
		ID:             uuid.New().String(),
		EventID:        input.EventID,
		UserID:         input.UserID,
		NumberOfPeople: input.NumberOfPeople,
		Notes:          input.Notes,
		CreatedAt:      time.Now().UTC(),
		UpdatedAt:      time.Now().UTC(),
	}
	if err := s.regs.Create(ctx, reg); err != nil {
		return nil, fmt.Errorf("create registration: %w", err)
	}

	s.logger.Info("registration created",
		logger.String("registration_id", reg.ID),
		logger.String("event_id", event.ID),
		logger.String("user_id", user.ID),
	)

	s.pusher.PushAsync(ctx, event.CreatedBy, event.ID,
		"New registration",
		fmt.Sprintf("%s has applied to join %s, please review the registration", user.Username, event.Name),
	)
	s.pusher.PushAsync(ctx, user.ID, event.ID,
		"Registration submitted",
		fmt.Sprintf("You have applied to join %s", event.Name),
	)

	return reg, nil
}

func (s *RegistrationService) amendRegistration(
	ctx context.Context,
	event *domain.Event,
	user *domain.User,
	reg *domain.Registration,
	input domain.RegisterInput,
) (*domain.Registration, error) {
	if reg.IsApproved {
		// возвращаем места и снимаем одобрение, заявка уходит на повторную проверку
		var err error
		if reg, _, err = s.regs.Unapprove(ctx, reg.ID); err != nil {
			return nil, fmt.Errorf("unapprove registration: %w", err)
		}
		s.recomputeStatus(ctx, event.ID)
	}

	reg.NumberOfPeople = input.NumberOfPeople
	reg.Notes = input.Notes
	reg.IsApproved = false
	if err := s.regs.Update(ctx, reg); err != nil {
		return nil, fmt.Errorf("update registration: %w", err)
	}

	s.pusher.PushAsync(ctx, event.CreatedBy, event.ID,
		"Registration changed",
		fmt.Sprintf("%s has changed their registration for %s, please review it again", user.Username, event.Name),
	)

	return reg, nil
}

// Approve decrements the event capacity and, when it reaches zero, flips the
// event to the waitlist. The status recompute is synchronous: capacity
// changes never go through the task executor.
func (s *RegistrationService) Approve(ctx context.Context, registrationID, actorID string) (*domain.Registration, error) {
	reg, err := s.regs.GetByID(ctx, registrationID)
	if err != nil {
		return nil, fmt.Errorf("get registration: %w", err)
	}

	event, err := s.events.GetByID(ctx, reg.EventID)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}
	if event.CreatedBy != actorID {
		return nil, domain.ErrNotEventHost
	}

	reg, event, err = s.regs.Approve(ctx, registrationID)
	if err != nil {
		return nil, fmt.Errorf("approve registration: %w", err)
	}

	s.applyStatus(ctx, event)

	s.logger.Info("registration approved",
		logger.String("registration_id", reg.ID),
		logger.String("event_id", event.ID),
		logger.Int("spots_left", event.SpotsLeft),
	)

	s.pusher.PushAsync(ctx, reg.UserID, event.ID,
		"Registration approved",
		fmt.Sprintf("Your registration for %s has been approved, see you there!", event.Name),
	)

	return reg, nil
}

// RemoveApproved takes an approved attendee off the list, returns their
// spots and re-opens a waitlisted event.
func (s *RegistrationService) RemoveApproved(ctx context.Context, registrationID, actorID, message string) error {
	if message == "" {
		return fmt.Errorf("%w: message is required", domain.ErrValidation)
	}

	reg, err := s.regs.GetByID(ctx, registrationID)
	if err != nil {
		return fmt.Errorf("get registration: %w", err)
	}

	event, err := s.events.GetByID(ctx, reg.EventID)
	if err != nil {
		return fmt.Errorf("get event: %w", err)
	}
	if event.CreatedBy != actorID {
		return domain.ErrNotEventHost
	}

	reg, event, err = s.regs.Unapprove(ctx, registrationID)
	if err != nil {
		return fmt.Errorf("unapprove registration: %w", err)
	}

	s.applyStatus(ctx, event)

	s.logger.Info("attendee removed from approved list",
		logger.String("registration_id", reg.ID),
		logger.String("event_id", event.ID),
	)

	s.pusher.PushAsync(ctx, reg.UserID, event.ID,
		"Registration changed",
		fmt.Sprintf("The host of %s has removed you from the attendee list. Reason: %s", event.Name, message),
	)

	return nil
}

// Unregister deletes the user's registration; an approved registration
// returns its spots to the event first.
func (s *RegistrationService) Unregister(ctx context.Context, eventID, userID string) error {
	event, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		return fmt.Errorf("get event: %w", err)
	}

	reg, err := s.regs.GetByEventAndUser(ctx, eventID, userID)
	if err != nil {
		return fmt.Errorf("get registration: %w", err)
	}

	if reg.IsApproved {
		if _, event, err = s.regs.Unapprove(ctx, reg.ID); err != nil {
			return fmt.Errorf("return spots: %w", err)
		}
		s.applyStatus(ctx, event)
	}

	if err := s.regs.Delete(ctx, reg.ID); err != nil {
		return fmt.Errorf("delete registration: %w", err)
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		s.logger.Error("failed to get user for unregister notification",
			logger.String("user_id", userID),
			logger.String("error", err.Error()),
		)
		return nil
	}

	s.pusher.PushAsync(ctx, userID, eventID,
		"Registration canceled",
		fmt.Sprintf("You have canceled your registration for %s", event.Name),
	)
	s.pusher.PushAsync(ctx, event.CreatedBy, eventID,
		"Registration canceled",
		fmt.Sprintf("%s has canceled their registration for %s", user.Username, event.Name),
	)

	return nil
}

func (s *RegistrationService) Get(ctx context.Context, eventID, userID string) (*domain.Registration, error) {
	return s.regs.GetByEventAndUser(ctx, eventID, userID)
}

func (s *RegistrationService) ListByUser(ctx context.Context, userID string) ([]*domain.Registration, error) {
	return s.regs.ListByUser(ctx, userID)
}

func (s *RegistrationService) ListPendingByHost(ctx context.Context, hostID string) ([]*domain.Registration, error) {
	return s.regs.ListPendingByHost(ctx, hostID)
}

// applyStatus keeps the stored status consistent with the new capacity
// (waitlist at zero spots, back to open above zero). Canceled, playing and
// past are never overwritten by a capacity change.
func (s *RegistrationService) applyStatus(ctx context.Context, event *domain.Event) {
	if event.Status == domain.StatusPlaying || event.Status == domain.StatusPast {
		return
	}

	next := event.CurrentStatus(s.clock.Now())
	if next == event.Status {
		return
	}

	if err := s.events.UpdateStatus(ctx, event.ID, next); err != nil {
		s.logger.Error("failed to update event status",
			logger.String("event_id", event.ID),
			logger.String("status", string(next)),
			logger.String("error", err.Error()),
		)
		return
	}
	event.Status = next
}

func (s *RegistrationService) recomputeStatus(ctx context.Context, eventID string) {
	event, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		s.logger.Error("failed to refetch event for status recompute",
			logger.String("event_id", eventID),
			logger.String("error", err.Error()),
		)
		return
	}
	s.applyStatus(ctx, event)
}
