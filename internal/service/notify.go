package service

import (
	"context"
	"fmt"
	"time"

	"github.com/DerickW126/Volleyball-App/internal/domain"
	"github.com/DerickW126/Volleyball-App/internal/service/ports"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"
)

// NotifyService writes a notification into the user's inbox and hands it to
// the push transport. The inbox write happens first, so a transport failure
// never loses the notification.
type NotifyService struct {
	users    ports.UserRepo
	inbox    ports.NotificationRepo
	notifier ports.Notifier
	logger   logger.Logger
}

func NewNotifyService(
	users ports.UserRepo,
	inbox ports.NotificationRepo,
	notifier ports.Notifier,
	logger logger.Logger,
) *NotifyService {
	return &NotifyService{
		users:    users,
		inbox:    inbox,
		notifier: notifier,
		logger:   logger,
	}
}

func (s *NotifyService) Push(ctx context.Context, userID, eventID, title, message string) error {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("get recipient: %w", err)
	}

	n := &domain.Notification{
		ID:        uuid.New().String(),
		UserID:    userID,
		EventID:   eventID,
		Title:     title,
		Message:   message,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.inbox.Create(ctx, n); err != nil {
		return fmt.Errorf("store notification: %w", err)
	}

	if err := s.notifier.Deliver(ctx, user, title, message); err != nil {
		return fmt.Errorf("deliver notification: %w", err)
	}

	return nil
}

func (s *NotifyService) ListByUser(ctx context.Context, userID string) ([]*domain.Notification, error) {
	return s.inbox.ListByUser(ctx, userID)
}

// PushAsync fires a push on a detached context and only logs the outcome;
// used where delivery must not delay or fail the API response.
func (s *NotifyService) PushAsync(ctx context.Context, userID, eventID, title, message string) {
	go func() {
		if err := s.Push(context.WithoutCancel(ctx), userID, eventID, title, message); err != nil {
			s.logger.Error("failed to push notification",
				logger.String("user_id", userID),
				logger.String("event_id", eventID),
				logger.String("error", err.Error()),
			)
		}
	}()
}
