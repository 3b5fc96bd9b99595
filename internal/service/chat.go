package service

import (
	"context"
	"fmt"
	"time"

	"github.com/DerickW126/Volleyball-App/internal/domain"
	"github.com/DerickW126/Volleyball-App/internal/service/ports"
	"github.com/google/uuid"
)

// ChatService stores and lists per-event chat messages. Real-time delivery
// is out of scope here; clients poll the list endpoint.
type ChatService struct {
	chat   ports.ChatRepo
	events ports.EventRepo
	users  ports.UserRepo
}

func NewChatService(chat ports.ChatRepo, events ports.EventRepo, users ports.UserRepo) *ChatService {
	return &ChatService{
		chat:   chat,
		events: events,
		users:  users,
	}
}

func (s *ChatService) Send(ctx context.Context, eventID, userID, message string) (*domain.ChatMessage, error) {
	if message == "" {
		return nil, fmt.Errorf("%w: message cannot be empty", domain.ErrValidation)
	}

	if _, err := s.events.GetByID(ctx, eventID); err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	msg := &domain.ChatMessage{
		ID:        uuid.New().String(),
		EventID:   eventID,
		UserID:    userID,
		Message:   message,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.chat.Create(ctx, msg); err != nil {
		return nil, fmt.Errorf("store chat message: %w", err)
	}

	return msg, nil
}

func (s *ChatService) ListByEvent(ctx context.Context, eventID string) ([]*domain.ChatMessage, error) {
	if _, err := s.events.GetByID(ctx, eventID); err != nil {
		return nil, err
	}
	return s.chat.ListByEvent(ctx, eventID)
}
