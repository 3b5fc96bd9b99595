package ports

import (
	"context"

	"github.com/DerickW126/Volleyball-App/internal/domain"
)

type NotificationRepo interface {
	Create(ctx context.Context, n *domain.Notification) error
	ListByUser(ctx context.Context, userID string) ([]*domain.Notification, error)
}

type ChatRepo interface {
	Create(ctx context.Context, m *domain.ChatMessage) error
	ListByEvent(ctx context.Context, eventID string) ([]*domain.ChatMessage, error)
}
