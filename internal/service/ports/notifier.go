package ports

import (
	"context"

	"github.com/DerickW126/Volleyball-App/internal/domain"
)

// Notifier is the push transport. A delivery failure is reported to the
// caller for logging but is never fatal to the triggering operation.
type Notifier interface {
	Deliver(ctx context.Context, user *domain.User, title, body string) error
}

// Pusher records a notification in the user's inbox and hands it to the
// transport. Implemented by service.NotifyService.
type Pusher interface {
	Push(ctx context.Context, userID, eventID, title, message string) error
	// PushAsync delivers in the background; failures are logged, never
	// surfaced to the caller.
	PushAsync(ctx context.Context, userID, eventID, title, message string)
}
