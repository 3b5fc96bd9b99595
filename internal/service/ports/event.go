package ports

import (
	"context"

	"github.com/DerickW126/Volleyball-App/internal/domain"
)

type EventRepo interface {
	Create(ctx context.Context, e *domain.Event) error
	GetByID(ctx context.Context, id string) (*domain.Event, error)
	// Update merges the set fields of the input into the stored row under a
	// row lock and returns the result; fields the input did not set keep the
	// stored value. A canceled row fails with ErrEventCanceled.
	Update(ctx context.Context, id string, input domain.UpdateEventInput) (*domain.Event, error)
	// UpdateStatus persists a status transition. Canceled is sticky: the
	// update is a no-op when the stored status is already canceled.
	UpdateStatus(ctx context.Context, id string, status domain.Status) error
	// Cancel marks the event canceled and records the cancellation message.
	Cancel(ctx context.Context, id, message string) error
	List(ctx context.Context) ([]*domain.Event, error)
}
