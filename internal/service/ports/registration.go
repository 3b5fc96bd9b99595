package ports

import (
	"context"

	"github.com/DerickW126/Volleyball-App/internal/domain"
)

type RegistrationRepo interface {
	Create(ctx context.Context, r *domain.Registration) error
	GetByID(ctx context.Context, id string) (*domain.Registration, error)
	GetByEventAndUser(ctx context.Context, eventID, userID string) (*domain.Registration, error)
	Update(ctx context.Context, r *domain.Registration) error
	// Approve flips is_approved and the sticky previously_approved flag and
	// decrements the event's spots_left in one transaction, locking the
	// event row. Fails with ErrNotEnoughSpots when capacity is exceeded.
	Approve(ctx context.Context, registrationID string) (*domain.Registration, *domain.Event, error)
	// Unapprove clears is_approved (previously_approved stays set) and
	// returns the held spots to the event in one transaction.
	Unapprove(ctx context.Context, registrationID string) (*domain.Registration, *domain.Event, error)
	Delete(ctx context.Context, id string) error
	ListApproved(ctx context.Context, eventID string) ([]*domain.Registration, error)
	ListByEvent(ctx context.Context, eventID string) ([]*domain.Registration, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Registration, error)
	ListPendingByHost(ctx context.Context, hostID string) ([]*domain.Registration, error)
}
