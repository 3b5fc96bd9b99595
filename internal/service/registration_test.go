package service

import (
	"context"
	"testing"
	"time"

	"github.com/DerickW126/Volleyball-App/internal/domain"
	"github.com/DerickW126/Volleyball-App/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type regSvcMocks struct {
	regs   *mocks.MockRegistrationRepo
	events *mocks.MockEventRepo
	users  *mocks.MockUserRepo
	pusher *mocks.MockPusher
	clock  *mocks.MockClock
}

func newTestRegistrationService(t *testing.T) (*RegistrationService, *regSvcMocks) {
	t.Helper()
	m := &regSvcMocks{
		regs:   mocks.NewMockRegistrationRepo(t),
		events: mocks.NewMockEventRepo(t),
		users:  mocks.NewMockUserRepo(t),
		pusher: mocks.NewMockPusher(t),
		clock:  mocks.NewMockClock(t),
	}
	svc := NewRegistrationService(m.regs, m.events, m.users, m.pusher, m.clock, newTestLogger(t))
	return svc, m
}

func TestRegistrationService_Register_Success(t *testing.T) {
	svc, m := newTestRegistrationService(t)

	e := storedEvent()
	user := &domain.User{ID: "u1", Username: "alice"}

	m.events.EXPECT().GetByID(mock.Anything, "e1").Return(e, nil)
	m.clock.EXPECT().Now().Return(time.Date(2026, 9, 11, 10, 0, 0, 0, time.UTC))
	m.users.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)
	m.regs.EXPECT().GetByEventAndUser(mock.Anything, "e1", "u1").Return(nil, domain.ErrRegistrationNotFound)
	m.regs.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	m.pusher.EXPECT().PushAsync(mock.Anything, "host", "e1", "New registration", mock.Anything).Return()
	m.pusher.EXPECT().PushAsync(mock.Anything, "u1", "e1", "Registration submitted", mock.Anything).Return()

	reg, err := svc.Register(context.Background(), domain.RegisterInput{
		EventID:        "e1",
		UserID:         "u1",
		NumberOfPeople: 2,
		Notes:          "bringing a friend",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, reg.ID)
	assert.Equal(t, 2, reg.NumberOfPeople)
	assert.False(t, reg.IsApproved)
	assert.False(t, reg.PreviouslyApproved)
}

func TestRegistrationService_Register_InvalidPeopleCount(t *testing.T) {
	svc, _ := newTestRegistrationService(t)

	for _, n := range []int{0, -1} {
		_, err := svc.Register(context.Background(), domain.RegisterInput{
			EventID:        "e1",
			UserID:         "u1",
			NumberOfPeople: n,
		})

		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrValidation)
	}
}

func TestRegistrationService_Register_CanceledEvent(t *testing.T) {
	svc, m := newTestRegistrationService(t)

	e := storedEvent()
	e.Status = domain.StatusCanceled
	m.events.EXPECT().GetByID(mock.Anything, "e1").Return(e, nil)

	_, err := svc.Register(context.Background(), domain.RegisterInput{
		EventID:        "e1",
		UserID:         "u1",
		NumberOfPeople: 1,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEventCanceled)
}

func TestRegistrationService_Register_EndedEvent(t *testing.T) {
	svc, m := newTestRegistrationService(t)

	e := storedEvent()
	m.events.EXPECT().GetByID(mock.Anything, "e1").Return(e, nil)
	// the event ended at 20:00
	m.clock.EXPECT().Now().Return(time.Date(2026, 9, 12, 21, 0, 0, 0, time.UTC))

	_, err := svc.Register(context.Background(), domain.RegisterInput{
		EventID:        "e1",
		UserID:         "u1",
		NumberOfPeople: 1,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEventAlreadyEnded)
}

func TestRegistrationService_Register_AmendPending(t *testing.T) {
	svc, m := newTestRegistrationService(t)

	e := storedEvent()
	user := &domain.User{ID: "u1", Username: "alice"}
	existing := &domain.Registration{
		ID:             "r1",
		EventID:        "e1",
		UserID:         "u1",
		NumberOfPeople: 1,
	}

	m.events.EXPECT().GetByID(mock.Anything, "e1").Return(e, nil)
	m.clock.EXPECT().Now().Return(time.Date(2026, 9, 11, 10, 0, 0, 0, time.UTC))
	m.users.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)
	m.regs.EXPECT().GetByEventAndUser(mock.Anything, "e1", "u1").Return(existing, nil)
	m.regs.EXPECT().Update(mock.Anything, mock.Anything).Return(nil)
	m.pusher.EXPECT().PushAsync(mock.Anything, "host", "e1", "Registration changed", mock.Anything).Return()

	reg, err := svc.Register(context.Background(), domain.RegisterInput{
		EventID:        "e1",
		UserID:         "u1",
		NumberOfPeople: 3,
	})

	require.NoError(t, err)
	assert.Equal(t, "r1", reg.ID)
	assert.Equal(t, 3, reg.NumberOfPeople)
	assert.False(t, reg.IsApproved)
}

func TestRegistrationService_Register_AmendApprovedReturnsSpots(t *testing.T) {
	svc, m := newTestRegistrationService(t)

	e := storedEvent()
	user := &domain.User{ID: "u1", Username: "alice"}
	existing := &domain.Registration{
		ID:                 "r1",
		EventID:            "e1",
		UserID:             "u1",
		NumberOfPeople:     2,
		IsApproved:         true,
		PreviouslyApproved: true,
	}
	unapproved := &domain.Registration{
		ID:                 "r1",
		EventID:            "e1",
		UserID:             "u1",
		NumberOfPeople:     2,
		IsApproved:         false,
		PreviouslyApproved: true, // sticky
	}

	m.events.EXPECT().GetByID(mock.Anything, "e1").Return(e, nil)
	m.users.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)
	m.regs.EXPECT().GetByEventAndUser(mock.Anything, "e1", "u1").Return(existing, nil)
	m.regs.EXPECT().Unapprove(mock.Anything, "r1").Return(unapproved, e, nil)
	m.clock.EXPECT().Now().Return(time.Date(2026, 9, 11, 10, 0, 0, 0, time.UTC))
	m.regs.EXPECT().Update(mock.Anything, mock.Anything).Return(nil)
	m.pusher.EXPECT().PushAsync(mock.Anything, "host", "e1", "Registration changed", mock.Anything).Return()

	reg, err := svc.Register(context.Background(), domain.RegisterInput{
		EventID:        "e1",
		UserID:         "u1",
		NumberOfPeople: 4,
	})

	require.NoError(t, err)
	assert.False(t, reg.IsApproved)
	assert.True(t, reg.PreviouslyApproved)
	assert.Equal(t, 4, reg.NumberOfPeople)
}

func TestRegistrationService_Approve_Success(t *testing.T) {
	svc, m := newTestRegistrationService(t)

	e := storedEvent()
	pending := &domain.Registration{ID: "r1", EventID: "e1", UserID: "u1", NumberOfPeople: 2}
	approved := &domain.Registration{
		ID: "r1", EventID: "e1", UserID: "u1", NumberOfPeople: 2,
		IsApproved: true, PreviouslyApproved: true,
	}
	afterEvent := storedEvent()
	afterEvent.SpotsLeft = 4

	m.regs.EXPECT().GetByID(mock.Anything, "r1").Return(pending, nil)
	m.events.EXPECT().GetByID(mock.Anything, "e1").Return(e, nil)
	m.regs.EXPECT().Approve(mock.Anything, "r1").Return(approved, afterEvent, nil)
	m.clock.EXPECT().Now().Return(time.Date(2026, 9, 11, 10, 0, 0, 0, time.UTC))
	m.pusher.EXPECT().PushAsync(mock.Anything, "u1", "e1", "Registration approved", mock.Anything).Return()

	reg, err := svc.Approve(context.Background(), "r1", "host")

	require.NoError(t, err)
	assert.True(t, reg.IsApproved)
	assert.True(t, reg.PreviouslyApproved)
}

func TestRegistrationService_Approve_LastSpotsFlipWaitlist(t *testing.T) {
	svc, m := newTestRegistrationService(t)

	e := storedEvent()
	e.SpotsLeft = 2
	pending := &domain.Registration{ID: "r1", EventID: "e1", UserID: "u1", NumberOfPeople: 2}
	approved := &domain.Registration{
		ID: "r1", EventID: "e1", UserID: "u1", NumberOfPeople: 2, IsApproved: true,
	}
	afterEvent := storedEvent()
	afterEvent.SpotsLeft = 0

	m.regs.EXPECT().GetByID(mock.Anything, "r1").Return(pending, nil)
	m.events.EXPECT().GetByID(mock.Anything, "e1").Return(e, nil)
	m.regs.EXPECT().Approve(mock.Anything, "r1").Return(approved, afterEvent, nil)
	m.clock.EXPECT().Now().Return(time.Date(2026, 9, 11, 10, 0, 0, 0, time.UTC))
	m.events.EXPECT().UpdateStatus(mock.Anything, "e1", domain.StatusWaitlist).Return(nil)
	m.pusher.EXPECT().PushAsync(mock.Anything, "u1", "e1", "Registration approved", mock.Anything).Return()

	_, err := svc.Approve(context.Background(), "r1", "host")

	require.NoError(t, err)
	assert.Equal(t, domain.StatusWaitlist, afterEvent.Status)
}

func TestRegistrationService_Approve_NotHost(t *testing.T) {
	svc, m := newTestRegistrationService(t)

	pending := &domain.Registration{ID: "r1", EventID: "e1", UserID: "u1"}
	m.regs.EXPECT().GetByID(mock.Anything, "r1").Return(pending, nil)
	m.events.EXPECT().GetByID(mock.Anything, "e1").Return(storedEvent(), nil)

	_, err := svc.Approve(context.Background(), "r1", "intruder")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotEventHost)
}

func TestRegistrationService_Approve_NotEnoughSpots(t *testing.T) {
	svc, m := newTestRegistrationService(t)

	pending := &domain.Registration{ID: "r1", EventID: "e1", UserID: "u1", NumberOfPeople: 10}
	m.regs.EXPECT().GetByID(mock.Anything, "r1").Return(pending, nil)
	m.events.EXPECT().GetByID(mock.Anything, "e1").Return(storedEvent(), nil)
	m.regs.EXPECT().Approve(mock.Anything, "r1").Return(nil, nil, domain.ErrNotEnoughSpots)

	_, err := svc.Approve(context.Background(), "r1", "host")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotEnoughSpots)
}

func TestRegistrationService_Approve_DuringPlayKeepsStatus(t *testing.T) {
	svc, m := newTestRegistrationService(t)

	e := storedEvent()
	e.Status = domain.StatusPlaying
	pending := &domain.Registration{ID: "r1", EventID: "e1", UserID: "u1", NumberOfPeople: 2}
	approved := &domain.Registration{ID: "r1", EventID: "e1", UserID: "u1", IsApproved: true}
	afterEvent := storedEvent()
	afterEvent.Status = domain.StatusPlaying
	afterEvent.SpotsLeft = 0

	m.regs.EXPECT().GetByID(mock.Anything, "r1").Return(pending, nil)
	m.events.EXPECT().GetByID(mock.Anything, "e1").Return(e, nil)
	m.regs.EXPECT().Approve(mock.Anything, "r1").Return(approved, afterEvent, nil)
	// no UpdateStatus expectation: capacity changes never touch playing
	m.pusher.EXPECT().PushAsync(mock.Anything, "u1", "e1", "Registration approved", mock.Anything).Return()

	_, err := svc.Approve(context.Background(), "r1", "host")

	require.NoError(t, err)
	assert.Equal(t, domain.StatusPlaying, afterEvent.Status)
}

func TestRegistrationService_RemoveApproved_ReopensWaitlist(t *testing.T) {
	svc, m := newTestRegistrationService(t)

	e := storedEvent()
	e.SpotsLeft = 0
	e.Status = domain.StatusWaitlist
	approved := &domain.Registration{
		ID: "r1", EventID: "e1", UserID: "u1", NumberOfPeople: 2, IsApproved: true,
	}
	unapproved := &domain.Registration{
		ID: "r1", EventID: "e1", UserID: "u1", NumberOfPeople: 2, PreviouslyApproved: true,
	}
	afterEvent := storedEvent()
	afterEvent.SpotsLeft = 2
	afterEvent.Status = domain.StatusWaitlist

	m.regs.EXPECT().GetByID(mock.Anything, "r1").Return(approved, nil)
	m.events.EXPECT().GetByID(mock.Anything, "e1").Return(e, nil)
	m.regs.EXPECT().Unapprove(mock.Anything, "r1").Return(unapproved, afterEvent, nil)
	m.clock.EXPECT().Now().Return(time.Date(2026, 9, 11, 10, 0, 0, 0, time.UTC))
	m.events.EXPECT().UpdateStatus(mock.Anything, "e1", domain.StatusOpen).Return(nil)
	m.pusher.EXPECT().PushAsync(mock.Anything, "u1", "e1", "Registration changed", mock.Anything).Return()

	err := svc.RemoveApproved(context.Background(), "r1", "host", "no-shows last time")

	require.NoError(t, err)
	assert.Equal(t, domain.StatusOpen, afterEvent.Status)
}

func TestRegistrationService_RemoveApproved_RequiresMessage(t *testing.T) {
	svc, _ := newTestRegistrationService(t)

	err := svc.RemoveApproved(context.Background(), "r1", "host", "")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestRegistrationService_RemoveApproved_NotApproved(t *testing.T) {
	svc, m := newTestRegistrationService(t)

	pending := &domain.Registration{ID: "r1", EventID: "e1", UserID: "u1"}
	m.regs.EXPECT().GetByID(mock.Anything, "r1").Return(pending, nil)
	m.events.EXPECT().GetByID(mock.Anything, "e1").Return(storedEvent(), nil)
	m.regs.EXPECT().Unapprove(mock.Anything, "r1").Return(nil, nil, domain.ErrNotApproved)

	err := svc.RemoveApproved(context.Background(), "r1", "host", "reason")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotApproved)
}

func TestRegistrationService_Unregister_ApprovedReturnsSpots(t *testing.T) {
	svc, m := newTestRegistrationService(t)

	e := storedEvent()
	user := &domain.User{ID: "u1", Username: "alice"}
	approved := &domain.Registration{
		ID: "r1", EventID: "e1", UserID: "u1", NumberOfPeople: 2, IsApproved: true,
	}
	afterEvent := storedEvent()
	afterEvent.SpotsLeft = 8

	m.events.EXPECT().GetByID(mock.Anything, "e1").Return(e, nil)
	m.regs.EXPECT().GetByEventAndUser(mock.Anything, "e1", "u1").Return(approved, nil)
	m.regs.EXPECT().Unapprove(mock.Anything, "r1").Return(approved, afterEvent, nil)
	m.clock.EXPECT().Now().Return(time.Date(2026, 9, 11, 10, 0, 0, 0, time.UTC))
	m.regs.EXPECT().Delete(mock.Anything, "r1").Return(nil)
	m.users.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)
	m.pusher.EXPECT().PushAsync(mock.Anything, "u1", "e1", "Registration canceled", mock.Anything).Return()
	m.pusher.EXPECT().PushAsync(mock.Anything, "host", "e1", "Registration canceled", mock.Anything).Return()

	err := svc.Unregister(context.Background(), "e1", "u1")

	require.NoError(t, err)
}

func TestRegistrationService_Unregister_PendingJustDeletes(t *testing.T) {
	svc, m := newTestRegistrationService(t)

	e := storedEvent()
	user := &domain.User{ID: "u1", Username: "alice"}
	pending := &domain.Registration{ID: "r1", EventID: "e1", UserID: "u1", NumberOfPeople: 2}

	m.events.EXPECT().GetByID(mock.Anything, "e1").Return(e, nil)
	m.regs.EXPECT().GetByEventAndUser(mock.Anything, "e1", "u1").Return(pending, nil)
	m.regs.EXPECT().Delete(mock.Anything, "r1").Return(nil)
	m.users.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)
	m.pusher.EXPECT().PushAsync(mock.Anything, "u1", "e1", "Registration canceled", mock.Anything).Return()
	m.pusher.EXPECT().PushAsync(mock.Anything, "host", "e1", "Registration canceled", mock.Anything).Return()

	err := svc.Unregister(context.Background(), "e1", "u1")

	require.NoError(t, err)
}

func TestRegistrationService_Unregister_NotRegistered(t *testing.T) {
	svc, m := newTestRegistrationService(t)

	m.events.EXPECT().GetByID(mock.Anything, "e1").Return(storedEvent(), nil)
	m.regs.EXPECT().GetByEventAndUser(mock.Anything, "e1", "u1").Return(nil, domain.ErrRegistrationNotFound)

	err := svc.Unregister(context.Background(), "e1", "u1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrRegistrationNotFound)
}
