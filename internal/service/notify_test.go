package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DerickW126/Volleyball-App/internal/domain"
	"github.com/DerickW126/Volleyball-App/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNotifyService_Push_StoresThenDelivers(t *testing.T) {
	users := mocks.NewMockUserRepo(t)
	inbox := mocks.NewMockNotificationRepo(t)
	notifier := mocks.NewMockNotifier(t)
	log := newTestLogger(t)

	svc := NewNotifyService(users, inbox, notifier, log)

	user := &domain.User{ID: "u1", Username: "alice"}
	users.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)

	var stored *domain.Notification
	inbox.EXPECT().Create(mock.Anything, mock.Anything).
		Run(func(_ context.Context, n *domain.Notification) { stored = n }).
		Return(nil)
	notifier.EXPECT().Deliver(mock.Anything, user, "Event reminder", "Beach Jam starts in 1 hour!").Return(nil)

	err := svc.Push(context.Background(), "u1", "e1", "Event reminder", "Beach Jam starts in 1 hour!")

	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "u1", stored.UserID)
	assert.Equal(t, "e1", stored.EventID)
	assert.NotEmpty(t, stored.ID)
}

func TestNotifyService_Push_UnknownRecipient(t *testing.T) {
	users := mocks.NewMockUserRepo(t)
	inbox := mocks.NewMockNotificationRepo(t)
	notifier := mocks.NewMockNotifier(t)
	log := newTestLogger(t)

	svc := NewNotifyService(users, inbox, notifier, log)

	users.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrUserNotFound)

	err := svc.Push(context.Background(), "missing", "e1", "t", "m")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestNotifyService_Push_InboxFailureSkipsDelivery(t *testing.T) {
	users := mocks.NewMockUserRepo(t)
	inbox := mocks.NewMockNotificationRepo(t)
	notifier := mocks.NewMockNotifier(t)
	log := newTestLogger(t)

	svc := NewNotifyService(users, inbox, notifier, log)

	users.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
	inbox.EXPECT().Create(mock.Anything, mock.Anything).Return(errors.New("db down"))
	// no Deliver expectation: transport is never reached

	err := svc.Push(context.Background(), "u1", "e1", "t", "m")

	require.Error(t, err)
}

func TestNotifyService_Push_DeliveryFailureKeepsInbox(t *testing.T) {
	users := mocks.NewMockUserRepo(t)
	inbox := mocks.NewMockNotificationRepo(t)
	notifier := mocks.NewMockNotifier(t)
	log := newTestLogger(t)

	svc := NewNotifyService(users, inbox, notifier, log)

	user := &domain.User{ID: "u1"}
	users.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)
	inbox.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	notifier.EXPECT().Deliver(mock.Anything, user, "t", "m").Return(errors.New("telegram down"))

	err := svc.Push(context.Background(), "u1", "e1", "t", "m")

	require.Error(t, err)
	assert.Len(t, inbox.Calls, 1) // the inbox write happened anyway
}

func TestNotifyService_PushAsync_DoesNotBlock(t *testing.T) {
	users := mocks.NewMockUserRepo(t)
	inbox := mocks.NewMockNotificationRepo(t)
	notifier := mocks.NewMockNotifier(t)
	log := newTestLogger(t)

	svc := NewNotifyService(users, inbox, notifier, log)

	user := &domain.User{ID: "u1"}
	users.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)
	inbox.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	notifier.EXPECT().Deliver(mock.Anything, user, "t", "m").Return(nil)

	svc.PushAsync(context.Background(), "u1", "e1", "t", "m")

	time.Sleep(50 * time.Millisecond) // goroutine push
}

func TestNotifyService_ListByUser(t *testing.T) {
	users := mocks.NewMockUserRepo(t)
	inbox := mocks.NewMockNotificationRepo(t)
	notifier := mocks.NewMockNotifier(t)
	log := newTestLogger(t)

	svc := NewNotifyService(users, inbox, notifier, log)

	items := []*domain.Notification{
		{ID: "n1", UserID: "u1", Title: "Event reminder"},
	}
	inbox.EXPECT().ListByUser(mock.Anything, "u1").Return(items, nil)

	result, err := svc.ListByUser(context.Background(), "u1")

	require.NoError(t, err)
	assert.Len(t, result, 1)
}
