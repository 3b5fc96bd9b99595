package executor

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
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func TestExecutor_Submit_AssignsHandle(t *testing.T) {
	ledger := mocks.NewMockLedgerRepo(t)
	clock := mocks.NewMockClock(t)
	log := newTestLogger(t)

	now := time.Date(2026, 9, 12, 10, 0, 0, 0, time.UTC)
	clock.EXPECT().Now().Return(now)
	ledger.EXPECT().Insert(mock.Anything, mock.Anything).Return(nil)

	e := New(ledger, clock, time.Second, log)

	a := &domain.ScheduledAction{
		EventID: "e1",
		Kind:    domain.ActionRemind,
		Label:   "1 hour",
		ETA:     now.Add(time.Hour),
	}
	handle, err := e.Submit(context.Background(), a)

	require.NoError(t, err)
	assert.NotEmpty(t, handle)
	assert.Equal(t, handle, a.Handle)
	assert.Equal(t, now, a.CreatedAt)
}

func TestExecutor_Submit_InsertError(t *testing.T) {
	ledger := mocks.NewMockLedgerRepo(t)
	clock := mocks.NewMockClock(t)
	log := newTestLogger(t)

	clock.EXPECT().Now().Return(time.Now())
	ledger.EXPECT().Insert(mock.Anything, mock.Anything).Return(errors.New("db down"))

	e := New(ledger, clock, time.Second, log)

	handle, err := e.Submit(context.Background(), &domain.ScheduledAction{EventID: "e1"})

	require.Error(t, err)
	assert.Empty(t, handle)
}

func TestExecutor_Cancel_DeletesByHandle(t *testing.T) {
	ledger := mocks.NewMockLedgerRepo(t)
	clock := mocks.NewMockClock(t)
	log := newTestLogger(t)

	ledger.EXPECT().Delete(mock.Anything, "h1").Return(nil)

	e := New(ledger, clock, time.Second, log)

	require.NoError(t, e.Cancel(context.Background(), "h1"))
}

func TestExecutor_Start_FiresDueActions(t *testing.T) {
	ledger := mocks.NewMockLedgerRepo(t)
	clock := mocks.NewMockClock(t)
	log := newTestLogger(t)

	now := time.Date(2026, 9, 12, 10, 0, 0, 0, time.UTC)
	clock.EXPECT().Now().Return(now)

	due := []*domain.ScheduledAction{
		{Handle: "h1", EventID: "e1", Kind: domain.ActionRemind, ETA: now.Add(-time.Second)},
	}
	ledger.EXPECT().DueBefore(mock.Anything, now).Return(due, nil).Once()
	ledger.EXPECT().DueBefore(mock.Anything, now).Return(nil, nil)
	ledger.EXPECT().Delete(mock.Anything, "h1").Return(nil).Once()

	e := New(ledger, clock, 20*time.Millisecond, log)

	var dispatched []*domain.ScheduledAction
	dispatch := func(_ context.Context, a *domain.ScheduledAction) error {
		dispatched = append(dispatched, a)
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 90*time.Millisecond)
	defer cancel()

	e.Start(ctx, dispatch)

	require.Len(t, dispatched, 1)
	assert.Equal(t, "h1", dispatched[0].Handle)
}

func TestExecutor_Start_DispatchErrorIsTerminal(t *testing.T) {
	ledger := mocks.NewMockLedgerRepo(t)
	clock := mocks.NewMockClock(t)
	log := newTestLogger(t)

	now := time.Date(2026, 9, 12, 10, 0, 0, 0, time.UTC)
	clock.EXPECT().Now().Return(now)

	due := []*domain.ScheduledAction{
		{Handle: "h1", EventID: "e1", Kind: domain.ActionSetStatus},
	}
	ledger.EXPECT().DueBefore(mock.Anything, now).Return(due, nil).Once()
	ledger.EXPECT().DueBefore(mock.Anything, now).Return(nil, nil)
	// the row is deleted even though dispatch failed; no retry happens
	ledger.EXPECT().Delete(mock.Anything, "h1").Return(nil).Once()

	e := New(ledger, clock, 20*time.Millisecond, log)

	calls := 0
	dispatch := func(_ context.Context, _ *domain.ScheduledAction) error {
		calls++
		return errors.New("handler blew up")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 90*time.Millisecond)
	defer cancel()

	e.Start(ctx, dispatch)

	assert.Equal(t, 1, calls)
}

func TestExecutor_Start_RecoversFromPanic(t *testing.T) {
	ledger := mocks.NewMockLedgerRepo(t)
	clock := mocks.NewMockClock(t)
	log := newTestLogger(t)

	now := time.Date(2026, 9, 12, 10, 0, 0, 0, time.UTC)
	clock.EXPECT().Now().Return(now)

	due := []*domain.ScheduledAction{
		{Handle: "h1", EventID: "e1", Kind: domain.ActionRemind},
		{Handle: "h2", EventID: "e2", Kind: domain.ActionRemind},
	}
	ledger.EXPECT().DueBefore(mock.Anything, now).Return(due, nil).Once()
	ledger.EXPECT().DueBefore(mock.Anything, now).Return(nil, nil)
	ledger.EXPECT().Delete(mock.Anything, "h1").Return(nil).Once()
	ledger.EXPECT().Delete(mock.Anything, "h2").Return(nil).Once()

	e := New(ledger, clock, 20*time.Millisecond, log)

	var handled []string
	dispatch := func(_ context.Context, a *domain.ScheduledAction) error {
		if a.Handle == "h1" {
			panic("boom")
		}
		handled = append(handled, a.Handle)
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 90*time.Millisecond)
	defer cancel()

	e.Start(ctx, dispatch)

	// the panic in h1 did not stop h2 from firing
	assert.Equal(t, []string{"h2"}, handled)
}

func TestExecutor_Start_StopsOnContextCancel(t *testing.T) {
	ledger := mocks.NewMockLedgerRepo(t)
	clock := mocks.NewMockClock(t)
	log := newTestLogger(t)

	e := New(ledger, clock, time.Second, log) // interval longer than test

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		e.Start(ctx, func(context.Context, *domain.ScheduledAction) error { return nil })
		close(done)
	}()

	cancel()

	select {
	case <-done:
		// success
	case <-time.After(time.Second):
		t.Fatal("executor did not stop on context cancel")
	}
}
