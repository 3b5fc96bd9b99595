package scheduler

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

type schedulerMocks struct {
	events   *mocks.MockEventRepo
	regs     *mocks.MockRegistrationRepo
	ledger   *mocks.MockLedgerRepo
	executor *mocks.MockTaskExecutor
	pusher   *mocks.MockPusher
	clock    *mocks.MockClock
}

func newTestScheduler(t *testing.T, cfg Config) (*Scheduler, *schedulerMocks) {
	t.Helper()
	m := &schedulerMocks{
		events:   mocks.NewMockEventRepo(t),
		regs:     mocks.NewMockRegistrationRepo(t),
		ledger:   mocks.NewMockLedgerRepo(t),
		executor: mocks.NewMockTaskExecutor(t),
		pusher:   mocks.NewMockPusher(t),
		clock:    mocks.NewMockClock(t),
	}
	s := New(m.events, m.regs, m.ledger, m.executor, m.pusher, m.clock, cfg, newTestLogger(t))
	return s, m
}

func testEvent() *domain.Event {
	return &domain.Event{
		ID:        "e1",
		Name:      "Beach Jam",
		Location:  "Court 3",
		Date:      time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC),
		StartTime: time.Date(2026, 9, 12, 18, 0, 0, 0, time.UTC),
		EndTime:   time.Date(2026, 9, 12, 20, 0, 0, 0, time.UTC),
		SpotsLeft: 6,
		NetType:   domain.NetBeachVolleyball,
		Status:    domain.StatusOpen,
		CreatedBy: "host",
	}
}

func captureSubmits(m *schedulerMocks, submitted *[]*domain.ScheduledAction) {
	m.executor.EXPECT().Submit(mock.Anything, mock.Anything).
		Run(func(_ context.Context, a *domain.ScheduledAction) {
			*submitted = append(*submitted, a)
		}).
		Return("handle", nil)
}

func TestScheduler_ScheduleEvent_FarFuture(t *testing.T) {
	s, m := newTestScheduler(t, Config{})

	e := testEvent()
	now := e.StartAt().Add(-25 * time.Hour)
	m.clock.EXPECT().Now().Return(now)

	var submitted []*domain.ScheduledAction
	captureSubmits(m, &submitted)

	err := s.ScheduleEvent(context.Background(), e)
	require.NoError(t, err)

	// playing@start, past@end and all four reminders
	require.Len(t, submitted, 6)

	byKind := map[domain.ActionKind]int{}
	labels := map[string]time.Time{}
	for _, a := range submitted {
		byKind[a.Kind]++
		if a.Kind == domain.ActionRemind {
			labels[a.Label] = a.ETA
		}
	}
	assert.Equal(t, 2, byKind[domain.ActionSetStatus])
	assert.Equal(t, 4, byKind[domain.ActionRemind])

	assert.Equal(t, e.StartAt().Add(-24*time.Hour), labels["24 hours"])
	assert.Equal(t, e.StartAt().Add(-time.Hour), labels["1 hour"])
	assert.Equal(t, e.StartAt().Add(-30*time.Minute), labels["30 minutes"])
	assert.Equal(t, e.StartAt(), labels["starting now"])

	for _, a := range submitted {
		if a.Kind == domain.ActionSetStatus {
			switch a.TargetStatus {
			case domain.StatusPlaying:
				assert.Equal(t, e.StartAt(), a.ETA)
			case domain.StatusPast:
				assert.Equal(t, e.EndAt(), a.ETA)
			default:
				t.Fatalf("unexpected target status %q", a.TargetStatus)
			}
		}
	}
}

func TestScheduler_ScheduleEvent_SkipsElapsedReminders(t *testing.T) {
	s, m := newTestScheduler(t, Config{})

	e := testEvent()
	// 20 hours out: the 24-hour reminder window has already passed
	now := e.StartAt().Add(-20 * time.Hour)
	m.clock.EXPECT().Now().Return(now)

	var submitted []*domain.ScheduledAction
	captureSubmits(m, &submitted)

	err := s.ScheduleEvent(context.Background(), e)
	require.NoError(t, err)

	require.Len(t, submitted, 5)
	for _, a := range submitted {
		assert.NotEqual(t, "24 hours", a.Label)
	}
}

func TestScheduler_ScheduleEvent_AppliesStatusFirst(t *testing.T) {
	s, m := newTestScheduler(t, Config{})

	e := testEvent()
	e.SpotsLeft = 0 // stored status is stale, should become waitlist
	now := e.StartAt().Add(-2 * time.Hour)
	m.clock.EXPECT().Now().Return(now)
	m.events.EXPECT().UpdateStatus(mock.Anything, "e1", domain.StatusWaitlist).Return(nil)

	var submitted []*domain.ScheduledAction
	captureSubmits(m, &submitted)

	err := s.ScheduleEvent(context.Background(), e)
	require.NoError(t, err)

	assert.Equal(t, domain.StatusWaitlist, e.Status)
	assert.NotEmpty(t, submitted)
}

func TestScheduler_ScheduleEvent_DuringPlay(t *testing.T) {
	s, m := newTestScheduler(t, Config{})

	e := testEvent()
	now := e.StartAt().Add(30 * time.Minute)
	m.clock.EXPECT().Now().Return(now)
	m.events.EXPECT().UpdateStatus(mock.Anything, "e1", domain.StatusPlaying).Return(nil)

	var submitted []*domain.ScheduledAction
	captureSubmits(m, &submitted)

	err := s.ScheduleEvent(context.Background(), e)
	require.NoError(t, err)

	// only the end-of-game transition remains
	require.Len(t, submitted, 1)
	assert.Equal(t, domain.ActionSetStatus, submitted[0].Kind)
	assert.Equal(t, domain.StatusPast, submitted[0].TargetStatus)
}

func TestScheduler_ScheduleEvent_AlreadyEnded(t *testing.T) {
	s, m := newTestScheduler(t, Config{})

	e := testEvent()
	now := e.EndAt().Add(time.Hour)
	m.clock.EXPECT().Now().Return(now)
	m.events.EXPECT().UpdateStatus(mock.Anything, "e1", domain.StatusPast).Return(nil)

	err := s.ScheduleEvent(context.Background(), e)
	require.NoError(t, err)
	// nothing submitted: no expectation on the executor
}

func TestScheduler_ScheduleEvent_CanceledNoop(t *testing.T) {
	s, m := newTestScheduler(t, Config{})

	e := testEvent()
	e.Status = domain.StatusCanceled
	m.clock.EXPECT().Now().Return(e.StartAt().Add(-2 * time.Hour))

	err := s.ScheduleEvent(context.Background(), e)
	require.NoError(t, err)
}

func TestScheduler_Reschedule_CancelsAndResubmits(t *testing.T) {
	s, m := newTestScheduler(t, Config{})

	e := testEvent()
	now := e.StartAt().Add(-25 * time.Hour)
	m.clock.EXPECT().Now().Return(now)

	pending := []*domain.ScheduledAction{
		{Handle: "h1", EventID: "e1"},
		{Handle: "h2", EventID: "e1"},
	}
	m.ledger.EXPECT().ListByEvent(mock.Anything, "e1").Return(pending, nil)
	m.executor.EXPECT().Cancel(mock.Anything, "h1").Return(nil)
	m.executor.EXPECT().Cancel(mock.Anything, "h2").Return(nil)

	var submitted []*domain.ScheduledAction
	captureSubmits(m, &submitted)

	err := s.Reschedule(context.Background(), e)
	require.NoError(t, err)

	assert.Len(t, submitted, 6)
}

func TestScheduler_Reschedule_CanceledDropsEverything(t *testing.T) {
	s, m := newTestScheduler(t, Config{})

	e := testEvent()
	e.Status = domain.StatusCanceled

	pending := []*domain.ScheduledAction{{Handle: "h1", EventID: "e1"}}
	m.ledger.EXPECT().ListByEvent(mock.Anything, "e1").Return(pending, nil)
	m.executor.EXPECT().Cancel(mock.Anything, "h1").Return(nil)

	err := s.Reschedule(context.Background(), e)
	require.NoError(t, err)
	// no submits expected: a canceled event gets no new actions
}

func TestScheduler_Reschedule_CancelFailureIsBestEffort(t *testing.T) {
	s, m := newTestScheduler(t, Config{})

	e := testEvent()
	e.Status = domain.StatusCanceled

	pending := []*domain.ScheduledAction{
		{Handle: "h1", EventID: "e1"},
		{Handle: "h2", EventID: "e1"},
	}
	m.ledger.EXPECT().ListByEvent(mock.Anything, "e1").Return(pending, nil)
	m.executor.EXPECT().Cancel(mock.Anything, "h1").Return(errors.New("already fired"))
	m.executor.EXPECT().Cancel(mock.Anything, "h2").Return(nil)

	err := s.Reschedule(context.Background(), e)
	require.NoError(t, err)
}

func TestScheduler_HandleSetStatus_FiresOnTime(t *testing.T) {
	s, m := newTestScheduler(t, Config{})

	e := testEvent()
	m.events.EXPECT().GetByID(mock.Anything, "e1").Return(e, nil)
	m.clock.EXPECT().Now().Return(e.StartAt().Add(2 * time.Second))
	m.events.EXPECT().UpdateStatus(mock.Anything, "e1", domain.StatusPlaying).Return(nil)

	err := s.HandleAction(context.Background(), &domain.ScheduledAction{
		Handle:       "h1",
		EventID:      "e1",
		Kind:         domain.ActionSetStatus,
		TargetStatus: domain.StatusPlaying,
		ETA:          e.StartAt(),
	})
	require.NoError(t, err)
}

func TestScheduler_HandleSetStatus_StaleSkipped(t *testing.T) {
	s, m := newTestScheduler(t, Config{})

	e := testEvent()
	m.events.EXPECT().GetByID(mock.Anything, "e1").Return(e, nil)
	// the event was moved after this action was submitted; the action fires
	// minutes away from the new start and must not touch the status
	m.clock.EXPECT().Now().Return(e.StartAt().Add(5 * time.Minute))

	err := s.HandleAction(context.Background(), &domain.ScheduledAction{
		Handle:       "h1",
		EventID:      "e1",
		Kind:         domain.ActionSetStatus,
		TargetStatus: domain.StatusPlaying,
	})
	require.NoError(t, err)
}

func TestScheduler_HandleSetStatus_LeewayIsConfigurable(t *testing.T) {
	s, m := newTestScheduler(t, Config{Leeway: 10 * time.Minute})

	e := testEvent()
	m.events.EXPECT().GetByID(mock.Anything, "e1").Return(e, nil)
	m.clock.EXPECT().Now().Return(e.StartAt().Add(5 * time.Minute))
	m.events.EXPECT().UpdateStatus(mock.Anything, "e1", domain.StatusPlaying).Return(nil)

	err := s.HandleAction(context.Background(), &domain.ScheduledAction{
		EventID:      "e1",
		Kind:         domain.ActionSetStatus,
		TargetStatus: domain.StatusPlaying,
	})
	require.NoError(t, err)
}

func TestScheduler_HandleSetStatus_EventGone(t *testing.T) {
	s, m := newTestScheduler(t, Config{})

	m.events.EXPECT().GetByID(mock.Anything, "gone").Return(nil, domain.ErrEventNotFound)

	err := s.HandleAction(context.Background(), &domain.ScheduledAction{
		EventID:      "gone",
		Kind:         domain.ActionSetStatus,
		TargetStatus: domain.StatusPlaying,
	})
	require.NoError(t, err)
}

func TestScheduler_HandleSetStatus_CanceledNoop(t *testing.T) {
	s, m := newTestScheduler(t, Config{})

	e := testEvent()
	e.Status = domain.StatusCanceled
	m.events.EXPECT().GetByID(mock.Anything, "e1").Return(e, nil)

	err := s.HandleAction(context.Background(), &domain.ScheduledAction{
		EventID:      "e1",
		Kind:         domain.ActionSetStatus,
		TargetStatus: domain.StatusPlaying,
	})
	require.NoError(t, err)
}

func TestScheduler_HandleRemind_FansOutToHostAndApproved(t *testing.T) {
	s, m := newTestScheduler(t, Config{})

	e := testEvent()
	m.events.EXPECT().GetByID(mock.Anything, "e1").Return(e, nil)

	regs := []*domain.Registration{
		{ID: "r1", EventID: "e1", UserID: "u1", IsApproved: true},
		{ID: "r2", EventID: "e1", UserID: "host", IsApproved: true}, // host also registered
	}
	m.regs.EXPECT().ListApproved(mock.Anything, "e1").Return(regs, nil)

	wantBody := "Beach Jam starts in 1 hour!"
	m.pusher.EXPECT().Push(mock.Anything, "host", "e1", "Event reminder", wantBody).Return(nil)
	m.pusher.EXPECT().Push(mock.Anything, "u1", "e1", "Event reminder", wantBody).Return(nil)

	err := s.HandleAction(context.Background(), &domain.ScheduledAction{
		EventID: "e1",
		Kind:    domain.ActionRemind,
		Label:   "1 hour",
	})
	require.NoError(t, err)
}

func TestScheduler_HandleRemind_StartingNowCopy(t *testing.T) {
	s, m := newTestScheduler(t, Config{})

	e := testEvent()
	m.events.EXPECT().GetByID(mock.Anything, "e1").Return(e, nil)
	m.regs.EXPECT().ListApproved(mock.Anything, "e1").Return(nil, nil)
	m.pusher.EXPECT().Push(mock.Anything, "host", "e1", "Event reminder", "Beach Jam is starting now!").Return(nil)

	err := s.HandleAction(context.Background(), &domain.ScheduledAction{
		EventID: "e1",
		Kind:    domain.ActionRemind,
		Label:   "starting now",
	})
	require.NoError(t, err)
}

func TestScheduler_HandleRemind_DeliveryFailureDoesNotBlockOthers(t *testing.T) {
	s, m := newTestScheduler(t, Config{})

	e := testEvent()
	m.events.EXPECT().GetByID(mock.Anything, "e1").Return(e, nil)

	regs := []*domain.Registration{
		{ID: "r1", EventID: "e1", UserID: "u1", IsApproved: true},
	}
	m.regs.EXPECT().ListApproved(mock.Anything, "e1").Return(regs, nil)

	m.pusher.EXPECT().Push(mock.Anything, "host", "e1", mock.Anything, mock.Anything).Return(errors.New("chat not found"))
	m.pusher.EXPECT().Push(mock.Anything, "u1", "e1", mock.Anything, mock.Anything).Return(nil)

	err := s.HandleAction(context.Background(), &domain.ScheduledAction{
		EventID: "e1",
		Kind:    domain.ActionRemind,
		Label:   "30 minutes",
	})
	require.NoError(t, err)
}

func TestScheduler_HandleRemind_CanceledNoop(t *testing.T) {
	s, m := newTestScheduler(t, Config{})

	e := testEvent()
	e.Status = domain.StatusCanceled
	m.events.EXPECT().GetByID(mock.Anything, "e1").Return(e, nil)

	err := s.HandleAction(context.Background(), &domain.ScheduledAction{
		EventID: "e1",
		Kind:    domain.ActionRemind,
		Label:   "1 hour",
	})
	require.NoError(t, err)
}

func TestScheduler_HandleAction_UnknownKind(t *testing.T) {
	s, _ := newTestScheduler(t, Config{})

	err := s.HandleAction(context.Background(), &domain.ScheduledAction{
		Handle: "h1",
		Kind:   "defragment",
	})
	require.NoError(t, err)
}
