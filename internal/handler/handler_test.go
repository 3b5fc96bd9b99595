package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DerickW126/Volleyball-App/internal/domain"
	"github.com/DerickW126/Volleyball-App/internal/handler/dto"
	hmocks "github.com/DerickW126/Volleyball-App/internal/handler/mocks"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
)

type svcMocks struct {
	events        *hmocks.MockEventSvc
	registrations *hmocks.MockRegistrationSvc
	users         *hmocks.MockUserSvc
	notifications *hmocks.MockNotificationSvc
	chat          *hmocks.MockChatSvc
}

func setupRouter(t *testing.T) (*svcMocks, http.Handler) {
	t.Helper()
	m := &svcMocks{
		events:        hmocks.NewMockEventSvc(t),
		registrations: hmocks.NewMockRegistrationSvc(t),
		users:         hmocks.NewMockUserSvc(t),
		notifications: hmocks.NewMockNotificationSvc(t),
		chat:          hmocks.NewMockChatSvc(t),
	}

	h := NewHandler(m.events, m.registrations, m.users, m.notifications, m.chat)

	r := ginext.New("test")
	api := r.Group("/api")
	{
		api.POST("/events", h.CreateEvent)
		api.GET("/events", h.ListEvents)
		api.GET("/events/:id", h.GetEvent)
		api.PUT("/events/:id", h.UpdateEvent)
		api.POST("/events/:id/cancel", h.CancelEvent)
		api.GET("/events/:id/registrations", h.ListEventRegistrations)
		api.POST("/events/:id/register", h.RegisterForEvent)
		api.POST("/events/:id/unregister", h.UnregisterFromEvent)
		api.GET("/events/:id/registration", h.CheckRegistration)
		api.POST("/registrations/:id/approve", h.ApproveRegistration)
		api.POST("/registrations/:id/remove", h.RemoveApprovedRegistration)
		api.GET("/events/:id/messages", h.ListChatMessages)
		api.POST("/events/:id/messages", h.SendChatMessage)
		api.POST("/users", h.CreateUser)
		api.GET("/users", h.ListUsers)
		api.GET("/users/:id/registrations", h.GetUserRegistrations)
		api.GET("/users/:id/notifications", h.GetUserNotifications)
	}

	return m, r
}

func doJSON(t *testing.T, r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func sampleEvent() *domain.Event {
	return &domain.Event{
		ID:        uuid.New().String(),
		Name:      "Beach Jam",
		Location:  "Court 3",
		Date:      time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC),
		StartTime: time.Date(2026, 9, 12, 18, 0, 0, 0, time.UTC),
		EndTime:   time.Date(2026, 9, 12, 20, 0, 0, 0, time.UTC),
		SpotsLeft: 6,
		NetType:   domain.NetBeachVolleyball,
		Status:    domain.StatusOpen,
		CreatedBy: uuid.New().String(),
		CreatedAt: time.Now().UTC(),
	}
}

// --- Events ---

func TestHandler_CreateEvent_Success(t *testing.T) {
	m, r := setupRouter(t)

	event := sampleEvent()
	m.events.EXPECT().Create(mock.Anything, mock.Anything).Return(event, nil)

	w := doJSON(t, r, http.MethodPost, "/api/events", dto.CreateEventRequest{
		Name:      "Beach Jam",
		Location:  "Court 3",
		Date:      "2026-09-12",
		StartTime: "18:00",
		EndTime:   "20:00",
		SpotsLeft: 6,
		CreatedBy: event.CreatedBy,
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.EventResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Beach Jam", resp.Name)
	assert.Equal(t, "open", resp.Status)
	assert.Equal(t, "2026-09-12", resp.Date)
	assert.Equal(t, "18:00", resp.StartTime)
}

func TestHandler_CreateEvent_BadDate(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/events", dto.CreateEventRequest{
		Name:      "Beach Jam",
		Location:  "Court 3",
		Date:      "12.09.2026",
		StartTime: "18:00",
		EndTime:   "20:00",
		SpotsLeft: 6,
		CreatedBy: uuid.New().String(),
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateEvent_ValidationError(t *testing.T) {
	m, r := setupRouter(t)

	m.events.EXPECT().Create(mock.Anything, mock.Anything).Return(nil, domain.ErrValidation)

	w := doJSON(t, r, http.MethodPost, "/api/events", dto.CreateEventRequest{
		Name:      "Beach Jam",
		Location:  "Court 3",
		Date:      "2026-09-12",
		StartTime: "20:00",
		EndTime:   "18:00",
		SpotsLeft: 6,
		CreatedBy: uuid.New().String(),
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetEvent_Success(t *testing.T) {
	m, r := setupRouter(t)

	event := sampleEvent()
	m.events.EXPECT().GetByID(mock.Anything, event.ID).Return(event, nil)

	w := doJSON(t, r, http.MethodGet, "/api/events/"+event.ID, nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.EventResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, event.ID, resp.ID)
}

func TestHandler_GetEvent_InvalidID(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/events/not-a-uuid", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetEvent_NotFound(t *testing.T) {
	m, r := setupRouter(t)

	id := uuid.New().String()
	m.events.EXPECT().GetByID(mock.Anything, id).Return(nil, domain.ErrEventNotFound)

	w := doJSON(t, r, http.MethodGet, "/api/events/"+id, nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_UpdateEvent_Forbidden(t *testing.T) {
	m, r := setupRouter(t)

	id := uuid.New().String()
	m.events.EXPECT().Update(mock.Anything, id, mock.Anything).Return(nil, domain.ErrNotEventHost)

	name := "Renamed"
	w := doJSON(t, r, http.MethodPut, "/api/events/"+id, dto.UpdateEventRequest{
		Name:    &name,
		ActorID: uuid.New().String(),
	})

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHandler_CancelEvent_Success(t *testing.T) {
	m, r := setupRouter(t)

	event := sampleEvent()
	event.Status = domain.StatusCanceled
	event.CancellationMessage = "rain"
	m.events.EXPECT().Cancel(mock.Anything, event.ID, event.CreatedBy, "rain").Return(event, nil)

	w := doJSON(t, r, http.MethodPost, "/api/events/"+event.ID+"/cancel", dto.CancelEventRequest{
		ActorID:             event.CreatedBy,
		CancellationMessage: "rain",
	})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.EventResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "canceled", resp.Status)
	assert.Equal(t, "rain", resp.CancellationMessage)
}

func TestHandler_CancelEvent_AlreadyCanceled(t *testing.T) {
	m, r := setupRouter(t)

	id := uuid.New().String()
	actor := uuid.New().String()
	m.events.EXPECT().Cancel(mock.Anything, id, actor, "again").Return(nil, domain.ErrEventCanceled)

	w := doJSON(t, r, http.MethodPost, "/api/events/"+id+"/cancel", dto.CancelEventRequest{
		ActorID:             actor,
		CancellationMessage: "again",
	})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_ListEvents(t *testing.T) {
	m, r := setupRouter(t)

	m.events.EXPECT().List(mock.Anything).Return([]*domain.Event{sampleEvent(), sampleEvent()}, nil)

	w := doJSON(t, r, http.MethodGet, "/api/events", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.EventResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
}

// --- Registrations ---

func TestHandler_RegisterForEvent_Success(t *testing.T) {
	m, r := setupRouter(t)

	eventID := uuid.New().String()
	userID := uuid.New().String()
	reg := &domain.Registration{
		ID:             uuid.New().String(),
		EventID:        eventID,
		UserID:         userID,
		NumberOfPeople: 2,
		CreatedAt:      time.Now().UTC(),
	}
	m.registrations.EXPECT().Register(mock.Anything, mock.Anything).Return(reg, nil)

	w := doJSON(t, r, http.MethodPost, "/api/events/"+eventID+"/register", dto.RegisterRequest{
		UserID:         userID,
		NumberOfPeople: 2,
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.RegistrationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.NumberOfPeople)
	assert.False(t, resp.IsApproved)
}

func TestHandler_RegisterForEvent_CanceledEvent(t *testing.T) {
	m, r := setupRouter(t)

	eventID := uuid.New().String()
	m.registrations.EXPECT().Register(mock.Anything, mock.Anything).Return(nil, domain.ErrEventCanceled)

	w := doJSON(t, r, http.MethodPost, "/api/events/"+eventID+"/register", dto.RegisterRequest{
		UserID:         uuid.New().String(),
		NumberOfPeople: 1,
	})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_CheckRegistration_Registered(t *testing.T) {
	m, r := setupRouter(t)

	eventID := uuid.New().String()
	userID := uuid.New().String()
	reg := &domain.Registration{ID: uuid.New().String(), EventID: eventID, UserID: userID, NumberOfPeople: 3}
	m.registrations.EXPECT().Get(mock.Anything, eventID, userID).Return(reg, nil)

	w := doJSON(t, r, http.MethodGet, "/api/events/"+eventID+"/registration?user_id="+userID, nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.CheckRegistrationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Registered)
	assert.Equal(t, 3, resp.NumberOfPeople)
}

func TestHandler_CheckRegistration_NotRegistered(t *testing.T) {
	m, r := setupRouter(t)

	eventID := uuid.New().String()
	userID := uuid.New().String()
	m.registrations.EXPECT().Get(mock.Anything, eventID, userID).Return(nil, domain.ErrRegistrationNotFound)

	w := doJSON(t, r, http.MethodGet, "/api/events/"+eventID+"/registration?user_id="+userID, nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.CheckRegistrationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Registered)
}

func TestHandler_ApproveRegistration_Success(t *testing.T) {
	m, r := setupRouter(t)

	regID := uuid.New().String()
	actor := uuid.New().String()
	approved := &domain.Registration{
		ID: regID, EventID: uuid.New().String(), UserID: uuid.New().String(),
		NumberOfPeople: 2, IsApproved: true, PreviouslyApproved: true,
	}
	m.registrations.EXPECT().Approve(mock.Anything, regID, actor).Return(approved, nil)

	w := doJSON(t, r, http.MethodPost, "/api/registrations/"+regID+"/approve", dto.ApproveRequest{ActorID: actor})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.RegistrationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.IsApproved)
	assert.True(t, resp.PreviouslyApproved)
}

func TestHandler_ApproveRegistration_NotEnoughSpots(t *testing.T) {
	m, r := setupRouter(t)

	regID := uuid.New().String()
	actor := uuid.New().String()
	m.registrations.EXPECT().Approve(mock.Anything, regID, actor).Return(nil, domain.ErrNotEnoughSpots)

	w := doJSON(t, r, http.MethodPost, "/api/registrations/"+regID+"/approve", dto.ApproveRequest{ActorID: actor})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_RemoveApprovedRegistration_Success(t *testing.T) {
	m, r := setupRouter(t)

	regID := uuid.New().String()
	actor := uuid.New().String()
	m.registrations.EXPECT().RemoveApproved(mock.Anything, regID, actor, "no-show").Return(nil)

	w := doJSON(t, r, http.MethodPost, "/api/registrations/"+regID+"/remove", dto.RemoveApprovedRequest{
		ActorID: actor,
		Message: "no-show",
	})

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_UnregisterFromEvent_Success(t *testing.T) {
	m, r := setupRouter(t)

	eventID := uuid.New().String()
	userID := uuid.New().String()
	m.registrations.EXPECT().Unregister(mock.Anything, eventID, userID).Return(nil)

	w := doJSON(t, r, http.MethodPost, "/api/events/"+eventID+"/unregister", dto.UnregisterRequest{UserID: userID})

	assert.Equal(t, http.StatusOK, w.Code)
}

// --- Users ---

func TestHandler_CreateUser_Success(t *testing.T) {
	m, r := setupRouter(t)

	user := &domain.User{
		ID:        uuid.New().String(),
		Username:  "alice",
		Nickname:  "Ace",
		CreatedAt: time.Now().UTC(),
	}
	m.users.EXPECT().Create(mock.Anything, mock.Anything).Return(user, nil)

	w := doJSON(t, r, http.MethodPost, "/api/users", dto.CreateUserRequest{
		Username: "alice",
		Nickname: "Ace",
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "alice", resp.Username)
}

func TestHandler_CreateUser_UsernameTaken(t *testing.T) {
	m, r := setupRouter(t)

	m.users.EXPECT().Create(mock.Anything, mock.Anything).Return(nil, domain.ErrUsernameTaken)

	w := doJSON(t, r, http.MethodPost, "/api/users", dto.CreateUserRequest{Username: "alice"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetUserNotifications(t *testing.T) {
	m, r := setupRouter(t)

	userID := uuid.New().String()
	items := []*domain.Notification{
		{ID: uuid.New().String(), UserID: userID, Title: "Event reminder", Message: "Beach Jam starts in 1 hour!"},
	}
	m.notifications.EXPECT().ListByUser(mock.Anything, userID).Return(items, nil)

	w := doJSON(t, r, http.MethodGet, "/api/users/"+userID+"/notifications", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.NotificationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "Event reminder", resp[0].Title)
}

// --- Chat ---

func TestHandler_SendChatMessage_Success(t *testing.T) {
	m, r := setupRouter(t)

	eventID := uuid.New().String()
	userID := uuid.New().String()
	msg := &domain.ChatMessage{
		ID: uuid.New().String(), EventID: eventID, UserID: userID,
		Message: "who brings the ball?", CreatedAt: time.Now().UTC(),
	}
	m.chat.EXPECT().Send(mock.Anything, eventID, userID, "who brings the ball?").Return(msg, nil)

	w := doJSON(t, r, http.MethodPost, "/api/events/"+eventID+"/messages", dto.SendMessageRequest{
		UserID:  userID,
		Message: "who brings the ball?",
	})

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestHandler_ListChatMessages_UnknownEvent(t *testing.T) {
	m, r := setupRouter(t)

	eventID := uuid.New().String()
	m.chat.EXPECT().ListByEvent(mock.Anything, eventID).Return(nil, domain.ErrEventNotFound)

	w := doJSON(t, r, http.MethodGet, "/api/events/"+eventID+"/messages", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
