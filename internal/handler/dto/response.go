package dto

import (
	"time"

	"github.com/DerickW126/Volleyball-App/internal/domain"
)

const (
	DateFormat = "2006-01-02"
	TimeFormat = "15:04"
)

type EventResponse struct {
	ID                  string  `json:"id"`
	Name                string  `json:"name"`
	Location            string  `json:"location"`
	Date                string  `json:"date"`
	StartTime           string  `json:"start_time"`
	EndTime             string  `json:"end_time"`
	IsOvernight         bool    `json:"is_overnight"`
	Cost                float64 `json:"cost"`
	AdditionalComments  string  `json:"additional_comments,omitempty"`
	SpotsLeft           int     `json:"spots_left"`
	NetType             string  `json:"net_type"`
	Status              string  `json:"status"`
	CancellationMessage string  `json:"cancellation_message,omitempty"`
	CreatedBy           string  `json:"created_by"`
	StartAt             string  `json:"start_at"`
	EndAt               string  `json:"end_at"`
	CreatedAt           string  `json:"created_at"`
}

type RegistrationResponse struct {
	ID                 string `json:"id"`
	EventID            string `json:"event_id"`
	UserID             string `json:"user_id"`
	NumberOfPeople     int    `json:"number_of_people"`
	IsApproved         bool   `json:"is_approved"`
	PreviouslyApproved bool   `json:"previously_approved"`
	Notes              string `json:"notes,omitempty"`
	CreatedAt          string `json:"created_at"`
}

type CheckRegistrationResponse struct {
	Registered     bool `json:"registered"`
	NumberOfPeople int  `json:"number_of_people,omitempty"`
}

type UserResponse struct {
	ID             string `json:"id"`
	Username       string `json:"username"`
	Nickname       string `json:"nickname,omitempty"`
	TelegramChatID *int64 `json:"telegram_chat_id,omitempty"`
	CreatedAt      string `json:"created_at"`
}

type NotificationResponse struct {
	ID        string `json:"id"`
	EventID   string `json:"event_id"`
	Title     string `json:"title"`
	Message   string `json:"message"`
	CreatedAt string `json:"created_at"`
}

type ChatMessageResponse struct {
	ID        string `json:"id"`
	EventID   string `json:"event_id"`
	UserID    string `json:"user_id"`
	Message   string `json:"message"`
	CreatedAt string `json:"created_at"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToEventResponse(e *domain.Event) EventResponse {
	return EventResponse{
		ID:                  e.ID,
		Name:                e.Name,
		Location:            e.Location,
		Date:                e.Date.Format(DateFormat),
		StartTime:           e.StartTime.Format(TimeFormat),
		EndTime:             e.EndTime.Format(TimeFormat),
		IsOvernight:         e.IsOvernight,
		Cost:                e.Cost,
		AdditionalComments:  e.AdditionalComments,
		SpotsLeft:           e.SpotsLeft,
		NetType:             string(e.NetType),
		Status:              string(e.Status),
		CancellationMessage: e.CancellationMessage,
		CreatedBy:           e.CreatedBy,
		StartAt:             e.StartAt().Format(time.RFC3339),
		EndAt:               e.EndAt().Format(time.RFC3339),
		CreatedAt:           e.CreatedAt.Format(time.RFC3339),
	}
}

func ToRegistrationResponse(r *domain.Registration) RegistrationResponse {
	return RegistrationResponse{
		ID:                 r.ID,
		EventID:            r.EventID,
		UserID:             r.UserID,
		NumberOfPeople:     r.NumberOfPeople,
		IsApproved:         r.IsApproved,
		PreviouslyApproved: r.PreviouslyApproved,
		Notes:              r.Notes,
		CreatedAt:          r.CreatedAt.Format(time.RFC3339),
	}
}

func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:             u.ID,
		Username:       u.Username,
		Nickname:       u.Nickname,
		TelegramChatID: u.TelegramChatID,
		CreatedAt:      u.CreatedAt.Format(time.RFC3339),
	}
}

func ToNotificationResponse(n *domain.Notification) NotificationResponse {
	return NotificationResponse{
		ID:        n.ID,
		EventID:   n.EventID,
		Title:     n.Title,
		Message:   n.Message,
		CreatedAt: n.CreatedAt.Format(time.RFC3339),
	}
}

func ToChatMessageResponse(m *domain.ChatMessage) ChatMessageResponse {
	return ChatMessageResponse{
		ID:        m.ID,
		EventID:   m.EventID,
		UserID:    m.UserID,
		Message:   m.Message,
		CreatedAt: m.CreatedAt.Format(time.RFC3339),
	}
}
