package dto

type CreateEventRequest struct {
	Name               string  `json:"name" binding:"required"`
	Location           string  `json:"location" binding:"required"`
	Date               string  `json:"date" binding:"required"`
	StartTime          string  `json:"start_time" binding:"required"`
	EndTime            string  `json:"end_time" binding:"required"`
	IsOvernight        bool    `json:"is_overnight"`
	Cost               float64 `json:"cost"`
	AdditionalComments string  `json:"additional_comments"`
	SpotsLeft          int     `json:"spots_left" binding:"gte=0"`
	NetType            string  `json:"net_type"`
	CreatedBy          string  `json:"created_by" binding:"required,uuid"`
}

type UpdateEventRequest struct {
	Name               *string  `json:"name"`
	Location           *string  `json:"location"`
	Date               *string  `json:"date"`
	StartTime          *string  `json:"start_time"`
	EndTime            *string  `json:"end_time"`
	IsOvernight        *bool    `json:"is_overnight"`
	Cost               *float64 `json:"cost"`
	AdditionalComments *string  `json:"additional_comments"`
	SpotsLeft          *int     `json:"spots_left"`
	NetType            *string  `json:"net_type"`
	ActorID            string   `json:"actor_id" binding:"required,uuid"`
}

type CancelEventRequest struct {
	ActorID             string `json:"actor_id" binding:"required,uuid"`
	CancellationMessage string `json:"cancellation_message" binding:"required"`
}

type RegisterRequest struct {
	UserID         string `json:"user_id" binding:"required,uuid"`
	NumberOfPeople int    `json:"number_of_people" binding:"required,gt=0"`
	Notes          string `json:"notes"`
}

type UnregisterRequest struct {
	UserID string `json:"user_id" binding:"required,uuid"`
}

type ApproveRequest struct {
	ActorID string `json:"actor_id" binding:"required,uuid"`
}

type RemoveApprovedRequest struct {
	ActorID string `json:"actor_id" binding:"required,uuid"`
	Message string `json:"message" binding:"required"`
}

type SendMessageRequest struct {
	UserID  string `json:"user_id" binding:"required,uuid"`
	Message string `json:"message" binding:"required"`
}

type CreateUserRequest struct {
	Username       string `json:"username" binding:"required"`
	Nickname       string `json:"nickname"`
	TelegramChatID *int64 `json:"telegram_chat_id"`
}
