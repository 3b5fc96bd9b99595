package domain

import "time"

type Registration struct {
	ID             string `json:"id"`
	EventID        string `json:"event_id"`
	UserID         string `json:"user_id"`
	NumberOfPeople int    `json:"number_of_people"`
	IsApproved     bool   `json:"is_approved"`
	// PreviouslyApproved is sticky: set once the registration is first
	// approved, never cleared afterwards.
	PreviouslyApproved bool      `json:"previously_approved"`
	Notes              string    `json:"notes"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

type RegisterInput struct {
	EventID        string
	UserID         string
	NumberOfPeople int
	Notes          string
}
