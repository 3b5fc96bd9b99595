package domain

import "errors"

var (
	ErrEventNotFound        = errors.New("event not found")
	ErrUserNotFound         = errors.New("user not found")
	ErrRegistrationNotFound = errors.New("registration not found")
	ErrActionNotFound       = errors.New("scheduled action not found")
)

var (
	ErrNotEnoughSpots    = errors.New("not enough spots left for this number of people")
	ErrAlreadyRegistered = errors.New("user already has a registration for this event")
	ErrNotApproved       = errors.New("registration is not approved")
	ErrAlreadyApproved   = errors.New("registration is already approved")
	ErrEventCanceled     = errors.New("event is canceled")
	ErrEventAlreadyEnded = errors.New("event has already ended")
)

var (
	ErrUsernameTaken = errors.New("username is already taken")
	ErrNotEventHost  = errors.New("only the event host may perform this action")
)

var (
	ErrValidation = errors.New("validation error")
)
