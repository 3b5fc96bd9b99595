package domain

import (
	"fmt"
	"time"
)

type Status string

const (
	StatusOpen     Status = "open"
	StatusWaitlist Status = "waitlist"
	StatusPlaying  Status = "playing"
	StatusPast     Status = "past"
	StatusCanceled Status = "canceled"
)

type NetType string

const (
	NetBeachVolleyball NetType = "beach_volleyball"
	NetWomenMixed      NetType = "women_net_mixed"
	NetWomenWomen      NetType = "women_net_women"
	NetMenMen          NetType = "men_net_men"
	NetMenMixed        NetType = "men_net_mixed"
	NetMixed           NetType = "mixed_net"
)

var NetTypes = []NetType{
	NetBeachVolleyball, NetWomenMixed, NetWomenWomen,
	NetMenMen, NetMenMixed, NetMixed,
}

func ValidNetType(n NetType) bool {
	for _, t := range NetTypes {
		if t == n {
			return true
		}
	}
	return false
}

type Event struct {
	ID                  string    `json:"id"`
	Name                string    `json:"name"`
	Location            string    `json:"location"`
	Date                time.Time `json:"date"`
	StartTime           time.Time `json:"start_time"`
	EndTime             time.Time `json:"end_time"`
	IsOvernight         bool      `json:"is_overnight"`
	Cost                float64   `json:"cost"`
	AdditionalComments  string    `json:"additional_comments"`
	SpotsLeft           int       `json:"spots_left"`
	NetType             NetType   `json:"net_type"`
	Status              Status    `json:"status"`
	CancellationMessage string    `json:"cancellation_message"`
	CreatedBy           string    `json:"created_by"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

// StartAt combines the event date with the start time of day, in UTC.
func (e *Event) StartAt() time.Time {
	return combine(e.Date, e.StartTime)
}

// EndAt combines the event date with the end time of day. An overnight event
// whose end time is numerically not after its start time ends on the next
// calendar day.
func (e *Event) EndAt() time.Time {
	end := combine(e.Date, e.EndTime)
	if e.IsOvernight && secondsOfDay(e.EndTime) <= secondsOfDay(e.StartTime) {
		end = end.AddDate(0, 0, 1)
	}
	return end
}

func (e *Event) IsCanceled() bool {
	return e.Status == StatusCanceled
}

func combine(date, clock time.Time) time.Time {
	return time.Date(
		date.Year(), date.Month(), date.Day(),
		clock.Hour(), clock.Minute(), clock.Second(), 0,
		time.UTC,
	)
}

func secondsOfDay(t time.Time) int {
	return t.Hour()*3600 + t.Minute()*60 + t.Second()
}

// ValidateTiming rejects an end time that is not after the start time unless
// the overnight flag rolls the end over to the next day. Checked at create and
// edit time so malformed timing never reaches the scheduler.
func ValidateTiming(start, end time.Time, overnight bool) error {
	if overnight {
		return nil
	}
	if secondsOfDay(end) <= secondsOfDay(start) {
		return fmt.Errorf("%w: end_time must be after start_time unless is_overnight is set", ErrValidation)
	}
	return nil
}

// ComputeStatus derives the event status from the clock and the remaining
// capacity. Rules apply in priority order; canceled is sticky and wins over
// everything else.
func ComputeStatus(now, start, end time.Time, spotsLeft int, canceled bool) Status {
	switch {
	case canceled:
		return StatusCanceled
	case !now.Before(end):
		return StatusPast
	case !now.Before(start):
		return StatusPlaying
	case spotsLeft == 0:
		return StatusWaitlist
	default:
		return StatusOpen
	}
}

// CurrentStatus applies ComputeStatus to the event's own timing fields.
func (e *Event) CurrentStatus(now time.Time) Status {
	return ComputeStatus(now, e.StartAt(), e.EndAt(), e.SpotsLeft, e.IsCanceled())
}

type CreateEventInput struct {
	Name               string
	Location           string
	Date               time.Time
	StartTime          time.Time
	EndTime            time.Time
	IsOvernight        bool
	Cost               float64
	AdditionalComments string
	SpotsLeft          int
	NetType            NetType
	CreatedBy          string
}

type UpdateEventInput struct {
	Name               *string
	Location           *string
	Date               *time.Time
	StartTime          *time.Time
	EndTime            *time.Time
	IsOvernight        *bool
	Cost               *float64
	AdditionalComments *string
	SpotsLeft          *int
	NetType            *NetType
	ActorID            string
}

// ApplyUpdate merges the set fields of an edit into the event; nil fields
// keep the stored value. Status and capacity fields the edit did not touch
// are never rewritten, so concurrent approval-side changes survive an edit.
func (e *Event) ApplyUpdate(in UpdateEventInput) {
	if in.Name != nil {
		e.Name = *in.Name
	}
	if in.Location != nil {
		e.Location = *in.Location
	}
	if in.Date != nil {
		e.Date = *in.Date
	}
	if in.StartTime != nil {
		e.StartTime = *in.StartTime
	}
	if in.EndTime != nil {
		e.EndTime = *in.EndTime
	}
	if in.IsOvernight != nil {
		e.IsOvernight = *in.IsOvernight
	}
	if in.Cost != nil {
		e.Cost = *in.Cost
	}
	if in.AdditionalComments != nil {
		e.AdditionalComments = *in.AdditionalComments
	}
	if in.SpotsLeft != nil {
		e.SpotsLeft = *in.SpotsLeft
	}
	if in.NetType != nil {
		e.NetType = *in.NetType
	}
	e.UpdatedAt = time.Now().UTC()
}
