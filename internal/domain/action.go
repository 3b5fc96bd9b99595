package domain

import "time"

type ActionKind string

const (
	ActionSetStatus ActionKind = "set_status"
	ActionRemind    ActionKind = "remind"
)

// ScheduledAction is one pending piece of future work for an event: either a
// status transition or a reminder fan-out. The row in the scheduled_actions
// table is both the reminder-ledger entry and the delayed task itself; the
// Handle is the cancellation key.
type ScheduledAction struct {
	Handle       string     `json:"handle"`
	EventID      string     `json:"event_id"`
	Kind         ActionKind `json:"kind"`
	TargetStatus Status     `json:"target_status,omitempty"`
	Label        string     `json:"label,omitempty"`
	ETA          time.Time  `json:"eta"`
	CreatedAt    time.Time  `json:"created_at"`
}
