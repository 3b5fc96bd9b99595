package clock

import "time"

// System is the wall clock. Everything time-sensitive takes a ports.Clock so
// tests can substitute a fixed instant.
type System struct{}

func (System) Now() time.Time {
	return time.Now().UTC()
}
