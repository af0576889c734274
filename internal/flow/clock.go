package flow

import "time"

// Timer is the subset of *time.Timer the flow needs.
type Timer interface {
	Stop() bool
}

// Clock schedules callbacks. Production code uses RealClock; tests swap in a
// fake that fires timers on demand.
type Clock interface {
	AfterFunc(d time.Duration, f func()) Timer
}

// RealClock schedules callbacks with the time package.
type RealClock struct{}

// AfterFunc implements Clock.
func (RealClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}
