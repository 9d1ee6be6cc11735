package conversation

import "time"

// Timer is a pending delayed call, as returned by [Clock.AfterFunc].
type Timer interface {
	// Stop cancels the call. It reports whether the call was still pending.
	Stop() bool
}

// Clock schedules delayed calls. The zero configuration uses the real
// clock, tests substitute their own.
type Clock interface {
	AfterFunc(d time.Duration, f func()) Timer
}

type realClock struct{}

func (realClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}
