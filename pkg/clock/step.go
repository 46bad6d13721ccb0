package clock

import "time"

// Activity is a scripted unit of behavior run on the clock.
type Activity interface {
	Name() string
	Script() []Step
}

// Step is one instruction of an activity script: either a call executed at
// the current instant, or a suspension until the clock has advanced.
type Step struct {
	wait time.Duration
	call func() error
}

// Wait suspends the activity for d of simulated time
func Wait(d time.Duration) Step {
	if d < 0 {
		d = 0
	}
	return Step{wait: d}
}

// Call runs fn at the current instant. A non-nil error abandons the rest of
// the script.
func Call(fn func() error) Step {
	return Step{call: fn}
}

// Do runs fn at the current instant
func Do(fn func()) Step {
	return Call(func() error {
		fn()
		return nil
	})
}

// IsWait reports whether the step suspends the activity
func (s Step) IsWait() bool {
	return s.call == nil
}
