package rostime

import (
	gotime "time"
)

// Clock is the narrow interface through which a source of raw
// nanosecond instants is consumed. The arithmetic in this package never
// reads a clock itself; anything that needs "now" takes a Clock.
type Clock interface {
	Now() Time
	Type() ClockType
}

type systemClock struct{}

// NewSystemClock returns a Clock backed by the system wall clock
func NewSystemClock() Clock {
	return systemClock{}
}

func (systemClock) Now() Time {
	return TimeFromNSec(gotime.Now().UnixNano(), ClockSystemTime)
}

func (systemClock) Type() ClockType {
	return ClockSystemTime
}

// steadyClock reports time elapsed since its construction, read from
// the runtime's monotonic reading so wall-clock jumps don't show up in
// it.
type steadyClock struct {
	origin gotime.Time
}

// NewSteadyClock returns a monotonic Clock with its origin at the call
func NewSteadyClock() Clock {
	return &steadyClock{origin: gotime.Now()}
}

func (c *steadyClock) Now() Time {
	return TimeFromNSec(int64(gotime.Since(c.origin)), ClockSteadyTime)
}

func (c *steadyClock) Type() ClockType {
	return ClockSteadyTime
}

// Now returns the current system wall-clock time point
func Now() Time {
	return systemClock{}.Now()
}
