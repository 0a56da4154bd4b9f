package rostime

import (
	modular "github.com/edwinhayes/logrus-modular"
)

// Rate keeps a loop running at a fixed frequency on top of the checked
// time arithmetic. All time points it holds come from a single Clock,
// so the clock-type guards never trip inside a correctly built Rate.
type Rate struct {
	actualCycleTime   Duration
	expectedCycleTime Duration
	start             Time
	clock             Clock
	logger            *modular.ModuleLogger
}

// NewRate builds a Rate at the given frequency in hertz, on the system clock
func NewRate(frequency float64) Rate {
	return NewRateWithClock(frequency, NewSystemClock())
}

// NewRateWithClock builds a Rate at the given frequency reading the given clock
func NewRateWithClock(frequency float64, clock Clock) Rate {
	return Rate{
		expectedCycleTime: DurationFromSec(1.0 / frequency),
		start:             clock.Now(),
		clock:             clock,
	}
}

// CycleTime builds a Rate with the given expected cycle time, on the system clock
func CycleTime(d Duration) Rate {
	clock := NewSystemClock()
	return Rate{expectedCycleTime: d, start: clock.Now(), clock: clock}
}

// SetLogger attaches a module logger for cycle overrun diagnostics
func (r *Rate) SetLogger(logger *modular.ModuleLogger) {
	r.logger = logger
}

// CycleTime returns the measured length of the last cycle
func (r *Rate) CycleTime() Duration {
	return r.actualCycleTime
}

// ExpectedCycleTime returns the configured cycle length
func (r *Rate) ExpectedCycleTime() Duration {
	return r.expectedCycleTime
}

// Reset restarts the current cycle at the clock's present reading
func (r *Rate) Reset() {
	r.actualCycleTime = ZeroDuration
	r.start = r.clock.Now()
}

// Sleep blocks until the expected cycle time has elapsed since the
// cycle started, then begins the next cycle. When the loop body already
// overran the cycle no sleeping happens and the overrun is logged at
// debug level.
func (r *Rate) Sleep() error {
	end := r.clock.Now()
	diff, err := end.Diff(r.start)
	if err != nil {
		return err
	}
	remaining := ZeroDuration
	if r.expectedCycleTime.Cmp(diff) >= 0 {
		remaining, err = r.expectedCycleTime.Sub(diff)
		if err != nil {
			return err
		}
	} else if r.logger != nil {
		logger := *r.logger
		logger.Debugf("cycle took %v, longer than the expected %v", diff, r.expectedCycleTime)
	}
	if err := remaining.Sleep(); err != nil {
		return err
	}
	now := r.clock.Now()
	r.actualCycleTime, err = now.Diff(r.start)
	if err != nil {
		return err
	}
	r.start, err = r.start.Add(r.expectedCycleTime)
	return err
}
