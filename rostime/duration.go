package rostime

import (
	"math"
	"time"

	"github.com/pkg/errors"
)

// Duration is a signed time interval held as an int64 nanosecond count
type Duration struct {
	ns int64
}

// ZeroDuration is the empty interval
var ZeroDuration = Duration{}

// NewDuration builds a Duration from a whole-second and sub-second pair
func NewDuration(sec int32, nsec uint32) Duration {
	return Duration{ns: composeNSec(sec, nsec)}
}

// DurationFromNSec builds a Duration from a raw nanosecond count
func DurationFromNSec(ns int64) Duration {
	return Duration{ns: ns}
}

// DurationFromSec builds a Duration from floating seconds, truncating below 1ns
func DurationFromSec(sec float64) Duration {
	return Duration{ns: int64(sec * nsecPerSec)}
}

// DurationFromTicks builds a Duration from a tick count at the given
// period, e.g. DurationFromTicks(250, time.Millisecond).
func DurationFromTicks(count int64, period time.Duration) Duration {
	return Duration{ns: count * int64(period)}
}

// DurationFromMsg reconstructs a Duration from its message encoding
func DurationFromMsg(msg DurationMsg) Duration {
	return Duration{ns: composeNSec(msg.Sec, msg.NSec)}
}

// DurationFromWire reconstructs a Duration from the unsigned wire
// encoding. The wire fields don't have to be normalized and can hold
// totals beyond the signed 64-bit domain; such totals saturate to the
// maximum representable duration instead of wrapping.
func DurationFromWire(w WireTime) Duration {
	if w.Sec > maxWireSec || w.NSec > uint64(math.MaxInt64) {
		return Duration{ns: math.MaxInt64}
	}
	total := w.Sec*nsecPerSec + w.NSec
	if total > uint64(math.MaxInt64) {
		return Duration{ns: math.MaxInt64}
	}
	return Duration{ns: int64(total)}
}

// MaxDuration returns the largest duration the message encoding can
// hold exactly. The message encoding, not the int64 width, is the
// contractual upper bound the rest of the stack relies on.
func MaxDuration() Duration {
	return NewDuration(math.MaxInt32, 999999999)
}

// ToNSec returns the raw nanosecond count
func (d Duration) ToNSec() int64 {
	return d.ns
}

// ToSec returns the duration as floating seconds
func (d Duration) ToSec() float64 {
	return float64(d.ns) / nsecPerSec
}

// Ticks returns the duration as a tick count at the given period,
// truncating toward zero. The period must be positive.
func (d Duration) Ticks(period time.Duration) int64 {
	return d.ns / int64(period)
}

// TicksFloat returns the duration as a floating tick count at the given period
func (d Duration) TicksFloat(period time.Duration) float64 {
	return float64(d.ns) / float64(period)
}

// IsZero reports whether the duration is zero
func (d Duration) IsZero() bool {
	return d.ns == 0
}

// Add returns the sum of two durations, checking the int64 boundary
func (d Duration) Add(other Duration) (Duration, error) {
	if addWillOverflow(d.ns, other.ns) {
		return Duration{}, errors.Wrap(ErrOverflow, "duration addition")
	}
	if addWillUnderflow(d.ns, other.ns) {
		return Duration{}, errors.Wrap(ErrUnderflow, "duration addition")
	}
	return Duration{ns: d.ns + other.ns}, nil
}

// Sub returns the difference of two durations, checking the int64 boundary
func (d Duration) Sub(other Duration) (Duration, error) {
	if subWillOverflow(d.ns, other.ns) {
		return Duration{}, errors.Wrap(ErrOverflow, "duration subtraction")
	}
	if subWillUnderflow(d.ns, other.ns) {
		return Duration{}, errors.Wrap(ErrUnderflow, "duration subtraction")
	}
	return Duration{ns: d.ns - other.ns}, nil
}

// Scale multiplies the duration by a floating factor, rounding to the
// nearest nanosecond. A NaN or infinite factor fails with
// ErrInvalidScale before anything else is looked at. A product past the
// int64 boundary fails with ErrOverflow when the factor's sign matches
// the duration's, ErrUnderflow when it opposes it.
func (d Duration) Scale(factor float64) (Duration, error) {
	if math.IsNaN(factor) || math.IsInf(factor, 0) {
		return Duration{}, errors.Wrapf(ErrInvalidScale, "scale by %v", factor)
	}
	scaled := math.Round(float64(d.ns) * factor)
	if scaled >= float64(1<<63) {
		return Duration{}, errors.Wrap(ErrOverflow, "duration scaling")
	}
	if scaled < -float64(1<<63) {
		return Duration{}, errors.Wrap(ErrUnderflow, "duration scaling")
	}
	return Duration{ns: int64(scaled)}, nil
}

// Cmp orders two durations by nanosecond count
func (d Duration) Cmp(other Duration) int {
	return cmpInt64(d.ns, other.ns)
}

// ToMsg decomposes the duration into its message encoding, saturating
// to the message extremes when the second count does not fit int32. See
// decomposeNSec for the exact clamp values.
func (d Duration) ToMsg() DurationMsg {
	sec, nsec := decomposeNSec(d.ns)
	return DurationMsg{Sec: sec, NSec: nsec}
}

// ToWire converts the duration to the unsigned wire encoding. Negative
// durations have no wire representation and fail with
// ErrNegativeNotRepresentable.
func (d Duration) ToWire() (WireTime, error) {
	if d.ns < 0 {
		return WireTime{}, errors.Wrap(ErrNegativeNotRepresentable, "duration to wire")
	}
	return WireTime{Sec: uint64(d.ns / nsecPerSec), NSec: uint64(d.ns % nsecPerSec)}, nil
}

// Sleep pauses the calling goroutine for the duration
func (d Duration) Sleep() error {
	if !d.IsZero() {
		time.Sleep(time.Duration(d.ns) * time.Nanosecond)
	}
	return nil
}

func (d Duration) String() string {
	return formatNSec(d.ns)
}
