package rostime

import (
	"math"

	"github.com/pkg/errors"
)

// ClockType tags a time point with the source that produced it. Time
// points from different sources are not comparable and every mixed
// operation fails with ErrClockMismatch.
type ClockType uint8

const (
	//ClockUninitialized marks a time point with no source attached
	ClockUninitialized ClockType = iota
	//ClockROSTime marks a time point from the ROS time source
	ClockROSTime
	//ClockSystemTime marks a time point from the system wall clock
	ClockSystemTime
	//ClockSteadyTime marks a time point from a monotonic source
	ClockSteadyTime
)

func (ct ClockType) String() string {
	switch ct {
	case ClockROSTime:
		return "ros"
	case ClockSystemTime:
		return "system"
	case ClockSteadyTime:
		return "steady"
	default:
		return "uninitialized"
	}
}

// Time is an absolute time point held as an int64 nanosecond count from
// its clock's origin. A negative value is a legal arithmetic result but
// not a legal arithmetic input: the wire encoding for absolute time is
// unsigned only, so chaining arithmetic from a negative time point is
// refused at the operation entry rather than at the final encode.
type Time struct {
	ns        int64
	clockType ClockType
}

// NewTime builds a Time from a whole-second and sub-second pair. A
// negative second count fails with ErrNegativeTime.
func NewTime(sec int32, nsec uint32, clockType ClockType) (Time, error) {
	if sec < 0 {
		return Time{}, errors.Wrap(ErrNegativeTime, "new time")
	}
	return Time{ns: composeNSec(sec, nsec), clockType: clockType}, nil
}

// TimeFromNSec builds a Time from a raw nanosecond count, negative values included
func TimeFromNSec(ns int64, clockType ClockType) Time {
	return Time{ns: ns, clockType: clockType}
}

// TimeFromMsg reconstructs a Time from its message encoding. A negative
// message fails with ErrNegativeTime.
func TimeFromMsg(msg TimeMsg, clockType ClockType) (Time, error) {
	if msg.Sec < 0 {
		return Time{}, errors.Wrap(ErrNegativeTime, "time from message")
	}
	return Time{ns: composeNSec(msg.Sec, msg.NSec), clockType: clockType}, nil
}

// TimeFromWire reconstructs a Time from the unsigned wire encoding,
// saturating to the maximum int64 nanosecond count the same way
// DurationFromWire does.
func TimeFromWire(w WireTime, clockType ClockType) Time {
	return Time{ns: DurationFromWire(w).ToNSec(), clockType: clockType}
}

// MaxTime returns the largest time point the message encoding can hold exactly
func MaxTime(clockType ClockType) Time {
	return Time{ns: composeNSec(math.MaxInt32, 999999999), clockType: clockType}
}

// ToNSec returns the raw nanosecond count
func (t Time) ToNSec() int64 {
	return t.ns
}

// ToSec returns the time point as floating seconds from the clock origin
func (t Time) ToSec() float64 {
	return float64(t.ns) / nsecPerSec
}

// ClockType returns the source tag of the time point
func (t Time) ClockType() ClockType {
	return t.clockType
}

// IsZero reports whether the time point sits on the clock origin
func (t Time) IsZero() bool {
	return t.ns == 0
}

// Add returns the time point offset forward by d. The receiver must be
// non-negative; the result may legally be negative.
func (t Time) Add(d Duration) (Time, error) {
	if t.ns < 0 {
		return Time{}, errors.Wrap(ErrNegativeTime, "time addition")
	}
	if addWillOverflow(t.ns, d.ns) {
		return Time{}, errors.Wrap(ErrOverflow, "time addition")
	}
	if addWillUnderflow(t.ns, d.ns) {
		return Time{}, errors.Wrap(ErrUnderflow, "time addition")
	}
	return Time{ns: t.ns + d.ns, clockType: t.clockType}, nil
}

// Sub returns the time point offset backward by d, under the same rules as Add
func (t Time) Sub(d Duration) (Time, error) {
	if t.ns < 0 {
		return Time{}, errors.Wrap(ErrNegativeTime, "time subtraction")
	}
	if subWillOverflow(t.ns, d.ns) {
		return Time{}, errors.Wrap(ErrOverflow, "time subtraction")
	}
	if subWillUnderflow(t.ns, d.ns) {
		return Time{}, errors.Wrap(ErrUnderflow, "time subtraction")
	}
	return Time{ns: t.ns - d.ns, clockType: t.clockType}, nil
}

// Diff returns the interval from other to t. Both time points must
// carry the same clock type and the receiver must be non-negative.
func (t Time) Diff(other Time) (Duration, error) {
	if t.clockType != other.clockType {
		return Duration{}, errors.Wrapf(ErrClockMismatch, "diff %v and %v", t.clockType, other.clockType)
	}
	if t.ns < 0 {
		return Duration{}, errors.Wrap(ErrNegativeTime, "time difference")
	}
	if subWillOverflow(t.ns, other.ns) {
		return Duration{}, errors.Wrap(ErrOverflow, "time difference")
	}
	if subWillUnderflow(t.ns, other.ns) {
		return Duration{}, errors.Wrap(ErrUnderflow, "time difference")
	}
	return Duration{ns: t.ns - other.ns}, nil
}

// Advance shifts the time point forward by d in place, under the same rules as Add
func (t *Time) Advance(d Duration) error {
	shifted, err := t.Add(d)
	if err != nil {
		return err
	}
	t.ns = shifted.ns
	return nil
}

// Rewind shifts the time point backward by d in place, under the same rules as Sub
func (t *Time) Rewind(d Duration) error {
	shifted, err := t.Sub(d)
	if err != nil {
		return err
	}
	t.ns = shifted.ns
	return nil
}

// Cmp orders two time points by nanosecond count. Time points from
// different clock types do not order and fail with ErrClockMismatch.
func (t Time) Cmp(other Time) (int, error) {
	if t.clockType != other.clockType {
		return 0, errors.Wrapf(ErrClockMismatch, "compare %v and %v", t.clockType, other.clockType)
	}
	return cmpInt64(t.ns, other.ns), nil
}

// ToMsg decomposes the time point into its message encoding, with the
// same floor decomposition and saturation rules as Duration.ToMsg. The
// message encoding is signed, so a negative time point encodes without
// error.
func (t Time) ToMsg() TimeMsg {
	sec, nsec := decomposeNSec(t.ns)
	return TimeMsg{Sec: sec, NSec: nsec}
}

// ToWire converts the time point to the unsigned wire encoding, failing
// with ErrNegativeNotRepresentable when it sits before the clock
// origin.
func (t Time) ToWire() (WireTime, error) {
	if t.ns < 0 {
		return WireTime{}, errors.Wrap(ErrNegativeNotRepresentable, "time to wire")
	}
	return WireTime{Sec: uint64(t.ns / nsecPerSec), NSec: uint64(t.ns % nsecPerSec)}, nil
}

func (t Time) String() string {
	return formatNSec(t.ns)
}
