package rostime

import (
	"math"
	"testing"

	"github.com/pkg/errors"
)

func TestNewTime(t *testing.T) {
	tp, err := NewTime(1, 500000000, ClockROSTime)
	if err != nil {
		t.Fatal(err)
	}
	if tp.ToNSec() != 1500000000 {
		t.Error(tp.ToNSec())
	}
	if tp.ClockType() != ClockROSTime {
		t.Error(tp.ClockType())
	}

	if _, err := NewTime(-1, 0, ClockROSTime); errors.Cause(err) != ErrNegativeTime {
		t.Error(err)
	}
}

// Follows one time point through an arithmetic chain: negative results
// are legal, but chaining further arithmetic from them is not.
func TestTimeArithmeticChain(t *testing.T) {
	tp := TimeFromNSec(100000000, ClockROSTime) // 0.1s

	tp, err := tp.Add(DurationFromNSec(1100000000)) // +1.1s
	if err != nil {
		t.Fatal(err)
	}
	if tp.ToNSec() != 1200000000 {
		t.Error(tp.ToNSec())
	}
	msg := tp.ToMsg()
	if msg.Sec != 1 || msg.NSec != 200000000 {
		t.Error(msg)
	}

	tp, err = tp.Add(DurationFromNSec(-1100000000)) // -1.1s, result negative but legal
	if err != nil {
		t.Fatal(err)
	}
	if tp.ToNSec() != -1000000000 {
		t.Error(tp.ToNSec())
	}

	// The now-negative time point refuses further arithmetic.
	if err := tp.Rewind(DurationFromNSec(-500000000)); errors.Cause(err) != ErrNegativeTime {
		t.Error(err)
	}
	if err := tp.Advance(DurationFromNSec(500000000)); errors.Cause(err) != ErrNegativeTime {
		t.Error(err)
	}
	if _, err := tp.Sub(DurationFromNSec(1)); errors.Cause(err) != ErrNegativeTime {
		t.Error(err)
	}
}

func TestTimeNegativityPrecedesOverflow(t *testing.T) {
	huge := DurationFromNSec(math.MaxInt64)

	small := TimeFromNSec(100, ClockROSTime)
	if _, err := small.Add(huge); errors.Cause(err) != ErrOverflow {
		t.Error(err)
	}

	// The same addition on a negative base reports the negativity, not
	// the overflow.
	negative := TimeFromNSec(-100, ClockROSTime)
	if _, err := negative.Add(huge); errors.Cause(err) != ErrNegativeTime {
		t.Error(err)
	}
}

func TestTimeAdvanceRewind(t *testing.T) {
	tp := TimeFromNSec(2000000000, ClockROSTime)

	if err := tp.Advance(DurationFromNSec(500000000)); err != nil {
		t.Fatal(err)
	}
	if tp.ToNSec() != 2500000000 {
		t.Error(tp.ToNSec())
	}

	if err := tp.Rewind(DurationFromNSec(3000000000)); err != nil {
		t.Fatal(err)
	}
	if tp.ToNSec() != -500000000 {
		t.Error(tp.ToNSec())
	}
	if tp.ClockType() != ClockROSTime {
		t.Error(tp.ClockType())
	}
}

func TestTimeDiff(t *testing.T) {
	a := TimeFromNSec(5000000000, ClockROSTime)
	b := TimeFromNSec(1500000000, ClockROSTime)

	d, err := a.Diff(b)
	if err != nil {
		t.Fatal(err)
	}
	if d.ToNSec() != 3500000000 {
		t.Error(d.ToNSec())
	}

	// The difference may be negative even though time points refuse
	// negative bases.
	d, err = b.Diff(a)
	if err != nil {
		t.Fatal(err)
	}
	if d.ToNSec() != -3500000000 {
		t.Error(d.ToNSec())
	}

	negative := TimeFromNSec(-1, ClockROSTime)
	if _, err := negative.Diff(b); errors.Cause(err) != ErrNegativeTime {
		t.Error(err)
	}
}

func TestTimeClockMismatch(t *testing.T) {
	ros := TimeFromNSec(1, ClockROSTime)
	sys := TimeFromNSec(1, ClockSystemTime)

	if _, err := ros.Diff(sys); errors.Cause(err) != ErrClockMismatch {
		t.Error(err)
	}
	if _, err := ros.Cmp(sys); errors.Cause(err) != ErrClockMismatch {
		t.Error(err)
	}

	order, err := ros.Cmp(TimeFromNSec(2, ClockROSTime))
	if err != nil {
		t.Fatal(err)
	}
	if order != -1 {
		t.Error(order)
	}
}

func TestTimeMsgCodec(t *testing.T) {
	tp, err := TimeFromMsg(TimeMsg{Sec: 2, NSec: 750000000}, ClockSystemTime)
	if err != nil {
		t.Fatal(err)
	}
	if tp.ToNSec() != 2750000000 {
		t.Error(tp.ToNSec())
	}

	if _, err := TimeFromMsg(TimeMsg{Sec: -1, NSec: 0}, ClockSystemTime); errors.Cause(err) != ErrNegativeTime {
		t.Error(err)
	}

	// Negative time points still encode, the message is signed.
	msg := TimeFromNSec(-500000000, ClockSystemTime).ToMsg()
	if msg.Sec != -1 || msg.NSec != 500000000 {
		t.Error(msg)
	}

	// Saturation matches the duration path.
	msg = TimeFromNSec(math.MaxInt64, ClockSystemTime).ToMsg()
	if msg.Sec != math.MaxInt32 || msg.NSec != math.MaxUint32 {
		t.Error(msg)
	}
}

func TestTimeWireCodec(t *testing.T) {
	w, err := TimeFromNSec(1500000000, ClockROSTime).ToWire()
	if err != nil {
		t.Fatal(err)
	}
	if w.Sec != 1 || w.NSec != 500000000 {
		t.Error(w)
	}

	if _, err := TimeFromNSec(-1, ClockROSTime).ToWire(); errors.Cause(err) != ErrNegativeNotRepresentable {
		t.Error(err)
	}

	tp := TimeFromWire(WireTime{Sec: math.MaxUint64, NSec: 0}, ClockROSTime)
	if tp.ToNSec() != math.MaxInt64 {
		t.Error(tp.ToNSec())
	}
	if tp.ClockType() != ClockROSTime {
		t.Error(tp.ClockType())
	}
}

func TestMaxTime(t *testing.T) {
	want, err := NewTime(math.MaxInt32, 999999999, ClockROSTime)
	if err != nil {
		t.Fatal(err)
	}
	order, err := MaxTime(ClockROSTime).Cmp(want)
	if err != nil {
		t.Fatal(err)
	}
	if order != 0 {
		t.Error(MaxTime(ClockROSTime).ToNSec())
	}
}
