package rostime

import (
	"bytes"
	"encoding/binary"

	"github.com/pkg/errors"
)

// TimeMsg is the structured message encoding of an absolute time point:
// signed whole seconds and an unsigned sub-second nanosecond field in
// [0, 999999999]. The nanosecond field only leaves that range in the
// saturated encode of an out-of-range value (decomposeNSec).
type TimeMsg struct {
	Sec  int32  `json:"sec"`
	NSec uint32 `json:"nsec"`
}

// DurationMsg is the structured message encoding of a signed interval, same layout as TimeMsg
type DurationMsg struct {
	Sec  int32  `json:"sec"`
	NSec uint32 `json:"nsec"`
}

// WireTime is the native wire encoding used by the underlying time
// primitive: unsigned only, so it cannot hold a negative value. On
// output the nanosecond field is normalized below 1e9; on input it need
// not be.
type WireTime struct {
	Sec  uint64 `json:"sec"`
	NSec uint64 `json:"nsec"`
}

// Add offsets a message time forward by d without leaving the message
// encoding. A negative message fails with ErrNegativeTime before any
// overflow check.
func (m TimeMsg) Add(d Duration) (TimeMsg, error) {
	if m.Sec < 0 {
		return TimeMsg{}, errors.Wrap(ErrNegativeTime, "message time addition")
	}
	ns := composeNSec(m.Sec, m.NSec)
	if addWillOverflow(ns, d.ns) {
		return TimeMsg{}, errors.Wrap(ErrOverflow, "message time addition")
	}
	if addWillUnderflow(ns, d.ns) {
		return TimeMsg{}, errors.Wrap(ErrUnderflow, "message time addition")
	}
	sec, nsec := decomposeNSec(ns + d.ns)
	return TimeMsg{Sec: sec, NSec: nsec}, nil
}

// Sub offsets a message time backward by d, under the same rules as Add
func (m TimeMsg) Sub(d Duration) (TimeMsg, error) {
	if m.Sec < 0 {
		return TimeMsg{}, errors.Wrap(ErrNegativeTime, "message time subtraction")
	}
	ns := composeNSec(m.Sec, m.NSec)
	if subWillOverflow(ns, d.ns) {
		return TimeMsg{}, errors.Wrap(ErrOverflow, "message time subtraction")
	}
	if subWillUnderflow(ns, d.ns) {
		return TimeMsg{}, errors.Wrap(ErrUnderflow, "message time subtraction")
	}
	sec, nsec := decomposeNSec(ns - d.ns)
	return TimeMsg{Sec: sec, NSec: nsec}, nil
}

// The message records cross process boundaries as two little-endian
// fields, seconds first, matching the ROS on-wire layout.

// Serialize writes the record as little-endian sec then nsec
func (m TimeMsg) Serialize(buf *bytes.Buffer) error {
	if err := binary.Write(buf, binary.LittleEndian, m.Sec); err != nil {
		return errors.Wrap(err, "error serializing sec field")
	}
	if err := binary.Write(buf, binary.LittleEndian, m.NSec); err != nil {
		return errors.Wrap(err, "error serializing nsec field")
	}
	return nil
}

// Deserialize reads the record written by Serialize
func (m *TimeMsg) Deserialize(buf *bytes.Reader) error {
	if err := binary.Read(buf, binary.LittleEndian, &m.Sec); err != nil {
		return errors.Wrap(err, "error deserializing sec field")
	}
	if err := binary.Read(buf, binary.LittleEndian, &m.NSec); err != nil {
		return errors.Wrap(err, "error deserializing nsec field")
	}
	return nil
}

// Serialize writes the record as little-endian sec then nsec
func (m DurationMsg) Serialize(buf *bytes.Buffer) error {
	if err := binary.Write(buf, binary.LittleEndian, m.Sec); err != nil {
		return errors.Wrap(err, "error serializing sec field")
	}
	if err := binary.Write(buf, binary.LittleEndian, m.NSec); err != nil {
		return errors.Wrap(err, "error serializing nsec field")
	}
	return nil
}

// Deserialize reads the record written by Serialize
func (m *DurationMsg) Deserialize(buf *bytes.Reader) error {
	if err := binary.Read(buf, binary.LittleEndian, &m.Sec); err != nil {
		return errors.Wrap(err, "error deserializing sec field")
	}
	if err := binary.Read(buf, binary.LittleEndian, &m.NSec); err != nil {
		return errors.Wrap(err, "error deserializing nsec field")
	}
	return nil
}

// Serialize writes the record as little-endian sec then nsec
func (w WireTime) Serialize(buf *bytes.Buffer) error {
	if err := binary.Write(buf, binary.LittleEndian, w.Sec); err != nil {
		return errors.Wrap(err, "error serializing sec field")
	}
	if err := binary.Write(buf, binary.LittleEndian, w.NSec); err != nil {
		return errors.Wrap(err, "error serializing nsec field")
	}
	return nil
}

// Deserialize reads the record written by Serialize
func (w *WireTime) Deserialize(buf *bytes.Reader) error {
	if err := binary.Read(buf, binary.LittleEndian, &w.Sec); err != nil {
		return errors.Wrap(err, "error deserializing sec field")
	}
	if err := binary.Read(buf, binary.LittleEndian, &w.NSec); err != nil {
		return errors.Wrap(err, "error deserializing nsec field")
	}
	return nil
}
