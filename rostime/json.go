package rostime

import (
	"math"
	"strconv"

	"github.com/buger/jsonparser"
	"github.com/pkg/errors"
)

// JSON decoding goes through jsonparser one field at a time, the way
// dynamic message fields are consumed elsewhere in the stack. Encoding
// is plain struct-tag marshaling on the record types.

func jsonSecNSec(data []byte) (int64, int64, error) {
	sec, err := jsonparser.GetInt(data, "sec")
	if err != nil {
		return 0, 0, errors.Wrap(err, "error parsing sec field")
	}
	nsec, err := jsonparser.GetInt(data, "nsec")
	if err != nil {
		return 0, 0, errors.Wrap(err, "error parsing nsec field")
	}
	return sec, nsec, nil
}

// TimeMsgFromJSON decodes a {"sec":..,"nsec":..} document into a TimeMsg
func TimeMsgFromJSON(data []byte) (TimeMsg, error) {
	sec, nsec, err := jsonSecNSec(data)
	if err != nil {
		return TimeMsg{}, err
	}
	if sec < math.MinInt32 || sec > math.MaxInt32 {
		return TimeMsg{}, errors.Errorf("sec field %d does not fit int32", sec)
	}
	if nsec < 0 || nsec > 999999999 {
		return TimeMsg{}, errors.Errorf("nsec field %d outside [0, 999999999]", nsec)
	}
	return TimeMsg{Sec: int32(sec), NSec: uint32(nsec)}, nil
}

// DurationMsgFromJSON decodes a {"sec":..,"nsec":..} document into a DurationMsg
func DurationMsgFromJSON(data []byte) (DurationMsg, error) {
	sec, nsec, err := jsonSecNSec(data)
	if err != nil {
		return DurationMsg{}, err
	}
	if sec < math.MinInt32 || sec > math.MaxInt32 {
		return DurationMsg{}, errors.Errorf("sec field %d does not fit int32", sec)
	}
	if nsec < 0 || nsec > 999999999 {
		return DurationMsg{}, errors.Errorf("nsec field %d outside [0, 999999999]", nsec)
	}
	return DurationMsg{Sec: int32(sec), NSec: uint32(nsec)}, nil
}

// jsonUint reads a numeric field as a full-range uint64. GetInt tops
// out at int64, which only covers half the wire domain, so the raw
// number text is parsed instead.
func jsonUint(data []byte, key string) (uint64, error) {
	value, dataType, _, err := jsonparser.Get(data, key)
	if err != nil {
		return 0, errors.Wrapf(err, "error parsing %s field", key)
	}
	if dataType != jsonparser.Number {
		return 0, errors.Errorf("%s field is not a number", key)
	}
	if len(value) > 0 && value[0] == '-' {
		return 0, errors.Wrapf(ErrNegativeNotRepresentable, "%s field", key)
	}
	n, err := strconv.ParseUint(string(value), 10, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "error parsing %s field", key)
	}
	return n, nil
}

// WireTimeFromJSON decodes a {"sec":..,"nsec":..} document into a WireTime
func WireTimeFromJSON(data []byte) (WireTime, error) {
	sec, err := jsonUint(data, "sec")
	if err != nil {
		return WireTime{}, err
	}
	nsec, err := jsonUint(data, "nsec")
	if err != nil {
		return WireTime{}, err
	}
	return WireTime{Sec: sec, NSec: nsec}, nil
}
