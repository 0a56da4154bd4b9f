package rostime

import (
	"fmt"
	"math"
)

const nsecPerSec = 1000000000

// maxWireSec is the largest whole-second count whose nanosecond total
// still fits the signed 64-bit domain.
const maxWireSec = uint64(math.MaxInt64) / nsecPerSec

func addWillOverflow(lhs, rhs int64) bool {
	return rhs > 0 && lhs > math.MaxInt64-rhs
}

func addWillUnderflow(lhs, rhs int64) bool {
	return rhs < 0 && lhs < math.MinInt64-rhs
}

func subWillOverflow(lhs, rhs int64) bool {
	return rhs < 0 && lhs > math.MaxInt64+rhs
}

func subWillUnderflow(lhs, rhs int64) bool {
	return rhs > 0 && lhs < math.MinInt64+rhs
}

// decomposeNSec splits a nanosecond count into floor-style sec/nsec
// fields, so -0.5s becomes {-1, 500000000}. When the second count does
// not fit int32 the fields saturate: positive overflow clamps to
// {math.MaxInt32, math.MaxUint32}, which is deliberately not a valid
// decomposition (the nanosecond field exceeds 999999999), and negative
// overflow clamps to {math.MinInt32, 0}.
func decomposeNSec(ns int64) (int32, uint32) {
	sec := ns / nsecPerSec
	nsec := ns % nsecPerSec
	if nsec >= 0 {
		if sec > math.MaxInt32 {
			return math.MaxInt32, math.MaxUint32
		}
		// Exact whole-second multiples land here with either sign, so
		// the negative extreme needs guarding too.
		if sec < math.MinInt32 {
			return math.MinInt32, 0
		}
		return int32(sec), uint32(nsec)
	}
	if sec <= math.MinInt32 {
		return math.MinInt32, 0
	}
	return int32(sec - 1), uint32(nsecPerSec + nsec)
}

func composeNSec(sec int32, nsec uint32) int64 {
	return int64(sec)*nsecPerSec + int64(nsec)
}

func cmpInt64(lhs, rhs int64) int {
	var result int
	if lhs > rhs {
		result = 1
	} else if lhs < rhs {
		result = -1
	} else {
		result = 0
	}
	return result
}

// formatNSec renders a nanosecond count as "sec.nanosec" with the sign
// in front, keeping the magnitude exact even for math.MinInt64.
func formatNSec(ns int64) string {
	mag := uint64(ns)
	sign := ""
	if ns < 0 {
		mag = -mag
		sign = "-"
	}
	return fmt.Sprintf("%s%d.%09d", sign, mag/nsecPerSec, mag%nsecPerSec)
}
