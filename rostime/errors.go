package rostime

import (
	"github.com/pkg/errors"
)

// Every failure in this package is one of the sentinels below, wrapped
// with call-site context. Classify with errors.Cause or errors.Is; none
// of them is recovered from internally.
var (
	//ErrOverflow signals a result above the maximum int64 nanosecond count
	ErrOverflow = errors.New("time value overflows int64 nanoseconds")
	//ErrUnderflow signals a result below the minimum int64 nanosecond count
	ErrUnderflow = errors.New("time value underflows int64 nanoseconds")
	//ErrInvalidScale signals a scale factor that is NaN or infinite
	ErrInvalidScale = errors.New("scale factor is not finite")
	//ErrNegativeNotRepresentable signals a negative value offered to the unsigned wire encoding
	ErrNegativeNotRepresentable = errors.New("negative value cannot be represented on the wire")
	//ErrNegativeTime signals arithmetic on a time point that is already negative
	ErrNegativeTime = errors.New("time point is negative")
	//ErrClockMismatch signals an operation across time points with different clock types
	ErrClockMismatch = errors.New("time points have different clock types")
)
