// Package chrono provides wall-clock and duration value types with
// carry/cascade arithmetic: a Time of day that wraps at midnight while
// reporting the date rollover, and a signed nanosecond-precision
// Duration with checked and saturating algebra.
package chrono

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"time"
)

const (
	nanosPerMicro  = 1_000
	nanosPerMilli  = 1_000_000
	nanosPerSecond = 1_000_000_000

	secondsPerMinute = 60
	secondsPerHour   = 60 * secondsPerMinute
	secondsPerDay    = 24 * secondsPerHour
	secondsPerWeek   = 7 * secondsPerDay

	minutesPerHour = 60
	hoursPerDay    = 24
)

// ErrDurationRange is returned on conversions that cannot represent the value.
var ErrDurationRange = errors.New("duration out of range")

// Duration is a signed span of time with nanosecond precision.
//
// The span is stored as whole seconds plus a subsecond nanosecond part.
// Both parts always agree in sign: the pair represents a single signed
// magnitude, never a mixed-sign combination. The zero value is a zero span.
type Duration struct {
	seconds     int64
	nanoseconds int32
}

var (
	// DurationZero is the zero span.
	DurationZero = Duration{}
	// DurationMin is the most negative representable span.
	DurationMin = Duration{seconds: math.MinInt64, nanoseconds: -(nanosPerSecond - 1)}
	// DurationMax is the largest representable span.
	DurationMax = Duration{seconds: math.MaxInt64, nanoseconds: nanosPerSecond - 1}
)

// NewDuration builds a span from seconds and nanoseconds,
// carrying whole seconds out of the nanosecond part and
// reconciling the signs of the two parts.
// The seconds field saturates instead of wrapping.
func NewDuration(seconds int64, nanoseconds int64) Duration {
	carried, ok := addInt64(seconds, nanoseconds/nanosPerSecond)
	if !ok {
		if seconds > 0 {
			return DurationMax
		}
		return DurationMin
	}
	seconds = carried
	nanoseconds %= nanosPerSecond
	if seconds > 0 && nanoseconds < 0 {
		seconds--
		nanoseconds += nanosPerSecond
	} else if seconds < 0 && nanoseconds > 0 {
		seconds++
		nanoseconds -= nanosPerSecond
	}
	return Duration{seconds: seconds, nanoseconds: int32(nanoseconds)}
}

// Weeks returns a span of the given number of weeks, saturating on overflow.
func Weeks(weeks int64) Duration { return scaledSeconds(weeks, secondsPerWeek) }

// Days returns a span of the given number of days, saturating on overflow.
func Days(days int64) Duration { return scaledSeconds(days, secondsPerDay) }

// Hours returns a span of the given number of hours, saturating on overflow.
func Hours(hours int64) Duration { return scaledSeconds(hours, secondsPerHour) }

// Minutes returns a span of the given number of minutes, saturating on overflow.
func Minutes(minutes int64) Duration { return scaledSeconds(minutes, secondsPerMinute) }

// Seconds returns a span of the given number of seconds.
func Seconds(seconds int64) Duration { return Duration{seconds: seconds} }

// Milliseconds returns a span of the given number of milliseconds.
func Milliseconds(milliseconds int64) Duration {
	return Duration{
		seconds:     milliseconds / 1_000,
		nanoseconds: int32(milliseconds % 1_000 * nanosPerMilli),
	}
}

// Microseconds returns a span of the given number of microseconds.
func Microseconds(microseconds int64) Duration {
	return Duration{
		seconds:     microseconds / 1_000_000,
		nanoseconds: int32(microseconds % 1_000_000 * nanosPerMicro),
	}
}

// Nanoseconds returns a span of the given number of nanoseconds.
func Nanoseconds(nanoseconds int64) Duration {
	return Duration{
		seconds:     nanoseconds / nanosPerSecond,
		nanoseconds: int32(nanoseconds % nanosPerSecond),
	}
}

func scaledSeconds(n, unit int64) Duration {
	seconds, ok := mulInt64(n, unit)
	if !ok {
		if n > 0 {
			return DurationMax
		}
		return DurationMin
	}
	return Duration{seconds: seconds}
}

// FromStd converts a stdlib duration. The conversion is exact.
func FromStd(d time.Duration) Duration { return Nanoseconds(int64(d)) }

// Std converts to a stdlib duration. Fails with ErrDurationRange if the
// total nanosecond count does not fit the stdlib representation.
func (d Duration) Std() (time.Duration, error) {
	nanos, ok := mulInt64(d.seconds, nanosPerSecond)
	if !ok {
		return 0, ErrDurationRange
	}
	total, ok := addInt64(nanos, int64(d.nanoseconds))
	if !ok {
		return 0, ErrDurationRange
	}
	return time.Duration(total), nil
}

// UnsignedAbs returns the magnitude as a stdlib duration,
// saturating at the maximum representable value.
func (d Duration) UnsignedAbs() time.Duration {
	a := d.Abs()
	std, err := a.Std()
	if err != nil {
		return time.Duration(math.MaxInt64)
	}
	if std < 0 {
		return time.Duration(math.MaxInt64)
	}
	return std
}

// IsZero reports whether the span is zero.
func (d Duration) IsZero() bool { return d.seconds == 0 && d.nanoseconds == 0 }

// IsNegative reports whether the span is negative.
func (d Duration) IsNegative() bool { return d.seconds < 0 || d.nanoseconds < 0 }

// IsPositive reports whether the span is positive.
func (d Duration) IsPositive() bool { return d.seconds > 0 || d.nanoseconds > 0 }

// WholeWeeks returns the span truncated to whole weeks.
func (d Duration) WholeWeeks() int64 { return d.seconds / secondsPerWeek }

// WholeDays returns the span truncated to whole days.
func (d Duration) WholeDays() int64 { return d.seconds / secondsPerDay }

// WholeHours returns the span truncated to whole hours.
func (d Duration) WholeHours() int64 { return d.seconds / secondsPerHour }

// WholeMinutes returns the span truncated to whole minutes.
func (d Duration) WholeMinutes() int64 { return d.seconds / secondsPerMinute }

// WholeSeconds returns the span truncated to whole seconds.
func (d Duration) WholeSeconds() int64 { return d.seconds }

// WholeMilliseconds returns the total number of whole milliseconds,
// saturating when the count does not fit int64.
func (d Duration) WholeMilliseconds() int64 {
	return d.wholeSubunits(1_000, d.nanoseconds/nanosPerMilli)
}

// WholeMicroseconds returns the total number of whole microseconds,
// saturating when the count does not fit int64.
func (d Duration) WholeMicroseconds() int64 {
	return d.wholeSubunits(1_000_000, d.nanoseconds/nanosPerMicro)
}

// WholeNanoseconds returns the total number of nanoseconds,
// saturating when the count does not fit int64.
func (d Duration) WholeNanoseconds() int64 {
	return d.wholeSubunits(nanosPerSecond, d.nanoseconds)
}

func (d Duration) wholeSubunits(perSecond int64, subsec int32) int64 {
	scaled, ok := mulInt64(d.seconds, perSecond)
	if !ok {
		if d.seconds > 0 {
			return math.MaxInt64
		}
		return math.MinInt64
	}
	total, ok := addInt64(scaled, int64(subsec))
	if !ok {
		if d.seconds > 0 {
			return math.MaxInt64
		}
		return math.MinInt64
	}
	return total
}

// SubsecMilliseconds returns the subsecond part truncated to milliseconds.
// Negative for negative spans.
func (d Duration) SubsecMilliseconds() int32 { return d.nanoseconds / nanosPerMilli }

// SubsecMicroseconds returns the subsecond part truncated to microseconds.
// Negative for negative spans.
func (d Duration) SubsecMicroseconds() int32 { return d.nanoseconds / nanosPerMicro }

// SubsecNanoseconds returns the subsecond part in nanoseconds.
// Negative for negative spans.
func (d Duration) SubsecNanoseconds() int32 { return d.nanoseconds }

// Abs returns the absolute span, saturating at DurationMax.
func (d Duration) Abs() Duration {
	if d.seconds == math.MinInt64 {
		return DurationMax
	}
	if d.IsNegative() {
		return Duration{seconds: -d.seconds, nanoseconds: -d.nanoseconds}
	}
	return d
}

// Neg returns the negated span, saturating at DurationMax.
func (d Duration) Neg() Duration {
	if d.seconds == math.MinInt64 {
		return DurationMax
	}
	return Duration{seconds: -d.seconds, nanoseconds: -d.nanoseconds}
}

// CheckedAdd computes d + rhs, reporting false if the seconds overflow.
func (d Duration) CheckedAdd(rhs Duration) (Duration, bool) {
	seconds, ok := addInt64(d.seconds, rhs.seconds)
	if !ok {
		return Duration{}, false
	}
	nanoseconds := d.nanoseconds + rhs.nanoseconds
	if nanoseconds >= nanosPerSecond || seconds < 0 && nanoseconds > 0 {
		nanoseconds -= nanosPerSecond
		if seconds, ok = addInt64(seconds, 1); !ok {
			return Duration{}, false
		}
	} else if nanoseconds <= -nanosPerSecond || seconds > 0 && nanoseconds < 0 {
		nanoseconds += nanosPerSecond
		if seconds, ok = addInt64(seconds, -1); !ok {
			return Duration{}, false
		}
	}
	return Duration{seconds: seconds, nanoseconds: nanoseconds}, true
}

// CheckedSub computes d - rhs, reporting false if the seconds overflow.
func (d Duration) CheckedSub(rhs Duration) (Duration, bool) {
	seconds, ok := subInt64(d.seconds, rhs.seconds)
	if !ok {
		return Duration{}, false
	}
	nanoseconds := d.nanoseconds - rhs.nanoseconds
	if nanoseconds >= nanosPerSecond || seconds < 0 && nanoseconds > 0 {
		nanoseconds -= nanosPerSecond
		if seconds, ok = addInt64(seconds, 1); !ok {
			return Duration{}, false
		}
	} else if nanoseconds <= -nanosPerSecond || seconds > 0 && nanoseconds < 0 {
		nanoseconds += nanosPerSecond
		if seconds, ok = addInt64(seconds, -1); !ok {
			return Duration{}, false
		}
	}
	return Duration{seconds: seconds, nanoseconds: nanoseconds}, true
}

// CheckedMul computes d * rhs, reporting false on overflow.
// The nanosecond part is widened to 64 bits for the scale step.
func (d Duration) CheckedMul(rhs int32) (Duration, bool) {
	totalNanos := int64(d.nanoseconds) * int64(rhs)
	extraSecs := totalNanos / nanosPerSecond
	nanoseconds := int32(totalNanos % nanosPerSecond)
	seconds, ok := mulInt64(d.seconds, int64(rhs))
	if !ok {
		return Duration{}, false
	}
	if seconds, ok = addInt64(seconds, extraSecs); !ok {
		return Duration{}, false
	}
	return Duration{seconds: seconds, nanoseconds: nanoseconds}, true
}

// CheckedDiv computes d / rhs, reporting false if rhs is zero.
func (d Duration) CheckedDiv(rhs int32) (Duration, bool) {
	if rhs == 0 || rhs == -1 && d.seconds == math.MinInt64 {
		return Duration{}, false
	}
	seconds := d.seconds / int64(rhs)
	carry := d.seconds - seconds*int64(rhs)
	extraNanos := carry * nanosPerSecond / int64(rhs)
	nanoseconds := d.nanoseconds/rhs + int32(extraNanos)
	return Duration{seconds: seconds, nanoseconds: nanoseconds}, true
}

// SaturatingAdd computes d + rhs, clamping to DurationMin/DurationMax.
func (d Duration) SaturatingAdd(rhs Duration) Duration {
	seconds, ok := addInt64(d.seconds, rhs.seconds)
	if !ok {
		if d.seconds > 0 {
			return DurationMax
		}
		return DurationMin
	}
	nanoseconds := d.nanoseconds + rhs.nanoseconds
	if nanoseconds >= nanosPerSecond || seconds < 0 && nanoseconds > 0 {
		nanoseconds -= nanosPerSecond
		if seconds, ok = addInt64(seconds, 1); !ok {
			return DurationMax
		}
	} else if nanoseconds <= -nanosPerSecond || seconds > 0 && nanoseconds < 0 {
		nanoseconds += nanosPerSecond
		if seconds, ok = addInt64(seconds, -1); !ok {
			return DurationMin
		}
	}
	return Duration{seconds: seconds, nanoseconds: nanoseconds}
}

// SaturatingSub computes d - rhs, clamping to DurationMin/DurationMax.
func (d Duration) SaturatingSub(rhs Duration) Duration {
	seconds, ok := subInt64(d.seconds, rhs.seconds)
	if !ok {
		if d.seconds > 0 {
			return DurationMax
		}
		return DurationMin
	}
	nanoseconds := d.nanoseconds - rhs.nanoseconds
	if nanoseconds >= nanosPerSecond || seconds < 0 && nanoseconds > 0 {
		nanoseconds -= nanosPerSecond
		if seconds, ok = addInt64(seconds, 1); !ok {
			return DurationMax
		}
	} else if nanoseconds <= -nanosPerSecond || seconds > 0 && nanoseconds < 0 {
		nanoseconds += nanosPerSecond
		if seconds, ok = addInt64(seconds, -1); !ok {
			return DurationMin
		}
	}
	return Duration{seconds: seconds, nanoseconds: nanoseconds}
}

// SaturatingMul computes d * rhs, clamping to DurationMin/DurationMax.
func (d Duration) SaturatingMul(rhs int32) Duration {
	totalNanos := int64(d.nanoseconds) * int64(rhs)
	extraSecs := totalNanos / nanosPerSecond
	nanoseconds := int32(totalNanos % nanosPerSecond)
	seconds, ok := mulInt64(d.seconds, int64(rhs))
	if !ok {
		if d.seconds > 0 && rhs > 0 || d.seconds < 0 && rhs < 0 {
			return DurationMax
		}
		return DurationMin
	}
	if seconds, ok = addInt64(seconds, extraSecs); !ok {
		if d.seconds > 0 && rhs > 0 {
			return DurationMax
		}
		return DurationMin
	}
	return Duration{seconds: seconds, nanoseconds: nanoseconds}
}

// Compare orders two spans, returning -1, 0 or +1.
func (d Duration) Compare(rhs Duration) int {
	if c := cmpInt64(d.seconds, rhs.seconds); c != 0 {
		return c
	}
	return cmpInt64(int64(d.nanoseconds), int64(rhs.nanoseconds))
}

// Less reports whether d orders before rhs.
func (d Duration) Less(rhs Duration) bool { return d.Compare(rhs) < 0 }

// String renders the span as a signed unit decomposition,
// e.g. "2d13h5m1.5s". The zero span renders as "0s".
func (d Duration) String() string {
	if d.IsZero() {
		return "0s"
	}
	var b strings.Builder
	if d.IsNegative() {
		b.WriteByte('-')
	}
	seconds := absUint64(d.seconds)
	nanos := uint64(d.nanoseconds)
	if d.nanoseconds < 0 {
		nanos = uint64(-int64(d.nanoseconds))
	}
	if days := seconds / secondsPerDay; days > 0 {
		b.WriteString(strconv.FormatUint(days, 10))
		b.WriteByte('d')
	}
	if hours := seconds / secondsPerHour % hoursPerDay; hours > 0 {
		b.WriteString(strconv.FormatUint(hours, 10))
		b.WriteByte('h')
	}
	if minutes := seconds / secondsPerMinute % minutesPerHour; minutes > 0 {
		b.WriteString(strconv.FormatUint(minutes, 10))
		b.WriteByte('m')
	}
	if secs := seconds % secondsPerMinute; secs > 0 || nanos > 0 {
		b.WriteString(strconv.FormatUint(secs, 10))
		if nanos > 0 {
			frac := strconv.FormatUint(nanos, 10)
			frac = strings.Repeat("0", 9-len(frac)) + frac
			b.WriteByte('.')
			b.WriteString(strings.TrimRight(frac, "0"))
		}
		b.WriteByte('s')
	}
	return b.String()
}

func addInt64(a, b int64) (int64, bool) {
	sum := a + b
	if (a > 0 && b > 0 && sum < 0) || (a < 0 && b < 0 && sum >= 0) {
		return 0, false
	}
	return sum, true
}

func subInt64(a, b int64) (int64, bool) {
	diff := a - b
	if (a >= 0 && b < 0 && diff < 0) || (a < 0 && b > 0 && diff >= 0) {
		return 0, false
	}
	return diff, true
}

func mulInt64(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if a == math.MinInt64 && b == -1 || b == math.MinInt64 && a == -1 {
		return 0, false
	}
	prod := a * b
	if prod/b != a {
		return 0, false
	}
	return prod, true
}

func cmpInt64(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func absUint64(v int64) uint64 {
	if v >= 0 {
		return uint64(v)
	}
	return uint64(-(v + 1)) + 1
}
