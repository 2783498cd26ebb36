package chrono

import (
	"fmt"
	"strconv"
	"time"
)

// Layout is the reference layout for the textual clock form.
const Layout = "15:04:05.000000000"

// ComponentRangeError reports a clock component outside its valid range.
type ComponentRangeError struct {
	Name     string
	Min, Max int64
	Value    int64
}

func (e *ComponentRangeError) Error() string {
	return fmt.Sprintf("%s must be in the range %d..=%d, got %d", e.Name, e.Min, e.Max, e.Value)
}

// DateAdjustment signals whether clock arithmetic crossed a midnight
// boundary, requiring the enclosing calendar date to change.
type DateAdjustment int8

const (
	// DatePrevious means the date must be decremented.
	DatePrevious DateAdjustment = iota - 1
	// DateNone means the date is unchanged.
	DateNone
	// DateNext means the date must be incremented.
	DateNext
)

func (a DateAdjustment) String() string {
	switch a {
	case DatePrevious:
		return "previous"
	case DateNext:
		return "next"
	}
	return "none"
}

// Time is a wall-clock time of day, independent of any calendar date.
//
// All fields are always within range: hour in [0,24), minute and second
// in [0,60), nanosecond in [0,1e9). The zero value is midnight.
// Time is an immutable value type; arithmetic returns new instances.
type Time struct {
	hour       uint8
	minute     uint8
	second     uint8
	nanosecond uint32
}

// Midnight is the first instant of the day, 0:00:00.0.
var Midnight = Time{}

func ensureRange(name string, value, min, max int64) error {
	if value < min || value > max {
		return &ComponentRangeError{Name: name, Min: min, Max: max, Value: value}
	}
	return nil
}

// FromHMS builds a clock time from hour, minute and second,
// failing if any component is out of range.
func FromHMS(hour, minute, second int) (Time, error) {
	return FromHMSNano(hour, minute, second, 0)
}

// FromHMSMilli builds a clock time with millisecond precision,
// failing if any component is out of range.
func FromHMSMilli(hour, minute, second, millisecond int) (Time, error) {
	if err := ensureRange("millisecond", int64(millisecond), 0, 999); err != nil {
		return Time{}, err
	}
	return FromHMSNano(hour, minute, second, millisecond*nanosPerMilli)
}

// FromHMSMicro builds a clock time with microsecond precision,
// failing if any component is out of range.
func FromHMSMicro(hour, minute, second, microsecond int) (Time, error) {
	if err := ensureRange("microsecond", int64(microsecond), 0, 999_999); err != nil {
		return Time{}, err
	}
	return FromHMSNano(hour, minute, second, microsecond*nanosPerMicro)
}

// FromHMSNano builds a clock time with nanosecond precision,
// failing if any component is out of range.
func FromHMSNano(hour, minute, second, nanosecond int) (Time, error) {
	if err := ensureRange("hour", int64(hour), 0, 23); err != nil {
		return Time{}, err
	}
	if err := ensureRange("minute", int64(minute), 0, 59); err != nil {
		return Time{}, err
	}
	if err := ensureRange("second", int64(second), 0, 59); err != nil {
		return Time{}, err
	}
	if err := ensureRange("nanosecond", int64(nanosecond), 0, nanosPerSecond-1); err != nil {
		return Time{}, err
	}
	return Time{
		hour:       uint8(hour),
		minute:     uint8(minute),
		second:     uint8(second),
		nanosecond: uint32(nanosecond),
	}, nil
}

// Hour returns the clock hour, 0..23.
func (t Time) Hour() int { return int(t.hour) }

// Minute returns the minute within the hour, 0..59.
func (t Time) Minute() int { return int(t.minute) }

// Second returns the second within the minute, 0..59.
func (t Time) Second() int { return int(t.second) }

// Millisecond returns the milliseconds within the second, 0..999.
func (t Time) Millisecond() int { return int(t.nanosecond) / nanosPerMilli }

// Microsecond returns the microseconds within the second, 0..999999.
func (t Time) Microsecond() int { return int(t.nanosecond) / nanosPerMicro }

// Nanosecond returns the nanoseconds within the second, 0..999999999.
func (t Time) Nanosecond() int { return int(t.nanosecond) }

// HMS returns the hour, minute and second.
func (t Time) HMS() (hour, minute, second int) {
	return int(t.hour), int(t.minute), int(t.second)
}

// HMSNano returns the hour, minute, second and nanosecond.
func (t Time) HMSNano() (hour, minute, second, nanosecond int) {
	return int(t.hour), int(t.minute), int(t.second), int(t.nanosecond)
}

// cascade pushes an out-of-range low-order unit into the next unit up.
// Offsets are bounded by a single unit step, so one adjustment suffices.
func cascade(lower *int64, size int64, higher *int64) {
	if *lower >= size {
		*lower -= size
		*higher++
	} else if *lower < 0 {
		*lower += size
		*higher--
	}
}

// AdjustingAdd adds the sub-day portion of the span to the clock time,
// wrapping at midnight. The returned DateAdjustment reports whether the
// enclosing calendar date rolled forward, backward, or stayed put.
func (t Time) AdjustingAdd(d Duration) (DateAdjustment, Time) {
	nanosecond := int64(t.nanosecond) + int64(d.SubsecNanoseconds())
	second := int64(t.second) + d.WholeSeconds()%secondsPerMinute
	minute := int64(t.minute) + d.WholeMinutes()%minutesPerHour
	hour := int64(t.hour) + d.WholeHours()%hoursPerDay
	return t.normalize(hour, minute, second, nanosecond)
}

// AdjustingSub subtracts the sub-day portion of the span from the clock
// time, wrapping at midnight. The returned DateAdjustment reports whether
// the enclosing calendar date rolled forward, backward, or stayed put.
func (t Time) AdjustingSub(d Duration) (DateAdjustment, Time) {
	nanosecond := int64(t.nanosecond) - int64(d.SubsecNanoseconds())
	second := int64(t.second) - d.WholeSeconds()%secondsPerMinute
	minute := int64(t.minute) - d.WholeMinutes()%minutesPerHour
	hour := int64(t.hour) - d.WholeHours()%hoursPerDay
	return t.normalize(hour, minute, second, nanosecond)
}

// AdjustingAddStd is AdjustingAdd for a stdlib duration.
func (t Time) AdjustingAddStd(d time.Duration) (DateAdjustment, Time) {
	return t.AdjustingAdd(FromStd(d))
}

// AdjustingSubStd is AdjustingSub for a stdlib duration.
func (t Time) AdjustingSubStd(d time.Duration) (DateAdjustment, Time) {
	return t.AdjustingSub(FromStd(d))
}

func (Time) normalize(hour, minute, second, nanosecond int64) (DateAdjustment, Time) {
	adjustment := DateNone
	cascade(&nanosecond, nanosPerSecond, &second)
	cascade(&second, secondsPerMinute, &minute)
	cascade(&minute, minutesPerHour, &hour)
	if hour >= hoursPerDay {
		hour -= hoursPerDay
		adjustment = DateNext
	} else if hour < 0 {
		hour += hoursPerDay
		adjustment = DatePrevious
	}
	return adjustment, Time{
		hour:       uint8(hour),
		minute:     uint8(minute),
		second:     uint8(second),
		nanosecond: uint32(nanosecond),
	}
}

// Add returns the clock time moved forward by the span,
// discarding the date adjustment.
func (t Time) Add(d Duration) Time {
	_, next := t.AdjustingAdd(d)
	return next
}

// Sub returns the clock time moved backward by the span,
// discarding the date adjustment.
func (t Time) Sub(d Duration) Time {
	_, next := t.AdjustingSub(d)
	return next
}

// Compare orders two clock times, returning -1, 0 or +1.
func (t Time) Compare(rhs Time) int {
	if c := cmpInt64(int64(t.hour), int64(rhs.hour)); c != 0 {
		return c
	}
	if c := cmpInt64(int64(t.minute), int64(rhs.minute)); c != 0 {
		return c
	}
	if c := cmpInt64(int64(t.second), int64(rhs.second)); c != 0 {
		return c
	}
	return cmpInt64(int64(t.nanosecond), int64(rhs.nanosecond))
}

// String renders the clock time, trimming the subsecond part to the
// coarsest precision that preserves the value.
func (t Time) String() string {
	s := fmt.Sprintf("%d:%02d:%02d", t.hour, t.minute, t.second)
	switch {
	case t.nanosecond == 0:
		return s
	case t.nanosecond%nanosPerMilli == 0:
		return s + fmt.Sprintf(".%03d", t.nanosecond/nanosPerMilli)
	case t.nanosecond%nanosPerMicro == 0:
		return s + fmt.Sprintf(".%06d", t.nanosecond/nanosPerMicro)
	}
	return s + fmt.Sprintf(".%09d", t.nanosecond)
}

// MarshalJSON implements json.Marshaler using the fixed Layout form.
func (t Time) MarshalJSON() ([]byte, error) {
	v := fmt.Sprintf("%02d:%02d:%02d.%09d", t.hour, t.minute, t.second, t.nanosecond)
	return []byte(strconv.Quote(v)), nil
}

// UnmarshalJSON implements json.Unmarshaler for the Layout form,
// also accepting a plain "15:04:05" without the subsecond part.
func (t *Time) UnmarshalJSON(input []byte) error {
	v, err := strconv.Unquote(string(input))
	if err != nil {
		return err
	}
	parsed, err := time.Parse(Layout, v)
	if err != nil {
		parsed, err = time.Parse("15:04:05", v)
		if err != nil {
			return err
		}
	}
	next, err := FromHMSNano(parsed.Hour(), parsed.Minute(), parsed.Second(), parsed.Nanosecond())
	if err != nil {
		return err
	}
	*t = next
	return nil
}
