package chrono

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewDuration(t *testing.T) {
	tests := []struct {
		name        string
		seconds     int64
		nanoseconds int64
		want        Duration
	}{
		{"plain", 1, 0, Duration{1, 0}},
		{"carry up", 1, 2_000_000_000, Duration{3, 0}},
		{"carry down", -1, -2_000_000_000, Duration{-3, 0}},
		{"borrow positive", 1, -1, Duration{0, 999_999_999}},
		{"borrow negative", -1, 1, Duration{0, -999_999_999}},
		{"mixed large", 2, -500_000_000, Duration{1, 500_000_000}},
		{"saturate max", math.MaxInt64, nanosPerSecond, DurationMax},
		{"saturate min", math.MinInt64, -nanosPerSecond, DurationMin},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewDuration(tt.seconds, tt.nanoseconds)
			if got != tt.want {
				t.Errorf("NewDuration(%d, %d) = %v, want %v",
					tt.seconds, tt.nanoseconds, got, tt.want)
			}
		})
	}
}

func TestDurationConstructors(t *testing.T) {
	assert.Equal(t, Duration{secondsPerWeek, 0}, Weeks(1))
	assert.Equal(t, Duration{secondsPerDay, 0}, Days(1))
	assert.Equal(t, Duration{secondsPerHour, 0}, Hours(1))
	assert.Equal(t, Duration{secondsPerMinute, 0}, Minutes(1))
	assert.Equal(t, Duration{1, 500_000_000}, Milliseconds(1500))
	assert.Equal(t, Duration{-1, -500_000_000}, Milliseconds(-1500))
	assert.Equal(t, Duration{0, 1_000}, Microseconds(1))
	assert.Equal(t, Duration{1, 1}, Nanoseconds(1_000_000_001))
	assert.Equal(t, DurationMax, Weeks(math.MaxInt64))
	assert.Equal(t, DurationMin, Days(math.MinInt64))
}

func TestDurationSignInvariant(t *testing.T) {
	// seconds and nanoseconds must never carry strictly opposite signs
	check := func(d Duration) {
		t.Helper()
		if d.seconds > 0 && d.nanoseconds < 0 || d.seconds < 0 && d.nanoseconds > 0 {
			t.Errorf("sign invariant violated: %+v", d)
		}
	}
	values := []Duration{
		NewDuration(5, -1),
		NewDuration(-5, 1),
		Seconds(2).SaturatingSub(Milliseconds(2500)),
		Seconds(-2).SaturatingAdd(Milliseconds(2500)),
		Milliseconds(-1500).SaturatingMul(-3),
	}
	if d, ok := Seconds(1).CheckedSub(Nanoseconds(1)); ok {
		values = append(values, d)
	}
	if d, ok := Seconds(-1).CheckedAdd(Nanoseconds(1)); ok {
		values = append(values, d)
	}
	if d, ok := Milliseconds(2500).CheckedDiv(-2); ok {
		values = append(values, d)
	}
	for _, d := range values {
		check(d)
	}
}

func TestDurationCheckedAdd(t *testing.T) {
	tests := []struct {
		name   string
		d, rhs Duration
		want   Duration
		wantOK bool
	}{
		{"simple", Seconds(5), Seconds(5), Seconds(10), true},
		{"nanos carry", Milliseconds(500), Milliseconds(600), Milliseconds(1100), true},
		{"cancel", Seconds(-5), Seconds(5), DurationZero, true},
		{"overflow", DurationMax, Nanoseconds(1), Duration{}, false},
		{"underflow", DurationMin, Nanoseconds(-1), Duration{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.d.CheckedAdd(tt.rhs)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("CheckedAdd() = (%v, %v), want (%v, %v)", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestDurationCheckedSub(t *testing.T) {
	tests := []struct {
		name   string
		d, rhs Duration
		want   Duration
		wantOK bool
	}{
		{"simple", Seconds(5), Seconds(5), DurationZero, true},
		{"negative result", Seconds(5), Seconds(10), Seconds(-5), true},
		{"nanos borrow", Seconds(1), Nanoseconds(1), Nanoseconds(999_999_999), true},
		{"underflow", DurationMin, Nanoseconds(1), Duration{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.d.CheckedSub(tt.rhs)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("CheckedSub() = (%v, %v), want (%v, %v)", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestDurationCheckedMulDiv(t *testing.T) {
	if got, ok := Seconds(5).CheckedMul(2); !ok || got != Seconds(10) {
		t.Errorf("CheckedMul(2) = (%v, %v)", got, ok)
	}
	if got, ok := Seconds(5).CheckedMul(-2); !ok || got != Seconds(-10) {
		t.Errorf("CheckedMul(-2) = (%v, %v)", got, ok)
	}
	if got, ok := Milliseconds(1500).CheckedMul(2); !ok || got != Seconds(3) {
		t.Errorf("CheckedMul nanos widening = (%v, %v)", got, ok)
	}
	if _, ok := DurationMax.CheckedMul(2); ok {
		t.Error("CheckedMul overflow not detected")
	}
	if _, ok := DurationMin.CheckedMul(2); ok {
		t.Error("CheckedMul underflow not detected")
	}
	if got, ok := Seconds(10).CheckedDiv(2); !ok || got != Seconds(5) {
		t.Errorf("CheckedDiv(2) = (%v, %v)", got, ok)
	}
	if got, ok := Seconds(10).CheckedDiv(-2); !ok || got != Seconds(-5) {
		t.Errorf("CheckedDiv(-2) = (%v, %v)", got, ok)
	}
	if got, ok := Seconds(1).CheckedDiv(2); !ok || got != Milliseconds(500) {
		t.Errorf("CheckedDiv remainder = (%v, %v)", got, ok)
	}
	if _, ok := Seconds(1).CheckedDiv(0); ok {
		t.Error("CheckedDiv by zero not detected")
	}
}

func TestDurationSaturating(t *testing.T) {
	assert.Equal(t, Seconds(10), Seconds(5).SaturatingAdd(Seconds(5)))
	assert.Equal(t, DurationMax, Seconds(math.MaxInt64).SaturatingAdd(Seconds(1)))
	assert.Equal(t, DurationMax, DurationMax.SaturatingAdd(Nanoseconds(1)))
	assert.Equal(t, DurationMin, DurationMin.SaturatingAdd(Nanoseconds(-1)))
	assert.Equal(t, DurationZero, Seconds(-5).SaturatingAdd(Seconds(5)))

	assert.Equal(t, DurationZero, Seconds(5).SaturatingSub(Seconds(5)))
	assert.Equal(t, DurationMin, DurationMin.SaturatingSub(Nanoseconds(1)))
	assert.Equal(t, DurationMax, DurationMax.SaturatingSub(Nanoseconds(-1)))
	assert.Equal(t, Seconds(-5), Seconds(5).SaturatingSub(Seconds(10)))

	assert.Equal(t, Seconds(10), Seconds(5).SaturatingMul(2))
	assert.Equal(t, Seconds(-10), Seconds(5).SaturatingMul(-2))
	assert.Equal(t, DurationZero, Seconds(5).SaturatingMul(0))
	assert.Equal(t, DurationMax, DurationMax.SaturatingMul(2))
	assert.Equal(t, DurationMin, DurationMin.SaturatingMul(2))
	assert.Equal(t, DurationMin, DurationMax.SaturatingMul(-2))
	assert.Equal(t, DurationMax, DurationMin.SaturatingMul(-2))
}

func TestDurationStd(t *testing.T) {
	std, err := Milliseconds(1500).Std()
	assert.NoError(t, err)
	assert.Equal(t, 1500*time.Millisecond, std)

	std, err = Seconds(-1).Std()
	assert.NoError(t, err)
	assert.Equal(t, -time.Second, std)

	_, err = Seconds(math.MaxInt64).Std()
	assert.ErrorIs(t, err, ErrDurationRange)

	_, err = Seconds(math.MinInt64).Std()
	assert.ErrorIs(t, err, ErrDurationRange)

	assert.Equal(t, Duration{1, 500_000_000}, FromStd(1500*time.Millisecond))
	assert.Equal(t, Duration{-1, -500_000_000}, FromStd(-1500*time.Millisecond))

	assert.Equal(t, time.Second, Seconds(-1).UnsignedAbs())
	assert.Equal(t, time.Duration(math.MaxInt64), Seconds(math.MinInt64).UnsignedAbs())
}

func TestDurationAccessors(t *testing.T) {
	d := NewDuration(8*secondsPerDay+secondsPerHour+2*secondsPerMinute+3, 456_000_789)
	assert.Equal(t, int64(1), d.WholeWeeks())
	assert.Equal(t, int64(8), d.WholeDays())
	assert.Equal(t, int64(8*24+1), d.WholeHours())
	assert.Equal(t, int32(456), d.SubsecMilliseconds())
	assert.Equal(t, int32(456_000), d.SubsecMicroseconds())
	assert.Equal(t, int32(456_000_789), d.SubsecNanoseconds())
	assert.True(t, d.IsPositive())
	assert.True(t, d.Neg().IsNegative())
	assert.Equal(t, d, d.Neg().Abs())
	assert.True(t, DurationZero.IsZero())
	assert.Equal(t, DurationMax, DurationMin.Abs())
}

func TestDurationWholeSubunits(t *testing.T) {
	d := NewDuration(2, 456_000_789)
	assert.Equal(t, int64(2_456), d.WholeMilliseconds())
	assert.Equal(t, int64(2_456_000), d.WholeMicroseconds())
	assert.Equal(t, int64(2_456_000_789), d.WholeNanoseconds())

	n := d.Neg()
	assert.Equal(t, int64(-2_456), n.WholeMilliseconds())
	assert.Equal(t, int64(-2_456_000_789), n.WholeNanoseconds())

	/* counts beyond int64 saturate */
	assert.Equal(t, int64(math.MaxInt64), DurationMax.WholeNanoseconds())
	assert.Equal(t, int64(math.MinInt64), DurationMin.WholeMilliseconds())
}

func TestDurationCompare(t *testing.T) {
	assert.Equal(t, -1, Seconds(1).Compare(Seconds(2)))
	assert.Equal(t, 1, Seconds(2).Compare(Seconds(1)))
	assert.Equal(t, 0, Seconds(1).Compare(Seconds(1)))
	assert.Equal(t, -1, Nanoseconds(-1).Compare(DurationZero))
	assert.True(t, Milliseconds(999).Less(Seconds(1)))
}

func TestDurationString(t *testing.T) {
	tests := []struct {
		name string
		d    Duration
		want string
	}{
		{"zero", DurationZero, "0s"},
		{"seconds", Seconds(5), "5s"},
		{"negative", Seconds(-5), "-5s"},
		{"composite", NewDuration(2*secondsPerDay+13*secondsPerHour+5*secondsPerMinute+1, 500_000_000), "2d13h5m1.5s"},
		{"subsecond only", Nanoseconds(-1), "-0.000000001s"},
		{"whole minutes", Minutes(90), "1h30m"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.d.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}
