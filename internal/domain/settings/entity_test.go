package settings

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anandamid/presensi-backend-go/internal/pkg/shift"
)

func TestEnabledShiftsRoundTrip(t *testing.T) {
	in := map[shift.DayType][]shift.Window{
		shift.DayWeekday: {shift.WeekdayShifts[0], shift.WeekdayShifts[2]},
		shift.DaySunday:  {},
	}

	raw, err := MarshalEnabledShifts(in)
	require.NoError(t, err)

	out := UnmarshalEnabledShifts(raw)
	require.Len(t, out[shift.DayWeekday], 2)
	assert.Equal(t, "08:00", out[shift.DayWeekday][0].Start.String())
	assert.Equal(t, "21:00", out[shift.DayWeekday][1].End.String())

	// The Sunday entry survives as present-but-empty, which is a hard
	// failure at resolution time, not a fallback.
	subset, ok := out[shift.DaySunday]
	require.True(t, ok)
	assert.Empty(t, subset)
}

func TestMarshalEnabledShifts_NilMap(t *testing.T) {
	raw, err := MarshalEnabledShifts(nil)
	require.NoError(t, err)
	assert.Equal(t, "{}", string(raw))
}

func TestUnmarshalEnabledShifts_CorruptPayloadDegradesToEmpty(t *testing.T) {
	for _, raw := range [][]byte{nil, {}, []byte("not json"), []byte(`{"WEEKDAY": "oops"}`)} {
		out := UnmarshalEnabledShifts(raw)
		require.NotNil(t, out)
		assert.Empty(t, out)
	}
}

func TestShiftsFor(t *testing.T) {
	s := &Settings{EnabledShifts: map[shift.DayType][]shift.Window{
		shift.DayWeekday:  {shift.WeekdayShifts[1]},
		shift.DaySaturday: {},
	}}

	weekday, err := s.ShiftsFor(shift.DayWeekday)
	require.NoError(t, err)
	require.Len(t, weekday, 1)
	assert.Equal(t, "10:00", weekday[0].Start.String())

	_, err = s.ShiftsFor(shift.DaySaturday)
	assert.ErrorIs(t, err, shift.ErrNoShiftsConfigured)

	// Absent day type falls back to the builtin catalog.
	sunday, err := s.ShiftsFor(shift.DaySunday)
	require.NoError(t, err)
	assert.Equal(t, shift.SundayShifts, sunday)

	// The holiday catalog is fixed regardless of the stored subset.
	holiday, err := s.ShiftsFor(shift.DayHoliday)
	require.NoError(t, err)
	assert.Equal(t, shift.HolidayShifts, holiday)
}
