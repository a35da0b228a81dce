package shift

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var jakarta = func() *time.Location {
	loc, err := time.LoadLocation("Asia/Jakarta")
	if err != nil {
		panic(err)
	}
	return loc
}()

func at(t *testing.T, clock string) time.Time {
	t.Helper()
	c, err := ParseClock(clock)
	require.NoError(t, err)
	// Selasa 2026-01-06
	return time.Date(2026, 1, 6, c.Hour, c.Minute, 0, 0, jakarta)
}

func TestParseClock(t *testing.T) {
	cases := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"08:00", "08:00", false},
		{"8:00", "08:00", false},
		{"23:59", "23:59", false},
		{"00:00", "00:00", false},
		{"24:00", "", true},
		{"12:60", "", true},
		{"12", "", true},
		{"ab:cd", "", true},
		{"", "", true},
	}
	for _, c := range cases {
		got, err := ParseClock(c.in)
		if c.wantErr {
			assert.Error(t, err, "ParseClock(%q)", c.in)
			continue
		}
		require.NoError(t, err, "ParseClock(%q)", c.in)
		assert.Equal(t, c.want, got.String())
	}
}

func TestClockJSONRoundTrip(t *testing.T) {
	w := Window{Start: MustClock("08:00"), End: MustClock("16:00"), Label: "08:00 - 16:00"}
	raw, err := json.Marshal(w)
	require.NoError(t, err)
	assert.JSONEq(t, `{"jam_masuk":"08:00","jam_pulang":"16:00","label":"08:00 - 16:00"}`, string(raw))

	var back Window
	require.NoError(t, json.Unmarshal(raw, &back))
	assert.Equal(t, w, back)
}

func TestClassifyDay(t *testing.T) {
	tuesday := time.Date(2026, 1, 6, 9, 0, 0, 0, jakarta)
	saturday := time.Date(2026, 1, 10, 9, 0, 0, 0, jakarta)
	sunday := time.Date(2026, 1, 11, 9, 0, 0, 0, jakarta)

	assert.Equal(t, DayWeekday, ClassifyDay(tuesday, jakarta, nil))
	assert.Equal(t, DaySaturday, ClassifyDay(saturday, jakarta, nil))
	assert.Equal(t, DaySunday, ClassifyDay(sunday, jakarta, nil))
}

func TestClassifyDay_HolidayOverrideOnTuesday(t *testing.T) {
	tuesday := time.Date(2026, 1, 6, 9, 0, 0, 0, jakarta)
	override := time.Date(2026, 1, 6, 0, 0, 0, 0, jakarta)
	assert.Equal(t, DayHoliday, ClassifyDay(tuesday, jakarta, &override))
}

func TestClassifyDay_HolidayOverrideExpiresOnRollover(t *testing.T) {
	override := time.Date(2026, 1, 6, 0, 0, 0, 0, jakarta)
	nextDay := time.Date(2026, 1, 7, 0, 0, 1, 0, jakarta)
	assert.Equal(t, DayWeekday, ClassifyDay(nextDay, jakarta, &override))
}

func TestClassifyDay_HolidayOverrideStoredAsUTCMidnight(t *testing.T) {
	// DATE columns scan back as midnight UTC. The override must still match
	// the same calendar day in a civil timezone west of UTC.
	newYork, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	override := time.Date(2026, 1, 6, 0, 0, 0, 0, time.UTC)
	tuesdayMorning := time.Date(2026, 1, 6, 9, 0, 0, 0, newYork)
	assert.Equal(t, DayHoliday, ClassifyDay(tuesdayMorning, newYork, &override))

	// East of UTC too: the same override, read at Jakarta midday.
	tuesdayJakarta := time.Date(2026, 1, 6, 12, 0, 0, 0, jakarta)
	assert.Equal(t, DayHoliday, ClassifyDay(tuesdayJakarta, jakarta, &override))
}

func TestClassifyDay_UsesCivilTimezoneNotUTC(t *testing.T) {
	// 18:00 UTC Sabtu = 01:00 Minggu di Jakarta (UTC+7).
	utcSaturdayEvening := time.Date(2026, 1, 10, 18, 0, 0, 0, time.UTC)
	assert.Equal(t, DaySunday, ClassifyDay(utcSaturdayEvening, jakarta, nil))
}

func TestEnabledFor(t *testing.T) {
	curated := map[DayType][]Window{
		DayWeekday: {window("10:00", "18:00")},
	}

	got, err := EnabledFor(DayWeekday, curated)
	require.NoError(t, err)
	assert.Equal(t, []Window{window("10:00", "18:00")}, got)

	// Tipe hari tanpa entri memakai katalog bawaan.
	got, err = EnabledFor(DaySaturday, curated)
	require.NoError(t, err)
	assert.Equal(t, SaturdayShifts, got)

	// HOLIDAY selalu bawaan, subset admin diabaikan.
	got, err = EnabledFor(DayHoliday, map[DayType][]Window{DayHoliday: {}})
	require.NoError(t, err)
	assert.Equal(t, HolidayShifts, got)
}

func TestEnabledFor_EmptySubsetIsHardFailure(t *testing.T) {
	_, err := EnabledFor(DayWeekday, map[DayType][]Window{DayWeekday: {}})
	assert.ErrorIs(t, err, ErrNoShiftsConfigured)
}

func TestMatchWindow_Scenario(t *testing.T) {
	shifts := []Window{window("08:00", "16:00")}

	cases := []struct {
		now     string
		matched bool
	}{
		{"07:44", false}, // sebelum jendela buka
		{"07:45", true},  // batas bawah inklusif
		{"08:10", true},
		{"09:00", true},  // batas atas inklusif
		{"09:01", false}, // setelah jendela tutup
		{"07:30", false},
		{"09:30", false},
	}
	for _, c := range cases {
		_, ok := MatchWindow(at(t, c.now), shifts, DefaultWindowBefore, DefaultWindowAfter, jakarta)
		assert.Equal(t, c.matched, ok, "now=%s", c.now)
	}
}

func TestMatchWindow_FirstMatchWins(t *testing.T) {
	// Jendela tumpang tindih karena konstruksi katalog yang buruk; yang pertama menang.
	shifts := []Window{window("08:00", "16:00"), window("08:30", "16:30")}
	got, ok := MatchWindow(at(t, "08:20"), shifts, DefaultWindowBefore, DefaultWindowAfter, jakarta)
	require.True(t, ok)
	assert.Equal(t, MustClock("08:00"), got.Start)
}

func TestMatchWindow_Deterministic(t *testing.T) {
	now := at(t, "10:05")
	first, ok1 := MatchWindow(now, WeekdayShifts, DefaultWindowBefore, DefaultWindowAfter, jakarta)
	require.True(t, ok1)
	for i := 0; i < 10; i++ {
		again, ok := MatchWindow(now, WeekdayShifts, DefaultWindowBefore, DefaultWindowAfter, jakarta)
		require.True(t, ok)
		assert.Equal(t, first, again)
	}
}

func TestClassifyCheckIn(t *testing.T) {
	start := at(t, "08:00")
	assert.Equal(t, CheckInOnTime, ClassifyCheckIn(at(t, "07:50"), start, DefaultLateTolerance))
	assert.Equal(t, CheckInOnTime, ClassifyCheckIn(at(t, "08:10"), start, DefaultLateTolerance))
	assert.Equal(t, CheckInOnTime, ClassifyCheckIn(at(t, "08:15"), start, DefaultLateTolerance))
	assert.Equal(t, CheckInLate, ClassifyCheckIn(at(t, "08:16"), start, DefaultLateTolerance))
	assert.Equal(t, CheckInLate, ClassifyCheckIn(at(t, "08:20"), start, DefaultLateTolerance))
}

func TestClassifyCheckOut(t *testing.T) {
	end := at(t, "16:00")
	assert.Equal(t, CheckOutEarly, ClassifyCheckOut(at(t, "15:59"), end))
	assert.Equal(t, CheckOutOnTime, ClassifyCheckOut(at(t, "16:00"), end))
	assert.Equal(t, CheckOutOnTime, ClassifyCheckOut(at(t, "16:30"), end))
}
