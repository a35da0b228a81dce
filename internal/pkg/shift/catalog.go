package shift

import "errors"

// DayType mengklasifikasikan hari kalender untuk pemilihan jadwal shift.
type DayType string

const (
	DayWeekday  DayType = "WEEKDAY"
	DaySaturday DayType = "SATURDAY"
	DaySunday   DayType = "SUNDAY"
	DayHoliday  DayType = "HOLIDAY"
)

// ErrNoShiftsConfigured is returned when the admin has explicitly emptied the
// enabled subset for a day type. An empty subset means no attendance is
// possible, never "use all shifts".
var ErrNoShiftsConfigured = errors.New("no shifts configured for this day")

// Window is one permitted shift (jam masuk - jam pulang).
type Window struct {
	Start Clock  `json:"jam_masuk"`
	End   Clock  `json:"jam_pulang"`
	Label string `json:"label"`
}

func window(start, end string) Window {
	return Window{Start: MustClock(start), End: MustClock(end), Label: start + " - " + end}
}

// Katalog shift bawaan per tipe hari.

// Senin - Jumat: 8-16, 10-18, 13-21
var WeekdayShifts = []Window{
	window("08:00", "16:00"),
	window("10:00", "18:00"),
	window("13:00", "21:00"),
}

// Sabtu: 8-15, 10-17, 13-21
var SaturdayShifts = []Window{
	window("08:00", "15:00"),
	window("10:00", "17:00"),
	window("13:00", "21:00"),
}

// Minggu
var SundayShifts = []Window{
	window("10:00", "19:00"),
}

// Hari Libur
var HolidayShifts = []Window{
	window("10:00", "19:00"),
}

// CatalogFor returns the built-in shift list for a day type.
func CatalogFor(day DayType) []Window {
	switch day {
	case DaySaturday:
		return SaturdayShifts
	case DaySunday:
		return SundayShifts
	case DayHoliday:
		return HolidayShifts
	default:
		return WeekdayShifts
	}
}

// EnabledFor resolves the effective shift list for a day type given the
// admin-curated subsets. HOLIDAY is always the built-in list. For the other
// day types a missing entry falls back to the built-in catalog, while an
// entry that is present but empty is a hard ErrNoShiftsConfigured.
func EnabledFor(day DayType, enabled map[DayType][]Window) ([]Window, error) {
	if day == DayHoliday {
		return HolidayShifts, nil
	}
	subset, ok := enabled[day]
	if !ok {
		return CatalogFor(day), nil
	}
	if len(subset) == 0 {
		return nil, ErrNoShiftsConfigured
	}
	return subset, nil
}
