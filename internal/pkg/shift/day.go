package shift

import "time"

// CivilDate formats a timestamp as the calendar date (YYYY-MM-DD) of the fixed
// civil timezone. All day and holiday comparisons go through this so the
// deployment's civil day never depends on the host timezone.
func CivilDate(t time.Time, loc *time.Location) string {
	return t.In(loc).Format("2006-01-02")
}

// ClassifyDay maps "now" to a DayType. An admin holiday override whose stored
// date equals today's civil date forces HOLIDAY; the override expires by this
// comparison alone once the date rolls over. The override is a bare calendar
// date (the database hands it back as midnight UTC); its own Y/M/D is
// compared as-is, never re-zoned into loc.
func ClassifyDay(now time.Time, loc *time.Location, holidayOverride *time.Time) DayType {
	if holidayOverride != nil && holidayOverride.Format("2006-01-02") == CivilDate(now, loc) {
		return DayHoliday
	}
	switch now.In(loc).Weekday() {
	case time.Sunday:
		return DaySunday
	case time.Saturday:
		return DaySaturday
	default:
		return DayWeekday
	}
}
