package shift

import "time"

// Jendela presensi masuk di sekitar jam mulai shift.
const (
	DefaultWindowBefore  = 15 * time.Minute
	DefaultWindowAfter   = 60 * time.Minute
	DefaultLateTolerance = 15 * time.Minute
)

// MatchWindow selects the shift whose check-in window contains now. The window
// for a shift is the closed interval [start-before, start+after] anchored on
// now's calendar day in loc. Shifts are scanned in catalog order and the first
// match wins; ok is false when no window contains now.
func MatchWindow(now time.Time, shifts []Window, before, after time.Duration, loc *time.Location) (Window, bool) {
	for _, s := range shifts {
		start := s.Start.At(now, loc)
		windowStart := start.Add(-before)
		windowEnd := start.Add(after)
		if !now.Before(windowStart) && !now.After(windowEnd) {
			return s, true
		}
	}
	return Window{}, false
}
