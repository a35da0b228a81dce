package shift

import "time"

// CheckInStatus labels a check-in relative to the matched shift start.
type CheckInStatus string

// CheckOutStatus labels a check-out relative to the frozen shift end.
type CheckOutStatus string

const (
	CheckInOnTime CheckInStatus = "TEPAT_WAKTU"
	CheckInLate   CheckInStatus = "TELAT"

	CheckOutOnTime CheckOutStatus = "SESUAI"
	CheckOutEarly  CheckOutStatus = "PULANG_CEPAT"
)

// ClassifyCheckIn is TELAT iff now is strictly past shiftStart+tolerance.
func ClassifyCheckIn(now, shiftStart time.Time, tolerance time.Duration) CheckInStatus {
	if now.After(shiftStart.Add(tolerance)) {
		return CheckInLate
	}
	return CheckInOnTime
}

// ClassifyCheckOut is PULANG_CEPAT iff now is strictly before shiftEnd.
// Check-out is separately gated on reaching the shift end, so today this only
// ever observes SESUAI; the rule stays its own function because the gate is a
// separate policy that may change independently.
func ClassifyCheckOut(now, shiftEnd time.Time) CheckOutStatus {
	if now.Before(shiftEnd) {
		return CheckOutEarly
	}
	return CheckOutOnTime
}
