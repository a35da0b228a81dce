package attendance

import "errors"

var (
	ErrAlreadyCheckedIn   = errors.New("already checked in today")
	ErrNotCheckedIn       = errors.New("no check-in found for today")
	ErrAlreadyCheckedOut  = errors.New("already checked out today")
	ErrSickCannotCheckOut = errors.New("a sick day has no check-out")
	ErrTooEarlyToCheckOut = errors.New("cannot check out before the shift ends")
	ErrNoMatchingShift    = errors.New("no shift window is open right now")
	ErrInvalidLocation    = errors.New("location is outside the allowed area")
	ErrAttendanceNotFound = errors.New("attendance record not found")
)
