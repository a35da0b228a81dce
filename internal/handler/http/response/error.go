package response

import (
	"errors"
	"net/http"

	"github.com/anandamid/presensi-backend-go/internal/domain/attendance"
	"github.com/anandamid/presensi-backend-go/internal/domain/auth"
	"github.com/anandamid/presensi-backend-go/internal/domain/leave"
	"github.com/anandamid/presensi-backend-go/internal/domain/report"
	"github.com/anandamid/presensi-backend-go/internal/domain/settings"
	"github.com/anandamid/presensi-backend-go/internal/domain/user"
	"github.com/anandamid/presensi-backend-go/internal/pkg/shift"
	"github.com/anandamid/presensi-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid username or password")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrAccountInactive):
		Forbidden(w, "Account is inactive")

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrUsernameExists):
		Conflict(w, "Username already taken")
	case errors.Is(err, user.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")
	case errors.Is(err, user.ErrPKLRoleRequired):
		Forbidden(w, "Only PKL accounts can do this")

	// Attendance state machine errors
	case errors.Is(err, attendance.ErrAlreadyCheckedIn):
		Conflict(w, "Already checked in today")
	case errors.Is(err, attendance.ErrAlreadyCheckedOut):
		Conflict(w, "Already checked out today")
	case errors.Is(err, attendance.ErrNotCheckedIn):
		BadRequest(w, "No check-in found for today", nil)
	case errors.Is(err, attendance.ErrSickCannotCheckOut):
		BadRequest(w, "A sick day has no check-out", nil)
	case errors.Is(err, attendance.ErrTooEarlyToCheckOut):
		BadRequest(w, "Cannot check out before the shift ends", nil)
	case errors.Is(err, attendance.ErrNoMatchingShift):
		BadRequest(w, "No shift window is open right now", nil)
	case errors.Is(err, attendance.ErrInvalidLocation):
		BadRequest(w, "Location is outside the allowed area", nil)
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")

	// Settings errors
	case errors.Is(err, settings.ErrSettingsNotFound):
		InternalServerError(w, "Office settings are not configured")
	case errors.Is(err, shift.ErrNoShiftsConfigured):
		BadRequest(w, "No shifts are enabled for today", nil)

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrLeaveAlreadyDecided):
		Conflict(w, "Leave request already decided")
	case errors.Is(err, leave.ErrInvalidLeaveStatus):
		BadRequest(w, "Leave status must be APPROVED or REJECTED", nil)

	// Report errors
	case errors.Is(err, report.ErrEmptyRange):
		NotFound(w, "No attendance records in the requested range")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
