package settings

import (
	"encoding/json"
	"time"

	"github.com/anandamid/presensi-backend-go/internal/pkg/shift"
)

// Settings is the single-row office configuration. Attendance decisions
// read an immutable snapshot of this row so that a mid-request admin
// update cannot split one check-in across two configurations.
type Settings struct {
	ID               int64
	AreaName         string
	Latitude         float64
	Longitude        float64
	RadiusM          float64
	EnabledShifts    map[shift.DayType][]shift.Window
	ForceHolidayDate *time.Time
	UpdatedBy        *int64
	UpdatedAt        time.Time
}

// ShiftsFor resolves the shift catalog for a day type. A day type absent
// from EnabledShifts falls back to the builtin catalog; a day type present
// with an empty list is a configuration error surfaced to the caller.
func (s *Settings) ShiftsFor(day shift.DayType) ([]shift.Window, error) {
	return shift.EnabledFor(day, s.EnabledShifts)
}

// MarshalEnabledShifts encodes the shift subset for the JSONB column.
func MarshalEnabledShifts(m map[shift.DayType][]shift.Window) ([]byte, error) {
	if m == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(m)
}

// UnmarshalEnabledShifts decodes the JSONB column. Corrupt payloads
// degrade to an empty map so attendance falls back to builtin catalogs
// rather than failing every request.
func UnmarshalEnabledShifts(raw []byte) map[shift.DayType][]shift.Window {
	m := map[shift.DayType][]shift.Window{}
	if len(raw) == 0 {
		return m
	}
	if err := json.Unmarshal(raw, &m); err != nil {
		return map[shift.DayType][]shift.Window{}
	}
	return m
}
