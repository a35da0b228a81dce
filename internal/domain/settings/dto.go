package settings

import (
	"time"

	"github.com/anandamid/presensi-backend-go/internal/pkg/shift"
	"github.com/anandamid/presensi-backend-go/internal/pkg/validator"
)

type UpdateSettingsRequest struct {
	AreaName         string                           `json:"area_name"`
	Latitude         float64                          `json:"latitude"`
	Longitude        float64                          `json:"longitude"`
	RadiusM          float64                          `json:"radius_m"`
	EnabledShifts    map[shift.DayType][]shift.Window `json:"enabled_shifts"`
	ForceHolidayDate *string                          `json:"force_holiday_date"`
}

func (r *UpdateSettingsRequest) Validate() validator.ValidationErrors {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.AreaName) {
		errs = append(errs, validator.ValidationError{Field: "area_name", Message: "area name is required"})
	}
	if !validator.IsFinite(r.Latitude) || r.Latitude < -90 || r.Latitude > 90 {
		errs = append(errs, validator.ValidationError{Field: "latitude", Message: "latitude must be between -90 and 90"})
	}
	if !validator.IsFinite(r.Longitude) || r.Longitude < -180 || r.Longitude > 180 {
		errs = append(errs, validator.ValidationError{Field: "longitude", Message: "longitude must be between -180 and 180"})
	}
	if !validator.IsFinite(r.RadiusM) || r.RadiusM <= 0 {
		errs = append(errs, validator.ValidationError{Field: "radius_m", Message: "radius must be a positive number of meters"})
	}

	for day, windows := range r.EnabledShifts {
		switch day {
		case shift.DayWeekday, shift.DaySaturday, shift.DaySunday:
		case shift.DayHoliday:
			errs = append(errs, validator.ValidationError{Field: "enabled_shifts", Message: "holiday shifts are fixed and cannot be edited"})
			continue
		default:
			errs = append(errs, validator.ValidationError{Field: "enabled_shifts", Message: "unknown day type: " + string(day)})
			continue
		}
		for _, w := range windows {
			if !w.Start.Before(w.End) {
				errs = append(errs, validator.ValidationError{
					Field:   "enabled_shifts",
					Message: "shift " + w.Start.String() + "-" + w.End.String() + " must start before it ends",
				})
			}
		}
	}

	if r.ForceHolidayDate != nil && !validator.IsValidDate(*r.ForceHolidayDate) {
		errs = append(errs, validator.ValidationError{Field: "force_holiday_date", Message: "date must use format YYYY-MM-DD"})
	}

	return errs
}

// ForceHolidayTime parses the optional override date. Validate must have
// passed first.
func (r *UpdateSettingsRequest) ForceHolidayTime(loc *time.Location) *time.Time {
	if r.ForceHolidayDate == nil {
		return nil
	}
	t, err := time.ParseInLocation("2006-01-02", *r.ForceHolidayDate, loc)
	if err != nil {
		return nil
	}
	return &t
}

type SettingsResponse struct {
	AreaName         string                           `json:"area_name"`
	Latitude         float64                          `json:"latitude"`
	Longitude        float64                          `json:"longitude"`
	RadiusM          float64                          `json:"radius_m"`
	EnabledShifts    map[shift.DayType][]shift.Window `json:"enabled_shifts"`
	ForceHolidayDate *string                          `json:"force_holiday_date"`
	UpdatedAt        time.Time                        `json:"updated_at"`
}

func ToSettingsResponse(s *Settings) *SettingsResponse {
	resp := &SettingsResponse{
		AreaName:      s.AreaName,
		Latitude:      s.Latitude,
		Longitude:     s.Longitude,
		RadiusM:       s.RadiusM,
		EnabledShifts: s.EnabledShifts,
		UpdatedAt:     s.UpdatedAt,
	}
	if s.ForceHolidayDate != nil {
		d := s.ForceHolidayDate.Format("2006-01-02")
		resp.ForceHolidayDate = &d
	}
	return resp
}
