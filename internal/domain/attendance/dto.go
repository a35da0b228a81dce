package attendance

import (
	"mime/multipart"
	"time"

	"github.com/anandamid/presensi-backend-go/internal/pkg/validator"
)

type CheckInRequest struct {
	Latitude        float64
	Longitude       float64
	Accuracy        float64
	StatusKehadiran PresenceStatus
	Photo           *multipart.FileHeader
}

func (r *CheckInRequest) Validate() validator.ValidationErrors {
	errs := validateGeo(r.Latitude, r.Longitude, r.Accuracy)

	switch r.StatusKehadiran {
	case PresenceHadir, PresenceSakit:
	case "":
		r.StatusKehadiran = PresenceHadir
	default:
		errs = append(errs, validator.ValidationError{Field: "status_kehadiran", Message: "status_kehadiran must be HADIR or SAKIT"})
	}

	if r.Photo == nil {
		errs = append(errs, validator.ValidationError{Field: "foto", Message: "a photo is required"})
	}

	return errs
}

type CheckOutRequest struct {
	Latitude  float64
	Longitude float64
	Accuracy  float64
	Photo     *multipart.FileHeader
}

func (r *CheckOutRequest) Validate() validator.ValidationErrors {
	errs := validateGeo(r.Latitude, r.Longitude, r.Accuracy)
	if r.Photo == nil {
		errs = append(errs, validator.ValidationError{Field: "foto", Message: "a photo is required"})
	}
	return errs
}

func validateGeo(lat, lng, accuracy float64) validator.ValidationErrors {
	var errs validator.ValidationErrors

	if !validator.IsFinite(lat) || lat < -90 || lat > 90 {
		errs = append(errs, validator.ValidationError{Field: "latitude", Message: "latitude must be between -90 and 90"})
	}
	if !validator.IsFinite(lng) || lng < -180 || lng > 180 {
		errs = append(errs, validator.ValidationError{Field: "longitude", Message: "longitude must be between -180 and 180"})
	}
	if !validator.IsFinite(accuracy) || accuracy < 0 {
		errs = append(errs, validator.ValidationError{Field: "accuracy", Message: "accuracy must be a non-negative number of meters"})
	}

	return errs
}

type GeoSampleResponse struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Accuracy  float64 `json:"accuracy"`
	DistanceM float64 `json:"distance_m"`
	Lokasi    string  `json:"lokasi"`
}

type AttendanceResponse struct {
	ID              int64              `json:"id"`
	UserID          int64              `json:"user_id"`
	Nama            string             `json:"nama,omitempty"`
	Tanggal         string             `json:"tanggal"`
	JamMasuk        *time.Time         `json:"jam_masuk"`
	JamKeluar       *time.Time         `json:"jam_keluar"`
	ShiftJamMasuk   string             `json:"shift_jam_masuk"`
	ShiftJamPulang  string             `json:"shift_jam_pulang"`
	FotoMasukURL    *string            `json:"foto_masuk_url,omitempty"`
	FotoKeluarURL   *string            `json:"foto_keluar_url,omitempty"`
	FotoSakitURL    *string            `json:"foto_sakit_url,omitempty"`
	Masuk           *GeoSampleResponse `json:"masuk,omitempty"`
	Keluar          *GeoSampleResponse `json:"keluar,omitempty"`
	MasukStatus     string             `json:"masuk_status"`
	KeluarStatus    *string            `json:"keluar_status"`
	StatusKehadiran PresenceStatus     `json:"status_kehadiran"`
}

// ToAttendanceResponse flattens a row for the API. urlFor resolves a stored
// photo path to a servable URL and may be nil when photos are not exposed.
func ToAttendanceResponse(a *Attendance, urlFor func(path string) string) *AttendanceResponse {
	resp := &AttendanceResponse{
		ID:              a.ID,
		UserID:          a.UserID,
		Nama:            a.Nama,
		Tanggal:         a.Tanggal,
		JamMasuk:        a.JamMasuk,
		JamKeluar:       a.JamKeluar,
		ShiftJamMasuk:   a.ShiftJamMasuk.String(),
		ShiftJamPulang:  a.ShiftJamPulang.String(),
		MasukStatus:     string(a.MasukStatus),
		StatusKehadiran: a.StatusKehadiran,
	}

	if a.KeluarStatus != nil {
		s := string(*a.KeluarStatus)
		resp.KeluarStatus = &s
	}
	if a.Masuk != nil {
		resp.Masuk = toGeoSampleResponse(a.Masuk)
	}
	if a.Keluar != nil {
		resp.Keluar = toGeoSampleResponse(a.Keluar)
	}
	if urlFor != nil {
		if a.FotoMasukPath != nil {
			u := urlFor(*a.FotoMasukPath)
			resp.FotoMasukURL = &u
		}
		if a.FotoKeluarPath != nil {
			u := urlFor(*a.FotoKeluarPath)
			resp.FotoKeluarURL = &u
		}
		if a.FotoSakitPath != nil {
			u := urlFor(*a.FotoSakitPath)
			resp.FotoSakitURL = &u
		}
	}

	return resp
}

func toGeoSampleResponse(g *GeoSample) *GeoSampleResponse {
	return &GeoSampleResponse{
		Latitude:  g.Latitude,
		Longitude: g.Longitude,
		Accuracy:  g.Accuracy,
		DistanceM: g.DistanceM,
		Lokasi:    LocationLabel(g.Valid),
	}
}
