package attendance

import (
	"time"

	"github.com/anandamid/presensi-backend-go/internal/pkg/shift"
)

// PresenceStatus distinguishes a working day from a reported sick day.
type PresenceStatus string

const (
	PresenceHadir PresenceStatus = "HADIR"
	PresenceSakit PresenceStatus = "SAKIT"
)

// Location labels shown to clients, derived from the stored validity flag.
const (
	LocationOffice  = "KANTOR"
	LocationOutside = "LUAR_KANTOR"
)

// GeoSample is one location reading taken at check-in or check-out.
type GeoSample struct {
	Latitude  float64
	Longitude float64
	Accuracy  float64
	DistanceM float64
	Valid     bool
}

// Attendance is one user-day row. Shift bounds are frozen at check-in so
// later settings edits never reclassify an existing record.
type Attendance struct {
	ID     int64
	UserID int64

	// Tanggal is the civil date "YYYY-MM-DD" in the office timezone.
	Tanggal string

	JamMasuk  *time.Time
	JamKeluar *time.Time

	ShiftJamMasuk  shift.Clock
	ShiftJamPulang shift.Clock

	FotoMasukPath  *string
	FotoKeluarPath *string
	FotoSakitPath  *string

	Masuk  *GeoSample
	Keluar *GeoSample

	MasukStatus  shift.CheckInStatus
	KeluarStatus *shift.CheckOutStatus

	StatusKehadiran PresenceStatus

	CreatedAt time.Time
	UpdatedAt time.Time

	// Nama carries the owning user's display name on admin listings.
	Nama string
}

// CheckedOut reports whether the record already has a closing timestamp.
func (a *Attendance) CheckedOut() bool {
	return a.JamKeluar != nil
}

// LocationLabel maps a sample's validity to the client-facing label.
func LocationLabel(valid bool) string {
	if valid {
		return LocationOffice
	}
	return LocationOutside
}
