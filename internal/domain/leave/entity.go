package leave

import (
	"time"

	"github.com/anandamid/presensi-backend-go/internal/pkg/shift"
)

type Status string

const (
	StatusPending  Status = "PENDING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
)

// Leave is one izin ganti hari request: the intern asks to be excused for
// a span of time and, once approved, the admin treats overlapping
// attendance anomalies as covered.
type Leave struct {
	ID             int64
	UserID         int64
	TanggalMulai   string
	JamMulai       shift.Clock
	TanggalSelesai string
	JamSelesai     shift.Clock
	Alasan         string
	Status         Status
	FotoBuktiPath  *string
	CreatedAt      time.Time
	UpdatedAt      time.Time

	// Nama carries the requesting user's display name on admin listings.
	Nama string
}
