package dashboard

import (
	"context"

	"github.com/anandamid/presensi-backend-go/internal/domain/attendance"
	"github.com/anandamid/presensi-backend-go/internal/pkg/shift"
)

// DaySummary is the admin dashboard for one civil date.
type DaySummary struct {
	Tanggal       string `json:"tanggal"`
	TotalPKL      int    `json:"total_pkl"`
	Hadir         int    `json:"hadir"`
	Sakit         int    `json:"sakit"`
	Izin          int    `json:"izin"`
	TepatWaktu    int    `json:"tepat_waktu"`
	Telat         int    `json:"telat"`
	Kantor        int    `json:"kantor"`
	LuarKantor    int    `json:"luar_kantor"`
	SudahPulang   int    `json:"sudah_pulang"`
	BelumPresensi int    `json:"belum_presensi"`
}

// Summarize reduces one day's attendance rows to counters. onLeave is the
// number of interns without a row who are covered by an approved izin; they
// are excluded from BelumPresensi. The function reads only its arguments,
// so the same inputs always produce the same summary.
func Summarize(tanggal string, rows []*attendance.Attendance, totalPKL, onLeave int) DaySummary {
	s := DaySummary{Tanggal: tanggal, TotalPKL: totalPKL, Izin: onLeave}

	for _, row := range rows {
		if row.Masuk != nil {
			if row.Masuk.Valid {
				s.Kantor++
			} else {
				s.LuarKantor++
			}
		}

		switch row.StatusKehadiran {
		case attendance.PresenceSakit:
			s.Sakit++
			continue
		default:
			s.Hadir++
		}

		if row.MasukStatus == shift.CheckInLate {
			s.Telat++
		} else {
			s.TepatWaktu++
		}
		if row.CheckedOut() {
			s.SudahPulang++
		}
	}

	s.BelumPresensi = totalPKL - len(rows) - onLeave
	if s.BelumPresensi < 0 {
		s.BelumPresensi = 0
	}

	return s
}

type DashboardService interface {
	// Today summarizes the current civil date.
	Today(ctx context.Context) (*DaySummary, error)

	// ForDate summarizes an arbitrary "YYYY-MM-DD" date.
	ForDate(ctx context.Context, tanggal string) (*DaySummary, error)
}
