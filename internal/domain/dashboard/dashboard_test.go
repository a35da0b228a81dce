package dashboard

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/anandamid/presensi-backend-go/internal/domain/attendance"
	"github.com/anandamid/presensi-backend-go/internal/pkg/shift"
)

func row(status attendance.PresenceStatus, masuk shift.CheckInStatus, out bool) *attendance.Attendance {
	a := &attendance.Attendance{
		Tanggal:         "2025-03-10",
		StatusKehadiran: status,
		MasukStatus:     masuk,
		Masuk:           &attendance.GeoSample{Valid: true},
	}
	if out {
		t := time.Now()
		a.JamKeluar = &t
	}
	return a
}

func TestSummarize(t *testing.T) {
	rows := []*attendance.Attendance{
		row(attendance.PresenceHadir, shift.CheckInOnTime, true),
		row(attendance.PresenceHadir, shift.CheckInLate, false),
		row(attendance.PresenceHadir, shift.CheckInOnTime, false),
		row(attendance.PresenceSakit, shift.CheckInOnTime, false),
	}

	s := Summarize("2025-03-10", rows, 6, 0)

	assert.Equal(t, "2025-03-10", s.Tanggal)
	assert.Equal(t, 6, s.TotalPKL)
	assert.Equal(t, 3, s.Hadir)
	assert.Equal(t, 1, s.Sakit)
	assert.Equal(t, 2, s.TepatWaktu)
	assert.Equal(t, 1, s.Telat)
	assert.Equal(t, 1, s.SudahPulang)
	assert.Equal(t, 2, s.BelumPresensi)
	assert.Equal(t, 4, s.Kantor)
	assert.Equal(t, 0, s.LuarKantor)
}

func TestSummarizeCountsLocation(t *testing.T) {
	remote := row(attendance.PresenceHadir, shift.CheckInOnTime, false)
	remote.Masuk = &attendance.GeoSample{Valid: false}
	noSample := row(attendance.PresenceSakit, shift.CheckInOnTime, false)
	noSample.Masuk = nil

	rows := []*attendance.Attendance{
		row(attendance.PresenceHadir, shift.CheckInOnTime, false),
		remote,
		noSample,
	}

	s := Summarize("2025-03-10", rows, 3, 0)

	assert.Equal(t, 1, s.Kantor)
	assert.Equal(t, 1, s.LuarKantor)
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize("2025-03-10", nil, 4, 1)

	assert.Equal(t, 0, s.Hadir)
	assert.Equal(t, 1, s.Izin)
	assert.Equal(t, 3, s.BelumPresensi)
}

func TestSummarizeNeverNegative(t *testing.T) {
	rows := []*attendance.Attendance{
		row(attendance.PresenceHadir, shift.CheckInOnTime, false),
		row(attendance.PresenceHadir, shift.CheckInOnTime, false),
	}

	s := Summarize("2025-03-10", rows, 1, 0)

	assert.Equal(t, 0, s.BelumPresensi)
}

func TestSummarizeDeterministic(t *testing.T) {
	rows := []*attendance.Attendance{
		row(attendance.PresenceHadir, shift.CheckInLate, true),
		row(attendance.PresenceSakit, shift.CheckInOnTime, false),
	}

	first := Summarize("2025-03-10", rows, 3, 1)
	for i := 0; i < 50; i++ {
		assert.Equal(t, first, Summarize("2025-03-10", rows, 3, 1))
	}
}
