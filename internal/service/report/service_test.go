package report

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anandamid/presensi-backend-go/internal/domain/attendance"
	"github.com/anandamid/presensi-backend-go/internal/domain/report"
	"github.com/anandamid/presensi-backend-go/internal/pkg/shift"
)

type stubAttendanceRepo struct {
	rows    []*attendance.Attendance
	from    string
	to      string
	deleted string
}

func (s *stubAttendanceRepo) Create(ctx context.Context, a *attendance.Attendance) error { return nil }
func (s *stubAttendanceRepo) CheckOut(ctx context.Context, a *attendance.Attendance) error {
	return nil
}
func (s *stubAttendanceRepo) GetByUserAndDate(ctx context.Context, userID int64, tanggal string) (*attendance.Attendance, error) {
	return nil, attendance.ErrAttendanceNotFound
}
func (s *stubAttendanceRepo) ListByUser(ctx context.Context, userID int64, month string) ([]*attendance.Attendance, error) {
	return nil, nil
}
func (s *stubAttendanceRepo) ListByDate(ctx context.Context, tanggal string) ([]*attendance.Attendance, error) {
	return nil, nil
}
func (s *stubAttendanceRepo) ListByDateRange(ctx context.Context, from, to string) ([]*attendance.Attendance, error) {
	s.from, s.to = from, to
	return s.rows, nil
}
func (s *stubAttendanceRepo) DeleteByMonth(ctx context.Context, month string) (int64, error) {
	s.deleted = month
	return 42, nil
}

func sampleRow(t *testing.T) *attendance.Attendance {
	t.Helper()
	jakarta, err := time.LoadLocation("Asia/Jakarta")
	require.NoError(t, err)

	in := time.Date(2025, 3, 10, 8, 5, 0, 0, jakarta)
	out := time.Date(2025, 3, 10, 16, 10, 0, 0, jakarta)
	outStatus := shift.CheckOutOnTime

	return &attendance.Attendance{
		ID:             1,
		UserID:         7,
		Nama:           "Budi Santoso",
		Tanggal:        "2025-03-10",
		JamMasuk:       &in,
		JamKeluar:      &out,
		ShiftJamMasuk:  shift.MustClock("08:00"),
		ShiftJamPulang: shift.MustClock("16:00"),
		Masuk:          &attendance.GeoSample{DistanceM: 42, Valid: true},
		Keluar:         &attendance.GeoSample{DistanceM: 300, Valid: false},
		MasukStatus:    shift.CheckInOnTime,
		KeluarStatus:   &outStatus,
	}
}

func newService(t *testing.T, repo *stubAttendanceRepo) *ReportServiceImpl {
	t.Helper()
	jakarta, err := time.LoadLocation("Asia/Jakarta")
	require.NoError(t, err)
	return NewReportService(repo, jakarta).(*ReportServiceImpl)
}

func TestExportCSV(t *testing.T) {
	repo := &stubAttendanceRepo{rows: []*attendance.Attendance{sampleRow(t)}}
	svc := newService(t, repo)

	export, err := svc.Export(context.Background(), &report.ExportRequest{
		Month: "2025-03", Format: report.FormatCSV,
	})
	require.NoError(t, err)

	assert.Equal(t, "2025-03-01", repo.from)
	assert.Equal(t, "2025-03-31", repo.to)
	assert.Equal(t, "presensi-2025-03.csv", export.Filename)
	assert.Equal(t, "text/csv", export.ContentType)

	lines := strings.Split(strings.TrimSpace(string(export.Data)), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "Tanggal")
	assert.Contains(t, lines[1], "Budi Santoso")
	assert.Contains(t, lines[1], "TEPAT_WAKTU")
	assert.Contains(t, lines[1], "KANTOR")
	assert.Contains(t, lines[1], "LUAR_KANTOR")
	assert.Contains(t, lines[1], "08:05:00")
}

func TestExportXLSX(t *testing.T) {
	svc := newService(t, &stubAttendanceRepo{rows: []*attendance.Attendance{sampleRow(t)}})

	export, err := svc.Export(context.Background(), &report.ExportRequest{
		Month: "2025-03", Format: report.FormatXLSX,
	})
	require.NoError(t, err)

	assert.Equal(t, "presensi-2025-03.xlsx", export.Filename)
	assert.NotEmpty(t, export.Data)
	// XLSX is a zip container.
	assert.Equal(t, []byte{'P', 'K'}, export.Data[:2])
}

func TestExportEmptyMonth(t *testing.T) {
	svc := newService(t, &stubAttendanceRepo{})

	_, err := svc.Export(context.Background(), &report.ExportRequest{Month: "2025-03"})
	assert.ErrorIs(t, err, report.ErrEmptyRange)
}

func TestExportRejectsBadMonth(t *testing.T) {
	svc := newService(t, &stubAttendanceRepo{})

	for _, m := range []string{"", "2025-13", "03-2025", "2025-03-01"} {
		_, err := svc.Export(context.Background(), &report.ExportRequest{Month: m})
		assert.Error(t, err, "month %q must be rejected", m)
	}
}

func TestDeleteMonth(t *testing.T) {
	repo := &stubAttendanceRepo{}
	svc := newService(t, repo)

	n, err := svc.DeleteMonth(context.Background(), &report.DeleteMonthRequest{Month: "2025-03"})
	require.NoError(t, err)
	assert.Equal(t, int64(42), n)
	assert.Equal(t, "2025-03", repo.deleted)

	_, err = svc.DeleteMonth(context.Background(), &report.DeleteMonthRequest{Month: "03-2025"})
	assert.Error(t, err)
}
