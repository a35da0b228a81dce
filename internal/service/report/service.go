package report

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/anandamid/presensi-backend-go/internal/domain/attendance"
	"github.com/anandamid/presensi-backend-go/internal/domain/report"
)

type ReportServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	timezone       *time.Location
}

func NewReportService(attendanceRepo attendance.AttendanceRepository, tz *time.Location) report.ReportService {
	return &ReportServiceImpl{
		attendanceRepo: attendanceRepo,
		timezone:       tz,
	}
}

// monthBounds expands "YYYY-MM" into the first and last civil date of the
// month.
func (s *ReportServiceImpl) monthBounds(month string) (string, string, error) {
	first, err := time.ParseInLocation("2006-01", month, s.timezone)
	if err != nil {
		return "", "", fmt.Errorf("invalid month %q: %w", month, err)
	}
	last := first.AddDate(0, 1, -1)
	return first.Format("2006-01-02"), last.Format("2006-01-02"), nil
}

var exportHeader = []string{
	"Tanggal", "Nama", "Status Kehadiran",
	"Shift Masuk", "Shift Pulang",
	"Jam Masuk", "Status Masuk", "Lokasi Masuk", "Jarak Masuk (m)",
	"Jam Keluar", "Status Keluar", "Lokasi Keluar", "Jarak Keluar (m)",
}

// Export implements report.ReportService.
func (s *ReportServiceImpl) Export(ctx context.Context, req *report.ExportRequest) (*report.Export, error) {
	if errs := req.Validate(); len(errs) > 0 {
		return nil, errs
	}

	from, to, err := s.monthBounds(req.Month)
	if err != nil {
		return nil, err
	}

	rows, err := s.attendanceRepo.ListByDateRange(ctx, from, to)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, report.ErrEmptyRange
	}

	switch req.Format {
	case report.FormatXLSX:
		return s.renderXLSX(req, rows)
	default:
		return s.renderCSV(req, rows)
	}
}

func (s *ReportServiceImpl) renderCSV(req *report.ExportRequest, rows []*attendance.Attendance) (*report.Export, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(exportHeader); err != nil {
		return nil, fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, row := range rows {
		if err := w.Write(s.exportRow(row)); err != nil {
			return nil, fmt.Errorf("failed to write csv row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush csv: %w", err)
	}

	return &report.Export{
		Filename:    fmt.Sprintf("presensi-%s.csv", req.Month),
		ContentType: "text/csv",
		Data:        buf.Bytes(),
	}, nil
}

func (s *ReportServiceImpl) renderXLSX(req *report.ExportRequest, rows []*attendance.Attendance) (*report.Export, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Presensi"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("failed to drop default sheet: %w", err)
	}

	header := make([]interface{}, len(exportHeader))
	for i, h := range exportHeader {
		header[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("failed to write header row: %w", err)
	}

	for i, row := range rows {
		values := s.exportRow(row)
		cells := make([]interface{}, len(values))
		for j, v := range values {
			cells[j] = v
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(sheet, cell, &cells); err != nil {
			return nil, fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to render workbook: %w", err)
	}

	return &report.Export{
		Filename:    fmt.Sprintf("presensi-%s.xlsx", req.Month),
		ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		Data:        buf.Bytes(),
	}, nil
}

func (s *ReportServiceImpl) exportRow(row *attendance.Attendance) []string {
	values := []string{
		row.Tanggal,
		row.Nama,
		string(row.StatusKehadiran),
		row.ShiftJamMasuk.String(),
		row.ShiftJamPulang.String(),
	}

	if row.JamMasuk != nil {
		values = append(values, row.JamMasuk.In(s.timezone).Format("15:04:05"))
	} else {
		values = append(values, "")
	}
	values = append(values, string(row.MasukStatus))
	if row.Masuk != nil {
		values = append(values,
			attendance.LocationLabel(row.Masuk.Valid),
			fmt.Sprintf("%.0f", row.Masuk.DistanceM),
		)
	} else {
		values = append(values, "", "")
	}

	if row.JamKeluar != nil {
		values = append(values, row.JamKeluar.In(s.timezone).Format("15:04:05"))
	} else {
		values = append(values, "")
	}
	if row.KeluarStatus != nil {
		values = append(values, string(*row.KeluarStatus))
	} else {
		values = append(values, "")
	}
	if row.Keluar != nil {
		values = append(values,
			attendance.LocationLabel(row.Keluar.Valid),
			fmt.Sprintf("%.0f", row.Keluar.DistanceM),
		)
	} else {
		values = append(values, "", "")
	}

	return values
}

// DeleteMonth implements report.ReportService.
func (s *ReportServiceImpl) DeleteMonth(ctx context.Context, req *report.DeleteMonthRequest) (int64, error) {
	if errs := req.Validate(); len(errs) > 0 {
		return 0, errs
	}

	return s.attendanceRepo.DeleteByMonth(ctx, req.Month)
}
