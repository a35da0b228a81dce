package attendance

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"mime/multipart"
	"time"

	"github.com/anandamid/presensi-backend-go/internal/domain/attendance"
	"github.com/anandamid/presensi-backend-go/internal/domain/settings"
	"github.com/anandamid/presensi-backend-go/internal/pkg/shift"
	"github.com/anandamid/presensi-backend-go/internal/pkg/sse"
	"github.com/anandamid/presensi-backend-go/internal/pkg/utils"
	"github.com/anandamid/presensi-backend-go/internal/service/file"
)

// Policy selects between the two attendance gating variants. They are never
// merged: lenient lets a sick check-in outside every window fall back to the
// first catalog shift and records location without blocking, strict always
// requires a window and rejects invalid locations on both check-in and
// check-out.
type Policy string

const (
	PolicyLenient Policy = "lenient"
	PolicyStrict  Policy = "strict"
)

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
	settingsService settings.SettingsService
	fileService     file.FileService
	hub             *sse.Hub
	logger          *slog.Logger
	timezone        *time.Location
	policy          Policy
	now             func() time.Time
}

func NewAttendanceService(
	repo attendance.AttendanceRepository,
	settingsService settings.SettingsService,
	fileService file.FileService,
	hub *sse.Hub,
	logger *slog.Logger,
	timezone *time.Location,
	policy Policy,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		AttendanceRepository: repo,
		settingsService:      settingsService,
		fileService:          fileService,
		hub:                  hub,
		logger:               logger,
		timezone:             timezone,
		policy:               policy,
		now:                  time.Now,
	}
}

// CheckIn implements attendance.AttendanceService. The settings snapshot is
// read once; every decision in this request is made against that copy. The
// row insert is the last step, so no error path leaves partial state behind.
func (s *AttendanceServiceImpl) CheckIn(ctx context.Context, userID int64, req *attendance.CheckInRequest) (*attendance.AttendanceResponse, error) {
	if errs := req.Validate(); len(errs) > 0 {
		return nil, errs
	}

	now := s.now()
	tanggal := shift.CivilDate(now, s.timezone)

	snap, err := s.settingsService.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	day := shift.ClassifyDay(now, s.timezone, snap.ForceHolidayDate)
	shifts, err := snap.ShiftsFor(day)
	if err != nil {
		return nil, err
	}

	matched, err := s.resolveWindow(now, shifts, req.StatusKehadiran)
	if err != nil {
		return nil, err
	}

	sample := s.measure(snap, req.Latitude, req.Longitude, req.Accuracy)
	if s.policy == PolicyStrict && !sample.Valid {
		return nil, attendance.ErrInvalidLocation
	}

	row := &attendance.Attendance{
		UserID:          userID,
		Tanggal:         tanggal,
		JamMasuk:        &now,
		ShiftJamMasuk:   matched.Start,
		ShiftJamPulang:  matched.End,
		Masuk:           sample,
		MasukStatus:     shift.ClassifyCheckIn(now, matched.Start.At(now, s.timezone), shift.DefaultLateTolerance),
		StatusKehadiran: req.StatusKehadiran,
	}

	// Photo upload happens after all validation but before the row write;
	// a failed insert cleans the orphan up best-effort.
	kind := file.PhotoCheckIn
	if req.StatusKehadiran == attendance.PresenceSakit {
		kind = file.PhotoSick
	}
	photoPath, err := s.uploadPhoto(ctx, userID, tanggal, kind, req.Photo)
	if err != nil {
		return nil, err
	}
	if kind == file.PhotoSick {
		row.FotoSakitPath = &photoPath
	} else {
		row.FotoMasukPath = &photoPath
	}

	if err := s.AttendanceRepository.Create(ctx, row); err != nil {
		if delErr := s.fileService.DeleteFile(ctx, photoPath); delErr != nil {
			s.logger.Warn("failed to remove orphaned check-in photo",
				slog.String("path", photoPath), slog.Any("error", delErr))
		}
		return nil, err
	}

	s.publish("check-in", row)

	return attendance.ToAttendanceResponse(row, s.fileService.URLFor), nil
}

// CheckOut implements attendance.AttendanceService. Classification uses the
// shift bounds frozen at check-in, so a settings change between the two
// events never reclassifies the day.
func (s *AttendanceServiceImpl) CheckOut(ctx context.Context, userID int64, req *attendance.CheckOutRequest) (*attendance.AttendanceResponse, error) {
	if errs := req.Validate(); len(errs) > 0 {
		return nil, errs
	}

	now := s.now()
	tanggal := shift.CivilDate(now, s.timezone)

	row, err := s.AttendanceRepository.GetByUserAndDate(ctx, userID, tanggal)
	if err != nil {
		if errors.Is(err, attendance.ErrAttendanceNotFound) {
			return nil, attendance.ErrNotCheckedIn
		}
		return nil, err
	}

	if row.StatusKehadiran == attendance.PresenceSakit {
		return nil, attendance.ErrSickCannotCheckOut
	}
	if row.CheckedOut() {
		return nil, attendance.ErrAlreadyCheckedOut
	}

	shiftEnd := row.ShiftJamPulang.At(now, s.timezone)
	if now.Before(shiftEnd) {
		return nil, attendance.ErrTooEarlyToCheckOut
	}

	snap, err := s.settingsService.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	sample := s.measure(snap, req.Latitude, req.Longitude, req.Accuracy)
	if s.policy == PolicyStrict && !sample.Valid {
		return nil, attendance.ErrInvalidLocation
	}

	photoPath, err := s.uploadPhoto(ctx, userID, tanggal, file.PhotoCheckOut, req.Photo)
	if err != nil {
		return nil, err
	}

	status := shift.ClassifyCheckOut(now, shiftEnd)
	row.JamKeluar = &now
	row.FotoKeluarPath = &photoPath
	row.Keluar = sample
	row.KeluarStatus = &status

	if err := s.AttendanceRepository.CheckOut(ctx, row); err != nil {
		if delErr := s.fileService.DeleteFile(ctx, photoPath); delErr != nil {
			s.logger.Warn("failed to remove orphaned check-out photo",
				slog.String("path", photoPath), slog.Any("error", delErr))
		}
		return nil, err
	}

	s.publish("check-out", row)

	return attendance.ToAttendanceResponse(row, s.fileService.URLFor), nil
}

// resolveWindow picks the shift this event freezes onto. A matched window
// always wins; under the lenient policy a sick report outside every window
// still lands on the first catalog shift for record-keeping.
func (s *AttendanceServiceImpl) resolveWindow(now time.Time, shifts []shift.Window, status attendance.PresenceStatus) (shift.Window, error) {
	matched, ok := shift.MatchWindow(now, shifts, shift.DefaultWindowBefore, shift.DefaultWindowAfter, s.timezone)
	if ok {
		return matched, nil
	}
	if s.policy == PolicyLenient && status == attendance.PresenceSakit && len(shifts) > 0 {
		return shifts[0], nil
	}
	return shift.Window{}, attendance.ErrNoMatchingShift
}

func (s *AttendanceServiceImpl) measure(snap *settings.Settings, lat, lng, accuracy float64) *attendance.GeoSample {
	distance := utils.CalculateHaversineDistance(snap.Latitude, snap.Longitude, lat, lng)
	return &attendance.GeoSample{
		Latitude:  lat,
		Longitude: lng,
		Accuracy:  accuracy,
		DistanceM: distance,
		Valid:     utils.IsLocationValid(distance, accuracy, snap.RadiusM, utils.MaxAccuracyMeters),
	}
}

func (s *AttendanceServiceImpl) uploadPhoto(ctx context.Context, userID int64, tanggal string, kind file.PhotoKind, header *multipart.FileHeader) (string, error) {
	f, err := header.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded photo: %w", err)
	}
	defer f.Close()

	return s.fileService.UploadPhoto(ctx, userID, tanggal, kind, f, header.Filename)
}

func (s *AttendanceServiceImpl) publish(event string, row *attendance.Attendance) {
	s.hub.Publish(sse.TopicAdminPresensi, sse.Event{
		Topic: sse.TopicAdminPresensi,
		Event: event,
		Data:  attendance.ToAttendanceResponse(row, s.fileService.URLFor),
	})
}

// Today implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Today(ctx context.Context, userID int64) (*attendance.AttendanceResponse, error) {
	tanggal := shift.CivilDate(s.now(), s.timezone)

	row, err := s.AttendanceRepository.GetByUserAndDate(ctx, userID, tanggal)
	if err != nil {
		if errors.Is(err, attendance.ErrAttendanceNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return attendance.ToAttendanceResponse(row, s.fileService.URLFor), nil
}

// History implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) History(ctx context.Context, userID int64, month string) ([]*attendance.AttendanceResponse, error) {
	if month == "" {
		month = s.now().In(s.timezone).Format("2006-01")
	}

	rows, err := s.AttendanceRepository.ListByUser(ctx, userID, month)
	if err != nil {
		return nil, err
	}

	return s.toResponses(rows), nil
}

// ListByDate implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ListByDate(ctx context.Context, tanggal string) ([]*attendance.AttendanceResponse, error) {
	if tanggal == "" {
		tanggal = shift.CivilDate(s.now(), s.timezone)
	}

	rows, err := s.AttendanceRepository.ListByDate(ctx, tanggal)
	if err != nil {
		return nil, err
	}

	return s.toResponses(rows), nil
}

func (s *AttendanceServiceImpl) toResponses(rows []*attendance.Attendance) []*attendance.AttendanceResponse {
	responses := make([]*attendance.AttendanceResponse, 0, len(rows))
	for _, row := range rows {
		responses = append(responses, attendance.ToAttendanceResponse(row, s.fileService.URLFor))
	}
	return responses
}
