package attendance

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anandamid/presensi-backend-go/internal/domain/attendance"
	"github.com/anandamid/presensi-backend-go/internal/domain/settings"
	"github.com/anandamid/presensi-backend-go/internal/pkg/shift"
	"github.com/anandamid/presensi-backend-go/internal/pkg/sse"
	"github.com/anandamid/presensi-backend-go/internal/service/file"
)

// ---- mocks ----

type mockAttendanceRepo struct {
	rows    map[string]*attendance.Attendance // key: userID|tanggal
	nextID  int64
	created int
}

func newMockAttendanceRepo() *mockAttendanceRepo {
	return &mockAttendanceRepo{rows: map[string]*attendance.Attendance{}, nextID: 1}
}

func key(userID int64, tanggal string) string {
	return fmt.Sprintf("%d|%s", userID, tanggal)
}

func (m *mockAttendanceRepo) Create(ctx context.Context, a *attendance.Attendance) error {
	k := key(a.UserID, a.Tanggal)
	if _, exists := m.rows[k]; exists {
		return attendance.ErrAlreadyCheckedIn
	}
	a.ID = m.nextID
	m.nextID++
	copied := *a
	m.rows[k] = &copied
	m.created++
	return nil
}

func (m *mockAttendanceRepo) CheckOut(ctx context.Context, a *attendance.Attendance) error {
	k := key(a.UserID, a.Tanggal)
	stored, exists := m.rows[k]
	if !exists || stored.JamKeluar != nil {
		return attendance.ErrAlreadyCheckedOut
	}
	copied := *a
	m.rows[k] = &copied
	return nil
}

func (m *mockAttendanceRepo) GetByUserAndDate(ctx context.Context, userID int64, tanggal string) (*attendance.Attendance, error) {
	stored, exists := m.rows[key(userID, tanggal)]
	if !exists {
		return nil, attendance.ErrAttendanceNotFound
	}
	copied := *stored
	return &copied, nil
}

func (m *mockAttendanceRepo) ListByUser(ctx context.Context, userID int64, month string) ([]*attendance.Attendance, error) {
	return nil, nil
}

func (m *mockAttendanceRepo) ListByDate(ctx context.Context, tanggal string) ([]*attendance.Attendance, error) {
	return nil, nil
}

func (m *mockAttendanceRepo) ListByDateRange(ctx context.Context, from, to string) ([]*attendance.Attendance, error) {
	return nil, nil
}

func (m *mockAttendanceRepo) DeleteByMonth(ctx context.Context, month string) (int64, error) {
	return 0, nil
}

type mockSettingsService struct {
	snap *settings.Settings
}

func (m *mockSettingsService) Get(ctx context.Context) (*settings.SettingsResponse, error) {
	return settings.ToSettingsResponse(m.snap), nil
}

func (m *mockSettingsService) Update(ctx context.Context, adminID int64, req *settings.UpdateSettingsRequest) (*settings.SettingsResponse, error) {
	return nil, nil
}

func (m *mockSettingsService) Snapshot(ctx context.Context) (*settings.Settings, error) {
	return m.snap, nil
}

type mockFileService struct {
	uploads int
	deletes []string
}

func (m *mockFileService) UploadPhoto(ctx context.Context, userID int64, tanggal string, kind file.PhotoKind, f io.Reader, filename string) (string, error) {
	m.uploads++
	return "presensi/" + tanggal + "/" + string(kind) + ".jpg", nil
}

func (m *mockFileService) UploadLeaveProof(ctx context.Context, userID int64, f io.Reader, filename string) (string, error) {
	return "", nil
}

func (m *mockFileService) DeleteFile(ctx context.Context, path string) error {
	m.deletes = append(m.deletes, path)
	return nil
}

func (m *mockFileService) URLFor(path string) string {
	return "http://localhost:8080/uploads/" + path
}

// ---- helpers ----

func photoHeader(t *testing.T) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile("foto", "selfie.jpg")
	require.NoError(t, err)
	_, err = fw.Write([]byte("jpeg-bytes"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(1 << 20)
	require.NoError(t, err)

	return form.File["foto"][0]
}

func officeSettings() *settings.Settings {
	return &settings.Settings{
		ID:        1,
		AreaName:  "Kantor Anandam.ID",
		Latitude:  -7.759833144584404,
		Longitude: 110.39532415647228,
		RadiusM:   100,
	}
}

type fixture struct {
	svc  *AttendanceServiceImpl
	repo *mockAttendanceRepo
	file *mockFileService
}

func newFixture(t *testing.T, policy Policy, now time.Time) *fixture {
	t.Helper()

	jakarta, err := time.LoadLocation("Asia/Jakarta")
	require.NoError(t, err)

	repo := newMockAttendanceRepo()
	files := &mockFileService{}
	svc := NewAttendanceService(
		repo,
		&mockSettingsService{snap: officeSettings()},
		files,
		sse.NewHub(),
		slog.New(slog.NewTextHandler(io.Discard, nil)),
		jakarta,
		policy,
	).(*AttendanceServiceImpl)
	svc.now = func() time.Time { return now }

	return &fixture{svc: svc, repo: repo, file: files}
}

// at builds a Jakarta timestamp on a fixed Monday (2025-03-10).
func at(t *testing.T, hour, minute int) time.Time {
	t.Helper()
	jakarta, err := time.LoadLocation("Asia/Jakarta")
	require.NoError(t, err)
	return time.Date(2025, 3, 10, hour, minute, 0, 0, jakarta)
}

func atOffice(photo *multipart.FileHeader) *attendance.CheckInRequest {
	return &attendance.CheckInRequest{
		Latitude:  -7.7598,
		Longitude: 110.3953,
		Accuracy:  30,
		Photo:     photo,
	}
}

// ---- check-in ----

func TestCheckInOnTime(t *testing.T) {
	f := newFixture(t, PolicyLenient, at(t, 8, 5))

	resp, err := f.svc.CheckIn(context.Background(), 1, atOffice(photoHeader(t)))
	require.NoError(t, err)

	assert.Equal(t, "2025-03-10", resp.Tanggal)
	assert.Equal(t, string(shift.CheckInOnTime), resp.MasukStatus)
	assert.Equal(t, "08:00", resp.ShiftJamMasuk)
	assert.Equal(t, "16:00", resp.ShiftJamPulang)
	assert.Equal(t, attendance.LocationOffice, resp.Masuk.Lokasi)
}

func TestCheckInLatePastTolerance(t *testing.T) {
	f := newFixture(t, PolicyLenient, at(t, 8, 16))

	resp, err := f.svc.CheckIn(context.Background(), 1, atOffice(photoHeader(t)))
	require.NoError(t, err)

	assert.Equal(t, string(shift.CheckInLate), resp.MasukStatus)
}

func TestCheckInOutsideEveryWindow(t *testing.T) {
	f := newFixture(t, PolicyLenient, at(t, 9, 30))

	_, err := f.svc.CheckIn(context.Background(), 1, atOffice(photoHeader(t)))
	assert.ErrorIs(t, err, attendance.ErrNoMatchingShift)
	assert.Zero(t, f.repo.created)
	assert.Zero(t, f.file.uploads)
}

func TestCheckInTwiceKeepsFirstRecord(t *testing.T) {
	f := newFixture(t, PolicyLenient, at(t, 8, 5))

	first, err := f.svc.CheckIn(context.Background(), 1, atOffice(photoHeader(t)))
	require.NoError(t, err)

	_, err = f.svc.CheckIn(context.Background(), 1, atOffice(photoHeader(t)))
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedIn)

	stored, err := f.repo.GetByUserAndDate(context.Background(), 1, "2025-03-10")
	require.NoError(t, err)
	assert.Equal(t, first.ID, stored.ID)
	assert.Equal(t, 1, f.repo.created)
	// Orphaned second photo is removed.
	assert.Len(t, f.file.deletes, 1)
}

func TestCheckInSickLenientFallsBackOutsideWindows(t *testing.T) {
	// 09:30 is outside every weekday window.
	f := newFixture(t, PolicyLenient, at(t, 9, 30))

	req := atOffice(photoHeader(t))
	req.StatusKehadiran = attendance.PresenceSakit

	resp, err := f.svc.CheckIn(context.Background(), 1, req)
	require.NoError(t, err)

	assert.Equal(t, attendance.PresenceSakit, resp.StatusKehadiran)
	assert.Equal(t, "08:00", resp.ShiftJamMasuk)
	assert.NotNil(t, resp.FotoSakitURL)
	assert.Nil(t, resp.FotoMasukURL)
}

func TestCheckInSickLenientInsideWindowFreezesMatchedShift(t *testing.T) {
	// 13:05 is inside the 13:00 shift's window, so the sick report freezes
	// that shift, not the day's first one.
	f := newFixture(t, PolicyLenient, at(t, 13, 5))

	req := atOffice(photoHeader(t))
	req.StatusKehadiran = attendance.PresenceSakit

	resp, err := f.svc.CheckIn(context.Background(), 1, req)
	require.NoError(t, err)

	assert.Equal(t, "13:00", resp.ShiftJamMasuk)
	assert.Equal(t, "21:00", resp.ShiftJamPulang)
	assert.Equal(t, string(shift.CheckInOnTime), resp.MasukStatus)
}

func TestCheckInSickStrictStillNeedsWindow(t *testing.T) {
	f := newFixture(t, PolicyStrict, at(t, 9, 30))

	req := atOffice(photoHeader(t))
	req.StatusKehadiran = attendance.PresenceSakit

	_, err := f.svc.CheckIn(context.Background(), 1, req)
	assert.ErrorIs(t, err, attendance.ErrNoMatchingShift)
}

func TestCheckInLenientRecordsInvalidLocation(t *testing.T) {
	f := newFixture(t, PolicyLenient, at(t, 8, 5))

	req := atOffice(photoHeader(t))
	// Roughly 1.1km north of the office.
	req.Latitude = -7.7498

	resp, err := f.svc.CheckIn(context.Background(), 1, req)
	require.NoError(t, err)

	assert.Equal(t, attendance.LocationOutside, resp.Masuk.Lokasi)
}

func TestCheckInStrictBlocksInvalidLocation(t *testing.T) {
	f := newFixture(t, PolicyStrict, at(t, 8, 5))

	req := atOffice(photoHeader(t))
	req.Latitude = -7.7498

	_, err := f.svc.CheckIn(context.Background(), 1, req)
	assert.ErrorIs(t, err, attendance.ErrInvalidLocation)
	assert.Zero(t, f.repo.created)
}

// ---- check-out ----

func checkOutReq(photo *multipart.FileHeader) *attendance.CheckOutRequest {
	return &attendance.CheckOutRequest{
		Latitude:  -7.7598,
		Longitude: 110.3953,
		Accuracy:  30,
		Photo:     photo,
	}
}

func TestCheckOutBeforeCheckIn(t *testing.T) {
	f := newFixture(t, PolicyLenient, at(t, 16, 5))

	_, err := f.svc.CheckOut(context.Background(), 1, checkOutReq(photoHeader(t)))
	assert.ErrorIs(t, err, attendance.ErrNotCheckedIn)
}

func TestCheckOutTooEarly(t *testing.T) {
	f := newFixture(t, PolicyLenient, at(t, 8, 5))
	_, err := f.svc.CheckIn(context.Background(), 1, atOffice(photoHeader(t)))
	require.NoError(t, err)

	// Shift ends 16:00; 15:59 is still too early.
	f.svc.now = func() time.Time { return at(t, 15, 59) }

	_, err = f.svc.CheckOut(context.Background(), 1, checkOutReq(photoHeader(t)))
	assert.ErrorIs(t, err, attendance.ErrTooEarlyToCheckOut)
}

func TestCheckOutAfterShiftEnd(t *testing.T) {
	f := newFixture(t, PolicyLenient, at(t, 8, 5))
	_, err := f.svc.CheckIn(context.Background(), 1, atOffice(photoHeader(t)))
	require.NoError(t, err)

	f.svc.now = func() time.Time { return at(t, 16, 10) }

	resp, err := f.svc.CheckOut(context.Background(), 1, checkOutReq(photoHeader(t)))
	require.NoError(t, err)

	require.NotNil(t, resp.KeluarStatus)
	assert.Equal(t, string(shift.CheckOutOnTime), *resp.KeluarStatus)
	assert.Equal(t, "16:00", resp.ShiftJamPulang)
}

func TestCheckOutTwice(t *testing.T) {
	f := newFixture(t, PolicyLenient, at(t, 8, 5))
	_, err := f.svc.CheckIn(context.Background(), 1, atOffice(photoHeader(t)))
	require.NoError(t, err)

	f.svc.now = func() time.Time { return at(t, 16, 10) }
	_, err = f.svc.CheckOut(context.Background(), 1, checkOutReq(photoHeader(t)))
	require.NoError(t, err)

	_, err = f.svc.CheckOut(context.Background(), 1, checkOutReq(photoHeader(t)))
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedOut)
}

func TestCheckOutOnSickDay(t *testing.T) {
	f := newFixture(t, PolicyLenient, at(t, 8, 5))

	req := atOffice(photoHeader(t))
	req.StatusKehadiran = attendance.PresenceSakit
	_, err := f.svc.CheckIn(context.Background(), 1, req)
	require.NoError(t, err)

	f.svc.now = func() time.Time { return at(t, 16, 10) }

	_, err = f.svc.CheckOut(context.Background(), 1, checkOutReq(photoHeader(t)))
	assert.ErrorIs(t, err, attendance.ErrSickCannotCheckOut)
}

// ---- frozen shift ----

func TestCheckOutUsesFrozenShift(t *testing.T) {
	// Check in on the 13:00-21:00 shift, then verify check-out is gated on
	// the frozen 21:00 end rather than any other shift's end.
	f := newFixture(t, PolicyLenient, at(t, 13, 0))

	resp, err := f.svc.CheckIn(context.Background(), 1, atOffice(photoHeader(t)))
	require.NoError(t, err)
	assert.Equal(t, "21:00", resp.ShiftJamPulang)

	f.svc.now = func() time.Time { return at(t, 18, 0) }
	_, err = f.svc.CheckOut(context.Background(), 1, checkOutReq(photoHeader(t)))
	assert.ErrorIs(t, err, attendance.ErrTooEarlyToCheckOut)

	f.svc.now = func() time.Time { return at(t, 21, 0) }
	out, err := f.svc.CheckOut(context.Background(), 1, checkOutReq(photoHeader(t)))
	require.NoError(t, err)
	assert.Equal(t, string(shift.CheckOutOnTime), *out.KeluarStatus)
}

// ---- today ----

func TestTodayWithoutRecord(t *testing.T) {
	f := newFixture(t, PolicyLenient, at(t, 8, 5))

	resp, err := f.svc.Today(context.Background(), 1)
	require.NoError(t, err)
	assert.Nil(t, resp)
}
