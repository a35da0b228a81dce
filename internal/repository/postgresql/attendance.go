package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/anandamid/presensi-backend-go/internal/domain/attendance"
	"github.com/anandamid/presensi-backend-go/internal/pkg/database"
	"github.com/anandamid/presensi-backend-go/internal/pkg/shift"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

// Create implements attendance.AttendanceRepository. The unique constraint
// on (user_id, tanggal) makes the insert the idempotency point: a second
// check-in on the same day inserts nothing and the first row stays as it
// was written.
func (r *attendanceRepositoryImpl) Create(ctx context.Context, a *attendance.Attendance) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO presensi (
			user_id, tanggal, jam_masuk, shift_jam_masuk, shift_jam_pulang,
			foto_masuk_path, foto_sakit_path,
			masuk_lat, masuk_lng, masuk_accuracy, masuk_distance_m, masuk_lokasi_valid,
			masuk_status, status_kehadiran
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		ON CONFLICT ON CONSTRAINT presensi_user_tanggal_unique DO NOTHING
		RETURNING id, created_at, updated_at`

	var masukLat, masukLng, masukAccuracy, masukDistance *float64
	masukValid := false
	if a.Masuk != nil {
		masukLat = &a.Masuk.Latitude
		masukLng = &a.Masuk.Longitude
		masukAccuracy = &a.Masuk.Accuracy
		masukDistance = &a.Masuk.DistanceM
		masukValid = a.Masuk.Valid
	}

	err := q.QueryRow(ctx, query,
		a.UserID,
		a.Tanggal,
		a.JamMasuk,
		a.ShiftJamMasuk.String(),
		a.ShiftJamPulang.String(),
		a.FotoMasukPath,
		a.FotoSakitPath,
		masukLat,
		masukLng,
		masukAccuracy,
		masukDistance,
		masukValid,
		string(a.MasukStatus),
		string(a.StatusKehadiran),
	).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		// DO NOTHING yields zero rows, so the conflict surfaces as ErrNoRows.
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.ErrAlreadyCheckedIn
		}
		return err
	}

	return nil
}

// CheckOut implements attendance.AttendanceRepository. The jam_keluar IS
// NULL guard keeps the first check-out authoritative.
func (r *attendanceRepositoryImpl) CheckOut(ctx context.Context, a *attendance.Attendance) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE presensi
		SET jam_keluar = $1, foto_keluar_path = $2,
			keluar_lat = $3, keluar_lng = $4, keluar_accuracy = $5,
			keluar_distance_m = $6, keluar_lokasi_valid = $7,
			keluar_status = $8, updated_at = NOW()
		WHERE id = $9 AND jam_keluar IS NULL
		RETURNING updated_at`

	var keluarLat, keluarLng, keluarAccuracy, keluarDistance *float64
	var keluarValid *bool
	if a.Keluar != nil {
		keluarLat = &a.Keluar.Latitude
		keluarLng = &a.Keluar.Longitude
		keluarAccuracy = &a.Keluar.Accuracy
		keluarDistance = &a.Keluar.DistanceM
		keluarValid = &a.Keluar.Valid
	}

	var keluarStatus *string
	if a.KeluarStatus != nil {
		s := string(*a.KeluarStatus)
		keluarStatus = &s
	}

	err := q.QueryRow(ctx, query,
		a.JamKeluar,
		a.FotoKeluarPath,
		keluarLat,
		keluarLng,
		keluarAccuracy,
		keluarDistance,
		keluarValid,
		keluarStatus,
		a.ID,
	).Scan(&a.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.ErrAlreadyCheckedOut
		}
		return err
	}

	return nil
}

const presensiColumns = `
	p.id, p.user_id, u.nama, to_char(p.tanggal, 'YYYY-MM-DD'),
	p.jam_masuk, p.jam_keluar, p.shift_jam_masuk, p.shift_jam_pulang,
	p.foto_masuk_path, p.foto_keluar_path, p.foto_sakit_path,
	p.masuk_lat, p.masuk_lng, p.masuk_accuracy, p.masuk_distance_m, p.masuk_lokasi_valid,
	p.keluar_lat, p.keluar_lng, p.keluar_accuracy, p.keluar_distance_m, p.keluar_lokasi_valid,
	p.masuk_status, p.keluar_status, p.status_kehadiran, p.created_at, p.updated_at`

func scanAttendance(row pgx.Row) (*attendance.Attendance, error) {
	var a attendance.Attendance
	var shiftMasuk, shiftPulang string
	var masukLat, masukLng, masukAccuracy, masukDistance *float64
	var masukValid bool
	var keluarLat, keluarLng, keluarAccuracy, keluarDistance *float64
	var keluarValid *bool
	var masukStatus string
	var keluarStatus *string
	var statusKehadiran string

	err := row.Scan(
		&a.ID, &a.UserID, &a.Nama, &a.Tanggal,
		&a.JamMasuk, &a.JamKeluar, &shiftMasuk, &shiftPulang,
		&a.FotoMasukPath, &a.FotoKeluarPath, &a.FotoSakitPath,
		&masukLat, &masukLng, &masukAccuracy, &masukDistance, &masukValid,
		&keluarLat, &keluarLng, &keluarAccuracy, &keluarDistance, &keluarValid,
		&masukStatus, &keluarStatus, &statusKehadiran, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if a.ShiftJamMasuk, err = shift.ParseClock(shiftMasuk); err != nil {
		return nil, err
	}
	if a.ShiftJamPulang, err = shift.ParseClock(shiftPulang); err != nil {
		return nil, err
	}

	if masukLat != nil {
		a.Masuk = &attendance.GeoSample{
			Latitude:  *masukLat,
			Longitude: *masukLng,
			Accuracy:  deref(masukAccuracy),
			DistanceM: deref(masukDistance),
			Valid:     masukValid,
		}
	}
	if keluarLat != nil {
		a.Keluar = &attendance.GeoSample{
			Latitude:  *keluarLat,
			Longitude: *keluarLng,
			Accuracy:  deref(keluarAccuracy),
			DistanceM: deref(keluarDistance),
			Valid:     keluarValid != nil && *keluarValid,
		}
	}

	a.MasukStatus = shift.CheckInStatus(masukStatus)
	if keluarStatus != nil {
		s := shift.CheckOutStatus(*keluarStatus)
		a.KeluarStatus = &s
	}
	a.StatusKehadiran = attendance.PresenceStatus(statusKehadiran)

	return &a, nil
}

func deref(f *float64) float64 {
	if f == nil {
		return 0
	}
	return *f
}

// GetByUserAndDate implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) GetByUserAndDate(ctx context.Context, userID int64, tanggal string) (*attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + presensiColumns + `
		FROM presensi p
		JOIN users u ON u.id = p.user_id
		WHERE p.user_id = $1 AND p.tanggal = $2`

	a, err := scanAttendance(q.QueryRow(ctx, query, userID, tanggal))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, attendance.ErrAttendanceNotFound
		}
		return nil, err
	}

	return a, nil
}

// ListByUser implements attendance.AttendanceRepository. Month is "YYYY-MM".
func (r *attendanceRepositoryImpl) ListByUser(ctx context.Context, userID int64, month string) ([]*attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + presensiColumns + `
		FROM presensi p
		JOIN users u ON u.id = p.user_id
		WHERE p.user_id = $1 AND to_char(p.tanggal, 'YYYY-MM') = $2
		ORDER BY p.tanggal DESC`

	rows, err := q.Query(ctx, query, userID, month)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectAttendance(rows)
}

// ListByDate implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) ListByDate(ctx context.Context, tanggal string) ([]*attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + presensiColumns + `
		FROM presensi p
		JOIN users u ON u.id = p.user_id
		WHERE p.tanggal = $1
		ORDER BY u.nama ASC`

	rows, err := q.Query(ctx, query, tanggal)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectAttendance(rows)
}

// ListByDateRange implements attendance.AttendanceRepository. Both bounds
// are inclusive.
func (r *attendanceRepositoryImpl) ListByDateRange(ctx context.Context, from, to string) ([]*attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + presensiColumns + `
		FROM presensi p
		JOIN users u ON u.id = p.user_id
		WHERE p.tanggal BETWEEN $1 AND $2
		ORDER BY p.tanggal ASC, u.nama ASC`

	rows, err := q.Query(ctx, query, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectAttendance(rows)
}

func collectAttendance(rows pgx.Rows) ([]*attendance.Attendance, error) {
	list := []*attendance.Attendance{}
	for rows.Next() {
		a, err := scanAttendance(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, a)
	}
	return list, rows.Err()
}

// DeleteByMonth implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) DeleteByMonth(ctx context.Context, month string) (int64, error) {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM presensi WHERE to_char(tanggal, 'YYYY-MM') = $1`, month)
	if err != nil {
		return 0, err
	}

	return tag.RowsAffected(), nil
}
