package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/anandamid/presensi-backend-go/internal/domain/leave"
	"github.com/anandamid/presensi-backend-go/internal/pkg/database"
	"github.com/anandamid/presensi-backend-go/internal/pkg/shift"
)

type leaveRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRepository(db *database.DB) leave.LeaveRepository {
	return &leaveRepositoryImpl{db: db}
}

const izinColumns = `
	i.id, i.user_id, u.nama,
	to_char(i.tanggal_mulai, 'YYYY-MM-DD'), i.jam_mulai,
	to_char(i.tanggal_selesai, 'YYYY-MM-DD'), i.jam_selesai,
	i.alasan, i.status, i.foto_bukti, i.created_at, i.updated_at`

func scanLeave(row pgx.Row) (*leave.Leave, error) {
	var l leave.Leave
	var jamMulai, jamSelesai, status string

	err := row.Scan(
		&l.ID, &l.UserID, &l.Nama,
		&l.TanggalMulai, &jamMulai,
		&l.TanggalSelesai, &jamSelesai,
		&l.Alasan, &status, &l.FotoBuktiPath, &l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if l.JamMulai, err = shift.ParseClock(jamMulai); err != nil {
		return nil, err
	}
	if l.JamSelesai, err = shift.ParseClock(jamSelesai); err != nil {
		return nil, err
	}
	l.Status = leave.Status(status)

	return &l, nil
}

// Create implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) Create(ctx context.Context, l *leave.Leave) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO izin_ganti_hari (
			user_id, tanggal_mulai, jam_mulai, tanggal_selesai, jam_selesai,
			alasan, status, foto_bukti
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at`

	return q.QueryRow(ctx, query,
		l.UserID,
		l.TanggalMulai,
		l.JamMulai.String(),
		l.TanggalSelesai,
		l.JamSelesai.String(),
		l.Alasan,
		string(l.Status),
		l.FotoBuktiPath,
	).Scan(&l.ID, &l.CreatedAt, &l.UpdatedAt)
}

// GetByID implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) GetByID(ctx context.Context, id int64) (*leave.Leave, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + izinColumns + `
		FROM izin_ganti_hari i
		JOIN users u ON u.id = i.user_id
		WHERE i.id = $1`

	l, err := scanLeave(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, leave.ErrLeaveNotFound
		}
		return nil, err
	}

	return l, nil
}

// ListByUser implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) ListByUser(ctx context.Context, userID int64) ([]*leave.Leave, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + izinColumns + `
		FROM izin_ganti_hari i
		JOIN users u ON u.id = i.user_id
		WHERE i.user_id = $1
		ORDER BY i.created_at DESC`

	rows, err := q.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectLeaves(rows)
}

// ListAll implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) ListAll(ctx context.Context, status *leave.Status) ([]*leave.Leave, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + izinColumns + `
		FROM izin_ganti_hari i
		JOIN users u ON u.id = i.user_id
		WHERE ($1::text IS NULL OR i.status = $1)
		ORDER BY i.created_at DESC`

	var arg *string
	if status != nil {
		s := string(*status)
		arg = &s
	}

	rows, err := q.Query(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectLeaves(rows)
}

func collectLeaves(rows pgx.Rows) ([]*leave.Leave, error) {
	list := []*leave.Leave{}
	for rows.Next() {
		l, err := scanLeave(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, l)
	}
	return list, rows.Err()
}

// UpdateStatus implements leave.LeaveRepository. Only pending requests can
// be decided.
func (r *leaveRepositoryImpl) UpdateStatus(ctx context.Context, id int64, status leave.Status) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE izin_ganti_hari
		SET status = $1, updated_at = NOW()
		WHERE id = $2 AND status = 'PENDING'`

	tag, err := q.Exec(ctx, query, string(status), id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		// Distinguish a missing row from an already decided one.
		var exists bool
		if err := q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM izin_ganti_hari WHERE id = $1)`, id).Scan(&exists); err != nil {
			return err
		}
		if !exists {
			return leave.ErrLeaveNotFound
		}
		return leave.ErrLeaveAlreadyDecided
	}

	return nil
}

// HasApprovedLeave implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) HasApprovedLeave(ctx context.Context, userID int64, tanggal string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS(
			SELECT 1 FROM izin_ganti_hari
			WHERE user_id = $1
			  AND status = 'APPROVED'
			  AND $2::date BETWEEN tanggal_mulai AND tanggal_selesai
		)`

	var exists bool
	if err := q.QueryRow(ctx, query, userID, tanggal).Scan(&exists); err != nil {
		return false, err
	}

	return exists, nil
}
