package attendance

import "context"

type AttendanceRepository interface {
	// Create inserts a new user-day row. The (user_id, tanggal) pair is
	// unique; a conflicting insert returns ErrAlreadyCheckedIn without
	// touching the existing row.
	Create(ctx context.Context, a *Attendance) error

	// CheckOut closes an open row. It only matches rows whose jam_keluar is
	// still NULL, so a repeated call returns ErrAlreadyCheckedOut and leaves
	// the first check-out untouched.
	CheckOut(ctx context.Context, a *Attendance) error

	GetByUserAndDate(ctx context.Context, userID int64, tanggal string) (*Attendance, error)
	ListByUser(ctx context.Context, userID int64, month string) ([]*Attendance, error)
	ListByDate(ctx context.Context, tanggal string) ([]*Attendance, error)
	ListByDateRange(ctx context.Context, from, to string) ([]*Attendance, error)

	// DeleteByMonth removes every row whose tanggal falls in the given
	// "YYYY-MM" month and returns how many were removed.
	DeleteByMonth(ctx context.Context, month string) (int64, error)
}
