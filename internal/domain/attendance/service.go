package attendance

import "context"

type AttendanceService interface {
	CheckIn(ctx context.Context, userID int64, req *CheckInRequest) (*AttendanceResponse, error)
	CheckOut(ctx context.Context, userID int64, req *CheckOutRequest) (*AttendanceResponse, error)

	// Today returns the caller's record for the current civil date, or nil
	// when they have not checked in yet.
	Today(ctx context.Context, userID int64) (*AttendanceResponse, error)

	// History lists the caller's records for a "YYYY-MM" month.
	History(ctx context.Context, userID int64, month string) ([]*AttendanceResponse, error)

	// ListByDate lists every record for one civil date, admin view.
	ListByDate(ctx context.Context, tanggal string) ([]*AttendanceResponse, error)
}
