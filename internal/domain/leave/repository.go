package leave

import "context"

type LeaveRepository interface {
	Create(ctx context.Context, l *Leave) error
	GetByID(ctx context.Context, id int64) (*Leave, error)
	ListByUser(ctx context.Context, userID int64) ([]*Leave, error)
	ListAll(ctx context.Context, status *Status) ([]*Leave, error)
	UpdateStatus(ctx context.Context, id int64, status Status) error

	// HasApprovedLeave reports whether the user has an approved request
	// whose date span covers the given civil date.
	HasApprovedLeave(ctx context.Context, userID int64, tanggal string) (bool, error)
}
