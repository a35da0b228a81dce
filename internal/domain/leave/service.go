package leave

import "context"

type LeaveService interface {
	Submit(ctx context.Context, userID int64, req *SubmitLeaveRequest) (*LeaveResponse, error)
	ListMine(ctx context.Context, userID int64) ([]*LeaveResponse, error)
	ListAll(ctx context.Context, status *Status) ([]*LeaveResponse, error)
	Decide(ctx context.Context, id int64, req *DecideLeaveRequest) (*LeaveResponse, error)
}
