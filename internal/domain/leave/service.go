package leave

import "context"

type Service interface {
	Create(ctx context.Context, req *CreateLeaveRequest) (*LeaveResponse, error)
	GetByID(ctx context.Context, id string) (*LeaveResponse, error)
	List(ctx context.Context, filter *LeaveFilter) (*ListLeavesResponse, error)
	// UpdateStatus resolves a pending request. Approval charges the
	// employee's leave balance and flips their status to on-leave when
	// today falls inside the approved window. Resolved requests are
	// final.
	UpdateStatus(ctx context.Context, req *UpdateLeaveStatusRequest) (*LeaveResponse, error)
}
