package leave

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, req *LeaveRequest) error
	GetByID(ctx context.Context, id string) (*LeaveRequest, error)
	Update(ctx context.Context, req *LeaveRequest) error
	List(ctx context.Context, filter *LeaveFilter) ([]LeaveRequest, int64, error)
	// ListApprovedOn returns all approved requests whose inclusive
	// window contains the given date.
	ListApprovedOn(ctx context.Context, date time.Time) ([]LeaveRequest, error)
	// HasOverlapping reports whether the employee already has a
	// pending or approved request intersecting [start, end].
	HasOverlapping(ctx context.Context, employeeID string, start, end time.Time) (bool, error)
}
