package attendance

import "context"

type Service interface {
	ClockIn(ctx context.Context, req *ClockInRequest) (*AttendanceResponse, error)
	ClockOut(ctx context.Context, req *ClockOutRequest) (*AttendanceResponse, error)
	Update(ctx context.Context, req *UpdateAttendanceRequest) (*AttendanceResponse, error)
	List(ctx context.Context, filter *AttendanceFilter) (*ListAttendanceResponse, error)
	// TodayForEmployee returns today's record, or nil when the
	// employee has not clocked in and no record exists yet.
	TodayForEmployee(ctx context.Context, employeeID string) (*AttendanceResponse, error)
}
