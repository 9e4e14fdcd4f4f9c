package dashboard

import (
	"context"
	"time"

	"github.com/staffpoint/hr-backend-go/internal/domain/attendance"
	"github.com/staffpoint/hr-backend-go/internal/domain/dashboard"
	"github.com/staffpoint/hr-backend-go/internal/domain/leave"
)

type ServiceImpl struct {
	dashboardRepo  dashboard.Repository
	attendanceRepo attendance.Repository
	leaveRepo      leave.Repository
}

func NewDashboardService(
	dashboardRepo dashboard.Repository,
	attendanceRepo attendance.Repository,
	leaveRepo leave.Repository,
) dashboard.Service {
	return &ServiceImpl{
		dashboardRepo:  dashboardRepo,
		attendanceRepo: attendanceRepo,
		leaveRepo:      leaveRepo,
	}
}

// Stats implements dashboard.Service. Present includes late arrivals.
// On-leave is counted from approved leave windows, deduplicated per
// employee, rather than from attendance rows, which may not exist yet
// for employees who never clocked in. Absent is the residual of the
// active headcount.
func (s *ServiceImpl) Stats(ctx context.Context) (*dashboard.Stats, error) {
	now := time.Now()
	date := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	total, err := s.dashboardRepo.TotalEmployees(ctx)
	if err != nil {
		return nil, err
	}
	active, err := s.dashboardRepo.ActiveEmployees(ctx)
	if err != nil {
		return nil, err
	}
	pendingLeaves, err := s.dashboardRepo.PendingLeaves(ctx)
	if err != nil {
		return nil, err
	}
	pendingMembers, err := s.dashboardRepo.PendingMembers(ctx)
	if err != nil {
		return nil, err
	}

	counts, err := s.attendanceRepo.CountByStatusOnDate(ctx, date)
	if err != nil {
		return nil, err
	}

	approved, err := s.leaveRepo.ListApprovedOn(ctx, date)
	if err != nil {
		return nil, err
	}
	onLeave := int64(leave.OnLeaveCount(approved, date))

	present := counts[attendance.StatusPresent] + counts[attendance.StatusLate]

	return &dashboard.Stats{
		TotalEmployees:  total,
		ActiveEmployees: active,
		PresentToday:    present,
		LateToday:       counts[attendance.StatusLate],
		OnLeaveToday:    onLeave,
		AbsentToday:     leave.AbsentCount(active, present, onLeave),
		PendingLeaves:   pendingLeaves,
		PendingMembers:  pendingMembers,
	}, nil
}
