package attendance

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, att *Attendance) error
	GetByID(ctx context.Context, id string) (*Attendance, error)
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*Attendance, error)
	Update(ctx context.Context, att *Attendance) error
	List(ctx context.Context, filter *AttendanceFilter) ([]Attendance, int64, error)
	// CountByStatusOnDate returns per-status record counts for one day.
	CountByStatusOnDate(ctx context.Context, date time.Time) (map[Status]int64, error)
}
