package leave

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestTotalDays(t *testing.T) {
	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  int
	}{
		{"monday to friday is five days", date(2025, 1, 6), date(2025, 1, 10), 5},
		{"single day is one day", date(2025, 1, 6), date(2025, 1, 6), 1},
		{"across month boundary", date(2025, 1, 30), date(2025, 2, 2), 4},
		{"end before start is zero", date(2025, 1, 10), date(2025, 1, 6), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TotalDays(tt.start, tt.end))
		})
	}
}

func TestActiveOn(t *testing.T) {
	req := LeaveRequest{
		EmployeeID: "emp-1",
		StartDate:  date(2025, 1, 6),
		EndDate:    date(2025, 1, 10),
		Status:     StatusApproved,
	}

	assert.True(t, req.ActiveOn(date(2025, 1, 6)), "start date is inside the window")
	assert.True(t, req.ActiveOn(date(2025, 1, 8)))
	assert.True(t, req.ActiveOn(date(2025, 1, 10)), "end date is inclusive")
	assert.False(t, req.ActiveOn(date(2025, 1, 5)))
	assert.False(t, req.ActiveOn(date(2025, 1, 11)))

	pending := req
	pending.Status = StatusPending
	assert.False(t, pending.ActiveOn(date(2025, 1, 8)), "pending requests do not count")

	rejected := req
	rejected.Status = StatusRejected
	assert.False(t, rejected.ActiveOn(date(2025, 1, 8)))
}

func TestOnLeaveCount(t *testing.T) {
	requests := []LeaveRequest{
		{EmployeeID: "emp-1", StartDate: date(2025, 1, 6), EndDate: date(2025, 1, 10), Status: StatusApproved},
		{EmployeeID: "emp-1", StartDate: date(2025, 1, 8), EndDate: date(2025, 1, 9), Status: StatusApproved},
		{EmployeeID: "emp-2", StartDate: date(2025, 1, 8), EndDate: date(2025, 1, 8), Status: StatusApproved},
		{EmployeeID: "emp-3", StartDate: date(2025, 1, 8), EndDate: date(2025, 1, 8), Status: StatusPending},
	}

	assert.Equal(t, 2, OnLeaveCount(requests, date(2025, 1, 8)), "overlapping requests from one employee count once")
	assert.Equal(t, 1, OnLeaveCount(requests, date(2025, 1, 6)))
	assert.Equal(t, 0, OnLeaveCount(requests, date(2025, 1, 20)))
	assert.Equal(t, 0, OnLeaveCount(nil, date(2025, 1, 8)))
}

func TestAbsentCount(t *testing.T) {
	assert.Equal(t, int64(3), AbsentCount(10, 5, 2))
	assert.Equal(t, int64(0), AbsentCount(10, 10, 0))
	assert.Equal(t, int64(0), AbsentCount(10, 9, 3), "residual is clamped at zero")
}
