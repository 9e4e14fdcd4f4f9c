package attendance

import "errors"

var (
	ErrAttendanceNotFound = errors.New("attendance record not found")
	ErrAlreadyClockedIn   = errors.New("already clocked in today")
	ErrAlreadyClockedOut  = errors.New("already clocked out today")
	ErrNotClockedIn       = errors.New("not clocked in yet today")
	ErrHolidayToday       = errors.New("attendance is closed on a holiday")
	ErrOnLeaveToday       = errors.New("employee is on approved leave today")
)
