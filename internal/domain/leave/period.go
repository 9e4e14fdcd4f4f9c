package leave

import "time"

// TotalDays counts the calendar days a request spans. Both endpoints
// are inclusive: a request from Monday to Friday is five days, and a
// single-day request is one.
func TotalDays(start, end time.Time) int {
	s := truncateToDay(start)
	e := truncateToDay(end)
	if e.Before(s) {
		return 0
	}
	return int(e.Sub(s).Hours()/24) + 1
}

// ActiveOn reports whether the request keeps the employee away on the
// given date: it must be approved and the date must fall inside the
// inclusive [start, end] window.
func (r *LeaveRequest) ActiveOn(date time.Time) bool {
	if r.Status != StatusApproved {
		return false
	}
	d := truncateToDay(date)
	return !d.Before(truncateToDay(r.StartDate)) && !d.After(truncateToDay(r.EndDate))
}

// OnLeaveCount counts employees away on the given date. Overlapping
// approved requests from the same employee count once.
func OnLeaveCount(requests []LeaveRequest, date time.Time) int {
	seen := make(map[string]struct{})
	for i := range requests {
		if !requests[i].ActiveOn(date) {
			continue
		}
		seen[requests[i].EmployeeID] = struct{}{}
	}
	return len(seen)
}

// AbsentCount derives the number of absent employees as the residual
// of the active headcount after present and on-leave are accounted
// for, clamped at zero. Absence is not stored per employee until the
// end-of-day sweep runs, so intraday dashboards compute it this way.
func AbsentCount(activeEmployees, present, onLeave int64) int64 {
	absent := activeEmployees - present - onLeave
	if absent < 0 {
		return 0
	}
	return absent
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
