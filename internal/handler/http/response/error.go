package response

import (
	"errors"
	"net/http"

	"github.com/staffpoint/hr-backend-go/internal/domain/attendance"
	"github.com/staffpoint/hr-backend-go/internal/domain/auth"
	"github.com/staffpoint/hr-backend-go/internal/domain/employee"
	"github.com/staffpoint/hr-backend-go/internal/domain/holiday"
	"github.com/staffpoint/hr-backend-go/internal/domain/leave"
	"github.com/staffpoint/hr-backend-go/internal/domain/member"
	"github.com/staffpoint/hr-backend-go/internal/domain/user"
	"github.com/staffpoint/hr-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid email or password")
	case errors.Is(err, auth.ErrInvalidRefreshToken):
		Unauthorized(w, "Invalid or revoked refresh token")
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, "Email already registered")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrPhoneExists):
		Conflict(w, "Phone number already registered")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrAlreadyClockedIn):
		Conflict(w, "Already clocked in today")
	case errors.Is(err, attendance.ErrAlreadyClockedOut):
		Conflict(w, "Already clocked out today")
	case errors.Is(err, attendance.ErrNotClockedIn):
		BadRequest(w, "Not clocked in yet today", nil)
	case errors.Is(err, attendance.ErrHolidayToday):
		BadRequest(w, "Attendance is closed on a holiday", nil)
	case errors.Is(err, attendance.ErrOnLeaveToday):
		BadRequest(w, "Employee is on approved leave today", nil)

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrAlreadyResolved):
		Conflict(w, "Leave request already approved or rejected")
	case errors.Is(err, leave.ErrInvalidPeriod):
		BadRequest(w, "End date must not be before start date", nil)
	case errors.Is(err, leave.ErrOverlappingRequest):
		Conflict(w, "An overlapping leave request already exists")
	case errors.Is(err, leave.ErrInsufficientBalance):
		BadRequest(w, "Not enough remaining leave balance", nil)

	// Holiday domain errors
	case errors.Is(err, holiday.ErrHolidayNotFound):
		NotFound(w, "Holiday not found")
	case errors.Is(err, holiday.ErrHolidayExists):
		Conflict(w, "A holiday already exists on that date")

	// Member domain errors
	case errors.Is(err, member.ErrMemberNotFound):
		NotFound(w, "Pending member not found")
	case errors.Is(err, member.ErrPhoneAlreadyQueued):
		Conflict(w, "Phone number already awaiting approval")
	case errors.Is(err, member.ErrPhoneAlreadyEmployed):
		Conflict(w, "Phone number belongs to an existing employee")

	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
