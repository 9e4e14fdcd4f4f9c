package leave

import "errors"

var (
	ErrLeaveRequestNotFound = errors.New("leave request not found")
	ErrAlreadyResolved      = errors.New("leave request already approved or rejected")
	ErrInvalidPeriod        = errors.New("end date must not be before start date")
	ErrOverlappingRequest   = errors.New("an overlapping leave request already exists")
	ErrInsufficientBalance  = errors.New("not enough remaining leave balance")
)
