package member

import "errors"

var (
	ErrMemberNotFound       = errors.New("pending member not found")
	ErrPhoneAlreadyQueued   = errors.New("phone number already awaiting approval")
	ErrPhoneAlreadyEmployed = errors.New("phone number belongs to an existing employee")
)
