package leave

import "time"

type LeaveRequest struct {
	ID         string
	EmployeeID string
	LeaveType  Type
	StartDate  time.Time // date only, midnight UTC
	EndDate    time.Time // inclusive
	Reason     *string
	Status     Status
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type Type string

const (
	TypePlanned Type = "planned"
	TypeHappy   Type = "happy"
	TypeMedical Type = "medical"
)

func (t Type) Valid() bool {
	switch t {
	case TypePlanned, TypeHappy, TypeMedical:
		return true
	}
	return false
}

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// Terminal reports whether the request can no longer change state.
// Approval and rejection are final; there is no un-approve.
func (s Status) Terminal() bool {
	return s == StatusApproved || s == StatusRejected
}
