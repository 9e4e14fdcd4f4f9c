package attendance

import (
	"time"

	"github.com/shopspring/decimal"
)

type Attendance struct {
	ID         string
	EmployeeID string
	Date       time.Time // date only, midnight UTC
	SignIn     *time.Time
	SignOut    *time.Time
	Status     Status
	TotalHours *decimal.Decimal // filled on sign-out
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type Status string

const (
	StatusPresent Status = "present"
	StatusLate    Status = "late"
	StatusAbsent  Status = "absent"
	StatusOnLeave Status = "on-leave"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPresent, StatusLate, StatusAbsent, StatusOnLeave:
		return true
	}
	return false
}
