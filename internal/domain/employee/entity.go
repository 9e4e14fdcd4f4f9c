package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID             string
	FullName       string
	DOB            *time.Time
	JoiningDate    time.Time
	EmploymentType EmploymentType
	WorkRate       decimal.Decimal
	Position       *string
	Department     *string
	Shift          ShiftType
	WorkStart      *string // "HH:MM", local time-of-day
	WorkEnd        *string
	Phone          string
	IDProofType    *string
	IDProofNumber  *string
	AllowedLeaves  int
	TakenLeaves    int
	Status         Status
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type EmploymentType string

const (
	EmploymentTypeHourly EmploymentType = "hourly"
	EmploymentTypeDaily  EmploymentType = "daily"
	EmploymentTypeWeekly EmploymentType = "weekly"
)

// RateUnit returns the unit the work rate is expressed in.
func (t EmploymentType) RateUnit() string {
	switch t {
	case EmploymentTypeHourly:
		return "hour"
	case EmploymentTypeDaily:
		return "day"
	case EmploymentTypeWeekly:
		return "week"
	}
	return ""
}

type ShiftType string

const (
	ShiftMorning ShiftType = "morning"
	ShiftEvening ShiftType = "evening"
	ShiftNight   ShiftType = "night"
	ShiftCustom  ShiftType = "custom"
)

type Status string

const (
	StatusActive   Status = "active"
	StatusOnLeave  Status = "on-leave"
	StatusInactive Status = "inactive"
)

// RemainingLeaves returns the unused part of the annual quota.
// taken_leaves exceeding allowed_leaves is not prevented at the storage
// layer, so the result is clamped at zero.
func (e *Employee) RemainingLeaves() int {
	remaining := e.AllowedLeaves - e.TakenLeaves
	if remaining < 0 {
		return 0
	}
	return remaining
}
