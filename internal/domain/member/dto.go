package member

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/staffpoint/hr-backend-go/internal/pkg/validator"
)

type RegisterMemberRequest struct {
	FullName string `json:"full_name"`
	Phone    string `json:"phone"`
	ChatID   *int64 `json:"chat_id,omitempty"`
}

func (r *RegisterMemberRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name is required",
		})
	}

	if !validator.IsValidPhoneNumber(r.Phone) {
		errs = append(errs, validator.ValidationError{
			Field:   "phone",
			Message: "phone must be a valid phone number",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ApproveMemberRequest promotes a registration to an employee record.
// Name and phone come from the queued registration; the admin fills
// in the employment details here.
type ApproveMemberRequest struct {
	ID             string  `json:"-"`
	JoiningDate    *string `json:"joining_date,omitempty"` // defaults to today
	EmploymentType string  `json:"employment_type"`
	WorkRate       string  `json:"work_rate"`
	Position       *string `json:"position,omitempty"`
	Department     *string `json:"department,omitempty"`
	Shift          string  `json:"shift"`
	WorkStart      *string `json:"work_start,omitempty"`
	WorkEnd        *string `json:"work_end,omitempty"`
	AllowedLeaves  *int    `json:"allowed_leaves,omitempty"`
}

func (r *ApproveMemberRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id must be a valid UUID",
		})
	}

	if r.JoiningDate != nil && *r.JoiningDate != "" {
		if _, valid := validator.IsValidDate(*r.JoiningDate); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "joining_date",
				Message: "joining_date must be in YYYY-MM-DD format",
			})
		}
	}

	validTypes := []string{"hourly", "daily", "weekly"}
	if !validator.IsInSlice(strings.ToLower(r.EmploymentType), validTypes) {
		errs = append(errs, validator.ValidationError{
			Field:   "employment_type",
			Message: "employment_type must be one of: hourly, daily, weekly",
		})
	}

	if rate, err := decimal.NewFromString(r.WorkRate); err != nil {
		errs = append(errs, validator.ValidationError{
			Field:   "work_rate",
			Message: "work_rate must be a valid number",
		})
	} else if rate.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "work_rate",
			Message: "work_rate must not be negative",
		})
	}

	validShifts := []string{"morning", "evening", "night", "custom"}
	if !validator.IsInSlice(strings.ToLower(r.Shift), validShifts) {
		errs = append(errs, validator.ValidationError{
			Field:   "shift",
			Message: "shift must be one of: morning, evening, night, custom",
		})
	}

	if r.WorkStart != nil && *r.WorkStart != "" && !validator.IsValidTimeOfDay(*r.WorkStart) {
		errs = append(errs, validator.ValidationError{
			Field:   "work_start",
			Message: "work_start must be in HH:MM format",
		})
	}
	if r.WorkEnd != nil && *r.WorkEnd != "" && !validator.IsValidTimeOfDay(*r.WorkEnd) {
		errs = append(errs, validator.ValidationError{
			Field:   "work_end",
			Message: "work_end must be in HH:MM format",
		})
	}

	if r.AllowedLeaves != nil && *r.AllowedLeaves < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "allowed_leaves",
			Message: "allowed_leaves must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type MemberResponse struct {
	ID        string `json:"id"`
	FullName  string `json:"full_name"`
	Phone     string `json:"phone"`
	CreatedAt string `json:"created_at"`
}
