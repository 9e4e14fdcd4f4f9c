package employee

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/staffpoint/hr-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	FullName       string  `json:"full_name"`
	DOB            *string `json:"dob,omitempty"`   // YYYY-MM-DD
	JoiningDate    string  `json:"joining_date"`    // YYYY-MM-DD
	EmploymentType string  `json:"employment_type"` // hourly, daily, weekly
	WorkRate       string  `json:"work_rate"`       // decimal string
	Position       *string `json:"position,omitempty"`
	Department     *string `json:"department,omitempty"`
	Shift          string  `json:"shift"`                // morning, evening, night, custom
	WorkStart      *string `json:"work_start,omitempty"` // HH:MM
	WorkEnd        *string `json:"work_end,omitempty"`   // HH:MM
	Phone          string  `json:"phone"`
	IDProofType    *string `json:"id_proof_type,omitempty"`
	IDProofNumber  *string `json:"id_proof_number,omitempty"`
	AllowedLeaves  *int    `json:"allowed_leaves,omitempty"` // defaults to 12
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name is required",
		})
	}

	if _, valid := validator.IsValidDate(r.JoiningDate); !valid {
		errs = append(errs, validator.ValidationError{
			Field:   "joining_date",
			Message: "joining_date must be in YYYY-MM-DD format",
		})
	}

	if r.DOB != nil && *r.DOB != "" {
		if _, valid := validator.IsValidDate(*r.DOB); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "dob",
				Message: "dob must be in YYYY-MM-DD format",
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

	if !validator.IsValidPhoneNumber(r.Phone) {
		errs = append(errs, validator.ValidationError{
			Field:   "phone",
			Message: "phone must be a valid phone number",
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

type UpdateEmployeeRequest struct {
	ID             string  `json:"-"`
	FullName       *string `json:"full_name,omitempty"`
	DOB            *string `json:"dob,omitempty"`
	JoiningDate    *string `json:"joining_date,omitempty"`
	EmploymentType *string `json:"employment_type,omitempty"`
	WorkRate       *string `json:"work_rate,omitempty"`
	Position       *string `json:"position,omitempty"`
	Department     *string `json:"department,omitempty"`
	Shift          *string `json:"shift,omitempty"`
	WorkStart      *string `json:"work_start,omitempty"`
	WorkEnd        *string `json:"work_end,omitempty"`
	Phone          *string `json:"phone,omitempty"`
	IDProofType    *string `json:"id_proof_type,omitempty"`
	IDProofNumber  *string `json:"id_proof_number,omitempty"`
	AllowedLeaves  *int    `json:"allowed_leaves,omitempty"`
	Status         *string `json:"status,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.FullName != nil && validator.IsEmpty(*r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name must not be empty",
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

	if r.DOB != nil && *r.DOB != "" {
		if _, valid := validator.IsValidDate(*r.DOB); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "dob",
				Message: "dob must be in YYYY-MM-DD format",
			})
		}
	}

	if r.EmploymentType != nil {
		validTypes := []string{"hourly", "daily", "weekly"}
		if !validator.IsInSlice(strings.ToLower(*r.EmploymentType), validTypes) {
			errs = append(errs, validator.ValidationError{
				Field:   "employment_type",
				Message: "employment_type must be one of: hourly, daily, weekly",
			})
		}
	}

	if r.WorkRate != nil {
		if rate, err := decimal.NewFromString(*r.WorkRate); err != nil {
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
	}

	if r.Shift != nil {
		validShifts := []string{"morning", "evening", "night", "custom"}
		if !validator.IsInSlice(strings.ToLower(*r.Shift), validShifts) {
			errs = append(errs, validator.ValidationError{
				Field:   "shift",
				Message: "shift must be one of: morning, evening, night, custom",
			})
		}
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

	if r.Phone != nil && !validator.IsValidPhoneNumber(*r.Phone) {
		errs = append(errs, validator.ValidationError{
			Field:   "phone",
			Message: "phone must be a valid phone number",
		})
	}

	if r.Status != nil {
		validStatuses := []string{"active", "on-leave", "inactive"}
		if !validator.IsInSlice(strings.ToLower(*r.Status), validStatuses) {
			errs = append(errs, validator.ValidationError{
				Field:   "status",
				Message: "status must be one of: active, on-leave, inactive",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type EmployeeResponse struct {
	ID             string          `json:"id"`
	FullName       string          `json:"full_name"`
	DOB            *string         `json:"dob,omitempty"`
	JoiningDate    string          `json:"joining_date"`
	EmploymentType string          `json:"employment_type"`
	WorkRate       decimal.Decimal `json:"work_rate"`
	RateUnit       string          `json:"rate_unit"`
	Position       *string         `json:"position,omitempty"`
	Department     *string         `json:"department,omitempty"`
	Shift          string          `json:"shift"`
	WorkStart      *string         `json:"work_start,omitempty"`
	WorkEnd        *string         `json:"work_end,omitempty"`
	Phone          string          `json:"phone"`
	IDProofType    *string         `json:"id_proof_type,omitempty"`
	IDProofNumber  *string         `json:"id_proof_number,omitempty"`
	AllowedLeaves  int             `json:"allowed_leaves"`
	TakenLeaves    int             `json:"taken_leaves"`
	Status         string          `json:"status"`
	CreatedAt      string          `json:"created_at"`
}

type EmployeeFilter struct {
	Search         *string `json:"search,omitempty"` // matches name, department, position
	Department     *string `json:"department,omitempty"`
	Status         *string `json:"status,omitempty"`
	EmploymentType *string `json:"employment_type,omitempty"`

	Page  int `json:"page"`
	Limit int `json:"limit"`
}

func (f *EmployeeFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Page < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "page",
			Message: "page must be a positive number",
		})
	}
	if f.Page == 0 {
		f.Page = 1
	}

	if f.Limit < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must be a positive number",
		})
	}
	if f.Limit == 0 {
		f.Limit = 20
	}
	if f.Limit > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must not exceed 100",
		})
	}

	if f.Status != nil {
		validStatuses := []string{"active", "on-leave", "inactive"}
		if !validator.IsInSlice(*f.Status, validStatuses) {
			errs = append(errs, validator.ValidationError{
				Field:   "status",
				Message: "status must be one of: active, on-leave, inactive",
			})
		}
	}

	if f.EmploymentType != nil {
		validTypes := []string{"hourly", "daily", "weekly"}
		if !validator.IsInSlice(*f.EmploymentType, validTypes) {
			errs = append(errs, validator.ValidationError{
				Field:   "employment_type",
				Message: "employment_type must be one of: hourly, daily, weekly",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ListEmployeesResponse struct {
	TotalCount int64              `json:"total_count"`
	Page       int                `json:"page"`
	Limit      int                `json:"limit"`
	TotalPages int                `json:"total_pages"`
	Employees  []EmployeeResponse `json:"employees"`
}
