package employee

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/staffpoint/hr-backend-go/internal/domain/employee"
)

const defaultAllowedLeaves = 12

type ServiceImpl struct {
	employeeRepo employee.Repository
}

func NewEmployeeService(employeeRepo employee.Repository) employee.Service {
	return &ServiceImpl{employeeRepo: employeeRepo}
}

// NormalizePhone strips formatting so lookups match regardless of how
// the number was typed.
func NormalizePhone(phone string) string {
	phone = strings.ReplaceAll(phone, " ", "")
	phone = strings.ReplaceAll(phone, "-", "")
	return strings.TrimPrefix(phone, "+")
}

func parseDatePtr(s *string) *time.Time {
	if s == nil || *s == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", *s)
	if err != nil {
		return nil
	}
	return &t
}

// Create implements employee.Service.
func (s *ServiceImpl) Create(ctx context.Context, req *employee.CreateEmployeeRequest) (*employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	joiningDate, _ := time.Parse("2006-01-02", req.JoiningDate)
	rate, _ := decimal.NewFromString(req.WorkRate)

	allowedLeaves := defaultAllowedLeaves
	if req.AllowedLeaves != nil {
		allowedLeaves = *req.AllowedLeaves
	}

	emp := &employee.Employee{
		FullName:       strings.TrimSpace(req.FullName),
		DOB:            parseDatePtr(req.DOB),
		JoiningDate:    joiningDate,
		EmploymentType: employee.EmploymentType(strings.ToLower(req.EmploymentType)),
		WorkRate:       rate,
		Position:       req.Position,
		Department:     req.Department,
		Shift:          employee.ShiftType(strings.ToLower(req.Shift)),
		WorkStart:      req.WorkStart,
		WorkEnd:        req.WorkEnd,
		Phone:          NormalizePhone(req.Phone),
		IDProofType:    req.IDProofType,
		IDProofNumber:  req.IDProofNumber,
		AllowedLeaves:  allowedLeaves,
		Status:         employee.StatusActive,
	}

	if err := s.employeeRepo.Create(ctx, emp); err != nil {
		return nil, err
	}

	return toResponse(emp), nil
}

// GetByID implements employee.Service.
func (s *ServiceImpl) GetByID(ctx context.Context, id string) (*employee.EmployeeResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toResponse(emp), nil
}

// VerifyByPhone implements employee.Service.
func (s *ServiceImpl) VerifyByPhone(ctx context.Context, phone string) (*employee.EmployeeResponse, error) {
	emp, err := s.employeeRepo.GetByPhone(ctx, NormalizePhone(phone))
	if err != nil {
		return nil, err
	}
	return toResponse(emp), nil
}

// Update implements employee.Service.
func (s *ServiceImpl) Update(ctx context.Context, req *employee.UpdateEmployeeRequest) (*employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	if req.FullName != nil {
		emp.FullName = strings.TrimSpace(*req.FullName)
	}
	if req.DOB != nil {
		emp.DOB = parseDatePtr(req.DOB)
	}
	if req.JoiningDate != nil && *req.JoiningDate != "" {
		joiningDate, _ := time.Parse("2006-01-02", *req.JoiningDate)
		emp.JoiningDate = joiningDate
	}
	if req.EmploymentType != nil {
		emp.EmploymentType = employee.EmploymentType(strings.ToLower(*req.EmploymentType))
	}
	if req.WorkRate != nil {
		rate, _ := decimal.NewFromString(*req.WorkRate)
		emp.WorkRate = rate
	}
	if req.Position != nil {
		emp.Position = req.Position
	}
	if req.Department != nil {
		emp.Department = req.Department
	}
	if req.Shift != nil {
		emp.Shift = employee.ShiftType(strings.ToLower(*req.Shift))
	}
	if req.WorkStart != nil {
		emp.WorkStart = req.WorkStart
	}
	if req.WorkEnd != nil {
		emp.WorkEnd = req.WorkEnd
	}
	if req.Phone != nil {
		emp.Phone = NormalizePhone(*req.Phone)
	}
	if req.IDProofType != nil {
		emp.IDProofType = req.IDProofType
	}
	if req.IDProofNumber != nil {
		emp.IDProofNumber = req.IDProofNumber
	}
	if req.AllowedLeaves != nil {
		emp.AllowedLeaves = *req.AllowedLeaves
	}
	if req.Status != nil {
		emp.Status = employee.Status(strings.ToLower(*req.Status))
	}

	if err := s.employeeRepo.Update(ctx, emp); err != nil {
		return nil, err
	}

	return toResponse(emp), nil
}

// Delete implements employee.Service.
func (s *ServiceImpl) Delete(ctx context.Context, id string) error {
	return s.employeeRepo.Delete(ctx, id)
}

// List implements employee.Service.
func (s *ServiceImpl) List(ctx context.Context, filter *employee.EmployeeFilter) (*employee.ListEmployeesResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	employees, total, err := s.employeeRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for i := range employees {
		responses = append(responses, *toResponse(&employees[i]))
	}

	totalPages := int((total + int64(filter.Limit) - 1) / int64(filter.Limit))

	return &employee.ListEmployeesResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: totalPages,
		Employees:  responses,
	}, nil
}

func datePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format("2006-01-02")
	return &s
}

func toResponse(emp *employee.Employee) *employee.EmployeeResponse {
	return &employee.EmployeeResponse{
		ID:             emp.ID,
		FullName:       emp.FullName,
		DOB:            datePtrToString(emp.DOB),
		JoiningDate:    emp.JoiningDate.Format("2006-01-02"),
		EmploymentType: string(emp.EmploymentType),
		WorkRate:       emp.WorkRate,
		RateUnit:       emp.EmploymentType.RateUnit(),
		Position:       emp.Position,
		Department:     emp.Department,
		Shift:          string(emp.Shift),
		WorkStart:      emp.WorkStart,
		WorkEnd:        emp.WorkEnd,
		Phone:          emp.Phone,
		IDProofType:    emp.IDProofType,
		IDProofNumber:  emp.IDProofNumber,
		AllowedLeaves:  emp.AllowedLeaves,
		TakenLeaves:    emp.TakenLeaves,
		Status:         string(emp.Status),
		CreatedAt:      emp.CreatedAt.Format(time.RFC3339),
	}
}
