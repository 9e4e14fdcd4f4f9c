package member

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/staffpoint/hr-backend-go/internal/domain/employee"
	"github.com/staffpoint/hr-backend-go/internal/domain/member"
	"github.com/staffpoint/hr-backend-go/internal/pkg/database"
	"github.com/staffpoint/hr-backend-go/internal/repository/postgresql"
	employeeservice "github.com/staffpoint/hr-backend-go/internal/service/employee"
)

const defaultAllowedLeaves = 12

type ServiceImpl struct {
	db           *database.DB
	memberRepo   member.Repository
	employeeRepo employee.Repository
}

func NewMemberService(db *database.DB, memberRepo member.Repository, employeeRepo employee.Repository) member.Service {
	return &ServiceImpl{
		db:           db,
		memberRepo:   memberRepo,
		employeeRepo: employeeRepo,
	}
}

// Register implements member.Service.
func (s *ServiceImpl) Register(ctx context.Context, req *member.RegisterMemberRequest) (*member.MemberResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	phone := employeeservice.NormalizePhone(req.Phone)

	// a phone already on the payroll cannot queue again
	if _, err := s.employeeRepo.GetByPhone(ctx, phone); err == nil {
		return nil, member.ErrPhoneAlreadyEmployed
	} else if !errors.Is(err, employee.ErrEmployeeNotFound) {
		return nil, err
	}

	m := &member.NewMember{
		FullName: strings.TrimSpace(req.FullName),
		Phone:    phone,
		ChatID:   req.ChatID,
	}

	if err := s.memberRepo.Create(ctx, m); err != nil {
		return nil, err
	}

	return toResponse(m), nil
}

// List implements member.Service.
func (s *ServiceImpl) List(ctx context.Context) ([]member.MemberResponse, error) {
	members, err := s.memberRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]member.MemberResponse, 0, len(members))
	for i := range members {
		responses = append(responses, *toResponse(&members[i]))
	}

	return responses, nil
}

// Approve implements member.Service. The registration row is deleted
// in the same transaction that inserts the employee, so the queue and
// the payroll can never both hold the same person.
func (s *ServiceImpl) Approve(ctx context.Context, req *member.ApproveMemberRequest) (*employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	m, err := s.memberRepo.GetByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	joiningDate := time.Now()
	if req.JoiningDate != nil && *req.JoiningDate != "" {
		joiningDate, _ = time.Parse("2006-01-02", *req.JoiningDate)
	}
	joiningDate = time.Date(joiningDate.Year(), joiningDate.Month(), joiningDate.Day(), 0, 0, 0, 0, time.UTC)

	rate, _ := decimal.NewFromString(req.WorkRate)

	allowedLeaves := defaultAllowedLeaves
	if req.AllowedLeaves != nil {
		allowedLeaves = *req.AllowedLeaves
	}

	emp := &employee.Employee{
		FullName:       m.FullName,
		JoiningDate:    joiningDate,
		EmploymentType: employee.EmploymentType(strings.ToLower(req.EmploymentType)),
		WorkRate:       rate,
		Position:       req.Position,
		Department:     req.Department,
		Shift:          employee.ShiftType(strings.ToLower(req.Shift)),
		WorkStart:      req.WorkStart,
		WorkEnd:        req.WorkEnd,
		Phone:          m.Phone,
		AllowedLeaves:  allowedLeaves,
		Status:         employee.StatusActive,
	}

	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		if err := s.employeeRepo.Create(txCtx, emp); err != nil {
			return err
		}
		return s.memberRepo.Delete(txCtx, m.ID)
	})
	if err != nil {
		return nil, err
	}

	return &employee.EmployeeResponse{
		ID:             emp.ID,
		FullName:       emp.FullName,
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
		AllowedLeaves:  emp.AllowedLeaves,
		TakenLeaves:    emp.TakenLeaves,
		Status:         string(emp.Status),
		CreatedAt:      emp.CreatedAt.Format(time.RFC3339),
	}, nil
}

// Reject implements member.Service.
func (s *ServiceImpl) Reject(ctx context.Context, id string) error {
	return s.memberRepo.Delete(ctx, id)
}

func toResponse(m *member.NewMember) *member.MemberResponse {
	return &member.MemberResponse{
		ID:        m.ID,
		FullName:  m.FullName,
		Phone:     m.Phone,
		CreatedAt: m.CreatedAt.Format(time.RFC3339),
	}
}
