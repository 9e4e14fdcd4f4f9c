package leave

import (
	"context"
	"time"

	"github.com/staffpoint/hr-backend-go/internal/domain/employee"
	"github.com/staffpoint/hr-backend-go/internal/domain/leave"
	"github.com/staffpoint/hr-backend-go/internal/pkg/database"
	"github.com/staffpoint/hr-backend-go/internal/repository/postgresql"
)

type ServiceImpl struct {
	db           *database.DB
	leaveRepo    leave.Repository
	employeeRepo employee.Repository
}

func NewLeaveService(db *database.DB, leaveRepo leave.Repository, employeeRepo employee.Repository) leave.Service {
	return &ServiceImpl{
		db:           db,
		leaveRepo:    leaveRepo,
		employeeRepo: employeeRepo,
	}
}

// Create implements leave.Service.
func (s *ServiceImpl) Create(ctx context.Context, req *leave.CreateLeaveRequest) (*leave.LeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return nil, err
	}

	start, _ := time.Parse("2006-01-02", req.StartDate)
	end, _ := time.Parse("2006-01-02", req.EndDate)
	if end.Before(start) {
		return nil, leave.ErrInvalidPeriod
	}

	if leave.TotalDays(start, end) > emp.RemainingLeaves() {
		return nil, leave.ErrInsufficientBalance
	}

	overlapping, err := s.leaveRepo.HasOverlapping(ctx, emp.ID, start, end)
	if err != nil {
		return nil, err
	}
	if overlapping {
		return nil, leave.ErrOverlappingRequest
	}

	request := &leave.LeaveRequest{
		EmployeeID: emp.ID,
		LeaveType:  leave.Type(req.LeaveType),
		StartDate:  start,
		EndDate:    end,
		Reason:     req.Reason,
		Status:     leave.StatusPending,
	}

	if err := s.leaveRepo.Create(ctx, request); err != nil {
		return nil, err
	}

	return s.toResponse(request, emp.FullName), nil
}

// GetByID implements leave.Service.
func (s *ServiceImpl) GetByID(ctx context.Context, id string) (*leave.LeaveResponse, error) {
	request, err := s.leaveRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, request.EmployeeID)
	if err != nil {
		return nil, err
	}

	return s.toResponse(request, emp.FullName), nil
}

// List implements leave.Service.
func (s *ServiceImpl) List(ctx context.Context, filter *leave.LeaveFilter) (*leave.ListLeavesResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	requests, total, err := s.leaveRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	names := make(map[string]string)
	responses := make([]leave.LeaveResponse, 0, len(requests))
	for i := range requests {
		name, ok := names[requests[i].EmployeeID]
		if !ok {
			emp, err := s.employeeRepo.GetByID(ctx, requests[i].EmployeeID)
			if err != nil {
				return nil, err
			}
			name = emp.FullName
			names[requests[i].EmployeeID] = name
		}
		responses = append(responses, *s.toResponse(&requests[i], name))
	}

	totalPages := int((total + int64(filter.Limit) - 1) / int64(filter.Limit))

	return &leave.ListLeavesResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: totalPages,
		Requests:   responses,
	}, nil
}

// UpdateStatus implements leave.Service. Approval charges the leave
// balance by the request's span and, when today falls inside the
// approved window, marks the employee on-leave. Everything happens in
// one transaction so a failed balance update never leaves an approved
// request behind.
func (s *ServiceImpl) UpdateStatus(ctx context.Context, req *leave.UpdateLeaveStatusRequest) (*leave.LeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	request, err := s.leaveRepo.GetByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}
	if request.Status.Terminal() {
		return nil, leave.ErrAlreadyResolved
	}

	emp, err := s.employeeRepo.GetByID(ctx, request.EmployeeID)
	if err != nil {
		return nil, err
	}

	newStatus := leave.Status(req.Status)

	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		request.Status = newStatus
		if err := s.leaveRepo.Update(txCtx, request); err != nil {
			return err
		}

		if newStatus != leave.StatusApproved {
			return nil
		}

		days := leave.TotalDays(request.StartDate, request.EndDate)
		if err := s.employeeRepo.AddTakenLeaves(txCtx, emp.ID, days); err != nil {
			return err
		}

		if request.ActiveOn(time.Now()) {
			if err := s.employeeRepo.SetStatus(txCtx, emp.ID, employee.StatusOnLeave); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.toResponse(request, emp.FullName), nil
}

func (s *ServiceImpl) toResponse(request *leave.LeaveRequest, employeeName string) *leave.LeaveResponse {
	return &leave.LeaveResponse{
		ID:           request.ID,
		EmployeeID:   request.EmployeeID,
		EmployeeName: employeeName,
		LeaveType:    string(request.LeaveType),
		StartDate:    request.StartDate.Format("2006-01-02"),
		EndDate:      request.EndDate.Format("2006-01-02"),
		TotalDays:    leave.TotalDays(request.StartDate, request.EndDate),
		Reason:       request.Reason,
		Status:       string(request.Status),
		CreatedAt:    request.CreatedAt.Format(time.RFC3339),
	}
}
