package attendance

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/staffpoint/hr-backend-go/internal/domain/attendance"
	"github.com/staffpoint/hr-backend-go/internal/domain/employee"
	"github.com/staffpoint/hr-backend-go/internal/domain/holiday"
	"github.com/staffpoint/hr-backend-go/internal/domain/payroll"
	"github.com/staffpoint/hr-backend-go/internal/pkg/database"
)

type ServiceImpl struct {
	db             *database.DB
	attendanceRepo attendance.Repository
	employeeRepo   employee.Repository
	holidayRepo    holiday.Repository
}

func NewAttendanceService(
	db *database.DB,
	attendanceRepo attendance.Repository,
	employeeRepo employee.Repository,
	holidayRepo holiday.Repository,
) attendance.Service {
	return &ServiceImpl{
		db:             db,
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		holidayRepo:    holidayRepo,
	}
}

func today(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

func timePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.RFC3339)
	return &s
}

// guardWorkingDay rejects attendance actions on company holidays.
func (s *ServiceImpl) guardWorkingDay(ctx context.Context, date time.Time) error {
	_, err := s.holidayRepo.GetByDate(ctx, date)
	if err == nil {
		return attendance.ErrHolidayToday
	}
	if errors.Is(err, holiday.ErrHolidayNotFound) {
		return nil
	}
	return fmt.Errorf("failed to check holiday calendar: %w", err)
}

// ClockIn implements attendance.Service.
func (s *ServiceImpl) ClockIn(ctx context.Context, req *attendance.ClockInRequest) (*attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	now := time.Now()
	date := today(now)

	if err := s.guardWorkingDay(ctx, date); err != nil {
		return nil, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return nil, err
	}
	if emp.Status == employee.StatusOnLeave {
		return nil, attendance.ErrOnLeaveToday
	}

	existing, err := s.attendanceRepo.GetByEmployeeAndDate(ctx, emp.ID, date)
	if err != nil && !errors.Is(err, attendance.ErrAttendanceNotFound) {
		return nil, err
	}
	if existing != nil {
		if existing.Status == attendance.StatusOnLeave {
			return nil, attendance.ErrOnLeaveToday
		}
		return nil, attendance.ErrAlreadyClockedIn
	}

	var shiftStart *attendance.TimeOfDay
	if emp.WorkStart != nil {
		tod, err := attendance.ParseTimeOfDay(*emp.WorkStart)
		if err != nil {
			return nil, fmt.Errorf("employee has invalid work_start on file: %w", err)
		}
		shiftStart = &tod
	}

	att := &attendance.Attendance{
		EmployeeID: emp.ID,
		Date:       date,
		SignIn:     &now,
		Status:     attendance.Classify(&now, shiftStart, ""),
	}

	if err := s.attendanceRepo.Create(ctx, att); err != nil {
		return nil, err
	}

	return s.toResponse(att, emp), nil
}

// ClockOut implements attendance.Service.
func (s *ServiceImpl) ClockOut(ctx context.Context, req *attendance.ClockOutRequest) (*attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	now := time.Now()
	date := today(now)

	if err := s.guardWorkingDay(ctx, date); err != nil {
		return nil, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return nil, err
	}

	att, err := s.attendanceRepo.GetByEmployeeAndDate(ctx, emp.ID, date)
	if err != nil {
		if errors.Is(err, attendance.ErrAttendanceNotFound) {
			return nil, attendance.ErrNotClockedIn
		}
		return nil, err
	}
	if att.SignIn == nil {
		return nil, attendance.ErrNotClockedIn
	}
	if att.SignOut != nil {
		return nil, attendance.ErrAlreadyClockedOut
	}

	att.SignOut = &now
	hours := payroll.WorkedHours(att.SignIn, att.SignOut)
	att.TotalHours = &hours

	if err := s.attendanceRepo.Update(ctx, att); err != nil {
		return nil, err
	}

	return s.toResponse(att, emp), nil
}

// Update implements attendance.Service.
func (s *ServiceImpl) Update(ctx context.Context, req *attendance.UpdateAttendanceRequest) (*attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	att, err := s.attendanceRepo.GetByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	if req.SignIn != nil {
		t, err := time.Parse(time.RFC3339, *req.SignIn)
		if err != nil {
			return nil, fmt.Errorf("invalid sign_in timestamp: %w", err)
		}
		att.SignIn = &t
	}
	if req.SignOut != nil {
		t, err := time.Parse(time.RFC3339, *req.SignOut)
		if err != nil {
			return nil, fmt.Errorf("invalid sign_out timestamp: %w", err)
		}
		att.SignOut = &t
	}
	if req.Status != nil {
		att.Status = attendance.Status(*req.Status)
	}

	if att.SignIn != nil && att.SignOut != nil {
		hours := payroll.WorkedHours(att.SignIn, att.SignOut)
		att.TotalHours = &hours
	}

	if err := s.attendanceRepo.Update(ctx, att); err != nil {
		return nil, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, att.EmployeeID)
	if err != nil {
		return nil, err
	}

	return s.toResponse(att, emp), nil
}

// List implements attendance.Service.
func (s *ServiceImpl) List(ctx context.Context, filter *attendance.AttendanceFilter) (*attendance.ListAttendanceResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	records, total, err := s.attendanceRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	// one lookup per distinct employee in the page
	employees := make(map[string]*employee.Employee)
	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for i := range records {
		emp, ok := employees[records[i].EmployeeID]
		if !ok {
			emp, err = s.employeeRepo.GetByID(ctx, records[i].EmployeeID)
			if err != nil {
				return nil, err
			}
			employees[records[i].EmployeeID] = emp
		}
		responses = append(responses, *s.toResponse(&records[i], emp))
	}

	totalPages := int((total + int64(filter.Limit) - 1) / int64(filter.Limit))

	return &attendance.ListAttendanceResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: totalPages,
		Records:    responses,
	}, nil
}

// TodayForEmployee implements attendance.Service.
func (s *ServiceImpl) TodayForEmployee(ctx context.Context, employeeID string) (*attendance.AttendanceResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	att, err := s.attendanceRepo.GetByEmployeeAndDate(ctx, employeeID, today(time.Now()))
	if err != nil {
		if errors.Is(err, attendance.ErrAttendanceNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return s.toResponse(att, emp), nil
}

func (s *ServiceImpl) toResponse(att *attendance.Attendance, emp *employee.Employee) *attendance.AttendanceResponse {
	resp := &attendance.AttendanceResponse{
		ID:           att.ID,
		EmployeeID:   att.EmployeeID,
		EmployeeName: emp.FullName,
		Date:         att.Date.Format("2006-01-02"),
		SignIn:       timePtrToString(att.SignIn),
		SignOut:      timePtrToString(att.SignOut),
		Status:       string(att.Status),
		TotalHours:   att.TotalHours,
	}

	if att.SignIn != nil && att.SignOut != nil {
		pay := payroll.EstimateFromTimestamps(att.SignIn, att.SignOut, emp.EmploymentType, emp.WorkRate)
		resp.EstimatedPay = &pay
	}

	return resp
}
