package leave

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staffpoint/hr-backend-go/internal/domain/employee"
	"github.com/staffpoint/hr-backend-go/internal/domain/leave"
)

const testEmployeeID = "123e4567-e89b-42d3-a456-426614174000"

type fakeEmployeeRepo struct {
	employee.Repository
	emp *employee.Employee
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (*employee.Employee, error) {
	if f.emp == nil || f.emp.ID != id {
		return nil, employee.ErrEmployeeNotFound
	}
	return f.emp, nil
}

type fakeLeaveRepo struct {
	leave.Repository
	overlapping bool
	created     *leave.LeaveRequest
}

func (f *fakeLeaveRepo) HasOverlapping(ctx context.Context, employeeID string, start, end time.Time) (bool, error) {
	return f.overlapping, nil
}

func (f *fakeLeaveRepo) Create(ctx context.Context, req *leave.LeaveRequest) error {
	req.ID = "leave-1"
	req.CreatedAt = time.Now()
	f.created = req
	return nil
}

func testEmployee() *employee.Employee {
	return &employee.Employee{
		ID:             testEmployeeID,
		FullName:       "Jordan Blake",
		EmploymentType: employee.EmploymentTypeDaily,
		WorkRate:       decimal.NewFromInt(300),
		AllowedLeaves:  12,
		TakenLeaves:    0,
		Status:         employee.StatusActive,
	}
}

func TestCreateLeaveRequest(t *testing.T) {
	empRepo := &fakeEmployeeRepo{emp: testEmployee()}
	leaveRepo := &fakeLeaveRepo{}
	svc := NewLeaveService(nil, leaveRepo, empRepo)

	resp, err := svc.Create(context.Background(), &leave.CreateLeaveRequest{
		EmployeeID: testEmployeeID,
		LeaveType:  "planned",
		StartDate:  "2025-01-06",
		EndDate:    "2025-01-10",
	})
	require.NoError(t, err)

	assert.Equal(t, 5, resp.TotalDays, "monday through friday is five days")
	assert.Equal(t, string(leave.StatusPending), resp.Status)
	assert.Equal(t, "Jordan Blake", resp.EmployeeName)
	require.NotNil(t, leaveRepo.created)
	assert.Equal(t, leave.StatusPending, leaveRepo.created.Status)
}

func TestCreateSingleDayLeave(t *testing.T) {
	empRepo := &fakeEmployeeRepo{emp: testEmployee()}
	leaveRepo := &fakeLeaveRepo{}
	svc := NewLeaveService(nil, leaveRepo, empRepo)

	resp, err := svc.Create(context.Background(), &leave.CreateLeaveRequest{
		EmployeeID: testEmployeeID,
		LeaveType:  "medical",
		StartDate:  "2025-01-06",
		EndDate:    "2025-01-06",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.TotalDays)
}

func TestCreateRejectsInsufficientBalance(t *testing.T) {
	emp := testEmployee()
	emp.TakenLeaves = 10 // 2 remaining
	empRepo := &fakeEmployeeRepo{emp: emp}
	svc := NewLeaveService(nil, &fakeLeaveRepo{}, empRepo)

	_, err := svc.Create(context.Background(), &leave.CreateLeaveRequest{
		EmployeeID: testEmployeeID,
		LeaveType:  "planned",
		StartDate:  "2025-01-06",
		EndDate:    "2025-01-10",
	})
	assert.ErrorIs(t, err, leave.ErrInsufficientBalance)
}

func TestCreateAcceptsEveryLeaveType(t *testing.T) {
	for _, leaveType := range []string{"planned", "happy", "medical"} {
		empRepo := &fakeEmployeeRepo{emp: testEmployee()}
		leaveRepo := &fakeLeaveRepo{}
		svc := NewLeaveService(nil, leaveRepo, empRepo)

		resp, err := svc.Create(context.Background(), &leave.CreateLeaveRequest{
			EmployeeID: testEmployeeID,
			LeaveType:  leaveType,
			StartDate:  "2025-01-06",
			EndDate:    "2025-01-07",
		})
		require.NoError(t, err, leaveType)
		assert.Equal(t, leaveType, resp.LeaveType)
	}
}

func TestCreateRejectsUnknownLeaveType(t *testing.T) {
	empRepo := &fakeEmployeeRepo{emp: testEmployee()}
	svc := NewLeaveService(nil, &fakeLeaveRepo{}, empRepo)

	_, err := svc.Create(context.Background(), &leave.CreateLeaveRequest{
		EmployeeID: testEmployeeID,
		LeaveType:  "sabbatical",
		StartDate:  "2025-01-06",
		EndDate:    "2025-01-07",
	})
	assert.Error(t, err)
}

func TestBalanceCheckAppliesToEveryLeaveType(t *testing.T) {
	for _, leaveType := range []string{"planned", "happy", "medical"} {
		emp := testEmployee()
		emp.TakenLeaves = 12 // nothing left
		empRepo := &fakeEmployeeRepo{emp: emp}
		svc := NewLeaveService(nil, &fakeLeaveRepo{}, empRepo)

		_, err := svc.Create(context.Background(), &leave.CreateLeaveRequest{
			EmployeeID: testEmployeeID,
			LeaveType:  leaveType,
			StartDate:  "2025-01-06",
			EndDate:    "2025-01-10",
		})
		assert.ErrorIs(t, err, leave.ErrInsufficientBalance, leaveType)
	}
}

func TestCreateRejectsOverlap(t *testing.T) {
	empRepo := &fakeEmployeeRepo{emp: testEmployee()}
	svc := NewLeaveService(nil, &fakeLeaveRepo{overlapping: true}, empRepo)

	_, err := svc.Create(context.Background(), &leave.CreateLeaveRequest{
		EmployeeID: testEmployeeID,
		LeaveType:  "planned",
		StartDate:  "2025-01-06",
		EndDate:    "2025-01-10",
	})
	assert.ErrorIs(t, err, leave.ErrOverlappingRequest)
}

func TestCreateRejectsInvertedPeriod(t *testing.T) {
	empRepo := &fakeEmployeeRepo{emp: testEmployee()}
	svc := NewLeaveService(nil, &fakeLeaveRepo{}, empRepo)

	_, err := svc.Create(context.Background(), &leave.CreateLeaveRequest{
		EmployeeID: testEmployeeID,
		LeaveType:  "planned",
		StartDate:  "2025-01-10",
		EndDate:    "2025-01-06",
	})
	assert.Error(t, err)
}
