package member

import (
	"context"

	"github.com/staffpoint/hr-backend-go/internal/domain/employee"
)

type Service interface {
	Register(ctx context.Context, req *RegisterMemberRequest) (*MemberResponse, error)
	List(ctx context.Context) ([]MemberResponse, error)
	// Approve promotes the registration to an employee and removes it
	// from the queue in a single transaction.
	Approve(ctx context.Context, req *ApproveMemberRequest) (*employee.EmployeeResponse, error)
	Reject(ctx context.Context, id string) error
}
