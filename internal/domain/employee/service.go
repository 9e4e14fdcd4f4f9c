package employee

import "context"

type Service interface {
	Create(ctx context.Context, req *CreateEmployeeRequest) (*EmployeeResponse, error)
	GetByID(ctx context.Context, id string) (*EmployeeResponse, error)
	// VerifyByPhone resolves a phone number to the employee it belongs
	// to. Used by the self-service bot to link chat sessions.
	VerifyByPhone(ctx context.Context, phone string) (*EmployeeResponse, error)
	Update(ctx context.Context, req *UpdateEmployeeRequest) (*EmployeeResponse, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter *EmployeeFilter) (*ListEmployeesResponse, error)
}
