package employee

import "context"

type Repository interface {
	Create(ctx context.Context, emp *Employee) error
	GetByID(ctx context.Context, id string) (*Employee, error)
	GetByPhone(ctx context.Context, phone string) (*Employee, error)
	Update(ctx context.Context, emp *Employee) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter *EmployeeFilter) ([]Employee, int64, error)
	CountActive(ctx context.Context) (int64, error)
	AddTakenLeaves(ctx context.Context, id string, days int) error
	SetStatus(ctx context.Context, id string, status Status) error
}
