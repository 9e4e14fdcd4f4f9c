package member

import "context"

type Repository interface {
	Create(ctx context.Context, m *NewMember) error
	GetByID(ctx context.Context, id string) (*NewMember, error)
	GetByPhone(ctx context.Context, phone string) (*NewMember, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]NewMember, error)
}
