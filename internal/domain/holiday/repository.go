package holiday

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, h *Holiday) error
	GetByID(ctx context.Context, id string) (*Holiday, error)
	GetByDate(ctx context.Context, date time.Time) (*Holiday, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter *HolidayFilter) ([]Holiday, error)
}
