package holiday

import (
	"context"
	"time"
)

type Service interface {
	Create(ctx context.Context, req *CreateHolidayRequest) (*HolidayResponse, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter *HolidayFilter) ([]HolidayResponse, error)
	// IsHoliday gates attendance actions company-wide.
	IsHoliday(ctx context.Context, date time.Time) (bool, *HolidayResponse, error)
}
