package holiday

import (
	"context"
	"errors"
	"time"

	"github.com/staffpoint/hr-backend-go/internal/domain/holiday"
)

type ServiceImpl struct {
	holidayRepo holiday.Repository
}

func NewHolidayService(holidayRepo holiday.Repository) holiday.Service {
	return &ServiceImpl{holidayRepo: holidayRepo}
}

// Create implements holiday.Service.
func (s *ServiceImpl) Create(ctx context.Context, req *holiday.CreateHolidayRequest) (*holiday.HolidayResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	date, _ := time.Parse("2006-01-02", req.Date)

	hol := &holiday.Holiday{
		Name: req.Name,
		Date: date,
	}

	if err := s.holidayRepo.Create(ctx, hol); err != nil {
		return nil, err
	}

	return toResponse(hol), nil
}

// Delete implements holiday.Service.
func (s *ServiceImpl) Delete(ctx context.Context, id string) error {
	return s.holidayRepo.Delete(ctx, id)
}

// List implements holiday.Service.
func (s *ServiceImpl) List(ctx context.Context, filter *holiday.HolidayFilter) ([]holiday.HolidayResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	holidays, err := s.holidayRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]holiday.HolidayResponse, 0, len(holidays))
	for i := range holidays {
		responses = append(responses, *toResponse(&holidays[i]))
	}

	return responses, nil
}

// IsHoliday implements holiday.Service.
func (s *ServiceImpl) IsHoliday(ctx context.Context, date time.Time) (bool, *holiday.HolidayResponse, error) {
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)

	hol, err := s.holidayRepo.GetByDate(ctx, day)
	if err != nil {
		if errors.Is(err, holiday.ErrHolidayNotFound) {
			return false, nil, nil
		}
		return false, nil, err
	}

	return true, toResponse(hol), nil
}

func toResponse(hol *holiday.Holiday) *holiday.HolidayResponse {
	return &holiday.HolidayResponse{
		ID:   hol.ID,
		Name: hol.Name,
		Date: hol.Date.Format("2006-01-02"),
	}
}
