package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/staffpoint/hr-backend-go/internal/domain/holiday"
	"github.com/staffpoint/hr-backend-go/internal/pkg/database"
)

type holidayRepositoryImpl struct {
	db *database.DB
}

func NewHolidayRepository(db *database.DB) holiday.Repository {
	return &holidayRepositoryImpl{db: db}
}

// Create implements holiday.Repository.
func (h *holidayRepositoryImpl) Create(ctx context.Context, hol *holiday.Holiday) error {
	q := GetQuerier(ctx, h.db)

	query := `
		INSERT INTO holidays (name, date)
		VALUES ($1, $2)
		RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query, hol.Name, hol.Date).Scan(&hol.ID, &hol.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return holiday.ErrHolidayExists
		}
		return fmt.Errorf("failed to create holiday: %w", err)
	}

	return nil
}

// GetByID implements holiday.Repository.
func (h *holidayRepositoryImpl) GetByID(ctx context.Context, id string) (*holiday.Holiday, error) {
	q := GetQuerier(ctx, h.db)

	var hol holiday.Holiday
	err := q.QueryRow(ctx,
		`SELECT id, name, date, created_at FROM holidays WHERE id = $1`, id,
	).Scan(&hol.ID, &hol.Name, &hol.Date, &hol.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, holiday.ErrHolidayNotFound
		}
		return nil, fmt.Errorf("failed to get holiday: %w", err)
	}

	return &hol, nil
}

// GetByDate implements holiday.Repository.
func (h *holidayRepositoryImpl) GetByDate(ctx context.Context, date time.Time) (*holiday.Holiday, error) {
	q := GetQuerier(ctx, h.db)

	var hol holiday.Holiday
	err := q.QueryRow(ctx,
		`SELECT id, name, date, created_at FROM holidays WHERE date = $1`, date,
	).Scan(&hol.ID, &hol.Name, &hol.Date, &hol.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, holiday.ErrHolidayNotFound
		}
		return nil, fmt.Errorf("failed to get holiday by date: %w", err)
	}

	return &hol, nil
}

// Delete implements holiday.Repository.
func (h *holidayRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, h.db)

	tag, err := q.Exec(ctx, `DELETE FROM holidays WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete holiday: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return holiday.ErrHolidayNotFound
	}

	return nil
}

// List implements holiday.Repository.
func (h *holidayRepositoryImpl) List(ctx context.Context, filter *holiday.HolidayFilter) ([]holiday.Holiday, error) {
	q := GetQuerier(ctx, h.db)

	conditions := []string{"1=1"}
	args := []interface{}{}
	argIdx := 1

	if filter.Year != nil {
		conditions = append(conditions, fmt.Sprintf("EXTRACT(YEAR FROM date) = $%d", argIdx))
		args = append(args, *filter.Year)
		argIdx++
	}
	if filter.Month != nil {
		conditions = append(conditions, fmt.Sprintf("EXTRACT(MONTH FROM date) = $%d", argIdx))
		args = append(args, *filter.Month)
		argIdx++
	}

	query := `SELECT id, name, date, created_at FROM holidays WHERE ` +
		strings.Join(conditions, " AND ") + ` ORDER BY date ASC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays: %w", err)
	}
	defer rows.Close()

	var holidays []holiday.Holiday
	for rows.Next() {
		var hol holiday.Holiday
		if err := rows.Scan(&hol.ID, &hol.Name, &hol.Date, &hol.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan holiday: %w", err)
		}
		holidays = append(holidays, hol)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate holidays: %w", err)
	}

	return holidays, nil
}
