package postgresql

import (
	"context"
	"fmt"

	"github.com/staffpoint/hr-backend-go/internal/domain/dashboard"
	"github.com/staffpoint/hr-backend-go/internal/pkg/database"
)

type dashboardRepositoryImpl struct {
	db *database.DB
}

func NewDashboardRepository(db *database.DB) dashboard.Repository {
	return &dashboardRepositoryImpl{db: db}
}

func (d *dashboardRepositoryImpl) count(ctx context.Context, query string) (int64, error) {
	q := GetQuerier(ctx, d.db)

	var count int64
	if err := q.QueryRow(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to run count query: %w", err)
	}
	return count, nil
}

// TotalEmployees implements dashboard.Repository.
func (d *dashboardRepositoryImpl) TotalEmployees(ctx context.Context) (int64, error) {
	return d.count(ctx, `SELECT COUNT(*) FROM employees`)
}

// ActiveEmployees implements dashboard.Repository.
func (d *dashboardRepositoryImpl) ActiveEmployees(ctx context.Context) (int64, error) {
	return d.count(ctx, `SELECT COUNT(*) FROM employees WHERE status != 'inactive'`)
}

// PendingLeaves implements dashboard.Repository.
func (d *dashboardRepositoryImpl) PendingLeaves(ctx context.Context) (int64, error) {
	return d.count(ctx, `SELECT COUNT(*) FROM leave_requests WHERE status = 'pending'`)
}

// PendingMembers implements dashboard.Repository.
func (d *dashboardRepositoryImpl) PendingMembers(ctx context.Context) (int64, error) {
	return d.count(ctx, `SELECT COUNT(*) FROM new_members`)
}
