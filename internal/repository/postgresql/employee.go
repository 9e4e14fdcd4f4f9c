package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/staffpoint/hr-backend-go/internal/domain/employee"
	"github.com/staffpoint/hr-backend-go/internal/pkg/database"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.Repository {
	return &employeeRepositoryImpl{db: db}
}

const employeeColumns = `
	id, full_name, dob, joining_date, employment_type, work_rate,
	position, department, shift, work_start, work_end, phone,
	id_proof_type, id_proof_number, allowed_leaves, taken_leaves,
	status, created_at, updated_at
`

func scanEmployee(row pgx.Row) (*employee.Employee, error) {
	var emp employee.Employee
	err := row.Scan(
		&emp.ID, &emp.FullName, &emp.DOB, &emp.JoiningDate, &emp.EmploymentType, &emp.WorkRate,
		&emp.Position, &emp.Department, &emp.Shift, &emp.WorkStart, &emp.WorkEnd, &emp.Phone,
		&emp.IDProofType, &emp.IDProofNumber, &emp.AllowedLeaves, &emp.TakenLeaves,
		&emp.Status, &emp.CreatedAt, &emp.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &emp, nil
}

// Create implements employee.Repository.
func (e *employeeRepositoryImpl) Create(ctx context.Context, emp *employee.Employee) error {
	q := GetQuerier(ctx, e.db)

	query := `
		INSERT INTO employees (
			full_name, dob, joining_date, employment_type, work_rate,
			position, department, shift, work_start, work_end, phone,
			id_proof_type, id_proof_number, allowed_leaves, status
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15
		) RETURNING id, taken_leaves, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		emp.FullName, emp.DOB, emp.JoiningDate, emp.EmploymentType, emp.WorkRate,
		emp.Position, emp.Department, emp.Shift, emp.WorkStart, emp.WorkEnd, emp.Phone,
		emp.IDProofType, emp.IDProofNumber, emp.AllowedLeaves, emp.Status,
	).Scan(&emp.ID, &emp.TakenLeaves, &emp.CreatedAt, &emp.UpdatedAt)

	if err != nil {
		if isUniqueViolation(err) {
			return employee.ErrPhoneExists
		}
		return fmt.Errorf("failed to create employee: %w", err)
	}

	return nil
}

// GetByID implements employee.Repository.
func (e *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (*employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE id = $1`

	emp, err := scanEmployee(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, employee.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}

	return emp, nil
}

// GetByPhone implements employee.Repository.
func (e *employeeRepositoryImpl) GetByPhone(ctx context.Context, phone string) (*employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE phone = $1`

	emp, err := scanEmployee(q.QueryRow(ctx, query, phone))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, employee.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("failed to get employee by phone: %w", err)
	}

	return emp, nil
}

// Update implements employee.Repository.
func (e *employeeRepositoryImpl) Update(ctx context.Context, emp *employee.Employee) error {
	q := GetQuerier(ctx, e.db)

	query := `
		UPDATE employees SET
			full_name = $2, dob = $3, joining_date = $4, employment_type = $5,
			work_rate = $6, position = $7, department = $8, shift = $9,
			work_start = $10, work_end = $11, phone = $12,
			id_proof_type = $13, id_proof_number = $14,
			allowed_leaves = $15, taken_leaves = $16, status = $17,
			updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`

	err := q.QueryRow(ctx, query,
		emp.ID, emp.FullName, emp.DOB, emp.JoiningDate, emp.EmploymentType,
		emp.WorkRate, emp.Position, emp.Department, emp.Shift,
		emp.WorkStart, emp.WorkEnd, emp.Phone,
		emp.IDProofType, emp.IDProofNumber,
		emp.AllowedLeaves, emp.TakenLeaves, emp.Status,
	).Scan(&emp.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.ErrEmployeeNotFound
		}
		if isUniqueViolation(err) {
			return employee.ErrPhoneExists
		}
		return fmt.Errorf("failed to update employee: %w", err)
	}

	return nil
}

// Delete implements employee.Repository.
func (e *employeeRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, e.db)

	tag, err := q.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}

// List implements employee.Repository.
func (e *employeeRepositoryImpl) List(ctx context.Context, filter *employee.EmployeeFilter) ([]employee.Employee, int64, error) {
	q := GetQuerier(ctx, e.db)

	conditions := []string{"1=1"}
	args := []interface{}{}
	argIdx := 1

	if filter.Search != nil && *filter.Search != "" {
		conditions = append(conditions, fmt.Sprintf("(full_name ILIKE $%d OR department ILIKE $%d OR position ILIKE $%d)", argIdx, argIdx, argIdx))
		args = append(args, "%"+*filter.Search+"%")
		argIdx++
	}
	if filter.Department != nil && *filter.Department != "" {
		conditions = append(conditions, fmt.Sprintf("department = $%d", argIdx))
		args = append(args, *filter.Department)
		argIdx++
	}
	if filter.Status != nil && *filter.Status != "" {
		conditions = append(conditions, fmt.Sprintf("status = $%d", argIdx))
		args = append(args, *filter.Status)
		argIdx++
	}
	if filter.EmploymentType != nil && *filter.EmploymentType != "" {
		conditions = append(conditions, fmt.Sprintf("employment_type = $%d", argIdx))
		args = append(args, *filter.EmploymentType)
		argIdx++
	}

	where := strings.Join(conditions, " AND ")

	var total int64
	countQuery := `SELECT COUNT(*) FROM employees WHERE ` + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count employees: %w", err)
	}

	query := fmt.Sprintf(
		`SELECT %s FROM employees WHERE %s ORDER BY full_name ASC LIMIT $%d OFFSET $%d`,
		employeeColumns, where, argIdx, argIdx+1,
	)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, *emp)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate employees: %w", err)
	}

	return employees, total, nil
}

// CountActive implements employee.Repository.
func (e *employeeRepositoryImpl) CountActive(ctx context.Context) (int64, error) {
	q := GetQuerier(ctx, e.db)

	var count int64
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM employees WHERE status != 'inactive'`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count active employees: %w", err)
	}

	return count, nil
}

// AddTakenLeaves implements employee.Repository.
func (e *employeeRepositoryImpl) AddTakenLeaves(ctx context.Context, id string, days int) error {
	q := GetQuerier(ctx, e.db)

	tag, err := q.Exec(ctx,
		`UPDATE employees SET taken_leaves = taken_leaves + $2, updated_at = NOW() WHERE id = $1`,
		id, days,
	)
	if err != nil {
		return fmt.Errorf("failed to charge leave balance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}

// SetStatus implements employee.Repository.
func (e *employeeRepositoryImpl) SetStatus(ctx context.Context, id string, status employee.Status) error {
	q := GetQuerier(ctx, e.db)

	tag, err := q.Exec(ctx,
		`UPDATE employees SET status = $2, updated_at = NOW() WHERE id = $1`,
		id, status,
	)
	if err != nil {
		return fmt.Errorf("failed to set employee status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}

// isUniqueViolation reports whether err is a unique constraint error.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
