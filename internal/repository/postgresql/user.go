package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/staffpoint/hr-backend-go/internal/domain/user"
	"github.com/staffpoint/hr-backend-go/internal/pkg/database"
)

type userRepositoryImpl struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) user.Repository {
	return &userRepositoryImpl{db: db}
}

// Create implements user.Repository.
func (u *userRepositoryImpl) Create(ctx context.Context, usr *user.User) error {
	q := GetQuerier(ctx, u.db)

	query := `
		INSERT INTO users (email, password_hash, full_name, role)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		usr.Email, usr.PasswordHash, usr.FullName, usr.Role,
	).Scan(&usr.ID, &usr.CreatedAt, &usr.UpdatedAt)

	if err != nil {
		if isUniqueViolation(err) {
			return user.ErrEmailExists
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

// GetByID implements user.Repository.
func (u *userRepositoryImpl) GetByID(ctx context.Context, id string) (*user.User, error) {
	q := GetQuerier(ctx, u.db)

	var usr user.User
	err := q.QueryRow(ctx,
		`SELECT id, email, password_hash, full_name, role, created_at, updated_at FROM users WHERE id = $1`, id,
	).Scan(&usr.ID, &usr.Email, &usr.PasswordHash, &usr.FullName, &usr.Role, &usr.CreatedAt, &usr.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, user.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &usr, nil
}

// GetByEmail implements user.Repository.
func (u *userRepositoryImpl) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	q := GetQuerier(ctx, u.db)

	var usr user.User
	err := q.QueryRow(ctx,
		`SELECT id, email, password_hash, full_name, role, created_at, updated_at FROM users WHERE email = $1`, email,
	).Scan(&usr.ID, &usr.Email, &usr.PasswordHash, &usr.FullName, &usr.Role, &usr.CreatedAt, &usr.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, user.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	return &usr, nil
}
