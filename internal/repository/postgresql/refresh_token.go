package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/staffpoint/hr-backend-go/internal/domain/auth"
	"github.com/staffpoint/hr-backend-go/internal/pkg/database"
)

type refreshTokenRepositoryImpl struct {
	db *database.DB
}

func NewRefreshTokenRepository(db *database.DB) auth.TokenRepository {
	return &refreshTokenRepositoryImpl{db: db}
}

// Store implements auth.TokenRepository.
func (r *refreshTokenRepositoryImpl) Store(ctx context.Context, userID, tokenHash string, expiresAt time.Time) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx,
		`INSERT INTO refresh_tokens (user_id, token_hash, expires_at) VALUES ($1, $2, $3)`,
		userID, tokenHash, expiresAt,
	)
	if err != nil {
		return fmt.Errorf("failed to store refresh token: %w", err)
	}

	return nil
}

// IsValid implements auth.TokenRepository.
func (r *refreshTokenRepositoryImpl) IsValid(ctx context.Context, userID, tokenHash string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx,
		`SELECT EXISTS (
			SELECT 1 FROM refresh_tokens
			WHERE user_id = $1 AND token_hash = $2 AND expires_at > NOW()
		)`,
		userID, tokenHash,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check refresh token: %w", err)
	}

	return exists, nil
}

// Revoke implements auth.TokenRepository.
func (r *refreshTokenRepositoryImpl) Revoke(ctx context.Context, tokenHash string) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `DELETE FROM refresh_tokens WHERE token_hash = $1`, tokenHash)
	if err != nil {
		return fmt.Errorf("failed to revoke refresh token: %w", err)
	}

	return nil
}

// RevokeAllForUser implements auth.TokenRepository.
func (r *refreshTokenRepositoryImpl) RevokeAllForUser(ctx context.Context, userID string) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `DELETE FROM refresh_tokens WHERE user_id = $1`, userID)
	if err != nil {
		return fmt.Errorf("failed to revoke user refresh tokens: %w", err)
	}

	return nil
}

// DeleteExpired implements auth.TokenRepository.
func (r *refreshTokenRepositoryImpl) DeleteExpired(ctx context.Context) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `DELETE FROM refresh_tokens WHERE expires_at <= NOW()`)
	if err != nil {
		return fmt.Errorf("failed to delete expired refresh tokens: %w", err)
	}

	return nil
}
