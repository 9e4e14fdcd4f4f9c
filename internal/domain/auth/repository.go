package auth

import (
	"context"
	"time"
)

// TokenRepository tracks issued refresh tokens so they can be revoked
// on logout. Tokens are stored hashed.
type TokenRepository interface {
	Store(ctx context.Context, userID, tokenHash string, expiresAt time.Time) error
	IsValid(ctx context.Context, userID, tokenHash string) (bool, error)
	Revoke(ctx context.Context, tokenHash string) error
	RevokeAllForUser(ctx context.Context, userID string) error
	DeleteExpired(ctx context.Context) error
}
