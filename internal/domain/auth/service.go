package auth

import "context"

type Service interface {
	Register(ctx context.Context, req *RegisterRequest) (*UserInfo, error)
	Login(ctx context.Context, req *LoginRequest) (*LoginResponse, error)
	Refresh(ctx context.Context, refreshToken string) (*RefreshResponse, error)
	Logout(ctx context.Context, refreshToken string) error
	Me(ctx context.Context, userID string) (*UserInfo, error)
}
