package auth

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/staffpoint/hr-backend-go/internal/domain/auth"
	"github.com/staffpoint/hr-backend-go/internal/domain/user"
	"github.com/staffpoint/hr-backend-go/internal/pkg/jwt"
)

type ServiceImpl struct {
	userRepo   user.Repository
	tokenRepo  auth.TokenRepository
	jwtService jwt.Service
}

func NewAuthService(userRepo user.Repository, tokenRepo auth.TokenRepository, jwtService jwt.Service) auth.Service {
	return &ServiceImpl{
		userRepo:   userRepo,
		tokenRepo:  tokenRepo,
		jwtService: jwtService,
	}
}

// hashToken stores only a digest of the refresh token; a leaked
// table cannot be replayed.
func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

// Register implements auth.Service. New accounts default to the staff
// role unless the request names one.
func (s *ServiceImpl) Register(ctx context.Context, req *auth.RegisterRequest) (*auth.UserInfo, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	role := user.Role(req.Role)
	if role == "" {
		role = user.RoleStaff
	}

	usr := &user.User{
		Email:        req.Email,
		PasswordHash: string(hash),
		FullName:     req.FullName,
		Role:         role,
	}
	if err := s.userRepo.Create(ctx, usr); err != nil {
		return nil, err
	}

	return &auth.UserInfo{
		ID:       usr.ID,
		Email:    usr.Email,
		FullName: usr.FullName,
		Role:     string(usr.Role),
	}, nil
}

// Login implements auth.Service.
func (s *ServiceImpl) Login(ctx context.Context, req *auth.LoginRequest) (*auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	usr, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return nil, auth.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(usr.PasswordHash), []byte(req.Password)); err != nil {
		return nil, auth.ErrInvalidCredentials
	}

	accessToken, accessExp, err := s.jwtService.GenerateAccessToken(usr.ID, usr.Email, string(usr.Role))
	if err != nil {
		return nil, err
	}

	refreshToken, refreshExp, err := s.jwtService.GenerateRefreshToken(usr.ID)
	if err != nil {
		return nil, err
	}

	if err := s.tokenRepo.Store(ctx, usr.ID, hashToken(refreshToken), time.Unix(refreshExp, 0)); err != nil {
		return nil, err
	}

	return &auth.LoginResponse{
		AccessToken:  accessToken,
		ExpiresAt:    accessExp,
		RefreshToken: refreshToken,
		RefreshExp:   refreshExp,
		User: auth.UserInfo{
			ID:       usr.ID,
			Email:    usr.Email,
			FullName: usr.FullName,
			Role:     string(usr.Role),
		},
	}, nil
}

// Refresh implements auth.Service.
func (s *ServiceImpl) Refresh(ctx context.Context, refreshToken string) (*auth.RefreshResponse, error) {
	userID, err := s.decodeRefreshToken(refreshToken)
	if err != nil {
		return nil, err
	}

	valid, err := s.tokenRepo.IsValid(ctx, userID, hashToken(refreshToken))
	if err != nil {
		return nil, err
	}
	if !valid {
		return nil, auth.ErrInvalidRefreshToken
	}

	usr, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	accessToken, accessExp, err := s.jwtService.GenerateAccessToken(usr.ID, usr.Email, string(usr.Role))
	if err != nil {
		return nil, err
	}

	return &auth.RefreshResponse{
		AccessToken: accessToken,
		ExpiresAt:   accessExp,
	}, nil
}

// Logout implements auth.Service.
func (s *ServiceImpl) Logout(ctx context.Context, refreshToken string) error {
	if _, err := s.decodeRefreshToken(refreshToken); err != nil {
		return err
	}
	return s.tokenRepo.Revoke(ctx, hashToken(refreshToken))
}

// Me implements auth.Service.
func (s *ServiceImpl) Me(ctx context.Context, userID string) (*auth.UserInfo, error) {
	usr, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &auth.UserInfo{
		ID:       usr.ID,
		Email:    usr.Email,
		FullName: usr.FullName,
		Role:     string(usr.Role),
	}, nil
}

func (s *ServiceImpl) decodeRefreshToken(refreshToken string) (string, error) {
	token, err := jwtauth.VerifyToken(s.jwtService.JWTAuth(), refreshToken)
	if err != nil {
		return "", auth.ErrInvalidRefreshToken
	}

	claims, err := token.AsMap(context.Background())
	if err != nil {
		return "", auth.ErrInvalidRefreshToken
	}

	if tokenType, _ := claims["type"].(string); tokenType != "refresh" {
		return "", auth.ErrInvalidRefreshToken
	}
	userID, _ := claims["user_id"].(string)
	if userID == "" {
		return "", auth.ErrInvalidRefreshToken
	}

	return userID, nil
}
