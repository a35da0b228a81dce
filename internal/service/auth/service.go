package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/anandamid/presensi-backend-go/internal/domain/auth"
	"github.com/anandamid/presensi-backend-go/internal/domain/user"
	"github.com/anandamid/presensi-backend-go/internal/pkg/jwt"
)

type AuthServiceImpl struct {
	user.UserRepository
	jwt.Service
}

func NewAuthService(userRepository user.UserRepository, jwtService jwt.Service) auth.AuthService {
	return &AuthServiceImpl{
		UserRepository: userRepository,
		Service:        jwtService,
	}
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, req *auth.LoginRequest) (*auth.LoginResponse, *http.Cookie, error) {
	userData, err := a.UserRepository.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return nil, nil, auth.ErrInvalidCredentials
		}
		return nil, nil, fmt.Errorf("failed to get user by username: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(userData.PasswordHash), []byte(req.Password)); err != nil {
		return nil, nil, auth.ErrInvalidCredentials
	}

	if !userData.IsActive {
		return nil, nil, auth.ErrAccountInactive
	}

	accessToken, _, err := a.Service.GenerateAccessToken(userData.ID, userData.Nama, userData.Username, userData.Role)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, refreshExpiresAt, err := a.Service.GenerateRefreshToken(userData.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	resp := &auth.LoginResponse{
		AccessToken: accessToken,
		User:        toUserResponse(userData),
	}

	return resp, a.Service.RefreshTokenCookie(refreshToken, refreshExpiresAt), nil
}

// Me implements auth.AuthService.
func (a *AuthServiceImpl) Me(ctx context.Context, userID int64) (*user.UserResponse, error) {
	userData, err := a.UserRepository.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	resp := toUserResponse(userData)
	return &resp, nil
}

func toUserResponse(u user.User) user.UserResponse {
	return user.UserResponse{
		ID:        u.ID,
		Nama:      u.Nama,
		Username:  u.Username,
		Role:      string(u.Role),
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
	}
}

// Refresh implements auth.AuthService. The refresh token is rotated on
// every use; the old one is revoked.
func (a *AuthServiceImpl) Refresh(ctx context.Context, refreshToken string) (*auth.RefreshResponse, *http.Cookie, error) {
	if a.Service.IsTokenRevoked(refreshToken) {
		return nil, nil, auth.ErrRefreshTokenRevoked
	}

	token, err := a.Service.JWTAuth().Decode(refreshToken)
	if err != nil {
		return nil, nil, auth.ErrInvalidToken
	}

	tokenType, _ := token.Get("type")
	if tokenType != "refresh" {
		return nil, nil, auth.ErrInvalidToken
	}

	userIDVal, ok := token.Get("user_id")
	if !ok {
		return nil, nil, auth.ErrInvalidToken
	}
	idFloat, ok := userIDVal.(float64)
	if !ok {
		return nil, nil, auth.ErrInvalidToken
	}

	userData, err := a.UserRepository.GetByID(ctx, int64(idFloat))
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return nil, nil, auth.ErrInvalidToken
		}
		return nil, nil, fmt.Errorf("failed to get user: %w", err)
	}
	if !userData.IsActive {
		return nil, nil, auth.ErrAccountInactive
	}

	accessToken, _, err := a.Service.GenerateAccessToken(userData.ID, userData.Nama, userData.Username, userData.Role)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	newRefreshToken, refreshExpiresAt, err := a.Service.GenerateRefreshToken(userData.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}
	a.Service.RevokeToken(refreshToken)

	return &auth.RefreshResponse{AccessToken: accessToken},
		a.Service.RefreshTokenCookie(newRefreshToken, refreshExpiresAt),
		nil
}

// Logout implements auth.AuthService.
func (a *AuthServiceImpl) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken != "" {
		a.Service.RevokeToken(refreshToken)
	}
	return nil
}

// SSEToken implements auth.AuthService.
func (a *AuthServiceImpl) SSEToken(ctx context.Context, userID int64, role user.Role) (string, int, error) {
	return a.Service.GenerateSSEToken(userID, role)
}
