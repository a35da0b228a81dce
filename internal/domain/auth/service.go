package auth

import (
	"context"
	"net/http"

	"github.com/anandamid/presensi-backend-go/internal/domain/user"
)

// AuthService handles credential verification and token lifecycle.
// The refresh token travels in an HTTP-only cookie, the access token in
// the response body.
type AuthService interface {
	Login(ctx context.Context, req *LoginRequest) (*LoginResponse, *http.Cookie, error)
	Refresh(ctx context.Context, refreshToken string) (*RefreshResponse, *http.Cookie, error)
	Logout(ctx context.Context, refreshToken string) error

	// Me returns the profile of the authenticated user.
	Me(ctx context.Context, userID int64) (*user.UserResponse, error)

	// SSEToken issues a short-lived token for the EventSource endpoint,
	// which cannot set Authorization headers.
	SSEToken(ctx context.Context, userID int64, role user.Role) (token string, expiresIn int, err error)
}
