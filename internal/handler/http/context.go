package http

import (
	"math"
	"net/http"
	"strconv"

	"github.com/go-chi/jwtauth/v5"

	"github.com/anandamid/presensi-backend-go/internal/domain/user"
)

// userIDFromContext extracts the user_id claim. jwx decodes numeric claims
// as float64.
func userIDFromContext(r *http.Request) (int64, bool) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return 0, false
	}
	idFloat, ok := claims["user_id"].(float64)
	if !ok {
		return 0, false
	}
	return int64(idFloat), true
}

func roleFromContext(r *http.Request) user.Role {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return ""
	}
	roleStr, _ := claims["role"].(string)
	return user.Role(roleStr)
}

// parseFloatForm reads one multipart form field as a float. A missing or
// malformed value comes back as NaN so the DTO validator rejects it with a
// field-level message.
func parseFloatForm(r *http.Request, field string) float64 {
	raw := r.FormValue(field)
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return math.NaN()
	}
	return f
}
