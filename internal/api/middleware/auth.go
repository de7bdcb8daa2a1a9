package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/taskdeck/taskdeck-api/internal/api/shared"
	"github.com/taskdeck/taskdeck-api/internal/service/auth"
)

// bearerPrefix is the required credential scheme: a case-sensitive
// "Bearer" followed by a single space and the token.
const bearerPrefix = "Bearer "

// AuthMiddleware provides bearer-token authentication for routes. It
// is a pure gate: it either binds the verified user identity to the
// request context or rejects the request; it has no other side
// effects.
type AuthMiddleware struct {
	jwtService auth.JWTService
}

// NewAuthMiddleware creates a new AuthMiddleware with the given dependencies.
func NewAuthMiddleware(jwtService auth.JWTService) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
	}
}

// Authenticate validates tokens from the Authorization header and adds
// the user ID to the request context for authorized requests. Requests
// without a credential are rejected before any downstream logic runs.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		token, ok := strings.CutPrefix(authHeader, bearerPrefix)
		if authHeader == "" || !ok || token == "" {
			shared.RespondWithError(w, r, http.StatusUnauthorized,
				"Access denied: missing token")
			return
		}

		claims, err := m.jwtService.ValidateToken(r.Context(), token)
		if err != nil {
			// Invalid signature, malformed payload, and expiry all
			// collapse into one message.
			shared.RespondWithError(w, r, http.StatusUnauthorized,
				"Invalid or expired token")
			return
		}

		ctx := context.WithValue(r.Context(), shared.UserIDContextKey, claims.UserID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserID extracts the user ID from the request context.
// Returns the user ID and a boolean indicating if it was found.
func GetUserID(r *http.Request) (uuid.UUID, bool) {
	userID, ok := r.Context().Value(shared.UserIDContextKey).(uuid.UUID)
	return userID, ok
}
