package middleware

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/Bhavya-Chawat/AI-Interview-Assistant/pkg/jwt"
)

const (
	// UserIDContextKey is the echo context key for the authenticated user ID
	UserIDContextKey = "user_id"
	// UserEmailContextKey is the echo context key for the authenticated email
	UserEmailContextKey = "user_email"
)

// AuthMiddleware validates bearer tokens on protected routes
type AuthMiddleware struct {
	jwtManager *jwt.Manager
}

// NewAuthMiddleware creates a new auth middleware
func NewAuthMiddleware(jwtManager *jwt.Manager) *AuthMiddleware {
	return &AuthMiddleware{
		jwtManager: jwtManager,
	}
}

// Authenticate validates the JWT token and stores user identity in context
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := extractToken(c)
		if token == "" {
			return c.JSON(http.StatusUnauthorized, map[string]interface{}{
				"error":   "unauthorized",
				"message": "Missing authorization token",
			})
		}

		claims, err := m.jwtManager.ValidateToken(token)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, map[string]interface{}{
				"error":   "unauthorized",
				"message": "Invalid or expired token",
			})
		}

		c.Set(UserIDContextKey, claims.UserID)
		c.Set(UserEmailContextKey, claims.Email)
		return next(c)
	}
}

// UserIDFromContext returns the authenticated user ID set by Authenticate.
func UserIDFromContext(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get(UserIDContextKey).(uuid.UUID)
	return userID, ok
}

func extractToken(c echo.Context) string {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
			return strings.TrimSpace(parts[1])
		}
	}

	cookie, err := c.Cookie("access_token")
	if err == nil {
		return cookie.Value
	}
	return ""
}
