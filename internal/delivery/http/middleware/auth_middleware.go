package middleware

import (
	"net/http"
	"strings"

	deliverycontext "passfit/internal/delivery/context"
	"passfit/internal/domain/service"

	"github.com/labstack/echo/v4"
)

const authenticatedUserKey = "authenticatedUser"

// AuthMiddleware validates client session tokens against the auth provider.
type AuthMiddleware struct {
	verifier service.TokenVerifier
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(verifier service.TokenVerifier) *AuthMiddleware {
	return &AuthMiddleware{verifier: verifier}
}

// Authenticate is the core middleware function that validates the bearer token.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Authorization header is missing"})
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid token format, must be Bearer token"})
		}

		authUser, err := m.verifier.VerifyToken(c.Request().Context(), tokenString)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid or expired token"})
		}

		if authUser.UID == "" {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "User ID missing from token"})
		}

		// Set user info on the context for handlers to use
		deliverycontext.SetUserID(c, authUser.UID)
		c.Set(authenticatedUserKey, authUser)

		return next(c)
	}
}

// GetAuthenticatedUser returns the verified identity stored by Authenticate.
func GetAuthenticatedUser(c echo.Context) (*service.AuthenticatedUser, bool) {
	authUser, ok := c.Get(authenticatedUserKey).(*service.AuthenticatedUser)

	return authUser, ok
}
