package middleware

import (
	"strings"

	"shiptrack/config"
	deliverycontext "shiptrack/internal/delivery/context"
	"shiptrack/internal/delivery/api/response"
	domainerrors "shiptrack/internal/domain/errors"
	"shiptrack/internal/usecase"

	"github.com/labstack/echo/v4"
)

const identityKey = "identity"

// AuthMiddleware resolves the session token of a request into an identity.
type AuthMiddleware struct {
	authUC     usecase.AuthUsecase
	cookieName string
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(authUC usecase.AuthUsecase, cfg *config.Config) *AuthMiddleware {
	return &AuthMiddleware{
		authUC:     authUC,
		cookieName: cfg.Auth.CookieName,
	}
}

// Authenticate accepts the session cookie or a Bearer Authorization header.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		identity, err := m.authUC.Authenticate(c.Request().Context(), m.extractToken(c))
		if err != nil {
			return response.HandleAppError(c, err)
		}

		c.Set(identityKey, identity)
		c.SetRequest(c.Request().WithContext(deliverycontext.WithTenant(c.Request().Context(), identity.TenantID)))

		return next(c)
	}
}

func (m *AuthMiddleware) extractToken(c echo.Context) string {
	if cookie, err := c.Cookie(m.cookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
	if token, ok := strings.CutPrefix(authHeader, "Bearer "); ok {
		return strings.TrimSpace(token)
	}

	return ""
}

// GetIdentity returns the identity stored by Authenticate.
func GetIdentity(c echo.Context) (*usecase.Identity, bool) {
	identity, ok := c.Get(identityKey).(*usecase.Identity)

	return identity, ok && identity != nil
}

// SetIdentity stores identity on the context. Handler tests use it to skip
// token parsing.
func SetIdentity(c echo.Context, identity *usecase.Identity) {
	c.Set(identityKey, identity)
}

// RequireIdentity is the handler-side guard for routes mounted behind
// Authenticate.
func RequireIdentity(c echo.Context) (*usecase.Identity, error) {
	identity, ok := GetIdentity(c)
	if !ok {
		return nil, domainerrors.ErrUnauthenticated
	}

	return identity, nil
}
