package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"shiptrack/config"
	deliverycontext "shiptrack/internal/delivery/context"
	"shiptrack/internal/domain/entity"
	domainerrors "shiptrack/internal/domain/errors"
	mockUsecase "shiptrack/internal/mocks/usecase"
	"shiptrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAuthMiddleware(t *testing.T) (*AuthMiddleware, *mockUsecase.MockAuthUsecase) {
	authUC := mockUsecase.NewMockAuthUsecase(t)
	cfg := &config.Config{Auth: &config.AuthConfig{CookieName: "auth_token"}}

	return NewAuthMiddleware(authUC, cfg), authUC
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	identity := &usecase.Identity{TenantID: uuid.New(), Email: "ops@acme.test", Plan: entity.PlanFree}

	tests := []struct {
		name      string
		prepare   func(req *http.Request)
		wantToken string
	}{
		{
			name: "cookie",
			prepare: func(req *http.Request) {
				req.AddCookie(&http.Cookie{Name: "auth_token", Value: "from-cookie"})
			},
			wantToken: "from-cookie",
		},
		{
			name: "bearer header",
			prepare: func(req *http.Request) {
				req.Header.Set(echo.HeaderAuthorization, "Bearer from-header")
			},
			wantToken: "from-header",
		},
		{
			name: "cookie wins over header",
			prepare: func(req *http.Request) {
				req.AddCookie(&http.Cookie{Name: "auth_token", Value: "from-cookie"})
				req.Header.Set(echo.HeaderAuthorization, "Bearer from-header")
			},
			wantToken: "from-cookie",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, authUC := newAuthMiddleware(t)
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/api/customers", nil)
			tt.prepare(req)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			authUC.EXPECT().Authenticate(mock.Anything, tt.wantToken).Return(identity, nil)

			var seen *usecase.Identity
			err := m.Authenticate(func(c echo.Context) error {
				seen, _ = GetIdentity(c)

				return c.NoContent(http.StatusOK)
			})(c)
			require.NoError(t, err)
			assert.Equal(t, identity, seen)
		})
	}
}

func TestAuthMiddleware_Authenticate_TagsRequestLogger(t *testing.T) {
	m, authUC := newAuthMiddleware(t)
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/customers", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer token")

	var buf bytes.Buffer
	base := slog.New(slog.NewJSONHandler(&buf, nil))
	req = req.WithContext(deliverycontext.WithLogger(req.Context(), base))
	c := e.NewContext(req, httptest.NewRecorder())

	identity := &usecase.Identity{TenantID: uuid.New(), Plan: entity.PlanFree}
	authUC.EXPECT().Authenticate(mock.Anything, "token").Return(identity, nil)

	err := m.Authenticate(func(c echo.Context) error {
		ctx := c.Request().Context()
		tenantID, ok := deliverycontext.GetTenantID(ctx)
		assert.True(t, ok)
		assert.Equal(t, identity.TenantID, tenantID)

		deliverycontext.GetLoggerOrDefault(ctx, base).Info("listing customers")

		return nil
	})(c)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"tenantID":"`+identity.TenantID.String()+`"`)
}

func TestAuthMiddleware_Authenticate_Rejected(t *testing.T) {
	m, authUC := newAuthMiddleware(t)
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/customers", nil)
	req.Header.Set(echo.HeaderAuthorization, "Basic dXNlcjpwYXNz")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	authUC.EXPECT().Authenticate(mock.Anything, "").Return(nil, domainerrors.ErrUnauthenticated)

	called := false
	err := m.Authenticate(func(c echo.Context) error {
		called = true

		return nil
	})(c)
	require.NoError(t, err)
	assert.False(t, called)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
