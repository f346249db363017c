package handler

import (
	"log/slog"
	"net/http"
	"time"

	"shiptrack/config"
	"shiptrack/internal/delivery/api/middleware"
	"shiptrack/internal/delivery/api/response"
	"shiptrack/internal/domain/entity"
	"shiptrack/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	AuthUC usecase.AuthUsecase
	Config *config.Config
	Logger *slog.Logger
}

// AuthHandler holds dependencies for account and session handlers
type AuthHandler struct {
	authUC       usecase.AuthUsecase
	cookieName   string
	secureCookie bool
	logger       *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		authUC:       params.AuthUC,
		cookieName:   params.Config.Auth.CookieName,
		secureCookie: params.Config.Auth.SecureCookie,
		logger:       params.Logger,
	}
}

// RegisterRequest represents the request body for opening an account
type RegisterRequest struct {
	CompanyName string `json:"companyName" validate:"required,max=255"`
	Email       string `json:"email" validate:"required,email,max=255"`
	Password    string `json:"password" validate:"required,min=6,max=72"`
}

// LoginRequest represents the request body for logging in
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// SessionResponse is returned after register and login. The token is also
// set as an httpOnly cookie; API clients may send it as a Bearer header.
type SessionResponse struct {
	Token     string                `json:"token"`
	ExpiresIn int64                 `json:"expiresIn"`
	User      *entity.TenantProfile `json:"user"`
}

// Register handles account creation
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	session, err := h.authUC.Register(c.Request().Context(), &usecase.RegisterInput{
		CompanyName: req.CompanyName,
		Email:       req.Email,
		Password:    req.Password,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	h.setSessionCookie(c, session.Token, session.ExpiresIn)

	return response.Success(c, http.StatusCreated, newSessionResponse(session))
}

// Login handles credential verification
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	session, err := h.authUC.Login(c.Request().Context(), &usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	h.setSessionCookie(c, session.Token, session.ExpiresIn)

	return response.Success(c, http.StatusOK, newSessionResponse(session))
}

// Logout clears the session cookie. Tokens are stateless, so a copied token
// stays valid until it expires.
func (h *AuthHandler) Logout(c echo.Context) error {
	c.SetCookie(&http.Cookie{
		Name:     h.cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})

	return response.Success(c, http.StatusOK, response.Message{Message: "Logged out successfully"})
}

// Me returns the authenticated tenant's profile
func (h *AuthHandler) Me(c echo.Context) error {
	identity, err := middleware.RequireIdentity(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	profile, err := h.authUC.Me(c.Request().Context(), identity.TenantID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, profile)
}

func (h *AuthHandler) setSessionCookie(c echo.Context, token string, ttl time.Duration) {
	c.SetCookie(&http.Cookie{
		Name:     h.cookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})
}

func newSessionResponse(session *usecase.SessionOutput) SessionResponse {
	return SessionResponse{
		Token:     session.Token,
		ExpiresIn: int64(session.ExpiresIn.Seconds()),
		User:      session.Tenant,
	}
}

// HealthCheck reports liveness
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}
