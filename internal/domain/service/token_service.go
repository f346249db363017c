package service

import (
	"time"

	"shiptrack/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims of a session token.
type Claims struct {
	TenantID uuid.UUID   `json:"userId"`
	Email    string      `json:"email"`
	Plan     entity.Plan `json:"plan"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies session tokens.
type TokenService interface {
	// Issue signs a session token for tenant.
	Issue(tenant *entity.Tenant) (string, error)

	// Verify checks the signature and expiry of token. Any failure is
	// reported as an error and no claims are returned.
	Verify(token string) (*Claims, error)

	// SessionTTL is the lifetime of issued tokens.
	SessionTTL() time.Duration
}
