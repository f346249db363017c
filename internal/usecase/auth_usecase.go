// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"shiptrack/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to open a tenant account.
type RegisterInput struct {
	CompanyName string
	Email       string
	Password    string
}

// LoginInput defines the data required for a tenant to log in.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// SessionOutput is returned by a successful registration or login.
type SessionOutput struct {
	Token     string
	ExpiresIn time.Duration
	Tenant    *entity.TenantProfile
}

// Identity is the authenticated caller resolved from a session token.
type Identity struct {
	TenantID uuid.UUID
	Email    string
	Plan     entity.Plan
}

// AuthUsecase defines the account and session operations.
type AuthUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*SessionOutput, error)
	Login(ctx context.Context, input *LoginInput) (*SessionOutput, error)

	// Authenticate resolves a session token. Every failure is reported as
	// ErrUnauthenticated.
	Authenticate(ctx context.Context, token string) (*Identity, error)

	// Me returns the profile of the authenticated tenant.
	Me(ctx context.Context, tenantID uuid.UUID) (*entity.TenantProfile, error)

	// SessionTTL is the lifetime of issued session tokens.
	SessionTTL() time.Duration
}
