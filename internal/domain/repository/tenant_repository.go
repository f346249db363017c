// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"shiptrack/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for tenant persistence.
var (
	// ErrTenantNotFound is returned when no tenant matches the lookup.
	ErrTenantNotFound = errors.New("tenant not found")
	// ErrDuplicateEmail is returned when the email is already registered.
	ErrDuplicateEmail = errors.New("email already registered")
)

// TenantRepository defines the standard operations for tenant persistence.
type TenantRepository interface {
	// Create persists a new tenant and fills its ID and timestamps.
	Create(ctx context.Context, tenant *entity.Tenant) error

	// FindByID retrieves a tenant by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Tenant, error)

	// FindByEmail retrieves a tenant by its login email.
	FindByEmail(ctx context.Context, email string) (*entity.Tenant, error)

	// UpdatePasswordHash replaces the stored password hash.
	UpdatePasswordHash(ctx context.Context, id uuid.UUID, hash string) error
}
