package repository

import (
	"context"

	"shiptrack/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrCustomerNotFound is returned when the customer does not exist or
// belongs to another tenant.
var ErrCustomerNotFound = errors.New("customer not found")

// CustomerRepository defines the tenant-scoped customer operations. Every
// lookup takes the owning tenant so that rows of other tenants are
// indistinguishable from missing rows.
type CustomerRepository interface {
	Create(ctx context.Context, customer *entity.Customer) error

	// FindByID returns the customer with its shipment count.
	FindByID(ctx context.Context, tenantID, id uuid.UUID) (*entity.Customer, error)

	// List returns one page of customers, newest first, and the total number
	// of matches.
	List(ctx context.Context, filter entity.CustomerFilter) ([]*entity.Customer, int64, error)

	CountByTenant(ctx context.Context, tenantID uuid.UUID) (int64, error)

	Update(ctx context.Context, customer *entity.Customer) error

	// Delete removes the customer and, through the foreign key, its shipments.
	Delete(ctx context.Context, tenantID, id uuid.UUID) error
}
