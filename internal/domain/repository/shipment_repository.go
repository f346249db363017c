package repository

import (
	"context"

	"shiptrack/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for shipment persistence.
var (
	// ErrShipmentNotFound is returned when the shipment does not exist or is
	// outside the caller's scope.
	ErrShipmentNotFound = errors.New("shipment not found")
	// ErrDuplicateTrackingCode is returned when the tracking code is taken.
	ErrDuplicateTrackingCode = errors.New("tracking code already exists")
)

// ShipmentRepository defines the shipment persistence operations.
type ShipmentRepository interface {
	Create(ctx context.Context, shipment *entity.Shipment) error

	// ExistsByTrackingCode checks the global tracking code namespace.
	ExistsByTrackingCode(ctx context.Context, code string) (bool, error)

	// FindByID returns a tenant's shipment with its customer summary.
	FindByID(ctx context.Context, tenantID, id uuid.UUID) (*entity.Shipment, error)

	// FindByIDForUpdate is FindByID holding a row lock until the surrounding
	// transaction ends.
	FindByIDForUpdate(ctx context.Context, tenantID, id uuid.UUID) (*entity.Shipment, error)

	// List returns one page of shipments, newest first, and the total number
	// of matches.
	List(ctx context.Context, filter entity.ShipmentFilter) ([]*entity.Shipment, int64, error)

	// ListRecent returns a tenant's latest shipments.
	ListRecent(ctx context.Context, tenantID uuid.UUID, limit int) ([]*entity.Shipment, error)

	// ListRecentByCustomer returns a customer's latest shipments.
	ListRecentByCustomer(ctx context.Context, tenantID, customerID uuid.UUID, limit int) ([]*entity.Shipment, error)

	CountByTenant(ctx context.Context, tenantID uuid.UUID) (int64, error)

	// CountByStatus counts a tenant's shipments in any of statuses.
	CountByStatus(ctx context.Context, tenantID uuid.UUID, statuses ...entity.ShipmentStatus) (int64, error)

	Update(ctx context.Context, shipment *entity.Shipment) error

	Delete(ctx context.Context, tenantID, id uuid.UUID) error

	// FindForTracking resolves a tracking code for public lookup. A nil
	// tenantID searches every tenant.
	FindForTracking(ctx context.Context, code string, tenantID *uuid.UUID) (*entity.TrackedShipment, error)
}
