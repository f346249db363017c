package usecase

import (
	"context"
	"time"

	"shiptrack/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateShipmentInput defines the data of a new shipment.
type CreateShipmentInput struct {
	CustomerID        uuid.UUID
	Origin            string
	Destination       string
	EstimatedDelivery *time.Time
	Notes             string
}

// ListShipmentsInput narrows a shipment listing.
type ListShipmentsInput struct {
	ListInput
	Status     entity.ShipmentStatus
	CustomerID *uuid.UUID
}

// ShipmentListOutput is one page of shipments.
type ShipmentListOutput struct {
	Shipments  []*entity.Shipment
	Pagination entity.Pagination
}

// TrackingQROutput is a rendered QR code of a shipment's public page.
type TrackingQROutput struct {
	TrackingCode string
	URL          string
	PNG          []byte
}

// ShipmentUsecase defines the tenant-scoped shipment operations.
type ShipmentUsecase interface {
	List(ctx context.Context, tenantID uuid.UUID, input *ListShipmentsInput) (*ShipmentListOutput, error)

	// Create allocates a tracking code and stores a PENDING shipment if the
	// tenant's plan allows one more.
	Create(ctx context.Context, tenant *Identity, input *CreateShipmentInput) (*entity.Shipment, error)

	Get(ctx context.Context, tenantID, shipmentID uuid.UUID) (*entity.Shipment, error)

	// Update applies a partial update, appending to the timeline when the
	// status changes.
	Update(ctx context.Context, tenantID, shipmentID uuid.UUID, update entity.ShipmentUpdate) (*entity.Shipment, error)

	Delete(ctx context.Context, tenantID, shipmentID uuid.UUID) error

	TrackingQR(ctx context.Context, tenantID, shipmentID uuid.UUID) (*TrackingQROutput, error)
}
