package usecase

import (
	"context"

	"shiptrack/internal/domain/entity"

	"github.com/google/uuid"
)

// DashboardOutput holds the tenant's summary counters and latest shipments.
type DashboardOutput struct {
	Stats           entity.DashboardStats `json:"stats"`
	RecentShipments []*entity.Shipment   `json:"recentShipments"`
}

// DashboardUsecase defines the dashboard read model.
type DashboardUsecase interface {
	Stats(ctx context.Context, tenantID uuid.UUID) (*DashboardOutput, error)
}
