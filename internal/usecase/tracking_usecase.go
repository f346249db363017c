package usecase

import (
	"context"

	"shiptrack/internal/domain/entity"

	"github.com/google/uuid"
)

// TrackingUsecase defines the unauthenticated read surface.
type TrackingUsecase interface {
	// Track looks up a shipment by tracking code. A non-nil tenantID limits
	// the match to that tenant; nil searches all tenants.
	Track(ctx context.Context, code string, tenantID *uuid.UUID) (*entity.PublicShipmentView, error)

	// CompanyName returns the display name shown in the tracking widget.
	CompanyName(ctx context.Context, tenantID uuid.UUID) (string, error)
}
