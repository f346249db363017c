package impl

import (
	"context"
	"log/slog"

	deliverycontext "shiptrack/internal/delivery/context"
	"shiptrack/internal/domain/entity"
	domainerrors "shiptrack/internal/domain/errors"
	"shiptrack/internal/domain/repository"
	"shiptrack/internal/infra/metrics"
	"shiptrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// trackingService implements the TrackingUsecase interface.
type trackingService struct {
	shipmentRepo repository.ShipmentRepository
	tenantRepo   repository.TenantRepository
	logger       *slog.Logger
}

// NewTrackingService is the constructor for trackingService.
func NewTrackingService(shipmentRepo repository.ShipmentRepository, tenantRepo repository.TenantRepository, logger *slog.Logger) usecase.TrackingUsecase {
	return &trackingService{
		shipmentRepo: shipmentRepo,
		tenantRepo:   tenantRepo,
		logger:       logger,
	}
}

func (srv *trackingService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Track returns the public view of a shipment. Within a tenant scope a code
// owned by another tenant is reported exactly like an unknown code.
func (srv *trackingService) Track(ctx context.Context, code string, tenantID *uuid.UUID) (*entity.PublicShipmentView, error) {
	scope := "global"
	if tenantID != nil {
		scope = "tenant"
	}

	if !entity.IsValidTrackingCode(code) {
		metrics.TrackingLookupsTotal.WithLabelValues(scope, "invalid").Inc()

		return nil, domainerrors.ErrInvalidTrackingCode
	}

	tracked, err := srv.shipmentRepo.FindForTracking(ctx, code, tenantID)
	if errors.Is(err, repository.ErrShipmentNotFound) {
		metrics.TrackingLookupsTotal.WithLabelValues(scope, "not_found").Inc()

		return nil, domainerrors.ErrShipmentNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to track shipment")
	}

	metrics.TrackingLookupsTotal.WithLabelValues(scope, "found").Inc()
	srv.log(ctx).Debug("Shipment tracked", slog.String("trackingCode", code), slog.String("scope", scope))

	return tracked.PublicView(), nil
}

func (srv *trackingService) CompanyName(ctx context.Context, tenantID uuid.UUID) (string, error) {
	tenant, err := srv.tenantRepo.FindByID(ctx, tenantID)
	if errors.Is(err, repository.ErrTenantNotFound) {
		return "", domainerrors.ErrTenantNotFound
	}
	if err != nil {
		return "", errors.Wrap(err, "failed to find tenant")
	}

	return tenant.CompanyName, nil
}
