package impl

import (
	"context"

	"shiptrack/internal/domain/entity"
	"shiptrack/internal/domain/repository"
	"shiptrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// dashboardService implements the DashboardUsecase interface.
type dashboardService struct {
	customerRepo repository.CustomerRepository
	shipmentRepo repository.ShipmentRepository
}

// NewDashboardService is the constructor for dashboardService.
func NewDashboardService(customerRepo repository.CustomerRepository, shipmentRepo repository.ShipmentRepository) usecase.DashboardUsecase {
	return &dashboardService{
		customerRepo: customerRepo,
		shipmentRepo: shipmentRepo,
	}
}

func (srv *dashboardService) Stats(ctx context.Context, tenantID uuid.UUID) (*usecase.DashboardOutput, error) {
	var (
		stats entity.DashboardStats
		err   error
	)

	if stats.TotalCustomers, err = srv.customerRepo.CountByTenant(ctx, tenantID); err != nil {
		return nil, errors.Wrap(err, "failed to count customers")
	}
	if stats.TotalShipments, err = srv.shipmentRepo.CountByTenant(ctx, tenantID); err != nil {
		return nil, errors.Wrap(err, "failed to count shipments")
	}
	if stats.ActiveShipments, err = srv.shipmentRepo.CountByStatus(ctx, tenantID, entity.ActiveStatuses...); err != nil {
		return nil, errors.Wrap(err, "failed to count active shipments")
	}
	if stats.DeliveredShipments, err = srv.shipmentRepo.CountByStatus(ctx, tenantID, entity.StatusDelivered); err != nil {
		return nil, errors.Wrap(err, "failed to count delivered shipments")
	}
	if stats.PendingShipments, err = srv.shipmentRepo.CountByStatus(ctx, tenantID, entity.StatusPending); err != nil {
		return nil, errors.Wrap(err, "failed to count pending shipments")
	}

	recent, err := srv.shipmentRepo.ListRecent(ctx, tenantID, recentShipmentsLimit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list recent shipments")
	}

	return &usecase.DashboardOutput{Stats: stats, RecentShipments: recent}, nil
}
