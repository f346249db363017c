package impl

import (
	"context"
	"testing"

	"shiptrack/internal/domain/entity"
	mockRepo "shiptrack/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardService_Stats(t *testing.T) {
	ctx := context.Background()
	tenantID := uuid.New()

	customerRepo := mockRepo.NewMockCustomerRepository(t)
	shipmentRepo := mockRepo.NewMockShipmentRepository(t)
	svc := NewDashboardService(customerRepo, shipmentRepo)

	customerRepo.EXPECT().CountByTenant(ctx, tenantID).Return(int64(12), nil)
	shipmentRepo.EXPECT().CountByTenant(ctx, tenantID).Return(int64(40), nil)
	shipmentRepo.EXPECT().
		CountByStatus(ctx, tenantID, entity.StatusPickedUp, entity.StatusInTransit, entity.StatusOutForDelivery).
		Return(int64(9), nil)
	shipmentRepo.EXPECT().CountByStatus(ctx, tenantID, entity.StatusDelivered).Return(int64(25), nil)
	shipmentRepo.EXPECT().CountByStatus(ctx, tenantID, entity.StatusPending).Return(int64(4), nil)
	shipmentRepo.EXPECT().
		ListRecent(ctx, tenantID, recentShipmentsLimit).
		Return([]*entity.Shipment{{ID: uuid.New()}, {ID: uuid.New()}}, nil)

	out, err := svc.Stats(ctx, tenantID)
	require.NoError(t, err)
	assert.Equal(t, entity.DashboardStats{
		TotalCustomers:     12,
		TotalShipments:     40,
		ActiveShipments:    9,
		DeliveredShipments: 25,
		PendingShipments:   4,
	}, out.Stats)
	assert.Len(t, out.RecentShipments, 2)
}

func TestDashboardService_Stats_CountFailure(t *testing.T) {
	ctx := context.Background()
	tenantID := uuid.New()

	customerRepo := mockRepo.NewMockCustomerRepository(t)
	svc := NewDashboardService(customerRepo, mockRepo.NewMockShipmentRepository(t))

	customerRepo.EXPECT().CountByTenant(ctx, tenantID).Return(int64(0), errors.New("timeout"))

	_, err := svc.Stats(ctx, tenantID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to count customers")
}
