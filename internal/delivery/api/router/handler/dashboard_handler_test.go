package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"shiptrack/internal/domain/entity"
	domainerrors "shiptrack/internal/domain/errors"
	mockUsecase "shiptrack/internal/mocks/usecase"
	"shiptrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDashboardHandler_Stats(t *testing.T) {
	dashboardUC := mockUsecase.NewMockDashboardUsecase(t)
	h := NewDashboardHandler(dashboardUC)
	e := newTestEcho()
	c, rec := newRequestContext(e, http.MethodGet, "/api/dashboard/stats", "")
	identity := authenticate(c, entity.PlanBasic)

	dashboardUC.EXPECT().
		Stats(mock.Anything, identity.TenantID).
		Return(&usecase.DashboardOutput{
			Stats: entity.DashboardStats{
				TotalCustomers:     4,
				TotalShipments:     9,
				ActiveShipments:    5,
				DeliveredShipments: 3,
				PendingShipments:   1,
			},
			RecentShipments: []*entity.Shipment{
				{ID: uuid.New(), TrackingCode: "TKS-7K2M9QXA", Status: entity.StatusInTransit},
			},
		}, nil)

	require.NoError(t, h.Stats(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	env := decodeEnvelope(t, rec)
	require.Nil(t, env.Error)

	var out struct {
		Stats           entity.DashboardStats `json:"stats"`
		RecentShipments []map[string]any      `json:"recentShipments"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &out))
	assert.Equal(t, int64(9), out.Stats.TotalShipments)
	assert.Equal(t, int64(5), out.Stats.ActiveShipments)
	require.Len(t, out.RecentShipments, 1)
	assert.Equal(t, "TKS-7K2M9QXA", out.RecentShipments[0]["trackingNumber"])
}

func TestDashboardHandler_Stats_Unauthenticated(t *testing.T) {
	dashboardUC := mockUsecase.NewMockDashboardUsecase(t)
	h := NewDashboardHandler(dashboardUC)
	e := newTestEcho()
	c, rec := newRequestContext(e, http.MethodGet, "/api/dashboard/stats", "")

	require.NoError(t, h.Stats(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	dashboardUC.AssertNotCalled(t, "Stats", mock.Anything, mock.Anything)
}

func TestDashboardHandler_Stats_Error(t *testing.T) {
	dashboardUC := mockUsecase.NewMockDashboardUsecase(t)
	h := NewDashboardHandler(dashboardUC)
	e := newTestEcho()
	c, rec := newRequestContext(e, http.MethodGet, "/api/dashboard/stats", "")
	authenticate(c, entity.PlanFree)

	dashboardUC.EXPECT().
		Stats(mock.Anything, mock.Anything).
		Return(nil, domainerrors.NewDatabaseExecuteError(assert.AnError, "failed to count"))

	require.NoError(t, h.Stats(c))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	env := decodeEnvelope(t, rec)
	require.NotNil(t, env.Error)
	assert.NotContains(t, rec.Body.String(), assert.AnError.Error())
}
