package handler

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"shiptrack/internal/domain/entity"
	domainerrors "shiptrack/internal/domain/errors"
	mockUsecase "shiptrack/internal/mocks/usecase"
	"shiptrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestShipmentHandler(t *testing.T) (*ShipmentHandler, *mockUsecase.MockShipmentUsecase) {
	shipmentUC := mockUsecase.NewMockShipmentUsecase(t)

	return NewShipmentHandler(ShipmentHandlerParams{
		ShipmentUC: shipmentUC,
		Logger:     newDiscardLogger(),
	}), shipmentUC
}

func TestShipmentHandler_Create(t *testing.T) {
	h, shipmentUC := createTestShipmentHandler(t)
	e := newTestEcho()
	customerID := uuid.New()
	c, rec := newRequestContext(e, http.MethodPost, "/api/shipments",
		`{"customerId":"`+customerID.String()+`","origin":"New York, NY","destination":"Boston, MA","estimatedDelivery":"2024-03-10"}`)
	identity := authenticate(c, entity.PlanFree)

	eta := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	shipmentUC.EXPECT().
		Create(mock.Anything, identity, &usecase.CreateShipmentInput{
			CustomerID:        customerID,
			Origin:            "New York, NY",
			Destination:       "Boston, MA",
			EstimatedDelivery: &eta,
		}).
		Return(&entity.Shipment{ID: uuid.New(), TrackingCode: "TKS-7K2M9QXA", Status: entity.StatusPending}, nil)

	require.NoError(t, h.Create(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"trackingNumber":"TKS-7K2M9QXA"`)
}

func TestShipmentHandler_Create_ForeignCustomer(t *testing.T) {
	h, shipmentUC := createTestShipmentHandler(t)
	e := newTestEcho()
	c, rec := newRequestContext(e, http.MethodPost, "/api/shipments",
		`{"customerId":"`+uuid.NewString()+`","origin":"A","destination":"B"}`)
	authenticate(c, entity.PlanFree)

	shipmentUC.EXPECT().Create(mock.Anything, mock.Anything, mock.Anything).Return(nil, domainerrors.ErrCustomerNotFound)

	require.NoError(t, h.Create(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestShipmentHandler_Create_InvalidCustomerID(t *testing.T) {
	h, _ := createTestShipmentHandler(t)
	e := newTestEcho()
	c, rec := newRequestContext(e, http.MethodPost, "/api/shipments", `{"customerId":"42","origin":"A","destination":"B"}`)
	authenticate(c, entity.PlanFree)

	require.NoError(t, h.Create(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `"field":"customerId"`)
}

func TestShipmentHandler_List_RejectsUnknownStatus(t *testing.T) {
	h, _ := createTestShipmentHandler(t)
	e := newTestEcho()
	c, rec := newRequestContext(e, http.MethodGet, "/api/shipments?status=LOST", "")
	authenticate(c, entity.PlanFree)

	require.NoError(t, h.List(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestShipmentHandler_List_CustomerFilter(t *testing.T) {
	h, shipmentUC := createTestShipmentHandler(t)
	e := newTestEcho()
	customerID := uuid.New()
	c, rec := newRequestContext(e, http.MethodGet, "/api/shipments?status=IN_TRANSIT&customerId="+customerID.String(), "")
	identity := authenticate(c, entity.PlanFree)

	shipmentUC.EXPECT().
		List(mock.Anything, identity.TenantID, &usecase.ListShipmentsInput{
			Status:     entity.StatusInTransit,
			CustomerID: &customerID,
		}).
		Return(&usecase.ShipmentListOutput{Pagination: entity.NewPagination(entity.NewPage(0, 0), 0)}, nil)

	require.NoError(t, h.List(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestUpdateShipmentRequest_ToUpdate(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		check func(t *testing.T, u entity.ShipmentUpdate)
	}{
		{
			name: "status and location",
			body: `{"status":"DELIVERED","currentLocation":" Boston, MA "}`,
			check: func(t *testing.T, u entity.ShipmentUpdate) {
				require.NotNil(t, u.Status)
				assert.Equal(t, entity.StatusDelivered, *u.Status)
				require.NotNil(t, u.Location)
				assert.Equal(t, "Boston, MA", *u.Location)
				assert.Nil(t, u.Notes)
				assert.False(t, u.ClearEstimatedDelivery)
			},
		},
		{
			name: "explicit null clears eta",
			body: `{"estimatedDelivery":null}`,
			check: func(t *testing.T, u entity.ShipmentUpdate) {
				assert.True(t, u.ClearEstimatedDelivery)
				assert.Nil(t, u.EstimatedDelivery)
				assert.Nil(t, u.Status)
			},
		},
		{
			name: "absent eta untouched",
			body: `{"notes":""}`,
			check: func(t *testing.T, u entity.ShipmentUpdate) {
				assert.False(t, u.ClearEstimatedDelivery)
				assert.Nil(t, u.EstimatedDelivery)
				require.NotNil(t, u.Notes)
				assert.Empty(t, *u.Notes)
			},
		},
		{
			name: "blank status keeps other fields",
			body: `{"status":"","currentLocation":"Chicago, IL"}`,
			check: func(t *testing.T, u entity.ShipmentUpdate) {
				assert.Nil(t, u.Status)
				require.NotNil(t, u.Location)
				assert.Equal(t, "Chicago, IL", *u.Location)
			},
		},
		{
			name: "timestamp eta",
			body: `{"estimatedDelivery":"2024-03-10T15:00:00+02:00"}`,
			check: func(t *testing.T, u entity.ShipmentUpdate) {
				require.NotNil(t, u.EstimatedDelivery)
				assert.Equal(t, time.Date(2024, 3, 10, 13, 0, 0, 0, time.UTC), *u.EstimatedDelivery)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req UpdateShipmentRequest
			require.NoError(t, json.Unmarshal([]byte(tt.body), &req))
			tt.check(t, req.toUpdate())
		})
	}
}

func TestShipmentHandler_Update_BlankStatus(t *testing.T) {
	h, shipmentUC := createTestShipmentHandler(t)
	e := newTestEcho()
	shipmentID := uuid.New()
	c, rec := newRequestContext(e, http.MethodPatch, "/api/shipments/"+shipmentID.String(),
		`{"status":"","currentLocation":"Chicago, IL"}`)
	c.SetParamNames("id")
	c.SetParamValues(shipmentID.String())
	identity := authenticate(c, entity.PlanFree)

	location := "Chicago, IL"
	shipmentUC.EXPECT().
		Update(mock.Anything, identity.TenantID, shipmentID, entity.ShipmentUpdate{Location: &location}).
		Return(&entity.Shipment{ID: shipmentID, Status: entity.StatusInTransit, CurrentLocation: &location}, nil)

	require.NoError(t, h.Update(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"currentLocation":"Chicago, IL"`)
}

func TestShipmentHandler_Update_NotFound(t *testing.T) {
	h, shipmentUC := createTestShipmentHandler(t)
	e := newTestEcho()
	shipmentID := uuid.New()
	c, rec := newRequestContext(e, http.MethodPatch, "/api/shipments/"+shipmentID.String(), `{"status":"IN_TRANSIT"}`)
	c.SetParamNames("id")
	c.SetParamValues(shipmentID.String())
	identity := authenticate(c, entity.PlanFree)

	shipmentUC.EXPECT().
		Update(mock.Anything, identity.TenantID, shipmentID, mock.AnythingOfType("entity.ShipmentUpdate")).
		Return(nil, domainerrors.ErrShipmentNotFound)

	require.NoError(t, h.Update(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestShipmentHandler_TrackingQR(t *testing.T) {
	h, shipmentUC := createTestShipmentHandler(t)
	e := newTestEcho()
	shipmentID := uuid.New()
	c, rec := newRequestContext(e, http.MethodGet, "/api/shipments/"+shipmentID.String()+"/qr", "")
	c.SetParamNames("id")
	c.SetParamValues(shipmentID.String())
	identity := authenticate(c, entity.PlanFree)

	png := []byte{0x89, 'P', 'N', 'G'}
	shipmentUC.EXPECT().TrackingQR(mock.Anything, identity.TenantID, shipmentID).Return(&usecase.TrackingQROutput{
		TrackingCode: "TKS-7K2M9QXA",
		URL:          "https://track.example.com/track/TKS-7K2M9QXA",
		PNG:          png,
	}, nil)

	require.NoError(t, h.TrackingQR(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.Equal(t, "https://track.example.com/track/TKS-7K2M9QXA", rec.Header().Get("X-Tracking-Url"))
	assert.Equal(t, png, rec.Body.Bytes())
}
