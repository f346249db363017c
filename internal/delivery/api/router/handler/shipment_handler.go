package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"shiptrack/internal/delivery/api/middleware"
	"shiptrack/internal/delivery/api/response"
	"shiptrack/internal/domain/entity"
	domainerrors "shiptrack/internal/domain/errors"
	"shiptrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ShipmentHandlerParams holds dependencies for ShipmentHandler, injected by Fx.
type ShipmentHandlerParams struct {
	fx.In

	ShipmentUC usecase.ShipmentUsecase
	Logger     *slog.Logger
}

// ShipmentHandler holds dependencies for shipment handlers
type ShipmentHandler struct {
	shipmentUC usecase.ShipmentUsecase
	logger     *slog.Logger
}

// NewShipmentHandler is the constructor for ShipmentHandler
func NewShipmentHandler(params ShipmentHandlerParams) *ShipmentHandler {
	return &ShipmentHandler{
		shipmentUC: params.ShipmentUC,
		logger:     params.Logger,
	}
}

// ListShipmentsQuery narrows the shipment listing
type ListShipmentsQuery struct {
	ListQuery
	Status     string `query:"status" validate:"omitempty,oneof=PENDING PICKED_UP IN_TRANSIT OUT_FOR_DELIVERY DELIVERED CANCELLED RETURNED"`
	CustomerID string `query:"customerId" validate:"omitempty,uuid"`
}

// CreateShipmentRequest represents the request body for creating a shipment
type CreateShipmentRequest struct {
	CustomerID        string       `json:"customerId" validate:"required,uuid"`
	Origin            string       `json:"origin" validate:"required,max=255"`
	Destination       string       `json:"destination" validate:"required,max=255"`
	EstimatedDelivery OptionalDate `json:"estimatedDelivery"`
	Notes             string       `json:"notes" validate:"max=2000"`
}

// UpdateShipmentRequest represents a partial shipment update
type UpdateShipmentRequest struct {
	Status            *string      `json:"status" validate:"omitnil,oneof=PENDING PICKED_UP IN_TRANSIT OUT_FOR_DELIVERY DELIVERED CANCELLED RETURNED"`
	CurrentLocation   *string      `json:"currentLocation" validate:"omitnil,max=255"`
	Notes             *string      `json:"notes" validate:"omitnil,max=2000"`
	EstimatedDelivery OptionalDate `json:"estimatedDelivery"`
}

// List handles the paginated shipment listing
func (h *ShipmentHandler) List(c echo.Context) error {
	identity, err := middleware.RequireIdentity(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var query ListShipmentsQuery
	if err := c.Bind(&query); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid query parameters")
	}

	if err := c.Validate(&query); err != nil {
		return response.HandleAppError(c, err)
	}

	input := &usecase.ListShipmentsInput{
		ListInput: usecase.ListInput{
			Search: query.Search,
			Page:   query.Page,
			Limit:  query.Limit,
		},
		Status: entity.ShipmentStatus(query.Status),
	}
	if query.CustomerID != "" {
		customerID := uuid.MustParse(query.CustomerID)
		input.CustomerID = &customerID
	}

	out, err := h.shipmentUC.List(c.Request().Context(), identity.TenantID, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, response.ListResponse{
		Items:      out.Shipments,
		Pagination: out.Pagination,
	})
}

// Create handles shipment creation
func (h *ShipmentHandler) Create(c echo.Context) error {
	identity, err := middleware.RequireIdentity(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req CreateShipmentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid shipment input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	shipment, err := h.shipmentUC.Create(c.Request().Context(), identity, &usecase.CreateShipmentInput{
		CustomerID:        uuid.MustParse(req.CustomerID),
		Origin:            req.Origin,
		Destination:       req.Destination,
		EstimatedDelivery: req.EstimatedDelivery.Value,
		Notes:             req.Notes,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, shipment)
}

// Get handles fetching a single shipment
func (h *ShipmentHandler) Get(c echo.Context) error {
	identity, err := middleware.RequireIdentity(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	shipmentID, err := parseID(c, "id", domainerrors.ErrShipmentNotFound)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	shipment, err := h.shipmentUC.Get(c.Request().Context(), identity.TenantID, shipmentID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, shipment)
}

// Update handles status changes and other partial updates
func (h *ShipmentHandler) Update(c echo.Context) error {
	identity, err := middleware.RequireIdentity(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	shipmentID, err := parseID(c, "id", domainerrors.ErrShipmentNotFound)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req UpdateShipmentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid shipment input")
	}

	req.normalize()
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	shipment, err := h.shipmentUC.Update(c.Request().Context(), identity.TenantID, shipmentID, req.toUpdate())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, shipment)
}

// normalize drops a blank status so the rest of the patch still applies.
func (req *UpdateShipmentRequest) normalize() {
	if req.Status != nil && strings.TrimSpace(*req.Status) == "" {
		req.Status = nil
	}
}

func (req UpdateShipmentRequest) toUpdate() entity.ShipmentUpdate {
	update := entity.ShipmentUpdate{
		Location: trimmed(req.CurrentLocation),
		Notes:    trimmed(req.Notes),
	}

	if req.Status != nil {
		if status := entity.ShipmentStatus(strings.TrimSpace(*req.Status)); status != "" {
			update.Status = &status
		}
	}

	if req.EstimatedDelivery.Set {
		update.EstimatedDelivery = req.EstimatedDelivery.Value
		update.ClearEstimatedDelivery = req.EstimatedDelivery.Value == nil
	}

	return update
}

// Delete handles shipment removal
func (h *ShipmentHandler) Delete(c echo.Context) error {
	identity, err := middleware.RequireIdentity(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	shipmentID, err := parseID(c, "id", domainerrors.ErrShipmentNotFound)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.shipmentUC.Delete(c.Request().Context(), identity.TenantID, shipmentID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, response.Message{Message: "Shipment deleted successfully"})
}

// TrackingQR renders the public tracking link of a shipment as a PNG
func (h *ShipmentHandler) TrackingQR(c echo.Context) error {
	identity, err := middleware.RequireIdentity(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	shipmentID, err := parseID(c, "id", domainerrors.ErrShipmentNotFound)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	qr, err := h.shipmentUC.TrackingQR(c.Request().Context(), identity.TenantID, shipmentID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	c.Response().Header().Set("Content-Disposition", "inline; filename="+qr.TrackingCode+".png")
	c.Response().Header().Set("X-Tracking-Url", qr.URL)

	return c.Blob(http.StatusOK, "image/png", qr.PNG)
}
