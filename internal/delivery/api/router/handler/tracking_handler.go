package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"shiptrack/internal/delivery/api/response"
	"shiptrack/internal/domain/entity"
	domainerrors "shiptrack/internal/domain/errors"
	"shiptrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// TrackingHandlerParams holds dependencies for TrackingHandler, injected by Fx.
type TrackingHandlerParams struct {
	fx.In

	TrackingUC usecase.TrackingUsecase
	Logger     *slog.Logger
}

// TrackingHandler serves the unauthenticated tracking surface
type TrackingHandler struct {
	trackingUC usecase.TrackingUsecase
	logger     *slog.Logger
}

// NewTrackingHandler is the constructor for TrackingHandler
func NewTrackingHandler(params TrackingHandlerParams) *TrackingHandler {
	return &TrackingHandler{
		trackingUC: params.TrackingUC,
		logger:     params.Logger,
	}
}

// CompanyResponse is the public header of a tenant's tracking widget
type CompanyResponse struct {
	CompanyName string `json:"companyName"`
}

// TrackScoped handles GET /api/track?trackingNumber=&userId=. Both
// parameters are required and the shipment must belong to that tenant.
func (h *TrackingHandler) TrackScoped(c echo.Context) error {
	code := strings.TrimSpace(c.QueryParam("trackingNumber"))
	rawTenant := strings.TrimSpace(c.QueryParam("userId"))

	var missing []domainerrors.FieldError
	if code == "" {
		missing = append(missing, domainerrors.FieldError{Field: "trackingNumber", Message: "is required"})
	}
	if rawTenant == "" {
		missing = append(missing, domainerrors.FieldError{Field: "userId", Message: "is required"})
	}
	if len(missing) > 0 {
		return response.ValidationError(c, missing)
	}

	return h.track(c, code, rawTenant)
}

// Track handles GET /api/track/:trackingNumber with an optional userId scope
func (h *TrackingHandler) Track(c echo.Context) error {
	return h.track(c, strings.TrimSpace(c.Param("trackingNumber")), strings.TrimSpace(c.QueryParam("userId")))
}

func (h *TrackingHandler) track(c echo.Context, code, rawTenant string) error {
	var scope *uuid.UUID
	if rawTenant != "" {
		tenantID, err := uuid.Parse(rawTenant)
		if err != nil {
			if !entity.IsValidTrackingCode(code) {
				return response.HandleAppError(c, domainerrors.ErrInvalidTrackingCode)
			}

			// No tenant can own the shipment.
			return response.HandleAppError(c, domainerrors.ErrShipmentNotFound)
		}
		scope = &tenantID
	}

	view, err := h.trackingUC.Track(c.Request().Context(), code, scope)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, view)
}

// Company handles GET /api/users/:userId
func (h *TrackingHandler) Company(c echo.Context) error {
	tenantID, err := parseID(c, "userId", domainerrors.ErrTenantNotFound)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	name, err := h.trackingUC.CompanyName(c.Request().Context(), tenantID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, CompanyResponse{CompanyName: name})
}
