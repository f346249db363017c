package handler

import (
	"log/slog"
	"net/http"

	"shiptrack/internal/delivery/api/middleware"
	"shiptrack/internal/delivery/api/response"
	"shiptrack/internal/domain/entity"
	domainerrors "shiptrack/internal/domain/errors"
	"shiptrack/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CustomerHandlerParams holds dependencies for CustomerHandler, injected by Fx.
type CustomerHandlerParams struct {
	fx.In

	CustomerUC usecase.CustomerUsecase
	Logger     *slog.Logger
}

// CustomerHandler holds dependencies for customer handlers
type CustomerHandler struct {
	customerUC usecase.CustomerUsecase
	logger     *slog.Logger
}

// NewCustomerHandler is the constructor for CustomerHandler
func NewCustomerHandler(params CustomerHandlerParams) *CustomerHandler {
	return &CustomerHandler{
		customerUC: params.CustomerUC,
		logger:     params.Logger,
	}
}

// CreateCustomerRequest represents the request body for creating a customer
type CreateCustomerRequest struct {
	Name    string `json:"name" validate:"required,max=255"`
	Email   string `json:"email" validate:"omitempty,email,max=255"`
	Phone   string `json:"phone" validate:"max=50"`
	Address string `json:"address" validate:"max=500"`
}

// UpdateCustomerRequest represents a partial customer update. An empty
// string clears an optional field.
type UpdateCustomerRequest struct {
	Name    *string `json:"name" validate:"omitnil,min=1,max=255"`
	Email   *string `json:"email" validate:"omitnil,optemail,max=255"`
	Phone   *string `json:"phone" validate:"omitnil,max=50"`
	Address *string `json:"address" validate:"omitnil,max=500"`
}

// List handles the paginated customer listing
func (h *CustomerHandler) List(c echo.Context) error {
	identity, err := middleware.RequireIdentity(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var query ListQuery
	if err := c.Bind(&query); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid query parameters")
	}

	if err := c.Validate(&query); err != nil {
		return response.HandleAppError(c, err)
	}

	out, err := h.customerUC.List(c.Request().Context(), identity.TenantID, &usecase.ListInput{
		Search: query.Search,
		Page:   query.Page,
		Limit:  query.Limit,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, response.ListResponse{
		Items:      out.Customers,
		Pagination: out.Pagination,
	})
}

// Create handles customer creation
func (h *CustomerHandler) Create(c echo.Context) error {
	identity, err := middleware.RequireIdentity(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req CreateCustomerRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid customer input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	customer, err := h.customerUC.Create(c.Request().Context(), identity, &usecase.CreateCustomerInput{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Address: req.Address,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, customer)
}

// Get handles fetching a customer with its recent shipments
func (h *CustomerHandler) Get(c echo.Context) error {
	identity, err := middleware.RequireIdentity(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	customerID, err := parseID(c, "id", domainerrors.ErrCustomerNotFound)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	detail, err := h.customerUC.Get(c.Request().Context(), identity.TenantID, customerID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, detail)
}

// Update handles partial customer updates
func (h *CustomerHandler) Update(c echo.Context) error {
	identity, err := middleware.RequireIdentity(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	customerID, err := parseID(c, "id", domainerrors.ErrCustomerNotFound)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req UpdateCustomerRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid customer input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	customer, err := h.customerUC.Update(c.Request().Context(), identity.TenantID, customerID, entity.CustomerPatch{
		Name:    trimmed(req.Name),
		Email:   trimmed(req.Email),
		Phone:   trimmed(req.Phone),
		Address: trimmed(req.Address),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, customer)
}

// Delete handles customer removal; the customer's shipments go with it
func (h *CustomerHandler) Delete(c echo.Context) error {
	identity, err := middleware.RequireIdentity(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	customerID, err := parseID(c, "id", domainerrors.ErrCustomerNotFound)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.customerUC.Delete(c.Request().Context(), identity.TenantID, customerID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, response.Message{Message: "Customer deleted successfully"})
}
