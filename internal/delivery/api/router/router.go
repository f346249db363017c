// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"shiptrack/config"
	"shiptrack/internal/delivery/api/middleware"
	"shiptrack/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

const defaultMetricsPath = "/metrics"

type RouterParams struct {
	fx.In

	AuthHandler      *handler.AuthHandler
	CustomerHandler  *handler.CustomerHandler
	ShipmentHandler  *handler.ShipmentHandler
	TrackingHandler  *handler.TrackingHandler
	DashboardHandler *handler.DashboardHandler
	AuthMiddleware   *middleware.AuthMiddleware
	Config           *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler      *handler.AuthHandler
	customerHandler  *handler.CustomerHandler
	shipmentHandler  *handler.ShipmentHandler
	trackingHandler  *handler.TrackingHandler
	dashboardHandler *handler.DashboardHandler
	authMiddleware   *middleware.AuthMiddleware
	config           *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:      params.AuthHandler,
		customerHandler:  params.CustomerHandler,
		shipmentHandler:  params.ShipmentHandler,
		trackingHandler:  params.TrackingHandler,
		dashboardHandler: params.DashboardHandler,
		authMiddleware:   params.AuthMiddleware,
		config:           params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	// Auth routes
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/logout", r.authHandler.Logout)
		authGroup.GET("/me", r.authHandler.Me, r.authMiddleware.Authenticate)
	}

	// Public tracking surface, no session required
	{
		api.GET("/track", r.trackingHandler.TrackScoped)
		api.GET("/track/:trackingNumber", r.trackingHandler.Track)
		api.GET("/users/:userId", r.trackingHandler.Company)
	}

	customersGroup := api.Group("/customers", r.authMiddleware.Authenticate)
	{
		customersGroup.GET("", r.customerHandler.List)
		customersGroup.POST("", r.customerHandler.Create)
		customersGroup.GET("/:id", r.customerHandler.Get)
		customersGroup.PATCH("/:id", r.customerHandler.Update)
		customersGroup.DELETE("/:id", r.customerHandler.Delete)
	}

	shipmentsGroup := api.Group("/shipments", r.authMiddleware.Authenticate)
	{
		shipmentsGroup.GET("", r.shipmentHandler.List)
		shipmentsGroup.POST("", r.shipmentHandler.Create)
		shipmentsGroup.GET("/:id", r.shipmentHandler.Get)
		shipmentsGroup.PATCH("/:id", r.shipmentHandler.Update)
		shipmentsGroup.DELETE("/:id", r.shipmentHandler.Delete)
		shipmentsGroup.GET("/:id/qr", r.shipmentHandler.TrackingQR)
	}

	dashboardGroup := api.Group("/dashboard", r.authMiddleware.Authenticate)
	{
		dashboardGroup.GET("/stats", r.dashboardHandler.Stats)
	}
}

// RegisterMetricsRoutes exposes the Prometheus registry when enabled.
func (r *router) RegisterMetricsRoutes(e *echo.Echo) {
	if r.config.Metrics == nil || !r.config.Metrics.Enabled {
		return
	}

	path := r.config.Metrics.Path
	if path == "" {
		path = defaultMetricsPath
	}

	e.GET(path, echo.WrapHandler(promhttp.Handler()))
}
