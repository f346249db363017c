package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"shiptrack/config"
	deliverycontext "shiptrack/internal/delivery/context"
	"shiptrack/internal/domain/entity"
	domainerrors "shiptrack/internal/domain/errors"
	"shiptrack/internal/domain/repository"
	"shiptrack/internal/domain/service"
	"shiptrack/internal/infra/metrics"
	"shiptrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultTrackingAttempts = 100

// shipmentService implements the ShipmentUsecase interface.
type shipmentService struct {
	txManager    repository.TransactionManager
	shipmentRepo repository.ShipmentRepository
	customerRepo repository.CustomerRepository
	codes        service.TrackingCodeGenerator
	qrcode       service.QRCodeService
	quota        quotaGuard
	maxAttempts  int
	logger       *slog.Logger
	now          func() time.Time
}

// ShipmentServiceParams holds dependencies for ShipmentService, injected by Fx.
type ShipmentServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	ShipmentRepo repository.ShipmentRepository
	CustomerRepo repository.CustomerRepository
	Codes        service.TrackingCodeGenerator
	QRCode       service.QRCodeService
	Plans        entity.PlanTable
	Config       *config.Config
	Logger       *slog.Logger
}

// NewShipmentService is the constructor for shipmentService.
func NewShipmentService(params ShipmentServiceParams) usecase.ShipmentUsecase {
	maxAttempts := defaultTrackingAttempts
	if params.Config != nil && params.Config.Tracking != nil && params.Config.Tracking.MaxAttempts > 0 {
		maxAttempts = params.Config.Tracking.MaxAttempts
	}

	return &shipmentService{
		txManager:    params.TxManager,
		shipmentRepo: params.ShipmentRepo,
		customerRepo: params.CustomerRepo,
		codes:        params.Codes,
		qrcode:       params.QRCode,
		quota:        quotaGuard{plans: params.Plans},
		maxAttempts:  maxAttempts,
		logger:       params.Logger,
		now:          time.Now,
	}
}

func (srv *shipmentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *shipmentService) List(ctx context.Context, tenantID uuid.UUID, input *usecase.ListShipmentsInput) (*usecase.ShipmentListOutput, error) {
	if input.Status != "" && !input.Status.IsValid() {
		return nil, domainerrors.NewValidationError(domainerrors.FieldError{Field: "status", Message: "unknown status"})
	}

	page := entity.NewPage(input.Page, input.Limit)
	shipments, total, err := srv.shipmentRepo.List(ctx, entity.ShipmentFilter{
		TenantID:   tenantID,
		Status:     input.Status,
		CustomerID: input.CustomerID,
		Search:     strings.TrimSpace(input.Search),
		Page:       page,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list shipments")
	}

	return &usecase.ShipmentListOutput{
		Shipments:  shipments,
		Pagination: entity.NewPagination(page, total),
	}, nil
}

// Create checks the plan ceiling, confirms the customer belongs to the
// tenant, then inserts the shipment under a freshly drawn tracking code.
func (srv *shipmentService) Create(ctx context.Context, tenant *usecase.Identity, input *usecase.CreateShipmentInput) (*entity.Shipment, error) {
	if err := srv.quota.check(ctx, srv.log(ctx), tenant, entity.ResourceShipment, func(ctx context.Context) (int64, error) {
		return srv.shipmentRepo.CountByTenant(ctx, tenant.TenantID)
	}); err != nil {
		return nil, err
	}

	customer, err := srv.customerRepo.FindByID(ctx, tenant.TenantID, input.CustomerID)
	if errors.Is(err, repository.ErrCustomerNotFound) {
		return nil, domainerrors.ErrCustomerNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find customer")
	}

	params := entity.NewShipmentParams{
		TenantID:          tenant.TenantID,
		CustomerID:        customer.ID,
		Origin:            strings.TrimSpace(input.Origin),
		Destination:       strings.TrimSpace(input.Destination),
		EstimatedDelivery: input.EstimatedDelivery,
		Notes:             entity.NullableString(strings.TrimSpace(input.Notes)),
	}

	shipment, err := srv.insertWithFreshCode(ctx, params)
	if err != nil {
		return nil, err
	}

	shipment.Customer = &entity.CustomerSummary{
		ID:    customer.ID,
		Name:  customer.Name,
		Email: customer.Email,
		Phone: customer.Phone,
	}

	metrics.ShipmentsCreatedTotal.Inc()
	srv.log(ctx).Info("Shipment created",
		slog.String("tenantID", tenant.TenantID.String()),
		slog.String("shipmentID", shipment.ID.String()),
		slog.String("trackingCode", shipment.TrackingCode),
	)

	return shipment, nil
}

// insertWithFreshCode draws tracking codes until one is free both on the
// pre-check and on the unique index, giving up after maxAttempts.
func (srv *shipmentService) insertWithFreshCode(ctx context.Context, params entity.NewShipmentParams) (*entity.Shipment, error) {
	for attempt := 1; attempt <= srv.maxAttempts; attempt++ {
		code, err := srv.codes.Generate()
		if err != nil {
			return nil, errors.Wrap(err, "failed to generate tracking code")
		}

		taken, err := srv.shipmentRepo.ExistsByTrackingCode(ctx, code)
		if err != nil {
			return nil, errors.Wrap(err, "failed to check tracking code")
		}
		if taken {
			metrics.TrackingCodeCollisionsTotal.Inc()

			continue
		}

		params.TrackingCode = code
		shipment := entity.NewShipment(params, srv.now())

		err = srv.shipmentRepo.Create(ctx, shipment)
		if errors.Is(err, repository.ErrDuplicateTrackingCode) {
			metrics.TrackingCodeCollisionsTotal.Inc()

			continue
		}
		if errors.Is(err, repository.ErrCustomerNotFound) {
			return nil, domainerrors.ErrCustomerNotFound
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to create shipment")
		}

		return shipment, nil
	}

	srv.log(ctx).Error("Tracking code space exhausted",
		slog.String("tenantID", params.TenantID.String()),
		slog.Int("attempts", srv.maxAttempts),
	)

	return nil, domainerrors.ErrTrackingCodeExhausted
}

func (srv *shipmentService) Get(ctx context.Context, tenantID, shipmentID uuid.UUID) (*entity.Shipment, error) {
	shipment, err := srv.shipmentRepo.FindByID(ctx, tenantID, shipmentID)
	if errors.Is(err, repository.ErrShipmentNotFound) {
		return nil, domainerrors.ErrShipmentNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find shipment")
	}

	return shipment, nil
}

// Update runs the read-modify-write under a row lock so concurrent updates
// of the same shipment append to the timeline one after another.
func (srv *shipmentService) Update(ctx context.Context, tenantID, shipmentID uuid.UUID, update entity.ShipmentUpdate) (*entity.Shipment, error) {
	if update.Status != nil && !update.Status.IsValid() {
		return nil, domainerrors.NewValidationError(domainerrors.FieldError{Field: "status", Message: "unknown status"})
	}

	var (
		updated  *entity.Shipment
		appended bool
	)
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		shipmentRepo := repoFactory.NewShipmentRepository()

		shipment, err := shipmentRepo.FindByIDForUpdate(ctx, tenantID, shipmentID)
		if err != nil {
			return err
		}

		appended = shipment.Apply(update, srv.now())

		if err := shipmentRepo.Update(ctx, shipment); err != nil {
			return err
		}

		updated, err = shipmentRepo.FindByID(ctx, tenantID, shipmentID)

		return err
	})
	if errors.Is(err, repository.ErrShipmentNotFound) {
		return nil, domainerrors.ErrShipmentNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to update shipment")
	}

	if appended {
		metrics.StatusTransitionsTotal.WithLabelValues(string(updated.Status)).Inc()
		srv.log(ctx).Info("Shipment status changed",
			slog.String("shipmentID", shipmentID.String()),
			slog.String("status", string(updated.Status)),
		)
	}

	return updated, nil
}

func (srv *shipmentService) Delete(ctx context.Context, tenantID, shipmentID uuid.UUID) error {
	if err := srv.shipmentRepo.Delete(ctx, tenantID, shipmentID); err != nil {
		if errors.Is(err, repository.ErrShipmentNotFound) {
			return domainerrors.ErrShipmentNotFound
		}

		return errors.Wrap(err, "failed to delete shipment")
	}

	return nil
}

func (srv *shipmentService) TrackingQR(ctx context.Context, tenantID, shipmentID uuid.UUID) (*usecase.TrackingQROutput, error) {
	shipment, err := srv.Get(ctx, tenantID, shipmentID)
	if err != nil {
		return nil, err
	}

	png, err := srv.qrcode.GenerateTrackingQR(shipment.TrackingCode)
	if err != nil {
		return nil, errors.Wrap(err, "failed to render tracking QR code")
	}

	return &usecase.TrackingQROutput{
		TrackingCode: shipment.TrackingCode,
		URL:          srv.qrcode.TrackingURL(shipment.TrackingCode),
		PNG:          png,
	}, nil
}
