package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "shiptrack/internal/delivery/context"
	"shiptrack/internal/domain/entity"
	domainerrors "shiptrack/internal/domain/errors"
	"shiptrack/internal/domain/repository"
	"shiptrack/internal/infra/metrics"
	"shiptrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// recentShipmentsLimit is the number of shipments embedded in detail views.
const recentShipmentsLimit = 10

// customerService implements the CustomerUsecase interface.
type customerService struct {
	customerRepo repository.CustomerRepository
	shipmentRepo repository.ShipmentRepository
	quota        quotaGuard
	logger       *slog.Logger
	now          func() time.Time
}

// CustomerServiceParams holds dependencies for CustomerService, injected by Fx.
type CustomerServiceParams struct {
	fx.In

	CustomerRepo repository.CustomerRepository
	ShipmentRepo repository.ShipmentRepository
	Plans        entity.PlanTable
	Logger       *slog.Logger
}

// NewCustomerService is the constructor for customerService.
func NewCustomerService(params CustomerServiceParams) usecase.CustomerUsecase {
	return &customerService{
		customerRepo: params.CustomerRepo,
		shipmentRepo: params.ShipmentRepo,
		quota:        quotaGuard{plans: params.Plans},
		logger:       params.Logger,
		now:          time.Now,
	}
}

func (srv *customerService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *customerService) List(ctx context.Context, tenantID uuid.UUID, input *usecase.ListInput) (*usecase.CustomerListOutput, error) {
	page := entity.NewPage(input.Page, input.Limit)

	customers, total, err := srv.customerRepo.List(ctx, entity.CustomerFilter{
		TenantID: tenantID,
		Search:   strings.TrimSpace(input.Search),
		Page:     page,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list customers")
	}

	return &usecase.CustomerListOutput{
		Customers:  customers,
		Pagination: entity.NewPagination(page, total),
	}, nil
}

func (srv *customerService) Create(ctx context.Context, tenant *usecase.Identity, input *usecase.CreateCustomerInput) (*entity.Customer, error) {
	if err := srv.quota.check(ctx, srv.log(ctx), tenant, entity.ResourceCustomer, func(ctx context.Context) (int64, error) {
		return srv.customerRepo.CountByTenant(ctx, tenant.TenantID)
	}); err != nil {
		return nil, err
	}

	now := srv.now()
	customer := &entity.Customer{
		TenantID:  tenant.TenantID,
		Name:      strings.TrimSpace(input.Name),
		Email:     entity.NullableString(strings.TrimSpace(input.Email)),
		Phone:     entity.NullableString(strings.TrimSpace(input.Phone)),
		Address:   entity.NullableString(strings.TrimSpace(input.Address)),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := srv.customerRepo.Create(ctx, customer); err != nil {
		if errors.Is(err, repository.ErrTenantNotFound) {
			return nil, domainerrors.ErrUnauthenticated
		}

		return nil, errors.Wrap(err, "failed to create customer")
	}

	metrics.CustomersCreatedTotal.Inc()
	srv.log(ctx).Info("Customer created",
		slog.String("tenantID", tenant.TenantID.String()),
		slog.String("customerID", customer.ID.String()),
	)

	return customer, nil
}

func (srv *customerService) Get(ctx context.Context, tenantID, customerID uuid.UUID) (*entity.CustomerDetail, error) {
	customer, err := srv.findCustomer(ctx, tenantID, customerID)
	if err != nil {
		return nil, err
	}

	shipments, err := srv.shipmentRepo.ListRecentByCustomer(ctx, tenantID, customerID, recentShipmentsLimit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list customer shipments")
	}

	return &entity.CustomerDetail{Customer: customer, Shipments: shipments}, nil
}

func (srv *customerService) Update(ctx context.Context, tenantID, customerID uuid.UUID, patch entity.CustomerPatch) (*entity.Customer, error) {
	customer, err := srv.findCustomer(ctx, tenantID, customerID)
	if err != nil {
		return nil, err
	}

	patch.Apply(customer, srv.now())

	if err := srv.customerRepo.Update(ctx, customer); err != nil {
		if errors.Is(err, repository.ErrCustomerNotFound) {
			return nil, domainerrors.ErrCustomerNotFound
		}

		return nil, errors.Wrap(err, "failed to update customer")
	}

	return customer, nil
}

func (srv *customerService) Delete(ctx context.Context, tenantID, customerID uuid.UUID) error {
	if err := srv.customerRepo.Delete(ctx, tenantID, customerID); err != nil {
		if errors.Is(err, repository.ErrCustomerNotFound) {
			return domainerrors.ErrCustomerNotFound
		}

		return errors.Wrap(err, "failed to delete customer")
	}

	srv.log(ctx).Info("Customer deleted",
		slog.String("tenantID", tenantID.String()),
		slog.String("customerID", customerID.String()),
	)

	return nil
}

func (srv *customerService) findCustomer(ctx context.Context, tenantID, customerID uuid.UUID) (*entity.Customer, error) {
	customer, err := srv.customerRepo.FindByID(ctx, tenantID, customerID)
	if errors.Is(err, repository.ErrCustomerNotFound) {
		return nil, domainerrors.ErrCustomerNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find customer")
	}

	return customer, nil
}
