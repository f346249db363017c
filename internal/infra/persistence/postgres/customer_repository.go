package postgres

import (
	"context"

	"shiptrack/internal/domain/entity"
	domainerrors "shiptrack/internal/domain/errors"
	"shiptrack/internal/domain/repository"
	"shiptrack/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

const customerWithCountColumns = "customers.*, " +
	"(SELECT COUNT(*) FROM shipments WHERE shipments.customer_id = customers.id) AS shipment_count"

// customerRepository implements the repository.CustomerRepository interface using GORM.
type customerRepository struct {
	db *gorm.DB
}

// NewCustomerRepository is the constructor for customerRepository.
func NewCustomerRepository(db *gorm.DB) repository.CustomerRepository {
	return &customerRepository{db: db}
}

// Create persists a new customer for its tenant.
func (repo *customerRepository) Create(ctx context.Context, customer *entity.Customer) error {
	customerM := fromCustomerDomain(customer)

	if err := repo.db.WithContext(ctx).Omit("Tenant", "Shipments").Create(customerM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrTenantNotFound
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required customer information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create customer")
	}

	customer.ID = customerM.ID
	customer.CreatedAt = customerM.CreatedAt
	customer.UpdatedAt = customerM.UpdatedAt

	return nil
}

// FindByID retrieves a tenant's customer together with its shipment count.
func (repo *customerRepository) FindByID(ctx context.Context, tenantID, id uuid.UUID) (*entity.Customer, error) {
	var rows []model.CustomerWithCount

	err := repo.db.WithContext(ctx).
		Model(&model.CustomerModel{}).
		Select(customerWithCountColumns).
		Where("customers.id = ? AND customers.tenant_id = ?", id, tenantID).
		Limit(1).
		Scan(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find customer by id")
	}
	if len(rows) == 0 {
		return nil, repository.ErrCustomerNotFound
	}

	return toCustomerDomain(&rows[0]), nil
}

// List returns one page of the tenant's customers, newest first.
func (repo *customerRepository) List(ctx context.Context, filter entity.CustomerFilter) ([]*entity.Customer, int64, error) {
	var total int64
	if err := repo.db.WithContext(ctx).
		Model(&model.CustomerModel{}).
		Scopes(customerFilterScope(filter)).
		Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count customers")
	}

	var rows []model.CustomerWithCount
	if err := repo.db.WithContext(ctx).
		Model(&model.CustomerModel{}).
		Select(customerWithCountColumns).
		Scopes(customerFilterScope(filter)).
		Order("customers.created_at DESC").
		Limit(filter.Page.Size).
		Offset(filter.Page.Offset()).
		Scan(&rows).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list customers")
	}

	customers := make([]*entity.Customer, 0, len(rows))
	for i := range rows {
		customers = append(customers, toCustomerDomain(&rows[i]))
	}

	return customers, total, nil
}

// CountByTenant counts every customer of the tenant.
func (repo *customerRepository) CountByTenant(ctx context.Context, tenantID uuid.UUID) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.CustomerModel{}).
		Where("tenant_id = ?", tenantID).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count customers")
	}

	return count, nil
}

// Update writes the mutable customer fields.
func (repo *customerRepository) Update(ctx context.Context, customer *entity.Customer) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CustomerModel{}).
		Where("id = ? AND tenant_id = ?", customer.ID, customer.TenantID).
		Updates(map[string]any{
			"name":       customer.Name,
			"email":      customer.Email,
			"phone":      customer.Phone,
			"address":    customer.Address,
			"updated_at": customer.UpdatedAt,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update customer")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCustomerNotFound
	}

	return nil
}

// Delete removes the customer; its shipments go with it through the foreign key.
func (repo *customerRepository) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND tenant_id = ?", id, tenantID).
		Delete(&model.CustomerModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete customer")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCustomerNotFound
	}

	return nil
}

func customerFilterScope(filter entity.CustomerFilter) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		db = db.Where("customers.tenant_id = ?", filter.TenantID)
		if filter.Search != "" {
			pattern := containsPattern(filter.Search)
			db = db.Where(
				"(customers.name ILIKE ? OR customers.email ILIKE ? OR customers.phone ILIKE ?)",
				pattern, pattern, pattern,
			)
		}

		return db
	}
}

// --- Mapper Functions ---

func toCustomerDomain(data *model.CustomerWithCount) *entity.Customer {
	if data == nil {
		return nil
	}

	customer := toCustomerModelDomain(&data.CustomerModel)
	customer.ShipmentCount = data.ShipmentCount

	return customer
}

func toCustomerModelDomain(data *model.CustomerModel) *entity.Customer {
	return &entity.Customer{
		ID:        data.ID,
		TenantID:  data.TenantID,
		Name:      data.Name,
		Email:     data.Email,
		Phone:     data.Phone,
		Address:   data.Address,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromCustomerDomain(data *entity.Customer) *model.CustomerModel {
	if data == nil {
		return nil
	}

	return &model.CustomerModel{
		ID:        data.ID,
		TenantID:  data.TenantID,
		Name:      data.Name,
		Email:     data.Email,
		Phone:     data.Phone,
		Address:   data.Address,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
