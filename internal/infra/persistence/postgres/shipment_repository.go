package postgres

import (
	"context"

	"shiptrack/internal/domain/entity"
	domainerrors "shiptrack/internal/domain/errors"
	"shiptrack/internal/domain/repository"
	"shiptrack/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// shipmentRepository implements the repository.ShipmentRepository interface using GORM.
type shipmentRepository struct {
	db *gorm.DB
}

// NewShipmentRepository is the constructor for shipmentRepository.
func NewShipmentRepository(db *gorm.DB) repository.ShipmentRepository {
	return &shipmentRepository{db: db}
}

// Create inserts the shipment. Only a clash on the tracking code index maps to
// repository.ErrDuplicateTrackingCode so the caller can draw a new one.
func (repo *shipmentRepository) Create(ctx context.Context, shipment *entity.Shipment) error {
	shipmentM := fromShipmentDomain(shipment)

	if err := repo.db.WithContext(ctx).Omit(clause.Associations).Create(shipmentM).Error; err != nil {
		if isTrackingCodeViolation(err) {
			return repository.ErrDuplicateTrackingCode
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrCustomerNotFound
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid shipment status")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create shipment")
	}

	shipment.ID = shipmentM.ID
	shipment.CreatedAt = shipmentM.CreatedAt
	shipment.UpdatedAt = shipmentM.UpdatedAt

	return nil
}

// ExistsByTrackingCode reports whether any tenant already uses code.
func (repo *shipmentRepository) ExistsByTrackingCode(ctx context.Context, code string) (bool, error) {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.ShipmentModel{}).
		Where("tracking_code = ?", code).
		Limit(1).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check tracking code")
	}

	return count > 0, nil
}

// FindByID retrieves a tenant's shipment with its customer summary.
func (repo *shipmentRepository) FindByID(ctx context.Context, tenantID, id uuid.UUID) (*entity.Shipment, error) {
	var shipmentM model.ShipmentModel

	if err := repo.db.WithContext(ctx).
		Preload("Customer").
		Where("id = ? AND tenant_id = ?", id, tenantID).
		First(&shipmentM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrShipmentNotFound
		}

		return nil, errors.Wrap(err, "failed to find shipment by id")
	}

	return toShipmentDomain(&shipmentM), nil
}

// FindByIDForUpdate locks the shipment row with SELECT ... FOR UPDATE. It must
// run inside a transaction; the customer summary is not loaded.
func (repo *shipmentRepository) FindByIDForUpdate(ctx context.Context, tenantID, id uuid.UUID) (*entity.Shipment, error) {
	var shipmentM model.ShipmentModel

	if err := repo.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}).
		Where("id = ? AND tenant_id = ?", id, tenantID).
		First(&shipmentM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrShipmentNotFound
		}

		return nil, errors.Wrap(err, "failed to lock shipment")
	}

	return toShipmentDomain(&shipmentM), nil
}

// List returns one page of the tenant's shipments, newest first.
func (repo *shipmentRepository) List(ctx context.Context, filter entity.ShipmentFilter) ([]*entity.Shipment, int64, error) {
	var total int64
	if err := repo.db.WithContext(ctx).
		Model(&model.ShipmentModel{}).
		Scopes(shipmentFilterScope(filter)).
		Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count shipments")
	}

	var shipmentModels []*model.ShipmentModel
	if err := repo.db.WithContext(ctx).
		Preload("Customer").
		Scopes(shipmentFilterScope(filter)).
		Order("created_at DESC").
		Limit(filter.Page.Size).
		Offset(filter.Page.Offset()).
		Find(&shipmentModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list shipments")
	}

	return toShipmentDomains(shipmentModels), total, nil
}

// ListRecent returns the tenant's latest shipments with their customers.
func (repo *shipmentRepository) ListRecent(ctx context.Context, tenantID uuid.UUID, limit int) ([]*entity.Shipment, error) {
	var shipmentModels []*model.ShipmentModel

	if err := repo.db.WithContext(ctx).
		Preload("Customer").
		Where("tenant_id = ?", tenantID).
		Order("created_at DESC").
		Limit(limit).
		Find(&shipmentModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list recent shipments")
	}

	return toShipmentDomains(shipmentModels), nil
}

// ListRecentByCustomer returns a customer's latest shipments.
func (repo *shipmentRepository) ListRecentByCustomer(ctx context.Context, tenantID, customerID uuid.UUID, limit int) ([]*entity.Shipment, error) {
	var shipmentModels []*model.ShipmentModel

	if err := repo.db.WithContext(ctx).
		Where("tenant_id = ? AND customer_id = ?", tenantID, customerID).
		Order("created_at DESC").
		Limit(limit).
		Find(&shipmentModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list customer shipments")
	}

	return toShipmentDomains(shipmentModels), nil
}

// CountByTenant counts every shipment of the tenant.
func (repo *shipmentRepository) CountByTenant(ctx context.Context, tenantID uuid.UUID) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.ShipmentModel{}).
		Where("tenant_id = ?", tenantID).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count shipments")
	}

	return count, nil
}

// CountByStatus counts the tenant's shipments whose status is one of statuses.
func (repo *shipmentRepository) CountByStatus(ctx context.Context, tenantID uuid.UUID, statuses ...entity.ShipmentStatus) (int64, error) {
	if len(statuses) == 0 {
		return 0, nil
	}

	values := make([]string, 0, len(statuses))
	for _, s := range statuses {
		values = append(values, string(s))
	}

	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.ShipmentModel{}).
		Where("tenant_id = ? AND status IN ?", tenantID, values).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count shipments by status")
	}

	return count, nil
}

// Update writes the mutable shipment fields, including the full timeline.
func (repo *shipmentRepository) Update(ctx context.Context, shipment *entity.Shipment) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ShipmentModel{}).
		Where("id = ? AND tenant_id = ?", shipment.ID, shipment.TenantID).
		Updates(map[string]any{
			"status":             string(shipment.Status),
			"current_location":   shipment.CurrentLocation,
			"estimated_delivery": shipment.EstimatedDelivery,
			"actual_delivery":    shipment.ActualDelivery,
			"notes":              shipment.Notes,
			"timeline":           fromTimelineDomain(shipment.Timeline),
			"updated_at":         shipment.UpdatedAt,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update shipment")
	}
	if result.RowsAffected == 0 {
		return repository.ErrShipmentNotFound
	}

	return nil
}

// Delete hard-deletes a tenant's shipment.
func (repo *shipmentRepository) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND tenant_id = ?", id, tenantID).
		Delete(&model.ShipmentModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete shipment")
	}
	if result.RowsAffected == 0 {
		return repository.ErrShipmentNotFound
	}

	return nil
}

// FindForTracking resolves a public tracking lookup. With a tenant the match
// is on both code and tenant; without one the code alone decides.
func (repo *shipmentRepository) FindForTracking(ctx context.Context, code string, tenantID *uuid.UUID) (*entity.TrackedShipment, error) {
	var shipmentM model.ShipmentModel

	query := repo.db.WithContext(ctx).
		Preload("Customer").
		Preload("Tenant").
		Where("tracking_code = ?", code)
	if tenantID != nil {
		query = query.Where("tenant_id = ?", *tenantID)
	}

	if err := query.First(&shipmentM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrShipmentNotFound
		}

		return nil, errors.Wrap(err, "failed to find shipment for tracking")
	}

	tracked := &entity.TrackedShipment{Shipment: toShipmentDomain(&shipmentM)}
	if shipmentM.Customer != nil {
		tracked.CustomerName = shipmentM.Customer.Name
	}
	if shipmentM.Tenant != nil {
		tracked.CompanyName = shipmentM.Tenant.CompanyName
	}

	return tracked, nil
}

func shipmentFilterScope(filter entity.ShipmentFilter) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		db = db.Where("tenant_id = ?", filter.TenantID)
		if filter.Status != "" {
			db = db.Where("status = ?", string(filter.Status))
		}
		if filter.CustomerID != nil {
			db = db.Where("customer_id = ?", *filter.CustomerID)
		}
		if filter.Search != "" {
			pattern := containsPattern(filter.Search)
			db = db.Where(
				"(tracking_code ILIKE ? OR origin ILIKE ? OR destination ILIKE ?)",
				pattern, pattern, pattern,
			)
		}

		return db
	}
}

// --- Mapper Functions ---

func toShipmentDomains(data []*model.ShipmentModel) []*entity.Shipment {
	shipments := make([]*entity.Shipment, 0, len(data))
	for _, shipmentM := range data {
		shipments = append(shipments, toShipmentDomain(shipmentM))
	}

	return shipments
}

func toShipmentDomain(data *model.ShipmentModel) *entity.Shipment {
	if data == nil {
		return nil
	}

	shipment := &entity.Shipment{
		ID:                data.ID,
		TenantID:          data.TenantID,
		CustomerID:        data.CustomerID,
		TrackingCode:      data.TrackingCode,
		Status:            entity.ShipmentStatus(data.Status),
		Origin:            data.Origin,
		Destination:       data.Destination,
		CurrentLocation:   data.CurrentLocation,
		EstimatedDelivery: data.EstimatedDelivery,
		ActualDelivery:    data.ActualDelivery,
		Notes:             data.Notes,
		Timeline:          toTimelineDomain(data.Timeline),
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}

	if data.Customer != nil {
		shipment.Customer = &entity.CustomerSummary{
			ID:    data.Customer.ID,
			Name:  data.Customer.Name,
			Email: data.Customer.Email,
			Phone: data.Customer.Phone,
		}
	}

	return shipment
}

func fromShipmentDomain(data *entity.Shipment) *model.ShipmentModel {
	if data == nil {
		return nil
	}

	return &model.ShipmentModel{
		ID:                data.ID,
		TenantID:          data.TenantID,
		CustomerID:        data.CustomerID,
		TrackingCode:      data.TrackingCode,
		Status:            string(data.Status),
		Origin:            data.Origin,
		Destination:       data.Destination,
		CurrentLocation:   data.CurrentLocation,
		EstimatedDelivery: data.EstimatedDelivery,
		ActualDelivery:    data.ActualDelivery,
		Notes:             data.Notes,
		Timeline:          fromTimelineDomain(data.Timeline),
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
}

func toTimelineDomain(data datatypes.JSONSlice[model.TimelineEventModel]) entity.Timeline {
	timeline := make(entity.Timeline, 0, len(data))
	for _, e := range data {
		timeline = append(timeline, entity.TimelineEvent{
			Status:      entity.ShipmentStatus(e.Status),
			Timestamp:   e.Timestamp,
			Location:    e.Location,
			Description: e.Description,
		})
	}

	return timeline
}

func fromTimelineDomain(timeline entity.Timeline) datatypes.JSONSlice[model.TimelineEventModel] {
	data := make(datatypes.JSONSlice[model.TimelineEventModel], 0, len(timeline))
	for _, e := range timeline {
		data = append(data, model.TimelineEventModel{
			Status:      string(e.Status),
			Timestamp:   e.Timestamp,
			Location:    e.Location,
			Description: e.Description,
		})
	}

	return data
}
