package postgres

import (
	"context"
	"testing"
	"time"

	"shiptrack/internal/domain/entity"
	"shiptrack/internal/domain/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newGormWithMock(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Discard,
	})
	require.NoError(t, err)

	return db, mock
}

func emptyShipmentRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "tenant_id", "customer_id", "tracking_code", "status"})
}

func TestShipmentRepository_FindForTracking_ScopedToTenant(t *testing.T) {
	db, mock := newGormWithMock(t)
	repo := NewShipmentRepository(db)
	tenantID := uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "shipments" WHERE tracking_code = \$1 AND tenant_id = \$2 ORDER BY`).
		WithArgs("TKS-7K2M9QXA", tenantID, sqlmock.AnyArg()).
		WillReturnRows(emptyShipmentRows())

	_, err := repo.FindForTracking(context.Background(), "TKS-7K2M9QXA", &tenantID)
	assert.ErrorIs(t, err, repository.ErrShipmentNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestShipmentRepository_FindForTracking_GlobalLookup(t *testing.T) {
	db, mock := newGormWithMock(t)
	repo := NewShipmentRepository(db)

	// the code alone decides: nothing between WHERE and ORDER BY but the code
	mock.ExpectQuery(`SELECT \* FROM "shipments" WHERE tracking_code = \$1 ORDER BY`).
		WithArgs("TKS-7K2M9QXA", sqlmock.AnyArg()).
		WillReturnRows(emptyShipmentRows())

	_, err := repo.FindForTracking(context.Background(), "TKS-7K2M9QXA", nil)
	assert.ErrorIs(t, err, repository.ErrShipmentNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestShipmentRepository_FindByID_OtherTenant(t *testing.T) {
	db, mock := newGormWithMock(t)
	repo := NewShipmentRepository(db)
	tenantID, shipmentID := uuid.New(), uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "shipments" WHERE id = \$1 AND tenant_id = \$2`).
		WithArgs(shipmentID, tenantID, sqlmock.AnyArg()).
		WillReturnRows(emptyShipmentRows())

	_, err := repo.FindByID(context.Background(), tenantID, shipmentID)
	assert.ErrorIs(t, err, repository.ErrShipmentNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestShipmentRepository_FindByIDForUpdate_LocksTenantRow(t *testing.T) {
	db, mock := newGormWithMock(t)
	repo := NewShipmentRepository(db)
	tenantID, shipmentID := uuid.New(), uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "shipments" WHERE id = \$1 AND tenant_id = \$2 .*FOR UPDATE`).
		WithArgs(shipmentID, tenantID, sqlmock.AnyArg()).
		WillReturnRows(emptyShipmentRows())

	_, err := repo.FindByIDForUpdate(context.Background(), tenantID, shipmentID)
	assert.ErrorIs(t, err, repository.ErrShipmentNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestShipmentRepository_List_ScopedToTenant(t *testing.T) {
	db, mock := newGormWithMock(t)
	repo := NewShipmentRepository(db)
	tenantID := uuid.New()

	mock.ExpectQuery(`SELECT count\(\*\) FROM "shipments" WHERE tenant_id = \$1 AND status = \$2`).
		WithArgs(tenantID, "IN_TRANSIT").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(`SELECT \* FROM "shipments" WHERE tenant_id = \$1 AND status = \$2 ORDER BY created_at DESC`).
		WillReturnRows(emptyShipmentRows())

	shipments, total, err := repo.List(context.Background(), entity.ShipmentFilter{
		TenantID: tenantID,
		Status:   entity.StatusInTransit,
		Page:     entity.NewPage(1, 20),
	})
	require.NoError(t, err)
	assert.Empty(t, shipments)
	assert.Zero(t, total)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestShipmentRepository_Update_OtherTenant(t *testing.T) {
	db, mock := newGormWithMock(t)
	repo := NewShipmentRepository(db)
	shipment := &entity.Shipment{
		ID:        uuid.New(),
		TenantID:  uuid.New(),
		Status:    entity.StatusInTransit,
		UpdatedAt: time.Now(),
	}

	mock.ExpectExec(`UPDATE "shipments" SET .* WHERE id = \$\d+ AND tenant_id = \$\d+`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Update(context.Background(), shipment)
	assert.ErrorIs(t, err, repository.ErrShipmentNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestShipmentRepository_Delete_OtherTenant(t *testing.T) {
	db, mock := newGormWithMock(t)
	repo := NewShipmentRepository(db)
	tenantID, shipmentID := uuid.New(), uuid.New()

	mock.ExpectExec(`DELETE FROM "shipments" WHERE id = \$1 AND tenant_id = \$2`).
		WithArgs(shipmentID, tenantID).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), tenantID, shipmentID)
	assert.ErrorIs(t, err, repository.ErrShipmentNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestShipmentRepository_Create_UniqueViolations(t *testing.T) {
	tests := []struct {
		name       string
		constraint string
		wantDup    bool
	}{
		{name: "tracking code taken", constraint: shipmentTrackingCodeIndex, wantDup: true},
		{name: "other unique index", constraint: "shipments_pkey", wantDup: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newGormWithMock(t)
			repo := NewShipmentRepository(db)

			mock.ExpectQuery(`INSERT INTO "shipments"`).
				WillReturnError(&pgconn.PgError{Code: pgUniqueViolation, ConstraintName: tt.constraint})

			err := repo.Create(context.Background(), &entity.Shipment{
				TenantID:     uuid.New(),
				CustomerID:   uuid.New(),
				TrackingCode: "TKS-7K2M9QXA",
				Status:       entity.StatusPending,
			})
			require.Error(t, err)
			if tt.wantDup {
				assert.ErrorIs(t, err, repository.ErrDuplicateTrackingCode)
			} else {
				assert.NotErrorIs(t, err, repository.ErrDuplicateTrackingCode)
			}
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
