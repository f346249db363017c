package postgres

import (
	"testing"
	"time"

	"shiptrack/internal/domain/entity"
	"shiptrack/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShipmentMapping_RoundTripsTimeline(t *testing.T) {
	now := time.Date(2026, 5, 2, 8, 30, 0, 0, time.UTC)
	shipment := entity.NewShipment(entity.NewShipmentParams{
		TenantID:     uuid.New(),
		CustomerID:   uuid.New(),
		TrackingCode: "TKS-0000AAAA",
		Origin:       "New York, NY",
		Destination:  "Austin, TX",
	}, now)
	status := entity.StatusInTransit
	shipment.Apply(entity.ShipmentUpdate{Status: &status}, now.Add(time.Hour))

	got := toShipmentDomain(fromShipmentDomain(shipment))

	assert.Equal(t, shipment.Timeline, got.Timeline)
	assert.Equal(t, shipment.Status, got.Status)
	assert.True(t, got.Consistent())
	assert.Nil(t, got.Customer)
}

func TestToShipmentDomain_CustomerSummaryHidesAddress(t *testing.T) {
	address := "1 Main St"
	email := "jane@example.com"
	shipmentM := &model.ShipmentModel{
		ID:     uuid.New(),
		Status: string(entity.StatusPending),
		Customer: &model.CustomerModel{
			ID:      uuid.New(),
			Name:    "Jane",
			Email:   &email,
			Address: &address,
		},
	}

	got := toShipmentDomain(shipmentM)

	require.NotNil(t, got.Customer)
	assert.Equal(t, "Jane", got.Customer.Name)
	assert.Equal(t, &email, got.Customer.Email)
	assert.Nil(t, got.Customer.Address)
	assert.NotNil(t, got.Timeline)
}

func TestToCustomerDomain_CarriesShipmentCount(t *testing.T) {
	row := &model.CustomerWithCount{
		CustomerModel: model.CustomerModel{ID: uuid.New(), Name: "Acme Retail"},
		ShipmentCount: 7,
	}

	got := toCustomerDomain(row)

	assert.Equal(t, "Acme Retail", got.Name)
	assert.Equal(t, int64(7), got.ShipmentCount)
}

func TestTenantMapping(t *testing.T) {
	tenant := &entity.Tenant{ID: uuid.New(), Email: "a@b.c", CompanyName: "Acme", Plan: entity.PlanPro}

	assert.Equal(t, tenant, toTenantDomain(fromTenantDomain(tenant)))
	assert.Nil(t, toTenantDomain(nil))
}

func TestContainsPattern(t *testing.T) {
	assert.Equal(t, "%TKS-%", containsPattern(" TKS- "))
	assert.Equal(t, `%50\%\_off%`, containsPattern("50%_off"))
	assert.Equal(t, `%a\\b%`, containsPattern(`a\b`))
}
