package main

import (
	"testing"

	"shiptrack/config"
	"shiptrack/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPlanTable(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		plans, err := newPlanTable(&config.Config{})
		require.NoError(t, err)
		assert.Equal(t, entity.DefaultPlanTable(), plans)
	})

	t.Run("override keeps other plans", func(t *testing.T) {
		plans, err := newPlanTable(&config.Config{
			Plans: map[string]config.PlanConfig{
				"basic": {Customers: 300, Shipments: 3000, Price: 30},
			},
		})
		require.NoError(t, err)
		assert.Equal(t, entity.PlanLimits{Name: "Basic", Customers: 300, Shipments: 3000, Price: 30}, plans[entity.PlanBasic])
		assert.Equal(t, 50, plans[entity.PlanFree].Customers)
		assert.Equal(t, entity.Unlimited, plans[entity.PlanPro].Shipments)
	})

	t.Run("unknown plan", func(t *testing.T) {
		_, err := newPlanTable(&config.Config{
			Plans: map[string]config.PlanConfig{"gold": {Customers: 1}},
		})
		assert.Error(t, err)
	})

	t.Run("negative ceiling", func(t *testing.T) {
		_, err := newPlanTable(&config.Config{
			Plans: map[string]config.PlanConfig{"FREE": {Customers: -5}},
		})
		assert.Error(t, err)
	})
}

func TestNewQRCodeService_UsesPublicBaseURL(t *testing.T) {
	svc := newQRCodeService(&config.Config{
		Tracking: &config.TrackingConfig{PublicBaseURL: "https://track.example.com"},
	})

	assert.Equal(t, "https://track.example.com/track/TKS-7K2M9QXA", svc.TrackingURL("TKS-7K2M9QXA"))
}
