package main

import (
	"strings"

	"shiptrack/config"
	"shiptrack/internal/domain/entity"
	"shiptrack/internal/domain/service"
	"shiptrack/internal/infra/qrcode"

	"github.com/pkg/errors"
)

const (
	defaultQRCodeSize  = 256
	defaultQRCodeLevel = "M"
)

// newPlanTable starts from the built-in ceilings and applies the overrides
// found under `plans` in the configuration.
func newPlanTable(cfg *config.Config) (entity.PlanTable, error) {
	plans := entity.DefaultPlanTable()

	for key, override := range cfg.Plans {
		plan := entity.Plan(strings.ToUpper(key))
		if !plan.IsValid() {
			return nil, errors.Errorf("unknown plan %q in configuration", key)
		}
		if override.Customers < entity.Unlimited || override.Shipments < entity.Unlimited {
			return nil, errors.Errorf("plan %s: ceilings must be -1 or non-negative", plan)
		}

		limits := entity.PlanLimits{
			Name:      override.Name,
			Customers: override.Customers,
			Shipments: override.Shipments,
			Price:     override.Price,
		}
		if limits.Name == "" {
			limits.Name = plans[plan].Name
		}
		plans[plan] = limits
	}

	return plans, nil
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	baseURL := ""
	if cfg.Tracking != nil {
		baseURL = cfg.Tracking.PublicBaseURL
	}

	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(baseURL, defaultQRCodeSize, defaultQRCodeLevel)
	}

	return qrcode.NewQRCodeService(baseURL, cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}
