package impl

import (
	"context"
	"log/slog"

	"shiptrack/internal/domain/entity"
	domainerrors "shiptrack/internal/domain/errors"
	"shiptrack/internal/infra/metrics"
	"shiptrack/internal/usecase"

	"github.com/pkg/errors"
)

// quotaGuard checks plan ceilings before a create. The count and the
// following insert are not atomic, so concurrent creates may overshoot a
// ceiling by a few rows.
type quotaGuard struct {
	plans entity.PlanTable
}

func (g quotaGuard) check(
	ctx context.Context,
	logger *slog.Logger,
	tenant *usecase.Identity,
	kind entity.ResourceKind,
	count func(context.Context) (int64, error),
) error {
	current, err := count(ctx)
	if err != nil {
		return errors.Wrapf(err, "failed to count %s", kind)
	}

	if g.plans.CanCreate(kind, tenant.Plan, current) {
		return nil
	}

	metrics.QuotaRejectionsTotal.WithLabelValues(string(kind), string(tenant.Plan)).Inc()
	logger.Info("Plan limit reached",
		slog.String("tenantID", tenant.TenantID.String()),
		slog.String("plan", string(tenant.Plan)),
		slog.String("resource", string(kind)),
		slog.Int64("current", current),
	)

	if kind == entity.ResourceCustomer {
		return domainerrors.ErrCustomerQuotaExceeded
	}

	return domainerrors.ErrShipmentQuotaExceeded
}
