package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/coverledger/go-rating/internal/core"
)

// ConfigAuditWorker periodically re-validates active rate plans against
// the configuration invariants (band coverage, positive multipliers,
// base premium chain). The admin services validate on write, but
// hand-edited or migrated rows can drift; the audit surfaces them in
// logs before quotes start producing odd numbers.
type ConfigAuditWorker struct {
	BaseWorker
	products core.ProductRepo
	plans    core.RatePlanRepo
}

// NewConfigAuditWorker creates a new configuration audit worker.
func NewConfigAuditWorker(
	products core.ProductRepo,
	plans core.RatePlanRepo,
	interval time.Duration,
	log *slog.Logger,
) *ConfigAuditWorker {
	return &ConfigAuditWorker{
		BaseWorker: NewBaseWorker("config-audit", interval, log),
		products:   products,
		plans:      plans,
	}
}

// Start begins the worker polling loop.
func (w *ConfigAuditWorker) Start(ctx context.Context) {
	w.Poll(ctx, w.auditPlans)
}

// Name returns the worker name.
func (w *ConfigAuditWorker) Name() string {
	return w.name
}

func (w *ConfigAuditWorker) auditPlans(ctx context.Context) error {
	products, err := w.products.List(ctx)
	if err != nil {
		return err
	}

	var checked, bad int
	for _, product := range products {
		plans, err := w.plans.ListByProduct(ctx, product.ID)
		if err != nil {
			return err
		}
		for _, plan := range plans {
			if !plan.Active {
				continue
			}
			checked++
			if err := plan.Validate(); err != nil {
				bad++
				w.log.Warn("plan failed configuration audit",
					"plan_code", plan.Code,
					"product_code", product.Code,
					"err", err,
				)
			}
		}
	}

	if bad > 0 {
		w.log.Warn("configuration audit finished with findings", "checked", checked, "invalid", bad)
	} else {
		w.log.Debug("configuration audit clean", "checked", checked)
	}
	return nil
}
