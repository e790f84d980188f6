package jobs

import (
	"context"

	"avocado-hub-backend/internal/logger"
)

// ReconcileFarmerAggregates audits every farmer's counters against the sums
// of their order rows. Drift normally means a partial ledger failure slipped
// past an operator, so any finding is alerted, not just logged.
func (jr *JobRunner) ReconcileFarmerAggregates() {
	jr.runWithRecovery("ReconcileFarmerAggregates", func() {
		ctx := context.Background()

		drifts, err := jr.services.Audit.AuditFarmers(ctx, jr.config.Scheduler.RepairDrift)
		if err != nil {
			logger.Error("Failed to audit farmer aggregates", "error", err)
			return
		}
		if len(drifts) == 0 {
			logger.Info("Farmer aggregates consistent with orders")
			return
		}

		logger.Warn("Farmer aggregate drift detected", "farmers_affected", len(drifts), "repaired", jr.config.Scheduler.RepairDrift)
		if err := jr.services.Email.SendDriftAlert(ctx, "farmer", drifts); err != nil {
			logger.Error("Failed to send farmer drift alert", "error", err)
		}
	})
}

// ReconcileBuyerAggregates is the buyer-side counterpart over sales rows.
func (jr *JobRunner) ReconcileBuyerAggregates() {
	jr.runWithRecovery("ReconcileBuyerAggregates", func() {
		ctx := context.Background()

		drifts, err := jr.services.Audit.AuditBuyers(ctx, jr.config.Scheduler.RepairDrift)
		if err != nil {
			logger.Error("Failed to audit buyer aggregates", "error", err)
			return
		}
		if len(drifts) == 0 {
			logger.Info("Buyer aggregates consistent with sales")
			return
		}

		logger.Warn("Buyer aggregate drift detected", "buyers_affected", len(drifts), "repaired", jr.config.Scheduler.RepairDrift)
		if err := jr.services.Email.SendDriftAlert(ctx, "buyer", drifts); err != nil {
			logger.Error("Failed to send buyer drift alert", "error", err)
		}
	})
}
