package jobs

import (
	"context"

	"tooltrack-backend/internal/logger"
)

// RefreshToolStatuses recomputes and persists the cached aggregates and
// usability decision for every tool. Each tool is refreshed independently so
// one failure does not abort the run.
func (jr *JobRunner) RefreshToolStatuses() {
	jr.runWithRecovery("RefreshToolStatuses", func() {
		ctx := context.Background()

		tools, err := jr.toolRepo.List(ctx, "")
		if err != nil {
			logger.Error("Failed to list tools for status refresh", "error", err)
			return
		}

		refreshed := 0
		failed := 0
		for i := range tools {
			if err := jr.toolSvc.RefreshToolStatus(ctx, tools[i].ID); err != nil {
				logger.Error("Failed to refresh tool status", "tool_id", tools[i].ID, "error", err)
				failed++
				continue
			}
			refreshed++
		}

		logger.Info("Refreshed tool statuses", "refreshed", refreshed, "failed", failed)
	})
}
