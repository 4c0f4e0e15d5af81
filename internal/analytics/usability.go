package analytics

import (
	"fmt"
	"math"
	"strings"
)

// Business thresholds for the usability decision. Both are strict: a tool at
// exactly the limit still passes.
const (
	MaxRepairs               = 3
	RepairCostRatioThreshold = 0.70
)

// EvaluateUsability applies the fixed thresholds to the aggregates. All four
// checks run; every failing check contributes its reason, joined with ", " in
// a fixed order. A nil QC or EOL result never fails a check — only an explicit
// failed result does.
func EvaluateUsability(m Metrics) (bool, string) {
	var reasons []string

	if m.TotalRepairCount > MaxRepairs {
		reasons = append(reasons, fmt.Sprintf("Exceeded maximum repairs (%d > %d)", m.TotalRepairCount, MaxRepairs))
	}

	if m.RepairCostRatio > RepairCostRatioThreshold {
		reasons = append(reasons, fmt.Sprintf("Repair costs exceed threshold (%d%% > %d%% of procurement price)",
			wholePercent(m.RepairCostRatio), wholePercent(RepairCostRatioThreshold)))
	}

	if m.LastQCPassed != nil && !*m.LastQCPassed {
		reasons = append(reasons, "Latest QC failed")
	}

	if m.LastEOLPassed != nil && !*m.LastEOLPassed {
		reasons = append(reasons, "Latest EoL assessment failed")
	}

	if len(reasons) == 0 {
		return true, "Tool is in good condition"
	}
	return false, strings.Join(reasons, ", ")
}

func wholePercent(ratio float64) int {
	return int(math.Round(ratio * 100))
}
