package analytics

import (
	"testing"
	"time"

	"tooltrack-backend/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestEvaluateUsability_GoodCondition(t *testing.T) {
	usable, reason := EvaluateUsability(Metrics{})

	assert.True(t, usable)
	assert.Equal(t, "Tool is in good condition", reason)
}

func TestEvaluateUsability_ThresholdsAreStrict(t *testing.T) {
	// Exactly at the limits still passes.
	usable, reason := EvaluateUsability(Metrics{
		TotalRepairCount: 3,
		RepairCostRatio:  0.70,
	})

	assert.True(t, usable)
	assert.Equal(t, "Tool is in good condition", reason)
}

func TestEvaluateUsability_SingleFailureOnly(t *testing.T) {
	usable, reason := EvaluateUsability(Metrics{
		TotalRepairCount: 4,
		RepairCostRatio:  0.1,
		LastQCPassed:     ptrBool(true),
		LastEOLPassed:    ptrBool(true),
	})

	assert.False(t, usable)
	assert.Contains(t, reason, "Exceeded maximum repairs (4 > 3)")
	assert.NotContains(t, reason, "Repair costs exceed threshold")
	assert.NotContains(t, reason, "Latest QC failed")
	assert.NotContains(t, reason, "Latest EoL assessment failed")
}

func TestEvaluateUsability_AbsentResultsNeverFail(t *testing.T) {
	usable, _ := EvaluateUsability(Metrics{
		LastQCPassed:  nil,
		LastEOLPassed: nil,
	})

	assert.True(t, usable)
}

func TestEvaluateUsability_ReasonsJoinedInFixedOrder(t *testing.T) {
	_, reason := EvaluateUsability(Metrics{
		TotalRepairCount: 5,
		RepairCostRatio:  0.9,
		LastQCPassed:     ptrBool(false),
		LastEOLPassed:    ptrBool(false),
	})

	assert.Equal(t,
		"Exceeded maximum repairs (5 > 3), Repair costs exceed threshold (90% > 70% of procurement price), Latest QC failed, Latest EoL assessment failed",
		reason)
}

func TestEvaluateUsability_QCFailureAlone(t *testing.T) {
	usable, reason := EvaluateUsability(Metrics{LastQCPassed: ptrBool(false)})

	assert.False(t, usable)
	assert.Equal(t, "Latest QC failed", reason)
}

func TestRefreshIsIdempotent(t *testing.T) {
	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	events := []domain.HistoryEvent{
		{ID: 1, EventType: "Borrowing", EventDate: base, IsOverdue: true},
		{ID: 2, EventType: "Repair", EventDate: base.AddDate(0, 0, 7), Cost: ptrFloat(120.5), RepairPassed: ptrBool(true)},
	}

	first := Calculate(events, 800)
	second := Calculate(events, 800)

	assert.Equal(t, first, second)

	u1, r1 := EvaluateUsability(first)
	u2, r2 := EvaluateUsability(second)
	assert.Equal(t, u1, u2)
	assert.Equal(t, r1, r2)
}
