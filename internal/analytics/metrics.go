// Package analytics derives aggregate metrics and the usability decision for a
// tool from its full event history. Everything here is a pure function over an
// in-memory snapshot: no I/O, no shared state, safe for concurrent callers.
package analytics

import (
	"math"
	"time"

	"tooltrack-backend/internal/domain"
)

// Metrics is the fixed set of aggregates derived from one tool's complete,
// unfiltered event history. "Last" fields are nil when no event of the
// relevant category exists; nil is distinct from an explicit false.
type Metrics struct {
	TotalBorrowCount int32
	LastBorrowedDate *time.Time
	OverdueCount     int32
	TotalRepairCount int32
	TotalRepairCost  float64
	LastRepairStatus *bool
	RepairCostRatio  float64
	LastQCDate       *time.Time
	LastQCPassed     *bool
	LastEOLPassed    *bool
}

// Calculate reduces an event list to its aggregates. The input order does not
// matter: events are ordered by (event date, id) before "latest" selection, so
// ties on the maximum timestamp resolve to the highest id, matching the
// chronological display order. An empty list yields zero counts and nil
// "last" fields.
func Calculate(events []domain.HistoryEvent, procurementPrice float64) Metrics {
	ordered := make([]domain.HistoryEvent, len(events))
	copy(ordered, events)
	domain.SortEventsChronological(ordered)

	var m Metrics
	var rawRepairCost float64

	for i := range ordered {
		e := &ordered[i]

		if e.IsOverdue {
			m.OverdueCount++
		}

		switch e.Category() {
		case domain.CategoryBorrowing:
			m.TotalBorrowCount++
			d := e.EventDate
			m.LastBorrowedDate = &d
		case domain.CategoryRepair:
			m.TotalRepairCount++
			if e.Cost != nil {
				rawRepairCost += *e.Cost
			}
			m.LastRepairStatus = e.RepairPassed
		case domain.CategoryQC:
			d := e.EventDate
			m.LastQCDate = &d
			m.LastQCPassed = e.QCPassed
		case domain.CategoryEndOfLife:
			// QC result of the assessment wins; fall back to the repair result.
			if e.QCPassed != nil {
				m.LastEOLPassed = e.QCPassed
			} else {
				m.LastEOLPassed = e.RepairPassed
			}
		}
	}

	if procurementPrice > 0 {
		m.RepairCostRatio = rawRepairCost / procurementPrice
	}
	m.TotalRepairCost = Round2(rawRepairCost)

	return m
}

// Round2 rounds to 2 decimal places, halves away from zero.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
