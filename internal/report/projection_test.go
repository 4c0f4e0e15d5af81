package report

import (
	"testing"
	"time"

	"tooltrack-backend/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptrBool(v bool) *bool           { return &v }
func ptrFloat(v float64) *float64    { return &v }
func ptrString(v string) *string     { return &v }
func ptrTime(v time.Time) *time.Time { return &v }

func sampleView() *dto.ToolHistoryResponse {
	return &dto.ToolHistoryResponse{
		Tool: dto.ToolView{Name: "Angle Grinder", ToolNumber: "TL-0007"},
		Analytics: dto.ToolAnalytics{
			BorrowingHistory: dto.BorrowingAnalytics{
				TotalBorrowCount: 3,
				LastBorrowedDate: ptrTime(time.Date(2024, 4, 12, 14, 30, 0, 0, time.UTC)),
				OverdueCount:     1,
			},
			RepairHistory: dto.RepairAnalytics{
				TotalRepairCount:     2,
				TotalRepairCost:      312.5,
				LastRepairStatus:     ptrBool(true),
				RepairCostPercentage: 31.25,
			},
			IsUsable:        true,
			UsabilityReason: "Tool is in good condition",
		},
	}
}

func TestBuild_HeaderBlocks(t *testing.T) {
	rep := Build(sampleView())

	assert.Equal(t, "Tool History Report - Angle Grinder (TL-0007)", rep.Title)
	assert.Equal(t, "Usable", rep.Usability.Status)
	assert.Equal(t, "Tool is in good condition", rep.Usability.Reason)
	assert.Equal(t, int32(3), rep.Borrowing.TotalBorrows)
	assert.Equal(t, "2024-04-12 14:30", rep.Borrowing.LastBorrowed)
	assert.Equal(t, int32(1), rep.Borrowing.OverdueCount)
	assert.Equal(t, "Pass", rep.Repairs.LastStatus)
	assert.Equal(t, 31.25, rep.Repairs.CostPercentage)
}

func TestBuild_NotUsableStatus(t *testing.T) {
	view := sampleView()
	view.Analytics.IsUsable = false
	view.Analytics.UsabilityReason = "Latest QC failed"

	rep := Build(view)

	assert.Equal(t, "Not Usable", rep.Usability.Status)
	assert.Equal(t, "Latest QC failed", rep.Usability.Reason)
}

func TestBuild_NeverBorrowedLeavesLastBorrowedBlank(t *testing.T) {
	view := sampleView()
	view.Analytics.BorrowingHistory.LastBorrowedDate = nil

	rep := Build(view)

	assert.Equal(t, "", rep.Borrowing.LastBorrowed)
}

func TestBuild_RowDetails(t *testing.T) {
	when := time.Date(2024, 2, 3, 9, 15, 0, 0, time.UTC)

	t.Run("All optional fields present", func(t *testing.T) {
		view := sampleView()
		view.History = []dto.HistoryEventView{{
			EventType:           "Repair",
			EventDate:           when,
			UserName:            "Dana Cole",
			ProjectNumber:       ptrString("PRJ-9"),
			PurchaseOrderNumber: ptrString("PO-1234"),
			Cost:                ptrFloat(150),
			Notes:               ptrString("Replaced brushes"),
			RepairPassed:        ptrBool(true),
		}}

		rep := Build(view)
		require.Len(t, rep.Rows, 1)
		row := rep.Rows[0]

		assert.Equal(t, "2024-02-03 09:15", row.Date)
		assert.Equal(t, "Dana Cole", row.User)
		assert.Equal(t, "Project: PRJ-9 PO: PO-1234 Cost: $150.00 Replaced brushes", row.Details)
		assert.Equal(t, "Passed", row.Status)
	})

	t.Run("No optional fields yields empty details", func(t *testing.T) {
		view := sampleView()
		view.History = []dto.HistoryEventView{{EventType: "Procurement", EventDate: when, UserName: "x"}}

		rep := Build(view)
		assert.Equal(t, "", rep.Rows[0].Details)
		assert.Equal(t, "N/A", rep.Rows[0].Status)
	})

	t.Run("Blank user name falls back to user id", func(t *testing.T) {
		view := sampleView()
		view.History = []dto.HistoryEventView{{EventType: "QC", EventDate: when, UserID: "u-77", UserName: "  ", QCPassed: ptrBool(false)}}

		rep := Build(view)
		assert.Equal(t, "u-77", rep.Rows[0].User)
		assert.Equal(t, "Failed", rep.Rows[0].Status)
	})
}

func TestBuild_RowStatus(t *testing.T) {
	when := time.Date(2024, 2, 3, 9, 15, 0, 0, time.UTC)
	due := time.Date(2024, 2, 17, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		event    dto.HistoryEventView
		expected string
	}{
		{"QC passed", dto.HistoryEventView{EventType: "QC", QCPassed: ptrBool(true)}, "Passed"},
		{"QC missing result reads failed", dto.HistoryEventView{EventType: "qc"}, "Failed"},
		{"Repair failed", dto.HistoryEventView{EventType: "Repair", RepairPassed: ptrBool(false)}, "Failed"},
		{"Borrowing with due date", dto.HistoryEventView{EventType: "Borrowing", DueDate: &due}, "Due: 2024-02-17"},
		{"Borrowing without due date", dto.HistoryEventView{EventType: "Borrowing"}, "No due date"},
		{"Return overdue", dto.HistoryEventView{EventType: "Return", IsOverdue: true}, "Overdue"},
		{"Return on time", dto.HistoryEventView{EventType: "return"}, "On time"},
		{"Billing has no status", dto.HistoryEventView{EventType: "Billing"}, "N/A"},
		{"EOL has no status", dto.HistoryEventView{EventType: "EOL", QCPassed: ptrBool(false)}, "N/A"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.event.EventDate = when
			view := sampleView()
			view.History = []dto.HistoryEventView{tt.event}

			rep := Build(view)
			assert.Equal(t, tt.expected, rep.Rows[0].Status)
		})
	}
}

func TestPDFRenderer_ProducesDocument(t *testing.T) {
	rep := Build(sampleView())

	doc, err := NewPDFRenderer().Render(rep)
	require.NoError(t, err)
	assert.True(t, len(doc) > 0)
	assert.Equal(t, "%PDF", string(doc[:4]))
}
