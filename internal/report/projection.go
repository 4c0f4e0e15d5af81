// Package report projects a tool history view into a flat, render-ready
// structure and renders it to a document. The projection knows nothing about
// the output format; renderers consume the structured payload as-is.
package report

import (
	"fmt"
	"strings"

	"tooltrack-backend/internal/domain"
	"tooltrack-backend/internal/dto"
)

const dateTimeLayout = "2006-01-02 15:04"

// Report is the structured payload handed to a Renderer.
type Report struct {
	Title     string
	Usability UsabilitySummary
	Borrowing BorrowingSummary
	Repairs   RepairSummary
	Rows      []Row
}

type UsabilitySummary struct {
	Status string
	Reason string
}

type BorrowingSummary struct {
	TotalBorrows int32
	LastBorrowed string
	OverdueCount int32
}

type RepairSummary struct {
	TotalRepairs   int32
	TotalCost      float64
	LastStatus     string
	CostPercentage float64
}

// Row is one event in the report table.
type Row struct {
	Date      string
	EventType string
	User      string
	Details   string
	Status    string
}

// Renderer turns a report into an opaque document.
type Renderer interface {
	Render(rep *Report) ([]byte, error)
}

// Build maps a history view into a report. Events keep the order of the view.
func Build(view *dto.ToolHistoryResponse) *Report {
	status := "Usable"
	if !view.Analytics.IsUsable {
		status = "Not Usable"
	}

	lastBorrowed := ""
	if view.Analytics.BorrowingHistory.LastBorrowedDate != nil {
		lastBorrowed = view.Analytics.BorrowingHistory.LastBorrowedDate.Format(dateTimeLayout)
	}

	rep := &Report{
		Title: fmt.Sprintf("Tool History Report - %s (%s)", view.Tool.Name, view.Tool.ToolNumber),
		Usability: UsabilitySummary{
			Status: status,
			Reason: view.Analytics.UsabilityReason,
		},
		Borrowing: BorrowingSummary{
			TotalBorrows: view.Analytics.BorrowingHistory.TotalBorrowCount,
			LastBorrowed: lastBorrowed,
			OverdueCount: view.Analytics.BorrowingHistory.OverdueCount,
		},
		Repairs: RepairSummary{
			TotalRepairs:   view.Analytics.RepairHistory.TotalRepairCount,
			TotalCost:      view.Analytics.RepairHistory.TotalRepairCost,
			LastStatus:     formatRepairStatus(view.Analytics.RepairHistory.LastRepairStatus),
			CostPercentage: view.Analytics.RepairHistory.RepairCostPercentage,
		},
	}

	for i := range view.History {
		rep.Rows = append(rep.Rows, buildRow(&view.History[i]))
	}
	return rep
}

func buildRow(e *dto.HistoryEventView) Row {
	user := e.UserName
	if strings.TrimSpace(user) == "" {
		user = e.UserID
	}
	return Row{
		Date:      e.EventDate.Format(dateTimeLayout),
		EventType: e.EventType,
		User:      user,
		Details:   eventDetails(e),
		Status:    eventStatus(e),
	}
}

// eventDetails joins the optional fields that are present, space-separated.
func eventDetails(e *dto.HistoryEventView) string {
	var b strings.Builder
	if e.ProjectNumber != nil && strings.TrimSpace(*e.ProjectNumber) != "" {
		fmt.Fprintf(&b, "Project: %s ", *e.ProjectNumber)
	}
	if e.PurchaseOrderNumber != nil && strings.TrimSpace(*e.PurchaseOrderNumber) != "" {
		fmt.Fprintf(&b, "PO: %s ", *e.PurchaseOrderNumber)
	}
	if e.Cost != nil {
		fmt.Fprintf(&b, "Cost: $%.2f ", *e.Cost)
	}
	if e.Notes != nil && strings.TrimSpace(*e.Notes) != "" {
		b.WriteString(*e.Notes)
	}
	return strings.TrimSpace(b.String())
}

// eventStatus synthesizes the status column from the event's category.
func eventStatus(e *dto.HistoryEventView) string {
	switch domain.CategoryOf(e.EventType) {
	case domain.CategoryQC:
		return passFail(e.QCPassed)
	case domain.CategoryRepair:
		return passFail(e.RepairPassed)
	case domain.CategoryBorrowing:
		if e.DueDate != nil {
			return "Due: " + e.DueDate.Format("2006-01-02")
		}
		return "No due date"
	}
	if strings.EqualFold(e.EventType, "Return") {
		if e.IsOverdue {
			return "Overdue"
		}
		return "On time"
	}
	return "N/A"
}

func passFail(v *bool) string {
	if v != nil && *v {
		return "Passed"
	}
	return "Failed"
}

func formatRepairStatus(status *bool) string {
	switch {
	case status == nil:
		return "Unknown"
	case *status:
		return "Pass"
	default:
		return "Fail"
	}
}
