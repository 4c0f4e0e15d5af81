// Package dto holds the JSON response shapes served by the HTTP API. They are
// assembled by the service layer and consumed unchanged by the report
// projection, so handlers and renderers never reach into domain entities.
package dto

import "time"

// ToolView is a tool snapshot carrying freshly computed metrics, not the
// possibly stale aggregates persisted on the tool row.
type ToolView struct {
	ID               int32      `json:"id"`
	Name             string     `json:"name"`
	ToolNumber       string     `json:"tool_number"`
	ProcurementPrice float64    `json:"procurement_price"`
	ProcurementDate  time.Time  `json:"procurement_date"`
	CurrentStatus    string     `json:"current_status"`
	IsUsable         bool       `json:"is_usable"`
	LastQCDate       *time.Time `json:"last_qc_date,omitempty"`
	LastQCPassed     *bool      `json:"last_qc_passed,omitempty"`
	TotalRepairCost  float64    `json:"total_repair_cost"`
	TotalRepairCount int32      `json:"total_repair_count"`
	TotalBorrowCount int32      `json:"total_borrow_count"`
	OverdueCount     int32      `json:"overdue_count"`
	LastBorrowedDate *time.Time `json:"last_borrowed_date,omitempty"`
	CreatedDate      time.Time  `json:"created_date"`
	ModifiedDate     time.Time  `json:"modified_date"`
}

// HistoryEventView is one event row in the filtered chronological view.
type HistoryEventView struct {
	ID                  int32      `json:"id"`
	EventType           string     `json:"event_type"`
	EventDate           time.Time  `json:"event_date"`
	UserID              string     `json:"user_id"`
	UserName            string     `json:"user_name"`
	ProjectNumber       *string    `json:"project_number,omitempty"`
	PurchaseOrderNumber *string    `json:"purchase_order_number,omitempty"`
	Cost                *float64   `json:"cost,omitempty"`
	Notes               *string    `json:"notes,omitempty"`
	QCPassed            *bool      `json:"qc_passed,omitempty"`
	RepairPassed        *bool      `json:"repair_passed,omitempty"`
	DueDate             *time.Time `json:"due_date,omitempty"`
	IsOverdue           bool       `json:"is_overdue"`
}

// BorrowingAnalytics summarizes borrowing activity over the full history.
type BorrowingAnalytics struct {
	TotalBorrowCount int32      `json:"total_borrow_count"`
	LastBorrowedDate *time.Time `json:"last_borrowed_date,omitempty"`
	OverdueCount     int32      `json:"overdue_count"`
}

// RepairAnalytics summarizes repair activity over the full history.
// RepairCostPercentage is the repair-cost ratio as a percentage, rounded to
// 2 decimal places.
type RepairAnalytics struct {
	TotalRepairCount     int32   `json:"total_repair_count"`
	TotalRepairCost      float64 `json:"total_repair_cost"`
	LastRepairStatus     *bool   `json:"last_repair_status,omitempty"`
	RepairCostPercentage float64 `json:"repair_cost_percentage"`
}

// ToolAnalytics is the analytics block of a history response.
type ToolAnalytics struct {
	BorrowingHistory BorrowingAnalytics `json:"borrowing_history"`
	RepairHistory    RepairAnalytics    `json:"repair_history"`
	IsUsable         bool               `json:"is_usable"`
	UsabilityReason  string             `json:"usability_reason"`
}

// ToolHistoryResponse is the full view for one tool: snapshot, filtered
// chronological events, and analytics derived from the unfiltered history.
type ToolHistoryResponse struct {
	Tool      ToolView           `json:"tool"`
	History   []HistoryEventView `json:"history"`
	Analytics ToolAnalytics      `json:"analytics"`
}

// HistoryFilter restricts the chronological view. Start and end bounds are
// inclusive; EventType matches the stored event type string after trimming,
// case-insensitively. Nil fields impose no constraint. Filters never affect
// the analytics block.
type HistoryFilter struct {
	StartDate *time.Time
	EndDate   *time.Time
	EventType string
}

// ProductView is the trimmed product shape served by the catalog endpoints.
type ProductView struct {
	ID            int32      `json:"id"`
	Name          string     `json:"name"`
	ProductNumber string     `json:"product_number"`
	ListPrice     float64    `json:"list_price"`
	Color         *string    `json:"color,omitempty"`
	Size          *string    `json:"size,omitempty"`
	SellStartDate time.Time  `json:"sell_start_date"`
	SellEndDate   *time.Time `json:"sell_end_date,omitempty"`
	IsActive      bool       `json:"is_active"`
}
