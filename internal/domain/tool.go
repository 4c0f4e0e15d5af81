package domain

import "time"

// Tool is a physical tool tracked through its lifecycle. The aggregate fields
// (IsUsable, CurrentStatus, counters, costs, LastBorrowedDate) are a
// materialized cache of the event history; only the status refresh operation
// writes them.
type Tool struct {
	ID               int32      `json:"id"`
	Name             string     `json:"name"`
	ToolNumber       string     `json:"tool_number"`
	ProcurementPrice float64    `json:"procurement_price"`
	ProcurementDate  time.Time  `json:"procurement_date"`
	CurrentStatus    string     `json:"current_status"`
	IsUsable         bool       `json:"is_usable"`
	TotalRepairCost  float64    `json:"total_repair_cost"`
	TotalRepairCount int32      `json:"total_repair_count"`
	TotalBorrowCount int32      `json:"total_borrow_count"`
	OverdueCount     int32      `json:"overdue_count"`
	LastBorrowedDate *time.Time `json:"last_borrowed_date,omitempty"`
	CreatedDate      time.Time  `json:"created_date"`
	ModifiedDate     time.Time  `json:"modified_date"`
}
