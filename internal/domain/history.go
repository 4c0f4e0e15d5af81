package domain

import (
	"sort"
	"strings"
	"time"
)

// HistoryEvent is one append-only lifecycle event for a tool. Events are
// immutable once recorded except for IsOverdue, which write paths may set.
type HistoryEvent struct {
	ID                  int32      `json:"id"`
	ToolID              int32      `json:"tool_id"`
	EventType           string     `json:"event_type"` // Procurement, Borrowing, Return, QC, Repair, EOL/EndOfLife
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
	CreatedDate         time.Time  `json:"created_date"`
}

// EventCategory is the normalized classification of an event's declared type.
type EventCategory int

const (
	CategoryOther EventCategory = iota
	CategoryBorrowing
	CategoryRepair
	CategoryQC
	CategoryEndOfLife
)

func (c EventCategory) String() string {
	switch c {
	case CategoryBorrowing:
		return "Borrowing"
	case CategoryRepair:
		return "Repair"
	case CategoryQC:
		return "QC"
	case CategoryEndOfLife:
		return "EndOfLife"
	default:
		return "Other"
	}
}

// CategoryOf classifies an event type string. Borrowing, Repair and QC match
// case-insensitively; EndOfLife matches "EndOfLife" or any type containing
// "EOL", both case-insensitive. Everything else, including the empty string,
// is Other.
func CategoryOf(eventType string) EventCategory {
	if strings.TrimSpace(eventType) == "" {
		return CategoryOther
	}
	if strings.Contains(strings.ToUpper(eventType), "EOL") || strings.EqualFold(eventType, "EndOfLife") {
		return CategoryEndOfLife
	}
	switch {
	case strings.EqualFold(eventType, "Borrowing"):
		return CategoryBorrowing
	case strings.EqualFold(eventType, "Repair"):
		return CategoryRepair
	case strings.EqualFold(eventType, "QC"):
		return CategoryQC
	}
	return CategoryOther
}

// Category classifies the event itself.
func (e *HistoryEvent) Category() EventCategory {
	return CategoryOf(e.EventType)
}

// SortEventsChronological orders events ascending by event date, ties broken
// by ascending ID so the order is stable regardless of load order.
func SortEventsChronological(events []HistoryEvent) {
	sort.SliceStable(events, func(i, j int) bool {
		if events[i].EventDate.Equal(events[j].EventDate) {
			return events[i].ID < events[j].ID
		}
		return events[i].EventDate.Before(events[j].EventDate)
	})
}
