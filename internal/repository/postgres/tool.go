package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"tooltrack-backend/internal/domain"
	"tooltrack-backend/internal/repository"
)

type toolRepository struct {
	db *sql.DB
}

func NewToolRepository(db *sql.DB) repository.ToolRepository {
	return &toolRepository{db: db}
}

const toolColumns = `id, name, tool_number, procurement_price, procurement_date, COALESCE(current_status, ''), is_usable, total_repair_cost, total_repair_count, total_borrow_count, overdue_count, last_borrowed_date, created_date, modified_date`

func scanTool(row interface{ Scan(...any) error }, t *domain.Tool) error {
	return row.Scan(&t.ID, &t.Name, &t.ToolNumber, &t.ProcurementPrice, &t.ProcurementDate,
		&t.CurrentStatus, &t.IsUsable, &t.TotalRepairCost, &t.TotalRepairCount,
		&t.TotalBorrowCount, &t.OverdueCount, &t.LastBorrowedDate, &t.CreatedDate, &t.ModifiedDate)
}

func (r *toolRepository) GetByID(ctx context.Context, id int32) (*domain.Tool, error) {
	t := &domain.Tool{}
	query := `SELECT ` + toolColumns + ` FROM tools WHERE id = $1`
	err := scanTool(r.db.QueryRowContext(ctx, query, id), t)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (r *toolRepository) List(ctx context.Context, search string) ([]domain.Tool, error) {
	query := `SELECT ` + toolColumns + ` FROM tools`
	args := []any{}
	if search != "" {
		query += ` WHERE name ILIKE $1 OR tool_number ILIKE $1`
		args = append(args, "%"+search+"%")
	}
	query += ` ORDER BY name`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tools []domain.Tool
	for rows.Next() {
		var t domain.Tool
		if err := scanTool(rows, &t); err != nil {
			return nil, err
		}
		tools = append(tools, t)
	}
	return tools, rows.Err()
}

func (r *toolRepository) ListHistory(ctx context.Context, toolID int32) ([]domain.HistoryEvent, error) {
	query := `SELECT id, tool_id, event_type, event_date, user_id, user_name, project_number, purchase_order_number, cost, notes, qc_passed, repair_passed, due_date, is_overdue, created_date
	          FROM tool_history WHERE tool_id = $1 ORDER BY event_date, id`
	rows, err := r.db.QueryContext(ctx, query, toolID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []domain.HistoryEvent
	for rows.Next() {
		var e domain.HistoryEvent
		if err := rows.Scan(&e.ID, &e.ToolID, &e.EventType, &e.EventDate, &e.UserID, &e.UserName,
			&e.ProjectNumber, &e.PurchaseOrderNumber, &e.Cost, &e.Notes,
			&e.QCPassed, &e.RepairPassed, &e.DueDate, &e.IsOverdue, &e.CreatedDate); err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

func (r *toolRepository) UpdateAggregates(ctx context.Context, t *domain.Tool) error {
	query := `UPDATE tools
	          SET is_usable=$1, current_status=$2, total_repair_cost=$3, total_repair_count=$4,
	              total_borrow_count=$5, overdue_count=$6, last_borrowed_date=$7, modified_date=$8
	          WHERE id=$9`
	result, err := r.db.ExecContext(ctx, query, t.IsUsable, t.CurrentStatus, t.TotalRepairCost,
		t.TotalRepairCount, t.TotalBorrowCount, t.OverdueCount, t.LastBorrowedDate, time.Now().UTC(), t.ID)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
