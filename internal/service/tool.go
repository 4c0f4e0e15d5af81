package service

import (
	"context"
	"fmt"
	"strings"

	"tooltrack-backend/internal/analytics"
	"tooltrack-backend/internal/domain"
	"tooltrack-backend/internal/dto"
	"tooltrack-backend/internal/logger"
	"tooltrack-backend/internal/report"
	"tooltrack-backend/internal/repository"
)

type toolService struct {
	toolRepo repository.ToolRepository
	renderer report.Renderer
}

func NewToolService(toolRepo repository.ToolRepository, renderer report.Renderer) ToolService {
	return &toolService{
		toolRepo: toolRepo,
		renderer: renderer,
	}
}

func (s *toolService) GetTools(ctx context.Context, search string) ([]dto.ToolView, error) {
	logger.InfoContext(ctx, "Retrieving tools", "search", search)

	tools, err := s.toolRepo.List(ctx, strings.TrimSpace(search))
	if err != nil {
		return nil, fmt.Errorf("list tools: %w", err)
	}

	views := make([]dto.ToolView, 0, len(tools))
	for i := range tools {
		events, err := s.toolRepo.ListHistory(ctx, tools[i].ID)
		if err != nil {
			return nil, fmt.Errorf("load history for tool %d: %w", tools[i].ID, err)
		}
		metrics := analytics.Calculate(events, tools[i].ProcurementPrice)
		usable, _ := analytics.EvaluateUsability(metrics)
		views = append(views, buildToolView(&tools[i], metrics, usable))
	}
	return views, nil
}

func (s *toolService) GetToolHistory(ctx context.Context, toolID int32, filter *dto.HistoryFilter) (*dto.ToolHistoryResponse, error) {
	logger.InfoContext(ctx, "Getting tool history", "tool_id", toolID)

	tool, events, err := s.loadToolWithHistory(ctx, toolID)
	if err != nil {
		return nil, err
	}

	// Aggregates and the decision always come from the complete history; the
	// filter only narrows the chronological view.
	metrics := analytics.Calculate(events, tool.ProcurementPrice)
	usable, reason := analytics.EvaluateUsability(metrics)

	filtered := filterEvents(events, filter)
	domain.SortEventsChronological(filtered)

	history := make([]dto.HistoryEventView, 0, len(filtered))
	for i := range filtered {
		history = append(history, buildEventView(&filtered[i]))
	}

	return &dto.ToolHistoryResponse{
		Tool:    buildToolView(tool, metrics, usable),
		History: history,
		Analytics: dto.ToolAnalytics{
			BorrowingHistory: dto.BorrowingAnalytics{
				TotalBorrowCount: metrics.TotalBorrowCount,
				LastBorrowedDate: metrics.LastBorrowedDate,
				OverdueCount:     metrics.OverdueCount,
			},
			RepairHistory: dto.RepairAnalytics{
				TotalRepairCount:     metrics.TotalRepairCount,
				TotalRepairCost:      metrics.TotalRepairCost,
				LastRepairStatus:     metrics.LastRepairStatus,
				RepairCostPercentage: analytics.Round2(metrics.RepairCostRatio * 100),
			},
			IsUsable:        usable,
			UsabilityReason: reason,
		},
	}, nil
}

func (s *toolService) ExportToolHistoryPDF(ctx context.Context, toolID int32) ([]byte, error) {
	view, err := s.GetToolHistory(ctx, toolID, nil)
	if err != nil {
		return nil, err
	}
	doc, err := s.renderer.Render(report.Build(view))
	if err != nil {
		return nil, fmt.Errorf("render report for tool %d: %w", toolID, err)
	}
	return doc, nil
}

func (s *toolService) RefreshToolStatus(ctx context.Context, toolID int32) error {
	logger.InfoContext(ctx, "Refreshing tool status", "tool_id", toolID)

	tool, events, err := s.loadToolWithHistory(ctx, toolID)
	if err != nil {
		return err
	}

	metrics := analytics.Calculate(events, tool.ProcurementPrice)
	usable, reason := analytics.EvaluateUsability(metrics)

	tool.TotalBorrowCount = metrics.TotalBorrowCount
	tool.LastBorrowedDate = metrics.LastBorrowedDate
	tool.OverdueCount = metrics.OverdueCount
	tool.TotalRepairCount = metrics.TotalRepairCount
	tool.TotalRepairCost = metrics.TotalRepairCost
	tool.IsUsable = usable
	if usable {
		tool.CurrentStatus = "Usable"
	} else {
		tool.CurrentStatus = "Not Usable: " + reason
	}

	if err := s.toolRepo.UpdateAggregates(ctx, tool); err != nil {
		return fmt.Errorf("persist aggregates for tool %d: %w", toolID, err)
	}
	return nil
}

func (s *toolService) loadToolWithHistory(ctx context.Context, toolID int32) (*domain.Tool, []domain.HistoryEvent, error) {
	tool, err := s.toolRepo.GetByID(ctx, toolID)
	if err != nil {
		return nil, nil, err
	}
	events, err := s.toolRepo.ListHistory(ctx, toolID)
	if err != nil {
		return nil, nil, fmt.Errorf("load history for tool %d: %w", toolID, err)
	}
	return tool, events, nil
}

// filterEvents applies the optional date range and event-type filter. Date
// bounds are inclusive. The event-type match is the trimmed filter value
// compared case-insensitively against the raw stored type, not the normalized
// category, so a filter of "EOL" does not match events stored as "EndOfLife".
func filterEvents(events []domain.HistoryEvent, filter *dto.HistoryFilter) []domain.HistoryEvent {
	filtered := make([]domain.HistoryEvent, 0, len(events))
	if filter == nil {
		return append(filtered, events...)
	}
	eventType := strings.TrimSpace(filter.EventType)
	for _, e := range events {
		if filter.StartDate != nil && e.EventDate.Before(*filter.StartDate) {
			continue
		}
		if filter.EndDate != nil && e.EventDate.After(*filter.EndDate) {
			continue
		}
		if eventType != "" && !strings.EqualFold(e.EventType, eventType) {
			continue
		}
		filtered = append(filtered, e)
	}
	return filtered
}

func buildToolView(tool *domain.Tool, m analytics.Metrics, usable bool) dto.ToolView {
	return dto.ToolView{
		ID:               tool.ID,
		Name:             tool.Name,
		ToolNumber:       tool.ToolNumber,
		ProcurementPrice: tool.ProcurementPrice,
		ProcurementDate:  tool.ProcurementDate,
		CurrentStatus:    tool.CurrentStatus,
		IsUsable:         usable,
		LastQCDate:       m.LastQCDate,
		LastQCPassed:     m.LastQCPassed,
		TotalRepairCost:  m.TotalRepairCost,
		TotalRepairCount: m.TotalRepairCount,
		TotalBorrowCount: m.TotalBorrowCount,
		OverdueCount:     m.OverdueCount,
		LastBorrowedDate: m.LastBorrowedDate,
		CreatedDate:      tool.CreatedDate,
		ModifiedDate:     tool.ModifiedDate,
	}
}

func buildEventView(e *domain.HistoryEvent) dto.HistoryEventView {
	return dto.HistoryEventView{
		ID:                  e.ID,
		EventType:           e.EventType,
		EventDate:           e.EventDate,
		UserID:              e.UserID,
		UserName:            e.UserName,
		ProjectNumber:       e.ProjectNumber,
		PurchaseOrderNumber: e.PurchaseOrderNumber,
		Cost:                e.Cost,
		Notes:               e.Notes,
		QCPassed:            e.QCPassed,
		RepairPassed:        e.RepairPassed,
		DueDate:             e.DueDate,
		IsOverdue:           e.IsOverdue,
	}
}
