package service

import (
	"context"

	"tooltrack-backend/internal/dto"
)

type ToolService interface {
	// GetTools lists tools matching the optional search term (name or tool
	// number substring, case-insensitive), each with freshly computed metrics.
	GetTools(ctx context.Context, search string) ([]dto.ToolView, error)

	// GetToolHistory returns the filtered chronological view plus analytics
	// derived from the complete, unfiltered history.
	GetToolHistory(ctx context.Context, toolID int32, filter *dto.HistoryFilter) (*dto.ToolHistoryResponse, error)

	// ExportToolHistoryPDF renders the unfiltered history view as a PDF
	// document.
	ExportToolHistoryPDF(ctx context.Context, toolID int32) ([]byte, error)

	// RefreshToolStatus recomputes the aggregates and usability decision from
	// the event history and persists them onto the tool row.
	RefreshToolStatus(ctx context.Context, toolID int32) error
}

type ProductService interface {
	GetProducts(ctx context.Context, page, pageSize int32, search string, activeOnly bool) ([]dto.ProductView, error)
	GetProduct(ctx context.Context, id int32) (*dto.ProductView, error)
	SearchProducts(ctx context.Context, term string, limit int32) ([]dto.ProductView, error)
	ProductExists(ctx context.Context, id int32) (bool, error)
}
