package repository

import (
	"context"

	"tooltrack-backend/internal/domain"
)

type ToolRepository interface {
	GetByID(ctx context.Context, id int32) (*domain.Tool, error)
	List(ctx context.Context, search string) ([]domain.Tool, error)
	ListHistory(ctx context.Context, toolID int32) ([]domain.HistoryEvent, error)

	// UpdateAggregates persists the cached aggregate fields and the usability
	// decision onto the tool row. Concurrent refreshes of the same tool are
	// last-writer-wins; the values are a deterministic function of the event
	// history, so the winner is as correct as the loser.
	UpdateAggregates(ctx context.Context, tool *domain.Tool) error
}

type ProductRepository interface {
	GetByID(ctx context.Context, id int32) (*domain.Product, error)
	List(ctx context.Context, search string, activeOnly bool, page, pageSize int32) ([]domain.Product, error)
	Search(ctx context.Context, term string, limit int32) ([]domain.Product, error)
	Exists(ctx context.Context, id int32) (bool, error)
}
