package http

import (
	"context"

	"tooltrack-backend/internal/dto"

	"github.com/stretchr/testify/mock"
)

type MockToolService struct {
	mock.Mock
}

func (m *MockToolService) GetTools(ctx context.Context, search string) ([]dto.ToolView, error) {
	args := m.Called(ctx, search)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.ToolView), args.Error(1)
}

func (m *MockToolService) GetToolHistory(ctx context.Context, toolID int32, filter *dto.HistoryFilter) (*dto.ToolHistoryResponse, error) {
	args := m.Called(ctx, toolID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ToolHistoryResponse), args.Error(1)
}

func (m *MockToolService) ExportToolHistoryPDF(ctx context.Context, toolID int32) ([]byte, error) {
	args := m.Called(ctx, toolID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockToolService) RefreshToolStatus(ctx context.Context, toolID int32) error {
	args := m.Called(ctx, toolID)
	return args.Error(0)
}

type MockProductService struct {
	mock.Mock
}

func (m *MockProductService) GetProducts(ctx context.Context, page, pageSize int32, search string, activeOnly bool) ([]dto.ProductView, error) {
	args := m.Called(ctx, page, pageSize, search, activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.ProductView), args.Error(1)
}

func (m *MockProductService) GetProduct(ctx context.Context, id int32) (*dto.ProductView, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ProductView), args.Error(1)
}

func (m *MockProductService) SearchProducts(ctx context.Context, term string, limit int32) ([]dto.ProductView, error) {
	args := m.Called(ctx, term, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.ProductView), args.Error(1)
}

func (m *MockProductService) ProductExists(ctx context.Context, id int32) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}
