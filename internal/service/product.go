package service

import (
	"context"
	"fmt"
	"time"

	"tooltrack-backend/internal/domain"
	"tooltrack-backend/internal/dto"
	"tooltrack-backend/internal/logger"
	"tooltrack-backend/internal/repository"
)

type productService struct {
	productRepo repository.ProductRepository
}

func NewProductService(productRepo repository.ProductRepository) ProductService {
	return &productService{productRepo: productRepo}
}

func (s *productService) GetProducts(ctx context.Context, page, pageSize int32, search string, activeOnly bool) ([]dto.ProductView, error) {
	// Out-of-range pagination values are clamped, never rejected.
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	products, err := s.productRepo.List(ctx, search, activeOnly, page, pageSize)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}

	logger.InfoContext(ctx, "Retrieved products", "count", len(products), "page", page, "page_size", pageSize)
	return buildProductViews(products), nil
}

func (s *productService) GetProduct(ctx context.Context, id int32) (*dto.ProductView, error) {
	if id <= 0 {
		return nil, domain.ErrNotFound
	}
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	view := buildProductView(product, time.Now())
	return &view, nil
}

func (s *productService) SearchProducts(ctx context.Context, term string, limit int32) ([]dto.ProductView, error) {
	if term == "" {
		return []dto.ProductView{}, nil
	}
	if limit < 1 || limit > 50 {
		limit = 10
	}

	products, err := s.productRepo.Search(ctx, term, limit)
	if err != nil {
		return nil, fmt.Errorf("search products: %w", err)
	}

	logger.InfoContext(ctx, "Found products", "count", len(products), "term", term)
	return buildProductViews(products), nil
}

func (s *productService) ProductExists(ctx context.Context, id int32) (bool, error) {
	if id <= 0 {
		return false, nil
	}
	return s.productRepo.Exists(ctx, id)
}

func buildProductViews(products []domain.Product) []dto.ProductView {
	now := time.Now()
	views := make([]dto.ProductView, 0, len(products))
	for i := range products {
		views = append(views, buildProductView(&products[i], now))
	}
	return views
}

func buildProductView(p *domain.Product, now time.Time) dto.ProductView {
	return dto.ProductView{
		ID:            p.ID,
		Name:          p.Name,
		ProductNumber: p.ProductNumber,
		ListPrice:     p.ListPrice,
		Color:         p.Color,
		Size:          p.Size,
		SellStartDate: p.SellStartDate,
		SellEndDate:   p.SellEndDate,
		IsActive:      p.IsActive(now),
	}
}
