package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"tooltrack-backend/internal/domain"
	"tooltrack-backend/internal/repository"
)

type productRepository struct {
	db *sql.DB
}

func NewProductRepository(db *sql.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

const productColumns = `id, name, product_number, list_price, color, size, sell_start_date, sell_end_date`

func scanProduct(row interface{ Scan(...any) error }, p *domain.Product) error {
	return row.Scan(&p.ID, &p.Name, &p.ProductNumber, &p.ListPrice, &p.Color, &p.Size,
		&p.SellStartDate, &p.SellEndDate)
}

func (r *productRepository) GetByID(ctx context.Context, id int32) (*domain.Product, error) {
	p := &domain.Product{}
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	err := scanProduct(r.db.QueryRowContext(ctx, query, id), p)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *productRepository) List(ctx context.Context, search string, activeOnly bool, page, pageSize int32) ([]domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE 1=1`
	args := []any{}
	argIdx := 1

	if search != "" {
		query += fmt.Sprintf(" AND (name ILIKE $%d OR product_number ILIKE $%d)", argIdx, argIdx)
		args = append(args, "%"+search+"%")
		argIdx++
	}
	if activeOnly {
		query += fmt.Sprintf(" AND (sell_end_date IS NULL OR sell_end_date > $%d)", argIdx)
		args = append(args, time.Now())
		argIdx++
	}
	query += fmt.Sprintf(" ORDER BY name LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
	args = append(args, pageSize, (page-1)*pageSize)

	return r.queryProducts(ctx, query, args...)
}

func (r *productRepository) Search(ctx context.Context, term string, limit int32) ([]domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products
	          WHERE name ILIKE $1 OR product_number ILIKE $1
	          ORDER BY name LIMIT $2`
	return r.queryProducts(ctx, query, "%"+term+"%", limit)
}

func (r *productRepository) Exists(ctx context.Context, id int32) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM products WHERE id = $1)`, id).Scan(&exists)
	return exists, err
}

func (r *productRepository) queryProducts(ctx context.Context, query string, args ...any) ([]domain.Product, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		var p domain.Product
		if err := scanProduct(rows, &p); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}
