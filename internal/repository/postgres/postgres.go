package postgres

import (
	"database/sql"

	"tooltrack-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.ToolRepository
	repository.ProductRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                db,
		ToolRepository:    NewToolRepository(db),
		ProductRepository: NewProductRepository(db),
	}
}
