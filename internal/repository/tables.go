package repository

import (
	"context"
	"fmt"

	"caritasAPI/internal/database"
)

type tablesRepository struct {
	db *database.DB
}

func NewTablesRepository(db *database.DB) TablesRepository {
	return &tablesRepository{db: db}
}

func (r *tablesRepository) CountTablesDB(ctx context.Context) (int, error) {
	count, err := r.db.Count(ctx, r.db.Dialect.CountTablesQuery())
	if err != nil {
		return 0, fmt.Errorf("failed to count database tables: %w", err)
	}

	return count, nil
}
