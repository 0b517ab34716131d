package catalog

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// LoadPostgres reads the catalog and similarity matrix from PostgreSQL.
// The schema matches the sqlite layout: movies(idx, external_id, title)
// and similarity(idx, scores) with scores as a JSON array.
func LoadPostgres(ctx context.Context, dsn string) (*Catalog, [][]float64, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("open postgres: %w", err)
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		return nil, nil, fmt.Errorf("ping postgres: %w", err)
	}

	return loadSQL(ctx, db)
}
