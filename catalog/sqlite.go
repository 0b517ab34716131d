package catalog

import (
	"context"
	"database/sql"
	"fmt"

	json "github.com/goccy/go-json"
	_ "modernc.org/sqlite"

	"github.com/silverspace/go-silverspace/core"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS movies (
	idx INTEGER PRIMARY KEY,
	external_id TEXT NOT NULL,
	title TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS similarity (
	idx INTEGER PRIMARY KEY,
	scores TEXT NOT NULL
);
`

// LoadSQLite reads the catalog and similarity matrix from a SQLite
// database. Each similarity row is stored as a JSON array in the scores
// column, keyed by the movie index.
func LoadSQLite(ctx context.Context, dsn string) (*Catalog, [][]float64, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("open sqlite: %w", err)
	}
	defer db.Close()

	return loadSQL(ctx, db)
}

// SaveSQLite writes the catalog and matrix into a SQLite database,
// creating the schema if needed. Used by the ingest tooling.
func SaveSQLite(ctx context.Context, dsn string, c *Catalog, similarity [][]float64) error {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return fmt.Errorf("open sqlite: %w", err)
	}
	defer db.Close()

	if _, err := db.ExecContext(ctx, sqliteSchema); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	for _, m := range c.Movies() {
		if _, err := tx.ExecContext(ctx, `
			INSERT OR REPLACE INTO movies (idx, external_id, title)
			VALUES (?, ?, ?)`, m.Index, m.ExternalID, m.Title); err != nil {
			return fmt.Errorf("insert movie: %w", err)
		}
	}
	for i, row := range similarity {
		scores, err := json.Marshal(row)
		if err != nil {
			return fmt.Errorf("marshal scores: %w", err)
		}
		if _, err := tx.ExecContext(ctx, `
			INSERT OR REPLACE INTO similarity (idx, scores)
			VALUES (?, ?)`, i, string(scores)); err != nil {
			return fmt.Errorf("insert similarity row: %w", err)
		}
	}

	return tx.Commit()
}

// loadSQL reads movies and similarity rows through database/sql. Both the
// sqlite and postgres paths share it; the queries stick to portable SQL.
func loadSQL(ctx context.Context, db *sql.DB) (*Catalog, [][]float64, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT idx, external_id, title FROM movies ORDER BY idx`)
	if err != nil {
		return nil, nil, fmt.Errorf("query movies: %w", err)
	}
	defer rows.Close()

	var movies []core.Movie
	for rows.Next() {
		var m core.Movie
		if err := rows.Scan(&m.Index, &m.ExternalID, &m.Title); err != nil {
			return nil, nil, fmt.Errorf("scan movie: %w", err)
		}
		movies = append(movies, m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("iterate movies: %w", err)
	}
	if len(movies) == 0 {
		return nil, nil, core.ErrEmptyCatalog
	}

	simRows, err := db.QueryContext(ctx, `
		SELECT idx, scores FROM similarity ORDER BY idx`)
	if err != nil {
		return nil, nil, fmt.Errorf("query similarity: %w", err)
	}
	defer simRows.Close()

	similarity := make([][]float64, 0, len(movies))
	for simRows.Next() {
		var idx int
		var scoresJSON string
		if err := simRows.Scan(&idx, &scoresJSON); err != nil {
			return nil, nil, fmt.Errorf("scan similarity row: %w", err)
		}
		var scores []float64
		if err := json.Unmarshal([]byte(scoresJSON), &scores); err != nil {
			return nil, nil, fmt.Errorf("unmarshal scores: %w", err)
		}
		similarity = append(similarity, scores)
	}
	if err := simRows.Err(); err != nil {
		return nil, nil, fmt.Errorf("iterate similarity: %w", err)
	}

	return NewCatalog(movies), similarity, nil
}
