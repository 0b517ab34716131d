package catalog

import (
	"context"
	"strings"
)

// Load resolves a DSN to the right loader and returns the catalog with its
// similarity matrix:
//   - empty DSN: snapshot file at data/catalog.json
//   - http:// or https://: blob store download
//   - postgres:// or postgresql://: PostgreSQL
//   - *.json: local snapshot file
//   - anything else: SQLite at the given path
//
// token is the optional bearer token for blob downloads.
func Load(ctx context.Context, dsn, token string) (*Catalog, [][]float64, error) {
	switch {
	case dsn == "":
		return LoadFile("data/catalog.json")
	case strings.HasPrefix(dsn, "http://") || strings.HasPrefix(dsn, "https://"):
		return NewBlobLoader(token).Load(ctx, dsn)
	case strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://"):
		return LoadPostgres(ctx, dsn)
	case strings.HasSuffix(dsn, ".json"):
		return LoadFile(dsn)
	default:
		return LoadSQLite(ctx, dsn)
	}
}
