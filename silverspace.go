// Package silverspace provides a content-based movie recommendation
// service: a Top-K similarity lookup over a precomputed item-item
// similarity matrix, with collaborators for posters, movie details,
// trailers and outbound mail.
//
// Example usage:
//
//	cat, similarity, err := catalog.Load(ctx, "data/catalog.json", "")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	index, err := recommend.New(cat, similarity)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	recs, err := index.Recommend("Inception")
package silverspace

import (
	"github.com/silverspace/go-silverspace/catalog"
	"github.com/silverspace/go-silverspace/core"
	"github.com/silverspace/go-silverspace/mail"
	"github.com/silverspace/go-silverspace/metadata"
	"github.com/silverspace/go-silverspace/monitor"
	"github.com/silverspace/go-silverspace/recommend"
	"github.com/silverspace/go-silverspace/server"
)

// Core type aliases
type (
	Movie          = core.Movie
	Recommendation = core.Recommendation
	MovieDetails   = core.MovieDetails
	BugReport      = core.BugReport
)

// Catalog aliases
type (
	Catalog  = catalog.Catalog
	Snapshot = catalog.Snapshot
)

// NewCatalog builds a catalog from an ordered movie list.
func NewCatalog(movies []core.Movie) *catalog.Catalog {
	return catalog.NewCatalog(movies)
}

// Recommendation engine aliases
type (
	Index  = recommend.Index
	Matrix = recommend.Matrix
)

// NewIndex builds a recommendation index over a catalog and its
// similarity matrix.
func NewIndex(c *catalog.Catalog, m recommend.Matrix, opts ...recommend.Option) (*recommend.Index, error) {
	return recommend.New(c, m, opts...)
}

// Metadata client aliases
type (
	TMDBClient    = metadata.TMDBClient
	OMDBClient    = metadata.OMDBClient
	YouTubeClient = metadata.YouTubeClient
)

// Mail aliases
type (
	Mailer     = mail.Mailer
	SMTPMailer = mail.SMTPMailer
	MailConfig = mail.Config
)

// Monitor aliases
type (
	Collector         = monitor.Collector
	InMemoryCollector = monitor.InMemoryCollector
	LookupMetrics     = monitor.LookupMetrics
)

// Server aliases
type (
	Server       = server.Server
	ServerConfig = server.Config
)

// NewServer creates a new API server.
func NewServer(cfg server.Config) (*server.Server, error) {
	return server.New(cfg)
}
