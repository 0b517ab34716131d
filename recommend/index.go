// Package recommend implements the Top-K similarity lookup over a
// precomputed item-item similarity matrix.
package recommend

import (
	"sort"

	"github.com/silverspace/go-silverspace/catalog"
	"github.com/silverspace/go-silverspace/core"
)

// DefaultTopK is the number of recommendations returned per lookup.
const DefaultTopK = 5

// Index pairs a catalog with its similarity matrix and answers Top-K
// lookups. It is constructed once at startup, is immutable afterwards and
// safe for concurrent readers; lookups perform no I/O.
type Index struct {
	catalog *catalog.Catalog
	matrix  Matrix
	topK    int
}

// Option configures an Index.
type Option func(*Index)

// WithTopK overrides the number of recommendations returned per lookup.
func WithTopK(k int) Option {
	return func(idx *Index) {
		if k > 0 {
			idx.topK = k
		}
	}
}

// New builds an Index, validating that the matrix dimension matches the
// catalog length.
func New(c *catalog.Catalog, m Matrix, opts ...Option) (*Index, error) {
	if c.Len() == 0 {
		return nil, core.ErrEmptyCatalog
	}
	if err := m.Validate(c.Len()); err != nil {
		return nil, err
	}

	idx := &Index{catalog: c, matrix: m, topK: DefaultTopK}
	for _, opt := range opts {
		opt(idx)
	}
	return idx, nil
}

// Catalog returns the catalog backing this index.
func (idx *Index) Catalog() *catalog.Catalog {
	return idx.catalog
}

// Recommend returns the top K movies most similar to the movie with the
// given title, ordered by descending similarity. Equal scores keep their
// catalog index order. The query movie itself is never returned. When the
// catalog holds fewer than K+1 movies, all other movies are returned.
//
// Titles must match exactly; with duplicate titles the first catalog entry
// wins. An unknown title yields core.ErrMovieNotFound.
func (idx *Index) Recommend(title string) ([]core.Recommendation, error) {
	movie, ok := idx.catalog.FindByTitle(title)
	if !ok {
		return nil, core.NewLookupError("recommend", title, core.ErrMovieNotFound)
	}
	return idx.RecommendByIndex(movie.Index)
}

// RecommendByIndex is Recommend for a resolved catalog position.
func (idx *Index) RecommendByIndex(i int) ([]core.Recommendation, error) {
	if i < 0 || i >= idx.catalog.Len() {
		return nil, core.NewLookupError("recommend", "", core.ErrMovieNotFound)
	}

	row := idx.matrix[i]
	pairs := make([]scored, 0, len(row)-1)
	for j, score := range row {
		// Exclude the query item by index rather than trusting
		// self-similarity to sort first; a candidate tied with the
		// self score must still be eligible.
		if j == i {
			continue
		}
		pairs = append(pairs, scored{index: j, score: score})
	}

	sort.SliceStable(pairs, func(a, b int) bool {
		return pairs[a].score > pairs[b].score
	})

	k := idx.topK
	if len(pairs) < k {
		k = len(pairs)
	}

	recs := make([]core.Recommendation, 0, k)
	for _, p := range pairs[:k] {
		m := idx.catalog.At(p.index)
		recs = append(recs, core.Recommendation{
			Title:      m.Title,
			ExternalID: m.ExternalID,
			Score:      p.score,
		})
	}
	return recs, nil
}

type scored struct {
	index int
	score float64
}
