// Package catalog loads the movie catalog and its similarity matrix from a
// snapshot file, a blob store URL or a SQL database, selected by DSN.
package catalog

import "github.com/silverspace/go-silverspace/core"

// Catalog is the ordered, read-only list of recommendable movies. It is
// built once by a loader and shared across requests; no writer exists
// after load, so no locking is required.
type Catalog struct {
	movies  []core.Movie
	byTitle map[string]int
}

// NewCatalog builds a Catalog from an ordered movie list. Each movie's
// Index is normalized to its position, which is the row/column key into
// the similarity matrix. Duplicate titles keep the first occurrence for
// title lookup.
func NewCatalog(movies []core.Movie) *Catalog {
	c := &Catalog{
		movies:  make([]core.Movie, len(movies)),
		byTitle: make(map[string]int, len(movies)),
	}
	for i, m := range movies {
		m.Index = i
		c.movies[i] = m
		if _, seen := c.byTitle[m.Title]; !seen {
			c.byTitle[m.Title] = i
		}
	}
	return c
}

// Len returns the number of movies in the catalog.
func (c *Catalog) Len() int {
	return len(c.movies)
}

// At returns the movie at position i. Callers must hold a valid index.
func (c *Catalog) At(i int) core.Movie {
	return c.movies[i]
}

// FindByTitle resolves an exact title to its movie record. With duplicate
// titles, the first catalog entry wins.
func (c *Catalog) FindByTitle(title string) (core.Movie, bool) {
	i, ok := c.byTitle[title]
	if !ok {
		return core.Movie{}, false
	}
	return c.movies[i], true
}

// Titles returns all titles in catalog order, for selection lists.
func (c *Catalog) Titles() []string {
	titles := make([]string, len(c.movies))
	for i, m := range c.movies {
		titles[i] = m.Title
	}
	return titles
}

// Movies returns a copy of the underlying records.
func (c *Catalog) Movies() []core.Movie {
	out := make([]core.Movie, len(c.movies))
	copy(out, c.movies)
	return out
}
