package catalog

import (
	"fmt"
	"io"

	json "github.com/goccy/go-json"

	"github.com/silverspace/go-silverspace/core"
)

// Snapshot is the on-disk form of a catalog plus its similarity matrix,
// the Go analog of the original pickled dump: one JSON document holding
// both, aligned by position.
type Snapshot struct {
	Movies     []core.Movie `json:"movies"`
	Similarity [][]float64  `json:"similarity"`
}

// DecodeSnapshot reads a JSON snapshot and splits it into a catalog and a
// similarity matrix. The dimension check belongs to the caller building
// the index; this only rejects structurally empty snapshots.
func DecodeSnapshot(r io.Reader) (*Catalog, [][]float64, error) {
	var snap Snapshot
	if err := json.NewDecoder(r).Decode(&snap); err != nil {
		return nil, nil, fmt.Errorf("decode snapshot: %w", err)
	}
	if len(snap.Movies) == 0 {
		return nil, nil, fmt.Errorf("%w: no movies", core.ErrInvalidSnapshot)
	}
	return NewCatalog(snap.Movies), snap.Similarity, nil
}

// EncodeSnapshot writes the catalog and matrix as a JSON snapshot, the
// inverse of DecodeSnapshot. Used by the ingest tooling and tests.
func EncodeSnapshot(w io.Writer, c *Catalog, similarity [][]float64) error {
	snap := Snapshot{Movies: c.Movies(), Similarity: similarity}
	if err := json.NewEncoder(w).Encode(&snap); err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	return nil
}
