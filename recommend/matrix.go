package recommend

import (
	"fmt"

	"github.com/silverspace/go-silverspace/core"
)

// Matrix is a precomputed item-item similarity matrix. Matrix[i][j] is the
// similarity between catalog items i and j. It is produced offline and
// loaded once per process; nothing in this package mutates it.
type Matrix [][]float64

// Validate checks that the matrix is square and that its dimension equals
// the catalog length n. Run once at load time; a mismatch is a fatal
// configuration error, not a per-request condition.
func (m Matrix) Validate(n int) error {
	if len(m) != n {
		return fmt.Errorf("%w: matrix has %d rows, catalog has %d items",
			core.ErrDimensionMismatch, len(m), n)
	}
	for i, row := range m {
		if len(row) != n {
			return fmt.Errorf("%w: row %d has %d columns, want %d",
				core.ErrDimensionMismatch, i, len(row), n)
		}
	}
	return nil
}
