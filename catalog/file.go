package catalog

import (
	"fmt"
	"os"
)

// LoadFile reads a catalog snapshot from a local JSON file.
func LoadFile(path string) (*Catalog, [][]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open snapshot: %w", err)
	}
	defer f.Close()

	return DecodeSnapshot(f)
}

// SaveFile writes a catalog snapshot to a local JSON file.
func SaveFile(path string, c *Catalog, similarity [][]float64) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create snapshot: %w", err)
	}
	defer f.Close()

	return EncodeSnapshot(f, c, similarity)
}
