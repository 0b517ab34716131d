package catalog

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// maxSnapshotSize caps blob downloads; similarity matrices for a few
// thousand titles stay well under this.
const maxSnapshotSize = 1 << 30

// BlobLoader downloads catalog snapshots from a blob store over HTTP. The
// original deployment pulled its pickled dumps from a blob container; here
// the snapshot is served as a JSON object behind an optionally
// authenticated GET.
type BlobLoader struct {
	client *http.Client
	token  string
}

// NewBlobLoader creates a BlobLoader. token, when non-empty, is sent as a
// bearer token.
func NewBlobLoader(token string) *BlobLoader {
	return &BlobLoader{
		client: &http.Client{Timeout: 60 * time.Second},
		token:  token,
	}
}

// Load fetches and decodes the snapshot at url.
func (l *BlobLoader) Load(ctx context.Context, url string) (*Catalog, [][]float64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("create request: %w", err)
	}
	if l.token != "" {
		req.Header.Set("Authorization", "Bearer "+l.token)
	}

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, nil, fmt.Errorf("fetch snapshot: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, nil, fmt.Errorf("fetch snapshot: status %d", resp.StatusCode)
	}

	return DecodeSnapshot(io.LimitReader(resp.Body, maxSnapshotSize))
}
