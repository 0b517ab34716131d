package metadata

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	json "github.com/goccy/go-json"
	"github.com/sony/gobreaker/v2"

	"github.com/silverspace/go-silverspace/core"
)

const youtubeSearchURL = "https://www.googleapis.com/youtube/v3/search"

// YouTubeClient searches YouTube for official movie trailers.
type YouTubeClient struct {
	apiKey  string
	baseURL string
	client  *http.Client
	breaker *gobreaker.CircuitBreaker[string]
}

// NewYouTubeClient creates a YouTubeClient with the given Data API key.
func NewYouTubeClient(apiKey string) *YouTubeClient {
	return &YouTubeClient{
		apiKey:  apiKey,
		baseURL: youtubeSearchURL,
		client:  &http.Client{Timeout: 10 * time.Second},
		breaker: newBreaker[string]("youtube"),
	}
}

type youtubeSearchResponse struct {
	Items []struct {
		ID struct {
			VideoID string `json:"videoId"`
		} `json:"id"`
	} `json:"items"`
}

// SearchTrailer returns the watch URL of the top search hit for
// "<title> official trailer". A search with no hits yields
// core.ErrTrailerNotFound.
func (c *YouTubeClient) SearchTrailer(ctx context.Context, title string) (string, error) {
	return c.breaker.Execute(func() (string, error) {
		return c.searchTrailer(ctx, title)
	})
}

func (c *YouTubeClient) searchTrailer(ctx context.Context, title string) (string, error) {
	params := url.Values{}
	params.Set("part", "id")
	params.Set("q", title+" official trailer")
	params.Set("type", "video")
	params.Set("maxResults", "1")
	params.Set("key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("youtube request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("youtube API error (status %d)", resp.StatusCode)
	}

	var body youtubeSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("decode youtube response: %w", err)
	}
	if len(body.Items) == 0 || body.Items[0].ID.VideoID == "" {
		return "", core.ErrTrailerNotFound
	}

	return "https://www.youtube.com/watch?v=" + body.Items[0].ID.VideoID, nil
}
