// Package metadata holds the HTTP clients for the third-party movie APIs:
// TMDb for posters, OMDB for plot and rating details, and YouTube for
// trailers. The lookup engine never calls these; handlers compose their
// output around engine results, so a slow or failing API can never block
// or corrupt a lookup.
package metadata

import (
	"context"
	"fmt"
	"net/http"
	"time"

	json "github.com/goccy/go-json"
	"github.com/sony/gobreaker/v2"

	"github.com/silverspace/go-silverspace/core"
)

const (
	tmdbBaseURL      = "https://api.themoviedb.org/3"
	tmdbImageBaseURL = "https://image.tmdb.org/t/p/w500"

	// PlaceholderPosterURL is returned when a poster cannot be fetched,
	// so the caller always has something to render.
	PlaceholderPosterURL = "https://via.placeholder.com/500x750?text=Poster+Unavailable"
)

// TMDBClient fetches movie posters from the TMDb API.
type TMDBClient struct {
	apiKey  string
	baseURL string
	client  *http.Client
	breaker *gobreaker.CircuitBreaker[string]
}

// NewTMDBClient creates a TMDBClient with the given v3 API key.
func NewTMDBClient(apiKey string) *TMDBClient {
	return &TMDBClient{
		apiKey:  apiKey,
		baseURL: tmdbBaseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
		breaker: newBreaker[string]("tmdb"),
	}
}

type tmdbMovieResponse struct {
	ID         int    `json:"id"`
	Title      string `json:"title"`
	PosterPath string `json:"poster_path"`
}

// FetchPoster returns the poster image URL for a TMDb movie ID. On any
// failure, including a missing poster path, it returns the placeholder URL
// together with the error so callers can degrade gracefully.
func (c *TMDBClient) FetchPoster(ctx context.Context, externalID string) (string, error) {
	url, err := c.breaker.Execute(func() (string, error) {
		return c.fetchPoster(ctx, externalID)
	})
	if err != nil {
		return PlaceholderPosterURL, err
	}
	return url, nil
}

func (c *TMDBClient) fetchPoster(ctx context.Context, externalID string) (string, error) {
	url := fmt.Sprintf("%s/movie/%s?api_key=%s&language=en-US", c.baseURL, externalID, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("tmdb request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("tmdb API error (status %d)", resp.StatusCode)
	}

	var movie tmdbMovieResponse
	if err := json.NewDecoder(resp.Body).Decode(&movie); err != nil {
		return "", fmt.Errorf("decode tmdb response: %w", err)
	}
	if movie.PosterPath == "" {
		return "", core.ErrPosterNotFound
	}

	return tmdbImageBaseURL + movie.PosterPath, nil
}
