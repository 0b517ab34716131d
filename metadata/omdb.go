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

const omdbBaseURL = "https://www.omdbapi.com/"

// OMDBClient fetches plot, rating and cast details from the OMDB API.
type OMDBClient struct {
	apiKey  string
	baseURL string
	client  *http.Client
	breaker *gobreaker.CircuitBreaker[*core.MovieDetails]
}

// NewOMDBClient creates an OMDBClient with the given API key.
func NewOMDBClient(apiKey string) *OMDBClient {
	return &OMDBClient{
		apiKey:  apiKey,
		baseURL: omdbBaseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
		breaker: newBreaker[*core.MovieDetails]("omdb"),
	}
}

// omdbResponse mirrors OMDB's capitalized JSON fields.
type omdbResponse struct {
	Title      string `json:"Title"`
	Year       string `json:"Year"`
	Rated      string `json:"Rated"`
	Runtime    string `json:"Runtime"`
	Genre      string `json:"Genre"`
	Director   string `json:"Director"`
	Writer     string `json:"Writer"`
	Actors     string `json:"Actors"`
	Plot       string `json:"Plot"`
	Language   string `json:"Language"`
	Awards     string `json:"Awards"`
	Metascore  string `json:"Metascore"`
	IMDBRating string `json:"imdbRating"`
	BoxOffice  string `json:"BoxOffice"`
	Response   string `json:"Response"`
	Error      string `json:"Error"`
}

// Lookup fetches movie details by exact title.
func (c *OMDBClient) Lookup(ctx context.Context, title string) (*core.MovieDetails, error) {
	return c.breaker.Execute(func() (*core.MovieDetails, error) {
		return c.lookup(ctx, title)
	})
}

func (c *OMDBClient) lookup(ctx context.Context, title string) (*core.MovieDetails, error) {
	params := url.Values{}
	params.Set("apikey", c.apiKey)
	params.Set("t", title)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("omdb request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("omdb API error (status %d)", resp.StatusCode)
	}

	var body omdbResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode omdb response: %w", err)
	}

	// OMDB signals lookup misses with Response=False and HTTP 200.
	if body.Response == "False" {
		return nil, core.NewLookupError("omdb.lookup", title, core.ErrMovieNotFound)
	}

	return &core.MovieDetails{
		Title:      body.Title,
		Year:       body.Year,
		Rated:      body.Rated,
		Runtime:    body.Runtime,
		Genre:      body.Genre,
		Director:   body.Director,
		Writer:     body.Writer,
		Actors:     body.Actors,
		Plot:       body.Plot,
		Language:   body.Language,
		Awards:     body.Awards,
		Metascore:  body.Metascore,
		IMDBRating: body.IMDBRating,
		BoxOffice:  body.BoxOffice,
	}, nil
}
