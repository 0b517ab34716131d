package server

import (
	"github.com/silverspace/go-silverspace/core"
	"github.com/silverspace/go-silverspace/monitor"
)

type MoviesResponse struct {
	Titles []string `json:"titles"`
}

type RecommendedMovie struct {
	Title      string  `json:"title"`
	ExternalID string  `json:"external_id"`
	Score      float64 `json:"score"`
	PosterURL  string  `json:"poster_url,omitempty"`
}

type RecommendResponse struct {
	Title           string             `json:"title"`
	Recommendations []RecommendedMovie `json:"recommendations"`
}

type MovieDetailsResponse struct {
	Movie      core.Movie         `json:"movie"`
	Details    *core.MovieDetails `json:"details,omitempty"`
	PosterURL  string             `json:"poster_url,omitempty"`
	TrailerURL string             `json:"trailer_url,omitempty"`
}

type MailRecommendationsRequest struct {
	Email  string   `json:"email" validate:"required,email"`
	Titles []string `json:"titles" validate:"required,min=1,dive,required"`
}

type StatusResponse struct {
	Status string `json:"status"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type MetricsSummaryResponse struct {
	Lookups monitor.Summary `json:"lookups"`
}
