package server

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	json "github.com/goccy/go-json"

	"github.com/silverspace/go-silverspace/core"
	"github.com/silverspace/go-silverspace/mail"
	"github.com/silverspace/go-silverspace/monitor"
)

// maxBugReportBytes caps a bug report form, attachments included.
const maxBugReportBytes = 32 << 20

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("OK"))
}

func (s *Server) handleMovies(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, MoviesResponse{Titles: s.index.Catalog().Titles()})
}

func (s *Server) handleRecommend(w http.ResponseWriter, r *http.Request) {
	title := r.URL.Query().Get("title")
	if title == "" {
		writeError(w, http.StatusBadRequest, "title query parameter is required")
		return
	}

	start := time.Now()
	recs, err := s.index.Recommend(title)
	s.collector.Record(monitor.LookupMetrics{
		Title:    title,
		Found:    err == nil,
		Results:  len(recs),
		Duration: time.Since(start),
	})
	if err != nil {
		if errors.Is(err, core.ErrMovieNotFound) {
			writeError(w, http.StatusNotFound, "no movie titled "+strconv.Quote(title))
			return
		}
		s.logger.Error().Err(err).Str("title", title).Msg("lookup failed")
		writeError(w, http.StatusInternalServerError, "lookup failed")
		return
	}

	withPosters, _ := strconv.ParseBool(r.URL.Query().Get("posters"))

	resp := RecommendResponse{
		Title:           title,
		Recommendations: make([]RecommendedMovie, 0, len(recs)),
	}
	for _, rec := range recs {
		movie := RecommendedMovie{
			Title:      rec.Title,
			ExternalID: rec.ExternalID,
			Score:      rec.Score,
		}
		if withPosters && s.posters != nil {
			// Poster failures degrade to the placeholder URL the
			// fetcher returns; they never fail the lookup.
			url, err := s.posters.FetchPoster(r.Context(), rec.ExternalID)
			if err != nil {
				s.logger.Warn().Err(err).Str("external_id", rec.ExternalID).
					Msg("poster fetch failed")
			}
			movie.PosterURL = url
		}
		resp.Recommendations = append(resp.Recommendations, movie)
	}

	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleMovieDetails(w http.ResponseWriter, r *http.Request) {
	title := r.PathValue("title")

	movie, ok := s.index.Catalog().FindByTitle(title)
	if !ok {
		writeError(w, http.StatusNotFound, "no movie titled "+strconv.Quote(title))
		return
	}

	resp := MovieDetailsResponse{Movie: movie}

	if s.details != nil {
		details, err := s.details.Lookup(r.Context(), title)
		if err != nil {
			s.logger.Warn().Err(err).Str("title", title).Msg("details lookup failed")
		} else {
			resp.Details = details
		}
	}
	if s.posters != nil {
		url, err := s.posters.FetchPoster(r.Context(), movie.ExternalID)
		if err != nil {
			s.logger.Warn().Err(err).Str("title", title).Msg("poster fetch failed")
		}
		resp.PosterURL = url
	}
	if s.trailers != nil {
		url, err := s.trailers.SearchTrailer(r.Context(), title)
		if err != nil {
			s.logger.Warn().Err(err).Str("title", title).Msg("trailer search failed")
		} else {
			resp.TrailerURL = url
		}
	}

	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleMailRecommendations(w http.ResponseWriter, r *http.Request) {
	if s.mailer == nil {
		writeError(w, http.StatusServiceUnavailable, "outbound mail is not configured")
		return
	}

	var req MailRecommendationsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := s.validate.Struct(&req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := s.mailer.SendRecommendations(r.Context(), req.Email, req.Titles); err != nil {
		if errors.Is(err, core.ErrInvalidAddress) {
			writeError(w, http.StatusBadRequest, "invalid email address")
			return
		}
		s.logger.Error().Err(err).Msg("recommendations mail failed")
		writeError(w, http.StatusBadGateway, "mail delivery failed")
		return
	}

	writeJSON(w, http.StatusOK, StatusResponse{Status: "sent"})
}

func (s *Server) handleBugReport(w http.ResponseWriter, r *http.Request) {
	if s.mailer == nil {
		writeError(w, http.StatusServiceUnavailable, "outbound mail is not configured")
		return
	}

	if err := r.ParseMultipartForm(maxBugReportBytes); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	report := core.BugReport{
		FullName:    r.FormValue("full_name"),
		Email:       r.FormValue("email"),
		Page:        r.FormValue("page"),
		BugType:     r.FormValue("bug_type"),
		Description: r.FormValue("description"),
	}
	if report.Description == "" {
		writeError(w, http.StatusBadRequest, "description is required")
		return
	}
	if err := mail.ValidateAddress(report.Email); err != nil {
		writeError(w, http.StatusBadRequest, "invalid email address")
		return
	}

	if r.MultipartForm != nil {
		for _, fh := range r.MultipartForm.File["attachments"] {
			f, err := fh.Open()
			if err != nil {
				writeError(w, http.StatusBadRequest, "unreadable attachment "+strconv.Quote(fh.Filename))
				return
			}
			data, err := io.ReadAll(f)
			f.Close()
			if err != nil {
				writeError(w, http.StatusBadRequest, "unreadable attachment "+strconv.Quote(fh.Filename))
				return
			}
			report.Attachments = append(report.Attachments, core.Attachment{
				Filename: fh.Filename,
				Data:     data,
			})
		}
	}

	if err := s.mailer.SendBugReport(r.Context(), report); err != nil {
		s.logger.Error().Err(err).Msg("bug report mail failed")
		writeError(w, http.StatusBadGateway, "mail delivery failed")
		return
	}

	writeJSON(w, http.StatusOK, StatusResponse{Status: "sent"})
}

func (s *Server) handleMetricsSummary(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, MetricsSummaryResponse{Lookups: s.summary.Flush()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Error: msg})
}
