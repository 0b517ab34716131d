// Package core holds the domain types shared across the recommendation
// service: catalog records, lookup results and the error taxonomy.
package core

// Movie is a single catalog record. Index is the movie's position in the
// loaded catalog and stays stable for the lifetime of the process; it is
// the row/column key into the similarity matrix. ExternalID identifies the
// movie in third-party metadata APIs.
type Movie struct {
	Index      int    `json:"index"`
	ExternalID string `json:"external_id"`
	Title      string `json:"title"`
}

// Recommendation is one entry of a Top-K lookup result.
type Recommendation struct {
	Title      string  `json:"title"`
	ExternalID string  `json:"external_id"`
	Score      float64 `json:"score"`
}

// MovieDetails aggregates the metadata fetched from external APIs for the
// detail view. All fields are best-effort strings as returned by OMDB.
type MovieDetails struct {
	Title      string `json:"title"`
	Year       string `json:"year"`
	Rated      string `json:"rated"`
	Runtime    string `json:"runtime"`
	Genre      string `json:"genre"`
	Director   string `json:"director"`
	Writer     string `json:"writer"`
	Actors     string `json:"actors"`
	Plot       string `json:"plot"`
	Language   string `json:"language"`
	Awards     string `json:"awards"`
	Metascore  string `json:"metascore"`
	IMDBRating string `json:"imdb_rating"`
	BoxOffice  string `json:"box_office"`
}

// BugReport is a user-submitted bug report forwarded to the support inbox.
type BugReport struct {
	FullName    string       `json:"full_name"`
	Email       string       `json:"email"`
	Page        string       `json:"page"`
	BugType     string       `json:"bug_type"`
	Description string       `json:"description"`
	Attachments []Attachment `json:"-"`
}

// Attachment is a file included with a bug report.
type Attachment struct {
	Filename string
	Data     []byte
}
