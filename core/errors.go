package core

import (
	"errors"
	"fmt"
)

var (
	ErrMovieNotFound     = errors.New("movie not found")
	ErrDimensionMismatch = errors.New("similarity matrix dimension mismatch")
	ErrEmptyCatalog      = errors.New("catalog is empty")
	ErrInvalidAddress    = errors.New("invalid email address")
	ErrPosterNotFound    = errors.New("poster not found")
	ErrTrailerNotFound   = errors.New("trailer not found")
	ErrInvalidSnapshot   = errors.New("invalid catalog snapshot")
)

// LookupError wraps a failure inside the recommendation path with the
// operation and the query title that triggered it.
type LookupError struct {
	Op    string
	Title string
	Err   error
}

func (e *LookupError) Error() string {
	if e.Title != "" {
		return fmt.Sprintf("%s [title=%q]: %v", e.Op, e.Title, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *LookupError) Unwrap() error {
	return e.Err
}

func NewLookupError(op, title string, err error) *LookupError {
	return &LookupError{Op: op, Title: title, Err: err}
}
