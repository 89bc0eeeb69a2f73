package api

import (
	"errors"
	"fmt"
)

// ErrNotFound reports that a requested record does not exist on the server.
var ErrNotFound = errors.New("not found")

// FetchError wraps a failed or timed-out read call. The caller's previous
// state stays unchanged; no retry is attempted here.
type FetchError struct {
	Op  string // e.g. "providers", "categories"
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s: %v", e.Op, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// SubmissionError wraps a rejected or failed booking submission. The draft
// is discarded, not queued; the user rebuilds it to try again.
type SubmissionError struct {
	Err error
}

func (e *SubmissionError) Error() string {
	return fmt.Sprintf("submit booking: %v", e.Err)
}

func (e *SubmissionError) Unwrap() error { return e.Err }
