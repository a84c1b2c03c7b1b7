package repositories

import "fmt"

// FetchError wraps any transport or deserialization failure while reading
// the event catalog. It is terminal to the fetch, never to the session: the
// last-known-good collection stays in place and the caller may retry.
type FetchError struct {
	Err error
}

func NewFetchError(err error) *FetchError {
	return &FetchError{Err: err}
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("failed to fetch events: %v", e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// SubmissionError wraps a backend failure while inserting a guest record.
// Its message is surfaced to the user verbatim so the form can be retried
// as-is.
type SubmissionError struct {
	Err error
}

func NewSubmissionError(err error) *SubmissionError {
	return &SubmissionError{Err: err}
}

func (e *SubmissionError) Error() string {
	return e.Err.Error()
}

func (e *SubmissionError) Unwrap() error {
	return e.Err
}
