package manifest

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingURL is returned when a file descriptor has no URL.
	ErrMissingURL = errors.New("missing url")

	// ErrNoFilename is returned when no filename was given and none can be
	// derived from the URL path.
	ErrNoFilename = errors.New("cannot derive filename from url")

	// ErrUnexpectedStatus is wrapped by FetchError for non-2xx responses.
	ErrUnexpectedStatus = errors.New("unexpected response status")

	// ErrIncompleteRecord is returned by Assemble for a record with an empty field.
	ErrIncompleteRecord = errors.New("incomplete media record")
)

// FetchError reports a failure to stream a file's content.
type FetchError struct {
	URL        string
	StatusCode int // zero unless the server responded
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("failed to fetch %s: %v %d", redactURL(e.URL), e.Err, e.StatusCode)
	}
	return fmt.Sprintf("failed to fetch %s: %v", redactURL(e.URL), e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// asFetchError wraps err in a FetchError unless it already is one.
func asFetchError(url string, err error) error {
	var fe *FetchError
	if errors.As(err, &fe) {
		return err
	}
	return &FetchError{URL: url, Err: err}
}
