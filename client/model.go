package client

import (
	"errors"
	"fmt"
	"net/http"
)

// maxErrBodySize caps the amount of response body read when
// building an error for an unexpected status code. This prevents
// unbounded memory usage when a large response arrives with a
// wrong status.
const maxErrBodySize = 4 << 10 // 4KB

// execFn represents a func to operate on a response.
type execFn func(response *http.Response) error

var (
	// ErrUnexpectedStatusCode is the sentinel error wrapped by [UnexpectedStatusError].
	ErrUnexpectedStatusCode = errors.New("unexpected status code")
	// ErrUnexpectedContentType is the sentinel error wrapped by [ContentTypeError].
	ErrUnexpectedContentType = errors.New("unexpected content type")
)

// UnexpectedStatusError is returned when the HTTP response status code
// does not match the expected value.
type UnexpectedStatusError struct {
	StatusCode int
	Body       string
	Err        error
}

func (e *UnexpectedStatusError) Error() string {
	return fmt.Sprintf("%v: %d, body: %s", e.Err, e.StatusCode, e.Body)
}

func (e *UnexpectedStatusError) Unwrap() error {
	return e.Err
}

// ContentTypeError is returned when the response's declared Content-Type
// does not exactly equal the value expected via WithExpectedContentType.
// Some servers, OBIS among them, answer queries that match no records
// with a different content type, so this error can mean either "the
// server returned something unexpected" or "the query had no result";
// the two causes are not distinguishable from the error alone.
type ContentTypeError struct {
	Expected string
	Actual   string
	Err      error
}

func (e *ContentTypeError) Error() string {
	return fmt.Sprintf("%v: expected %q, got %q", e.Err, e.Expected, e.Actual)
}

func (e *ContentTypeError) Unwrap() error {
	return e.Err
}
