package apiclient

import (
	"errors"
	"fmt"
	"net/http"
)

// FetchError reports a transport failure or a non-2xx response. StatusCode
// is 0 when no response was received.
type FetchError struct {
	StatusCode int
	Message    string
	err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("fetch failed: %s", e.Message)
	}
	return fmt.Sprintf("fetch failed: %s (%d)", e.Message, e.StatusCode)
}

func (e *FetchError) Unwrap() error { return e.err }

func statusError(code int) *FetchError {
	return &FetchError{
		StatusCode: code,
		Message:    http.StatusText(code),
		err:        ErrStatus,
	}
}

func transportError(err error) *FetchError {
	return &FetchError{Message: err.Error(), err: err}
}

// ValidationError reports a response that does not match the item contract.
// Index is the position of the offending element in the response array, or
// -1 when the body as a whole could not be decoded.
type ValidationError struct {
	Index int
	Err   error
}

func (e *ValidationError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("invalid response: %v", e.Err)
	}
	return fmt.Sprintf("invalid item at index %d: %v", e.Index, e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// IsContractError reports whether err was caused by a malformed response
// rather than a transient failure.
func IsContractError(err error) bool {
	var verr *ValidationError
	return errors.As(err, &verr)
}
