package apierror

import "fmt"

// APIError is a non-2xx response from the CMMS API. Detail carries the
// server's structured error message verbatim when the body had one.
type APIError struct {
	Status int
	Detail string
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return fmt.Sprintf("api returned status %d", e.Status)
}

// TransportError is a request that never produced a response (DNS failure,
// refused connection, timeout).
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("error performing %s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

func FromStatus(status int, detail string) *APIError {
	return &APIError{Status: status, Detail: detail}
}
