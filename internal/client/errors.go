package client

import "fmt"

// APIError describes a failed exchange with the PetLoves API.
// Status 0 means no HTTP response was received (network error, timeout).
type APIError struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

func (e *APIError) Error() string {
	return e.Message
}

// newConnectionError wraps a transport-level failure (connection refused,
// timeout, canceled context)
func newConnectionError(err error) *APIError {
	return &APIError{
		Status:  0,
		Message: fmt.Sprintf("network error: %v", err),
	}
}

// newInternalError wraps a client-side failure, with an explanation of what
// was being done when the error occurred
func newInternalError(err error, while string) *APIError {
	return &APIError{
		Status:  0,
		Message: fmt.Sprintf("internal error: %v while %s", err, while),
	}
}
