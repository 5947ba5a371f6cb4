package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// Result is the uniform outcome shape produced by every service call.
// Success is true iff the response decoded cleanly with a 2xx/3xx status;
// Error is set iff Success is false. Status carries the HTTP status when a
// response was received (0 for transport-level failures).
type Result[T any] struct {
	Success bool   `json:"success"`
	Data    T      `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
	Status  int    `json:"status,omitempty"`
}

func success[T any](data T, status int) Result[T] {
	return Result[T]{Success: true, Data: data, Status: status}
}

func failure[T any](msg string, status int) Result[T] {
	return Result[T]{Success: false, Error: msg, Status: status}
}

// errorBody covers the error payload shapes the backend variants produce:
// {"error": ...}, {"message": ...} and FastAPI's {"detail": ...}.
type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Detail  string `json:"detail"`
}

func (e errorBody) text() string {
	switch {
	case e.Error != "":
		return e.Error
	case e.Message != "":
		return e.Message
	default:
		return e.Detail
	}
}

// normalize converts a raw HTTP response into a Result. It never returns an
// error: malformed bodies and non-2xx statuses become failed Results.
func normalize[T any](res *http.Response) Result[T] {
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return failure[T]("Failed to parse response", res.StatusCode)
	}

	if res.StatusCode >= http.StatusOK && res.StatusCode < http.StatusBadRequest {
		var data T
		if err := json.Unmarshal(body, &data); err != nil {
			return failure[T]("Failed to parse response", res.StatusCode)
		}
		return success(data, res.StatusCode)
	}

	var serverErr errorBody
	if err := json.Unmarshal(body, &serverErr); err != nil {
		return failure[T]("Failed to parse response", res.StatusCode)
	}

	msg := serverErr.text()
	if msg == "" {
		msg = fmt.Sprintf("request failed with status %d", res.StatusCode)
	}
	return failure[T](msg, res.StatusCode)
}

// serviceFailure flattens an executor error into a failed Result. The
// underlying error message is preferred; fallback is the entity-specific
// default used when no message is available.
func serviceFailure[T any](err error, fallback string) Result[T] {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return failure[T](apiErr.Message, apiErr.Status)
	}
	if err != nil && err.Error() != "" {
		return failure[T](err.Error(), 0)
	}
	return failure[T](fallback, 0)
}
