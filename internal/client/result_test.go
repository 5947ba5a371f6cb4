package client

import (
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

func TestNormalize_SuccessRoundTrip(t *testing.T) {
	t.Parallel()

	result := normalize[Pet](jsonResponse(http.StatusOK, `{"name":"Buddy","species":"Dog","age":3}`))

	require.True(t, result.Success)
	assert.Empty(t, result.Error)
	assert.Equal(t, http.StatusOK, result.Status)
	assert.Equal(t, "Buddy", result.Data.Name)
	assert.Equal(t, "Dog", result.Data.Species)
	assert.Equal(t, 3, result.Data.Age)
}

func TestNormalize_ErrorMapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		status     int
		body       string
		wantError  string
		wantStatus int
	}{
		{
			name:       "error field",
			status:     http.StatusBadRequest,
			body:       `{"error":"invalid email"}`,
			wantError:  "invalid email",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "message field",
			status:     http.StatusForbidden,
			body:       `{"message":"not allowed"}`,
			wantError:  "not allowed",
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "detail field",
			status:     http.StatusConflict,
			body:       `{"detail":"Email already registered"}`,
			wantError:  "Email already registered",
			wantStatus: http.StatusConflict,
		},
		{
			name:       "generic message when body has no error text",
			status:     http.StatusInternalServerError,
			body:       `{}`,
			wantError:  "request failed with status 500",
			wantStatus: http.StatusInternalServerError,
		},
		{
			name:       "malformed error body",
			status:     http.StatusBadGateway,
			body:       `<html>bad gateway</html>`,
			wantError:  "Failed to parse response",
			wantStatus: http.StatusBadGateway,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := normalize[User](jsonResponse(tt.status, tt.body))

			require.False(t, result.Success)
			assert.Equal(t, tt.wantError, result.Error)
			assert.Equal(t, tt.wantStatus, result.Status)
		})
	}
}

func TestNormalize_MalformedSuccessBody(t *testing.T) {
	t.Parallel()

	result := normalize[Pet](jsonResponse(http.StatusOK, `not json`))

	require.False(t, result.Success)
	assert.Equal(t, "Failed to parse response", result.Error)
	assert.Equal(t, http.StatusOK, result.Status)
}

func TestServiceFailure(t *testing.T) {
	t.Parallel()

	apiErr := &APIError{Status: http.StatusBadGateway, Message: "Bad Gateway"}
	result := serviceFailure[User](apiErr, "Login failed. Please try again.")
	require.False(t, result.Success)
	assert.Equal(t, "Bad Gateway", result.Error)
	assert.Equal(t, http.StatusBadGateway, result.Status)

	result = serviceFailure[User](errors.New("dial tcp: connection refused"), "Login failed. Please try again.")
	require.False(t, result.Success)
	assert.Equal(t, "dial tcp: connection refused", result.Error)
	assert.Equal(t, 0, result.Status)

	result = serviceFailure[User](nil, "Login failed. Please try again.")
	require.False(t, result.Success)
	assert.Equal(t, "Login failed. Please try again.", result.Error)
}
