package models

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookupError_Message(t *testing.T) {
	tests := []struct {
		name string
		err  *LookupError
		want string
	}{
		{"not found", ProviderRejected(http.StatusNotFound, nil), "City not found"},
		{"bad key", ProviderRejected(http.StatusUnauthorized, nil), "Invalid API key"},
		{"rate limited", ProviderRejected(http.StatusTooManyRequests, nil), "Too many requests, try again later"},
		{"server error", ProviderRejected(http.StatusBadGateway, nil), "Weather service error (HTTP 502)"},
		{"network", NetworkFailure(errors.New("dial tcp: refused")), "Could not reach the weather service"},
		{"malformed", MalformedPayload(errors.New("missing weather[0]")), "Unexpected response from the weather service"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Message())
		})
	}
}

func TestUserMessage_UnwrapsWrappedErrors(t *testing.T) {
	err := fmt.Errorf("fetch London: %w", ProviderRejected(http.StatusNotFound, nil))
	assert.Equal(t, "City not found", UserMessage(err))
	assert.Equal(t, "Something went wrong", UserMessage(errors.New("opaque")))
}

func TestLookupError_Unwrap(t *testing.T) {
	cause := errors.New("connection reset")
	err := NetworkFailure(cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "network_failure")
	assert.Contains(t, ProviderRejected(404, nil).Error(), "HTTP 404")
}
