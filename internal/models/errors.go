package models

import (
	"errors"
	"fmt"
	"net/http"
)

// GenericErrorMessage is shown for failures outside the known taxonomy.
const GenericErrorMessage = "Something went wrong"

// ErrEmptyQuery is returned for a blank city. Callers ignore it silently.
var ErrEmptyQuery = errors.New("empty query")

type ErrorKind string

const (
	KindProviderRejected ErrorKind = "provider_rejected"
	KindNetworkFailure   ErrorKind = "network_failure"
	KindMalformedPayload ErrorKind = "malformed_payload"
)

// LookupError classifies a failed weather lookup.
type LookupError struct {
	Kind ErrorKind
	// StatusCode is set for KindProviderRejected.
	StatusCode int
	Err        error
}

func (e *LookupError) Error() string {
	switch {
	case e.Kind == KindProviderRejected && e.Err != nil:
		return fmt.Sprintf("%s (HTTP %d): %v", e.Kind, e.StatusCode, e.Err)
	case e.Kind == KindProviderRejected:
		return fmt.Sprintf("%s (HTTP %d)", e.Kind, e.StatusCode)
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	default:
		return string(e.Kind)
	}
}

func (e *LookupError) Unwrap() error {
	return e.Err
}

// Message is the text shown to the user in the error banner.
func (e *LookupError) Message() string {
	switch e.Kind {
	case KindProviderRejected:
		switch e.StatusCode {
		case http.StatusNotFound:
			return "City not found"
		case http.StatusUnauthorized:
			return "Invalid API key"
		case http.StatusTooManyRequests:
			return "Too many requests, try again later"
		default:
			return fmt.Sprintf("Weather service error (HTTP %d)", e.StatusCode)
		}
	case KindNetworkFailure:
		return "Could not reach the weather service"
	case KindMalformedPayload:
		return "Unexpected response from the weather service"
	default:
		return GenericErrorMessage
	}
}

func ProviderRejected(statusCode int, err error) *LookupError {
	return &LookupError{Kind: KindProviderRejected, StatusCode: statusCode, Err: err}
}

func NetworkFailure(err error) *LookupError {
	return &LookupError{Kind: KindNetworkFailure, Err: err}
}

func MalformedPayload(err error) *LookupError {
	return &LookupError{Kind: KindMalformedPayload, Err: err}
}

// UserMessage folds any error into a single user-visible string.
func UserMessage(err error) string {
	var le *LookupError
	if errors.As(err, &le) {
		return le.Message()
	}

	return GenericErrorMessage
}
