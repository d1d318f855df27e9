package httpclient

import (
	"encoding/json"
	"fmt"
)

// PayloadError reports a POST/PUT body that is not valid JSON. It is
// raised before any network I/O happens.
type PayloadError struct {
	Body string
}

func (e *PayloadError) Error() string {
	return "invalid JSON data provided"
}

// TransportError wraps any network-level failure (DNS, TLS, connection
// refusal, timeout) with the method and target URL of the attempt.
type TransportError struct {
	URL    string
	Method string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("failed to send %s request to %s: %v", e.Method, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// BodyError reports a response body that could not be read.
type BodyError struct {
	URL string
	Err error
}

func (e *BodyError) Error() string {
	return fmt.Sprintf("failed to read response body from %s: %v", e.URL, e.Err)
}

func (e *BodyError) Unwrap() error {
	return e.Err
}

// APIError is a generic error envelope some APIs return in their
// response bodies. Nothing here populates it; it exists for callers
// that decode error payloads themselves.
type APIError struct {
	Code    string          `json:"code,omitempty"`
	Message string          `json:"message"`
	Details json.RawMessage `json:"details,omitempty"`
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return e.Message
}
