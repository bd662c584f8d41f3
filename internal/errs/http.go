package errs

import "strings"

// HTTPError is the main custom error type for API responses.
//
// It implements the `error` interface via Error(). Status and Code stay
// server-side (logs, metrics); the client sees Response().
type HTTPError struct {
	// Code is a machine-friendly error code (e.g. "BAD_REQUEST").
	Code string

	// Message is the human-friendly text sent as the `error` field.
	Message string

	// Status is the HTTP status code.
	Status int

	// Missing lists every required field that was absent.
	Missing []string

	// Received echoes the payload as the client sent it, for diagnostics.
	Received map[string]any
}

// Response is the JSON body written for every error.
//
//	{ "ok": false, "error": "...", "missing": [...], "received": {...} }
type Response struct {
	OK       bool     `json:"ok"`
	Error    string   `json:"error"`
	Missing  []string `json:"missing,omitempty"`
	Received any      `json:"received,omitempty"`
}

// Error makes *HTTPError satisfy the built-in `error` interface.
func (e *HTTPError) Error() string {
	return e.Message
}

// WithMessage returns a copy of this HTTPError with Message replaced.
func (e *HTTPError) WithMessage(message string) *HTTPError {
	return &HTTPError{
		Code:     e.Code,
		Message:  message,
		Status:   e.Status,
		Missing:  e.Missing,
		Received: e.Received,
	}
}

// Response converts the error into its wire shape. An empty received
// payload is still echoed as {}.
func (e *HTTPError) Response() Response {
	resp := Response{
		OK:      false,
		Error:   e.Message,
		Missing: e.Missing,
	}

	if e.Received != nil {
		resp.Received = e.Received
	}

	return resp
}

// MakeUpperCaseWithUnderscores converts a string into an UPPER_CASE_WITH_UNDERSCORES format.
//
// Example:
//
//	"Bad Request" -> "BAD_REQUEST"
func MakeUpperCaseWithUnderscores(str string) string {
	return strings.ToUpper(strings.ReplaceAll(str, " ", "_"))
}
