package errs

import (
	"net/http"
)

// Client-facing messages. The lead form's frontend matches on these.
const (
	MsgMethodNotAllowed = "Method Not Allowed. Use POST."
	MsgInvalidJSON      = "Invalid JSON body"
	MsgInvalidFieldType = "Invalid field type"
	MsgMissingFields    = "Missing required fields"
	MsgRouteNotFound    = "Route not found"
)

// Machine codes used in logs and metrics.
const (
	CodeInvalidJSON      = "INVALID_JSON"
	CodeInvalidFieldType = "INVALID_FIELD_TYPE"
	CodeMissingFields    = "MISSING_FIELDS"
)

// NewBadRequestError creates a 400 Bad Request HTTPError.
//
// If code is nil it defaults to "BAD_REQUEST".
func NewBadRequestError(message string, code *string) *HTTPError {
	formattedCode := MakeUpperCaseWithUnderscores(http.StatusText(http.StatusBadRequest))
	if code != nil {
		formattedCode = *code
	}

	return &HTTPError{
		Code:    formattedCode,
		Message: message,
		Status:  http.StatusBadRequest,
	}
}

// NewInvalidJSONError is returned when the body is not a JSON object.
func NewInvalidJSONError() *HTTPError {
	code := CodeInvalidJSON
	return NewBadRequestError(MsgInvalidJSON, &code)
}

// NewInvalidFieldTypeError is returned when the body parsed but a known field
// holds a value that cannot become its type, e.g. "price": "abc".
func NewInvalidFieldTypeError() *HTTPError {
	code := CodeInvalidFieldType
	return NewBadRequestError(MsgInvalidFieldType, &code)
}

// NewMissingFieldsError reports every missing required field together,
// echoing the received payload so the form author can see what arrived.
func NewMissingFieldsError(missing []string, received map[string]any) *HTTPError {
	code := CodeMissingFields
	err := NewBadRequestError(MsgMissingFields, &code)
	err.Missing = missing
	err.Received = received

	return err
}

// NewNotFoundError creates a 404 Not Found HTTPError.
func NewNotFoundError(message string) *HTTPError {
	return &HTTPError{
		Code:    MakeUpperCaseWithUnderscores(http.StatusText(http.StatusNotFound)),
		Message: message,
		Status:  http.StatusNotFound,
	}
}

// NewMethodNotAllowedError creates the 405 returned for anything but POST
// on the lead endpoint.
func NewMethodNotAllowedError() *HTTPError {
	return &HTTPError{
		Code:    MakeUpperCaseWithUnderscores(http.StatusText(http.StatusMethodNotAllowed)),
		Message: MsgMethodNotAllowed,
		Status:  http.StatusMethodNotAllowed,
	}
}

// NewInternalServerError creates a 500 Internal Server Error HTTPError.
//
// The message is the generic status text, never the real internal error.
func NewInternalServerError() *HTTPError {
	return &HTTPError{
		Code:    MakeUpperCaseWithUnderscores(http.StatusText(http.StatusInternalServerError)),
		Message: http.StatusText(http.StatusInternalServerError),
		Status:  http.StatusInternalServerError,
	}
}
