// Package response provides standardized HTTP response builders for the
// travel decision API. It centralizes response formatting so all endpoints
// speak the same envelope.
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ErrorDetail contains structured error information.
type ErrorDetail struct {
	// Code is a machine-readable error code
	Code string `json:"code"`

	// Message is a human-readable error message
	Message string `json:"message"`

	// Details contains field-specific error details (for validation errors)
	Details map[string]string `json:"details,omitempty"`
}

// Error codes used in API responses.
const (
	CodeInvalidRequest  = "invalid_request"
	CodeValidationError = "validation_error"
	CodeTimeout         = "timeout"
	CodeInternalError   = "internal_error"
)

// Error messages used in API responses.
const (
	MsgInvalidRequestBody = "Failed to parse request body"
	MsgValidationFailed   = "Request validation failed"
	MsgTimeout            = "Request timed out"
	MsgRequestCancelled   = "Request was cancelled"
	MsgInternalError      = "An unexpected error occurred"
)

// OK writes a 200 OK response with the given data.
func OK(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, data)
}

// NoContent writes a 204 No Content response.
func NoContent(c echo.Context) error {
	return c.NoContent(http.StatusNoContent)
}
