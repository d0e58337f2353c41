package teamsdk

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// Error types reported by the admin API.
const (
	ErrorTypeNotFound     = "not_found"
	ErrorTypeInvalidData  = "invalid_data"
	ErrorTypeNotAllowed   = "not_allowed"
	ErrorTypeUnauthorized = "unauthorized"
	ErrorTypeConflict     = "duplicate_error"
	ErrorTypeUnexpected   = "unexpected_state"
)

// APIError is a non-2xx response from the admin API.
type APIError struct {
	StatusCode int    `json:"-"`
	Type       string `json:"type"`
	Message    string `json:"message"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("admin api: %d %s", e.StatusCode, e.Type)
	}
	return fmt.Sprintf("admin api: %d %s: %s", e.StatusCode, e.Type, e.Message)
}

// IsNotFound reports whether err is an APIError for a missing resource.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

// IsUnauthorized reports whether the API rejected the configured token.
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusUnauthorized
}

// parseErrorResponse builds an APIError from the response, using the JSON body
// when it carries a type or message and falling back to the status text.
func parseErrorResponse(resp *http.Response, body []byte) error {
	var errResp ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && (errResp.Type != "" || errResp.Message != "") {
		return &APIError{
			StatusCode: resp.StatusCode,
			Type:       errResp.Type,
			Message:    errResp.Message,
		}
	}

	return &APIError{
		StatusCode: resp.StatusCode,
		Type:       typeForStatus(resp.StatusCode),
		Message:    fmt.Sprintf("HTTP %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode)),
	}
}

func typeForStatus(code int) string {
	switch code {
	case http.StatusNotFound:
		return ErrorTypeNotFound
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return ErrorTypeInvalidData
	case http.StatusUnauthorized:
		return ErrorTypeUnauthorized
	case http.StatusForbidden:
		return ErrorTypeNotAllowed
	case http.StatusConflict:
		return ErrorTypeConflict
	default:
		return ErrorTypeUnexpected
	}
}
