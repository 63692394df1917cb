package zoomapi

import (
	"encoding/json"
	"fmt"
)

// APIError is returned for any non-2xx response from the Zoom API.
type APIError struct {
	StatusCode int
	// Code is Zoom's numeric error code, zero if the body carried none.
	Code    int
	Message string
	Body    json.RawMessage
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("request failed with status code %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("request failed with status code %d", e.StatusCode)
}

// ServerMessage returns the message field of the error body, if any.
func (e *APIError) ServerMessage() string { return e.Message }

// newAPIError extracts Zoom's {"code": ..., "message": ...} error shape.
// Bodies that don't match are kept verbatim.
func newAPIError(status int, body []byte) *APIError {
	apiErr := &APIError{StatusCode: status}
	if len(body) > 0 && json.Valid(body) {
		apiErr.Body = json.RawMessage(body)
		var shape struct {
			Code    int    `json:"code"`
			Message string `json:"message"`
		}
		if err := json.Unmarshal(body, &shape); err == nil {
			apiErr.Code = shape.Code
			apiErr.Message = shape.Message
		}
	}
	return apiErr
}
