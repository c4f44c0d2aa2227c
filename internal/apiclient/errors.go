package apiclient

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/chembot/admin/internal/server/dto"
)

// NetworkError indicates the request never produced an HTTP response.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// APIError is an error response from the server.
type APIError struct {
	Status  int
	ErrCode dto.ErrorCode
	Message string
	Details map[string]any
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s (status %d): %s", e.ErrCode, e.Status, e.Message)
}

// IsNotFound reports whether err is a 404 API error.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound
}

// IsUnauthorized reports whether err is a 401 API error.
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusUnauthorized
}

// IsValidation reports whether err is a validation failure.
func IsValidation(err error) bool {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	switch apiErr.ErrCode {
	case dto.ErrorCodeValidationFailed, dto.ErrorCodeMissingField, dto.ErrorCodeInvalidFormat:
		return true
	}
	return false
}

// IsRateLimited reports whether err is a 429 API error.
func IsRateLimited(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusTooManyRequests
}
