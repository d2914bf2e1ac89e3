package models

import "errors"

// Domain error taxonomy. Every failure leaving the services layer wraps exactly
// one of these sentinels; no raw storage-engine error crosses that boundary.
var (
	// ErrBadParameters reports malformed or out-of-range input
	ErrBadParameters = errors.New("bad parameters")
	// ErrNotFound reports that a referenced entity or entity pair does not exist
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists reports a violated uniqueness constraint
	ErrAlreadyExists = errors.New("already exists")
	// ErrInternal reports an unexpected store-level failure, including a
	// singleton mutation that touched more than one row
	ErrInternal = errors.New("internal error")
)

// APIError represents a standardized error response for the API
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error code constants
const (
	ErrCodeBadRequest     = "BAD_REQUEST"
	ErrCodeUnauthorized   = "UNAUTHORIZED"
	ErrCodeNotFound       = "NOT_FOUND"
	ErrCodeConflict       = "CONFLICT"
	ErrCodeInternalServer = "INTERNAL_SERVER_ERROR"
)

// NewAPIError creates a new API error with the given code and message
func NewAPIError(code, message string) APIError {
	return APIError{Code: code, Message: message}
}
