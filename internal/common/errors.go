// Package common provides shared utilities and types used across the application.
package common

import "errors"

// Common application errors.
var (
	// Assistant errors.
	ErrMissingAPIKey     = errors.New("assistant API key not configured")
	ErrEmptyResponse     = errors.New("empty response from assistant")
	ErrMalformedResponse = errors.New("malformed assistant response")
	ErrSchemaViolation   = errors.New("assistant response violates schema")
	ErrClassifyTimeout   = errors.New("assistant call timed out")

	// Storage errors.
	ErrNotFound = errors.New("not found")

	// Configuration errors.
	ErrInvalidConfig = errors.New("invalid configuration")
)
