package exception

import (
	"errors"
	"fmt"
)

// ErrRecordNotFound custom database error for failure to find record
var ErrRecordNotFound = errors.New("record not found")

// ErrMalformedToken returned when a device token cannot be decoded into a
// stable device id
var ErrMalformedToken = errors.New("malformed device token")

// ErrConnectionFailed returned once every connection attempt for a device
// has been exhausted
var ErrConnectionFailed = errors.New("device connection failed")

// ErrTransientConnect wraps a single failed connection attempt
var ErrTransientConnect = errors.New("connection attempt failed")

// ErrDeviceNotFound returned when no live session exists for a device id
var ErrDeviceNotFound = errors.New("device not found")

// ErrInvalidSourceName returned when a device reports a source name that
// cannot be mapped to a cache directory
var ErrInvalidSourceName = errors.New("invalid source name")

// ConnectionError terminal error for a device whose connection attempts
// have all failed
type ConnectionError struct {
	Key      string
	Attempts int
	Cause    error
}

// NewConnectionError returns a new *ConnectionError
func NewConnectionError(key string, attempts int, cause error) *ConnectionError {
	return &ConnectionError{
		Key:      key,
		Attempts: attempts,
		Cause:    cause,
	}
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf(
		"%s: %s after %d attempt(s): %v",
		ErrConnectionFailed,
		e.Key,
		e.Attempts,
		e.Cause,
	)
}

// Unwrap allows matching against both ErrConnectionFailed and the last
// attempt's cause
func (e *ConnectionError) Unwrap() []error {
	return []error{ErrConnectionFailed, e.Cause}
}
