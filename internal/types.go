// internal/types.go - Common types for internal packages
package internal

import (
	"time"

	"github.com/valpere/geo_bson/pkg/geo"
)

// ValueKind names the kind of value a command converts
type ValueKind string

const (
	KindPoint   ValueKind = "point"
	KindBox     ValueKind = ValueKind(geo.KindBox)
	KindCircle  ValueKind = ValueKind(geo.KindCircle)
	KindSphere  ValueKind = ValueKind(geo.KindSphere)
	KindPolygon ValueKind = ValueKind(geo.KindPolygon)
	KindGeoJSON ValueKind = "geojson"
)

// ValueKinds lists every supported kind in display order
var ValueKinds = []ValueKind{KindPoint, KindBox, KindCircle, KindSphere, KindPolygon, KindGeoJSON}

// IsValid checks if the kind is supported
func (k ValueKind) IsValid() bool {
	for _, kind := range ValueKinds {
		if k == kind {
			return true
		}
	}
	return false
}

// ProcessingStats represents metrics for conversion runs
type ProcessingStats struct {
	Total      int64
	Converted  int64
	Failed     int64
	StartTime  time.Time
	EndTime    time.Time
	Throughput float64
}

// Error represents application-specific errors
type Error struct {
	Code    string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

// Unwrap returns the underlying cause
func (e *Error) Unwrap() error {
	return e.Cause
}

// NewError creates a new application error
func NewError(code, message string, cause error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// ErrorCode constants for common error types
const (
	ErrorCodeInput      = "INPUT_ERROR"
	ErrorCodeConversion = "CONVERSION_ERROR"
	ErrorCodeValidation = "VALIDATION_ERROR"
	ErrorCodeConfig     = "CONFIG_ERROR"
	ErrorCodeNotFound   = "NOT_FOUND"
	ErrorCodeFileSystem = "FILESYSTEM_ERROR"
)
