// pkg/geoconv/errors.go - Codec error types
package geoconv

import (
	"fmt"
	"strings"
)

// ErrorCode classifies codec failures
type ErrorCode string

const (
	CodeMissingField     ErrorCode = "MISSING_FIELD"
	CodeTypeMismatch     ErrorCode = "TYPE_MISMATCH"
	CodeUnsupportedShape ErrorCode = "UNSUPPORTED_SHAPE"
)

// Sentinels for errors.Is. Any *Error with the same code matches.
var (
	ErrMissingField     = &Error{Code: CodeMissingField}
	ErrTypeMismatch     = &Error{Code: CodeTypeMismatch}
	ErrUnsupportedShape = &Error{Code: CodeUnsupportedShape}
)

// Error describes why a value could not be encoded or decoded. Field is the
// dotted path of the offending field, e.g. "center.x" or "points.2.y".
type Error struct {
	Code     ErrorCode
	Field    string
	Expected string
	Actual   string
	Cause    error
}

func (e *Error) Error() string {
	var b strings.Builder
	switch e.Code {
	case CodeMissingField:
		fmt.Fprintf(&b, "missing field %q", e.Field)
	case CodeTypeMismatch:
		fmt.Fprintf(&b, "field %q: expected %s", e.Field, e.Expected)
		if e.Actual != "" {
			fmt.Fprintf(&b, ", got %s", e.Actual)
		}
	case CodeUnsupportedShape:
		b.WriteString("unsupported shape")
		if e.Actual != "" {
			fmt.Fprintf(&b, " %s", e.Actual)
		}
	default:
		b.WriteString(string(e.Code))
	}
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

// Unwrap returns the underlying cause
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is matches errors by code
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

func missingField(field string) *Error {
	return &Error{Code: CodeMissingField, Field: field, Expected: "value"}
}

func typeMismatch(field, expected string, actual interface{}) *Error {
	return &Error{Code: CodeTypeMismatch, Field: field, Expected: expected, Actual: typeName(actual)}
}

func unsupportedShape(shape interface{}) *Error {
	return &Error{Code: CodeUnsupportedShape, Expected: "box, circle, polygon or sphere", Actual: typeName(shape)}
}

// inField prefixes the field path of a codec error with parent
func inField(parent string, err error) error {
	e, ok := err.(*Error)
	if !ok {
		return err
	}
	prefixed := *e
	if prefixed.Field == "" {
		prefixed.Field = parent
	} else {
		prefixed.Field = parent + "." + prefixed.Field
	}
	return &prefixed
}

func typeName(v interface{}) string {
	if v == nil {
		return "nil"
	}
	return fmt.Sprintf("%T", v)
}
