// internal/output/formatter.go - Output formatting implementation
package output

import (
	"encoding/json"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
)

// ExtJSONFormatter formats documents as Extended JSON
type ExtJSONFormatter struct {
	pretty    bool
	canonical bool
}

// NewExtJSONFormatter creates a new Extended JSON formatter. Relaxed mode
// writes plain JSON numbers, canonical mode keeps the BSON numeric type.
func NewExtJSONFormatter(pretty, canonical bool) *ExtJSONFormatter {
	return &ExtJSONFormatter{
		pretty:    pretty,
		canonical: canonical,
	}
}

// Format formats a single document
func (f *ExtJSONFormatter) Format(v interface{}) ([]byte, error) {
	if f.pretty {
		return bson.MarshalExtJSONIndent(v, f.canonical, false, "", "  ")
	}
	return bson.MarshalExtJSON(v, f.canonical, false)
}

// ContentType returns the MIME type of the formatted output
func (f *ExtJSONFormatter) ContentType() string {
	return "application/json"
}

// JSONFormatter formats values with encoding/json
type JSONFormatter struct {
	pretty bool
}

// NewJSONFormatter creates a new JSON formatter
func NewJSONFormatter(pretty bool) *JSONFormatter {
	return &JSONFormatter{pretty: pretty}
}

// Format formats a single value
func (f *JSONFormatter) Format(v interface{}) ([]byte, error) {
	if f.pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}

// ContentType returns the MIME type of the formatted output
func (f *JSONFormatter) ContentType() string {
	return "application/json"
}

// NewFormatter creates the formatter for the configured format
func NewFormatter(config *FormatterConfig) (Formatter, error) {
	switch config.Format {
	case FormatExtJSON:
		return NewExtJSONFormatter(config.Pretty, config.Canonical), nil
	case FormatJSON:
		return NewJSONFormatter(config.Pretty), nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", config.Format)
	}
}
