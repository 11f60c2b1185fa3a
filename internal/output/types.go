// internal/output/types.go - Output handling types
package output

import (
	"fmt"
	"io"
)

// Format represents the serialization used for output
type Format string

const (
	// FormatExtJSON writes documents as MongoDB Extended JSON
	FormatExtJSON Format = "extjson"
	// FormatJSON writes values as plain JSON
	FormatJSON Format = "json"
)

// Writer defines the interface for writing converted values to a destination
type Writer interface {
	Write(v interface{}) error
	WriteBatch(values []interface{}) error
	Close() error
}

// Formatter defines the interface for serializing converted values
type Formatter interface {
	Format(v interface{}) ([]byte, error)
	ContentType() string
}

// Destination represents an output destination (file, stdout, etc.)
type Destination interface {
	io.WriteCloser
	Name() string
	Size() int64
}

// WriterConfig contains configuration for creating writers
type WriterConfig struct {
	Format      Format
	Pretty      bool
	Canonical   bool
	Compression bool
}

// FormatterConfig contains configuration for creating formatters
type FormatterConfig struct {
	Format    Format
	Pretty    bool
	Canonical bool
}

// Validate validates the writer configuration
func (c *WriterConfig) Validate() error {
	if !c.Format.IsValid() {
		return fmt.Errorf("invalid output format: %s", c.Format)
	}
	return nil
}

// String returns a string representation of the format
func (f Format) String() string {
	return string(f)
}

// IsValid checks if the format is supported
func (f Format) IsValid() bool {
	switch f {
	case FormatExtJSON, FormatJSON:
		return true
	default:
		return false
	}
}
