// internal/output/writer.go - Output writing implementation
package output

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// FileWriter writes output to files with optional compression
type FileWriter struct {
	formatter   Formatter
	destination Destination
}

// NewFileWriter creates a new file-based writer on fs
func NewFileWriter(fs afero.Fs, config *WriterConfig, destination string) (*FileWriter, error) {
	formatter, err := newFormatter(config)
	if err != nil {
		return nil, err
	}

	dest, err := newFileDestination(fs, destination, config.Compression)
	if err != nil {
		return nil, fmt.Errorf("failed to create file destination: %w", err)
	}

	return &FileWriter{
		formatter:   formatter,
		destination: dest,
	}, nil
}

// Write writes a single value to the output destination
func (w *FileWriter) Write(v interface{}) error {
	return writeValue(w.formatter, w.destination, v)
}

// WriteBatch writes each value on its own line
func (w *FileWriter) WriteBatch(values []interface{}) error {
	for i, v := range values {
		if err := writeValue(w.formatter, w.destination, v); err != nil {
			return fmt.Errorf("value %d: %w", i, err)
		}
	}
	return nil
}

// Close closes the writer and underlying destination
func (w *FileWriter) Close() error {
	return w.destination.Close()
}

// Name returns the path of the written file
func (w *FileWriter) Name() string {
	return w.destination.Name()
}

// Size returns the number of bytes written before compression
func (w *FileWriter) Size() int64 {
	return w.destination.Size()
}

// StdoutWriter writes output to standard output
type StdoutWriter struct {
	formatter Formatter
	out       io.Writer
}

// NewStdoutWriter creates a new stdout-based writer. A nil out writes to
// os.Stdout.
func NewStdoutWriter(config *WriterConfig, out io.Writer) (*StdoutWriter, error) {
	formatter, err := newFormatter(config)
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = os.Stdout
	}
	return &StdoutWriter{formatter: formatter, out: out}, nil
}

// Write writes a single value to stdout
func (w *StdoutWriter) Write(v interface{}) error {
	if err := writeValue(w.formatter, w.out, v); err != nil {
		return fmt.Errorf("write to stdout failed: %w", err)
	}
	return nil
}

// WriteBatch writes each value on its own line
func (w *StdoutWriter) WriteBatch(values []interface{}) error {
	for i, v := range values {
		if err := w.Write(v); err != nil {
			return fmt.Errorf("value %d: %w", i, err)
		}
	}
	return nil
}

// Close is a no-op for stdout writer
func (w *StdoutWriter) Close() error {
	return nil
}

func newFormatter(config *WriterConfig) (Formatter, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	formatter, err := NewFormatter(&FormatterConfig{
		Format:    config.Format,
		Pretty:    config.Pretty,
		Canonical: config.Canonical,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create formatter: %w", err)
	}
	return formatter, nil
}

func writeValue(formatter Formatter, w io.Writer, v interface{}) error {
	data, err := formatter.Format(v)
	if err != nil {
		return fmt.Errorf("formatting failed: %w", err)
	}
	data = append(data, '\n')
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write failed: %w", err)
	}
	return nil
}

// fileDestination implements the Destination interface for file output
type fileDestination struct {
	file       afero.File
	writer     io.WriteCloser
	compressed bool
	name       string
	size       int64
}

// newFileDestination creates a new file destination with optional compression
func newFileDestination(fs afero.Fs, path string, compression bool) (*fileDestination, error) {
	if compression && !strings.HasSuffix(path, ".gz") {
		path += ".gz"
	}

	if err := fs.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	file, err := fs.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create file: %w", err)
	}

	var writer io.WriteCloser = file
	if compression {
		writer = gzip.NewWriter(file)
	}

	return &fileDestination{
		file:       file,
		writer:     writer,
		compressed: compression,
		name:       path,
	}, nil
}

// Write implements io.Writer
func (d *fileDestination) Write(p []byte) (n int, err error) {
	n, err = d.writer.Write(p)
	d.size += int64(n)
	return n, err
}

// Close implements io.Closer
func (d *fileDestination) Close() error {
	if d.compressed {
		if err := d.writer.Close(); err != nil {
			d.file.Close()
			return err
		}
	}
	return d.file.Close()
}

// Name returns the destination file path
func (d *fileDestination) Name() string {
	return d.name
}

// Size returns the number of bytes written before compression
func (d *fileDestination) Size() int64 {
	return d.size
}

// WriteAndClose writes values one per line and closes w. A failed Close is
// returned even when every write succeeded; gzip output is only complete
// once closed.
func WriteAndClose(w Writer, values ...interface{}) (err error) {
	defer func() {
		if cerr := w.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close output: %w", cerr)
		}
	}()

	if err := w.WriteBatch(values); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

// NewWriter creates the appropriate writer based on configuration. An empty
// destination or "-" selects stdout.
func NewWriter(fs afero.Fs, config *WriterConfig, destination string, stdout io.Writer) (Writer, error) {
	if destination == "" || destination == "-" {
		return NewStdoutWriter(config, stdout)
	}
	return NewFileWriter(fs, config, destination)
}
