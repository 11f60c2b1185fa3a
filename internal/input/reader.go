// internal/input/reader.go - Input reading from files and stdin
package input

import (
	"bufio"
	"bytes"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/afero"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/valpere/geo_bson/internal"
)

// Reader loads input data from a filesystem or standard input
type Reader struct {
	fs    afero.Fs
	stdin io.Reader
}

// NewReader creates a reader over fs. A nil stdin falls back to os.Stdin.
func NewReader(fs afero.Fs, stdin io.Reader) *Reader {
	if stdin == nil {
		stdin = os.Stdin
	}
	return &Reader{fs: fs, stdin: stdin}
}

// ReadAll returns the contents of path, or of standard input when path is
// empty or "-". Files ending in .gz are decompressed.
func (r *Reader) ReadAll(path string) ([]byte, error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(r.stdin)
		if err != nil {
			return nil, internal.NewError(internal.ErrorCodeInput, "failed to read stdin", err)
		}
		return data, nil
	}

	info, err := r.fs.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, internal.NewError(internal.ErrorCodeNotFound, fmt.Sprintf("input file not found: %s", path), err)
		}
		return nil, internal.NewError(internal.ErrorCodeFileSystem, fmt.Sprintf("cannot access input file: %s", path), err)
	}

	if !info.Mode().IsRegular() {
		return nil, internal.NewError(internal.ErrorCodeValidation, fmt.Sprintf("path is not a regular file: %s", path), nil)
	}

	file, err := r.fs.Open(path)
	if err != nil {
		return nil, internal.NewError(internal.ErrorCodeFileSystem, fmt.Sprintf("failed to open input file: %s", path), err)
	}
	defer file.Close()

	var src io.Reader = file
	if strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(file)
		if err != nil {
			return nil, internal.NewError(internal.ErrorCodeInput, fmt.Sprintf("failed to decompress input file: %s", path), err)
		}
		defer gz.Close()
		src = gz
	}

	data, err := io.ReadAll(src)
	if err != nil {
		return nil, internal.NewError(internal.ErrorCodeFileSystem, fmt.Sprintf("failed to read input file: %s", path), err)
	}
	return data, nil
}

// ParseDocument parses an Extended JSON document
func ParseDocument(data []byte, canonical bool) (bson.D, error) {
	var doc bson.D
	if err := bson.UnmarshalExtJSON(bytes.TrimSpace(data), canonical, &doc); err != nil {
		return nil, internal.NewError(internal.ErrorCodeInput, "invalid extended JSON document", err)
	}
	return doc, nil
}

// Line is one non-blank line of newline-delimited input
type Line struct {
	Number int
	Data   []byte
}

// SplitLines returns the non-blank lines of data with their 1-based numbers
func SplitLines(data []byte) ([]Line, error) {
	var lines []Line
	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	number := 0
	for scanner.Scan() {
		number++
		text := bytes.TrimSpace(scanner.Bytes())
		if len(text) == 0 {
			continue
		}
		copied := make([]byte, len(text))
		copy(copied, text)
		lines = append(lines, Line{Number: number, Data: copied})
	}
	if err := scanner.Err(); err != nil {
		return nil, internal.NewError(internal.ErrorCodeInput, "failed to split input lines", err)
	}
	return lines, nil
}
