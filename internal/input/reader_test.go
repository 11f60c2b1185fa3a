// internal/input/reader_test.go - Unit tests for input reading
package input

import (
	"bytes"
	"compress/gzip"
	"errors"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/valpere/geo_bson/internal"
)

func TestReadAll(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/data/point.json", []byte(`{"x":1,"y":2}`), 0644))

	var compressed bytes.Buffer
	gz := gzip.NewWriter(&compressed)
	_, err := gz.Write([]byte(`{"x":3,"y":4}`))
	require.NoError(t, err)
	require.NoError(t, gz.Close())
	require.NoError(t, afero.WriteFile(fs, "/data/point.json.gz", compressed.Bytes(), 0644))

	reader := NewReader(fs, strings.NewReader(`{"x":5,"y":6}`))

	data, err := reader.ReadAll("/data/point.json")
	require.NoError(t, err)
	assert.Equal(t, `{"x":1,"y":2}`, string(data))

	data, err = reader.ReadAll("/data/point.json.gz")
	require.NoError(t, err)
	assert.Equal(t, `{"x":3,"y":4}`, string(data))

	data, err = reader.ReadAll("-")
	require.NoError(t, err)
	assert.Equal(t, `{"x":5,"y":6}`, string(data))
}

func TestReadAllErrors(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/data", 0755))
	reader := NewReader(fs, nil)

	_, err := reader.ReadAll("/missing.json")
	var appErr *internal.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, internal.ErrorCodeNotFound, appErr.Code)

	_, err = reader.ReadAll("/data")
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, internal.ErrorCodeValidation, appErr.Code)
}

func TestParseDocument(t *testing.T) {
	doc, err := ParseDocument([]byte(" {\"x\": 1, \"y\": {\"$numberLong\": \"2\"}}\n"), false)
	require.NoError(t, err)
	assert.Equal(t, bson.D{{Key: "x", Value: int32(1)}, {Key: "y", Value: int64(2)}}, doc)

	_, err = ParseDocument([]byte(`not json`), false)
	assert.Error(t, err)
}

func TestSplitLines(t *testing.T) {
	lines, err := SplitLines([]byte("{\"a\":1}\n\n  \n{\"b\":2}\n"))
	require.NoError(t, err)
	require.Len(t, lines, 2)
	assert.Equal(t, 1, lines[0].Number)
	assert.Equal(t, 4, lines[1].Number)
	assert.Equal(t, `{"b":2}`, string(lines[1].Data))
}
