package pointio

import (
	"bytes"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/hupe1980/kmeans/codec"
	"github.com/hupe1980/kmeans/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var square = model.PointSet{{0, 0}, {0, 1}, {10, 0}, {10, 1}}

const squareCSV = "x,y\n0,0\n0,1\n\n# comment\n10, 0\n10,1\n"

func TestReadCSV(t *testing.T) {
	points, err := ReadCSV(strings.NewReader(squareCSV))
	require.NoError(t, err)
	assert.Equal(t, square, points)
}

func TestReadCSV_NoHeader(t *testing.T) {
	points, err := ReadCSV(strings.NewReader("1.5 \n-2e1\n"))
	require.NoError(t, err)
	assert.Equal(t, model.PointSet{{1.5}, {-20}}, points)
}

func TestReadCSV_Errors(t *testing.T) {
	_, err := ReadCSV(strings.NewReader("1,2\n3,x\n"))
	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, 2, perr.Line)
	assert.Equal(t, 2, perr.Column)
	assert.ErrorIs(t, err, strconv.ErrSyntax)

	_, err = ReadCSV(strings.NewReader("1,2\n3\n"))
	assert.Error(t, err)

	// A first row with a numeric field is data, not a header.
	_, err = ReadCSV(strings.NewReader("1,x\n2,3\n"))
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, 1, perr.Line)
	assert.Equal(t, 2, perr.Column)
}

func TestReadJSON(t *testing.T) {
	for _, name := range codec.Names() {
		c, _ := codec.ByName(name)
		t.Run(name, func(t *testing.T) {
			points, err := ReadJSON(strings.NewReader(`[[0,0],[0,1],[10,0],[10,1]]`), c)
			require.NoError(t, err)
			assert.Equal(t, square, points)

			_, err = ReadJSON(strings.NewReader(`{"x":1}`), c)
			assert.Error(t, err)
		})
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"points.csv", FormatCSV},
		{"points.TXT", FormatCSV},
		{"points.json", FormatJSON},
		{"points.csv.gz", FormatCSV},
		{"points.json.zst", FormatJSON},
		{"dir/points.csv.lz4", FormatCSV},
	}
	for _, tt := range tests {
		got, err := FormatFromPath(tt.path)
		require.NoError(t, err, tt.path)
		assert.Equal(t, tt.want, got, tt.path)
	}

	_, err := FormatFromPath("points.parquet")
	assert.ErrorIs(t, err, ErrUnknownFormat)

	f, err := ParseFormat(" JSON ")
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, f)
	f, err = ParseFormat("auto")
	require.NoError(t, err)
	assert.Equal(t, FormatAuto, f)
	_, err = ParseFormat("xml")
	assert.ErrorIs(t, err, ErrUnknownFormat)

	_, err = Read(strings.NewReader(""), FormatAuto, nil)
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestCompression_RoundTrip(t *testing.T) {
	payload := []byte(strings.Repeat(squareCSV, 50))

	for _, c := range []Compression{CompressionNone, CompressionGzip, CompressionZstd, CompressionLZ4} {
		t.Run(c.String(), func(t *testing.T) {
			var buf bytes.Buffer
			w, err := NewWriter(&buf, c)
			require.NoError(t, err)
			_, err = w.Write(payload)
			require.NoError(t, err)
			require.NoError(t, w.Close())

			r, err := NewReader(&buf, c)
			require.NoError(t, err)
			defer r.Close()

			var out bytes.Buffer
			_, err = out.ReadFrom(r)
			require.NoError(t, err)
			assert.Equal(t, payload, out.Bytes())
		})
	}
}

func TestCompressionFromPath(t *testing.T) {
	assert.Equal(t, CompressionGzip, CompressionFromPath("a.csv.GZ"))
	assert.Equal(t, CompressionZstd, CompressionFromPath("a.csv.zst"))
	assert.Equal(t, CompressionLZ4, CompressionFromPath("a.json.lz4"))
	assert.Equal(t, CompressionNone, CompressionFromPath("a.csv"))
	assert.Equal(t, "Compression(9)", Compression(9).String())

	_, err := NewReader(strings.NewReader(""), Compression(9))
	assert.Error(t, err)
}

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	f, err := os.Create(path)
	require.NoError(t, err)
	w, err := NewWriter(f, CompressionFromPath(path))
	require.NoError(t, err)
	_, err = w.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	require.NoError(t, f.Close())
	return path
}

func TestReadFile(t *testing.T) {
	files := map[string]string{
		"square.csv":      squareCSV,
		"square.csv.gz":   squareCSV,
		"square.csv.zst":  squareCSV,
		"square.json.lz4": `[[0,0],[0,1],[10,0],[10,1]]`,
	}
	for name, content := range files {
		t.Run(name, func(t *testing.T) {
			path := writeFile(t, name, []byte(content))
			points, err := ReadFile(path, FormatAuto, nil)
			require.NoError(t, err)
			assert.Equal(t, square, points)
		})
	}

	// Explicit format overrides the extension.
	path := writeFile(t, "square.dat", []byte(squareCSV))
	points, err := ReadFile(path, FormatCSV, nil)
	require.NoError(t, err)
	assert.Equal(t, square, points)

	_, err = ReadFile(path, FormatAuto, nil)
	assert.ErrorIs(t, err, ErrUnknownFormat)

	_, err = ReadFile(filepath.Join(t.TempDir(), "missing.csv"), FormatAuto, nil)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
