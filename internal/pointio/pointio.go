// Package pointio reads point sets from CSV or JSON files, optionally
// compressed with gzip, zstd or LZ4.
package pointio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/hupe1980/kmeans/codec"
	"github.com/hupe1980/kmeans/model"
)

// ErrUnknownFormat is returned when the input format cannot be determined.
var ErrUnknownFormat = errors.New("pointio: unknown format")

// Format is the textual encoding of a point file.
type Format string

const (
	// FormatAuto derives the format from the file extension.
	FormatAuto Format = ""
	// FormatCSV is one point per row, one coordinate per column.
	FormatCSV Format = "csv"
	// FormatJSON is a JSON array of coordinate arrays.
	FormatJSON Format = "json"
)

// ParseFormat parses a format name. The empty string and "auto" yield FormatAuto.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return FormatAuto, nil
	case "csv":
		return FormatCSV, nil
	case "json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// FormatFromPath derives the format from the file extension, ignoring a
// trailing compression extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(stripCompressionExt(path))) {
	case ".csv", ".txt":
		return FormatCSV, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownFormat, path)
	}
}

// ParseError reports a malformed coordinate.
type ParseError struct {
	Line   int
	Column int
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("pointio: line %d, column %d: %v", e.Line, e.Column, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ReadCSV reads one point per record. Blank lines and lines starting with '#'
// are skipped. A leading record in which no field parses as a number is
// treated as a header; any other malformed record is a ParseError.
func ReadCSV(r io.Reader) (model.PointSet, error) {
	cr := csv.NewReader(r)
	cr.Comment = '#'
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = true

	var points model.PointSet
	first := true
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("pointio: %w", err)
		}

		p, perr := parseRecord(record)
		if perr != nil {
			if first && isHeader(record) {
				first = false
				continue
			}
			line, _ := cr.FieldPos(perr.Column - 1)
			perr.Line = line
			return nil, perr
		}
		first = false
		points = append(points, p)
	}
	return points, nil
}

func isHeader(record []string) bool {
	for _, field := range record {
		if _, err := strconv.ParseFloat(strings.TrimSpace(field), 64); err == nil {
			return false
		}
	}
	return true
}

func parseRecord(record []string) (model.Point, *ParseError) {
	p := make(model.Point, len(record))
	for i, field := range record {
		v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
		if err != nil {
			return nil, &ParseError{Column: i + 1, Err: err}
		}
		p[i] = v
	}
	return p, nil
}

// ReadJSON reads a JSON array of coordinate arrays. A nil codec selects
// codec.Default.
func ReadJSON(r io.Reader, c codec.Codec) (model.PointSet, error) {
	if c == nil {
		c = codec.Default
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("pointio: %w", err)
	}

	var raw [][]float64
	if err := c.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("pointio: %s: %w", c.Name(), err)
	}

	points := make(model.PointSet, len(raw))
	for i, p := range raw {
		points[i] = p
	}
	return points, nil
}

// Read decodes r according to format, which must not be FormatAuto.
func Read(r io.Reader, format Format, c codec.Codec) (model.PointSet, error) {
	switch format {
	case FormatCSV:
		return ReadCSV(r)
	case FormatJSON:
		return ReadJSON(r, c)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// Open opens path for reading and wraps it with the decompressor its
// extension names. An empty path or "-" reads stdin.
func Open(path string) (io.ReadCloser, error) {
	if path == "" || path == "-" {
		return io.NopCloser(os.Stdin), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	rc, err := NewReader(f, CompressionFromPath(path))
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	return &fileReader{ReadCloser: rc, file: f}, nil
}

type fileReader struct {
	io.ReadCloser
	file *os.File
}

func (f *fileReader) Close() error {
	return errors.Join(f.ReadCloser.Close(), f.file.Close())
}

// ReadFile opens path and decodes its points. With FormatAuto the format is
// derived from the file name; stdin defaults to CSV.
func ReadFile(path string, format Format, c codec.Codec) (points model.PointSet, err error) {
	if format == FormatAuto {
		if path == "" || path == "-" {
			format = FormatCSV
		} else if format, err = FormatFromPath(path); err != nil {
			return nil, err
		}
	}

	rc, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rc.Close(); err == nil {
			err = cerr
		}
	}()

	return Read(rc, format, c)
}
