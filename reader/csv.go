package reader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/vegasq/csvcat/table"
)

var (
	// ErrEmptyInput is returned when the input has no header line.
	ErrEmptyInput = errors.New("input has no header")

	// ErrInvalidHeader is returned for empty or duplicate column names.
	ErrInvalidHeader = errors.New("invalid header")

	// ErrFieldCount is returned when a data row does not have exactly as
	// many fields as the header. Rows are never padded or truncated.
	ErrFieldCount = errors.New("wrong number of fields")
)

// utf8BOM is stripped from the start of the first header name.
const utf8BOM = "\uFEFF"

// Options configures how delimited files are parsed.
type Options struct {
	// Delimiter separates fields. Zero means ','.
	Delimiter rune
}

func (o Options) delimiter() rune {
	if o.Delimiter == 0 {
		return ','
	}
	return o.Delimiter
}

// LoadCSV reads the delimited file at path into a table.
//
// The first line is the header. Every following line becomes a record keyed
// by header name. A missing file yields an error wrapping fs.ErrNotExist.
func LoadCSV(path string, opts Options) (*table.Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	t, err := ReadCSV(file, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// ReadCSV parses delimited data from r into a table.
func ReadCSV(r io.Reader, opts Options) (*table.Table, error) {
	cr := csv.NewReader(r)
	cr.Comma = opts.delimiter()
	// Field counts are checked below so the error can carry our sentinel.
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyInput
		}
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	columns, err := parseHeader(header)
	if err != nil {
		return nil, err
	}

	records := make([]table.Record, 0)
	for {
		fields, err := cr.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("failed to read row: %w", err)
		}

		if len(fields) != len(columns) {
			line, _ := cr.FieldPos(0)
			return nil, fmt.Errorf("line %d: %w: got %d, header has %d", line, ErrFieldCount, len(fields), len(columns))
		}

		rec := make(table.Record, len(columns))
		for i, col := range columns {
			rec[col] = fields[i]
		}
		records = append(records, rec)
	}

	return table.New(columns, records), nil
}

// parseHeader validates the header line and returns the column names.
func parseHeader(header []string) ([]string, error) {
	columns := make([]string, len(header))
	seen := make(map[string]bool, len(header))

	for i, name := range header {
		if i == 0 {
			name = strings.TrimPrefix(name, utf8BOM)
		}
		if name == "" {
			return nil, fmt.Errorf("%w: column %d has no name", ErrInvalidHeader, i+1)
		}
		if seen[name] {
			return nil, fmt.Errorf("%w: duplicate column %q", ErrInvalidHeader, name)
		}
		seen[name] = true
		columns[i] = name
	}

	return columns, nil
}
