package reader

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/parquet-go/parquet-go"

	"github.com/vegasq/csvcat/table"
)

// LoadParquet reads a Parquet file into a table.
//
// Column order follows the file schema. Every value is converted to its
// textual form so the result behaves exactly like a loaded CSV file; null
// values become empty strings.
func LoadParquet(path string) (*table.Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	stat, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	pqFile, err := parquet.OpenFile(file, stat.Size())
	if err != nil {
		return nil, fmt.Errorf("failed to open parquet file: %w", err)
	}

	fields := pqFile.Schema().Fields()
	columns := make([]string, len(fields))
	for i, field := range fields {
		columns[i] = field.Name()
	}
	if len(columns) == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrEmptyInput)
	}

	pqReader := parquet.NewReader(pqFile)
	defer func() { _ = pqReader.Close() }()

	records := make([]table.Record, 0, pqFile.NumRows())
	for {
		row := make(map[string]interface{})
		if err := pqReader.Read(&row); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("failed to read row: %w", err)
		}

		rec := make(table.Record, len(columns))
		for _, col := range columns {
			rec[col] = formatValue(row[col])
		}
		records = append(records, rec)
	}

	return table.New(columns, records), nil
}

// formatValue converts a decoded parquet value to a cell string.
func formatValue(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case []byte:
		return string(val)
	case float32:
		return table.FormatNumber(float64(val))
	case float64:
		return table.FormatNumber(val)
	case int, int8, int16, int32, int64:
		return fmt.Sprintf("%d", val)
	case uint, uint8, uint16, uint32, uint64:
		return fmt.Sprintf("%d", val)
	case bool:
		return fmt.Sprintf("%t", val)
	default:
		return fmt.Sprintf("%v", val)
	}
}
