package output

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/vegasq/csvcat/table"
)

// CSVFormatter outputs tables as CSV format
type CSVFormatter struct {
	writer io.Writer
}

// NewCSVFormatter creates a new CSV formatter
func NewCSVFormatter(w io.Writer) *CSVFormatter {
	return &CSVFormatter{writer: w}
}

// SetOutput sets the output writer
func (c *CSVFormatter) SetOutput(w io.Writer) {
	c.writer = w
}

// Format writes the header and every record of t in column order
func (c *CSVFormatter) Format(t *table.Table) error {
	csvWriter := csv.NewWriter(c.writer)

	if err := csvWriter.Write(t.Columns); err != nil {
		return err
	}

	for i := range t.Records {
		row := t.Row(i)
		for j, cell := range row {
			row[j] = sanitizeCell(cell)
		}
		if err := csvWriter.Write(row); err != nil {
			return err
		}
	}

	// Flush and check for errors
	csvWriter.Flush()
	if err := csvWriter.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV writer: %w", err)
	}

	return nil
}

// sanitizeCell guards against CSV injection by prefixing cells that could
// trigger formula execution in spreadsheet applications. Numbers such as
// "-5" are left alone.
func sanitizeCell(val string) string {
	if val == "" {
		return val
	}
	if _, ok := table.ParseNumber(val); ok {
		return val
	}
	switch val[0] {
	case '=', '+', '-', '@', '\t', '\r', '\n', '|':
		// Escape existing single quotes and prefix with quote to prevent formula injection
		return "'" + strings.ReplaceAll(val, "'", "''")
	}
	return val
}
