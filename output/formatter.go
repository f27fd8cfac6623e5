package output

import (
	"fmt"
	"io"

	"github.com/vegasq/csvcat/table"
)

// Formatter defines the interface for output formatters.
//
// Implementers must provide Format to write a table in the target format
// and SetOutput to change the output destination.
type Formatter interface {
	// Format writes t in the formatter's specific format
	Format(t *table.Table) error

	// SetOutput changes the output writer
	SetOutput(w io.Writer)
}

// Formats lists the names accepted by New.
var Formats = []string{"table", "csv", "json", "jsonl"}

// New returns the formatter registered under name.
func New(name string, w io.Writer) (Formatter, error) {
	switch name {
	case "table", "":
		return NewTableFormatter(w), nil
	case "csv":
		return NewCSVFormatter(w), nil
	case "json", "jsonl":
		return NewJSONFormatter(w), nil
	default:
		return nil, fmt.Errorf("unsupported format %q", name)
	}
}
