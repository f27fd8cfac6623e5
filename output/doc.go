// Package output provides formatters for writing tables to a terminal or
// another program.
//
// This package defines the Formatter interface and provides implementations
// for a bordered grid table, CSV and JSON Lines. All formatters write the
// columns in header order.
//
// # Supported Formats
//
//   - table: bordered grid rendered with github.com/olekukonko/tablewriter
//   - csv: comma-separated values with header row
//   - json, jsonl: one JSON object per record
//
// # Basic Usage
//
// Pick a formatter by name:
//
//	formatter, err := output.New("table", os.Stdout)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := formatter.Format(t); err != nil {
//	    log.Fatal(err)
//	}
//
// Limit the width of grid cells:
//
//	formatter := output.NewTableFormatter(os.Stdout)
//	formatter.MaxWidth = 20
//
// # Formatter Interface
//
// Implement custom formatters by satisfying the Formatter interface:
//
//	type Formatter interface {
//	    Format(t *table.Table) error
//	    SetOutput(w io.Writer)
//	}
//
// # Empty Tables
//
// A table without records is still written with its header: the grid
// formatter prints a header-only grid, the CSV formatter a single header
// line, and the JSON formatter nothing at all.
package output
