// Package table defines the in-memory representation of a loaded CSV file.
//
// A Table is an ordered header plus an ordered list of records. Stages in the
// query package never modify a Table they receive; they build a new one that
// may share the (unmodified) Record maps of its input.
package table

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// Record maps a column name to the raw cell value.
type Record map[string]string

// Table holds the header and rows of a data file.
type Table struct {
	Columns []string
	Records []Record
}

// New creates a table with a copy of the given header.
func New(columns []string, records []Record) *Table {
	cols := make([]string, len(columns))
	copy(cols, columns)
	if records == nil {
		records = []Record{}
	}
	return &Table{Columns: cols, Records: records}
}

// Len returns the number of records.
func (t *Table) Len() int {
	return len(t.Records)
}

// HasColumn reports whether name is part of the header.
func (t *Table) HasColumn(name string) bool {
	for _, col := range t.Columns {
		if col == name {
			return true
		}
	}
	return false
}

// Row returns the values of record i in column order.
func (t *Table) Row(i int) []string {
	rec := t.Records[i]
	row := make([]string, len(t.Columns))
	for j, col := range t.Columns {
		row[j] = rec[col]
	}
	return row
}

// WithRecords returns a table with the same header and the given records.
func (t *Table) WithRecords(records []Record) *Table {
	return New(t.Columns, records)
}

// ParseNumber reports whether s holds a number and returns its value.
//
// Surrounding whitespace is ignored. Values beyond the float64 range, such
// as "1e400", are numbers and saturate to ±Inf. NaN is not considered a
// number because it cannot be ordered.
func ParseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, false
	}
	if math.IsNaN(f) {
		return 0, false
	}
	return f, true
}

// FormatNumber renders f without trailing zeros or exponent notation.
func FormatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
