package query

import (
	"github.com/vegasq/csvcat/table"
)

// ApplyFilter returns a table holding only the records of t that satisfy f.
//
// A nil filter returns t unchanged. For > and < both sides must parse as
// numbers, otherwise the record does not match. For = the comparison is
// numeric when both sides parse as numbers and an exact string match
// otherwise.
func ApplyFilter(t *table.Table, f *FilterSpec) (*table.Table, error) {
	if f == nil {
		return t, nil
	}
	if err := checkColumn(t, f.Column); err != nil {
		return nil, err
	}

	filtered := make([]table.Record, 0)
	for _, rec := range t.Records {
		if matches(rec[f.Column], f.Operator, f.Value) {
			filtered = append(filtered, rec)
		}
	}

	return t.WithRecords(filtered), nil
}

// matches evaluates "cell op value".
func matches(cell string, op Operator, value string) bool {
	left, leftIsNum := table.ParseNumber(cell)
	right, rightIsNum := table.ParseNumber(value)
	bothNum := leftIsNum && rightIsNum

	switch op {
	case OpGreater:
		return bothNum && left > right
	case OpLess:
		return bothNum && left < right
	case OpEqual:
		if bothNum {
			return left == right
		}
		return cell == value
	default:
		return false
	}
}
