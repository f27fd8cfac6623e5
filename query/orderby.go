package query

import (
	"sort"
	"strings"

	"github.com/vegasq/csvcat/table"
)

// SortMode describes how a column was compared.
type SortMode int

const (
	SortNumeric SortMode = iota
	SortLexical
)

func (m SortMode) String() string {
	if m == SortNumeric {
		return "numeric"
	}
	return "lexical"
}

// ApplyOrderBy returns a table with the records of t ordered by spec.
//
// A nil spec returns t unchanged. The column is ordered numerically when
// every value parses as a number and byte-wise otherwise. The sort is stable
// in both directions, so records with equal keys keep their input order.
func ApplyOrderBy(t *table.Table, spec *SortSpec) (*table.Table, error) {
	if spec == nil {
		return t, nil
	}
	if err := checkColumn(t, spec.Column); err != nil {
		return nil, err
	}

	// Copy to avoid reordering the input table
	sorted := make([]table.Record, len(t.Records))
	copy(sorted, t.Records)

	mode := DetectSortMode(t, spec.Column)
	desc := spec.Direction == Desc

	sort.SliceStable(sorted, func(i, j int) bool {
		cmp := compareValues(sorted[i][spec.Column], sorted[j][spec.Column], mode)
		if desc {
			return cmp > 0
		}
		return cmp < 0
	})

	return t.WithRecords(sorted), nil
}

// DetectSortMode reports whether column can be ordered numerically.
// An empty table sorts numerically.
func DetectSortMode(t *table.Table, column string) SortMode {
	for _, rec := range t.Records {
		if _, ok := table.ParseNumber(rec[column]); !ok {
			return SortLexical
		}
	}
	return SortNumeric
}

// compareValues compares two cells and returns:
// -1 if a < b
//
//	0 if a == b
//
// +1 if a > b
func compareValues(a, b string, mode SortMode) int {
	if mode == SortNumeric {
		// Both parse here; the mode guarantees it.
		x, _ := table.ParseNumber(a)
		y, _ := table.ParseNumber(b)
		switch {
		case x < y:
			return -1
		case x > y:
			return 1
		default:
			return 0
		}
	}
	return strings.Compare(a, b)
}
