package query

import (
	"testing"

	"github.com/vegasq/csvcat/table"
)

// sampleTable returns the phone catalogue used across the query tests.
func sampleTable() *table.Table {
	return table.New([]string{"name", "brand", "price", "rating"}, []table.Record{
		{"name": "iphone 15 pro", "brand": "apple", "price": "999", "rating": "4.9"},
		{"name": "galaxy s23 ultra", "brand": "samsung", "price": "1199", "rating": "4.8"},
		{"name": "redmi note 12", "brand": "xiaomi", "price": "199", "rating": "4.6"},
		{"name": "poco x5 pro", "brand": "xiaomi", "price": "299", "rating": "4.4"},
	})
}

// names returns the name column of t in record order.
func names(t *table.Table) []string {
	out := make([]string, len(t.Records))
	for i, rec := range t.Records {
		out[i] = rec["name"]
	}
	return out
}

func mustParseWhere(t *testing.T, s string) *FilterSpec {
	t.Helper()
	f, err := ParseWhere(s)
	if err != nil {
		t.Fatalf("ParseWhere(%q) error = %v", s, err)
	}
	return f
}

func mustParseOrderBy(t *testing.T, s string) *SortSpec {
	t.Helper()
	spec, err := ParseOrderBy(s)
	if err != nil {
		t.Fatalf("ParseOrderBy(%q) error = %v", s, err)
	}
	return spec
}
