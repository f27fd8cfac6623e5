package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/olekukonko/tablewriter"

	"github.com/vegasq/csvcat/table"
)

func sampleTable() *table.Table {
	return table.New([]string{"name", "brand", "price"}, []table.Record{
		{"name": "iphone 15 pro", "brand": "apple", "price": "999"},
		{"name": "galaxy s23 ultra", "brand": "samsung", "price": "1199"},
	})
}

func TestTableFormatter_Format(t *testing.T) {
	var buf bytes.Buffer
	if err := NewTableFormatter(&buf).Format(sampleTable()); err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	out := buf.String()
	for _, want := range []string{"name", "brand", "price", "iphone 15 pro", "galaxy s23 ultra", "1199"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	// headers must not be upper-cased
	if strings.Contains(out, "NAME") {
		t.Errorf("header was reformatted:\n%s", out)
	}

	// header appears before the rows
	if strings.Index(out, "name") > strings.Index(out, "iphone 15 pro") {
		t.Errorf("header should come first:\n%s", out)
	}

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	width := len([]rune(lines[0]))
	for i, line := range lines {
		if len([]rune(line)) != width {
			t.Errorf("line %d has width %d, want %d (columns not aligned):\n%s", i, len([]rune(line)), width, out)
		}
	}
}

func TestTableFormatter_Empty(t *testing.T) {
	var buf bytes.Buffer
	empty := table.New([]string{"name", "price"}, nil)
	if err := NewTableFormatter(&buf).Format(empty); err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "name") || !strings.Contains(out, "price") {
		t.Errorf("empty table should still show the header:\n%s", out)
	}
}

func TestTableFormatter_MaxWidth(t *testing.T) {
	var buf bytes.Buffer
	f := NewTableFormatter(&buf)
	f.MaxWidth = 6

	if err := f.Format(sampleTable()); err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	out := buf.String()
	if strings.Contains(out, "galaxy s23 ultra") {
		t.Errorf("long cell was not truncated:\n%s", out)
	}
	if !strings.Contains(out, "galax…") {
		t.Errorf("truncated cell missing tail marker:\n%s", out)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"short", 10, "short"},
		{"exactly", 7, "exactly"},
		{"toolongvalue", 5, "tool…"},
	}

	for _, tt := range tests {
		if got := truncate(tt.in, tt.width); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
		}
	}
}

func TestColumnAlignment(t *testing.T) {
	got := columnAlignment(sampleTable())
	want := []int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("alignment[%d] = %d, want %d", i, got[i], want[i])
		}
	}

	empty := columnAlignment(table.New([]string{"price"}, nil))
	if empty[0] != tablewriter.ALIGN_LEFT {
		t.Errorf("empty column alignment = %d, want left", empty[0])
	}
}

func TestNew(t *testing.T) {
	for _, name := range Formats {
		if _, err := New(name, &bytes.Buffer{}); err != nil {
			t.Errorf("New(%q) error = %v", name, err)
		}
	}
	if _, err := New("xml", &bytes.Buffer{}); err == nil {
		t.Error("New(xml) expected error, got nil")
	}
}
