package output

import (
	"io"

	"github.com/mattn/go-runewidth"
	"github.com/olekukonko/tablewriter"

	"github.com/vegasq/csvcat/table"
)

// truncTail marks a cell shortened to fit MaxWidth.
const truncTail = "…"

// TableFormatter renders a table as an aligned grid with borders.
//
// Headers are printed as they appear in the file. Columns whose values are
// all numeric are right-aligned, everything else is left-aligned. A table
// without records is rendered as its header only.
type TableFormatter struct {
	writer io.Writer

	// MaxWidth limits the display width of each cell. Zero means unlimited.
	MaxWidth int
}

// NewTableFormatter creates a new grid table formatter
func NewTableFormatter(w io.Writer) *TableFormatter {
	return &TableFormatter{writer: w}
}

// SetOutput sets the output writer
func (f *TableFormatter) SetOutput(w io.Writer) {
	f.writer = w
}

// Format writes t as a grid table
func (f *TableFormatter) Format(t *table.Table) error {
	tw := tablewriter.NewWriter(f.writer)
	tw.SetAutoFormatHeaders(false)
	tw.SetAutoWrapText(false)
	tw.SetRowLine(true)
	tw.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	tw.SetColumnAlignment(columnAlignment(t))

	tw.SetHeader(f.truncateAll(t.Columns))
	for i := range t.Records {
		tw.Append(f.truncateAll(t.Row(i)))
	}

	tw.Render()
	return nil
}

func (f *TableFormatter) truncateAll(cells []string) []string {
	if f.MaxWidth <= 0 {
		return cells
	}
	out := make([]string, len(cells))
	for i, cell := range cells {
		out[i] = truncate(cell, f.MaxWidth)
	}
	return out
}

// truncate shortens s to at most width terminal columns.
func truncate(s string, width int) string {
	if runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, truncTail)
}

// columnAlignment right-aligns columns that only hold numbers.
func columnAlignment(t *table.Table) []int {
	align := make([]int, len(t.Columns))
	for i, col := range t.Columns {
		align[i] = tablewriter.ALIGN_LEFT
		if t.Len() > 0 && isNumericColumn(t, col) {
			align[i] = tablewriter.ALIGN_RIGHT
		}
	}
	return align
}

func isNumericColumn(t *table.Table, col string) bool {
	for _, rec := range t.Records {
		if _, ok := table.ParseNumber(rec[col]); !ok {
			return false
		}
	}
	return true
}
