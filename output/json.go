package output

import (
	"bufio"
	"encoding/json"
	"io"

	"github.com/vegasq/csvcat/table"
)

// JSONFormatter outputs records as JSON Lines format
type JSONFormatter struct {
	writer io.Writer
}

// NewJSONFormatter creates a new JSON Lines formatter
func NewJSONFormatter(w io.Writer) *JSONFormatter {
	return &JSONFormatter{writer: w}
}

// SetOutput sets the output writer
func (j *JSONFormatter) SetOutput(w io.Writer) {
	j.writer = w
}

// Format writes one JSON object per record. Keys appear in column order,
// which a plain map encoding would not preserve.
func (j *JSONFormatter) Format(t *table.Table) error {
	bw := bufio.NewWriter(j.writer)

	keys := make([][]byte, len(t.Columns))
	for i, col := range t.Columns {
		b, err := json.Marshal(col)
		if err != nil {
			return err
		}
		keys[i] = b
	}

	for i := range t.Records {
		bw.WriteByte('{')
		for k, cell := range t.Row(i) {
			if k > 0 {
				bw.WriteByte(',')
			}
			val, err := json.Marshal(cell)
			if err != nil {
				return err
			}
			bw.Write(keys[k])
			bw.WriteByte(':')
			bw.Write(val)
		}
		bw.WriteString("}\n")
	}

	return bw.Flush()
}
