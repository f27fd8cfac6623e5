package reader

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/vegasq/csvcat/table"
)

func TestLoadCSV_SampleFile(t *testing.T) {
	tbl, err := LoadCSV(filepath.Join("..", "testdata", "phones.csv"), Options{})
	if err != nil {
		t.Fatalf("LoadCSV() error = %v", err)
	}

	wantColumns := []string{"name", "brand", "price", "rating"}
	if diff := cmp.Diff(wantColumns, tbl.Columns); diff != "" {
		t.Errorf("Columns mismatch (-want +got):\n%s", diff)
	}

	// line count minus header
	if tbl.Len() != 4 {
		t.Fatalf("LoadCSV() returned %d records, want 4", tbl.Len())
	}

	for i, rec := range tbl.Records {
		if len(rec) != len(wantColumns) {
			t.Errorf("record %d has %d keys, want %d", i, len(rec), len(wantColumns))
		}
		for _, col := range wantColumns {
			if _, ok := rec[col]; !ok {
				t.Errorf("record %d missing column %q", i, col)
			}
		}
	}

	want := table.Record{"name": "iphone 15 pro", "brand": "apple", "price": "999", "rating": "4.9"}
	if diff := cmp.Diff(want, tbl.Records[0]); diff != "" {
		t.Errorf("first record mismatch (-want +got):\n%s", diff)
	}
}

func TestReadCSV(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		opts    Options
		want    *table.Table
		wantErr error
	}{
		{
			name:  "header only",
			input: "a,b\n",
			want:  table.New([]string{"a", "b"}, nil),
		},
		{
			name:  "quoted field with delimiter",
			input: "name,price\n\"poco, x5\",299\n",
			want: table.New([]string{"name", "price"}, []table.Record{
				{"name": "poco, x5", "price": "299"},
			}),
		},
		{
			name:  "blank lines ignored",
			input: "a,b\n1,2\n\n3,4\n",
			want: table.New([]string{"a", "b"}, []table.Record{
				{"a": "1", "b": "2"},
				{"a": "3", "b": "4"},
			}),
		},
		{
			name:  "bom stripped",
			input: "\uFEFFa,b\n1,2\n",
			want: table.New([]string{"a", "b"}, []table.Record{
				{"a": "1", "b": "2"},
			}),
		},
		{
			name:  "semicolon delimiter",
			input: "a;b\n1;2\n",
			opts:  Options{Delimiter: ';'},
			want: table.New([]string{"a", "b"}, []table.Record{
				{"a": "1", "b": "2"},
			}),
		},
		{
			name:    "empty input",
			input:   "",
			wantErr: ErrEmptyInput,
		},
		{
			name:    "short row rejected",
			input:   "a,b,c\n1,2\n",
			wantErr: ErrFieldCount,
		},
		{
			name:    "long row rejected",
			input:   "a,b\n1,2\n3,4,5\n",
			wantErr: ErrFieldCount,
		},
		{
			name:    "duplicate column",
			input:   "a,a\n1,2\n",
			wantErr: ErrInvalidHeader,
		},
		{
			name:    "empty column name",
			input:   "a,,c\n1,2,3\n",
			wantErr: ErrInvalidHeader,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ReadCSV(strings.NewReader(tt.input), tt.opts)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ReadCSV() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ReadCSV() error = %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ReadCSV() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestReadCSV_FieldCountReportsLine(t *testing.T) {
	_, err := ReadCSV(strings.NewReader("a,b\n1,2\n3\n"), Options{})
	if err == nil {
		t.Fatal("ReadCSV() expected error, got nil")
	}
	if !strings.Contains(err.Error(), "line 3") {
		t.Errorf("error %q should mention line 3", err.Error())
	}
}

func TestLoadCSV_MissingFile(t *testing.T) {
	_, err := LoadCSV(filepath.Join(t.TempDir(), "missing.csv"), Options{})
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("LoadCSV() error = %v, want fs.ErrNotExist", err)
	}
}

func TestLoad_Glob(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.csv", "name,price\nx,1\n")
	writeFile(t, dir, "b.csv", "name,price\ny,2\n")

	tbl, err := Load(filepath.Join(dir, "*.csv"), Options{})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	want := table.New([]string{"name", "price"}, []table.Record{
		{"name": "x", "price": "1"},
		{"name": "y", "price": "2"},
	})
	if diff := cmp.Diff(want, tbl); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_GlobHeaderMismatch(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.csv", "name,price\nx,1\n")
	writeFile(t, dir, "b.csv", "name,rating\ny,2\n")

	_, err := Load(filepath.Join(dir, "*.csv"), Options{})
	if !errors.Is(err, ErrHeaderMismatch) {
		t.Fatalf("Load() error = %v, want ErrHeaderMismatch", err)
	}
}

func TestLoad_GlobNoMatches(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "*.csv"), Options{})
	if err == nil {
		t.Fatal("Load() expected error for empty glob, got nil")
	}
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}
