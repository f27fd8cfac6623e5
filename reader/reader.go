package reader

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/vegasq/csvcat/table"
)

// maxFiles bounds how many files a glob pattern may expand to.
const maxFiles = 1000

// ErrHeaderMismatch is returned when files matched by one pattern do not
// share the same header.
var ErrHeaderMismatch = fmt.Errorf("%w: files have different columns", ErrInvalidHeader)

// Load reads the file at path, choosing the format from its extension.
//
// Files ending in .parquet are read with LoadParquet, everything else is
// treated as delimited text. If path contains glob wildcards, every match is
// loaded in lexical order and the records are concatenated; all matches must
// have identical headers.
func Load(path string, opts Options) (*table.Table, error) {
	if !strings.ContainsAny(path, "*?[") {
		return loadFile(path, opts)
	}

	matches, err := filepath.Glob(path)
	if err != nil {
		return nil, fmt.Errorf("invalid glob pattern: %w", err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no files match pattern: %s", path)
	}
	if len(matches) > maxFiles {
		return nil, fmt.Errorf("glob pattern matched too many files (%d), maximum is %d", len(matches), maxFiles)
	}

	var merged *table.Table
	for _, match := range matches {
		t, err := loadFile(match, opts)
		if err != nil {
			return nil, err
		}
		if merged == nil {
			merged = t
			continue
		}
		if !slices.Equal(merged.Columns, t.Columns) {
			return nil, fmt.Errorf("%s: %w", match, ErrHeaderMismatch)
		}
		merged.Records = append(merged.Records, t.Records...)
	}

	return merged, nil
}

func loadFile(path string, opts Options) (*table.Table, error) {
	if strings.EqualFold(filepath.Ext(path), ".parquet") {
		return LoadParquet(path)
	}
	return LoadCSV(path, opts)
}
