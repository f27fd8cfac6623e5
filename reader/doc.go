// Package reader loads data files into tables.
//
// Delimited text files are the primary input. The first line is the header
// and each later line becomes one record. Parsing is strict: a row whose
// field count differs from the header is rejected with ErrFieldCount rather
// than padded, truncated or skipped. Blank lines are ignored, so the record
// count is the number of non-blank lines minus the header.
//
// # Basic Usage
//
// Reading a single CSV file:
//
//	t, err := reader.LoadCSV("phones.csv", reader.Options{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for i := range t.Records {
//	    fmt.Println(t.Row(i))
//	}
//
// Using a different delimiter:
//
//	t, err := reader.LoadCSV("phones.tsv", reader.Options{Delimiter: '\t'})
//
// # Format Detection
//
// Load picks the parser from the file extension. Files ending in .parquet
// are read with github.com/parquet-go/parquet-go and every value is turned
// into its textual form, so the rest of the pipeline treats them like CSV:
//
//	t, err := reader.Load("phones.parquet", reader.Options{})
//
// # Multi-file Operations
//
// A path with glob wildcards loads every matching file and concatenates the
// records. All matches must have the same header:
//
//	t, err := reader.Load("data/2024-*.csv", reader.Options{})
//
// # Errors
//
// A missing file yields an error wrapping fs.ErrNotExist, which can be
// checked with errors.Is. Malformed input yields ErrEmptyInput,
// ErrInvalidHeader or ErrFieldCount.
package reader
