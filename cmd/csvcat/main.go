package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/vegasq/csvcat/internal/logging"
	"github.com/vegasq/csvcat/output"
	"github.com/vegasq/csvcat/query"
	"github.com/vegasq/csvcat/reader"
)

const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

// errUsage marks problems with the command line itself.
var errUsage = errors.New("usage error")

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// options holds the parsed command line.
type options struct {
	file      string
	where     onceString
	aggregate onceString
	orderBy   onceString
	format    string
	delimiter string
	maxWidth  int
	verbose   bool
	logFormat string
}

func newFlagSet(stderr io.Writer, opts *options) *flag.FlagSet {
	flags := flag.NewFlagSet("csvcat", flag.ContinueOnError)
	flags.SetOutput(stderr)

	flags.StringVar(&opts.file, "file", "", "Path to the CSV file (required; .parquet files and glob patterns are also accepted)")
	flags.Var(&opts.where, "where", "Filter rows, e.g. \"price>500\" (operators: >, <, =)")
	flags.Var(&opts.aggregate, "aggregate", "Aggregate a column, e.g. \"price=avg\" (functions: avg, min, max)")
	flags.Var(&opts.orderBy, "order-by", "Sort rows, e.g. \"price=asc\" (directions: asc, desc)")
	flags.StringVar(&opts.format, "format", "table", "Output format: "+strings.Join(output.Formats, ", "))
	flags.StringVar(&opts.delimiter, "delimiter", ",", "Field delimiter of the input file")
	flags.IntVar(&opts.maxWidth, "max-width", 0, "Truncate table cells wider than this (0 = unlimited)")
	flags.BoolVar(&opts.verbose, "verbose", false, "Log pipeline details to stderr")
	flags.StringVar(&opts.logFormat, "log-format", "text", "Log format: text, json")

	flags.Usage = func() {
		fmt.Fprintf(stderr, "Usage: csvcat --file <path> [options]\n\n")
		fmt.Fprintf(stderr, "Filter, aggregate and sort a CSV file and print it as a table.\n\n")
		fmt.Fprintf(stderr, "Options:\n")
		flags.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  csvcat --file phones.csv\n")
		fmt.Fprintf(stderr, "  csvcat --file phones.csv --where \"price>500\"\n")
		fmt.Fprintf(stderr, "  csvcat --file phones.csv --where \"brand=xiaomi\" --order-by \"price=asc\"\n")
		fmt.Fprintf(stderr, "  csvcat --file phones.csv --aggregate \"price=avg\"\n")
	}

	return flags
}

// run executes the command and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	var opts options
	flags := newFlagSet(stderr, &opts)

	if len(args) == 0 {
		flags.Usage()
		fmt.Fprintf(stderr, "\nError: no arguments given\n")
		return exitUsage
	}

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		// flag has already printed the problem and usage
		return exitUsage
	}

	if err := execute(&opts, flags.Args(), stdout, stderr); err != nil {
		return report(stderr, &opts, err)
	}
	return exitOK
}

// execute validates the options, runs the pipeline and writes the result.
// Nothing is written to stdout unless every stage succeeds.
func execute(opts *options, extra []string, stdout, stderr io.Writer) error {
	if len(extra) > 0 {
		return fmt.Errorf("%w: unexpected arguments: %s", errUsage, strings.Join(extra, " "))
	}
	if opts.file == "" {
		return fmt.Errorf("%w: --file is required", errUsage)
	}
	if opts.maxWidth < 0 {
		return fmt.Errorf("%w: --max-width must be non-negative, got %d", errUsage, opts.maxWidth)
	}

	delim, err := parseDelimiter(opts.delimiter)
	if err != nil {
		return err
	}

	var rendered bytes.Buffer
	formatter, err := output.New(opts.format, &rendered)
	if err != nil {
		return fmt.Errorf("%w: %v (supported: %s)", errUsage, err, strings.Join(output.Formats, ", "))
	}
	if tf, ok := formatter.(*output.TableFormatter); ok {
		tf.MaxWidth = opts.maxWidth
	}

	logCfg := logging.DefaultConfig()
	logCfg.Writer = stderr
	logCfg.Format = opts.logFormat
	if opts.verbose {
		logCfg.Level = slog.LevelDebug
	}
	logger, err := logging.New(logCfg)
	if err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}

	pipeline, err := buildPipeline(opts)
	if err != nil {
		return err
	}
	pipeline.Logger = logger

	t, err := reader.Load(opts.file, reader.Options{Delimiter: delim})
	if err != nil {
		return err
	}
	logger.Debug("loaded file", "file", opts.file, "columns", len(t.Columns), "rows", t.Len())

	res, err := pipeline.Run(t)
	if err != nil {
		return err
	}

	if err := formatter.Format(res.Output()); err != nil {
		return fmt.Errorf("failed to format output: %w", err)
	}

	_, err = rendered.WriteTo(stdout)
	return err
}

// buildPipeline parses the --where, --aggregate and --order-by values that were given.
func buildPipeline(opts *options) (*query.Pipeline, error) {
	p := &query.Pipeline{}

	if opts.where.set {
		f, err := query.ParseWhere(opts.where.value)
		if err != nil {
			return nil, err
		}
		p.Filter = f
	}

	if opts.aggregate.set {
		a, err := query.ParseAggregate(opts.aggregate.value)
		if err != nil {
			return nil, err
		}
		p.Aggregate = a
	}

	if opts.orderBy.set {
		s, err := query.ParseOrderBy(opts.orderBy.value)
		if err != nil {
			return nil, err
		}
		p.OrderBy = s
	}

	return p, nil
}

func parseDelimiter(s string) (rune, error) {
	if s == `\t` {
		return '\t', nil
	}
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || size != len(s) || r == utf8.RuneError || r == '"' || r == '\r' || r == '\n' {
		return 0, fmt.Errorf("%w: --delimiter must be a single character, got %q", errUsage, s)
	}
	return r, nil
}

// report prints err to stderr and maps it to an exit code.
func report(stderr io.Writer, opts *options, err error) int {
	switch {
	case errors.Is(err, errUsage), errors.Is(err, query.ErrInvalidSpec):
		fmt.Fprintf(stderr, "Error: %v\n", err)
		fmt.Fprintf(stderr, "Run 'csvcat -h' for usage.\n")
		return exitUsage
	case errors.Is(err, fs.ErrNotExist):
		fmt.Fprintf(stderr, "Error: file '%s' not found\n", opts.file)
		fmt.Fprintf(stderr, "Please check the file path and try again.\n")
		return exitFailure
	default:
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitFailure
	}
}
