package query

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vegasq/csvcat/table"
)

var (
	// ErrInvalidSpec is returned for malformed --where, --aggregate or
	// --order-by strings.
	ErrInvalidSpec = errors.New("invalid spec")

	// ErrUnknownColumn is returned when a spec names a column that is not
	// part of the table header.
	ErrUnknownColumn = errors.New("unknown column")

	// ErrNoNumericValues is returned when an aggregate finds no value in
	// its column that parses as a number.
	ErrNoNumericValues = errors.New("no numeric values")

	// ErrUndefinedResult is returned when an aggregate has no defined
	// value, such as the mean of +Inf and -Inf.
	ErrUndefinedResult = errors.New("aggregate result is undefined")
)

// checkColumn returns ErrUnknownColumn, listing the available columns, when
// column is not in t.
func checkColumn(t *table.Table, column string) error {
	if t.HasColumn(column) {
		return nil
	}
	return fmt.Errorf("%w %q (available columns: %s)", ErrUnknownColumn, column, strings.Join(t.Columns, ", "))
}
