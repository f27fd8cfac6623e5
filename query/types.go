package query

import (
	"fmt"

	"github.com/vegasq/csvcat/table"
)

// Operator is a comparison operator used by a filter.
type Operator string

const (
	OpGreater Operator = ">"
	OpLess    Operator = "<"
	OpEqual   Operator = "="
)

// operators lists every supported operator.
var operators = []Operator{OpGreater, OpLess, OpEqual}

// AggregateFunc names a numeric aggregate.
type AggregateFunc string

const (
	FuncAvg AggregateFunc = "avg"
	FuncMin AggregateFunc = "min"
	FuncMax AggregateFunc = "max"
)

// Direction is a sort direction.
type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// FilterSpec is a single "<column><op><value>" predicate.
type FilterSpec struct {
	Column   string
	Operator Operator
	Value    string
}

func (f FilterSpec) String() string {
	return f.Column + string(f.Operator) + f.Value
}

// AggregateSpec selects the column and function to aggregate.
type AggregateSpec struct {
	Column string
	Func   AggregateFunc
}

func (a AggregateSpec) String() string {
	return a.Column + "=" + string(a.Func)
}

// SortSpec selects the column and direction to sort by.
type SortSpec struct {
	Column    string
	Direction Direction
}

func (s SortSpec) String() string {
	return s.Column + "=" + string(s.Direction)
}

// AggregateResult is the value of one aggregate over a table.
type AggregateResult struct {
	Column string
	Func   AggregateFunc
	Value  float64
	// Count is how many numeric values contributed.
	Count int
}

// Label returns the display name of the result, e.g. "avg(price)".
func (r AggregateResult) Label() string {
	return fmt.Sprintf("%s(%s)", r.Func, r.Column)
}

// Table converts the result into a one-row table so it can be rendered by
// any formatter.
func (r AggregateResult) Table() *table.Table {
	label := r.Label()
	return table.New([]string{label}, []table.Record{
		{label: table.FormatNumber(r.Value)},
	})
}
