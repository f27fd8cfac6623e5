package query

import (
	"fmt"
	"math"

	"github.com/vegasq/csvcat/table"
)

// ApplyAggregate computes spec over the numeric values of its column.
//
// Cells that do not parse as numbers are skipped. If none parse,
// ErrNoNumericValues is returned rather than a default value. A result that
// is not a number (the mean of +Inf and -Inf) yields ErrUndefinedResult.
func ApplyAggregate(t *table.Table, spec AggregateSpec) (AggregateResult, error) {
	if err := checkColumn(t, spec.Column); err != nil {
		return AggregateResult{}, err
	}

	values := numericValues(t, spec.Column)
	if len(values) == 0 {
		return AggregateResult{}, fmt.Errorf("%w in column %q: cannot compute %s", ErrNoNumericValues, spec.Column, spec.Func)
	}

	var value float64
	switch spec.Func {
	case FuncAvg:
		value = evaluateAvg(values)
	case FuncMin:
		value = evaluateMin(values)
	case FuncMax:
		value = evaluateMax(values)
	default:
		return AggregateResult{}, fmt.Errorf("%w: unsupported aggregate function %q", ErrInvalidSpec, spec.Func)
	}
	if math.IsNaN(value) {
		return AggregateResult{}, fmt.Errorf("%w: %s of column %q", ErrUndefinedResult, spec.Func, spec.Column)
	}

	return AggregateResult{
		Column: spec.Column,
		Func:   spec.Func,
		Value:  value,
		Count:  len(values),
	}, nil
}

// numericValues collects the coercible values of column in record order.
func numericValues(t *table.Table, column string) []float64 {
	values := make([]float64, 0, t.Len())
	for _, rec := range t.Records {
		if num, ok := table.ParseNumber(rec[column]); ok {
			values = append(values, num)
		}
	}
	return values
}

func evaluateAvg(values []float64) float64 {
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

func evaluateMin(values []float64) float64 {
	min := values[0]
	for _, v := range values[1:] {
		if v < min {
			min = v
		}
	}
	return min
}

func evaluateMax(values []float64) float64 {
	max := values[0]
	for _, v := range values[1:] {
		if v > max {
			max = v
		}
	}
	return max
}
