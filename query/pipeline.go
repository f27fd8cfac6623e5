package query

import (
	"log/slog"

	"github.com/vegasq/csvcat/table"
)

// Pipeline runs the filter, aggregate and sort stages over a loaded table.
// Every stage is optional.
type Pipeline struct {
	Filter    *FilterSpec
	Aggregate *AggregateSpec
	OrderBy   *SortSpec

	// Logger receives stage diagnostics at debug level. Nil disables them.
	Logger *slog.Logger
}

// Result is the outcome of a pipeline run. Exactly one of Table and
// Aggregate is set.
type Result struct {
	Table     *table.Table
	Aggregate *AggregateResult
}

// Output returns the table to render: the aggregate as a one-row table when
// an aggregate was computed, the record table otherwise.
func (r Result) Output() *table.Table {
	if r.Aggregate != nil {
		return r.Aggregate.Table()
	}
	return r.Table
}

// Run filters t and then either aggregates or sorts the remaining records.
//
// When an aggregate is requested the sort column is still checked against
// the header, but no sorting is done since the result is a single value.
func (p *Pipeline) Run(t *table.Table) (Result, error) {
	log := p.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	filtered, err := ApplyFilter(t, p.Filter)
	if err != nil {
		return Result{}, err
	}
	if p.Filter != nil {
		log.Debug("applied filter", "where", p.Filter.String(), "rows_in", t.Len(), "rows_out", filtered.Len())
	}

	if p.Aggregate != nil {
		if p.OrderBy != nil {
			if err := checkColumn(filtered, p.OrderBy.Column); err != nil {
				return Result{}, err
			}
			log.Debug("ignoring order-by for aggregate", "order_by", p.OrderBy.String())
		}

		agg, err := ApplyAggregate(filtered, *p.Aggregate)
		if err != nil {
			return Result{}, err
		}
		log.Debug("computed aggregate", "aggregate", p.Aggregate.String(), "value", agg.Value, "values", agg.Count)
		return Result{Aggregate: &agg}, nil
	}

	sorted, err := ApplyOrderBy(filtered, p.OrderBy)
	if err != nil {
		return Result{}, err
	}
	if p.OrderBy != nil {
		log.Debug("sorted rows", "order_by", p.OrderBy.String(), "mode", DetectSortMode(filtered, p.OrderBy.Column).String())
	}

	return Result{Table: sorted}, nil
}
