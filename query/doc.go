// Package query filters, aggregates and sorts tables.
//
// Each stage is a plain function from a table (plus a parsed spec) to a new
// table or value; inputs are never modified. The supported operations are
// deliberately small:
//   - one predicate: "<column><op><value>" with op one of >, <, =
//   - one aggregate: avg, min or max over a single column
//   - one sort key: ascending or descending
//
// # Value Coercion
//
// Cells are plain strings. Whenever a stage needs to compare values it asks
// table.ParseNumber whether a cell is numeric; nothing is cached between
// calls. Comparisons with > and < only match numbers. Equality is numeric
// when both sides are numbers ("4.90" = "4.9") and textual otherwise. A
// column is sorted numerically only when every one of its values is a
// number.
//
// # Basic Usage
//
// Parse the specs and run them through a pipeline:
//
//	where, err := query.ParseWhere("brand=xiaomi")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	order, err := query.ParseOrderBy("price=asc")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	p := &query.Pipeline{Filter: where, OrderBy: order}
//	res, err := p.Run(t)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	out := res.Output()
//
// The stages can also be called directly:
//
//	filtered, err := query.ApplyFilter(t, where)
//	agg, err := query.ApplyAggregate(filtered, query.AggregateSpec{Column: "price", Func: query.FuncAvg})
//
// # Errors
//
// Malformed spec strings yield ErrInvalidSpec. A spec naming a column that
// is not in the header yields ErrUnknownColumn. An aggregate over a column
// without any numeric value yields ErrNoNumericValues.
package query
