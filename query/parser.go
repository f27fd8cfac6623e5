package query

import (
	"fmt"
	"strings"
)

// ParseWhere parses a filter of the form "<column><op><value>".
//
// The input is split at the first character that is one of the supported
// operators, so "a=b>c" compares column "a" with the value "b>c". Column and
// value are trimmed of surrounding whitespace. The value may be empty.
// Compound operators such as >=, <=, == and != are rejected.
func ParseWhere(s string) (*FilterSpec, error) {
	if err := validateSpecString("where clause", s); err != nil {
		return nil, err
	}

	idx := strings.IndexAny(s, opChars())
	if idx < 0 {
		return nil, fmt.Errorf("%w: where clause %q has no operator (use one of >, <, =)", ErrInvalidSpec, s)
	}

	if isCompoundOperator(s, idx) {
		return nil, fmt.Errorf("%w: where clause %q uses an unsupported operator (use one of >, <, =)", ErrInvalidSpec, s)
	}

	column := strings.TrimSpace(s[:idx])
	if err := validateColumnName("where clause", column); err != nil {
		return nil, err
	}

	return &FilterSpec{
		Column:   column,
		Operator: Operator(s[idx : idx+1]),
		Value:    strings.TrimSpace(s[idx+1:]),
	}, nil
}

// ParseAggregate parses an aggregate of the form "<column>=<func>".
// The function name is case-insensitive.
func ParseAggregate(s string) (*AggregateSpec, error) {
	column, arg, err := splitAssignment("aggregate", s)
	if err != nil {
		return nil, err
	}

	fn := AggregateFunc(strings.ToLower(arg))
	switch fn {
	case FuncAvg, FuncMin, FuncMax:
	default:
		return nil, fmt.Errorf("%w: unsupported aggregate function %q (use avg, min or max)", ErrInvalidSpec, arg)
	}

	return &AggregateSpec{Column: column, Func: fn}, nil
}

// ParseOrderBy parses a sort of the form "<column>=<direction>".
// The direction is case-insensitive.
func ParseOrderBy(s string) (*SortSpec, error) {
	column, arg, err := splitAssignment("order-by", s)
	if err != nil {
		return nil, err
	}

	dir := Direction(strings.ToLower(arg))
	switch dir {
	case Asc, Desc:
	default:
		return nil, fmt.Errorf("%w: unsupported sort direction %q (use asc or desc)", ErrInvalidSpec, arg)
	}

	return &SortSpec{Column: column, Direction: dir}, nil
}

// splitAssignment splits "<column>=<arg>" at the last '=' so column names
// may themselves contain '='.
func splitAssignment(kind, s string) (string, string, error) {
	if err := validateSpecString(kind, s); err != nil {
		return "", "", err
	}

	idx := strings.LastIndex(s, "=")
	if idx < 0 {
		return "", "", fmt.Errorf("%w: %s %q must have the form column=value", ErrInvalidSpec, kind, s)
	}

	column := strings.TrimSpace(s[:idx])
	if err := validateColumnName(kind, column); err != nil {
		return "", "", err
	}

	return column, strings.TrimSpace(s[idx+1:]), nil
}

// isCompoundOperator reports whether the operator at idx is part of a
// two-character operator like >=, == or !=.
func isCompoundOperator(s string, idx int) bool {
	if strings.HasSuffix(strings.TrimSpace(s[:idx]), "!") {
		return true
	}
	rest := strings.TrimSpace(s[idx+1:])
	return rest != "" && strings.IndexByte(opChars(), rest[0]) >= 0
}

func opChars() string {
	var b strings.Builder
	for _, op := range operators {
		b.WriteString(string(op))
	}
	return b.String()
}
