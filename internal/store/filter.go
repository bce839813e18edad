package store

import (
	"fmt"
	"strings"
)

// Filter is a typed query filter compiled into a SQL predicate.
// Repositories accept filter lists instead of caller-assembled SQL.
type Filter interface {
	// compile renders the predicate, numbering placeholders from next,
	// and returns the rendered clause with its bound arguments.
	compile(next int) (clause string, args []interface{})
}

// Equality matches a column against a single value
type Equality struct {
	Column string
	Value  interface{}
}

func (f Equality) compile(next int) (string, []interface{}) {
	return fmt.Sprintf("%s = $%d", f.Column, next), []interface{}{f.Value}
}

// In matches a column against any of the given values
type In struct {
	Column string
	Values []interface{}
}

func (f In) compile(next int) (string, []interface{}) {
	placeholders := make([]string, len(f.Values))
	for i := range f.Values {
		placeholders[i] = fmt.Sprintf("$%d", next+i)
	}
	clause := fmt.Sprintf("%s IN (%s)", f.Column, strings.Join(placeholders, ", "))
	return clause, f.Values
}

// Range bounds a column inclusively; a nil bound leaves that side open
type Range struct {
	Column string
	Min    interface{}
	Max    interface{}
}

func (f Range) compile(next int) (string, []interface{}) {
	var parts []string
	var args []interface{}
	if f.Min != nil {
		parts = append(parts, fmt.Sprintf("%s >= $%d", f.Column, next))
		args = append(args, f.Min)
		next++
	}
	if f.Max != nil {
		parts = append(parts, fmt.Sprintf("%s <= $%d", f.Column, next))
		args = append(args, f.Max)
	}
	if len(parts) == 0 {
		return "TRUE", nil
	}
	return strings.Join(parts, " AND "), args
}

// Keyword matches a search term case-insensitively against any of the
// given columns
type Keyword struct {
	Columns []string
	Term    string
}

func (f Keyword) compile(next int) (string, []interface{}) {
	parts := make([]string, len(f.Columns))
	for i, col := range f.Columns {
		parts[i] = fmt.Sprintf("%s ILIKE $%d", col, next)
	}
	return "(" + strings.Join(parts, " OR ") + ")", []interface{}{"%" + f.Term + "%"}
}

// Or matches when any of its sub-filters match
type Or struct {
	Filters []Filter
}

func (f Or) compile(next int) (string, []interface{}) {
	if len(f.Filters) == 0 {
		return "TRUE", nil
	}
	clauses := make([]string, 0, len(f.Filters))
	var args []interface{}
	for _, sub := range f.Filters {
		clause, subArgs := sub.compile(next)
		clauses = append(clauses, clause)
		args = append(args, subArgs...)
		next += len(subArgs)
	}
	return "(" + strings.Join(clauses, " OR ") + ")", args
}

// keywordSearch builds the predicate for a keyword query. The full
// phrase and each space-separated word are matched independently, so
// "cool cats" still finds a record named just "cats".
func keywordSearch(columns []string, keyword string) Filter {
	filters := []Filter{Keyword{Columns: columns, Term: keyword}}
	for _, word := range strings.Fields(keyword) {
		if word == keyword {
			continue
		}
		filters = append(filters, Keyword{Columns: columns, Term: word})
	}
	return Or{Filters: filters}
}

// buildWhere compiles filters into a WHERE clause with placeholders
// numbered from startArg. An empty filter list yields an empty clause.
func buildWhere(filters []Filter, startArg int) (string, []interface{}) {
	if len(filters) == 0 {
		return "", nil
	}

	clauses := make([]string, 0, len(filters))
	var args []interface{}
	next := startArg
	for _, f := range filters {
		clause, fArgs := f.compile(next)
		clauses = append(clauses, clause)
		args = append(args, fArgs...)
		next += len(fArgs)
	}
	return " WHERE " + strings.Join(clauses, " AND "), args
}
