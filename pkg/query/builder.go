// Package query builds parameterized SELECT statements over a ProjectionMap.
package query

import (
	"fmt"
	"strings"
)

type condition struct {
	clause string
	args   []any
}

// Builder constructs SQL queries using a fluent API with automatic parameter numbering.
type Builder struct {
	projection *ProjectionMap
	conditions []condition
	sort       string
}

// NewBuilder creates a Builder for the given projection. The optional sort
// names the field or column selects are ordered by, ascending.
func NewBuilder(projection *ProjectionMap, sort ...string) *Builder {
	b := &Builder{
		projection: projection,
		conditions: make([]condition, 0),
	}
	if len(sort) > 0 {
		b.sort = sort[0]
	}
	return b
}

// BuildSelect returns an unbounded SELECT with the current conditions and ordering.
func (b *Builder) BuildSelect() (string, []any) {
	where, args := b.buildWhere()
	sql := fmt.Sprintf(
		"SELECT %s FROM %s%s%s",
		b.projection.Columns(),
		b.projection.Table(),
		where,
		b.buildOrderBy(),
	)
	return sql, args
}

// BuildSingle returns a SELECT query for a single record by ID.
func (b *Builder) BuildSingle(idField string, id any) (string, []any) {
	col := b.projection.Column(idField)
	sql := fmt.Sprintf(
		"SELECT %s FROM %s WHERE %s = $1",
		b.projection.Columns(),
		b.projection.Table(),
		col,
	)
	return sql, []any{id}
}

// WhereIn adds an IN condition for multiple values. Empty slices are ignored.
func (b *Builder) WhereIn(field string, values []any) *Builder {
	if len(values) == 0 {
		return b
	}
	b.conditions = append(b.conditions, condition{
		clause: inClause(b.projection.Column(field), len(values)),
		args:   values,
	})
	return b
}

// WhereAny matches rows where any of fields equals value.
func (b *Builder) WhereAny(value any, fields ...string) *Builder {
	if value == nil || len(fields) == 0 {
		return b
	}

	clauses := make([]string, len(fields))
	args := make([]any, len(fields))
	for i, field := range fields {
		clauses[i] = fmt.Sprintf("%s = $%%d", b.projection.Column(field))
		args[i] = value
	}

	b.conditions = append(b.conditions, condition{
		clause: "(" + strings.Join(clauses, " OR ") + ")",
		args:   args,
	})
	return b
}

// WhereAnyIn matches rows where any of fields is one of values.
func (b *Builder) WhereAnyIn(values []any, fields ...string) *Builder {
	if len(values) == 0 || len(fields) == 0 {
		return b
	}

	clauses := make([]string, len(fields))
	args := make([]any, 0, len(values)*len(fields))
	for i, field := range fields {
		clauses[i] = inClause(b.projection.Column(field), len(values))
		args = append(args, values...)
	}

	b.conditions = append(b.conditions, condition{
		clause: "(" + strings.Join(clauses, " OR ") + ")",
		args:   args,
	})
	return b
}

func inClause(col string, n int) string {
	placeholders := make([]string, n)
	for i := range placeholders {
		placeholders[i] = "$%d"
	}
	return fmt.Sprintf("%s IN (%s)", col, strings.Join(placeholders, ", "))
}

func (b *Builder) buildOrderBy() string {
	if b.sort == "" {
		return ""
	}
	return fmt.Sprintf(" ORDER BY %s ASC", b.projection.Column(b.sort))
}

func (b *Builder) buildWhere() (string, []any) {
	if len(b.conditions) == 0 {
		return "", nil
	}

	clauses := make([]string, 0, len(b.conditions))
	args := make([]any, 0)
	paramIdx := 1

	for _, cond := range b.conditions {
		clause := cond.clause
		for _, arg := range cond.args {
			clause = strings.Replace(clause, "$%d", fmt.Sprintf("$%d", paramIdx), 1)
			args = append(args, arg)
			paramIdx++
		}
		clauses = append(clauses, clause)
	}

	return " WHERE " + strings.Join(clauses, " AND "), args
}
