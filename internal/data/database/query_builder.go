// Package database provides a small list-query builder shared by the
// repositories. Identifiers are sanitized with pgx; values always travel as
// positional parameters.
package database

import (
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
)

type ConditionType string

const (
	Equal ConditionType = "="
	ILike ConditionType = "ILIKE"

	defaultLimit  = -1
	defaultOffset = -1
)

// Condition is a single WHERE predicate on a column.
type Condition struct {
	Field string
	Type  ConditionType
	Value any
}

// WhereCond builds a condition comparing a column against a value.
func WhereCond(field string, condType ConditionType, value any) Condition {
	return Condition{Field: field, Type: condType, Value: value}
}

// ListQueryOptions collects the pieces of a list query.
type ListQueryOptions struct {
	Table      string
	Columns    []string
	Conditions []Condition
	OrderBy    string
	OrderDir   string
	Limit      int
	Offset     int
}

type ListQueryOption func(*ListQueryOptions)

// NewListQueryOptions builds query options for the given table.
func NewListQueryOptions(table string, opts ...ListQueryOption) *ListQueryOptions {
	options := &ListQueryOptions{
		Table:  table,
		Limit:  defaultLimit,
		Offset: defaultOffset,
	}
	for _, opt := range opts {
		opt(options)
	}
	return options
}

// WithColumns sets the columns to select.
func WithColumns(cols ...string) ListQueryOption {
	return func(o *ListQueryOptions) {
		o.Columns = cols
	}
}

// WithCondition adds a single condition.
func WithCondition(cond Condition) ListQueryOption {
	return func(o *ListQueryOptions) {
		o.Conditions = append(o.Conditions, cond)
	}
}

// WithOrderBy sets the ordering column and direction.
func WithOrderBy(column, direction string) ListQueryOption {
	return func(o *ListQueryOptions) {
		o.OrderBy = column
		o.OrderDir = direction
	}
}

// WithLimit sets the limit. Accepts 0.
func WithLimit(limit int) ListQueryOption {
	return func(o *ListQueryOptions) {
		if limit >= 0 {
			o.Limit = limit
		}
	}
}

// WithOffset sets the offset. Accepts 0.
func WithOffset(offset int) ListQueryOption {
	return func(o *ListQueryOptions) {
		if offset >= 0 {
			o.Offset = offset
		}
	}
}

func sanitizeIdentifier(ident string) string {
	return pgx.Identifier{ident}.Sanitize()
}

// BuildListQuery constructs a SQL query string and its arguments from the
// options. It handles SELECT, WHERE, ORDER BY, LIMIT, and OFFSET clauses.
func BuildListQuery(options *ListQueryOptions) (string, []any) {
	if options == nil {
		return "", nil
	}

	var query strings.Builder

	query.WriteString(buildSelectClause(options))
	query.WriteString("FROM ")
	query.WriteString(sanitizeIdentifier(options.Table))

	whereClause, args, paramCount := buildWhereClause(options.Conditions)
	if whereClause != "" {
		query.WriteString(" ")
		query.WriteString(whereClause)
	}

	if options.OrderBy != "" {
		query.WriteString(" ORDER BY ")
		query.WriteString(sanitizeIdentifier(options.OrderBy))
		dir := strings.ToUpper(options.OrderDir)
		if dir == "ASC" || dir == "DESC" {
			query.WriteString(" ")
			query.WriteString(dir)
		}
	}

	if options.Limit != defaultLimit {
		query.WriteString(fmt.Sprintf(" LIMIT $%d", paramCount))
		args = append(args, options.Limit)
		paramCount++
	}
	if options.Offset != defaultOffset {
		query.WriteString(fmt.Sprintf(" OFFSET $%d", paramCount))
		args = append(args, options.Offset)
	}

	return query.String(), args
}

func buildSelectClause(options *ListQueryOptions) string {
	if len(options.Columns) == 0 {
		return "SELECT * "
	}
	cols := make([]string, len(options.Columns))
	for i, col := range options.Columns {
		cols[i] = sanitizeIdentifier(col)
	}
	return fmt.Sprintf("SELECT %s ", strings.Join(cols, ", "))
}

func buildWhereClause(inputConditions []Condition) (string, []any, int) {
	conditions := make([]string, 0, len(inputConditions))
	args := make([]any, 0, len(inputConditions))
	paramCount := 1

	for _, cond := range inputConditions {
		if cond.Field == "" {
			continue
		}
		switch cond.Type {
		case Equal, ILike:
			conditions = append(conditions,
				fmt.Sprintf("%s %s $%d", sanitizeIdentifier(cond.Field), cond.Type, paramCount))
			args = append(args, cond.Value)
			paramCount++
		}
	}

	if len(conditions) == 0 {
		return "", args, paramCount
	}
	return "WHERE " + strings.Join(conditions, " AND "), args, paramCount
}
