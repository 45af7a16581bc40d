package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"toolbelt.dev/toolbelt/internal/fileutil"
)

// Result is an in-memory query result with stringified values, suitable for
// previews and CSV export.
type Result struct {
	Columns []string
	Rows    [][]string
}

// Empty reports whether the result has no rows.
func (r *Result) Empty() bool {
	return len(r.Rows) == 0
}

// Head returns up to n rows.
func (r *Result) Head(n int) [][]string {
	if n > len(r.Rows) {
		n = len(r.Rows)
	}
	return r.Rows[:n]
}

// WriteCSV writes the result to a CSV file.
func (r *Result) WriteCSV(path string) error {
	return fileutil.WriteCSV(path, r.Columns, r.Rows)
}

// Select runs a generic SELECT against a table and collects the result.
func Select(ctx context.Context, q Querier, schema, table string, opts SelectOptions) (*Result, error) {
	query := SelectQuery(schema, table, opts)
	rows, err := q.Query(ctx, query.SQL, query.Args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s.%s: %w", schema, table, err)
	}
	defer rows.Close()

	return collectResult(rows)
}

func collectResult(rows pgx.Rows) (*Result, error) {
	result := &Result{}
	for _, field := range rows.FieldDescriptions() {
		result.Columns = append(result.Columns, field.Name)
	}

	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			return nil, err
		}
		row := make([]string, len(values))
		for i, value := range values {
			if value == nil {
				continue
			}
			row[i] = fmt.Sprint(value)
		}
		result.Rows = append(result.Rows, row)
	}
	return result, rows.Err()
}
