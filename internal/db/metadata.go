package db

import (
	"context"
	"fmt"
	"regexp"
	"sort"

	"github.com/jackc/pgx/v5"

	toolbelterrors "toolbelt.dev/toolbelt/internal/errors"
)

// Querier is the slice of pgxpool.Pool the metadata helpers need.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// TableInfo describes one table or view in a schema.
type TableInfo struct {
	Name string
	Kind string // "TABLE" or "VIEW"
}

// ColumnInfo describes one column of a table.
type ColumnInfo struct {
	Name string
	Type string
}

// TablesInSchema returns the tables and views of a schema, sorted by name.
func TablesInSchema(ctx context.Context, q Querier, schema string) ([]TableInfo, error) {
	query := TablesInSchemaQuery(schema)
	rows, err := q.Query(ctx, query.SQL, query.Args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list tables in %q: %w", schema, err)
	}
	defer rows.Close()

	var tables []TableInfo
	for rows.Next() {
		var info TableInfo
		if err := rows.Scan(&info.Name, &info.Kind); err != nil {
			return nil, err
		}
		tables = append(tables, info)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	sort.Slice(tables, func(i, j int) bool { return tables[i].Name < tables[j].Name })
	return tables, nil
}

// SchemaExists reports whether a schema has any tables or views.
func SchemaExists(ctx context.Context, q Querier, schema string) (bool, []TableInfo, error) {
	tables, err := TablesInSchema(ctx, q, schema)
	if err != nil {
		return false, nil, err
	}
	return len(tables) > 0, tables, nil
}

// ColumnsOfTable returns the column names and types of a table.
func ColumnsOfTable(ctx context.Context, q Querier, schema, table string) ([]ColumnInfo, error) {
	query := ColumnsOfTableQuery(schema, table)
	rows, err := q.Query(ctx, query.SQL, query.Args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list columns of %s.%s: %w", schema, table, err)
	}
	defer rows.Close()

	var columns []ColumnInfo
	for rows.Next() {
		var info ColumnInfo
		if err := rows.Scan(&info.Name, &info.Type); err != nil {
			return nil, err
		}
		columns = append(columns, info)
	}
	return columns, rows.Err()
}

// RowCount returns the number of rows in a table.
func RowCount(ctx context.Context, q Querier, schema, table string) (int64, error) {
	query := RowCountQuery(schema, table)
	rows, err := q.Query(ctx, query.SQL, query.Args...)
	if err != nil {
		return 0, fmt.Errorf("failed to count %s.%s: %w", schema, table, err)
	}
	defer rows.Close()

	var count int64
	if !rows.Next() {
		return 0, fmt.Errorf("count query for %s.%s returned no rows", schema, table)
	}
	if err := rows.Scan(&count); err != nil {
		return 0, err
	}
	return count, rows.Err()
}

// TableExists reports whether a table with exactly this name is in the schema.
func TableExists(ctx context.Context, q Querier, schema, table string) (bool, error) {
	tables, err := TablesInSchema(ctx, q, schema)
	if err != nil {
		return false, err
	}
	for _, info := range tables {
		if info.Name == table {
			return true, nil
		}
	}
	return false, nil
}

// FindTableToQuery resolves a base table name to the table that should be
// queried. The exact base name wins when present. Otherwise tables are assumed
// to be generated daily with a date suffix, and the newest base_YYYYMMDD match
// is returned.
func FindTableToQuery(ctx context.Context, q Querier, schema, baseTable string) (string, error) {
	tables, err := TablesInSchema(ctx, q, schema)
	if err != nil {
		return "", err
	}
	if len(tables) == 0 {
		return "", fmt.Errorf("schema %q: %w", schema, toolbelterrors.ErrSchemaNotFound)
	}

	names := make([]string, len(tables))
	for i, info := range tables {
		names[i] = info.Name
	}

	name, ok := latestDatedTable(names, baseTable)
	if !ok {
		return "", toolbelterrors.NewTableNotFoundError(schema, baseTable)
	}
	return name, nil
}

// latestDatedTable picks the table to query from a list of names. The exact
// base name wins; otherwise the lexically greatest base_YYYYMMDD match is
// chosen, which for date suffixes is also the most recent.
func latestDatedTable(names []string, base string) (string, bool) {
	pattern := regexp.MustCompile("^" + regexp.QuoteMeta(base) + `_\d{8}$`)

	best := ""
	for _, name := range names {
		if name == base {
			return name, true
		}
		if pattern.MatchString(name) && name > best {
			best = name
		}
	}
	if best == "" {
		return "", false
	}
	return best, true
}
