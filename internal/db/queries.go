package db

import (
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
)

// Query is a SQL statement plus its bound arguments.
type Query struct {
	SQL  string
	Args []any
}

// TablesInSchemaQuery lists the tables and views of a schema.
func TablesInSchemaQuery(schema string) Query {
	return Query{
		SQL: `SELECT table_name, 'TABLE' AS table_or_view
FROM information_schema.tables
WHERE table_schema = $1 AND table_type = 'BASE TABLE'
UNION
SELECT table_name, 'VIEW' AS table_or_view
FROM information_schema.views
WHERE table_schema = $1`,
		Args: []any{schema},
	}
}

// ColumnsOfTableQuery lists the column names and types of a table.
func ColumnsOfTableQuery(schema, table string) Query {
	return Query{
		SQL: `SELECT c.column_name, c.udt_name AS dtype
FROM information_schema.columns c
WHERE c.table_schema = $1 AND c.table_name = $2`,
		Args: []any{schema, table},
	}
}

// RowCountQuery counts the rows of a table. Schema and table are identifiers
// and cannot be bound as parameters, so they are quoted via pgx.
func RowCountQuery(schema, table string) Query {
	ident := pgx.Identifier{schema, table}.Sanitize()
	return Query{SQL: fmt.Sprintf("SELECT count(*) FROM %s", ident)}
}

// SelectOptions tune a generic select.
type SelectOptions struct {
	// Clause is an optional WHERE clause, supplied verbatim including the
	// WHERE keyword.
	Clause string

	// Limit caps the number of rows; zero means no limit.
	Limit int

	// Random samples roughly a tenth of rows.
	Random bool
}

// SelectQuery builds a generic SELECT * with optional clause, sampling, and limit.
func SelectQuery(schema, table string, opts SelectOptions) Query {
	ident := pgx.Identifier{schema, table}.Sanitize()

	var b strings.Builder
	fmt.Fprintf(&b, "SELECT *\nFROM %s", ident)

	if opts.Clause != "" {
		b.WriteString("\n")
		b.WriteString(opts.Clause)
		if opts.Random {
			b.WriteString(" AND RANDOM() < 0.1")
		}
	} else if opts.Random {
		b.WriteString("\nWHERE RANDOM() < 0.1")
	}

	query := Query{}
	if opts.Limit > 0 {
		b.WriteString("\nLIMIT $1")
		query.Args = append(query.Args, opts.Limit)
	}

	query.SQL = b.String()
	return query
}
