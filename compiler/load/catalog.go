package load

import (
	"context"
	"database/sql"
	"strings"
)

// Querier is the read-only subset of *sql.DB used by the Reader.
type Querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

// EnumValue is one label of a database enum type.
type EnumValue struct {
	TypeName string
	Value    string
}

// Column is a column of a table as reported by the catalog.
type Column struct {
	Name     string
	TypeName string // normalized, see NormalizeTypeName
	Nullable bool
	Size     *int // character length or numeric precision
}

// Table is a table with its columns and single-column foreign keys.
type Table struct {
	Schema      string
	Name        string
	Columns     []Column
	ForeignKeys map[string]string // local column -> referenced table
}

// excludedPrefix marks tables owned by the migration tool.
const excludedPrefix = "flyway"

const (
	enumsQuery = `SELECT t.typname, e.enumlabel
FROM pg_type t
JOIN pg_enum e ON t.oid = e.enumtypid
ORDER BY t.typname, e.enumsortorder`

	tablesQuery = `SELECT table_name
FROM information_schema.tables
WHERE table_schema = $1 AND table_type = 'BASE TABLE'
ORDER BY table_name`

	columnsQuery = `SELECT c.column_name,
	CASE WHEN COALESCE(c.domain_schema, c.udt_schema) = 'pg_catalog'
		THEN COALESCE(c.domain_name, c.udt_name)
		ELSE quote_ident(COALESCE(c.domain_schema, c.udt_schema)) || '.' || quote_ident(COALESCE(c.domain_name, c.udt_name))
	END AS type_name,
	c.is_nullable = 'YES' AS nullable,
	COALESCE(c.character_maximum_length, c.numeric_precision) AS size
FROM information_schema.columns c
WHERE c.table_schema = $1 AND c.table_name = $2
ORDER BY c.ordinal_position`

	foreignKeysQuery = `SELECT a.attname, rc.relname
FROM pg_constraint c
JOIN pg_class cl ON cl.oid = c.conrelid
JOIN pg_namespace n ON n.oid = cl.relnamespace
JOIN pg_class rc ON rc.oid = c.confrelid
JOIN pg_attribute a ON a.attrelid = c.conrelid AND a.attnum = c.conkey[1]
WHERE c.contype = 'f' AND array_length(c.conkey, 1) = 1
	AND n.nspname = $1 AND cl.relname = $2
ORDER BY a.attname`
)

// Reader reads the catalog through a Querier.
type Reader struct {
	q Querier
}

// NewReader returns a Reader over q.
func NewReader(q Querier) *Reader {
	return &Reader{q: q}
}

// Enums returns the labels of every enum type, ordered by type name and
// then by the declared sort order of the labels.
func (r *Reader) Enums(ctx context.Context) ([]EnumValue, error) {
	rows, err := r.q.QueryContext(ctx, enumsQuery)
	if err != nil {
		return nil, NewCatalogError("enums", "", "", err)
	}
	defer rows.Close()

	var values []EnumValue
	for rows.Next() {
		var v EnumValue
		if err := rows.Scan(&v.TypeName, &v.Value); err != nil {
			return nil, NewCatalogError("enums", "", "", err)
		}
		values = append(values, v)
	}
	if err := rows.Err(); err != nil {
		return nil, NewCatalogError("enums", "", "", err)
	}
	return values, nil
}

// Tables returns the base tables of schema ordered by name. Tables of the
// migration tool (prefixed with "flyway") are skipped.
func (r *Reader) Tables(ctx context.Context, schema string) ([]string, error) {
	rows, err := r.q.QueryContext(ctx, tablesQuery, schema)
	if err != nil {
		return nil, NewCatalogError("tables", schema, "", err)
	}
	defer rows.Close()

	var tables []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, NewCatalogError("tables", schema, "", err)
		}
		if strings.HasPrefix(name, excludedPrefix) {
			continue
		}
		tables = append(tables, name)
	}
	if err := rows.Err(); err != nil {
		return nil, NewCatalogError("tables", schema, "", err)
	}
	return tables, nil
}

// Columns returns the columns of schema.table in ordinal order.
func (r *Reader) Columns(ctx context.Context, schema, table string) ([]Column, error) {
	rows, err := r.q.QueryContext(ctx, columnsQuery, schema, table)
	if err != nil {
		return nil, NewCatalogError("columns", schema, table, err)
	}
	defer rows.Close()

	var columns []Column
	for rows.Next() {
		var (
			c    Column
			size sql.NullInt64
		)
		if err := rows.Scan(&c.Name, &c.TypeName, &c.Nullable, &size); err != nil {
			return nil, NewCatalogError("columns", schema, table, err)
		}
		c.TypeName = NormalizeTypeName(c.TypeName)
		if size.Valid {
			n := int(size.Int64)
			c.Size = &n
		}
		columns = append(columns, c)
	}
	if err := rows.Err(); err != nil {
		return nil, NewCatalogError("columns", schema, table, err)
	}
	return columns, nil
}

// ForeignKeys returns the single-column foreign keys of schema.table as a
// map from the local column to the referenced table name.
func (r *Reader) ForeignKeys(ctx context.Context, schema, table string) (map[string]string, error) {
	rows, err := r.q.QueryContext(ctx, foreignKeysQuery, schema, table)
	if err != nil {
		return nil, NewCatalogError("foreign keys", schema, table, err)
	}
	defer rows.Close()

	fks := make(map[string]string)
	for rows.Next() {
		var column, ref string
		if err := rows.Scan(&column, &ref); err != nil {
			return nil, NewCatalogError("foreign keys", schema, table, err)
		}
		fks[column] = ref
	}
	if err := rows.Err(); err != nil {
		return nil, NewCatalogError("foreign keys", schema, table, err)
	}
	return fks, nil
}

// Table reads the columns and foreign keys of schema.name.
func (r *Reader) Table(ctx context.Context, schema, name string) (*Table, error) {
	columns, err := r.Columns(ctx, schema, name)
	if err != nil {
		return nil, err
	}
	fks, err := r.ForeignKeys(ctx, schema, name)
	if err != nil {
		return nil, err
	}
	return &Table{Schema: schema, Name: name, Columns: columns, ForeignKeys: fks}, nil
}

// NormalizeTypeName strips quotes and the schema qualifier from a type
// name: `"billing"."monetary_amount"` becomes "monetary_amount".
func NormalizeTypeName(name string) string {
	name = strings.ReplaceAll(name, `"`, "")
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		name = name[i+1:]
	}
	return name
}
