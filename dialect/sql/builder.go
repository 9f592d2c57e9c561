package sql

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/lib/pq"

	"github.com/syssam/pgmodel"
	"github.com/syssam/pgmodel/schema"
)

// ErrEmptyUpdate is returned when an update has no assignments.
var ErrEmptyUpdate = errors.New("dialect/sql: update without assignments")

// InsertStatement builds an INSERT for a table.
type InsertStatement struct {
	table *schema.Table
	sets  []schema.Assignment
}

// NewInsert returns an insert statement for t.
func NewInsert(t *schema.Table) *InsertStatement {
	return &InsertStatement{table: t}
}

// Set adds assignments. A later assignment to the same column replaces the
// earlier one.
func (s *InsertStatement) Set(as ...schema.Assignment) *InsertStatement {
	s.sets = merge(s.sets, as)
	return s
}

// Query returns the statement and its arguments. Columns that were not set
// and carry a default are added after the assigned ones.
func (s *InsertStatement) Query() (string, []any) {
	sets := slices.Clone(s.sets)
	for _, c := range s.table.Columns() {
		if c.Name() == schema.IDColumn || assigned(sets, c.Name()) {
			continue
		}
		if v, ok := c.DefaultValue(); ok {
			sets = append(sets, schema.Assignment{Column: c.Name(), Value: v})
		}
	}
	var b strings.Builder
	b.WriteString("INSERT INTO ")
	b.WriteString(tableName(s.table))
	if len(sets) == 0 {
		b.WriteString(" DEFAULT VALUES")
	} else {
		cols := make([]string, len(sets))
		params := make([]string, len(sets))
		for i, a := range sets {
			cols[i] = pq.QuoteIdentifier(a.Column)
			params[i] = placeholder(i + 1)
		}
		fmt.Fprintf(&b, " (%s) VALUES (%s)", strings.Join(cols, ", "), strings.Join(params, ", "))
	}
	b.WriteString(" RETURNING ")
	b.WriteString(pq.QuoteIdentifier(schema.IDColumn))
	return b.String(), values(sets)
}

// UpdateStatement builds an UPDATE of a single row identified by its id.
type UpdateStatement struct {
	table *schema.Table
	id    int32
	sets  []schema.Assignment
}

// NewUpdate returns an update statement for the row of t with the given id.
func NewUpdate(t *schema.Table, id int32) *UpdateStatement {
	return &UpdateStatement{table: t, id: id}
}

// Set adds assignments. A later assignment to the same column replaces the
// earlier one.
func (s *UpdateStatement) Set(as ...schema.Assignment) *UpdateStatement {
	s.sets = merge(s.sets, as)
	return s
}

// Empty reports whether the statement has no assignments.
func (s *UpdateStatement) Empty() bool { return len(s.sets) == 0 }

// Query returns the statement and its arguments.
func (s *UpdateStatement) Query() (string, []any) {
	var b strings.Builder
	b.WriteString("UPDATE ")
	b.WriteString(tableName(s.table))
	b.WriteString(" SET ")
	for i, a := range s.sets {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(pq.QuoteIdentifier(a.Column))
		b.WriteString(" = ")
		b.WriteString(placeholder(i + 1))
	}
	b.WriteString(" WHERE ")
	b.WriteString(pq.QuoteIdentifier(schema.IDColumn))
	b.WriteString(" = ")
	b.WriteString(placeholder(len(s.sets) + 1))
	return b.String(), append(values(s.sets), int64(s.id))
}

// Insert builds an insert for t with mutate, executes it and returns the
// id of the new row.
func Insert(ctx context.Context, ex ExecQuerier, t *schema.Table, mutate func(*InsertStatement)) (int32, error) {
	stmt := NewInsert(t)
	if mutate != nil {
		mutate(stmt)
	}
	if err := check(t, stmt.sets); err != nil {
		return 0, pgmodel.NewMutationError(t.Name(), "insert", err)
	}
	query, args := stmt.Query()
	rows, err := ex.QueryContext(ctx, query, args...)
	if err != nil {
		return 0, pgmodel.NewMutationError(t.Name(), "insert", err)
	}
	defer rows.Close()
	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return 0, pgmodel.NewMutationError(t.Name(), "insert", err)
		}
		return 0, pgmodel.NewMutationError(t.Name(), "insert", errors.New("no id returned"))
	}
	var id int32
	if err := rows.Scan(&id); err != nil {
		return 0, pgmodel.NewMutationError(t.Name(), "insert", err)
	}
	return id, rows.Close()
}

// Update builds an update of the row of t with the given id, executes it
// and returns the number of affected rows. An update without assignments
// fails with ErrEmptyUpdate without reaching the database.
func Update(ctx context.Context, ex ExecQuerier, t *schema.Table, id int32, mutate func(*UpdateStatement)) (int64, error) {
	stmt := NewUpdate(t, id)
	if mutate != nil {
		mutate(stmt)
	}
	if stmt.Empty() {
		return 0, pgmodel.NewMutationError(t.Name(), "update", ErrEmptyUpdate)
	}
	if err := check(t, stmt.sets); err != nil {
		return 0, pgmodel.NewMutationError(t.Name(), "update", err)
	}
	query, args := stmt.Query()
	res, err := ex.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, pgmodel.NewMutationError(t.Name(), "update", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, pgmodel.NewMutationError(t.Name(), "update", err)
	}
	return n, nil
}

func check(t *schema.Table, sets []schema.Assignment) error {
	for _, a := range sets {
		if a.Column == schema.IDColumn {
			return fmt.Errorf("column %q cannot be assigned", a.Column)
		}
		if t.Column(a.Column) == nil {
			return fmt.Errorf("unknown column %q", a.Column)
		}
	}
	return nil
}

func merge(sets, as []schema.Assignment) []schema.Assignment {
	for _, a := range as {
		replaced := false
		for i := range sets {
			if sets[i].Column == a.Column {
				sets[i].Value = a.Value
				replaced = true
				break
			}
		}
		if !replaced {
			sets = append(sets, a)
		}
	}
	return sets
}

func assigned(sets []schema.Assignment, column string) bool {
	for _, a := range sets {
		if a.Column == column {
			return true
		}
	}
	return false
}

func values(sets []schema.Assignment) []any {
	args := make([]any, len(sets))
	for i, a := range sets {
		args[i] = a.Value
	}
	return args
}

func tableName(t *schema.Table) string {
	if t.Schema() == "" {
		return pq.QuoteIdentifier(t.Name())
	}
	return pq.QuoteIdentifier(t.Schema()) + "." + pq.QuoteIdentifier(t.Name())
}

func placeholder(i int) string {
	return "$" + strconv.Itoa(i)
}
