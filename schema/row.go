package schema

import "slices"

// Assignment is a pending column write.
type Assignment struct {
	Column string
	Value  any
}

// Row holds the values of a single record and the assignments made to it
// since it was created.
type Row struct {
	values  map[string]any
	changes []Assignment
}

// NewRow returns an empty row.
func NewRow() *Row {
	return &Row{values: make(map[string]any)}
}

// Changes returns the pending assignments in the order their columns were
// first set. Setting a column twice keeps only the last value.
func (r *Row) Changes() []Assignment {
	return slices.Clone(r.changes)
}

// ClearChanges drops all pending assignments and keeps the values.
func (r *Row) ClearChanges() {
	r.changes = nil
}

// Has reports whether the row holds a value for the column.
func (r *Row) Has(column string) bool {
	_, ok := r.values[column]
	return ok
}

func (r *Row) load(column string, v any) {
	if r.values == nil {
		r.values = make(map[string]any)
	}
	r.values[column] = v
}

func (r *Row) set(column string, v, encoded any) {
	r.load(column, v)
	for i := range r.changes {
		if r.changes[i].Column == column {
			r.changes[i].Value = encoded
			return
		}
	}
	r.changes = append(r.changes, Assignment{Column: column, Value: encoded})
}
