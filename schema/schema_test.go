package schema_test

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/pgmodel"
	"github.com/syssam/pgmodel/schema"
)

type status string

func (s status) String() string    { return string(s) }
func (status) EnumType() string    { return "status" }
func (s status) EnumValue() string { return string(s) }

func parseStatus(v string) (status, error) {
	switch v {
	case "active", "closed":
		return status(v), nil
	default:
		return "", pgmodel.NewInvalidEnumValueError("status", v)
	}
}

func TestNewTable(t *testing.T) {
	tbl := schema.NewTable("public", "accounts")
	assert.Equal(t, "public", tbl.Schema())
	assert.Equal(t, "accounts", tbl.Name())
	assert.Equal(t, "public.accounts", tbl.String())

	require.NotNil(t, tbl.ID())
	assert.Equal(t, schema.IDColumn, tbl.ID().Name())
	assert.Equal(t, "int4", tbl.ID().SQLType())

	cols := tbl.Columns()
	require.Len(t, cols, 1)
	assert.Equal(t, "id", cols[0].Name())
}

func TestColumns(t *testing.T) {
	tbl := schema.NewTable("public", "accounts")
	name := schema.Varchar(tbl, "name", 64)
	owner := schema.Reference(tbl, "owner_id", "users")
	st := schema.Enum(tbl, "status", "status", parseStatus)
	note := schema.Nullable(schema.Text(tbl, "note"))

	assert.Equal(t, 64, name.Size())
	assert.Equal(t, schema.KindScalar, name.Kind())
	assert.Equal(t, schema.KindReference, owner.Kind())
	assert.Equal(t, "users", owner.References())
	assert.Equal(t, schema.KindEnum, st.Kind())
	assert.Equal(t, "status", st.SQLType())
	assert.True(t, note.Nullable())
	assert.False(t, name.Nullable())

	var names []string
	for _, c := range tbl.Columns() {
		names = append(names, c.Name())
	}
	assert.Equal(t, []string{"id", "name", "owner_id", "status", "note"}, names)

	// Nullable replaces the column in place.
	assert.True(t, tbl.Column("note").Nullable())
	assert.Nil(t, tbl.Column("missing"))
}

func TestRowChanges(t *testing.T) {
	tbl := schema.NewTable("public", "accounts")
	name := schema.Text(tbl, "name")
	st := schema.Enum(tbl, "status", "status", parseStatus)

	row := schema.NewRow()
	name.Set(row, "first")
	st.Set(row, status("active"))
	name.Set(row, "second")

	assert.Equal(t, "second", name.Get(row))
	assert.Equal(t, []schema.Assignment{
		{Column: "name", Value: "second"},
		{Column: "status", Value: pgmodel.EnumValue{Type: "status", Label: "active"}},
	}, row.Changes())

	row.ClearChanges()
	assert.Empty(t, row.Changes())
	assert.Equal(t, "second", name.Get(row))
}

func TestColumnLookup(t *testing.T) {
	tbl := schema.NewTable("public", "accounts")
	owner := schema.Reference(tbl, "owner_id", "users")
	row := schema.NewRow()

	_, ok := owner.Lookup(row)
	assert.False(t, ok)
	assert.Zero(t, owner.Get(row))

	owner.Set(row, 7)
	id, ok := owner.Lookup(row)
	assert.True(t, ok)
	assert.Equal(t, int32(7), id)
}

func TestNullable(t *testing.T) {
	tbl := schema.NewTable("public", "accounts")
	note := schema.Nullable(schema.Text(tbl, "note"))

	row := schema.NewRow()
	assert.Nil(t, note.Get(row))

	note.Set(row, nil)
	assert.Equal(t, []schema.Assignment{{Column: "note", Value: nil}}, row.Changes())

	v := "hello"
	note.Set(row, &v)
	require.NotNil(t, note.Get(row))
	assert.Equal(t, "hello", *note.Get(row))
	assert.Equal(t, "hello", row.Changes()[0].Value)
}

func TestDefaultValue(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	tbl := schema.NewTable("public", "events")
	created := schema.Timestamptz(tbl, "created_at").WithDefault(func() time.Time { return now })
	title := schema.Text(tbl, "title")

	v, ok := created.DefaultValue()
	assert.True(t, ok)
	assert.Equal(t, now, v)

	_, ok = title.DefaultValue()
	assert.False(t, ok)

	nc := schema.Nullable(schema.Timestamptz(tbl, "seen_at").WithDefault(func() time.Time { return now }))
	v, ok = nc.DefaultValue()
	assert.True(t, ok)
	assert.Equal(t, now, v)
}

func TestTableLoad(t *testing.T) {
	tbl := schema.NewTable("public", "accounts")
	key := schema.UUID(tbl, "key")
	name := schema.Varchar(tbl, "name", 0)
	balance := schema.MonetaryAmount(tbl, "balance")
	ttl := schema.Interval(tbl, "ttl")
	big := schema.BigInt(tbl, "views")
	active := schema.Bool(tbl, "active")
	tz := schema.Timezone(tbl, "zone")
	st := schema.Enum(tbl, "status", "status", parseStatus)
	note := schema.Nullable(schema.Text(tbl, "note"))
	owner := schema.Reference(tbl, "owner_id", "users")

	id := uuid.New()
	row := schema.NewRow()
	err := tbl.Load(row, map[string]any{
		"id":       int64(3),
		"key":      id.String(),
		"name":     []byte("alice"),
		"balance":  "(12.50,USD)",
		"ttl":      "1 day 01:30:00",
		"views":    int64(1 << 40),
		"active":   true,
		"zone":     "UTC",
		"status":   "closed",
		"note":     nil,
		"owner_id": int64(9),
		"name_t":   "ignored",
	})
	require.NoError(t, err)

	assert.Equal(t, int32(3), tbl.ID().Get(row))
	assert.Equal(t, id, key.Get(row))
	assert.Equal(t, "alice", name.Get(row))
	assert.Equal(t, schema.Money{Amount: "12.50", Currency: "USD"}, balance.Get(row))
	assert.Equal(t, 25*time.Hour+30*time.Minute, ttl.Get(row))
	assert.Equal(t, int64(1<<40), big.Get(row))
	assert.True(t, active.Get(row))
	assert.Equal(t, time.UTC, tz.Get(row))
	assert.Equal(t, status("closed"), st.Get(row))
	assert.Nil(t, note.Get(row))
	assert.Equal(t, int32(9), owner.Get(row))
	assert.Empty(t, row.Changes())
}

func TestTableLoadErrors(t *testing.T) {
	tests := []struct {
		name   string
		values map[string]any
		is     error
	}{
		{name: "invalid enum", values: map[string]any{"status": "gone"}, is: pgmodel.ErrInvalidEnumValue},
		{name: "null into non-nullable", values: map[string]any{"title": nil}},
		{name: "int4 overflow", values: map[string]any{"id": int64(1) << 40}},
		{name: "wrong type", values: map[string]any{"title": 3.5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tbl := schema.NewTable("public", "posts")
			schema.Text(tbl, "title")
			schema.Enum(tbl, "status", "status", parseStatus)

			err := tbl.Load(schema.NewRow(), tt.values)
			require.Error(t, err)
			assert.True(t, pgmodel.IsDecodeError(err))
			assert.True(t, errors.Is(err, pgmodel.ErrDecode))
			if tt.is != nil {
				assert.True(t, errors.Is(err, tt.is))
			}
		})
	}
}

func TestParseInterval(t *testing.T) {
	tests := []struct {
		input    string
		expected time.Duration
	}{
		{"00:00:00", 0},
		{"01:02:03", time.Hour + 2*time.Minute + 3*time.Second},
		{"-00:30:00", -30 * time.Minute},
		{"1 day", 24 * time.Hour},
		{"3 days 00:00:01.5", 72*time.Hour + 1500*time.Millisecond},
		{"1 day -01:00:00", 23 * time.Hour},
		{"1 mon", 30 * 24 * time.Hour},
		{"1 year 2 mons 3 days 04:05:06", (360+60+3)*24*time.Hour + 4*time.Hour + 5*time.Minute + 6*time.Second},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			d, err := schema.ParseInterval(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, d)
		})
	}

	for _, bad := range []string{"", "abc", "1", "1:2", "x days 01:00:00"} {
		_, err := schema.ParseInterval(bad)
		assert.Error(t, err, bad)
	}
}

func TestTimestamptzLoad(t *testing.T) {
	want := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		name  string
		value any
	}{
		{name: "time", value: want},
		{name: "postgres text", value: "2024-01-01 12:00:00+00"},
		{name: "postgres text with offset", value: []byte("2024-01-01 14:00:00+02")},
		{name: "fractional seconds", value: "2024-01-01 12:00:00.000+00"},
		{name: "rfc3339", value: "2024-01-01T12:00:00Z"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tbl := schema.NewTable("public", "events")
			at := schema.Timestamptz(tbl, "at")
			row := schema.NewRow()
			require.NoError(t, tbl.Load(row, map[string]any{"at": tt.value}))
			assert.True(t, want.Equal(at.Get(row)), at.Get(row).String())
		})
	}

	tbl := schema.NewTable("public", "events")
	schema.Timestamptz(tbl, "at")
	for _, bad := range []any{"yesterday", "infinity", 42} {
		err := tbl.Load(schema.NewRow(), map[string]any{"at": bad})
		assert.True(t, pgmodel.IsDecodeError(err), "%v", bad)
	}
}

func TestIntervalEncoding(t *testing.T) {
	tbl := schema.NewTable("public", "jobs")
	ttl := schema.Interval(tbl, "ttl")
	assert.Equal(t, schema.Assignment{Column: "ttl", Value: "90000000 microseconds"}, ttl.To(90*time.Second))
}

func TestParseMoney(t *testing.T) {
	m, err := schema.ParseMoney(`("12.50",EUR)`)
	require.NoError(t, err)
	assert.Equal(t, schema.Money{Amount: "12.50", Currency: "EUR"}, m)
	assert.Equal(t, "(12.50,EUR)", m.String())

	for _, bad := range []string{"", "12.50,EUR", "(12.50)", "(1,2,3)"} {
		_, err := schema.ParseMoney(bad)
		assert.Error(t, err, bad)
	}
}

func TestOptional(t *testing.T) {
	tbl := schema.NewTable("public", "users")
	zone := schema.Optional(schema.Timezone(tbl, "zone"))
	assert.True(t, zone.Nullable())
	assert.True(t, tbl.Column("zone").Nullable())

	row := schema.NewRow()
	require.NoError(t, tbl.Load(row, map[string]any{"zone": nil}))
	assert.Nil(t, zone.Get(row))

	zone.Set(row, nil)
	assert.Equal(t, []schema.Assignment{{Column: "zone", Value: nil}}, row.Changes())
}
