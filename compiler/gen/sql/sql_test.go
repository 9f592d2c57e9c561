package sql

import (
	"context"
	"go/parser"
	"go/token"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/pgmodel/compiler/gen"
	"github.com/syssam/pgmodel/compiler/load"
)

func intp(n int) *int { return &n }

var (
	orderStatus = []load.EnumValue{
		{TypeName: "order_status", Value: "pending"},
		{TypeName: "order_status", Value: "shipped"},
	}
	accounts = &load.Table{
		Schema: "billing",
		Name:   "accounts",
		Columns: []load.Column{
			{Name: "id", TypeName: "int4"},
			{Name: "name", TypeName: "varchar", Size: intp(64)},
			{Name: "owner_id", TypeName: "int4"},
		},
		ForeignKeys: map[string]string{"owner_id": "users"},
	}
	users = &load.Table{
		Schema: "billing",
		Name:   "users",
		Columns: []load.Column{
			{Name: "id", TypeName: "int4"},
			{Name: "email", TypeName: "text"},
			{Name: "parent_id", TypeName: "int4", Nullable: true},
		},
		ForeignKeys: map[string]string{"parent_id": "users"},
	}
	invoices = &load.Table{
		Schema: "billing",
		Name:   "invoices",
		Columns: []load.Column{
			{Name: "id", TypeName: "int4"},
			{Name: "amount_c", TypeName: "monetary_amount", Nullable: true},
		},
	}
	orders = &load.Table{
		Schema: "billing",
		Name:   "orders",
		Columns: []load.Column{
			{Name: "id", TypeName: "int4"},
			{Name: "status", TypeName: "order_status"},
			{Name: "previous_status", TypeName: "order_status", Nullable: true},
			{Name: "note", TypeName: "text", Nullable: true},
			{Name: "tz", TypeName: "timezone", Nullable: true},
			{Name: "created_at", TypeName: "timestamptz"},
			{Name: "ref", TypeName: "uuid"},
		},
	}
)

func newTestDialect(t *testing.T, enums []load.EnumValue, tables ...*load.Table) *Dialect {
	t.Helper()
	cfg, err := gen.NewConfig(gen.WithTarget(t.TempDir()))
	require.NoError(t, err)
	g := gen.NewJenniferGenerator(gen.NewGraph(cfg, enums, tables))
	d := NewDialect(g)
	g.WithDialect(d)
	return d
}

func parseSource(t *testing.T, src string) {
	t.Helper()
	_, err := parser.ParseFile(token.NewFileSet(), "", src, parser.AllErrors)
	require.NoError(t, err, src)
}

func TestGenEnum(t *testing.T) {
	d := newTestDialect(t, orderStatus)
	f, err := d.GenEnum(d.helper.Graph().Enum("order_status"))
	require.NoError(t, err)
	src := f.GoString()
	parseSource(t, src)

	assert.Contains(t, src, "type OrderStatus string")
	assert.Contains(t, src, `OrderStatus_PENDING OrderStatus = "pending"`)
	assert.Contains(t, src, `OrderStatus_SHIPPED OrderStatus = "shipped"`)
	assert.Less(t, strings.Index(src, "OrderStatus_PENDING OrderStatus"), strings.Index(src, "OrderStatus_SHIPPED OrderStatus"))
	assert.Contains(t, src, "return []OrderStatus{OrderStatus_PENDING, OrderStatus_SHIPPED}")
	assert.Contains(t, src, "func ParseOrderStatus(v string) (OrderStatus, error)")
	assert.Contains(t, src, `case "pending":`)
	assert.Contains(t, src, "return OrderStatus_PENDING, nil")
	assert.Contains(t, src, `pgmodel.NewInvalidEnumValueError("order_status", v)`)
	assert.Contains(t, src, `var _ pgmodel.Enum = OrderStatus("")`)
}

func TestGenModelAccount(t *testing.T) {
	d := newTestDialect(t, nil, accounts)
	f, err := d.GenModel(d.helper.Graph().Table("accounts"))
	require.NoError(t, err)
	src := f.GoString()
	parseSource(t, src)

	assert.Contains(t, src, "type AccountModel struct")
	assert.Contains(t, src, "func NewAccountModel(id int32) *AccountModel")
	assert.Contains(t, src, "func (m *AccountModel) Name() string")
	assert.Contains(t, src, "func (m *AccountModel) SetName(v string) *AccountModel")
	assert.Contains(t, src, "func (m *AccountModel) Owner() *UserModel")
	assert.Contains(t, src, "func (m *AccountModel) SetOwner(v *UserModel) *AccountModel")
	assert.NotContains(t, src, "func (m *AccountModel) Id(")
	assert.NotContains(t, src, "func (m *AccountModel) OwnerId(")

	assert.Regexp(t, `Name\s+\*schema\.Column\[string\]`, src)
	assert.Regexp(t, `OwnerId\s+\*schema\.Column\[int32\]`, src)
	assert.Contains(t, src, "var AccountTable = newAccountModelTable()")
	assert.Contains(t, src, `schema.NewTable("billing", "accounts")`)
	assert.Contains(t, src, `schema.Varchar(t, "name", 64)`)
	assert.Contains(t, src, `schema.Reference(t, "owner_id", "users")`)

	assert.Contains(t, src, "type AccountDAO struct")
	assert.Contains(t, src, "func (d *AccountDAO) Insert(ctx context.Context, mutate func(*sql.InsertStatement)) (int32, error)")
	assert.Contains(t, src, "func (d *AccountDAO) Update(ctx context.Context, id int32, mutate func(*sql.UpdateStatement)) (int64, error)")
	assert.Contains(t, src, "sql.Update(ctx, d.ex, AccountTable.Table, id, mutate)")
	assert.Contains(t, src, "AccountTable.Table.Load(m.values(), values)")
}

func TestGenModelReferences(t *testing.T) {
	d := newTestDialect(t, nil, accounts, users)

	f, err := d.GenModel(d.helper.Graph().Table("accounts"))
	require.NoError(t, err)
	src := f.GoString()
	assert.Less(t, strings.Index(src, "d.Name = "), strings.Index(src, "d.OwnerId = "))
	assert.Contains(t, src, "if v == nil {\n\t\treturn m\n\t}\n\tAccountTable.OwnerId.Set(m.values(), v.ID)")

	f, err = d.GenModel(d.helper.Graph().Table("users"))
	require.NoError(t, err)
	src = f.GoString()
	parseSource(t, src)
	assert.Regexp(t, `ParentId\s+\*schema\.Column\[\*int32\]`, src)
	assert.Contains(t, src, `schema.Nullable(schema.Reference(t, "parent_id", "users"))`)
	assert.Contains(t, src, "func (m *UserModel) Parent() *UserModel")
	assert.Contains(t, src, "if !ok || id == nil {")
	assert.Contains(t, src, "return NewUserModel(*id)")
	assert.Contains(t, src, "UserTable.ParentId.Set(m.values(), nil)")
	assert.Contains(t, src, "UserTable.ParentId.Set(m.values(), &id)")
}

func TestGenModelExcludedColumn(t *testing.T) {
	d := newTestDialect(t, nil, invoices)
	table := d.helper.Graph().Table("invoices")
	c, ok := table.Column("amount_c").(*gen.ScalarColumn)
	require.True(t, ok)
	assert.True(t, c.Excluded())

	f, err := d.GenModel(table)
	require.NoError(t, err)
	src := f.GoString()
	parseSource(t, src)
	assert.Contains(t, src, "type InvoiceModel struct")
	assert.NotContains(t, src, "AmountC")
	assert.NotContains(t, src, "amount_c")
}

func TestGenModelBindings(t *testing.T) {
	d := newTestDialect(t, orderStatus, orders)
	f, err := d.GenModel(d.helper.Graph().Table("orders"))
	require.NoError(t, err)
	src := f.GoString()
	parseSource(t, src)

	assert.Contains(t, src, `schema.Enum(t, "status", "order_status", ParseOrderStatus)`)
	assert.Contains(t, src, `schema.Nullable(schema.Enum(t, "previous_status", "order_status", ParseOrderStatus))`)
	assert.Contains(t, src, `schema.Nullable(schema.Text(t, "note"))`)
	assert.Contains(t, src, `schema.Optional(schema.Timezone(t, "tz"))`)
	assert.Contains(t, src, `schema.Timestamptz(t, "created_at").WithDefault(time.Now)`)
	assert.Contains(t, src, `schema.UUID(t, "ref")`)

	assert.Contains(t, src, "func (m *OrderModel) Status() OrderStatus")
	assert.Contains(t, src, "func (m *OrderModel) PreviousStatus() *OrderStatus")
	assert.Contains(t, src, "func (m *OrderModel) Note() *string")
	assert.Contains(t, src, "func (m *OrderModel) Tz() *time.Location")
	assert.Contains(t, src, "func (m *OrderModel) CreatedAt() time.Time")
	assert.Contains(t, src, "func (m *OrderModel) Ref() uuid.UUID")
}

func TestGenModelUnsupportedType(t *testing.T) {
	table := &load.Table{
		Schema:  "billing",
		Name:    "payments",
		Columns: []load.Column{{Name: "id", TypeName: "int4"}, {Name: "amount", TypeName: "money"}},
	}
	d := newTestDialect(t, nil, table)
	_, err := d.GenModel(d.helper.Graph().Table("payments"))
	require.Error(t, err)
	assert.True(t, gen.IsUnsupportedTypeError(err))
	assert.Contains(t, err.Error(), `"money"`)
	assert.Contains(t, err.Error(), "payments.amount")
}

func TestGenerate(t *testing.T) {
	d := newTestDialect(t, orderStatus, accounts, invoices, orders)
	g := d.helper.Graph()

	paths, err := Generate(context.Background(), g)
	require.NoError(t, err)
	require.Len(t, paths, 4)
	assert.True(t, strings.HasSuffix(paths[0], "OrderStatus.go"))
	assert.True(t, strings.HasSuffix(paths[1], "AccountModel.go"))
	assert.True(t, strings.HasSuffix(paths[3], "OrderModel.go"))

	first := make(map[string][]byte, len(paths))
	for _, p := range paths {
		data, err := os.ReadFile(p)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(string(data), "// "+gen.GeneratedMarker))
		parseSource(t, string(data))
		first[p] = data
	}

	again, err := Generate(context.Background(), g)
	require.NoError(t, err)
	require.Equal(t, paths, again)
	for _, p := range again {
		data, err := os.ReadFile(p)
		require.NoError(t, err)
		assert.Equal(t, first[p], data, p)
	}
}

func TestGenerateMissingTarget(t *testing.T) {
	_, err := Generate(context.Background(), gen.NewGraph(&gen.Config{}, nil, nil))
	require.Error(t, err)
	assert.True(t, gen.IsConfigError(err))
}
