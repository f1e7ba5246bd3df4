package typescript

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tordrt/schemats/internal/naming"
	"github.com/tordrt/schemats/internal/options"
	"github.com/tordrt/schemats/internal/schema"
)

const unlinkedCode = `
const table_with_foreign_key = {
  tableName: 'table_with_foreign_key',
  columns: ['id', 'user_id', 'sentiment'],
  requiredForInsert: ['id', 'user_id', 'sentiment'],
  primaryKey: 'id',
  foreignKeys: {user_id: { table: 'other_table', column: 'id', $type: null as unknown /* other_table */ },},
  $type: null as unknown as TableWithForeignKey,
  $input: null as unknown as TableWithForeignKeyInput
} as const;
`

var otherTable = Registry{
	"other_table": {Var: "other_table", Type: "OtherTable", Input: "OtherTableInput"},
}

func TestAttachJoinTypes(t *testing.T) {
	t.Run("attaches known tables", func(t *testing.T) {
		expected := `
const table_with_foreign_key = {
  tableName: 'table_with_foreign_key',
  columns: ['id', 'user_id', 'sentiment'],
  requiredForInsert: ['id', 'user_id', 'sentiment'],
  primaryKey: 'id',
  foreignKeys: {user_id: { table: 'other_table', column: 'id', $type: null as unknown as OtherTable },},
  $type: null as unknown as TableWithForeignKey,
  $input: null as unknown as TableWithForeignKeyInput
} as const;
`
		assert.Equal(t, expected, AttachJoinTypes(unlinkedCode, otherTable))
	})

	t.Run("leaves unmatched types alone", func(t *testing.T) {
		assert.Equal(t, unlinkedCode, AttachJoinTypes(unlinkedCode, Registry{}))
		assert.Equal(t, unlinkedCode, AttachJoinTypes(unlinkedCode, Registry{
			"unrelated": {Var: "unrelated", Type: "Unrelated", Input: "UnrelatedInput"},
		}))
	})

	t.Run("idempotent", func(t *testing.T) {
		once := AttachJoinTypes(unlinkedCode, otherTable)
		assert.Equal(t, once, AttachJoinTypes(once, otherTable))
	})

	t.Run("order independent", func(t *testing.T) {
		text := "a: null as unknown /* users */, b: null as unknown /* groups */"
		users := Registry{"users": {Type: "Users"}}
		groups := Registry{"groups": {Type: "Groups"}}
		both := Registry{"users": {Type: "Users"}, "groups": {Type: "Groups"}}

		expected := "a: null as unknown as Users, b: null as unknown as Groups"
		assert.Equal(t, expected, AttachJoinTypes(text, both))
		assert.Equal(t, expected, AttachJoinTypes(AttachJoinTypes(text, users), groups))
		assert.Equal(t, expected, AttachJoinTypes(AttachJoinTypes(text, groups), users))
	})

	t.Run("table names with comment terminators", func(t *testing.T) {
		text := placeholder("odd*/name")
		reg := Registry{"odd*/name": {Type: "OddName"}}
		assert.Equal(t, "null as unknown as OddName", AttachJoinTypes(text, reg))
	})
}

func emitForeignKeyTable(t *testing.T) *Unit {
	t.Helper()
	table := schema.Table{
		Name: "table_with_foreign_key",
		Columns: []schema.Column{
			{Name: "id", TSType: "string"},
			{Name: "user_id", TSType: "string", ForeignKey: &schema.ForeignKey{Table: "other_table", Column: "id"}},
			{Name: "group_id", TSType: "string", ForeignKey: &schema.ForeignKey{Table: "missing", Column: "id"}},
		},
		PrimaryKey: []string{"id"},
	}
	unit, _, _ := EmitTable(table.Name, table, "", options.Default())
	return unit
}

func TestLink(t *testing.T) {
	unit := emitForeignKeyTable(t)

	dangling := Link([]*Unit{unit}, otherTable)

	require.Len(t, unit.ForeignKeys, 2)
	assert.Equal(t, Resolved{Type: "OtherTable"}, unit.ForeignKeys[0].Ref)
	assert.Equal(t, Unresolved{Table: "missing"}, unit.ForeignKeys[1].Ref)
	assert.Equal(t, []DanglingReference{
		{FromTable: "table_with_foreign_key", Column: "group_id", Table: "missing"},
	}, dangling)

	out := Render(unit)
	assert.Contains(t, out, "    user_id: { table: 'other_table', column: 'id', $type: null as unknown as OtherTable },\n")
	assert.Contains(t, out, "    group_id: { table: 'missing', column: 'id', $type: null as unknown /* missing */ },\n")
}

func TestLinkMatchesTextLinker(t *testing.T) {
	unlinked := Render(emitForeignKeyTable(t))

	linked := emitForeignKeyTable(t)
	Link([]*Unit{linked}, otherTable)

	assert.Equal(t, AttachJoinTypes(unlinked, otherTable), Render(linked))
}

func TestLinkIdempotent(t *testing.T) {
	unit := emitForeignKeyTable(t)
	Link([]*Unit{unit}, otherTable)
	first := Render(unit)

	dangling := Link([]*Unit{unit}, otherTable)
	assert.Equal(t, first, Render(unit))
	assert.Len(t, dangling, 1)
}

func TestLinkEmptyRegistry(t *testing.T) {
	unit := emitForeignKeyTable(t)
	before := Render(unit)

	dangling := Link([]*Unit{unit}, nil)

	assert.Equal(t, before, Render(unit))
	assert.Len(t, dangling, 2)
}

func TestLinkSortsDanglingReferences(t *testing.T) {
	b, _, _ := EmitTable("b", schema.Table{Columns: []schema.Column{
		{Name: "z", ForeignKey: &schema.ForeignKey{Table: "x", Column: "id"}},
		{Name: "a", ForeignKey: &schema.ForeignKey{Table: "y", Column: "id"}},
	}}, "", options.Default())
	a, _, _ := EmitTable("a", schema.Table{Columns: []schema.Column{
		{Name: "c", ForeignKey: &schema.ForeignKey{Table: "x", Column: "id"}},
	}}, "", options.Default())

	dangling := Link([]*Unit{b, a}, Registry{})

	assert.Equal(t, []DanglingReference{
		{FromTable: "a", Column: "c", Table: "x"},
		{FromTable: "b", Column: "a", Table: "y"},
		{FromTable: "b", Column: "z", Table: "x"},
	}, dangling)
}

func TestLinkSelfReference(t *testing.T) {
	table := schema.Table{
		Name: "employees",
		Columns: []schema.Column{
			{Name: "id", TSType: "number"},
			{Name: "manager_id", TSType: "number", Nullable: true, ForeignKey: &schema.ForeignKey{Table: "employees", Column: "id"}},
		},
	}
	unit, names, _ := EmitTable(table.Name, table, "", options.Default())

	dangling := Link([]*Unit{unit}, Registry{table.Name: names})

	assert.Empty(t, dangling)
	assert.Equal(t, Resolved{Type: "Employees"}, unit.ForeignKeys[0].Ref)
}

func TestRegistryUsesRawNames(t *testing.T) {
	opts := options.Load(options.WithSchemaPrefix(true))
	_, names, _ := EmitTable("users", schema.Table{}, "public", opts)
	reg := Registry{"users": names}

	text := placeholder("users")
	assert.Equal(t, "null as unknown as PublicUsers", AttachJoinTypes(text, reg))
	assert.Equal(t, naming.NameTriple{Type: "PublicUsers", Input: "PublicUsersInput", Var: "public_users"}, names)
}

func TestUnresolvedTables(t *testing.T) {
	text := placeholder("users") + "\n" + placeholder("a*/b") + "\n" + placeholder("users")
	assert.Equal(t, []string{"users", "a*/b"}, UnresolvedTables(text))

	linked := AttachJoinTypes(unlinkedCode, otherTable)
	assert.Empty(t, UnresolvedTables(linked))
	assert.Equal(t, []string{"other_table"}, UnresolvedTables(unlinkedCode))
}

func TestMultiLineTableNames(t *testing.T) {
	table := schema.Table{
		Name: "notes",
		Columns: []schema.Column{
			{Name: "owner_id", TSType: "number", ForeignKey: &schema.ForeignKey{Table: "owner\nrecords", Column: "id"}},
		},
	}
	unit, _, _ := EmitTable(table.Name, table, "", options.Default())
	unlinked := Render(unit)
	reg := Registry{"owner\nrecords": {Type: "OwnerRecords", Input: "OwnerRecordsInput", Var: "owner_records"}}

	assert.Contains(t, unlinked, "$type: null as unknown /* owner records */ },")
	assert.Equal(t, []string{"owner records"}, UnresolvedTables(unlinked))

	linked := AttachJoinTypes(unlinked, reg)
	assert.Contains(t, linked, "$type: null as unknown as OwnerRecords },")
	assert.Empty(t, UnresolvedTables(linked))

	assert.Empty(t, Link([]*Unit{unit}, reg))
	assert.Equal(t, Render(unit), linked)
}
