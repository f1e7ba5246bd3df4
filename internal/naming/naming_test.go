package naming

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tordrt/schemats/internal/options"
)

const testSchema = "testschemaname"

func TestNormalizeTableName(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		opts     options.Options
		expected NameTriple
	}{
		{
			name:     "default options",
			raw:      "tableName",
			opts:     options.Default(),
			expected: NameTriple{Type: "TableName", Input: "TableNameInput", Var: "tableName"},
		},
		{
			name:     "underscores with schema prefix",
			raw:      "table_name",
			opts:     options.Load(options.WithSchemaPrefix(true)),
			expected: NameTriple{Type: "TestschemanameTableName", Input: "TestschemanameTableNameInput", Var: "testschemaname_table_name"},
		},
		{
			name:     "reserved table name",
			raw:      "package",
			opts:     options.Default(),
			expected: NameTriple{Type: "Package", Input: "PackageInput", Var: "package_"},
		},
		{
			name:     "camel case",
			raw:      "table_with_foreign_key",
			opts:     options.Load(options.WithCamelCase(true)),
			expected: NameTriple{Type: "TableWithForeignKey", Input: "TableWithForeignKeyInput", Var: "tableWithForeignKey"},
		},
		{
			name:     "camel case with schema prefix",
			raw:      "user_accounts",
			opts:     options.Load(options.WithCamelCase(true), options.WithSchemaPrefix(true)),
			expected: NameTriple{Type: "TestschemanameUserAccounts", Input: "TestschemanameUserAccountsInput", Var: "testschemanameUserAccounts"},
		},
		{
			name:     "custom input suffix",
			raw:      "users",
			opts:     options.Load(options.WithInputSuffix("Insertable")),
			expected: NameTriple{Type: "Users", Input: "UsersInsertable", Var: "users"},
		},
		{
			name:     "var equal to type",
			raw:      "Users",
			opts:     options.Default(),
			expected: NameTriple{Type: "Users", Input: "UsersInput", Var: "Users_"},
		},
		{
			name:     "illegal characters",
			raw:      "order-items",
			opts:     options.Default(),
			expected: NameTriple{Type: "OrderItems", Input: "OrderItemsInput", Var: "order_items"},
		},
		{
			name:     "leading digit",
			raw:      "2fa_codes",
			opts:     options.Default(),
			expected: NameTriple{Type: "_2FaCodes", Input: "_2FaCodesInput", Var: "_2fa_codes"},
		},
		{
			name:     "table named after the prelude alias",
			raw:      "json",
			opts:     options.Default(),
			expected: NameTriple{Type: "Json_", Input: "Json_Input", Var: "json"},
		},
		{
			name:     "upper case prelude alias",
			raw:      "JSON",
			opts:     options.Default(),
			expected: NameTriple{Type: "Json_", Input: "Json_Input", Var: "JSON"},
		},
		{
			name:     "table named after a global type",
			raw:      "date",
			opts:     options.Load(options.WithCamelCase(true)),
			expected: NameTriple{Type: "Date_", Input: "Date_Input", Var: "date"},
		},
		{
			name:     "empty name",
			raw:      "",
			opts:     options.Default(),
			expected: NameTriple{Type: "_", Input: "_Input", Var: "__"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeTableName(tt.raw, testSchema, tt.opts)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestReservedSuffixIsAppliedOnce(t *testing.T) {
	opts := options.Default()
	for _, raw := range []string{"string", "number", "package", "public", "tables", "class"} {
		t.Run(raw, func(t *testing.T) {
			first := NormalizeTableName(raw, "", opts)
			assert.Equal(t, raw+"_", first.Var)

			second := NormalizeTableName(first.Var, "", opts)
			assert.Equal(t, first.Var, second.Var, "re-normalizing must not add another separator")
		})
	}
}

func TestTypeGuardIsIdempotent(t *testing.T) {
	first := NormalizeTableName("json", "", options.Default())
	second := NormalizeTableName(first.Type, "", options.Default())
	assert.Equal(t, first.Type, second.Type)
	assert.False(t, IsReserved(first.Type))
	assert.False(t, IsReserved(first.Input))
}

func TestNonReservedVarMatchesRaw(t *testing.T) {
	for _, raw := range []string{"users", "order_items", "tableName", "a"} {
		assert.Equal(t, raw, NormalizeTableName(raw, "", options.Default()).Var)
	}
}

func TestNormalizeTableNameIsDeterministic(t *testing.T) {
	opts := options.Load(options.WithCamelCase(true), options.WithSchemaPrefix(true))
	first := NormalizeTableName("audit_log", "public", opts)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, NormalizeTableName("audit_log", "public", opts))
	}
}

func TestQualifiedTableName(t *testing.T) {
	assert.Equal(t, "table_name", QualifiedTableName("table_name", testSchema, options.Default()))
	assert.Equal(t, "testschemaname.table_name",
		QualifiedTableName("table_name", testSchema, options.Load(options.WithSchemaPrefix(true))))
	assert.Equal(t, "table_name",
		QualifiedTableName("table_name", "", options.Load(options.WithSchemaPrefix(true))))
}

func TestNormalizeColumnName(t *testing.T) {
	tests := []struct {
		raw       string
		camelCase bool
		expected  string
	}{
		{"user_id", false, "user_id"},
		{"user_id", true, "userId"},
		{"package", false, "package"},
		{"string", true, "string"},
		{"CreatedAt", true, "createdAt"},
		{"api_v2_key", true, "apiV2Key"},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			opts := options.Load(options.WithCamelCase(tt.camelCase))
			assert.Equal(t, tt.expected, NormalizeColumnName(tt.raw, opts))
		})
	}
}

func TestNormalizeEnumName(t *testing.T) {
	assert.Equal(t, "user_status", NormalizeEnumName("user_status", options.Default()))
	assert.Equal(t, "UserStatus", NormalizeEnumName("user_status", options.Load(options.WithCamelCase(true))))
	assert.Equal(t, "order_state", NormalizeEnumName("order-state", options.Default()))
	assert.Equal(t, "string_", NormalizeEnumName("string", options.Default()))
}

func TestSafeIdentifier(t *testing.T) {
	assert.Equal(t, "_1st", SafeIdentifier("1st"))
	assert.Equal(t, "package_", SafeIdentifier("package"))
	assert.Equal(t, "created_at", SafeIdentifier("created_at"))
}

func TestGuardIdentifier(t *testing.T) {
	assert.Equal(t, "string_", GuardIdentifier("string"))
	assert.Equal(t, "email", GuardIdentifier("email"))
}

func TestSplitWords(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{"table_name", []string{"table", "name"}},
		{"tableName", []string{"table", "Name"}},
		{"XMLParser", []string{"XML", "Parser"}},
		{"api_v2_key", []string{"api", "v", "2", "key"}},
		{"schema.table", []string{"schema", "table"}},
		{"  ", nil},
		{"", nil},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, splitWords(tt.input))
		})
	}
}

func TestPascalAndCamel(t *testing.T) {
	tests := []struct {
		input  string
		pascal string
		camel  string
	}{
		{"table_name", "TableName", "tableName"},
		{"USER_ACCOUNTS", "UserAccounts", "userAccounts"},
		{"XMLParser", "XmlParser", "xmlParser"},
		{"a", "A", "a"},
		{"", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.pascal, pascal(tt.input))
			assert.Equal(t, tt.camel, camel(tt.input))
		})
	}
}

func TestIsIdentifier(t *testing.T) {
	assert.True(t, IsIdentifier("user_id"))
	assert.True(t, IsIdentifier("$type"))
	assert.False(t, IsIdentifier("user-id"))
	assert.False(t, IsIdentifier("1st"))
	assert.False(t, IsIdentifier(""))
}
