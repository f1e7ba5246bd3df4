package typescript

import (
	"regexp"
	"strings"

	"github.com/tordrt/schemats/internal/naming"
	"github.com/tordrt/schemats/internal/options"
	"github.com/tordrt/schemats/internal/schema"
)

// JSONType is the prelude alias used for json and jsonb columns.
const JSONType = "Json"

// jsonTypeTag matches a JSDoc-style `@type {Name}` annotation in a column comment.
var jsonTypeTag = regexp.MustCompile(`@type\s*\{\s*([A-Za-z_$][\w$]*)\s*\}`)

// EmitTable builds the unit for one table. It returns the unit, the
// identifiers generated for the table, and the set of type names the unit
// imports from opts.JSONTypesFile.
//
// Columns keep their declaration order. Every foreign key starts out
// Unresolved; see Link.
func EmitTable(raw string, table schema.Table, schemaName string, opts options.Options) (*Unit, naming.NameTriple, map[string]struct{}) {
	opts = opts.Normalized()
	names := naming.NormalizeTableName(raw, schemaName, opts)
	imports := make(map[string]struct{})

	unit := &Unit{
		RawName:           raw,
		QualifiedName:     naming.QualifiedTableName(raw, schemaName, opts),
		Names:             names,
		Fields:            make([]Field, 0, len(table.Columns)),
		Columns:           make([]string, 0, len(table.Columns)),
		RequiredForInsert: []string{},
	}

	for _, col := range table.Columns {
		key := naming.NormalizeColumnName(col.Name, opts)
		tsType := col.TSType
		if tsType == "" {
			tsType = "unknown"
		}
		if name, ok := jsonColumnType(col, tsType, opts); ok {
			tsType = name
			imports[name] = struct{}{}
		}

		unit.Fields = append(unit.Fields, Field{
			Key:      key,
			Type:     tsType,
			Nullable: col.Nullable,
			Optional: col.Nullable || col.HasDefault,
			Comment:  col.Comment,
		})
		unit.Columns = append(unit.Columns, key)
		if !col.Nullable && !col.HasDefault {
			unit.RequiredForInsert = append(unit.RequiredForInsert, key)
		}

		if col.ForeignKey != nil {
			unit.ForeignKeys = append(unit.ForeignKeys, ForeignKeyEntry{
				Column:       key,
				Table:        col.ForeignKey.Table,
				TargetColumn: naming.NormalizeColumnName(col.ForeignKey.Column, opts),
				Ref:          Unresolved{Table: col.ForeignKey.Table},
			})
		}
	}

	for _, pk := range table.PrimaryKey {
		unit.PrimaryKey = append(unit.PrimaryKey, naming.NormalizeColumnName(pk, opts))
	}

	return unit, names, imports
}

// jsonColumnType returns the type named by an `@type {Name}` comment tag on a
// JSON column. Tags are only honoured when a JSON types file is configured.
func jsonColumnType(col schema.Column, tsType string, opts options.Options) (string, bool) {
	if opts.JSONTypesFile == "" || tsType != JSONType {
		return "", false
	}
	m := jsonTypeTag.FindStringSubmatch(col.Comment)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// GenerateEnumType renders one union type alias per enum, in input order.
func GenerateEnumType(enums []schema.Enum, opts options.Options) string {
	var b strings.Builder
	for _, e := range enums {
		b.WriteString("export type ")
		b.WriteString(naming.NormalizeEnumName(e.Name, opts))
		b.WriteString(" = ")
		b.WriteString(UnionOf(e.Values))
		b.WriteString(";\n")
	}
	return b.String()
}

// GenerateTableTypes renders a <Type>Fields namespace holding one type alias
// per column.
func GenerateTableTypes(raw string, table schema.Table, schemaName string, opts options.Options) string {
	names := naming.NormalizeTableName(raw, schemaName, opts)

	var b strings.Builder
	b.WriteString("export namespace ")
	b.WriteString(names.Type)
	b.WriteString("Fields {\n")
	for _, col := range table.Columns {
		tsType := col.TSType
		if tsType == "" {
			tsType = "unknown"
		}
		if col.Nullable {
			tsType += " | null"
		}
		alias := naming.SafeIdentifier(naming.NormalizeColumnName(col.Name, opts))
		b.WriteString("  export type ")
		b.WriteString(alias)
		b.WriteString(" = ")
		b.WriteString(tsType)
		b.WriteString(";\n")
	}
	b.WriteString("}\n")
	return b.String()
}

// UnionOf renders values as a union of string literal types, or never when
// values is empty.
func UnionOf(values []string) string {
	if len(values) == 0 {
		return "never"
	}
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = StringLiteral(v)
	}
	return strings.Join(quoted, " | ")
}
