package typescript

import (
	"strings"
)

// Render serializes u as a table comment, the full and insert interfaces, and
// the runtime descriptor constant.
func Render(u *Unit) string {
	var b strings.Builder

	b.WriteString("// Table ")
	b.WriteString(commentLine(u.QualifiedName))
	b.WriteString("\n")

	writeInterface(&b, u.Names.Type, u.Fields, false)
	writeInterface(&b, u.Names.Input, u.Fields, true)

	b.WriteString("const ")
	b.WriteString(u.Names.Var)
	b.WriteString(" = {\n")
	b.WriteString("  tableName: " + StringLiteral(u.QualifiedName) + ",\n")
	b.WriteString("  columns: " + stringList(u.Columns) + ",\n")
	b.WriteString("  requiredForInsert: " + stringList(u.RequiredForInsert) + ",\n")
	b.WriteString("  primaryKey: " + primaryKey(u.PrimaryKey) + ",\n")
	writeForeignKeys(&b, u.ForeignKeys)
	b.WriteString("  $type: null as unknown as " + u.Names.Type + ",\n")
	b.WriteString("  $input: null as unknown as " + u.Names.Input + ",\n")
	b.WriteString("} as const;\n")

	return b.String()
}

func writeInterface(b *strings.Builder, name string, fields []Field, insert bool) {
	b.WriteString("export interface ")
	b.WriteString(name)
	if len(fields) == 0 {
		b.WriteString(" {}\n")
		return
	}
	b.WriteString(" {\n")
	for _, f := range fields {
		if f.Comment != "" && !insert {
			b.WriteString("  /** ")
			b.WriteString(commentLine(f.Comment))
			b.WriteString(" */\n")
		}
		b.WriteString("  ")
		b.WriteString(propertyKey(f.Key))
		if insert && f.Optional {
			b.WriteString("?")
		}
		b.WriteString(": ")
		b.WriteString(f.Type)
		if f.Nullable {
			b.WriteString(" | null")
		}
		b.WriteString(";\n")
	}
	b.WriteString("}\n")
}

func primaryKey(columns []string) string {
	switch len(columns) {
	case 0:
		return "null"
	case 1:
		return StringLiteral(columns[0])
	default:
		return stringList(columns)
	}
}

func writeForeignKeys(b *strings.Builder, fks []ForeignKeyEntry) {
	if len(fks) == 0 {
		b.WriteString("  foreignKeys: {},\n")
		return
	}
	b.WriteString("  foreignKeys: {\n")
	for _, fk := range fks {
		b.WriteString("    ")
		b.WriteString(propertyKey(fk.Column))
		b.WriteString(": { table: ")
		b.WriteString(StringLiteral(fk.Table))
		b.WriteString(", column: ")
		b.WriteString(StringLiteral(fk.TargetColumn))
		b.WriteString(", $type: ")
		b.WriteString(typeRef(fk.Ref))
		b.WriteString(" },\n")
	}
	b.WriteString("  },\n")
}

func typeRef(ref TypeRef) string {
	switch r := ref.(type) {
	case Resolved:
		return "null as unknown as " + r.Type
	case Unresolved:
		return placeholder(r.Table)
	default:
		return "null as unknown"
	}
}

// placeholder is the textual form of an unresolved join type. The table name
// is flattened onto one line; AttachJoinTypes recognizes exactly this form.
func placeholder(table string) string {
	return "null as unknown /* " + commentLine(table) + " */"
}

// commentLine flattens s onto one line that is safe inside any comment.
func commentLine(s string) string {
	s = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ").Replace(s)
	return commentText(s)
}
