// Package typescript emits TypeScript type definitions and runtime table
// descriptors from schema tables, and links foreign-key references between
// them once every table has been emitted.
//
// Emission produces a Unit per table. Foreign keys inside a Unit start as
// Unresolved references naming only the target table; Link rewrites them to
// Resolved references against a Registry built after all tables were emitted.
// Render serializes a Unit to source text.
package typescript

import "github.com/tordrt/schemats/internal/naming"

// Registry maps a raw table name to the identifiers generated for it.
type Registry map[string]naming.NameTriple

// TypeRef is either Resolved or Unresolved.
type TypeRef interface {
	typeRef()
}

// Resolved references a generated table type by name.
type Resolved struct {
	Type string
}

// Unresolved references a table whose generated type is not known yet.
type Unresolved struct {
	Table string
}

func (Resolved) typeRef()   {}
func (Unresolved) typeRef() {}

// Field is one property of a generated interface.
type Field struct {
	Key      string
	Type     string
	Nullable bool
	// Optional marks the field optional in the insert shape.
	Optional bool
	Comment  string
}

// ForeignKeyEntry describes one foreign-key column of a table.
type ForeignKeyEntry struct {
	Column       string
	Table        string
	TargetColumn string
	Ref          TypeRef
}

// Unit is the emitted form of one table.
type Unit struct {
	RawName       string
	QualifiedName string
	Names         naming.NameTriple

	Fields            []Field
	Columns           []string
	RequiredForInsert []string
	// PrimaryKey is empty when the table has no primary key.
	PrimaryKey  []string
	ForeignKeys []ForeignKeyEntry
}
