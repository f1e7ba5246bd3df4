// Package naming derives the generated identifiers for tables, columns and
// enums from raw schema names. Every function here is total and deterministic:
// the same input and options always produce the same identifiers.
package naming

import "github.com/tordrt/schemats/internal/options"

// NameTriple holds the three identifiers generated for one table.
type NameTriple struct {
	Type  string `json:"type"`
	Input string `json:"input"`
	Var   string `json:"var"`
}

// QualifiedTableName returns the table name as written in descriptors and
// comments: "schema.table" when schema prefixing is enabled, raw otherwise.
func QualifiedTableName(raw, schema string, opts options.Options) string {
	if opts.PrefixWithSchemaNames && schema != "" {
		return schema + "." + raw
	}
	return raw
}

// baseName is the code-facing form of the table name before casing.
func baseName(raw, schema string, opts options.Options) string {
	if opts.PrefixWithSchemaNames && schema != "" {
		return schema + "_" + raw
	}
	return raw
}

// NormalizeTableName derives the type, insert-type and variable identifiers
// for a table.
//
// Type is always PascalCase. Type and Input get one trailing underscore
// when reserved, so a table never shadows the prelude or a global type. Var is the raw name (camelCased when
// opts.CamelCase is set) with illegal characters replaced. A Var that is a
// reserved word, or that equals Type or Input, gets exactly one trailing
// underscore.
func NormalizeTableName(raw, schema string, opts options.Options) NameTriple {
	opts = opts.Normalized()
	base := baseName(raw, schema, opts)

	typeName := pascal(base)
	if !IsIdentifier(typeName) {
		typeName = sanitize(typeName)
	}
	typeName = GuardIdentifier(typeName)
	input := GuardIdentifier(typeName + opts.InputSuffix)

	v := base
	if opts.CamelCase {
		v = camel(base)
	}
	v = sanitize(v)
	if IsReserved(v) || v == typeName || v == input {
		v += "_"
	}

	return NameTriple{Type: typeName, Input: input, Var: v}
}

// NormalizeColumnName returns the property key for a column. Column names are
// never guarded against reserved words: they only appear as object keys.
func NormalizeColumnName(raw string, opts options.Options) string {
	if opts.CamelCase {
		return camel(raw)
	}
	return raw
}

// NormalizeEnumName returns the type alias name for an enum. The name is
// made a legal, unreserved identifier in both modes.
func NormalizeEnumName(raw string, opts options.Options) string {
	if opts.CamelCase {
		return SafeIdentifier(pascal(raw))
	}
	return SafeIdentifier(raw)
}

// GuardIdentifier appends one underscore to name when it is reserved.
func GuardIdentifier(name string) string {
	if IsReserved(name) {
		return name + "_"
	}
	return name
}

// SafeIdentifier makes name a legal, unreserved binding name.
func SafeIdentifier(name string) string {
	return GuardIdentifier(sanitize(name))
}
