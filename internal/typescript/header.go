package typescript

import (
	"sort"
	"strings"
)

// Header returns the generated-file header comment. It carries no timestamp
// so regenerating an unchanged schema gives identical output.
func Header(version, schemaName string, tables []string) string {
	var b strings.Builder
	b.WriteString("/* eslint-disable */\n")
	b.WriteString("/**\n")
	b.WriteString(" * AUTO-GENERATED FILE - DO NOT EDIT!\n")
	b.WriteString(" *\n")
	b.WriteString(" * This file was automatically generated by schemats")
	if version != "" {
		b.WriteString(" " + commentLine(version))
	}
	b.WriteString("\n")
	if schemaName != "" {
		b.WriteString(" * Schema: " + commentLine(schemaName) + "\n")
	}
	if len(tables) > 0 {
		b.WriteString(" * Tables: " + commentLine(strings.Join(tables, ", ")) + "\n")
	}
	b.WriteString(" */\n")
	return b.String()
}

// Prelude declares the helper types that generated tables refer to.
func Prelude() string {
	return "export type " + JSONType + " = unknown;\n"
}

// Imports renders one import statement pulling names from file. Names are
// sorted. It returns "" when there is nothing to import.
func Imports(names map[string]struct{}, file string) string {
	if len(names) == 0 || file == "" {
		return ""
	}
	sorted := make([]string, 0, len(names))
	for name := range names {
		sorted = append(sorted, name)
	}
	sort.Strings(sorted)
	return "import { " + strings.Join(sorted, ", ") + " } from " + StringLiteral(file) + ";\n"
}

// TablesIndex exports every table descriptor under its variable name.
func TablesIndex(vars []string) string {
	if len(vars) == 0 {
		return "export const tables = {} as const;\n"
	}
	var b strings.Builder
	b.WriteString("export const tables = {\n")
	for _, v := range vars {
		b.WriteString("  " + v + ",\n")
	}
	b.WriteString("} as const;\n")
	return b.String()
}
