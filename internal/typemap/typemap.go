// Package typemap maps database column types to TypeScript types.
// The input is case-insensitive. Size specifiers like (10,2) or (255) are
// stripped before matching.
package typemap

import (
	"strings"

	"github.com/tordrt/schemats/internal/naming"
	"github.com/tordrt/schemats/internal/options"
	"github.com/tordrt/schemats/internal/schema"
	"github.com/tordrt/schemats/internal/typescript"
)

// TypeScript type names emitted by the mapper.
const (
	TypeString  = "string"
	TypeNumber  = "number"
	TypeBoolean = "boolean"
	TypeDate    = "Date"
	TypeJSON    = typescript.JSONType
	TypeBuffer  = "Buffer"
	TypeUnknown = "unknown"
)

// Mapper resolves the TypeScript type of columns for one dialect.
type Mapper struct {
	dialect schema.Dialect
	enums   map[string]string // raw enum name -> generated type name
	opts    options.Options
}

// New creates a mapper for the given dialect. Columns whose type names one of
// enums map to that enum's generated type.
func New(dialect schema.Dialect, enums []schema.Enum, opts options.Options) *Mapper {
	m := &Mapper{
		dialect: dialect,
		enums:   make(map[string]string, len(enums)),
		opts:    opts,
	}
	for _, e := range enums {
		m.enums[e.Name] = naming.NormalizeEnumName(e.Name, opts)
	}
	return m
}

// Map returns the TypeScript type for col. An explicit col.TSType wins.
func (m *Mapper) Map(col schema.Column) string {
	if col.TSType != "" {
		return col.TSType
	}
	return m.mapType(col.UDTName)
}

func (m *Mapper) mapType(udt string) string {
	if name, ok := m.enums[udt]; ok {
		return name
	}

	switch m.dialect {
	case schema.DialectMySQL:
		return m.mapMySQL(udt)
	case schema.DialectSQLite:
		return m.mapSQLite(udt)
	default:
		return m.mapPostgres(udt)
	}
}

func (m *Mapper) dateType() string {
	if m.opts.DatesAsStrings {
		return TypeString
	}
	return TypeDate
}

// baseType lowercases t and strips size specifiers and trailing modifiers:
// "VARCHAR(255)" -> "varchar", "int unsigned" -> "int".
func baseType(t string) string {
	t = strings.ToLower(strings.TrimSpace(t))
	if idx := strings.Index(t, "("); idx != -1 {
		t = t[:idx]
	}
	return strings.TrimSpace(t)
}

func (m *Mapper) mapPostgres(udt string) string {
	// udt_name has an underscore prefix for arrays: "_int4" is integer[]
	if strings.HasPrefix(udt, "_") {
		return m.arrayOf(udt[1:])
	}
	if strings.HasSuffix(udt, "[]") {
		return m.arrayOf(strings.TrimSuffix(udt, "[]"))
	}

	switch baseType(udt) {
	case "bpchar", "char", "character", "varchar", "character varying", "text", "citext",
		"uuid", "inet", "cidr", "macaddr", "macaddr8", "time", "timetz",
		"time with time zone", "time without time zone", "interval", "name",
		"tsvector", "tsquery", "xml", "bit", "varbit", "bit varying":
		return TypeString
	case "int2", "int4", "int8", "smallint", "integer", "bigint", "serial", "bigserial",
		"float4", "float8", "real", "double precision", "numeric", "decimal", "money", "oid":
		return TypeNumber
	case "bool", "boolean":
		return TypeBoolean
	case "json", "jsonb":
		return TypeJSON
	case "date", "timestamp", "timestamptz",
		"timestamp with time zone", "timestamp without time zone":
		return m.dateType()
	case "bytea":
		return TypeBuffer
	default:
		return TypeUnknown
	}
}

func (m *Mapper) arrayOf(elem string) string {
	t := m.mapType(elem)
	return t + "[]"
}

func (m *Mapper) mapMySQL(columnType string) string {
	lower := strings.ToLower(strings.TrimSpace(columnType))
	if lower == "tinyint(1)" || lower == "bit(1)" {
		return TypeBoolean
	}
	if strings.HasPrefix(lower, "enum(") {
		if values, err := ParseEnumValues(columnType); err == nil {
			return typescript.UnionOf(values)
		}
		return TypeString
	}

	base := baseType(lower)
	if fields := strings.Fields(base); len(fields) > 0 {
		base = fields[0]
	}

	switch base {
	case "char", "varchar", "text", "tinytext", "mediumtext", "longtext",
		"time", "geometry", "set", "enum":
		return TypeString
	case "integer", "int", "tinyint", "smallint", "mediumint", "bigint",
		"double", "decimal", "numeric", "float", "year", "real":
		return TypeNumber
	case "bool", "boolean":
		return TypeBoolean
	case "json":
		return TypeJSON
	case "date", "datetime", "timestamp":
		return m.dateType()
	case "tinyblob", "mediumblob", "longblob", "blob", "binary", "varbinary", "bit":
		return TypeBuffer
	default:
		return TypeUnknown
	}
}

// mapSQLite follows SQLite's type affinity rules on the declared type.
func (m *Mapper) mapSQLite(declared string) string {
	t := strings.ToUpper(declared)
	switch {
	case t == "":
		return TypeUnknown
	case strings.Contains(t, "INT"):
		return TypeNumber
	case strings.Contains(t, "BOOL"):
		return TypeBoolean
	case strings.Contains(t, "JSON"):
		return TypeJSON
	case strings.Contains(t, "DATE"), strings.Contains(t, "TIME"):
		return m.dateType()
	case strings.Contains(t, "CHAR"), strings.Contains(t, "CLOB"), strings.Contains(t, "TEXT"):
		return TypeString
	case strings.Contains(t, "BLOB"):
		return TypeBuffer
	default:
		return TypeNumber
	}
}
