package schema

// Dialect names the database a schema was extracted from.
type Dialect string

const (
	DialectPostgres Dialect = "postgres"
	DialectMySQL    Dialect = "mysql"
	DialectSQLite   Dialect = "sqlite"
)

// Schema represents a complete database schema
type Schema struct {
	Name    string  `yaml:"name" json:"name"`
	Dialect Dialect `yaml:"dialect" json:"dialect"`
	Tables  []Table `yaml:"tables" json:"tables"`
	Enums   []Enum  `yaml:"enums" json:"enums"`
}

// Table represents a database table. Columns keep declaration order.
type Table struct {
	Name       string   `yaml:"name" json:"name"`
	Columns    []Column `yaml:"columns" json:"columns"`
	PrimaryKey []string `yaml:"primary_key" json:"primary_key"`
}

// Column represents a table column
type Column struct {
	Name string `yaml:"name" json:"name"`

	// UDTName is the database type name (udt_name, column_type or declared type).
	UDTName string `yaml:"udt_name" json:"udt_name"`

	// TSType is the resolved TypeScript type. Filled by the type mapper when empty.
	TSType string `yaml:"ts_type" json:"ts_type"`

	Nullable   bool        `yaml:"nullable" json:"nullable"`
	HasDefault bool        `yaml:"has_default" json:"has_default"`
	Comment    string      `yaml:"comment" json:"comment"`
	ForeignKey *ForeignKey `yaml:"foreign_key" json:"foreign_key"`
}

// ForeignKey names the referenced table and column by raw identifier.
// The target is not guaranteed to exist.
type ForeignKey struct {
	Table  string `yaml:"table" json:"table"`
	Column string `yaml:"column" json:"column"`
}

// Enum is a named, ordered list of string literals.
type Enum struct {
	Name   string   `yaml:"name" json:"name"`
	Values []string `yaml:"values" json:"values"`
}

// FindTable returns the table with the given name, or nil.
func (s *Schema) FindTable(name string) *Table {
	for i := range s.Tables {
		if s.Tables[i].Name == name {
			return &s.Tables[i]
		}
	}
	return nil
}
