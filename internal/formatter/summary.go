package formatter

import (
	"fmt"
	"io"
	"strings"

	"github.com/tordrt/schemats/internal/generator"
	"github.com/tordrt/schemats/internal/naming"
	"github.com/tordrt/schemats/internal/options"
	"github.com/tordrt/schemats/internal/schema"
	"github.com/tordrt/schemats/internal/typemap"
)

// SummaryFormatter prints a compact text view of a schema together with the
// identifiers and types generated for it.
type SummaryFormatter struct {
	writer io.Writer
	opts   options.Options
}

// NewSummaryFormatter creates a new summary formatter
func NewSummaryFormatter(w io.Writer, opts options.Options) *SummaryFormatter {
	return &SummaryFormatter{writer: w, opts: opts.Normalized()}
}

// Format writes one block per table of s. res supplies the generated names
// and dangling foreign keys.
func (f *SummaryFormatter) Format(s *schema.Schema, res *generator.Result) error {
	mapper := typemap.New(s.Dialect, s.Enums, f.opts)

	dangling := make(map[string]struct{}, len(res.Dangling))
	for _, d := range res.Dangling {
		dangling[d.FromTable+"."+d.Column] = struct{}{}
	}

	for i, table := range s.Tables {
		if i > 0 {
			_, _ = fmt.Fprintln(f.writer) // Blank line between tables
		}
		f.formatTable(mapper, table, res, dangling)
	}

	if len(s.Enums) > 0 {
		_, _ = fmt.Fprintln(f.writer)
		for _, e := range s.Enums {
			_, _ = fmt.Fprintf(f.writer, "ENUM %s (%s)\n", e.Name, strings.Join(e.Values, "|"))
		}
	}
	return nil
}

func (f *SummaryFormatter) formatTable(mapper *typemap.Mapper, table schema.Table, res *generator.Result, dangling map[string]struct{}) {
	pkStr := ""
	if len(table.PrimaryKey) > 0 {
		pkStr = fmt.Sprintf(" (PK: %s)", strings.Join(table.PrimaryKey, ", "))
	}
	names := res.Registry[table.Name]
	_, _ = fmt.Fprintf(f.writer, "TABLE %s%s -> %s, %s, %s\n", table.Name, pkStr, names.Type, names.Input, names.Var)

	for _, col := range table.Columns {
		_, unresolved := dangling[table.Name+"."+naming.NormalizeColumnName(col.Name, f.opts)]
		_, _ = fmt.Fprintf(f.writer, "  %s\n", formatColumn(col, mapper.Map(col), unresolved))
	}
}

func formatColumn(col schema.Column, tsType string, unresolved bool) string {
	parts := []string{col.Name + ":", tsType}

	if !col.Nullable {
		parts = append(parts, "NOT NULL")
	}
	if col.HasDefault {
		parts = append(parts, "DEFAULT")
	}
	if fk := col.ForeignKey; fk != nil {
		ref := fmt.Sprintf("-> %s.%s", fk.Table, fk.Column)
		if unresolved {
			ref += " (unresolved)"
		}
		parts = append(parts, ref)
	}

	return strings.Join(parts, " ")
}
