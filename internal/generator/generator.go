// Package generator drives a full generation run: it emits every table in
// parallel, collects the generated identifiers into a registry once all
// emissions are done, links foreign keys against that registry and
// concatenates the rendered pieces into one TypeScript source file.
package generator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/tordrt/schemats/internal/naming"
	"github.com/tordrt/schemats/internal/options"
	"github.com/tordrt/schemats/internal/schema"
	"github.com/tordrt/schemats/internal/typemap"
	"github.com/tordrt/schemats/internal/typescript"
)

// ErrNilSchema is returned when Generate is called without a schema.
var ErrNilSchema = errors.New("schema is nil")

// Generator turns a schema into TypeScript source.
type Generator struct {
	opts    options.Options
	logger  *slog.Logger
	workers int
	version string
}

// Option configures a Generator.
type Option func(*Generator)

// WithWorkers bounds the number of tables emitted concurrently. Values below
// one are ignored.
func WithWorkers(n int) Option {
	return func(g *Generator) {
		if n > 0 {
			g.workers = n
		}
	}
}

// WithVersion sets the tool version written into the file header.
func WithVersion(version string) Option {
	return func(g *Generator) { g.version = version }
}

// New creates a generator. A nil logger discards all log output.
func New(opts options.Options, logger *slog.Logger, genOpts ...Option) *Generator {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	g := &Generator{
		opts:    opts.Normalized(),
		logger:  logger,
		workers: runtime.GOMAXPROCS(0),
	}
	for _, apply := range genOpts {
		apply(g)
	}
	return g
}

// Result is the output of one run.
type Result struct {
	// Code is the complete generated source.
	Code string
	// Registry maps every raw table name to its generated identifiers.
	Registry typescript.Registry
	// Dangling lists foreign keys whose target table was not generated.
	Dangling []typescript.DanglingReference
	// Imports lists the type names imported from the JSON types file, sorted.
	Imports []string
}

// emission is the output of one table task. Each task owns exactly one slot.
type emission struct {
	unit    *typescript.Unit
	names   naming.NameTriple
	imports map[string]struct{}
	fields  string
}

// Generate emits, links and renders every table and enum of s. Tables keep
// their schema order in the output regardless of emission order.
func (g *Generator) Generate(ctx context.Context, s *schema.Schema) (*Result, error) {
	if s == nil {
		return nil, ErrNilSchema
	}

	mapper := typemap.New(s.Dialect, s.Enums, g.opts)
	slots := make([]emission, len(s.Tables))

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(g.workers)
	for i, table := range s.Tables {
		eg.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
				slots[i] = g.emit(mapper, table, s.Name)
				return nil
			}
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, fmt.Errorf("failed to emit tables: %w", err)
	}

	reg := g.collect(s.Tables, slots)

	units := make([]*typescript.Unit, len(slots))
	imports := make(map[string]struct{})
	for i, slot := range slots {
		units[i] = slot.unit
		for name := range slot.imports {
			imports[name] = struct{}{}
		}
	}

	dangling := typescript.Link(units, reg)
	for _, d := range dangling {
		g.logger.Warn("foreign key references a table that was not generated",
			slog.String("table", d.FromTable),
			slog.String("column", d.Column),
			slog.String("target", d.Table))
	}

	return &Result{
		Code:     g.render(s, slots, imports),
		Registry: reg,
		Dangling: dangling,
		Imports:  sortedNames(imports),
	}, nil
}

func (g *Generator) emit(mapper *typemap.Mapper, table schema.Table, schemaName string) emission {
	mapped := table
	mapped.Columns = make([]schema.Column, len(table.Columns))
	for i, col := range table.Columns {
		col.TSType = mapper.Map(col)
		mapped.Columns[i] = col
	}

	unit, names, imports := typescript.EmitTable(table.Name, mapped, schemaName, g.opts)

	var fields string
	if g.opts.FieldTypes {
		fields = typescript.GenerateTableTypes(table.Name, mapped, schemaName, g.opts)
	}

	g.logger.Debug("emitted table",
		slog.String("table", table.Name),
		slog.String("type", names.Type),
		slog.String("var", names.Var),
		slog.Int("columns", len(unit.Columns)))
	return emission{unit: unit, names: names, imports: imports, fields: fields}
}

// collect builds the registry from the finished emissions. It runs after
// every task has returned and is the only writer of the registry.
func (g *Generator) collect(tables []schema.Table, slots []emission) typescript.Registry {
	reg := make(typescript.Registry, len(slots))
	typeOwners := make(map[string]string, len(slots))
	varOwners := make(map[string]string, len(slots))

	for i, slot := range slots {
		raw := tables[i].Name
		if _, ok := reg[raw]; ok {
			g.logger.Warn("table appears more than once in the schema",
				slog.String("table", raw))
		}
		if owner, ok := typeOwners[slot.names.Type]; ok && owner != raw {
			g.logger.Warn("tables generate the same type name",
				slog.String("type", slot.names.Type),
				slog.String("table", raw),
				slog.String("other_table", owner))
		} else {
			typeOwners[slot.names.Type] = raw
		}
		if owner, ok := varOwners[slot.names.Var]; ok && owner != raw {
			g.logger.Warn("tables generate the same variable name",
				slog.String("var", slot.names.Var),
				slog.String("table", raw),
				slog.String("other_table", owner))
		} else {
			varOwners[slot.names.Var] = raw
		}
		if slot.names.Var != raw {
			g.logger.Debug("table variable renamed",
				slog.String("table", raw),
				slog.String("var", slot.names.Var))
		}
		reg[raw] = slot.names
	}
	return reg
}

func (g *Generator) render(s *schema.Schema, slots []emission, imports map[string]struct{}) string {
	var sections []string

	if g.opts.WriteHeader {
		names := make([]string, len(s.Tables))
		for i, t := range s.Tables {
			names[i] = t.Name
		}
		sections = append(sections, typescript.Header(g.version, s.Name, names))
	}
	if imp := typescript.Imports(imports, g.opts.JSONTypesFile); imp != "" {
		sections = append(sections, imp)
	}
	sections = append(sections, typescript.Prelude())
	if enums := typescript.GenerateEnumType(s.Enums, g.opts); enums != "" {
		sections = append(sections, enums)
	}

	vars := make([]string, len(slots))
	for i, slot := range slots {
		sections = append(sections, typescript.Render(slot.unit))
		if slot.fields != "" {
			sections = append(sections, slot.fields)
		}
		vars[i] = slot.names.Var
	}
	sections = append(sections, typescript.TablesIndex(vars))

	return strings.Join(sections, "\n")
}

func sortedNames(set map[string]struct{}) []string {
	names := make([]string, 0, len(set))
	for name := range set {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
