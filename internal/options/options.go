// Package options holds the generation options shared by the naming, emitting
// and linking stages. Options are plain values: a run reads them, never mutates them.
package options

// DefaultInputSuffix is appended to a table's type name to form its insert type.
const DefaultInputSuffix = "Input"

// Options configures one generation run.
type Options struct {
	// CamelCase transforms column, enum and variable identifiers to camelCase.
	CamelCase bool `mapstructure:"camel_case" yaml:"camel_case"`

	// DatesAsStrings leaves date, timestamp and timestamptz columns typed as
	// strings rather than Date.
	DatesAsStrings bool `mapstructure:"dates_as_strings" yaml:"dates_as_strings"`

	// WriteHeader prepends the generated-file header comment.
	WriteHeader bool `mapstructure:"write_header" yaml:"write_header"`

	// JSONTypesFile is the module path imported for JSON columns tagged with
	// `@type {Name}` in their column comment. Empty disables the lookup.
	JSONTypesFile string `mapstructure:"json_types_file" yaml:"json_types_file"`

	// PrefixWithSchemaNames prepends the schema name to table identifiers.
	PrefixWithSchemaNames bool `mapstructure:"prefix_with_schema_names" yaml:"prefix_with_schema_names"`

	// InputSuffix names the insert type: <Type><InputSuffix>.
	InputSuffix string `mapstructure:"input_suffix" yaml:"input_suffix"`

	// FieldTypes emits a <Type>Fields namespace with one alias per column.
	FieldTypes bool `mapstructure:"field_types" yaml:"field_types"`
}

// Option overrides a single field of the defaults.
type Option func(*Options)

// Default returns the process-wide default options.
func Default() Options {
	return Options{
		WriteHeader: true,
		InputSuffix: DefaultInputSuffix,
	}
}

// Load returns the defaults with the given overrides applied in order.
func Load(overrides ...Option) Options {
	o := Default()
	for _, apply := range overrides {
		apply(&o)
	}
	return o.normalize()
}

// normalize fills zero values that must never reach the generator.
func (o Options) normalize() Options {
	if o.InputSuffix == "" {
		o.InputSuffix = DefaultInputSuffix
	}
	return o
}

// Normalized returns o with required defaults filled in.
func (o Options) Normalized() Options {
	return o.normalize()
}

// WithCamelCase sets Options.CamelCase.
func WithCamelCase(v bool) Option {
	return func(o *Options) { o.CamelCase = v }
}

// WithDatesAsStrings sets Options.DatesAsStrings.
func WithDatesAsStrings(v bool) Option {
	return func(o *Options) { o.DatesAsStrings = v }
}

// WithHeader sets Options.WriteHeader.
func WithHeader(v bool) Option {
	return func(o *Options) { o.WriteHeader = v }
}

// WithJSONTypesFile sets Options.JSONTypesFile.
func WithJSONTypesFile(path string) Option {
	return func(o *Options) { o.JSONTypesFile = path }
}

// WithSchemaPrefix sets Options.PrefixWithSchemaNames.
func WithSchemaPrefix(v bool) Option {
	return func(o *Options) { o.PrefixWithSchemaNames = v }
}

// WithFieldTypes sets Options.FieldTypes.
func WithFieldTypes(v bool) Option {
	return func(o *Options) { o.FieldTypes = v }
}

// WithInputSuffix sets Options.InputSuffix. An empty suffix falls back to
// DefaultInputSuffix.
func WithInputSuffix(suffix string) Option {
	return func(o *Options) { o.InputSuffix = suffix }
}
