// Package config loads the CLI configuration from defaults, an optional
// schemats.yaml file, SCHEMATS_* environment variables and command-line flags.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/tordrt/schemats/internal/logging"
	"github.com/tordrt/schemats/internal/options"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "SCHEMATS"

var (
	// ErrNoSource is returned when neither a database nor a schema file is configured.
	ErrNoSource = errors.New("one of database or schema_file must be set")
	// ErrConflictingSource is returned when both a database and a schema file are configured.
	ErrConflictingSource = errors.New("database and schema_file are mutually exclusive")
)

// Config is the complete CLI configuration.
type Config struct {
	// Database is a connection URL: postgres://, mysql:// or sqlite://.
	Database string `mapstructure:"database"`
	// SchemaFile is a YAML or JSON schema description used instead of a live database.
	SchemaFile string `mapstructure:"schema_file"`
	// Schema is the database schema to introspect.
	Schema  string   `mapstructure:"schema"`
	Tables  []string `mapstructure:"tables"`
	Exclude []string `mapstructure:"exclude"`

	// Output is the file the generated code is written to. Empty means stdout.
	Output string `mapstructure:"output"`
	// OutputDir receives the generated code and the table registry.
	OutputDir string `mapstructure:"output_dir"`

	Workers int `mapstructure:"workers"`

	Log        logging.Config  `mapstructure:"log"`
	Generation options.Options `mapstructure:"generation"`
}

// flagKeys maps command-line flag names to configuration keys.
var flagKeys = map[string]string{
	"db":               "database",
	"schema-file":      "schema_file",
	"schema":           "schema",
	"tables":           "tables",
	"exclude":          "exclude",
	"output":           "output",
	"output-dir":       "output_dir",
	"workers":          "workers",
	"log-level":        "log.level",
	"log-format":       "log.format",
	"camel-case":       "generation.camel_case",
	"dates-as-strings": "generation.dates_as_strings",
	"json-types-file":  "generation.json_types_file",
	"prefix-schema":    "generation.prefix_with_schema_names",
	"input-suffix":     "generation.input_suffix",
	"field-types":      "generation.field_types",
}

func setDefaults(v *viper.Viper) {
	def := options.Default()

	v.SetDefault("database", "")
	v.SetDefault("schema_file", "")
	v.SetDefault("schema", "")
	v.SetDefault("tables", []string{})
	v.SetDefault("exclude", []string{})
	v.SetDefault("output", "")
	v.SetDefault("output_dir", "")
	v.SetDefault("workers", 0)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("generation.camel_case", def.CamelCase)
	v.SetDefault("generation.dates_as_strings", def.DatesAsStrings)
	v.SetDefault("generation.write_header", def.WriteHeader)
	v.SetDefault("generation.json_types_file", def.JSONTypesFile)
	v.SetDefault("generation.prefix_with_schema_names", def.PrefixWithSchemaNames)
	v.SetDefault("generation.input_suffix", def.InputSuffix)
	v.SetDefault("generation.field_types", def.FieldTypes)
}

// RegisterFlags defines the generation flags on fs. Load reads back the ones
// that were explicitly set.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String("db", "", "Database URL (postgres://, mysql:// or sqlite://)")
	fs.String("schema-file", "", "YAML or JSON schema description to generate from instead of a database")
	fs.StringP("schema", "s", "", "Database schema name (default: public for PostgreSQL, the DSN database for MySQL)")
	fs.StringSliceP("tables", "t", nil, "Tables to generate (comma-separated, default: all)")
	fs.StringSliceP("exclude", "x", nil, "Tables to skip (comma-separated)")
	fs.StringP("output", "o", "", "Output file (default: stdout)")
	fs.StringP("output-dir", "d", "", "Output directory for the generated code and table registry")
	fs.Int("workers", 0, "Tables emitted concurrently (default: GOMAXPROCS)")
	fs.String("log-level", "info", "Log level: debug, info, warn or error")
	fs.String("log-format", "text", "Log format: text or json")
	fs.BoolP("camel-case", "C", false, "Use camelCase for columns, enums and table variables")
	fs.Bool("dates-as-strings", false, "Type date and timestamp columns as string instead of Date")
	fs.Bool("no-header", false, "Do not write the generated-file header")
	fs.String("json-types-file", "", "Module to import @type {Name} tagged JSON column types from")
	fs.Bool("prefix-schema", false, "Prefix table identifiers with the schema name")
	fs.String("input-suffix", options.DefaultInputSuffix, "Suffix of the insert type name")
	fs.Bool("field-types", false, "Emit a <Type>Fields namespace per table")
}

// Load loads configuration with the following precedence:
// 1. Command line flags that were explicitly set
// 2. Environment variables
// 3. Config file (path, or schemats.yaml in the working directory)
// 4. Default values
//
// flags may be nil.
func Load(flags *pflag.FlagSet, path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("schemats")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		if path != "" {
			return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
		}
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if flags != nil {
		bindChangedFlags(v, flags)
	}

	var cfg Config
	if err := v.UnmarshalExact(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg.Generation = cfg.Generation.Normalized()
	return &cfg, nil
}

// bindChangedFlags copies only explicitly-set flags into v, preserving
// precedence: flags > env > file > defaults.
func bindChangedFlags(v *viper.Viper, flags *pflag.FlagSet) {
	flags.Visit(func(f *pflag.Flag) {
		if f.Name == "no-header" {
			noHeader, _ := flags.GetBool(f.Name)
			v.Set("generation.write_header", !noHeader)
			return
		}
		key, ok := flagKeys[f.Name]
		if !ok {
			return
		}

		switch f.Value.Type() {
		case "bool":
			val, _ := flags.GetBool(f.Name)
			v.Set(key, val)
		case "int":
			val, _ := flags.GetInt(f.Name)
			v.Set(key, val)
		case "stringSlice":
			val, _ := flags.GetStringSlice(f.Name)
			v.Set(key, val)
		default:
			v.Set(key, f.Value.String())
		}
	})
}

// Validate checks that the configuration describes one runnable generation.
func (c *Config) Validate() error {
	switch {
	case c.Database == "" && c.SchemaFile == "":
		return ErrNoSource
	case c.Database != "" && c.SchemaFile != "":
		return ErrConflictingSource
	}
	if c.Output != "" && c.OutputDir != "" {
		return fmt.Errorf("output and output_dir are mutually exclusive")
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must not be negative, got %d", c.Workers)
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("invalid log format %q (must be text or json)", c.Log.Format)
	}
	return nil
}
