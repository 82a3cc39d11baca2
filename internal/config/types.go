package config

// Config is the top-level schemasite configuration, corresponding to .schemasite.yml.
type Config struct {
	OutputDir  string `yaml:"output_dir" koanf:"output_dir"`
	SchemaFile string `yaml:"schema_file" koanf:"schema_file"`
	SQLitePath string `yaml:"sqlite_path" koanf:"sqlite_path"`

	// Identity overrides applied on top of whatever the schema source reports.
	DatabaseName string `yaml:"database_name" koanf:"database_name"`
	Schema       string `yaml:"schema" koanf:"schema"`
	Catalog      string `yaml:"catalog" koanf:"catalog"`
	Description  string `yaml:"description" koanf:"description"`

	EncodeComments       bool   `yaml:"encode_comments" koanf:"encode_comments"`
	Meter                bool   `yaml:"meter" koanf:"meter"`
	NumRows              bool   `yaml:"num_rows" koanf:"num_rows"`
	Charset              string `yaml:"charset" koanf:"charset"`
	Logo                 bool   `yaml:"logo" koanf:"logo"`
	OneOfMultipleSchemas bool   `yaml:"one_of_multiple_schemas" koanf:"one_of_multiple_schemas"`

	Include        []string `yaml:"include" koanf:"include"`
	Exclude        []string `yaml:"exclude" koanf:"exclude"`
	MaxConcurrency int      `yaml:"max_concurrency" koanf:"max_concurrency"`
}

// Capabilities is the immutable per-run snapshot consumed by page composition.
// It is built once by Config.Capabilities and passed by value, never mutated.
type Capabilities struct {
	EncodeComments       bool
	MeterEnabled         bool
	NumRowsEnabled       bool
	Charset              string
	LogoEnabled          bool
	OneOfMultipleSchemas bool
	HasOrphans           bool
	HasRoutines          bool
}
