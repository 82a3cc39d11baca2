package config

// DefaultCharset is used for the declared document charset and URL encoding.
const DefaultCharset = "UTF-8"

// DefaultExcludes are table name patterns excluded from the report by default.
var DefaultExcludes = []string{
	"sqlite_*",
	"goose_db_version",
	"schema_migrations",
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		OutputDir:      "schemasite",
		EncodeComments: false,
		Meter:          false,
		NumRows:        true,
		Charset:        DefaultCharset,
		Logo:           true,
		Include:        []string{"*"},
		Exclude:        DefaultExcludes,
		MaxConcurrency: 4,
	}
}
