package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/schemasite/internal/config"
	"github.com/ziadkadry99/schemasite/internal/logfields"
	"github.com/ziadkadry99/schemasite/internal/model"
	"github.com/ziadkadry99/schemasite/internal/progress"
	"github.com/ziadkadry99/schemasite/internal/schema"
	"github.com/ziadkadry99/schemasite/internal/site"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the HTML report for a schema",
	Long:  `Loads the schema from a YAML snapshot or a SQLite database, applies the include/exclude filters and writes the report into the output directory.`,
	RunE:  runGenerate,
}

func init() {
	generateCmd.Flags().String("schema-file", "", "YAML schema snapshot (overrides config)")
	generateCmd.Flags().String("sqlite", "", "SQLite database to introspect (overrides config)")
	generateCmd.Flags().String("output", "", "output directory (overrides config)")
	generateCmd.Flags().Int("concurrency", 0, "max pages rendered in parallel (overrides config)")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if v, _ := cmd.Flags().GetString("schema-file"); v != "" {
		cfg.SchemaFile, cfg.SQLitePath = v, ""
	}
	if v, _ := cmd.Flags().GetString("sqlite"); v != "" {
		cfg.SQLitePath, cfg.SchemaFile = v, ""
	}
	if v, _ := cmd.Flags().GetString("output"); v != "" {
		cfg.OutputDir = v
	}
	if v, _ := cmd.Flags().GetInt("concurrency"); v > 0 {
		cfg.MaxConcurrency = v
	}

	db, err := loadSchema(ctx, cfg)
	if err != nil {
		return err
	}
	applyIdentity(db, cfg)

	total := len(db.Tables)
	db = schema.Filter(db, cfg.Include, cfg.Exclude)
	logger.Debug("Schema loaded",
		slog.String("database", db.Name),
		logfields.Count(len(db.Tables)))
	if skipped := total - len(db.Tables); skipped > 0 && verbose {
		fmt.Fprintf(os.Stderr, "Skipped %d tables by include/exclude patterns\n", skipped)
	}

	generator := site.NewSiteGenerator(cfg.OutputDir, cfg)
	generator.Version = Version
	generator.Logger = logger
	generator.Reporter = progress.NewReporter()

	pageCount, err := generator.Generate(ctx, db)
	if err != nil {
		return fmt.Errorf("generating report: %w", err)
	}

	fmt.Printf("Report generated: %s (%d pages)\n", cfg.OutputDir, pageCount)
	return nil
}

// loadSchema reads the schema from whichever source the config names.
func loadSchema(ctx context.Context, cfg *config.Config) (*model.Database, error) {
	switch {
	case cfg.SQLitePath != "":
		db, err := schema.Introspect(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("introspecting %s: %w", cfg.SQLitePath, err)
		}
		return db, nil
	case cfg.SchemaFile != "":
		return schema.LoadFile(cfg.SchemaFile)
	default:
		return nil, fmt.Errorf("no schema source configured\nSet schema_file or sqlite_path in %s, or pass --schema-file / --sqlite", cfgFile)
	}
}

// applyIdentity lets the config override the names shown in page titles.
func applyIdentity(db *model.Database, cfg *config.Config) {
	if cfg.DatabaseName != "" {
		db.Name = cfg.DatabaseName
	}
	if cfg.Schema != "" {
		db.Schema = cfg.Schema
	}
	if cfg.Catalog != "" {
		db.Catalog = cfg.Catalog
	}
	if cfg.Description != "" {
		db.Description = cfg.Description
	}
}
