package main

import (
	"context"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vyakarana-io/kosha"
	"github.com/vyakarana-io/kosha/ingest"
	"github.com/vyakarana-io/kosha/internal/config"
	"github.com/vyakarana-io/kosha/internal/log"
)

func buildCmd() *cobra.Command {
	var (
		envFile       string
		databaseURI   string
		dataPath      string
		prefixedRoots bool
	)

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Rebuild the morphology store from the resource files",
		Long: `Rebuild the morphology store from the linguistic resource files.

Every managed table is dropped, recreated, and repopulated in
dependency order: enumerated categories first, then roots and their
paradigms, then the inflected and derived forms that reference them.

Configuration is loaded in the following order (later sources override earlier):
  1. .env file (if --env-file specified or .env exists in current directory)
  2. Environment variables
  3. Command line flags

Environment variables:
  DATABASE_URI   Store connection URL: sqlite:///path/to.db or postgresql://...
  DATA_PATH      Base directory holding the resource files under DATA_PATH/lang
  LOG_LEVEL      Log level: DEBUG, INFO, WARN, ERROR (default: INFO)
  LOG_FORMAT     Log format: pretty, json (default: pretty)

  Per-file overrides (each replaces the DATA_PATH/lang default for one file):
  ENUMS, SANDHI, INDECLINABLES, VERB_PREFIXES, VERB_ENDINGS, ROOTS, VERBS,
  PARTICIPLE_STEMS, GERUNDS, INFINITIVES, NOMINAL_ENDINGS, NOUN_STEMS,
  IRREGULAR_NOUNS, ADJECTIVE_STEMS, IRREGULAR_ADJECTIVES, PRONOUNS,
  PREFIXED_ROOTS`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(envFile, databaseURI, dataPath, prefixedRoots)
		},
	}

	cmd.Flags().StringVar(&envFile, "env-file", "", "Path to .env file (default: .env in current directory)")
	cmd.Flags().StringVar(&databaseURI, "database-uri", "", "Store connection URL (overrides DATABASE_URI)")
	cmd.Flags().StringVar(&dataPath, "data-path", "", "Base resource directory (overrides DATA_PATH)")
	cmd.Flags().BoolVar(&prefixedRoots, "with-prefixed-roots", false, "Also load the prefixed-roots resource")

	return cmd
}

func runBuild(envFile, databaseURI, dataPath string, prefixedRoots bool) error {
	settings, err := config.Load(envFile)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	// Flags take precedence over the environment.
	if databaseURI != "" {
		settings.Set(config.KeyDatabaseURI, databaseURI)
	}
	if dataPath != "" {
		settings.Set(config.KeyDataPath, dataPath)
	}
	settings.ApplyDefaults()

	if settings.DatabaseURI() == "" {
		return fmt.Errorf("no store configured: set DATABASE_URI or pass --database-uri")
	}

	logger := log.Configure(settings)
	slogger := logger.Slog()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	slogger.LogAttrs(ctx, slog.LevelInfo, "starting build",
		slog.String("version", version),
		slog.String("data_path", settings.DataPath()))

	c, err := kosha.New(ctx, map[string]string(settings), kosha.WithLogger(slogger))
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer func() {
		if err := c.Close(); err != nil {
			slogger.Error("failed to close store", slog.Any("error", err))
		}
	}()

	var opts []ingest.Option
	if prefixedRoots {
		opts = append(opts, ingest.WithPrefixedRoots())
	}

	result, err := c.Build(ctx, opts...)
	if err != nil {
		return fmt.Errorf("build store: %w", err)
	}

	slogger.Info("build complete",
		slog.Int("tables_created", len(result.Created)),
		slog.Int("rows", result.TotalRows()),
		slog.Int("skipped", result.SkipCount()))
	return nil
}
