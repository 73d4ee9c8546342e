package main

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"std-header-map/internal/pipeline"
	"std-header-map/internal/tables"
)

const (
	configName = ".std-header-map"
	envPrefix  = "STD_HEADER_MAP"
)

// newRootCmd creates the root command with its own configuration scope.
func newRootCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "std-header-map <symbols.yaml> [reference]",
		Short: "Map C++ standard library symbols to their headers",
		Long: "std-header-map reads a clangd symbol index and prints, for every std:: symbol, " +
			"the headers that declare it. An optional reference mapping is used to " +
			"cross-validate the result; mismatches are reported on stderr.",
		Version: version,
		Args:    cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return run(cmd, v, args)
		},
	}

	flags := cmd.Flags()
	flags.String("config", "", "Exception tables file (default ./"+configName+".yaml if present)")
	flags.Bool("no-default-tables", false, "Start from empty exception tables")
	flags.String("std-prefix", "", "Required symbol qualification (default \"std::\")")
	flags.BoolP("verbose", "v", false, "Log skipped records, suppressed mismatches and a summary")

	// Bind flags to viper.
	v.BindPFlag("config", flags.Lookup("config"))
	v.BindPFlag("no_default_tables", flags.Lookup("no-default-tables"))
	v.BindPFlag("std_prefix", flags.Lookup("std-prefix"))
	v.BindPFlag("verbose", flags.Lookup("verbose"))

	// Env vars: STD_HEADER_MAP_VERBOSE, STD_HEADER_MAP_STD_PREFIX, etc.
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	return cmd
}

func run(cmd *cobra.Command, v *viper.Viper, args []string) error {
	if err := readConfig(v); err != nil {
		return err
	}

	logger := newLogger(cmd, v.GetBool("verbose"))

	t, err := loadTables(v)
	if err != nil {
		return err
	}

	opts := pipeline.Options{
		IndexPath: args[0],
		Tables:    t,
	}
	if len(args) == 2 {
		opts.ReferencePath = args[1]
	}

	logger.Debug("starting",
		slog.String("index", opts.IndexPath),
		slog.String("reference", opts.ReferencePath),
		slog.String("config", v.ConfigFileUsed()))

	if _, err := pipeline.Run(opts, cmd.OutOrStdout(), cmd.ErrOrStderr(), logger); err != nil {
		return err
	}

	return nil
}

// readConfig loads the explicit config file, or the default one if it
// exists. Only an explicit file is required to exist.
func readConfig(v *viper.Viper) error {
	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")

		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config %s: %w", path, err)
		}

		return nil
	}

	v.SetConfigName(configName)
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}

		return fmt.Errorf("reading config: %w", err)
	}

	return nil
}

// loadTables layers the config file's tables over the base tables, then
// applies a flag or env prefix override.
func loadTables(v *viper.Viper) (tables.Tables, error) {
	base := tables.Default()
	if v.GetBool("no_default_tables") {
		base = tables.Empty()
	}

	// Forward header keys contain dots, which viper treats as nesting, so
	// the tables themselves are decoded straight from the file.
	var file *tables.File

	if used := v.ConfigFileUsed(); used != "" {
		f, err := tables.LoadFile(used)
		if err != nil {
			return tables.Tables{}, err
		}

		file = f
	}

	t, err := file.Apply(base)
	if err != nil {
		return tables.Tables{}, fmt.Errorf("applying config: %w", err)
	}

	if prefix := v.GetString("std_prefix"); prefix != "" {
		t.StdPrefix = prefix
	}

	return t, nil
}

// newLogger logs at Warn unless verbose, so a normal run's stderr holds
// only diagnostic lines.
func newLogger(cmd *cobra.Command, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
}
