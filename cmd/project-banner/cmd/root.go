package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/oshokin/project-banner/internal/config"
	"github.com/oshokin/project-banner/internal/logger"
	"github.com/oshokin/project-banner/internal/repository/manifest"
	"github.com/oshokin/project-banner/internal/service/runner"
	"github.com/oshokin/project-banner/internal/version"
)

var (
	// configPath stores the path to the configuration YAML file.
	configPath string
	// manifestPath overrides the linked metadata with a manifest file.
	manifestPath string
	// logLevel overrides the configured log level for this run.
	logLevel string

	// settings is populated by loadSettings before any command runs.
	settings = config.Default()

	// exitCode is the status the process exits with after a successful run.
	exitCode int

	// rootCmd prints the banner and exits with the result of foo(1, 2).
	rootCmd = &cobra.Command{
		Use:   "project-banner",
		Short: "Print build metadata and exit with foo(1, 2).",
		Long: `Prints the project name, version, compilation mode, application summary
and git provenance baked into the binary at build time, then calls foo(1, 2)
and exits with its result as the process status.

Metadata is injected via -ldflags into the version package. A YAML manifest
can be rendered instead with --manifest.`,
		Args:              cobra.NoArgs,
		SilenceUsage:      true,
		PersistentPreRunE: loadSettings,
		RunE: func(cmd *cobra.Command, _ []string) error {
			code, err := runner.Run(commandContext(cmd), &runner.Options{
				Output:   cmd.OutOrStdout(),
				Manifest: manifestRepository(),
			})
			if err != nil {
				return err
			}

			exitCode = code

			return nil
		},
	}
)

// Execute runs the project-banner CLI. It exits with 1 on a command error and
// with the status produced by the root command otherwise.
func Execute() {
	version.AttachCobraVersionCommand(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}

	os.Exit(exitCode)
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	addCommonFlags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(infoCmd, exportCmd)
}

// addCommonFlags registers flags shared by every subcommand.
func addCommonFlags(flags *pflag.FlagSet) {
	flags.StringVarP(&configPath, "config", "c", "", "path to configuration file (default "+config.DefaultConfigFilename+" if present)")
	flags.StringVarP(&manifestPath, "manifest", "m", "", "render metadata from a YAML manifest instead of the linked values")
	flags.StringVar(&logLevel, "log-level", "", "log level written to stderr (debug, info, warn, error)")
}

// loadSettings reads the configuration file and applies the log level.
func loadSettings(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	level, _ := logger.ParseLogLevel(cfg.LogLevel)
	logger.SetLevel(level)

	if manifestPath == "" {
		manifestPath = cfg.Manifest
	}

	settings = cfg

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if logLevel != "" {
		override, ok := logger.ParseLogLevel(logLevel)
		if !ok {
			return fmt.Errorf("invalid --log-level %q", logLevel)
		}

		ctx = logger.ToContext(ctx, logger.Logger().WithOptions(logger.WithLevel(override)))
	}

	logger.DebugKV(ctx, "Settings loaded", "log_level", cfg.LogLevel, "output", cfg.Output, "manifest", manifestPath)

	cmd.SetContext(ctx)

	return nil
}

// commandContext returns the context prepared by loadSettings.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}

	return context.Background()
}

// manifestRepository returns the manifest repository, or nil when metadata
// should come from the binary itself.
func manifestRepository() manifest.Repository {
	if manifestPath == "" {
		return nil
	}

	return manifest.NewFileRepository(manifestPath)
}
