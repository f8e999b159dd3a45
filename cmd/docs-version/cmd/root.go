package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/jelly-rdf/docs-version/internal/logger"
	"github.com/jelly-rdf/docs-version/internal/service/site"
	"github.com/jelly-rdf/docs-version/internal/version"
)

var (
	// configPath stores the path to the configuration YAML file.
	configPath string
	// logLevel is the minimum level of messages written to stderr.
	logLevel string
	// envFiles lists dotenv files loaded before the environment is read.
	envFiles []string

	// errUnknownLogLevel is returned for an unparsable --log-level value.
	errUnknownLogLevel = errors.New("unknown log level")

	// rootCmd represents the base command when called without any subcommands.
	rootCmd = &cobra.Command{
		Use:   "docs-version",
		Short: "Compute version labels and links for the documentation build.",
		Long: `Compute version labels and links for the Jelly-JVM documentation build.

The tag being documented is read from the TAG environment variable. When it is
unset the build is treated as a development build. The version of the protocol
specification is taken from the latest git tag of the schema repository
(../core/src/main/protobuf_shared by default). If git fails the command aborts.`,
		SilenceUsage:      true,
		PersistentPreRunE: setup,
	}
)

// Execute runs the docs-version CLI and exits with non-zero status on error.
func Execute() {
	version.AttachCobraVersionCommand(rootCmd)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)

	err := rootCmd.ExecuteContext(ctx)

	stop()

	if err != nil {
		os.Exit(1)
	}
}

// setup applies the global flags before any subcommand runs.
func setup(cmd *cobra.Command, _ []string) error {
	level, ok := logger.ParseLogLevel(logLevel)
	if !ok {
		return fmt.Errorf("%w: %q", errUnknownLogLevel, logLevel)
	}

	logger.SetLevel(level)

	// Variables already present in the environment win over dotenv files.
	if len(envFiles) > 0 {
		if err := godotenv.Load(envFiles...); err != nil {
			return fmt.Errorf("load env files: %w", err)
		}
	}

	cmd.SetContext(logger.WithName(cmd.Context(), "docs-version"))

	return nil
}

// siteOptions returns the shared options for site commands.
func siteOptions() *site.Options {
	return &site.Options{
		ConfigPath: configPath,
	}
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to configuration file (default docs-version.yaml if present)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringSliceVar(&envFiles, "env-file", nil, "dotenv files to load before reading the environment")

	rootCmd.AddCommand(showCmd, linkCmd, schemaLinkCmd, navCmd, renderCmd)
}
