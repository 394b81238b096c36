// Package cli implements the selectlist command line.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/rshade/selectlist/internal/config"
	"github.com/rshade/selectlist/internal/logging"
)

// isTerminal checks if the given file is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// stdinIsTerminal reports whether stdin can drive an interactive picker.
//
//nolint:gochecknoglobals // Replaced in tests.
var stdinIsTerminal = func() bool { return isTerminal(os.Stdin) }

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

type configKey struct{}

// contextWithConfig stores the loaded configuration for subcommands.
func contextWithConfig(ctx context.Context, cfg *config.Config) context.Context {
	return context.WithValue(ctx, configKey{}, cfg)
}

// configFromContext returns the loaded configuration, or the defaults when the root command
// did not run.
func configFromContext(ctx context.Context) *config.Config {
	if ctx != nil {
		if cfg, ok := ctx.Value(configKey{}).(*config.Config); ok {
			return cfg
		}
	}
	return config.Default()
}

// NewRootCmd creates the root Cobra command for the selectlist CLI.
func NewRootCmd(ver string) *cobra.Command {
	return NewRootCmdWithEnv(ver, os.LookupEnv)
}

// NewRootCmdWithEnv creates the root command with an explicit env lookup for testability.
func NewRootCmdWithEnv(ver string, lookupEnv func(string) (string, bool)) *cobra.Command {
	var (
		logResult  *logging.LogPathResult
		configPath string
	)

	cmd := &cobra.Command{
		Use:          "selectlist",
		Short:        "Pick items from a list in the terminal",
		Long:         "selectlist: render a list of items and select any subset of them with the mouse or keyboard",
		Version:      ver,
		Example:      rootCmdExample,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			path, err := resolveConfigPath(configPath, lookupEnv)
			if err != nil {
				return err
			}
			cfg, err := loadConfig(cmd, path, lookupEnv)
			if err != nil {
				return err
			}

			result := setupLogging(cmd, cfg)
			logResult = &result

			cmd.SetContext(contextWithConfig(cmd.Context(), cfg))
			logger.Debug().Ctx(cmd.Context()).Str("config", path).Msg("configuration loaded")
			return nil
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			return cleanupLogging(logResult)
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().StringVar(&configPath, "config", "",
		"path to the configuration file (default $"+config.EnvConfigPath+" or ~/.selectlist/config.yaml)")
	cmd.AddCommand(NewPickCmd(), NewRenderCmd(), newConfigCmd(), NewVersionCmd(ver))

	return cmd
}

// annotationSkipConfig marks commands that run on the defaults without reading the config
// file, so they keep working when the file is invalid.
const annotationSkipConfig = "selectlist/skip-config"

// skipConfig is the annotation set of commands that do not read the config file.
func skipConfig() map[string]string {
	return map[string]string{annotationSkipConfig: "true"}
}

// loadConfig loads the file at path, or returns the defaults with environment overrides for
// commands annotated with annotationSkipConfig.
func loadConfig(
	cmd *cobra.Command,
	path string,
	lookupEnv func(string) (string, bool),
) (*config.Config, error) {
	if cmd.Annotations[annotationSkipConfig] == "true" {
		cfg := config.Default()
		cfg.ApplyEnv(lookupEnv)
		return cfg, nil
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("loading configuration: %w", err)
	}
	return cfg, nil
}

// resolveConfigPath picks the --config flag, then the environment, then the default path.
func resolveConfigPath(flagValue string, lookupEnv func(string) (string, bool)) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	if p, ok := lookupEnv(config.EnvConfigPath); ok && p != "" {
		return p, nil
	}
	return config.DefaultPath()
}

const rootCmdExample = `  # Pick from command-line arguments, print the chosen keys
  selectlist pick alpha beta gamma

  # Pick from an item file and print JSON
  selectlist pick --items items.yaml --output json

  # Print the list with two items selected, without a terminal
  selectlist render --items items.yaml --select a,c

  # Create the configuration file
  selectlist config init`

// newConfigCmd creates the config command group.
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "config", Short: "Configuration management commands"}
	cmd.AddCommand(NewConfigInitCmd(), NewConfigValidateCmd())
	return cmd
}
