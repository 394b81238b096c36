package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rshade/selectlist/internal/config"
)

// configPathFor resolves the file the config commands operate on.
func configPathFor(cmd *cobra.Command) (string, error) {
	path, _ := cmd.Flags().GetString("config")
	return resolveConfigPath(path, os.LookupEnv)
}

// NewConfigInitCmd creates the config init command for initializing configuration.
func NewConfigInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:         "init",
		Short:       "Initialize configuration file with default values",
		Annotations: skipConfig(),
		Long:  `Creates a new configuration file at ~/.selectlist/config.yaml (or --config) with default values.`,
		Example: `  # Create the configuration
  selectlist config init

  # Create configuration, overwriting existing
  selectlist config init --force`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, err := configPathFor(cmd)
			if err != nil {
				return err
			}

			if !force {
				_, statErr := os.Stat(path)
				if statErr == nil {
					return errors.New("configuration file already exists, use --force to overwrite")
				}
				if !errors.Is(statErr, os.ErrNotExist) {
					return fmt.Errorf("cannot access config path %s: %w", path, statErr)
				}
			}

			if err = config.Default().Save(path); err != nil {
				return fmt.Errorf("failed to save configuration: %w", err)
			}

			cmd.Printf("Configuration initialized at %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite existing configuration file")

	return cmd
}

// NewConfigValidateCmd creates the config validate command. Loading already validates the
// file, so reaching RunE means the configuration is valid.
func NewConfigValidateCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate configuration file",
		Example: `  # Validate current configuration
  selectlist config validate --verbose`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := configFromContext(cmd.Context())
			cmd.Println("Configuration is valid")
			if verbose {
				cmd.Printf("  version:  %s\n", cfg.Version)
				cmd.Printf("  renderer: %s\n", cfg.List.Renderer)
				cmd.Printf("  width:    %d\n", cfg.List.Width)
				cmd.Printf("  logging:  %s (%s)\n", cfg.Logging.Level, cfg.Logging.Format)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "show the effective configuration")

	return cmd
}
