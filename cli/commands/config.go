package commands

import (
	"errors"
	"fmt"
	"os"

	"github.com/robgonnella/deckhand/internal/config"
	"github.com/robgonnella/deckhand/internal/logger"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// prints the effective configuration
func configCmd(props *CommandProps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			encoder := yaml.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent(2)

			return encoder.Encode(props.Conf)
		},
	}

	return cmd
}

// writes the default configuration to the config file
func initCmd(props *CommandProps) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default config file",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logger.New()

			configFile := viper.GetString("config-file")

			if _, err := os.Stat(configFile); err == nil && !force {
				return fmt.Errorf("config file already exists: %s", configFile)
			} else if err != nil && !errors.Is(err, os.ErrNotExist) {
				return err
			}

			if err := config.Write(*config.Default(), configFile); err != nil {
				return err
			}

			log.Info().Str("file", configFile).Msg("wrote config file")

			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing config file")

	return cmd
}
