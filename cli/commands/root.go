package commands

import (
	"errors"
	"os"

	"github.com/robgonnella/deckhand/internal/config"
	"github.com/robgonnella/deckhand/internal/logger"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// CommandProps injected props that can be made available to all commands
type CommandProps struct {
	Conf *config.Config
}

// loadConfig loads the user config file, falling back to defaults when it
// does not exist yet
func loadConfig(confPath string) (*config.Config, error) {
	if _, err := os.Stat(confPath); errors.Is(err, os.ErrNotExist) {
		return config.Default(), nil
	}

	return config.Load(confPath)
}

// Root builds and returns our root command
func Root(props *CommandProps) *cobra.Command {
	var verbose bool
	var silent bool
	var logToFile bool
	var configFile string

	cmd := &cobra.Command{
		Use:   "deckhand",
		Short: "Discover and connect to networked DJ hardware",
		// This runs before all commands and all sub-commands
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// set logging verbosity for all loggers
			zerolog.SetGlobalLevel(zerolog.InfoLevel)

			if verbose {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
			}

			if silent {
				zerolog.SetGlobalLevel(zerolog.Disabled)
			}

			if logToFile {
				logFile := viper.GetString("log-file")

				file, err := os.OpenFile(logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)

				if err != nil {
					return err
				}

				logger.GlobalSetLogFile(file)
			}

			if configFile != "" {
				viper.Set("config-file", configFile)
			}

			conf, err := loadConfig(viper.GetString("config-file"))

			if err != nil {
				return err
			}

			props.Conf = conf

			return nil
		},
	}

	// Persistent flags available to all commands
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show debug logs")
	cmd.PersistentFlags().BoolVar(&silent, "silent", false, "disables all logging")
	cmd.PersistentFlags().BoolVar(&logToFile, "log-file", false, "write logs to the log file instead of stderr")
	cmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "path to config file")

	cmd.AddCommand(configCmd(props))
	cmd.AddCommand(initCmd(props))
	cmd.AddCommand(sources(props))
	cmd.AddCommand(clean())
	cmd.AddCommand(clear())
	cmd.AddCommand(info())
	cmd.AddCommand(version())

	return cmd
}
