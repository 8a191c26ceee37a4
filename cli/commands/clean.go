package commands

import (
	"os"

	"github.com/robgonnella/deckhand/internal/logger"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// removes the source catalog and downloaded databases
func clean() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Clears the source catalog and downloaded databases",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logger.New()

			dbFile, ok := viper.Get("database-file").(string)

			if ok && dbFile != "" {
				if err := os.RemoveAll(dbFile); err != nil {
					return err
				}
				log.Info().Msg("removed database file")
			}

			cacheDir, ok := viper.Get("cache-dir").(string)

			if ok && cacheDir != "" {
				if err := os.RemoveAll(cacheDir); err != nil {
					return err
				}
				log.Info().Msg("removed cache directory")
			}

			return nil
		},
	}

	return cmd
}
