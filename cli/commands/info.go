package commands

import (
	"fmt"

	app_info "github.com/robgonnella/deckhand/internal/app-info"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func info() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Print detailed app info",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(
				cmd.OutOrStdout(),
				"%s: %s\n\nconfig:   %s\nlog:      %s\ncache:    %s\ndatabase: %s\n",
				app_info.NAME,
				app_info.VERSION,
				viper.GetString("config-file"),
				viper.GetString("log-file"),
				viper.GetString("cache-dir"),
				viper.GetString("database-file"),
			)
		},
	}

	return cmd
}
