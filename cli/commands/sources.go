package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/robgonnella/deckhand/internal/database"
	"github.com/spf13/cobra"
)

// lists the database sources downloaded from devices
func sources(props *CommandProps) *cobra.Command {
	var deviceID string

	cmd := &cobra.Command{
		Use:   "sources",
		Short: "List database sources downloaded from devices",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := database.OpenSqlite(props.Conf.DatabaseFile)

			if err != nil {
				return err
			}

			repo := database.NewSqliteRepo(db)

			var found []*database.Source

			if deviceID != "" {
				found, err = repo.GetSourcesByDevice(deviceID)
			} else {
				found, err = repo.GetAllSources()
			}

			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)

			fmt.Fprintln(w, "DEVICE\tSOURCE\tSIZE\tDOWNLOADED\tPATH")

			for _, s := range found {
				fmt.Fprintf(
					w,
					"%s\t%s\t%d\t%s\t%s\n",
					s.DeviceID,
					s.Name,
					s.Size,
					s.DownloadedAt.Format("2006-01-02 15:04:05"),
					s.Path,
				)
			}

			return w.Flush()
		},
	}

	cmd.Flags().StringVarP(&deviceID, "device", "d", "", "only list sources for this device id")

	return cmd
}
