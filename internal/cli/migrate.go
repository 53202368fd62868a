package cli

import (
	"github.com/spf13/cobra"

	"github.com/adanyl0v/go-task-manager/internal/app"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create the storage schema",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		app.MustConnectStorage()
		defer app.DisconnectStorage()

		app.MustMigrateStorage(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
