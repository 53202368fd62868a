package cli

import (
	"github.com/spf13/cobra"

	"github.com/adanyl0v/go-task-manager/internal/app"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Add sample tasks for the demo owners",
	Long: `Create the storage schema if needed and add sample tasks for three
fixed owners. Owners that already have tasks are skipped.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		app.MustConnectStorage()
		defer app.DisconnectStorage()

		app.MustMigrateStorage(cmd.Context())
		app.MustSeedStorage(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}
