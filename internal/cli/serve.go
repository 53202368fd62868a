package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/adanyl0v/go-task-manager/internal/app"
	"github.com/adanyl0v/go-task-manager/internal/config"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	Long: `Connect to the configured storage, create the schema if needed and
serve the HTTP API until SIGINT or SIGTERM. Sample tasks are added first
when SEED_ON_START is set.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	app.MustConnectStorage()
	defer app.DisconnectStorage()

	app.MustMigrateStorage(ctx)
	if config.Global().SeedOnStart {
		app.MustSeedStorage(ctx)
	}

	exitCode := app.ListenAndServeHTTP()
	if exitCode != 0 {
		return fmt.Errorf("http server exited with code %d", exitCode)
	}
	return nil
}
