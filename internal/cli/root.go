package cli

import (
	"github.com/spf13/cobra"

	"github.com/adanyl0v/go-task-manager/internal/app"
)

var rootCmd = &cobra.Command{
	Use:   "task-manager",
	Short: "Task manager HTTP API",
	Long: `Task manager serves an HTTP API for creating, listing, completing
and deleting tasks of an owner. Configuration is read from the
environment and an optional .env file.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		app.InitDefaultLogger()
		app.MustReadEnv()
		app.MustInitApplicationLogger()
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}
