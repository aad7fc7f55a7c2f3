package main

import (
	"os"

	"github.com/spf13/cobra"

	"sanad/internal/interfaces/cli/migrate"
	"sanad/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "sanad",
		Short: "Sanad - marketplace admin console API",
		Long:  `Sanad serves the marketplace admin console: support tickets, supervisor management, and shared reference data.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
