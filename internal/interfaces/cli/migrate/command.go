// Package migrate implements the `sanad migrate` command.
package migrate

import (
	"fmt"

	"github.com/spf13/cobra"

	"sanad/internal/infrastructure/config"
	"sanad/internal/infrastructure/database"
	"sanad/internal/infrastructure/migration"
	"sanad/internal/shared/logger"
)

var env string

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration tools",
		Long:  `Apply the database schema for the console API.`,
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	cmd.AddCommand(newUpCommand())

	return cmd
}

func newUpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Apply all pending schema changes",
		RunE:  runUp,
	}
}

func runUp(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	if err := migration.AutoMigrate(database.Get()); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	logger.Info("database schema is up to date")
	return nil
}
