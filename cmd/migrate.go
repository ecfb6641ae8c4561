package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	config "task-service.com/task-service/internal/configs"
	"task-service.com/task-service/internal/migrations"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Manage the database schema",
}

func newMigrateSubcommand(direction migrations.Direction, short string) *cobra.Command {
	return &cobra.Command{
		Use:   string(direction),
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			logger := config.NewLogger(cfg.LogLevel, os.Stdout)

			database, err := config.NewDatabaseClient(cfg.DatabaseDriver, cfg.DatabaseDSN, cfg.DatabaseDebug)
			if err != nil {
				return err
			}
			defer func() {
				_ = config.CloseDatabase(database)
			}()

			sqlDB, err := database.DB()
			if err != nil {
				return fmt.Errorf("db handle: %w", err)
			}

			if err := migrations.Run(cmd.Context(), sqlDB, cfg.DatabaseDriver, direction); err != nil {
				return err
			}

			version, err := migrations.Version(cmd.Context(), sqlDB, cfg.DatabaseDriver)
			if err != nil {
				return err
			}
			logger.Info("migrations done", "direction", direction, "version", version)
			return nil
		},
	}
}

func init() {
	migrateCmd.AddCommand(
		newMigrateSubcommand(migrations.Up, "Apply all pending migrations"),
		newMigrateSubcommand(migrations.Down, "Roll back the latest migration"),
		newMigrateSubcommand(migrations.Status, "Print the status of every migration"),
	)
	rootCmd.AddCommand(migrateCmd)
}
