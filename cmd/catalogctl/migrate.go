package main

import (
	"fmt"

	"menu-catalog/internal/database"

	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending schema migrations",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		pool, err := openPool(ctx)
		if err != nil {
			return err
		}
		defer pool.Close()

		count, err := database.NewMigrator(pool, database.MigrationsFS(), logger).Up(ctx)
		if err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Applied %d migration(s)\n", count)
		return nil
	},
}

var migrateDownCmd = &cobra.Command{
	Use:   "down",
	Short: "Roll back the most recently applied migration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		pool, err := openPool(ctx)
		if err != nil {
			return err
		}
		defer pool.Close()

		if err := database.NewMigrator(pool, database.MigrationsFS(), logger).Down(ctx); err != nil {
			return fmt.Errorf("rollback failed: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), "Rolled back latest migration")
		return nil
	},
}

func init() {
	migrateCmd.AddCommand(migrateDownCmd)
	rootCmd.AddCommand(migrateCmd)
}
