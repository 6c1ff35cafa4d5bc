package main

import (
	"context"
	"fmt"

	"menu-catalog/internal/config"
	"menu-catalog/internal/database"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	envFile string
	cfg     *config.Config
	logger  zerolog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "catalogctl",
	Short: "Menu catalogue operator CLI",
	Long: `catalogctl manages the menu catalogue database.

Configuration is read from the environment (and an optional .env file),
using the same variables as the API server.

Example usage:
  catalogctl migrate                      # Apply pending schema migrations
  catalogctl migrate down                 # Roll back the latest migration
  catalogctl seed                         # Seed the built-in demo menu
  catalogctl seed --file menu.jsonl.gz    # Seed from a menu file (S3 first when enabled)
  catalogctl ping                         # Check database connectivity`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initConfig()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file to load before reading the environment")
}

// initConfig loads the optional dotenv file, then the environment configuration.
func initConfig() error {
	// A missing dotenv file is not an error; the environment may already be set.
	_ = godotenv.Load(envFile)

	var err error
	cfg, err = config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger = config.NewLogger(cfg.Logger).With().Str("cmd", "catalogctl").Logger()
	return nil
}

func openPool(ctx context.Context) (*pgxpool.Pool, error) {
	pool, err := database.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	return pool, nil
}
