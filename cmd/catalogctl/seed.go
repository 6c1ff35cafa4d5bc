package main

import (
	"context"
	"fmt"

	"menu-catalog/internal/fixtures"
	"menu-catalog/internal/model"
	"menu-catalog/internal/repository"
	"menu-catalog/internal/service"

	"github.com/spf13/cobra"
)

var seedFile string

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load a menu into the catalogue",
	Long: `Load a menu into the catalogue.

The menu file holds one product JSON object per line and may be gzipped
(.gz). With S3_ENABLED=true the file is fetched from S3_BUCKET under
S3_PREFIX first, falling back to the local path. Without --file or
MENU_FILE the built-in demo menu is seeded.

Examples:
  catalogctl seed
  catalogctl seed --file fixtures/menu.jsonl.gz`,
	Args: cobra.NoArgs,
	RunE: runSeed,
}

func init() {
	seedCmd.Flags().StringVarP(&seedFile, "file", "f", "", "menu file to seed (defaults to MENU_FILE)")
	rootCmd.AddCommand(seedCmd)
}

func runSeed(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	items, err := loadMenu(ctx)
	if err != nil {
		return err
	}

	pool, err := openPool(ctx)
	if err != nil {
		return err
	}
	defer pool.Close()

	productRepo := repository.NewProductRepository(pool, logger)
	productService := service.NewProductService(productRepo, logger)

	result, err := fixtures.NewSeeder(productService, productRepo, logger).Seed(ctx, items)
	if err != nil {
		return fmt.Errorf("seed failed after %d item(s): %w", result.Created, err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Seeded %d product(s)\n", result.Created)
	for _, category := range model.Categories() {
		fmt.Fprintf(out, "  %-12s %d\n", category, result.ByCategory[category])
	}
	return nil
}

func loadMenu(ctx context.Context) ([]model.ProductDTO, error) {
	path := seedFile
	if path == "" {
		path = cfg.Fixtures.MenuFile
	}
	if path == "" {
		logger.Info().Msg("no menu file configured, seeding the demo menu")
		return fixtures.DefaultMenu(), nil
	}

	var s3Loader fixtures.Loader
	if cfg.S3.Enabled {
		l, err := fixtures.NewS3Loader(ctx, cfg.S3.Bucket, cfg.S3.Region, logger)
		if err != nil {
			logger.Warn().
				Err(err).
				Msg("failed to initialise S3 loader, falling back to local file system only")
		} else {
			s3Loader = l
		}
	}

	loader := fixtures.NewFallbackLoader(s3Loader, fixtures.NewFileLoader(logger), cfg.S3.Prefix, cfg.S3.Enabled, logger)

	items, err := loader.Load(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("failed to load menu: %w", err)
	}
	return items, nil
}
