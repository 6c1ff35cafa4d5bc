package fixtures

import (
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"menu-catalog/internal/model"

	"github.com/rs/zerolog"
)

// fileLoader implements Loader for menu files on the local file system.
type fileLoader struct {
	logger zerolog.Logger
}

// NewFileLoader creates a new file-based menu loader.
func NewFileLoader(logger zerolog.Logger) Loader {
	return &fileLoader{
		logger: logger.With().Str("component", "menu-loader").Logger(),
	}
}

// Load reads a menu file. Paths ending in .gz are gunzipped first.
func (l *fileLoader) Load(ctx context.Context, filePath string) ([]model.ProductDTO, error) {
	l.logger.Info().Str("file", filePath).Msg("loading menu file")

	file, err := os.Open(filePath)
	if err != nil {
		l.logger.Error().Err(err).Str("file", filePath).Msg("failed to open menu file")
		return nil, fmt.Errorf("failed to open menu file %s: %w", filePath, err)
	}
	defer file.Close()

	var r io.Reader = file
	if strings.HasSuffix(filePath, ".gz") {
		gzipReader, err := gzip.NewReader(file)
		if err != nil {
			l.logger.Error().Err(err).Str("file", filePath).Msg("failed to create gzip reader")
			return nil, fmt.Errorf("failed to create gzip reader for %s: %w", filePath, err)
		}
		defer gzipReader.Close()
		r = gzipReader
	}

	items, err := decodeMenu(ctx, r)
	if err != nil {
		l.logger.Error().Err(err).Str("file", filePath).Msg("error reading menu file")
		return nil, fmt.Errorf("error reading menu file %s: %w", filePath, err)
	}

	l.logger.Info().
		Str("file", filePath).
		Int("items_loaded", len(items)).
		Msg("menu file loaded successfully")

	return items, nil
}
