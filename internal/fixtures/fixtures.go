// Package fixtures loads menu files and seeds them into the catalogue.
package fixtures

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"menu-catalog/internal/model"
)

// Loader defines the interface for loading menu files.
type Loader interface {
	// Load reads a JSON-lines menu file and returns its items in file order.
	Load(ctx context.Context, path string) ([]model.ProductDTO, error)
}

// decodeMenu reads one product JSON object per line. Blank lines are skipped.
func decodeMenu(ctx context.Context, r io.Reader) ([]model.ProductDTO, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	items := make([]model.ProductDTO, 0)
	lineNo := 0
	for scanner.Scan() {
		lineNo++

		if err := ctx.Err(); err != nil {
			return nil, err
		}

		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}

		var item model.ProductDTO
		if err := json.Unmarshal(line, &item); err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		items = append(items, item)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
