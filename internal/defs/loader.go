// internal/defs/loader.go
package defs

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"go-path-defense/internal/logger"
)

//go:embed data/catalog.json
var defaultCatalog []byte

// Default returns the built-in catalog. The embedded data is validated by
// tests, so a failure here is a programming error.
func Default() *Catalog {
	c, err := ParseCatalog(defaultCatalog)
	if err != nil {
		panic(fmt.Sprintf("embedded catalog is invalid: %v", err))
	}
	return c
}

// LoadCatalog reads a catalog file from disk.
func LoadCatalog(path string) (*Catalog, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}
	c, err := ParseCatalog(file)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return c, nil
}

// ParseCatalog decodes and validates catalog JSON.
func ParseCatalog(data []byte) (*Catalog, error) {
	var c Catalog
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to unmarshal catalog: %w", err)
	}
	if err := c.Prepare(); err != nil {
		return nil, fmt.Errorf("invalid catalog: %w", err)
	}

	logger.Logger.Debug("catalog loaded",
		"enemies", len(c.Enemies),
		"towers", len(c.Towers),
		"waves", len(c.Waves),
		"waypoints", len(c.Path))
	return &c, nil
}
