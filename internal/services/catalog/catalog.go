package catalog

import (
	"fmt"
	"os"

	"github.com/gabrielcapilla/radiogo/internal/domain"
	"github.com/gabrielcapilla/radiogo/internal/logger"

	"gopkg.in/yaml.v3"
)

type fileFormat struct {
	Stations []domain.Station `yaml:"stations"`
}

// Load builds the catalog from the YAML file at path, or from the built-in
// station table when path is empty.
func Load(path string) (*domain.Catalog, error) {
	if path == "" {
		return domain.NewCatalog(builtin)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	var f fileFormat
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse catalog yaml: %w", err)
	}

	c, err := domain.NewCatalog(f.Stations)
	if err != nil {
		return nil, fmt.Errorf("invalid catalog %s: %w", path, err)
	}
	logger.Log.Info().Str("path", path).Int("stations", c.Len()).Msg("Catalog loaded from file")
	return c, nil
}
