// Package dataset loads the cultural figures dataset from a JSON file.
package dataset

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/kailas-cloud/archetype/internal/domain"
	"github.com/kailas-cloud/archetype/internal/domain/figure"
)

// Loader reads figure profiles from a JSON dataset file.
type Loader struct {
	path   string
	logger *zap.Logger
}

// New creates a dataset loader for the given file path.
func New(path string, logger *zap.Logger) *Loader {
	return &Loader{path: path, logger: logger}
}

// Load parses and validates the dataset. Any malformed entry fails the whole
// load: serving with a partially-loaded corpus is not allowed.
func (l *Loader) Load() ([]figure.Profile, error) {
	data, err := os.ReadFile(filepath.Clean(l.path))
	if err != nil {
		return nil, fmt.Errorf("%w: read dataset %s: %w", domain.ErrCorpusLoad, l.path, err)
	}

	var dtos []figureDTO
	if err := json.Unmarshal(data, &dtos); err != nil {
		return nil, fmt.Errorf("%w: parse dataset %s: %w", domain.ErrCorpusLoad, l.path, err)
	}
	if len(dtos) == 0 {
		return nil, fmt.Errorf("%w: dataset %s has no entries", domain.ErrCorpusLoad, l.path)
	}

	profiles := make([]figure.Profile, 0, len(dtos))
	seen := make(map[string]struct{}, len(dtos))
	for i := range dtos {
		profile, err := dtos[i].toDomain()
		if err != nil {
			return nil, fmt.Errorf("%w: entry [%d]: %w", domain.ErrCorpusLoad, i, err)
		}
		if _, dup := seen[profile.Name()]; dup {
			return nil, fmt.Errorf("%w: duplicate figure %q", domain.ErrCorpusLoad, profile.Name())
		}
		seen[profile.Name()] = struct{}{}
		profiles = append(profiles, profile)
	}

	l.logger.Info("Dataset loaded",
		zap.String("path", l.path),
		zap.Int("figures", len(profiles)),
	)
	return profiles, nil
}
