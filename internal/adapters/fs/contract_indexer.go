package fs

import (
	"context"
	"encoding/json"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/earth-sandwich/sandwich-cli/internal/domain"
	"github.com/earth-sandwich/sandwich-cli/internal/domain/config"
	"github.com/earth-sandwich/sandwich-cli/internal/domain/models"
	"github.com/earth-sandwich/sandwich-cli/internal/usecase"
)

// ContractIndexerAdapter finds compiled artifacts by contract name in the
// Hardhat (artifacts/**/<Name>.json) and Foundry (out/<Name>.sol/<Name>.json) layouts
type ContractIndexerAdapter struct {
	dirs []string
	log  *slog.Logger

	mu    sync.Mutex
	index map[string][]string // contract name -> artifact paths
}

// NewContractIndexerAdapter creates a new artifact indexer. Directories are walked on first lookup.
func NewContractIndexerAdapter(cfg *config.RuntimeConfig, log *slog.Logger) *ContractIndexerAdapter {
	return &ContractIndexerAdapter{
		dirs: cfg.ArtifactDirs,
		log:  log.With("component", "ContractIndexer"),
	}
}

// GetArtifact loads the artifact for a contract name
func (c *ContractIndexerAdapter) GetArtifact(ctx context.Context, name string) (*models.Artifact, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.index == nil {
		if err := c.buildIndex(); err != nil {
			return nil, err
		}
	}

	paths := c.index[name]
	switch len(paths) {
	case 0:
		return nil, fmt.Errorf("artifact %s not found in %s (compile the contracts first): %w", name, strings.Join(c.dirs, ", "), domain.ErrNotFound)
	case 1:
	default:
		c.log.Warn("multiple artifacts found, using the first", "contract", name, "paths", paths)
	}

	return c.readArtifact(paths[0], name)
}

func (c *ContractIndexerAdapter) buildIndex() error {
	c.index = make(map[string][]string)

	for _, dir := range c.dirs {
		if _, err := os.Stat(dir); os.IsNotExist(err) {
			continue
		}

		err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return nil
			}
			if d.IsDir() {
				if d.Name() == "build-info" {
					return fs.SkipDir
				}
				return nil
			}
			if filepath.Ext(path) != ".json" || strings.HasSuffix(path, ".dbg.json") {
				return nil
			}

			name := strings.TrimSuffix(d.Name(), ".json")
			c.index[name] = append(c.index[name], path)
			return nil
		})
		if err != nil {
			return fmt.Errorf("failed to index artifacts in %s: %w", dir, err)
		}
	}

	c.log.Debug("indexed artifacts", "dirs", c.dirs, "contracts", len(c.index))
	return nil
}

func (c *ContractIndexerAdapter) readArtifact(path, name string) (*models.Artifact, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read artifact: %w", err)
	}

	var artifact models.Artifact
	if err := json.Unmarshal(data, &artifact); err != nil {
		return nil, fmt.Errorf("failed to parse artifact %s: %w", path, err)
	}
	if artifact.ContractName == "" {
		artifact.ContractName = name
	}
	artifact.Path = path

	return &artifact, nil
}

// Ensure the adapter implements the interface
var _ usecase.ArtifactRepository = (*ContractIndexerAdapter)(nil)
