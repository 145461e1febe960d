package fs

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/earth-sandwich/sandwich-cli/internal/domain"
	"github.com/earth-sandwich/sandwich-cli/internal/domain/config"
	"github.com/earth-sandwich/sandwich-cli/internal/domain/models"
	"github.com/earth-sandwich/sandwich-cli/internal/usecase"
)

const DeploymentsFile = "deployments.json"

// RegistryStoreAdapter keeps deployment records in <data dir>/deployments.json
type RegistryStoreAdapter struct {
	path string

	mu          sync.RWMutex
	loaded      bool
	deployments map[string]*models.Deployment
}

// NewRegistryStoreAdapter creates a new registry store. Nothing is read until first use.
func NewRegistryStoreAdapter(cfg *config.RuntimeConfig) *RegistryStoreAdapter {
	return &RegistryStoreAdapter{
		path:        filepath.Join(cfg.DataDir, DeploymentsFile),
		deployments: make(map[string]*models.Deployment),
	}
}

// load reads the registry file; a missing file is an empty registry
func (r *RegistryStoreAdapter) load() error {
	if r.loaded {
		return nil
	}

	data, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			r.loaded = true
			return nil
		}
		return fmt.Errorf("failed to read registry: %w", err)
	}

	if err := json.Unmarshal(data, &r.deployments); err != nil {
		return fmt.Errorf("failed to parse registry %s: %w", r.path, err)
	}
	if r.deployments == nil {
		r.deployments = make(map[string]*models.Deployment)
	}
	r.loaded = true
	return nil
}

// save writes the registry atomically
func (r *RegistryStoreAdapter) save() error {
	if err := os.MkdirAll(filepath.Dir(r.path), 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	data, err := json.MarshalIndent(r.deployments, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal registry: %w", err)
	}

	tmpPath := r.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write registry: %w", err)
	}
	return os.Rename(tmpPath, r.path)
}

// SaveDeployment saves or replaces a deployment
func (r *RegistryStoreAdapter) SaveDeployment(ctx context.Context, deployment *models.Deployment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.load(); err != nil {
		return err
	}

	if deployment.ID == "" {
		deployment.ID = models.DeploymentID(deployment.Network, deployment.Version, deployment.Address)
	}
	clone := *deployment
	r.deployments[deployment.ID] = &clone

	return r.save()
}

// ListDeployments returns matching deployments, oldest first
func (r *RegistryStoreAdapter) ListDeployments(ctx context.Context, filter models.DeploymentFilter) ([]*models.Deployment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.load(); err != nil {
		return nil, err
	}

	result := make([]*models.Deployment, 0, len(r.deployments))
	for _, dep := range r.deployments {
		if !filter.Matches(dep) {
			continue
		}
		clone := *dep
		result = append(result, &clone)
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].ID < result[j].ID
		}
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})

	return result, nil
}

// LatestDeployment returns the most recent deployment of a version on a network
func (r *RegistryStoreAdapter) LatestDeployment(ctx context.Context, network, version string) (*models.Deployment, error) {
	deployments, err := r.ListDeployments(ctx, models.DeploymentFilter{
		Network: network,
		Version: strings.ToLower(version),
	})
	if err != nil {
		return nil, err
	}
	if len(deployments) == 0 {
		return nil, fmt.Errorf("no %s deployment recorded for network %s: %w", version, network, domain.ErrNotFound)
	}
	return deployments[len(deployments)-1], nil
}

// GetPath returns the path to the registry file
func (r *RegistryStoreAdapter) GetPath() string {
	return r.path
}

// Ensure the adapter implements the interface
var _ usecase.DeploymentRepository = (*RegistryStoreAdapter)(nil)
