package config

import (
	"context"
	"fmt"

	"github.com/samber/lo"

	"github.com/earth-sandwich/sandwich-cli/internal/domain"
	"github.com/earth-sandwich/sandwich-cli/internal/domain/config"
	"github.com/earth-sandwich/sandwich-cli/internal/usecase"
)

// NetworkResolverAdapter resolves networks from the loaded project configuration
type NetworkResolverAdapter struct {
	networks map[string]*config.Network
}

// NewNetworkResolverAdapter creates a new adapter
func NewNetworkResolverAdapter(cfg *config.RuntimeConfig) *NetworkResolverAdapter {
	return &NetworkResolverAdapter{
		networks: cfg.Networks,
	}
}

// GetNetworks returns all configured network names
func (a *NetworkResolverAdapter) GetNetworks(ctx context.Context) []string {
	return lo.Keys(a.networks)
}

// ResolveNetwork resolves a network name to its configuration
func (a *NetworkResolverAdapter) ResolveNetwork(ctx context.Context, networkName string) (*config.Network, error) {
	network, ok := a.networks[networkName]
	if !ok {
		return nil, fmt.Errorf("network %q: %w", networkName, domain.ErrNotFound)
	}
	return network, nil
}

// Ensure the adapter implements the interface
var _ usecase.NetworkResolver = (*NetworkResolverAdapter)(nil)
