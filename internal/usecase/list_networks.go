package usecase

import (
	"context"
	"sort"

	"github.com/earth-sandwich/sandwich-cli/internal/domain/config"
)

// ListNetworksParams contains parameters for listing networks
type ListNetworksParams struct {
	// SkipChainID lists names only, without contacting the RPC endpoints
	SkipChainID bool
}

// ListNetworksResult contains the result of listing networks
type ListNetworksResult struct {
	Networks []NetworkStatus
	Current  string
}

// NetworkStatus represents the status of a network
type NetworkStatus struct {
	Name          string
	RPCURL        string
	ChainID       uint64
	HasCredential bool
	Error         error
}

// ListNetworks is a use case for listing available networks
type ListNetworks struct {
	resolver  NetworkResolver
	inspector ChainInspector
	current   string
}

// NewListNetworks creates a new ListNetworks use case
func NewListNetworks(cfg *config.RuntimeConfig, resolver NetworkResolver, inspector ChainInspector) *ListNetworks {
	return &ListNetworks{
		resolver:  resolver,
		inspector: inspector,
		current:   cfg.NetworkName,
	}
}

// Run executes the use case
func (uc *ListNetworks) Run(ctx context.Context, params ListNetworksParams) (*ListNetworksResult, error) {
	networkNames := uc.resolver.GetNetworks(ctx)
	sort.Strings(networkNames)

	networks := make([]NetworkStatus, 0, len(networkNames))
	for _, name := range networkNames {
		status := NetworkStatus{
			Name: name,
		}

		info, err := uc.resolver.ResolveNetwork(ctx, name)
		if err != nil {
			status.Error = err
			networks = append(networks, status)
			continue
		}
		status.RPCURL = info.RPCURL
		status.HasCredential = info.HasCredential()
		status.ChainID = info.ChainID

		if !params.SkipChainID {
			chainID, err := uc.inspector.ChainID(ctx, info)
			if err != nil {
				status.Error = err
			} else {
				status.ChainID = chainID
			}
		}

		networks = append(networks, status)
	}

	return &ListNetworksResult{
		Networks: networks,
		Current:  uc.current,
	}, nil
}
