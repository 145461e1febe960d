package blockchain

import (
	"context"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/ethclient"

	"github.com/earth-sandwich/sandwich-cli/internal/domain"
	"github.com/earth-sandwich/sandwich-cli/internal/domain/config"
	"github.com/earth-sandwich/sandwich-cli/internal/usecase"
)

// CheckerAdapter queries arbitrary configured networks, independent of the selected one
type CheckerAdapter struct {
	timeout time.Duration
}

// NewCheckerAdapter creates a new chain checker adapter
func NewCheckerAdapter() *CheckerAdapter {
	return &CheckerAdapter{timeout: 5 * time.Second}
}

// ChainID dials the network and returns the chain ID it reports
func (c *CheckerAdapter) ChainID(ctx context.Context, network *config.Network) (uint64, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	client, err := ethclient.DialContext(ctx, network.RPCURL)
	if err != nil {
		return 0, fmt.Errorf("failed to connect to RPC: %w", err)
	}
	defer client.Close()

	chainID, err := client.ChainID(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to get chain ID: %w", err)
	}

	if network.ChainID != 0 && chainID.Uint64() != network.ChainID {
		return chainID.Uint64(), fmt.Errorf("%w: expected %d, got %d", domain.ErrChainIDMismatch, network.ChainID, chainID.Uint64())
	}

	return chainID.Uint64(), nil
}

// Ensure the adapter implements the interface
var _ usecase.ChainInspector = (*CheckerAdapter)(nil)
