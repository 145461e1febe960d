package blockchain

import (
	"context"
	"fmt"
	"log/slog"
	"math/big"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/ethclient"

	"github.com/earth-sandwich/sandwich-cli/internal/domain"
	"github.com/earth-sandwich/sandwich-cli/internal/domain/config"
)

// Backend is everything we need from a node: calls, transactions, receipts
type Backend interface {
	bind.ContractBackend
	bind.DeployBackend
	ChainID(ctx context.Context) (*big.Int, error)
}

// Dialer lazily connects to the selected network once per process
type Dialer struct {
	network *config.Network
	log     *slog.Logger

	once    sync.Once
	client  *ethclient.Client
	backend Backend
	chainID *big.Int
	err     error
}

// NewDialer creates a dialer for the network selected in the runtime config
func NewDialer(cfg *config.RuntimeConfig, log *slog.Logger) *Dialer {
	return &Dialer{
		network: cfg.Network,
		log:     log.With("component", "Dialer"),
	}
}

// NewDialerWithBackend wraps an existing backend, e.g. a simulated chain
func NewDialerWithBackend(backend Backend, network *config.Network, log *slog.Logger) *Dialer {
	return &Dialer{
		network: network,
		backend: backend,
		log:     log.With("component", "Dialer"),
	}
}

// Backend returns the connected backend and the chain ID it reported
func (d *Dialer) Backend(ctx context.Context) (Backend, *big.Int, error) {
	d.once.Do(func() {
		d.err = d.connect(ctx)
	})
	if d.err != nil {
		return nil, nil, d.err
	}
	return d.backend, d.chainID, nil
}

func (d *Dialer) connect(ctx context.Context) error {
	if d.network == nil {
		return fmt.Errorf("no network selected: %w", domain.ErrNotFound)
	}

	if d.backend == nil {
		d.log.Debug("dialing rpc", "network", d.network.Name, "url", d.network.RPCURL)
		client, err := ethclient.DialContext(ctx, d.network.RPCURL)
		if err != nil {
			return fmt.Errorf("failed to connect to %s RPC: %w", d.network.Name, err)
		}
		d.client = client
		d.backend = client
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	chainID, err := d.backend.ChainID(ctx)
	if err != nil {
		return fmt.Errorf("failed to get chain ID from %s: %w", d.network.Name, err)
	}

	// If the configured chain ID is 0, accept whatever the node reports
	if d.network.ChainID != 0 && chainID.Uint64() != d.network.ChainID {
		return fmt.Errorf("%w: %s expected %d, got %d", domain.ErrChainIDMismatch, d.network.Name, d.network.ChainID, chainID.Uint64())
	}
	d.chainID = chainID

	return nil
}

// Close releases the RPC connection if one was opened
func (d *Dialer) Close() {
	if d.client != nil {
		d.client.Close()
	}
}
