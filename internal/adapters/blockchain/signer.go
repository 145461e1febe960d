package blockchain

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/earth-sandwich/sandwich-cli/internal/domain"
	"github.com/earth-sandwich/sandwich-cli/internal/domain/config"
	"github.com/earth-sandwich/sandwich-cli/internal/usecase"
)

// transactor is a signer that can build transact options
type transactor interface {
	usecase.Signer
	TransactOpts(ctx context.Context, chainID *big.Int) (*bind.TransactOpts, error)
}

// KeySigner signs with a raw secp256k1 private key
type KeySigner struct {
	key     *ecdsa.PrivateKey
	address common.Address
}

// NewKeySigner parses a hex private key, with or without 0x
func NewKeySigner(hexKey string) (*KeySigner, error) {
	if hexKey == "" {
		return nil, domain.ErrMissingCredential
	}
	key, err := crypto.HexToECDSA(strings.TrimPrefix(strings.TrimPrefix(hexKey, "0x"), "0X"))
	if err != nil {
		// The parse error may echo key material, keep it out of the message
		return nil, fmt.Errorf("%w: private key must be 32 bytes of hex", domain.ErrInvalidCredential)
	}
	return &KeySigner{key: key, address: crypto.PubkeyToAddress(key.PublicKey)}, nil
}

// Address returns the signer's account
func (s *KeySigner) Address() common.Address {
	return s.address
}

// TransactOpts builds options signing for the given chain
func (s *KeySigner) TransactOpts(ctx context.Context, chainID *big.Int) (*bind.TransactOpts, error) {
	opts, err := bind.NewKeyedTransactorWithChainID(s.key, chainID)
	if err != nil {
		return nil, err
	}
	opts.Context = ctx
	return opts, nil
}

// SignerAdapter provides the signer configured for the selected network
type SignerAdapter struct {
	network *config.Network
}

// NewSignerAdapter creates a new signer adapter
func NewSignerAdapter(cfg *config.RuntimeConfig) *SignerAdapter {
	return &SignerAdapter{network: cfg.Network}
}

// Signer parses the network's key. Nothing is sent to the node here.
func (a *SignerAdapter) Signer(ctx context.Context) (usecase.Signer, error) {
	if a.network == nil {
		return nil, fmt.Errorf("no network selected: %w", domain.ErrMissingCredential)
	}
	if !a.network.HasCredential() {
		if a.network.KeyEnv != "" {
			return nil, fmt.Errorf("%w: %s is not set (network %s)", domain.ErrMissingCredential, a.network.KeyEnv, a.network.Name)
		}
		return nil, fmt.Errorf("%w: set private_key for network %s", domain.ErrMissingCredential, a.network.Name)
	}
	signer, err := NewKeySigner(a.network.PrivateKey)
	if err != nil {
		return nil, fmt.Errorf("network %s: %w", a.network.Name, err)
	}
	return signer, nil
}

var _ usecase.SignerProvider = (*SignerAdapter)(nil)
var _ transactor = (*KeySigner)(nil)
