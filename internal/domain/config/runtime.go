package config

import (
	"time"
)

// RuntimeConfig represents the complete runtime configuration
// This is injected into use cases and contains all resolved settings
type RuntimeConfig struct {
	// Core settings
	ProjectRoot  string
	DataDir      string
	ArtifactDirs []string

	// Context settings
	NetworkName string   // selected network, from --network or the project defaults
	Network     *Network // nil if NetworkName isn't configured
	Networks    map[string]*Network

	// Execution settings
	Debug          bool
	NonInteractive bool
	JSON           bool
	Timeout        time.Duration
	ConfirmTimeout time.Duration
	PollInterval   time.Duration

	// Config source tracking
	ConfigSource string // "sandwich.toml" or "defaults"

	Compiler        CompilerConfig
	Contracts       map[string]ContractConfig
	DefaultContract string
}

// Network represents network configuration
type Network struct {
	Name        string `json:"name"`
	RPCURL      string `json:"rpcUrl"`
	ChainID     uint64 `json:"chainId,omitempty"` // 0 means "whatever the node reports"
	ExplorerURL string `json:"explorerUrl,omitempty"`

	// PrivateKey is the expanded signing key. It may be empty or malformed;
	// the signer rejects it before anything is submitted.
	PrivateKey string `json:"-"`
	// KeyEnv names the environment variable the key was read from, if any
	KeyEnv string `json:"keyEnv,omitempty"`
}

// HasCredential reports whether a signing key was configured at all
func (n *Network) HasCredential() bool {
	return n != nil && n.PrivateKey != ""
}

// CompilerConfig mirrors the solidity block of the project file
type CompilerConfig struct {
	Version   string          `toml:"version" validate:"required"`
	Optimizer OptimizerConfig `toml:"optimizer"`
}

// OptimizerConfig holds the solc optimizer settings
type OptimizerConfig struct {
	Enabled bool `toml:"enabled"`
	Runs    int  `toml:"runs" validate:"gte=0"`
}

// ContractConfig is a named, already deployed contract instance
type ContractConfig struct {
	Artifact string `toml:"artifact"`
	Address  string `toml:"address,omitempty" validate:"omitempty,eth_addr"`
	Version  string `toml:"version" validate:"required,oneof=v1 v2"`
	Network  string `toml:"network,omitempty"`
}
