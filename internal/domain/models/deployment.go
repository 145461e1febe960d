package models

import (
	"fmt"
	"time"
)

// Deployment represents a contract deployment record kept in the local registry
type Deployment struct {
	// Core identification
	ID       string `json:"id"`      // e.g., "lukso/v1/0xC51C..."
	Network  string `json:"network"` // e.g., "lukso"
	ChainID  uint64 `json:"chainId"`
	Contract string `json:"contract"` // artifact name, e.g. "EarthSandwichNFT"
	Version  string `json:"version"`  // ABI version: "v1" or "v2"
	Address  string `json:"address"`

	// Deployment transaction
	TxHash      string `json:"txHash"`
	BlockNumber uint64 `json:"blockNumber"`
	GasUsed     uint64 `json:"gasUsed,omitempty"`

	// Constructor and sender
	Owner    string `json:"owner"`
	Deployer string `json:"deployer"`

	// Build information
	Compiler CompilerInfo `json:"compiler"`

	CreatedAt time.Time `json:"createdAt"`
}

// CompilerInfo records the compiler settings a deployment was made with
type CompilerInfo struct {
	Version          string `json:"version"`
	OptimizerEnabled bool   `json:"optimizerEnabled"`
	OptimizerRuns    int    `json:"optimizerRuns,omitempty"`
}

// DeploymentID builds the registry key of a deployment
func DeploymentID(network, version, address string) string {
	return fmt.Sprintf("%s/%s/%s", network, version, address)
}

// DeploymentFilter narrows a registry listing
type DeploymentFilter struct {
	Network  string
	Contract string
	Version  string
}

// Matches reports whether a deployment passes the filter
func (f DeploymentFilter) Matches(d *Deployment) bool {
	if f.Network != "" && d.Network != f.Network {
		return false
	}
	if f.Contract != "" && d.Contract != f.Contract {
		return false
	}
	if f.Version != "" && d.Version != f.Version {
		return false
	}
	return true
}
