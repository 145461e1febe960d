package domain

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

// DefaultArtifact is the compiled contract name deployed and called by default.
const DefaultArtifact = "EarthSandwichNFT"

// ContractRef identifies a deployed EarthSandwichNFT instance and the ABI it speaks.
type ContractRef struct {
	Key      string // project-file key, e.g. "v1"
	Artifact string
	Address  common.Address
	Version  ContractVersion
}

func (r ContractRef) String() string {
	if r.Key != "" {
		return fmt.Sprintf("%s (%s %s at %s)", r.Key, r.Artifact, r.Version, r.Address.Hex())
	}
	return fmt.Sprintf("%s %s at %s", r.Artifact, r.Version, r.Address.Hex())
}
