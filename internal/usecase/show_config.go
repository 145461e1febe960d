package usecase

import (
	"context"
	"sort"

	"github.com/samber/lo"

	"github.com/earth-sandwich/sandwich-cli/internal/domain/config"
)

// ShowConfigResult contains the result of showing configuration
type ShowConfigResult struct {
	ProjectRoot  string
	ConfigSource string
	DataDir      string
	ArtifactDirs []string
	Network      *config.Network
	NetworkName  string
	Compiler     config.CompilerConfig
	Contracts    []NamedContract
	Default      string
}

// NamedContract is a project-file contract entry with its key
type NamedContract struct {
	Key string
	config.ContractConfig
}

// ShowConfig is a use case for showing the resolved configuration
type ShowConfig struct {
	config *config.RuntimeConfig
}

// NewShowConfig creates a new ShowConfig use case
func NewShowConfig(cfg *config.RuntimeConfig) *ShowConfig {
	return &ShowConfig{
		config: cfg,
	}
}

// Run executes the show config use case
func (uc *ShowConfig) Run(ctx context.Context) (*ShowConfigResult, error) {
	contracts := lo.MapToSlice(uc.config.Contracts, func(key string, c config.ContractConfig) NamedContract {
		return NamedContract{Key: key, ContractConfig: c}
	})
	sort.Slice(contracts, func(i, j int) bool { return contracts[i].Key < contracts[j].Key })

	return &ShowConfigResult{
		ProjectRoot:  uc.config.ProjectRoot,
		ConfigSource: uc.config.ConfigSource,
		DataDir:      uc.config.DataDir,
		ArtifactDirs: uc.config.ArtifactDirs,
		Network:      uc.config.Network,
		NetworkName:  uc.config.NetworkName,
		Compiler:     uc.config.Compiler,
		Contracts:    contracts,
		Default:      uc.config.DefaultContract,
	}, nil
}
