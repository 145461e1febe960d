package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"github.com/samber/lo"

	"github.com/earth-sandwich/sandwich-cli/internal/domain"
	"github.com/earth-sandwich/sandwich-cli/internal/domain/config"
)

// ResolveContractParams selects a contract instance. Address wins over Key.
type ResolveContractParams struct {
	Key     string
	Address string
	Version string
}

// ResolveContract turns flags, project-file entries and the deployment
// registry into a ContractRef, in that order of precedence
type ResolveContract struct {
	config      *config.RuntimeConfig
	deployments DeploymentRepository
	log         *slog.Logger
}

// NewResolveContract creates a new ResolveContract use case
func NewResolveContract(cfg *config.RuntimeConfig, deployments DeploymentRepository, log *slog.Logger) *ResolveContract {
	return &ResolveContract{
		config:      cfg,
		deployments: deployments,
		log:         log.With("component", "ResolveContract"),
	}
}

// Run executes the use case
func (uc *ResolveContract) Run(ctx context.Context, params ResolveContractParams) (domain.ContractRef, error) {
	var wanted domain.ContractVersion
	if params.Version != "" {
		var err error
		if wanted, err = domain.ParseContractVersion(params.Version); err != nil {
			return domain.ContractRef{}, err
		}
	}

	if params.Address != "" {
		addr, err := domain.ParseAddress(params.Address)
		if err != nil {
			return domain.ContractRef{}, err
		}
		version := domain.ContractV1
		if wanted != "" {
			version = wanted
		}
		return domain.ContractRef{Artifact: domain.DefaultArtifact, Address: addr, Version: version}, nil
	}

	key := params.Key
	if key == "" {
		var found bool
		if key, found = uc.defaultKey(wanted); !found {
			return uc.fromRegistry(ctx, string(wanted), domain.DefaultArtifact, wanted)
		}
	}

	entry, configured := uc.config.Contracts[key]
	if configured {
		version, err := domain.ParseContractVersion(entry.Version)
		if err != nil {
			return domain.ContractRef{}, fmt.Errorf("contract %s: %w", key, err)
		}
		if wanted != "" && wanted != version {
			return domain.ContractRef{}, fmt.Errorf("contract %s speaks %s, not %s", key, version, wanted)
		}

		onNetwork := entry.Network == "" || entry.Network == uc.config.NetworkName
		if entry.Address != "" && onNetwork {
			addr, err := domain.ParseAddress(entry.Address)
			if err != nil {
				return domain.ContractRef{}, fmt.Errorf("contract %s: %w", key, err)
			}
			return domain.ContractRef{Key: key, Artifact: entry.Artifact, Address: addr, Version: version}, nil
		}
		return uc.fromRegistry(ctx, key, entry.Artifact, version)
	}

	// Unknown keys may still name an ABI version deployed through this tool
	version, err := domain.ParseContractVersion(key)
	if err != nil {
		return domain.ContractRef{}, fmt.Errorf("contract %q is not configured: %w", key, domain.ErrNotFound)
	}
	return uc.fromRegistry(ctx, key, domain.DefaultArtifact, version)
}

// defaultKey picks the project-file entry used when no --contract is given.
// With a wanted version it is the default entry if that speaks the version,
// else the first entry that does, preferring entries bound to the selected
// network. found is false when no entry speaks the version.
func (uc *ResolveContract) defaultKey(wanted domain.ContractVersion) (key string, found bool) {
	if wanted == "" || uc.speaks(uc.config.DefaultContract, wanted) {
		return uc.config.DefaultContract, true
	}

	keys := lo.Filter(lo.Keys(uc.config.Contracts), func(k string, _ int) bool {
		return uc.speaks(k, wanted)
	})
	if len(keys) == 0 {
		return "", false
	}
	sort.Slice(keys, func(i, j int) bool {
		ni := uc.config.Contracts[keys[i]].Network == uc.config.NetworkName
		nj := uc.config.Contracts[keys[j]].Network == uc.config.NetworkName
		if ni != nj {
			return ni
		}
		return keys[i] < keys[j]
	})
	return keys[0], true
}

func (uc *ResolveContract) speaks(key string, wanted domain.ContractVersion) bool {
	entry, ok := uc.config.Contracts[key]
	if !ok {
		return false
	}
	version, err := domain.ParseContractVersion(entry.Version)
	return err == nil && version == wanted
}

func (uc *ResolveContract) fromRegistry(ctx context.Context, key, artifact string, version domain.ContractVersion) (domain.ContractRef, error) {
	dep, err := uc.deployments.LatestDeployment(ctx, uc.config.NetworkName, string(version))
	if errors.Is(err, domain.ErrNotFound) {
		return domain.ContractRef{}, fmt.Errorf("no %s deployment of %s on network %s: %w", version, artifact, uc.config.NetworkName, domain.ErrNotFound)
	}
	if err != nil {
		return domain.ContractRef{}, err
	}

	addr, err := domain.ParseAddress(dep.Address)
	if err != nil {
		return domain.ContractRef{}, fmt.Errorf("registry entry %s: %w", dep.ID, err)
	}
	uc.log.Debug("resolved contract from registry", "key", key, "address", dep.Address, "network", dep.Network)

	return domain.ContractRef{Key: key, Artifact: dep.Contract, Address: addr, Version: version}, nil
}
