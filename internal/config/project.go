package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"

	"github.com/earth-sandwich/sandwich-cli/internal/domain/config"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// LoadProjectFile reads sandwich.toml from the project root. When the file is
// absent the built-in defaults are returned with source "defaults".
func LoadProjectFile(projectRoot string) (*config.ProjectFile, string, error) {
	path := filepath.Join(projectRoot, ProjectFileName)

	project := config.DefaultProjectFile()
	meta, err := toml.DecodeFile(path, project)
	if errors.Is(err, os.ErrNotExist) {
		return config.DefaultProjectFile(), "defaults", nil
	}
	if err != nil {
		return nil, "", fmt.Errorf("failed to parse %s: %w", ProjectFileName, err)
	}

	// Tables given in the file replace the defaults instead of merging with them
	// and the built-in defaults pointing into them go too
	if meta.IsDefined("networks") {
		project.Networks = decodedNetworks(project.Networks, meta)
		if !meta.IsDefined("defaults", "network") {
			project.Defaults.Network = ""
		}
	}
	if meta.IsDefined("contracts") {
		project.Contracts = decodedContracts(project.Contracts, meta)
		if !meta.IsDefined("defaults", "contract") {
			project.Defaults.Contract = ""
		}
	}

	for key, c := range project.Contracts {
		if c.Artifact == "" {
			c.Artifact = "EarthSandwichNFT"
		}
		c.Version = strings.ToLower(c.Version)
		project.Contracts[key] = c
	}

	if err := ValidateProjectFile(project); err != nil {
		return nil, "", err
	}

	return project, ProjectFileName, nil
}

// ValidateProjectFile checks the structural constraints of a project file
func ValidateProjectFile(project *config.ProjectFile) error {
	if err := validate.Struct(project); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, fmt.Sprintf("%s: failed %q", fe.Namespace(), fe.Tag()))
			}
			return fmt.Errorf("invalid %s: %s", ProjectFileName, strings.Join(msgs, "; "))
		}
		return fmt.Errorf("invalid %s: %w", ProjectFileName, err)
	}
	return nil
}

// ResolveNetworks expands ${VAR} references and checks the resulting RPC URLs
func ResolveNetworks(entries map[string]config.NetworkEntry) (map[string]*config.Network, error) {
	networks := make(map[string]*config.Network, len(entries))
	for name, entry := range entries {
		url := os.ExpandEnv(entry.URL)
		if err := validate.Var(url, "required,url"); err != nil {
			return nil, fmt.Errorf("network %s: invalid rpc url %q", name, url)
		}

		network := &config.Network{
			Name:        name,
			RPCURL:      url,
			ChainID:     entry.ChainID,
			ExplorerURL: os.ExpandEnv(entry.Explorer),
			PrivateKey:  normalizePrivateKey(os.ExpandEnv(entry.PrivateKey)),
		}
		if envVar, ok := DetectEnvVar(strings.TrimSpace(entry.PrivateKey)); ok {
			network.KeyEnv = envVar
		}
		networks[name] = network
	}
	return networks, nil
}

// normalizePrivateKey strips whitespace and an optional 0x prefix
func normalizePrivateKey(key string) string {
	key = strings.TrimSpace(key)
	key = strings.TrimPrefix(key, "0x")
	return strings.TrimPrefix(key, "0X")
}

// decodedNetworks drops default entries the file didn't declare
func decodedNetworks(all map[string]config.NetworkEntry, meta toml.MetaData) map[string]config.NetworkEntry {
	out := make(map[string]config.NetworkEntry)
	for name, entry := range all {
		if meta.IsDefined("networks", name) {
			out[name] = entry
		}
	}
	return out
}

// decodedContracts drops default entries the file didn't declare
func decodedContracts(all map[string]config.ContractConfig, meta toml.MetaData) map[string]config.ContractConfig {
	out := make(map[string]config.ContractConfig)
	for key, c := range all {
		if meta.IsDefined("contracts", key) {
			out[key] = c
		}
	}
	return out
}
