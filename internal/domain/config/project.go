package config

// ProjectFile is the on-disk shape of sandwich.toml
type ProjectFile struct {
	Compiler  CompilerConfig            `toml:"compiler"`
	Networks  map[string]NetworkEntry   `toml:"networks" validate:"dive"`
	Contracts map[string]ContractConfig `toml:"contracts" validate:"dive"`
	Paths     PathsConfig               `toml:"paths"`
	Defaults  DefaultsConfig            `toml:"defaults"`
}

// NetworkEntry is a raw [networks.<name>] table; string values may hold ${VAR} references
type NetworkEntry struct {
	URL        string `toml:"url" validate:"required"`
	PrivateKey string `toml:"private_key"`
	ChainID    uint64 `toml:"chain_id,omitempty"`
	Explorer   string `toml:"explorer,omitempty"`
}

// PathsConfig points at build outputs and the local data dir
type PathsConfig struct {
	Artifacts []string `toml:"artifacts"`
	Data      string   `toml:"data"`
}

// DefaultsConfig holds the fallbacks used when no flag is given
type DefaultsConfig struct {
	Network  string `toml:"network"`
	Contract string `toml:"contract"`
}

const (
	DefaultNetworkName     = "lukso"
	DefaultNetworkURL      = "https://rpc.l14.lukso.network/"
	DefaultPrivateKey      = "${PRIVATE_KEY}"
	DefaultSolidityVersion = "0.8.17"
	DefaultContractKey     = "v1"
	DefaultContractAddress = "0xC51C514a5e082A59ed94Eb92947cd7cad26b93fc"
)

// DefaultProjectFile matches the stock hardhat setup: one lukso network
// signing with $PRIVATE_KEY, solc 0.8.17 and the v1 contract instance.
func DefaultProjectFile() *ProjectFile {
	return &ProjectFile{
		Compiler: CompilerConfig{
			Version:   DefaultSolidityVersion,
			Optimizer: OptimizerConfig{Runs: 200},
		},
		Networks: map[string]NetworkEntry{
			DefaultNetworkName: {
				URL:        DefaultNetworkURL,
				PrivateKey: DefaultPrivateKey,
			},
		},
		Contracts: map[string]ContractConfig{
			DefaultContractKey: {
				Artifact: "EarthSandwichNFT",
				Address:  DefaultContractAddress,
				Version:  "v1",
				Network:  DefaultNetworkName,
			},
		},
		Paths: PathsConfig{
			Artifacts: []string{"artifacts", "out"},
			Data:      ".sandwich",
		},
		Defaults: DefaultsConfig{
			Network:  DefaultNetworkName,
			Contract: DefaultContractKey,
		},
	}
}
