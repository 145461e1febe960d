package cli

import (
	"github.com/spf13/cobra"

	"github.com/earth-sandwich/sandwich-cli/internal/usecase"
)

// contractFlags select which deployed contract a call goes to
type contractFlags struct {
	key     string
	address string
	version string
}

func (f *contractFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.key, "contract", "", "Contract key from sandwich.toml [contracts] (default from [defaults])")
	cmd.Flags().StringVar(&f.address, "address", "", "Contract address, overrides the configured and recorded addresses")
	cmd.Flags().StringVar(&f.version, "abi-version", "", "Contract ABI version (v1 or v2)")
}

func (f *contractFlags) params() usecase.ResolveContractParams {
	return usecase.ResolveContractParams{
		Key:     f.key,
		Address: f.address,
		Version: f.version,
	}
}
