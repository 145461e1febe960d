package cli

import (
	"github.com/spf13/cobra"

	"github.com/earth-sandwich/sandwich-cli/internal/cli/render"
	"github.com/earth-sandwich/sandwich-cli/internal/usecase"
)

// NewDeployCmd creates the deploy command
func NewDeployCmd() *cobra.Command {
	var (
		artifact string
		owner    string
		version  string
		yes      bool
	)

	cmd := &cobra.Command{
		Use:   "deploy",
		Short: "Deploy EarthSandwichNFT to the selected network",
		Long: `Deploy the compiled EarthSandwichNFT contract. The constructor takes a
single initialOwner address, which defaults to the deploying account.

The artifact is looked up by contract name in the configured artifact
directories (Hardhat artifacts/ or Foundry out/). Successful deployments
are recorded in .sandwich/deployments.json.`,
		Example: `  # Deploy to the default network, owned by the deployer
  sandwich deploy

  # Deploy to a named network with a separate owner
  sandwich deploy -n l14 --owner 0x5B38Da6a701c568545dCfcB03FcB875f56beddC4`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			params := usecase.DeployContractParams{
				Artifact:    artifact,
				Owner:       owner,
				Version:     version,
				SkipConfirm: yes,
			}

			result, err := app.DeployContract.Run(cmd.Context(), params)
			if err != nil {
				return err
			}

			explorer := ""
			if app.Config.Network != nil {
				explorer = app.Config.Network.ExplorerURL
			}
			renderer := render.NewDeployRenderer(cmd.OutOrStdout(), app.Config.JSON, explorer)
			return renderer.Render(result)
		},
	}

	cmd.Flags().StringVar(&artifact, "artifact", "", "Contract artifact name (default EarthSandwichNFT)")
	cmd.Flags().StringVar(&owner, "owner", "", "initialOwner address (default: the deployer)")
	cmd.Flags().StringVar(&version, "abi-version", "", "ABI version to record for the deployment (v1 or v2)")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}
