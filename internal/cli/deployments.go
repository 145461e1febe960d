package cli

import (
	"github.com/spf13/cobra"

	"github.com/earth-sandwich/sandwich-cli/internal/cli/render"
	"github.com/earth-sandwich/sandwich-cli/internal/usecase"
)

// NewListCmd creates the deployments command
func NewListCmd() *cobra.Command {
	var (
		artifact string
		version  string
	)

	cmd := &cobra.Command{
		Use:     "deployments",
		Aliases: []string{"list", "ls"},
		Short:   "List recorded deployments",
		Long: `List the deployments recorded in .sandwich/deployments.json.

All networks are listed unless --network is given explicitly.`,
		Example: `  sandwich deployments
  sandwich ls -n l14 --abi-version v2`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			params := usecase.ListDeploymentsParams{
				Contract: artifact,
				Version:  version,
			}
			if cmd.Flags().Changed("network") {
				params.Network = app.Config.NetworkName
			}

			result, err := app.ListDeployments.Run(cmd.Context(), params)
			if err != nil {
				return err
			}

			renderer := render.NewDeploymentsRenderer(cmd.OutOrStdout(), app.Config.JSON)
			return renderer.Render(result)
		},
	}

	cmd.Flags().StringVar(&artifact, "artifact", "", "Filter by artifact name")
	cmd.Flags().StringVar(&version, "abi-version", "", "Filter by ABI version (v1 or v2)")

	return cmd
}
