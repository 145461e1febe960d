package cli

import (
	"github.com/spf13/cobra"

	"github.com/earth-sandwich/sandwich-cli/internal/cli/render"
	"github.com/earth-sandwich/sandwich-cli/internal/usecase"
)

// NewNetworksCmd creates the networks command
func NewNetworksCmd() *cobra.Command {
	var offline bool

	cmd := &cobra.Command{
		Use:   "networks",
		Short: "List networks from sandwich.toml",
		Long: `List all networks configured in the [networks] section of sandwich.toml.

Each network's RPC is queried for its chain ID unless --offline is set.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			params := usecase.ListNetworksParams{SkipChainID: offline}
			result, err := app.ListNetworks.Run(cmd.Context(), params)
			if err != nil {
				return err
			}

			renderer := render.NewNetworksRenderer(cmd.OutOrStdout(), app.Config.JSON)
			return renderer.Render(result)
		},
	}

	cmd.Flags().BoolVar(&offline, "offline", false, "Don't contact the RPC endpoints")

	return cmd
}
