package cli

import (
	"github.com/spf13/cobra"

	"github.com/earth-sandwich/sandwich-cli/internal/cli/render"
	"github.com/earth-sandwich/sandwich-cli/internal/usecase"
)

// NewDetailsCmd creates the details command
func NewDetailsCmd() *cobra.Command {
	var (
		contract contractFlags
		seed     string
	)

	cmd := &cobra.Command{
		Use:   "details [id]",
		Short: "Show the details of a sandwich",
		Long: `Call getSandwichDetails on the deployed contract. The ID is given as
0x-prefixed 32-byte hex or derived from --seed. Without either, an
interactive terminal offers the signer's participated sandwiches to pick from.`,
		Example: `  sandwich details 0x6c3b...e1
  sandwich details --seed earth-sandwich-1
  sandwich details`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			params := usecase.QueryDetailsParams{
				Contract: contract.params(),
				Seed:     seed,
			}
			if len(args) == 1 {
				params.ID = args[0]
			}

			result, err := app.QueryDetails.Run(cmd.Context(), params)
			if err != nil {
				return err
			}

			renderer := render.NewDetailsRenderer(cmd.OutOrStdout(), app.Config.JSON)
			return renderer.Render(result)
		},
	}

	contract.register(cmd)
	cmd.Flags().StringVar(&seed, "seed", "", "Derive the sandwich ID as keccak256 of this string")

	return cmd
}
