package cli

import (
	"github.com/spf13/cobra"

	"github.com/earth-sandwich/sandwich-cli/internal/cli/render"
	"github.com/earth-sandwich/sandwich-cli/internal/usecase"
)

// NewParticipatedCmd creates the participated command
func NewParticipatedCmd() *cobra.Command {
	var contract contractFlags

	cmd := &cobra.Command{
		Use:   "participated [address]",
		Short: "List the sandwich IDs an address participated in",
		Long: `Call getParticipatedSandwiches on the deployed contract. Without an
address the configured signer's address is queried.`,
		Example: `  sandwich participated
  sandwich participated 0xAb8483F64d9C6d1EcF9b849Ae677dD3315835cb2`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			params := usecase.QueryParticipatedParams{Contract: contract.params()}
			if len(args) == 1 {
				params.Participant = args[0]
			}

			result, err := app.QueryParticipated.Run(cmd.Context(), params)
			if err != nil {
				return err
			}

			renderer := render.NewParticipatedRenderer(cmd.OutOrStdout(), app.Config.JSON)
			return renderer.Render(result)
		},
	}

	contract.register(cmd)

	return cmd
}
