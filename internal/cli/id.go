package cli

import (
	"github.com/spf13/cobra"

	"github.com/earth-sandwich/sandwich-cli/internal/cli/render"
	"github.com/earth-sandwich/sandwich-cli/internal/usecase"
)

// NewIDCmd creates the id command
func NewIDCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "id <seed>...",
		Short: "Compute sandwich IDs from seed strings",
		Long: `Print keccak256(seed) for each seed, the ID a v1 contract expects
from initiate --id-seed. No network or project is needed.`,
		Example: `  sandwich id earth-sandwich-1 earth-sandwich-2`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			jsonOutput, _ := cmd.Flags().GetBool("json")

			results := usecase.NewComputeID().Run(cmd.Context(), args)

			renderer := render.NewIDRenderer(cmd.OutOrStdout(), jsonOutput)
			return renderer.Render(results)
		},
	}

	return cmd
}
