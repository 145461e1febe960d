package cli

import (
	"github.com/spf13/cobra"

	"github.com/earth-sandwich/sandwich-cli/internal/cli/render"
)

// NewConfigCmd creates the config command
func NewConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Show the resolved configuration",
		Long: `Show the configuration sandwich resolved from sandwich.toml, .env and
SANDWICH_* environment variables: the selected network, compiler settings
and known contract instances. Private keys are redacted.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.ShowConfig.Run(cmd.Context())
			if err != nil {
				return err
			}

			renderer := render.NewConfigRenderer(cmd.OutOrStdout(), app.Config.JSON)
			return renderer.Render(result)
		},
	}
}
