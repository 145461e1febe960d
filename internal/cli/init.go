package cli

import (
	"github.com/spf13/cobra"

	"github.com/earth-sandwich/sandwich-cli/internal/cli/render"
	"github.com/earth-sandwich/sandwich-cli/internal/usecase"
)

// NewInitCmd creates the init command
func NewInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize sandwich in a contracts project",
		Long: `Write a sandwich.toml with the LUKSO L14 defaults, create the deployment
registry and an .env.example listing the supported variables.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(cmd, force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing sandwich.toml")

	return cmd
}

// runInit executes the init command
func runInit(cmd *cobra.Command, force bool) error {
	app, err := getApp(cmd)
	if err != nil {
		return err
	}

	result, err := app.InitProject.Run(cmd.Context(), usecase.InitProjectParams{Force: force})
	if err != nil {
		// Still render partial results even on error
		if result != nil {
			_ = render.NewInitRenderer(cmd.OutOrStdout()).Render(result)
		}
		return err
	}

	return render.NewInitRenderer(cmd.OutOrStdout()).Render(result)
}
