package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/earth-sandwich/sandwich-cli/internal/app"
	"github.com/earth-sandwich/sandwich-cli/internal/config"
)

// contextKey is the type for context keys
type contextKey string

const (
	// appKey is the context key for the app instance
	appKey contextKey = "app"
)

// commands that run without loading the project
var offlineCommands = map[string]bool{
	"version":    true,
	"help":       true,
	"completion": true,
	"id":         true,
}

// Execute runs the CLI and releases the app's resources afterwards
func Execute() error {
	rootCmd, closeApp := newRootCmd()
	defer closeApp()
	return rootCmd.Execute()
}

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	rootCmd, _ := newRootCmd()
	return rootCmd
}

func newRootCmd() (*cobra.Command, func()) {
	var closers []func()
	closeApp := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
		closers = nil
	}

	rootCmd := &cobra.Command{
		Use:   "sandwich",
		Short: "Deploy and interact with the EarthSandwichNFT contract",
		Long: `sandwich deploys the EarthSandwichNFT contract to an EVM network and
issues its calls: initiating sandwiches and querying the sandwiches an
address participated in or the details of one sandwich.

Networks, compiler settings and known contract instances are read from
sandwich.toml; without one the LUKSO L14 defaults apply.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if offlineCommands[cmd.Name()] {
				return nil
			}

			projectRoot, _ := cmd.Flags().GetString("project-root")
			if projectRoot == "" {
				var err error
				if projectRoot, err = config.FindProjectRoot(); err != nil {
					return err
				}
			}

			v := config.SetupViper(projectRoot, cmd)

			appInstance, cleanup, err := app.InitApp(v)
			if err != nil {
				return fmt.Errorf("failed to initialize app: %w", err)
			}
			closers = append(closers, cleanup)

			ctx := context.WithValue(cmd.Context(), appKey, appInstance)

			if appInstance.Config.Timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, appInstance.Config.Timeout)
				closers = append(closers, cancel)
			}

			cmd.SetContext(ctx)
			return nil
		},
	}

	// Global flags
	rootCmd.PersistentFlags().StringP("network", "n", "", "Network from sandwich.toml to use (default from [defaults])")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug output")
	rootCmd.PersistentFlags().Bool("non-interactive", false, "Disable interactive prompts")
	rootCmd.PersistentFlags().Bool("json", false, "Output JSON")
	rootCmd.PersistentFlags().Duration("timeout", 0, "Overall command timeout (default 5m)")
	rootCmd.PersistentFlags().Duration("confirm-timeout", 0, "How long to wait for a transaction receipt (default 2m)")
	rootCmd.PersistentFlags().String("project-root", "", "Project directory (default: nearest directory with sandwich.toml)")

	rootCmd.AddGroup(&cobra.Group{
		ID:    "main",
		Title: "Contract Commands",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "management",
		Title: "Management Commands",
	})

	for _, cmd := range []*cobra.Command{
		NewDeployCmd(),
		NewInitiateCmd(),
		NewParticipatedCmd(),
		NewDetailsCmd(),
	} {
		cmd.GroupID = "main"
		rootCmd.AddCommand(cmd)
	}

	for _, cmd := range []*cobra.Command{
		NewInitCmd(),
		NewListCmd(),
		NewNetworksCmd(),
		NewConfigCmd(),
		NewIDCmd(),
	} {
		cmd.GroupID = "management"
		rootCmd.AddCommand(cmd)
	}

	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd, closeApp
}

// getApp retrieves the app instance from the command context
func getApp(cmd *cobra.Command) (*app.App, error) {
	appInstance := cmd.Context().Value(appKey)
	if appInstance == nil {
		return nil, fmt.Errorf("app not initialized")
	}

	app, ok := appInstance.(*app.App)
	if !ok {
		return nil, fmt.Errorf("invalid app instance")
	}

	return app, nil
}
