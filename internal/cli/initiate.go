package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/earth-sandwich/sandwich-cli/internal/cli/render"
	"github.com/earth-sandwich/sandwich-cli/internal/usecase"
)

// NewInitiateCmd creates the initiate command
func NewInitiateCmd() *cobra.Command {
	var (
		contract         contractFlags
		name             string
		id               string
		idSeed           string
		participants     []string
		participantsFile string
	)

	cmd := &cobra.Command{
		Use:   "initiate [name]",
		Short: "Initiate a sandwich with a list of participants",
		Long: `Call initiateSandwich on the deployed contract and wait for the receipt.

Against a v1 contract the sandwich ID is supplied by the caller, either
directly with --id or as the keccak256 hash of --id-seed. A v2 contract
assigns the ID itself and both flags are rejected.

Participants come from repeated --participant flags and/or a YAML file
holding a list of addresses (or a mapping with a participants key).`,
		Example: `  # v1: ID derived from a seed
  sandwich initiate "Earth Sandwich #1" --id-seed earth-sandwich-1 \
    --participant 0xAb8483F64d9C6d1EcF9b849Ae677dD3315835cb2 \
    --participant 0x4B20993Bc481177ec7E8f571ceCaE8A9e22C02db

  # v2: participants from a file
  sandwich initiate "Earth Sandwich #2" --abi-version v2 --participants-file participants.yaml`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				if name != "" && name != args[0] {
					return fmt.Errorf("name given both as argument (%q) and --name (%q)", args[0], name)
				}
				name = args[0]
			}

			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			params := usecase.InitiateSandwichParams{
				Contract:         contract.params(),
				Name:             name,
				ID:               id,
				IDSeed:           idSeed,
				Participants:     participants,
				ParticipantsFile: participantsFile,
			}

			result, err := app.InitiateSandwich.Run(cmd.Context(), params)
			if err != nil {
				return err
			}

			renderer := render.NewInitiateRenderer(cmd.OutOrStdout(), app.Config.JSON)
			return renderer.Render(result)
		},
	}

	contract.register(cmd)
	cmd.Flags().StringVar(&name, "name", "", "Sandwich name")
	cmd.Flags().StringVar(&id, "id", "", "Sandwich ID as 0x-prefixed 32-byte hex (v1 only)")
	cmd.Flags().StringVar(&idSeed, "id-seed", "", "Derive the sandwich ID as keccak256 of this string (v1 only)")
	cmd.Flags().StringArrayVarP(&participants, "participant", "p", nil, "Participant address (repeatable)")
	cmd.Flags().StringVar(&participantsFile, "participants-file", "", "YAML file with participant addresses")
	cmd.MarkFlagsMutuallyExclusive("id", "id-seed")

	return cmd
}
