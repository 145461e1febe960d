package render

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/earth-sandwich/sandwich-cli/internal/usecase"
)

// InitRenderer renders init command results
type InitRenderer struct {
	out io.Writer
}

// NewInitRenderer creates a new init renderer
func NewInitRenderer(out io.Writer) *InitRenderer {
	return &InitRenderer{out: out}
}

// Render renders the init project result
func (r *InitRenderer) Render(result *usecase.InitProjectResult) error {
	failed := false
	for _, step := range result.Steps {
		if step.Success {
			msg := step.Message
			if msg == "" {
				msg = step.Name
			}
			fmt.Fprintln(r.out, FormatSuccess(msg))
			continue
		}
		failed = true
		color.New(color.FgRed).Fprintf(r.out, "❌ %s\n", step.Name)
		if step.Error != nil {
			fmt.Fprintf(r.out, "   %s\n", step.Error.Error())
		}
	}

	if failed {
		return nil
	}

	fmt.Fprintln(r.out)
	if result.AlreadyInitialized {
		color.New(color.FgYellow).Fprintln(r.out, "⚠️  sandwich was already initialized in this project")
	} else {
		color.New(color.FgGreen, color.Bold).Fprintln(r.out, "🎉 sandwich initialized successfully!")
	}

	fmt.Fprintln(r.out)
	color.New(color.FgCyan, color.Bold).Fprintln(r.out, "📋 Next steps:")
	fmt.Fprintln(r.out, "1. Copy .env.example to .env and set PRIVATE_KEY")
	fmt.Fprintln(r.out, "2. Compile EarthSandwichNFT with Hardhat or Foundry")
	fmt.Fprintln(r.out, "3. Deploy it:  sandwich deploy")
	return nil
}

var _ Renderer[*usecase.InitProjectResult] = (*InitRenderer)(nil)
