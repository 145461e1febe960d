package render

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/samber/lo"

	"github.com/earth-sandwich/sandwich-cli/internal/config"
	"github.com/earth-sandwich/sandwich-cli/internal/usecase"
)

// ConfigRenderer renders config-related output
type ConfigRenderer struct {
	out  io.Writer
	json bool
}

// NewConfigRenderer creates a new config renderer
func NewConfigRenderer(out io.Writer, json bool) *ConfigRenderer {
	return &ConfigRenderer{
		out:  out,
		json: json,
	}
}

// getRelativePath returns the relative path from current directory
func getRelativePath(path string) string {
	cwd, err := os.Getwd()
	if err != nil {
		return path
	}

	relPath, err := filepath.Rel(cwd, path)
	if err != nil {
		return path
	}

	return relPath
}

// Render renders the resolved configuration. The private key is always redacted.
func (r *ConfigRenderer) Render(result *usecase.ShowConfigResult) error {
	if r.json {
		return RenderJSON(r.out, result)
	}

	fmt.Fprintln(r.out, "📋 Current config:")

	if result.Network != nil {
		fmt.Fprintf(r.out, "Network:   %s\n", keyStyle.Sprint(result.NetworkName))
		fmt.Fprintf(r.out, "  RPC URL:     %s\n", result.Network.RPCURL)
		if result.Network.ChainID != 0 {
			fmt.Fprintf(r.out, "  Chain ID:    %d\n", result.Network.ChainID)
		}
		if result.Network.ExplorerURL != "" {
			fmt.Fprintf(r.out, "  Explorer:    %s\n", result.Network.ExplorerURL)
		}
		signingKey := config.RedactKey(result.Network.PrivateKey)
		if result.Network.KeyEnv != "" {
			signingKey += labelStyle.Sprintf(" (from $%s)", result.Network.KeyEnv)
		}
		fmt.Fprintf(r.out, "  Signing key: %s\n", signingKey)
	} else if result.NetworkName != "" {
		fmt.Fprintf(r.out, "Network:   %s %s\n", result.NetworkName, FormatWarning("not configured"))
	} else {
		fmt.Fprintf(r.out, "Network:   %s\n", "(not set)")
	}

	optimizer := "disabled"
	if result.Compiler.Optimizer.Enabled {
		optimizer = fmt.Sprintf("enabled, %d runs", result.Compiler.Optimizer.Runs)
	}
	fmt.Fprintf(r.out, "Compiler:  solc %s (optimizer %s)\n", result.Compiler.Version, optimizer)

	if len(result.Contracts) > 0 {
		fmt.Fprintln(r.out, "Contracts:")
		for _, c := range result.Contracts {
			marker := " "
			if c.Key == result.Default {
				marker = "*"
			}
			address := c.Address
			if address == "" {
				address = labelStyle.Sprint("(from registry)")
			}
			scope := ""
			if c.Network != "" {
				scope = labelStyle.Sprintf(" on %s", c.Network)
			}
			fmt.Fprintf(r.out, "%s %-6s %s %s %s%s\n", marker, c.Key, versionStyle.Sprint(c.Version), c.Artifact, address, scope)
		}
	}

	fmt.Fprintf(r.out, "\n📦 Config source: %s\n", result.ConfigSource)
	fmt.Fprintf(r.out, "📁 Project root: %s\n", getRelativePath(result.ProjectRoot))
	fmt.Fprintf(r.out, "🗂  Registry:     %s\n", getRelativePath(filepath.Join(result.DataDir, "deployments.json")))
	fmt.Fprintf(r.out, "🔎 Artifacts:    %s\n", strings.Join(lo.Map(result.ArtifactDirs, func(p string, _ int) string { return getRelativePath(p) }), ", "))

	return nil
}

var _ Renderer[*usecase.ShowConfigResult] = (*ConfigRenderer)(nil)
