package render

import (
	"fmt"
	"io"

	"github.com/earth-sandwich/sandwich-cli/internal/usecase"
)

// NetworksRenderer renders network lists
type NetworksRenderer struct {
	out  io.Writer
	json bool
}

// NewNetworksRenderer creates a new networks renderer
func NewNetworksRenderer(out io.Writer, json bool) *NetworksRenderer {
	return &NetworksRenderer{
		out:  out,
		json: json,
	}
}

type networkJSON struct {
	Name          string `json:"name"`
	RPCURL        string `json:"rpcUrl"`
	ChainID       uint64 `json:"chainId,omitempty"`
	HasCredential bool   `json:"hasCredential"`
	Current       bool   `json:"current"`
	Error         string `json:"error,omitempty"`
}

// Render renders the list of networks
func (r *NetworksRenderer) Render(result *usecase.ListNetworksResult) error {
	if r.json {
		out := make([]networkJSON, len(result.Networks))
		for i, n := range result.Networks {
			out[i] = networkJSON{
				Name:          n.Name,
				RPCURL:        n.RPCURL,
				ChainID:       n.ChainID,
				HasCredential: n.HasCredential,
				Current:       n.Name == result.Current,
			}
			if n.Error != nil {
				out[i].Error = n.Error.Error()
			}
		}
		return RenderJSON(r.out, out)
	}

	if len(result.Networks) == 0 {
		fmt.Fprintln(r.out, "No networks configured in sandwich.toml [networks]")
		return nil
	}

	fmt.Fprintln(r.out, "🌐 Available Networks:")
	fmt.Fprintln(r.out)

	for _, network := range result.Networks {
		marker := " "
		if network.Name == result.Current {
			marker = "*"
		}
		key := ""
		if !network.HasCredential {
			key = labelStyle.Sprint(" (no signing key)")
		}
		if network.Error != nil {
			fmt.Fprintf(r.out, "%s ❌ %s - Error: %v%s\n", marker, network.Name, network.Error, key)
		} else {
			fmt.Fprintf(r.out, "%s ✅ %s - Chain ID: %d%s\n", marker, network.Name, network.ChainID, key)
		}
	}

	return nil
}

var _ Renderer[*usecase.ListNetworksResult] = (*NetworksRenderer)(nil)
