package render

import (
	"fmt"
	"io"

	"github.com/earth-sandwich/sandwich-cli/internal/usecase"
)

// IDRenderer renders derived sandwich ids
type IDRenderer struct {
	out  io.Writer
	json bool
}

// NewIDRenderer creates a new id renderer
func NewIDRenderer(out io.Writer, json bool) *IDRenderer {
	return &IDRenderer{out: out, json: json}
}

// Render prints one id per line; several seeds are prefixed with the seed
func (r *IDRenderer) Render(results []usecase.ComputeIDResult) error {
	if r.json {
		out := make([]map[string]string, len(results))
		for i, res := range results {
			out[i] = map[string]string{"seed": res.Seed, "id": res.ID.Hex()}
		}
		return RenderJSON(r.out, out)
	}

	for _, res := range results {
		if len(results) == 1 {
			fmt.Fprintln(r.out, res.ID.Hex())
			continue
		}
		fmt.Fprintf(r.out, "%s  %s\n", res.ID.Hex(), labelStyle.Sprintf("%q", res.Seed))
	}
	return nil
}

var _ Renderer[[]usecase.ComputeIDResult] = (*IDRenderer)(nil)
