package render

import (
	"fmt"
	"io"

	"github.com/earth-sandwich/sandwich-cli/internal/usecase"
)

// InitiateRenderer renders the outcome of initiateSandwich
type InitiateRenderer struct {
	out  io.Writer
	json bool
}

// NewInitiateRenderer creates a new initiate renderer
func NewInitiateRenderer(out io.Writer, json bool) *InitiateRenderer {
	return &InitiateRenderer{out: out, json: json}
}

type initiateJSON struct {
	Name         string   `json:"name"`
	ID           string   `json:"id,omitempty"`
	Contract     string   `json:"contract"`
	Version      string   `json:"version"`
	Participants int      `json:"participants"`
	TxHash       string   `json:"txHash"`
	BlockNumber  uint64   `json:"blockNumber"`
	Events       []string `json:"events,omitempty"`
}

// Render prints the success line; v1 sandwiches include their id
func (r *InitiateRenderer) Render(result *usecase.InitiateSandwichResult) error {
	name := result.Sandwich.SandwichName()
	id, hasID := result.ID()

	if r.json {
		out := initiateJSON{
			Name:         name,
			Contract:     result.Contract.Address.Hex(),
			Version:      string(result.Contract.Version),
			Participants: len(result.Sandwich.SandwichParticipants()),
			TxHash:       result.Tx.Hash.Hex(),
			BlockNumber:  result.Tx.BlockNumber,
		}
		for _, e := range result.Events {
			out.Events = append(out.Events, e.String())
		}
		if hasID {
			out.ID = id.Hex()
		}
		return RenderJSON(r.out, out)
	}

	if hasID {
		fmt.Fprintf(r.out, "Sandwich '%s' initiated with ID: %s\n", name, id.Hex())
	} else {
		fmt.Fprintf(r.out, "Sandwich '%s' initiated\n", name)
	}
	fmt.Fprintf(r.out, "  %s %s\n", labelStyle.Sprint("Participants:"), addressStyle.Sprint(FormatAddresses(result.Sandwich.SandwichParticipants())))
	for _, line := range txLines(result.Tx) {
		fmt.Fprintln(r.out, line)
	}
	for _, e := range result.Events {
		fmt.Fprintf(r.out, "  %s %s\n", labelStyle.Sprint("Event:"), e.String())
	}
	return nil
}

// ParticipatedRenderer renders getParticipatedSandwiches results
type ParticipatedRenderer struct {
	out  io.Writer
	json bool
}

// NewParticipatedRenderer creates a new participated renderer
func NewParticipatedRenderer(out io.Writer, json bool) *ParticipatedRenderer {
	return &ParticipatedRenderer{out: out, json: json}
}

// Render prints the raw id list
func (r *ParticipatedRenderer) Render(result *usecase.QueryParticipatedResult) error {
	if r.json {
		ids := make([]string, len(result.Sandwiches))
		for i, id := range result.Sandwiches {
			ids[i] = id.Hex()
		}
		return RenderJSON(r.out, map[string]any{
			"participant": result.Participant.Hex(),
			"sandwiches":  ids,
		})
	}

	fmt.Fprintf(r.out, "Participated Sandwiches: %s\n", FormatIDs(result.Sandwiches))
	return nil
}

// DetailsRenderer renders getSandwichDetails results
type DetailsRenderer struct {
	out  io.Writer
	json bool
}

// NewDetailsRenderer creates a new details renderer
func NewDetailsRenderer(out io.Writer, json bool) *DetailsRenderer {
	return &DetailsRenderer{out: out, json: json}
}

// Render prints the record as returned by the contract
func (r *DetailsRenderer) Render(result *usecase.QueryDetailsResult) error {
	if r.json {
		values := make(map[string]any, len(result.Record.Values))
		for i, v := range result.Record.Values {
			key := v.Name
			if key == "" {
				key = fmt.Sprintf("%d", i)
			}
			values[key] = v.Value
		}
		return RenderJSON(r.out, map[string]any{
			"id":      result.ID.Hex(),
			"details": values,
		})
	}

	fmt.Fprintf(r.out, "Sandwich Details: %s\n", result.Record.String())
	return nil
}

var (
	_ Renderer[*usecase.InitiateSandwichResult]  = (*InitiateRenderer)(nil)
	_ Renderer[*usecase.QueryParticipatedResult] = (*ParticipatedRenderer)(nil)
	_ Renderer[*usecase.QueryDetailsResult]      = (*DetailsRenderer)(nil)
)
