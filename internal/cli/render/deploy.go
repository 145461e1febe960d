package render

import (
	"fmt"
	"io"

	"github.com/earth-sandwich/sandwich-cli/internal/usecase"
)

// DeployRenderer renders the outcome of a deployment
type DeployRenderer struct {
	out      io.Writer
	json     bool
	explorer string
}

// NewDeployRenderer creates a new deploy renderer
func NewDeployRenderer(out io.Writer, json bool, explorer string) *DeployRenderer {
	return &DeployRenderer{
		out:      out,
		json:     json,
		explorer: explorer,
	}
}

type deployJSON struct {
	Network     string `json:"network"`
	Address     string `json:"address"`
	Owner       string `json:"owner"`
	Deployer    string `json:"deployer"`
	TxHash      string `json:"txHash"`
	BlockNumber uint64 `json:"blockNumber"`
	GasUsed     uint64 `json:"gasUsed"`
}

// Render prints "Deployed to <address>" followed by the receipt details
func (r *DeployRenderer) Render(result *usecase.DeployContractResult) error {
	address := result.Tx.ContractAddress.Hex()

	if r.json {
		return RenderJSON(r.out, deployJSON{
			Network:     result.Network,
			Address:     address,
			Owner:       result.Owner.Hex(),
			Deployer:    result.Deployer.Hex(),
			TxHash:      result.Tx.Hash.Hex(),
			BlockNumber: result.Tx.BlockNumber,
			GasUsed:     result.Tx.GasUsed,
		})
	}

	fmt.Fprintf(r.out, "Deployed to %s\n", address)
	fmt.Fprintf(r.out, "  %s %s\n", labelStyle.Sprint("Owner:"), addressStyle.Sprint(result.Owner.Hex()))
	for _, line := range txLines(result.Tx) {
		fmt.Fprintln(r.out, line)
	}
	if link := explorerLink(r.explorer, "address", address); link != "" {
		fmt.Fprintf(r.out, "  %s %s\n", labelStyle.Sprint("Explorer:"), link)
	}
	return nil
}

var _ Renderer[*usecase.DeployContractResult] = (*DeployRenderer)(nil)
