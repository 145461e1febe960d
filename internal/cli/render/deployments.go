package render

import (
	"fmt"
	"io"
	"sort"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/earth-sandwich/sandwich-cli/internal/domain/models"
	"github.com/earth-sandwich/sandwich-cli/internal/usecase"
)

var (
	networkHeader  = color.New(color.BgCyan, color.FgBlack, color.Bold)
	versionStyle   = color.New(color.FgGreen, color.Bold)
	timestampStyle = color.New(color.Faint)
)

// DeploymentsRenderer renders registry records grouped by network
type DeploymentsRenderer struct {
	out  io.Writer
	json bool
}

// NewDeploymentsRenderer creates a new deployments renderer
func NewDeploymentsRenderer(out io.Writer, json bool) *DeploymentsRenderer {
	return &DeploymentsRenderer{
		out:  out,
		json: json,
	}
}

// Render renders the deployment list
func (r *DeploymentsRenderer) Render(result *usecase.DeploymentListResult) error {
	if r.json {
		return RenderJSON(r.out, result.Deployments)
	}

	if len(result.Deployments) == 0 {
		fmt.Fprintln(r.out, "No deployments found")
		return nil
	}

	groups := make(map[string][]*models.Deployment)
	for _, dep := range result.Deployments {
		groups[dep.Network] = append(groups[dep.Network], dep)
	}
	networks := make([]string, 0, len(groups))
	for network := range groups {
		networks = append(networks, network)
	}
	sort.Strings(networks)

	for i, network := range networks {
		if i > 0 {
			fmt.Fprintln(r.out)
		}
		deps := groups[network]
		fmt.Fprintf(r.out, "%s %s\n", networkHeader.Sprintf(" %s ", network), labelStyle.Sprintf("chain %d", deps[0].ChainID))
		fmt.Fprintln(r.out, renderDeploymentTable(deps))
	}

	fmt.Fprintln(r.out)
	fmt.Fprintf(r.out, "Total: %d deployment(s)\n", result.Summary.Total)
	return nil
}

// renderDeploymentTable renders one network's deployments without borders
func renderDeploymentTable(deps []*models.Deployment) string {
	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.Style().Options.SeparateRows = false
	t.Style().Options.DrawBorder = false
	t.Style().Options.SeparateHeader = false
	t.Style().Options.SeparateColumns = false
	t.Style().Box = table.BoxStyle{
		PaddingRight: "   ",
	}
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft},
		{Number: 2, Align: text.AlignLeft},
		{Number: 3, Align: text.AlignLeft},
		{Number: 4, Align: text.AlignLeft},
		{Number: 5, Align: text.AlignLeft},
	})

	for _, dep := range deps {
		t.AppendRow(table.Row{
			"  " + versionStyle.Sprint(dep.Version),
			dep.Contract,
			addressStyle.Sprint(dep.Address),
			labelStyle.Sprint("owner ") + dep.Owner,
			timestampStyle.Sprint(dep.CreatedAt.Local().Format("2006-01-02 15:04:05")),
		})
	}

	return t.Render()
}

var _ Renderer[*usecase.DeploymentListResult] = (*DeploymentsRenderer)(nil)
