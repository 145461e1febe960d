package usecase

import (
	"context"
	"sort"

	"github.com/samber/lo"

	"github.com/earth-sandwich/sandwich-cli/internal/domain/models"
)

// ListDeploymentsParams contains parameters for listing deployments
type ListDeploymentsParams struct {
	Network  string
	Contract string
	Version  string
}

// DeploymentListResult contains the result of listing deployments
type DeploymentListResult struct {
	Deployments []*models.Deployment
	Summary     DeploymentSummary
}

// DeploymentSummary provides summary statistics
type DeploymentSummary struct {
	Total     int
	ByNetwork map[string]int
	ByVersion map[string]int
}

// ListDeployments is the use case for listing deployments
type ListDeployments struct {
	store DeploymentRepository
	sink  ProgressSink
}

// NewListDeployments creates a new ListDeployments use case
func NewListDeployments(store DeploymentRepository, sink ProgressSink) *ListDeployments {
	return &ListDeployments{
		store: store,
		sink:  sink,
	}
}

// Run executes the list deployments use case
func (uc *ListDeployments) Run(ctx context.Context, params ListDeploymentsParams) (*DeploymentListResult, error) {
	uc.sink.OnProgress(ctx, ProgressEvent{
		Stage:   "loading",
		Message: "Loading deployments from registry",
		Spinner: true,
	})

	filter := models.DeploymentFilter{
		Network:  params.Network,
		Contract: params.Contract,
		Version:  params.Version,
	}

	deployments, err := uc.store.ListDeployments(ctx, filter)
	uc.sink.OnProgress(ctx, ProgressEvent{Stage: StageCompleted})
	if err != nil {
		return nil, err
	}

	sortDeployments(deployments)

	return &DeploymentListResult{
		Deployments: deployments,
		Summary:     calculateSummary(deployments),
	}, nil
}

// sortDeployments sorts deployments by network, then newest first
func sortDeployments(deployments []*models.Deployment) {
	sort.SliceStable(deployments, func(i, j int) bool {
		if deployments[i].Network != deployments[j].Network {
			return deployments[i].Network < deployments[j].Network
		}
		return deployments[i].CreatedAt.After(deployments[j].CreatedAt)
	})
}

func calculateSummary(deployments []*models.Deployment) DeploymentSummary {
	return DeploymentSummary{
		Total:     len(deployments),
		ByNetwork: lo.CountValuesBy(deployments, func(d *models.Deployment) string { return d.Network }),
		ByVersion: lo.CountValuesBy(deployments, func(d *models.Deployment) string { return d.Version }),
	}
}
