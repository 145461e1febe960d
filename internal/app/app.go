package app

import (
	"log/slog"

	"github.com/earth-sandwich/sandwich-cli/internal/domain/config"
	"github.com/earth-sandwich/sandwich-cli/internal/usecase"
)

// App is the main application container that holds all use cases
type App struct {
	// Configuration
	Config *config.RuntimeConfig
	Log    *slog.Logger

	// Shared dependencies
	Sink usecase.ProgressSink

	// Use cases
	DeployContract    *usecase.DeployContract
	InitiateSandwich  *usecase.InitiateSandwich
	QueryParticipated *usecase.QueryParticipated
	QueryDetails      *usecase.QueryDetails
	ListDeployments   *usecase.ListDeployments
	ListNetworks      *usecase.ListNetworks
	ShowConfig        *usecase.ShowConfig
	ComputeID         *usecase.ComputeID
	InitProject       *usecase.InitProject
}

// NewApp creates a new application instance with all use cases
func NewApp(
	cfg *config.RuntimeConfig,
	log *slog.Logger,
	sink usecase.ProgressSink,
	deployContract *usecase.DeployContract,
	initiateSandwich *usecase.InitiateSandwich,
	queryParticipated *usecase.QueryParticipated,
	queryDetails *usecase.QueryDetails,
	listDeployments *usecase.ListDeployments,
	listNetworks *usecase.ListNetworks,
	showConfig *usecase.ShowConfig,
	computeID *usecase.ComputeID,
	initProject *usecase.InitProject,
) (*App, error) {
	return &App{
		Config:            cfg,
		Log:               log,
		Sink:              sink,
		DeployContract:    deployContract,
		InitiateSandwich:  initiateSandwich,
		QueryParticipated: queryParticipated,
		QueryDetails:      queryDetails,
		ListDeployments:   listDeployments,
		ListNetworks:      listNetworks,
		ShowConfig:        showConfig,
		ComputeID:         computeID,
		InitProject:       initProject,
	}, nil
}
