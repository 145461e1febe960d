//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"
	"github.com/spf13/viper"

	"github.com/earth-sandwich/sandwich-cli/internal/adapters"
	"github.com/earth-sandwich/sandwich-cli/internal/config"
	"github.com/earth-sandwich/sandwich-cli/internal/logging"
	"github.com/earth-sandwich/sandwich-cli/internal/usecase"
)

// InitApp creates a fully wired App instance. The cleanup closes the RPC connection.
func InitApp(v *viper.Viper) (*App, func(), error) {
	wire.Build(
		// Configuration
		config.Provider,
		logging.LoggingSet,

		// Adapters
		adapters.AllAdapters,

		// Use cases
		usecase.NewResolveContract,
		usecase.NewDeployContract,
		usecase.NewInitiateSandwich,
		usecase.NewQueryParticipated,
		usecase.NewQueryDetails,
		usecase.NewListDeployments,
		usecase.NewListNetworks,
		usecase.NewShowConfig,
		usecase.NewComputeID,
		usecase.NewInitProject,

		// App
		NewApp,
	)
	return nil, nil, nil
}
