package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/earth-sandwich/sandwich-cli/internal/domain/models"
	"github.com/earth-sandwich/sandwich-cli/internal/usecase"
)

func TestListDeployments(t *testing.T) {
	ctx := context.Background()

	t.Run("list all deployments", func(t *testing.T) {
		older := testDeployment("lukso", "v1", common.HexToAddress("0x1111111111111111111111111111111111111111"))
		newer := testDeployment("lukso", "v2", common.HexToAddress("0x2222222222222222222222222222222222222222"))
		newer.CreatedAt = older.CreatedAt.Add(time.Hour)
		local := testDeployment("local", "v1", common.HexToAddress("0x3333333333333333333333333333333333333333"))

		store := new(MockDeploymentStore)
		store.On("ListDeployments", ctx, models.DeploymentFilter{}).Return([]*models.Deployment{older, newer, local}, nil)

		progress := &MockProgressSink{}
		uc := usecase.NewListDeployments(store, progress)
		result, err := uc.Run(ctx, usecase.ListDeploymentsParams{})

		require.NoError(t, err)
		// Sorted by network, newest first within a network
		assert.Equal(t, []*models.Deployment{local, newer, older}, result.Deployments)
		assert.Equal(t, 3, result.Summary.Total)
		assert.Equal(t, 2, result.Summary.ByNetwork["lukso"])
		assert.Equal(t, 1, result.Summary.ByNetwork["local"])
		assert.Equal(t, 2, result.Summary.ByVersion["v1"])
		assert.Equal(t, 1, result.Summary.ByVersion["v2"])
		assert.NotEmpty(t, progress.events)
	})

	t.Run("passes filters through", func(t *testing.T) {
		store := new(MockDeploymentStore)
		filter := models.DeploymentFilter{Network: "lukso", Contract: "EarthSandwichNFT", Version: "v2"}
		store.On("ListDeployments", ctx, filter).Return([]*models.Deployment{}, nil)

		uc := usecase.NewListDeployments(store, &MockProgressSink{})
		result, err := uc.Run(ctx, usecase.ListDeploymentsParams{Network: "lukso", Contract: "EarthSandwichNFT", Version: "v2"})

		require.NoError(t, err)
		assert.Empty(t, result.Deployments)
		assert.Equal(t, 0, result.Summary.Total)
		store.AssertExpectations(t)
	})

	t.Run("store error", func(t *testing.T) {
		store := new(MockDeploymentStore)
		store.On("ListDeployments", ctx, models.DeploymentFilter{}).Return(nil, errors.New("corrupt registry"))

		uc := usecase.NewListDeployments(store, &MockProgressSink{})
		_, err := uc.Run(ctx, usecase.ListDeploymentsParams{})
		assert.EqualError(t, err, "corrupt registry")
	})
}
