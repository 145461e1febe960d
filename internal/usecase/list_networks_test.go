package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/earth-sandwich/sandwich-cli/internal/domain"
	"github.com/earth-sandwich/sandwich-cli/internal/domain/config"
	"github.com/earth-sandwich/sandwich-cli/internal/usecase"
)

func TestListNetworks(t *testing.T) {
	ctx := context.Background()

	lukso := &config.Network{Name: "lukso", RPCURL: "https://rpc.l14.lukso.network/", ChainID: 22, PrivateKey: "ab"}
	local := &config.Network{Name: "local", RPCURL: "http://127.0.0.1:8545"}

	setup := func() (*MockNetworkResolver, *MockChainInspector) {
		resolver := new(MockNetworkResolver)
		resolver.On("GetNetworks", ctx).Return([]string{"lukso", "local"})
		resolver.On("ResolveNetwork", ctx, "lukso").Return(lukso, nil)
		resolver.On("ResolveNetwork", ctx, "local").Return(local, nil)
		return resolver, new(MockChainInspector)
	}

	t.Run("queries chain ids", func(t *testing.T) {
		resolver, inspector := setup()
		inspector.On("ChainID", ctx, lukso).Return(uint64(22), nil)
		inspector.On("ChainID", ctx, local).Return(uint64(0), errors.New("connection refused"))

		result, err := usecase.NewListNetworks(testConfig(), resolver, inspector).Run(ctx, usecase.ListNetworksParams{})
		require.NoError(t, err)

		assert.Equal(t, "lukso", result.Current)
		require.Len(t, result.Networks, 2)

		// Sorted by name
		assert.Equal(t, "local", result.Networks[0].Name)
		assert.EqualError(t, result.Networks[0].Error, "connection refused")
		assert.False(t, result.Networks[0].HasCredential)

		assert.Equal(t, "lukso", result.Networks[1].Name)
		assert.Equal(t, uint64(22), result.Networks[1].ChainID)
		assert.True(t, result.Networks[1].HasCredential)
		assert.NoError(t, result.Networks[1].Error)
	})

	t.Run("offline skips the rpc", func(t *testing.T) {
		resolver, inspector := setup()

		result, err := usecase.NewListNetworks(testConfig(), resolver, inspector).Run(ctx, usecase.ListNetworksParams{SkipChainID: true})
		require.NoError(t, err)
		require.Len(t, result.Networks, 2)
		assert.Equal(t, uint64(22), result.Networks[1].ChainID)
		inspector.AssertNotCalled(t, "ChainID", mock.Anything, mock.Anything)
	})

	t.Run("chain id mismatch is reported per network", func(t *testing.T) {
		resolver, inspector := setup()
		inspector.On("ChainID", ctx, lukso).Return(uint64(42), domain.ErrChainIDMismatch)
		inspector.On("ChainID", ctx, local).Return(uint64(31337), nil)

		result, err := usecase.NewListNetworks(testConfig(), resolver, inspector).Run(ctx, usecase.ListNetworksParams{})
		require.NoError(t, err)
		assert.ErrorIs(t, result.Networks[1].Error, domain.ErrChainIDMismatch)
		assert.Equal(t, uint64(31337), result.Networks[0].ChainID)
	})
}
