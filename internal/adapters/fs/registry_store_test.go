package fs

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/earth-sandwich/sandwich-cli/internal/domain"
	"github.com/earth-sandwich/sandwich-cli/internal/domain/config"
	"github.com/earth-sandwich/sandwich-cli/internal/domain/models"
)

func newTestRegistry(t *testing.T) (*RegistryStoreAdapter, string) {
	t.Helper()
	dataDir := filepath.Join(t.TempDir(), ".sandwich")
	return NewRegistryStoreAdapter(&config.RuntimeConfig{DataDir: dataDir}), dataDir
}

func deployment(network, version, address string, at time.Time) *models.Deployment {
	return &models.Deployment{
		Network:   network,
		ChainID:   22,
		Contract:  "EarthSandwichNFT",
		Version:   version,
		Address:   address,
		CreatedAt: at,
	}
}

func TestRegistryStoreMissingFile(t *testing.T) {
	registry, dataDir := newTestRegistry(t)

	deployments, err := registry.ListDeployments(context.Background(), models.DeploymentFilter{})
	require.NoError(t, err)
	assert.Empty(t, deployments)
	assert.NoDirExists(t, dataDir)

	_, err = registry.LatestDeployment(context.Background(), "lukso", "v1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRegistryStoreSaveAndList(t *testing.T) {
	ctx := context.Background()
	registry, dataDir := newTestRegistry(t)
	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	older := deployment("lukso", "v1", "0x01", base)
	newer := deployment("lukso", "v1", "0x02", base.Add(time.Hour))
	other := deployment("sepolia", "v2", "0x03", base.Add(2*time.Hour))

	for _, d := range []*models.Deployment{newer, other, older} {
		require.NoError(t, registry.SaveDeployment(ctx, d))
	}
	assert.Equal(t, "lukso/v1/0x01", older.ID)
	assert.FileExists(t, filepath.Join(dataDir, DeploymentsFile))
	assert.NoFileExists(t, filepath.Join(dataDir, DeploymentsFile+".tmp"))

	all, err := registry.ListDeployments(ctx, models.DeploymentFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []string{"0x01", "0x02", "0x03"}, []string{all[0].Address, all[1].Address, all[2].Address})

	lukso, err := registry.ListDeployments(ctx, models.DeploymentFilter{Network: "lukso"})
	require.NoError(t, err)
	assert.Len(t, lukso, 2)

	latest, err := registry.LatestDeployment(ctx, "lukso", "V1")
	require.NoError(t, err)
	assert.Equal(t, "0x02", latest.Address)

	_, err = registry.LatestDeployment(ctx, "lukso", "v2")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// A fresh adapter sees what the first one wrote
	reopened := NewRegistryStoreAdapter(&config.RuntimeConfig{DataDir: dataDir})
	all, err = reopened.ListDeployments(ctx, models.DeploymentFilter{Version: "v2"})
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "sepolia", all[0].Network)
	assert.True(t, all[0].CreatedAt.Equal(other.CreatedAt))
}

func TestRegistryStoreReturnsCopies(t *testing.T) {
	ctx := context.Background()
	registry, _ := newTestRegistry(t)

	d := deployment("lukso", "v1", "0x01", time.Now())
	require.NoError(t, registry.SaveDeployment(ctx, d))
	d.Owner = "mutated"

	listed, err := registry.ListDeployments(ctx, models.DeploymentFilter{})
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Empty(t, listed[0].Owner)
}

func TestRegistryStoreCorruptFile(t *testing.T) {
	registry, dataDir := newTestRegistry(t)
	require.NoError(t, os.MkdirAll(dataDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dataDir, DeploymentsFile), []byte("{not json"), 0644))

	_, err := registry.ListDeployments(context.Background(), models.DeploymentFilter{})
	assert.ErrorContains(t, err, "failed to parse registry")
}
