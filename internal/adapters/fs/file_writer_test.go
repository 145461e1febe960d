package fs

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/BurntSushi/toml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/earth-sandwich/sandwich-cli/internal/domain/config"
)

func TestFileWriter(t *testing.T) {
	ctx := context.Background()
	writer := NewFileWriterAdapter()
	path := filepath.Join(t.TempDir(), "nested", "dir", "sandwich.toml")

	exists, err := writer.FileExists(ctx, path)
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, writer.WriteFile(ctx, path, "x = 1\n"))

	exists, err = writer.FileExists(ctx, path)
	require.NoError(t, err)
	assert.True(t, exists)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "x = 1\n", string(data))

	dir := filepath.Join(t.TempDir(), ".sandwich")
	require.NoError(t, writer.EnsureDirectory(ctx, dir))
	assert.DirExists(t, dir)
}

func TestEncodeProjectFileRoundTrip(t *testing.T) {
	content, err := NewFileWriterAdapter().EncodeProjectFile(config.DefaultProjectFile())
	require.NoError(t, err)
	assert.Contains(t, content, "[networks.lukso]")
	assert.Contains(t, content, `private_key = "${PRIVATE_KEY}"`)

	var decoded config.ProjectFile
	_, err = toml.Decode(content, &decoded)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultContractAddress, decoded.Contracts[config.DefaultContractKey].Address)
	assert.Equal(t, config.DefaultNetworkName, decoded.Defaults.Network)
}
