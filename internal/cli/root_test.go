package cli

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/earth-sandwich/sandwich-cli/internal/config"
)

func findCommand(t *testing.T, root *cobra.Command, name string) *cobra.Command {
	t.Helper()
	cmd, _, err := root.Find([]string{name})
	require.NoError(t, err)
	return cmd
}

func TestRootCommandTree(t *testing.T) {
	root := NewRootCmd()

	tests := []struct {
		name  string
		group string
	}{
		{"deploy", "main"},
		{"initiate", "main"},
		{"participated", "main"},
		{"details", "main"},
		{"init", "management"},
		{"deployments", "management"},
		{"networks", "management"},
		{"config", "management"},
		{"id", "management"},
		{"version", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := findCommand(t, root, tt.name)
			assert.Equal(t, tt.name, cmd.Name())
			assert.Equal(t, tt.group, cmd.GroupID)
		})
	}
}

func TestListAliases(t *testing.T) {
	root := NewRootCmd()
	for _, alias := range []string{"list", "ls"} {
		cmd := findCommand(t, root, alias)
		assert.Equal(t, "deployments", cmd.Name())
	}
}

func TestGlobalFlags(t *testing.T) {
	root := NewRootCmd()
	for _, name := range []string{"network", "debug", "non-interactive", "json", "timeout", "confirm-timeout", "project-root"} {
		assert.NotNil(t, root.PersistentFlags().Lookup(name), name)
	}
	assert.Equal(t, "n", root.PersistentFlags().Lookup("network").Shorthand)
}

func TestContractFlags(t *testing.T) {
	root := NewRootCmd()
	for _, name := range []string{"initiate", "participated", "details"} {
		cmd := findCommand(t, root, name)
		for _, flag := range []string{"contract", "address", "abi-version"} {
			assert.NotNil(t, cmd.Flags().Lookup(flag), "%s --%s", name, flag)
		}
	}
}

func TestContractFlagsParams(t *testing.T) {
	f := contractFlags{key: "main", address: "0x5B38Da6a701c568545dCfcB03FcB875f56beddC4", version: "v2"}
	params := f.params()
	assert.Equal(t, "main", params.Key)
	assert.Equal(t, "0x5B38Da6a701c568545dCfcB03FcB875f56beddC4", params.Address)
	assert.Equal(t, "v2", params.Version)
}

func TestVersionCommand(t *testing.T) {
	config.SetBuildFlags("1.2.3", "abc123", "2026-01-01")
	t.Cleanup(func() { config.SetBuildFlags("dev", "unknown", "unknown") })

	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"version"})

	require.NoError(t, root.Execute())
	assert.Equal(t, "sandwich version 1.2.3 (commit abc123, built 2026-01-01)\n", out.String())
}

func TestIDCommandRunsWithoutProject(t *testing.T) {
	chdir(t, t.TempDir())

	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"id", "earth-sandwich-1"})

	require.NoError(t, root.Execute())
	line := strings.TrimSpace(out.String())
	assert.True(t, strings.HasPrefix(line, "0x"))
	assert.Len(t, line, 66)
}

func TestIDCommandRequiresSeed(t *testing.T) {
	root := NewRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"id"})

	assert.Error(t, root.Execute())
}

func TestInitiateRejectsConflictingName(t *testing.T) {
	root := NewRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"initiate", "one", "--name", "two", "--project-root", t.TempDir()})

	err := root.Execute()
	require.Error(t, err)
}

func TestInitiateIDFlagsExclusive(t *testing.T) {
	root := NewRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"initiate", "x", "--id", "0x01", "--id-seed", "s", "--project-root", t.TempDir()})

	err := root.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "none of the others can be")
}

// chdir changes the working directory for the duration of the test and
// restores it on cleanup, like testing.T.Chdir in newer Go releases.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}
