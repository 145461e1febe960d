package usecase_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/earth-sandwich/sandwich-cli/internal/usecase"
)

func TestInitProject(t *testing.T) {
	ctx := context.Background()

	t.Run("fresh project", func(t *testing.T) {
		fw := new(MockFileWriter)
		fw.On("FileExists", ctx, "/project/sandwich.toml").Return(false, nil)
		fw.On("EncodeProjectFile", mock.Anything).Return("[compiler]\nversion = \"0.8.17\"\n", nil)
		fw.On("WriteFile", ctx, "/project/sandwich.toml", mock.MatchedBy(func(s string) bool {
			return strings.HasPrefix(s, "# sandwich.toml") && strings.Contains(s, `version = "0.8.17"`)
		})).Return(nil)
		fw.On("EnsureDirectory", ctx, "/project/.sandwich").Return(nil)
		fw.On("FileExists", ctx, "/project/.sandwich/deployments.json").Return(false, nil)
		fw.On("WriteFile", ctx, "/project/.sandwich/deployments.json", "{}\n").Return(nil)
		fw.On("FileExists", ctx, "/project/.env.example").Return(false, nil)
		fw.On("WriteFile", ctx, "/project/.env.example", mock.MatchedBy(func(s string) bool {
			return strings.Contains(s, "PRIVATE_KEY=")
		})).Return(nil)

		result, err := usecase.NewInitProject(testConfig(), fw, &MockProgressSink{}).Run(ctx, usecase.InitProjectParams{})
		require.NoError(t, err)

		assert.Equal(t, "/project", result.ProjectRoot)
		assert.False(t, result.AlreadyInitialized)
		require.Len(t, result.Steps, 3)
		for _, step := range result.Steps {
			assert.True(t, step.Success, step.Name)
		}
		fw.AssertExpectations(t)
	})

	t.Run("existing files are kept", func(t *testing.T) {
		fw := new(MockFileWriter)
		fw.On("FileExists", ctx, mock.Anything).Return(true, nil)
		fw.On("EnsureDirectory", ctx, "/project/.sandwich").Return(nil)

		result, err := usecase.NewInitProject(testConfig(), fw, &MockProgressSink{}).Run(ctx, usecase.InitProjectParams{})
		require.NoError(t, err)

		assert.True(t, result.AlreadyInitialized)
		assert.Equal(t, "sandwich.toml already exists", result.Steps[0].Message)
		fw.AssertNotCalled(t, "WriteFile", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("force rewrites sandwich.toml", func(t *testing.T) {
		fw := new(MockFileWriter)
		fw.On("FileExists", ctx, mock.Anything).Return(true, nil)
		fw.On("EncodeProjectFile", mock.Anything).Return("", nil)
		fw.On("WriteFile", ctx, "/project/sandwich.toml", mock.Anything).Return(nil)
		fw.On("EnsureDirectory", ctx, "/project/.sandwich").Return(nil)

		result, err := usecase.NewInitProject(testConfig(), fw, &MockProgressSink{}).Run(ctx, usecase.InitProjectParams{Force: true})
		require.NoError(t, err)
		assert.False(t, result.AlreadyInitialized)
		fw.AssertCalled(t, "WriteFile", ctx, "/project/sandwich.toml", mock.Anything)
	})

	t.Run("later steps still run after a failure", func(t *testing.T) {
		fw := new(MockFileWriter)
		fw.On("FileExists", ctx, "/project/sandwich.toml").Return(false, nil)
		fw.On("EncodeProjectFile", mock.Anything).Return("", nil)
		fw.On("WriteFile", ctx, "/project/sandwich.toml", mock.Anything).Return(errors.New("read-only"))
		fw.On("EnsureDirectory", ctx, "/project/.sandwich").Return(nil)
		fw.On("FileExists", ctx, mock.Anything).Return(true, nil)

		result, err := usecase.NewInitProject(testConfig(), fw, &MockProgressSink{}).Run(ctx, usecase.InitProjectParams{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "read-only")
		require.NotNil(t, result)
		require.Len(t, result.Steps, 3)
		assert.False(t, result.Steps[0].Success)
		assert.True(t, result.Steps[1].Success)
		assert.True(t, result.Steps[2].Success)
	})
}
