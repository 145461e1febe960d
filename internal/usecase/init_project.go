package usecase

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/earth-sandwich/sandwich-cli/internal/domain/config"
)

// InitProject writes a starter sandwich.toml, .env.example and an empty registry
type InitProject struct {
	config     *config.RuntimeConfig
	fileWriter FileWriter
	progress   ProgressSink
}

// NewInitProject creates a new init project use case
func NewInitProject(cfg *config.RuntimeConfig, fileWriter FileWriter, progress ProgressSink) *InitProject {
	return &InitProject{
		config:     cfg,
		fileWriter: fileWriter,
		progress:   progress,
	}
}

// InitProjectParams contains parameters for project initialization
type InitProjectParams struct {
	// Force overwrites an existing sandwich.toml
	Force bool
}

// InitProjectResult contains the result of project initialization
type InitProjectResult struct {
	ProjectRoot        string
	AlreadyInitialized bool
	Steps              []InitStep
}

// InitStep represents a step in the initialization process
type InitStep struct {
	Name    string
	Success bool
	Message string
	Error   error
}

// Run initializes a project in the project root. Steps after a failed one still run.
func (i *InitProject) Run(ctx context.Context, params InitProjectParams) (*InitProjectResult, error) {
	result := &InitProjectResult{ProjectRoot: i.config.ProjectRoot}

	step := i.createProjectFile(ctx, params.Force)
	result.Steps = append(result.Steps, step)
	if step.Success && step.Message == "sandwich.toml already exists" {
		result.AlreadyInitialized = true
	}

	result.Steps = append(result.Steps, i.createRegistry(ctx))
	result.Steps = append(result.Steps, i.createExampleEnvironment(ctx))

	for _, s := range result.Steps {
		if s.Error != nil {
			return result, s.Error
		}
	}
	return result, nil
}

func (i *InitProject) path(name string) string {
	return filepath.Join(i.config.ProjectRoot, name)
}

func (i *InitProject) createProjectFile(ctx context.Context, force bool) InitStep {
	const name = "Create sandwich.toml"

	exists, err := i.fileWriter.FileExists(ctx, i.path("sandwich.toml"))
	if err != nil {
		return InitStep{Name: name, Error: fmt.Errorf("failed to check sandwich.toml: %w", err)}
	}
	if exists && !force {
		return InitStep{Name: name, Success: true, Message: "sandwich.toml already exists"}
	}

	body, err := i.fileWriter.EncodeProjectFile(config.DefaultProjectFile())
	if err != nil {
		return InitStep{Name: name, Error: fmt.Errorf("failed to render sandwich.toml: %w", err)}
	}

	content := `# sandwich.toml: EarthSandwichNFT project configuration
#
# Networks may reference environment variables as ${VAR}; .env and
# .env.local in this directory are loaded first.

` + body

	if err := i.fileWriter.WriteFile(ctx, i.path("sandwich.toml"), content); err != nil {
		return InitStep{Name: name, Error: fmt.Errorf("failed to create sandwich.toml: %w", err)}
	}
	return InitStep{Name: name, Success: true, Message: "Created sandwich.toml for the lukso network"}
}

func (i *InitProject) createRegistry(ctx context.Context) InitStep {
	const name = "Create Registry"

	if err := i.fileWriter.EnsureDirectory(ctx, i.config.DataDir); err != nil {
		return InitStep{Name: name, Error: fmt.Errorf("failed to create %s: %w", i.config.DataDir, err)}
	}

	registry := filepath.Join(i.config.DataDir, "deployments.json")
	exists, err := i.fileWriter.FileExists(ctx, registry)
	if err != nil {
		return InitStep{Name: name, Error: fmt.Errorf("failed to check registry: %w", err)}
	}
	if exists {
		return InitStep{Name: name, Success: true, Message: "Registry already exists"}
	}

	if err := i.fileWriter.WriteFile(ctx, registry, "{}\n"); err != nil {
		return InitStep{Name: name, Error: fmt.Errorf("failed to create %s: %w", registry, err)}
	}
	return InitStep{Name: name, Success: true, Message: "Created empty deployment registry"}
}

func (i *InitProject) createExampleEnvironment(ctx context.Context) InitStep {
	const name = "Create Environment Example"

	exists, err := i.fileWriter.FileExists(ctx, i.path(".env.example"))
	if err != nil {
		return InitStep{Name: name, Error: fmt.Errorf("failed to check .env.example: %w", err)}
	}
	if exists {
		return InitStep{Name: name, Success: true, Message: ".env.example already exists"}
	}

	envExample := `# Signing key of the deployer, with or without 0x
PRIVATE_KEY=

# Overrides
# SANDWICH_NETWORK=lukso
# SANDWICH_CONFIRM_TIMEOUT=2m
# SANDWICH_LOG_LEVEL=info
`

	if err := i.fileWriter.WriteFile(ctx, i.path(".env.example"), envExample); err != nil {
		return InitStep{Name: name, Error: fmt.Errorf("failed to create .env.example: %w", err)}
	}
	return InitStep{Name: name, Success: true, Message: "Created .env.example"}
}
