package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/earth-sandwich/sandwich-cli/internal/domain/config"
)

// ProjectFileName is the project configuration file looked up from the working directory
const ProjectFileName = "sandwich.toml"

// projectMarkers identify a project root when walking up the tree
var projectMarkers = []string{ProjectFileName, "hardhat.config.ts", "hardhat.config.js", "foundry.toml"}

// Provider creates RuntimeConfig for Wire dependency injection
func Provider(v *viper.Viper) (*config.RuntimeConfig, error) {
	projectRoot := v.GetString("project_root")
	if projectRoot == "" {
		var err error
		projectRoot, err = FindProjectRoot()
		if err != nil {
			return nil, err
		}
	}
	projectRoot, err := filepath.Abs(projectRoot)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve project root: %w", err)
	}

	// .env has to be loaded before ${VAR} references in the project file are expanded
	LoadDotEnv(projectRoot)

	project, source, err := LoadProjectFile(projectRoot)
	if err != nil {
		return nil, err
	}

	networks, err := ResolveNetworks(project.Networks)
	if err != nil {
		return nil, err
	}

	cfg := &config.RuntimeConfig{
		ProjectRoot:     projectRoot,
		DataDir:         resolvePath(projectRoot, lo.Ternary(project.Paths.Data != "", project.Paths.Data, ".sandwich")),
		ArtifactDirs:    lo.Map(project.Paths.Artifacts, func(p string, _ int) string { return resolvePath(projectRoot, p) }),
		NetworkName:     lo.Ternary(v.GetString("network") != "", v.GetString("network"), project.Defaults.Network),
		Networks:        networks,
		Debug:           v.GetBool("debug"),
		NonInteractive:  v.GetBool("non_interactive"),
		JSON:            v.GetBool("json"),
		Timeout:         v.GetDuration("timeout"),
		ConfirmTimeout:  v.GetDuration("confirm_timeout"),
		PollInterval:    v.GetDuration("poll_interval"),
		ConfigSource:    source,
		Compiler:        project.Compiler,
		Contracts:       project.Contracts,
		DefaultContract: project.Defaults.Contract,
	}

	if len(cfg.ArtifactDirs) == 0 {
		cfg.ArtifactDirs = []string{resolvePath(projectRoot, "artifacts"), resolvePath(projectRoot, "out")}
	}
	if cfg.DefaultContract == "" {
		cfg.DefaultContract = config.DefaultContractKey
		if len(cfg.Contracts) == 1 {
			cfg.DefaultContract = lo.Keys(cfg.Contracts)[0]
		}
	}
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = time.Second
	}
	if cfg.NetworkName == "" && len(networks) == 1 {
		cfg.NetworkName = lo.Keys(networks)[0]
	}
	cfg.Network = networks[cfg.NetworkName]

	return cfg, nil
}

// FindProjectRoot walks up from the current directory looking for a project marker.
// Without one the current directory is used and the built-in defaults apply.
func FindProjectRoot() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}

	dir := cwd
	for {
		for _, marker := range projectMarkers {
			if _, err := os.Stat(filepath.Join(dir, marker)); err == nil {
				return dir, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return cwd, nil
		}
		dir = parent
	}
}

// SetupViper creates and configures a viper instance
func SetupViper(projectRoot string, cmd *cobra.Command) *viper.Viper {
	v := viper.New()

	// Set up environment variables
	v.SetEnvPrefix("SANDWICH")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	// Set defaults
	v.SetDefault("timeout", "5m")
	v.SetDefault("confirm_timeout", "2m")
	v.SetDefault("poll_interval", "1s")
	v.SetDefault("debug", false)
	v.SetDefault("non_interactive", false)
	v.SetDefault("json", false)
	v.SetDefault("project_root", projectRoot)

	if cmd != nil {
		bindFlags(v, cmd.Flags())
		bindFlags(v, cmd.InheritedFlags())
	}

	return v
}

// bindFlags binds every flag under its snake_case key
func bindFlags(v *viper.Viper, flags *pflag.FlagSet) {
	flags.VisitAll(func(f *pflag.Flag) {
		key := strings.ReplaceAll(f.Name, "-", "_")
		if err := v.BindPFlag(key, f); err != nil {
			panic(err)
		}
	})
}

func resolvePath(root, p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(root, p)
}
