// Package configloader discovers and loads syntree configuration,
// layering file settings under environment and CLI overrides.
package configloader

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/yaklabco/syntree/pkg/config"
)

// Environment variables recognized by the loader.
const (
	EnvConfigPath = "SYNTREE_CONFIG"
	EnvLogLevel   = "SYNTREE_LOG_LEVEL"
)

// configFileNames are probed in order within each directory.
//
//nolint:gochecknoglobals // Read-only lookup table.
var configFileNames = []string{".syntree.yml", ".syntree.yaml"}

// LoadOptions controls configuration loading.
type LoadOptions struct {
	// WorkingDir is where upward discovery starts.
	WorkingDir string

	// ExplicitPath skips discovery and loads exactly this file.
	// Missing explicit files are an error; missing discovered files
	// are not.
	ExplicitPath string

	// CLIConfig holds values set via command-line flags. They take
	// precedence over both the environment and the file.
	CLIConfig *config.Config
}

// LoadResult is the outcome of configuration loading.
type LoadResult struct {
	Config *config.Config

	// LoadedFrom is the path of the file that contributed settings,
	// empty when only defaults and overrides applied.
	LoadedFrom string
}

// Load resolves the effective configuration: defaults, then the
// config file, then environment variables, then CLI flags.
func Load(opts LoadOptions) (*LoadResult, error) {
	result := &LoadResult{Config: config.Default()}

	path, err := resolvePath(opts)
	if err != nil {
		return nil, err
	}
	if path != "" {
		fileCfg, err := loadFile(path)
		if err != nil {
			return nil, err
		}
		result.Config = result.Config.Merge(fileCfg)
		result.LoadedFrom = path
	}

	if level := os.Getenv(EnvLogLevel); level != "" {
		result.Config.LogLevel = level
	}

	result.Config = result.Config.Merge(opts.CLIConfig)

	return result, nil
}

// resolvePath picks the config file to load: the explicit path, the
// environment path, or the nearest discovered file. An empty result
// means "no file, defaults only".
func resolvePath(opts LoadOptions) (string, error) {
	explicit := opts.ExplicitPath
	if explicit == "" {
		explicit = os.Getenv(EnvConfigPath)
	}
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", fmt.Errorf("config file %s: %w", explicit, err)
		}
		return explicit, nil
	}

	return discover(opts.WorkingDir), nil
}

// discover walks from dir toward the filesystem root and returns the
// first config file found, or "".
func discover(dir string) string {
	if dir == "" {
		return ""
	}

	for {
		for _, name := range configFileNames {
			candidate := filepath.Join(dir, name)
			if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
				return candidate
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

func loadFile(path string) (*config.Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // Path comes from the user's own config discovery
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &config.Config{}, nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg, err := config.FromYAML(data)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}
