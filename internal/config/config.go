// Package config loads docindex configuration from JSONC files and flags.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tailscale/hujson"

	"github.com/calvinalkan/doc-index/internal/index"
)

// Config holds all configuration options.
type Config struct {
	// From config files (serialized)
	Source     string `json:"source,omitempty"`
	Output     string `json:"output"`
	Title      string `json:"title,omitempty"`
	MapperFile string `json:"mapper_file"`

	// Resolved paths (computed, not serialized)
	EffectiveCwd string `json:"-"` // Absolute scan root (from -C flag or os.Getwd)
	OutputAbs    string `json:"-"` // Absolute path to the output file

	// Sources tracks which config files were loaded (for diagnostics)
	Sources Sources `json:"-"`
}

// Sources tracks which config files were loaded.
type Sources struct {
	Global  string // Path to global config if loaded, empty otherwise
	Project string // Path to project config if loaded, empty otherwise
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		Source:     string(index.SourceMapper),
		Output:     "README.md",
		Title:      index.DefaultTitle,
		MapperFile: index.DefaultMapperFile,
	}
}

// FileName is the default project config file name.
const FileName = ".docindex.json"

// appName names the directory of the global config file.
const appName = "docindex"

var (
	ErrFileNotFound    = errors.New("config file not found")
	ErrFileRead        = errors.New("cannot read config file")
	ErrInvalid         = errors.New("invalid config file")
	ErrOutputEmpty     = errors.New("output cannot be empty")
	ErrMapperFileEmpty = errors.New("mapper_file cannot be empty")
)

// Options returns the generator options for cfg.
func (c Config) Options() index.Options {
	return index.Options{
		Source:     index.Source(c.Source),
		MapperFile: c.MapperFile,
	}
}

// globalPath returns the path to the global config file.
// Uses $XDG_CONFIG_HOME/docindex/config.json if set, otherwise
// ~/.config/docindex/config.json. Returns empty string if home directory
// cannot be determined.
func globalPath(env map[string]string) string {
	if xdgConfig := env["XDG_CONFIG_HOME"]; xdgConfig != "" {
		return filepath.Join(xdgConfig, appName, "config.json")
	}

	if home := env["HOME"]; home != "" {
		return filepath.Join(home, ".config", appName, "config.json")
	}

	return ""
}

// LoadInput holds the inputs for Load.
type LoadInput struct {
	WorkDirOverride string            // -C/--cwd flag value; if empty, os.Getwd() is used
	ConfigPath      string            // -c/--config flag value
	Overrides       Config            // non-empty fields win over every file
	Env             map[string]string // environment variables
}

// Load loads configuration with the following precedence (highest wins):
// 1. Defaults
// 2. Global user config (~/.config/docindex/config.json or $XDG_CONFIG_HOME/docindex/config.json)
// 3. Project config file at default location (.docindex.json, if exists)
// 4. Explicit config file via ConfigPath (if non-empty)
// 5. CLI overrides.
//
// All paths in the returned Config are resolved to absolute paths.
func Load(input LoadInput) (Config, error) {
	workDir := input.WorkDirOverride
	if workDir == "" {
		var err error

		workDir, err = os.Getwd()
		if err != nil {
			return Config{}, fmt.Errorf("cannot get working directory: %w", err)
		}
	}

	workDir, err := filepath.Abs(workDir)
	if err != nil {
		return Config{}, fmt.Errorf("cannot resolve working directory: %w", err)
	}

	cfg := Default()

	globalCfg, globalFile, err := loadGlobal(input.Env)
	if err != nil {
		return Config{}, err
	}

	cfg.Sources.Global = globalFile
	cfg = merge(cfg, globalCfg)

	projectCfg, projectFile, err := loadProject(workDir, input.ConfigPath)
	if err != nil {
		return Config{}, err
	}

	cfg.Sources.Project = projectFile
	cfg = merge(cfg, projectCfg)

	cfg = merge(cfg, input.Overrides)

	err = validate(cfg)
	if err != nil {
		return Config{}, err
	}

	cfg.EffectiveCwd = workDir

	if filepath.IsAbs(cfg.Output) {
		cfg.OutputAbs = cfg.Output
	} else {
		cfg.OutputAbs = filepath.Join(workDir, cfg.Output)
	}

	return cfg, nil
}

// loadGlobal loads the global user config file if it exists.
// Returns the config, the path if loaded, and any error.
func loadGlobal(env map[string]string) (Config, string, error) {
	path := globalPath(env)
	if path == "" {
		return Config{}, "", nil
	}

	cfg, loaded, err := loadFile(path, false)
	if err != nil || !loaded {
		return Config{}, "", err
	}

	return cfg, path, nil
}

// loadProject loads the project config file (.docindex.json) or an explicit
// config file. Returns the config, the path if loaded, and any error.
func loadProject(workDir, configPath string) (Config, string, error) {
	var (
		path      string
		mustExist bool
	)

	if configPath != "" {
		path = configPath
		if !filepath.IsAbs(path) {
			path = filepath.Join(workDir, path)
		}

		mustExist = true

		// Check existence first to provide a clear "not found" error
		_, statErr := os.Stat(path)
		if statErr != nil {
			return Config{}, "", fmt.Errorf("%w: %s", ErrFileNotFound, configPath)
		}
	} else {
		path = filepath.Join(workDir, FileName)
	}

	cfg, loaded, err := loadFile(path, mustExist)
	if err != nil || !loaded {
		return Config{}, "", err
	}

	return cfg, path, nil
}

// loadFile loads a config file. If mustExist is false, missing files return
// zero config. Returns the config, whether the file was loaded, and any error.
func loadFile(path string, mustExist bool) (Config, bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if mustExist {
			return Config{}, false, fmt.Errorf("%w: %s", ErrFileRead, path)
		}

		return Config{}, false, nil
	}

	cfg, err := Parse(data)
	if err != nil {
		return Config{}, false, fmt.Errorf("%w %s: %w", ErrInvalid, path, err)
	}

	return cfg, true, nil
}

// Parse decodes a JSONC config document. Fields that are explicitly set to
// an empty string where a value is required are rejected.
func Parse(data []byte) (Config, error) {
	standardized, err := hujson.Standardize(data)
	if err != nil {
		return Config{}, fmt.Errorf("invalid JSONC: %w", err)
	}

	var cfg Config

	err = json.Unmarshal(standardized, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("invalid JSON: %w", err)
	}

	var raw map[string]any

	_ = json.Unmarshal(standardized, &raw)

	if explicitlyEmpty(raw, "output") {
		return Config{}, ErrOutputEmpty
	}

	if explicitlyEmpty(raw, "mapper_file") {
		return Config{}, ErrMapperFileEmpty
	}

	return cfg, nil
}

func explicitlyEmpty(raw map[string]any, key string) bool {
	val, exists := raw[key]
	if !exists {
		return false
	}

	str, ok := val.(string)

	return ok && str == ""
}

func merge(base, overlay Config) Config {
	if overlay.Source != "" {
		base.Source = overlay.Source
	}

	if overlay.Output != "" {
		base.Output = overlay.Output
	}

	if overlay.Title != "" {
		base.Title = overlay.Title
	}

	if overlay.MapperFile != "" {
		base.MapperFile = overlay.MapperFile
	}

	return base
}

func validate(cfg Config) error {
	if _, err := index.ParseSource(cfg.Source); err != nil {
		return err
	}

	if cfg.Output == "" {
		return ErrOutputEmpty
	}

	if cfg.MapperFile == "" {
		return ErrMapperFileEmpty
	}

	return nil
}

// Format returns the config as formatted JSON.
func Format(cfg Config) (string, error) {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to format config: %w", err)
	}

	return string(data), nil
}
