// Package config loads ~/.movieshell/config.yaml.
package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/langel/movieshell/assets"
	"github.com/langel/movieshell/internal/domain"
	"github.com/langel/movieshell/internal/pkg/filesystem"
	"github.com/langel/movieshell/internal/ports"
)

// EnvConfigPath overrides the configuration file location.
const EnvConfigPath = "MOVIESHELL_CONFIG"

// FileLoader loads YAML configuration from ~/.movieshell/config.yaml
// (overridable via MOVIESHELL_CONFIG).
type FileLoader struct {
	overridePath string
}

// NewFileLoader builds a new loader. A non-empty path wins over the
// environment.
func NewFileLoader(path string) *FileLoader {
	return &FileLoader{overridePath: path}
}

// LoadDotEnv applies a .env file from the working directory when present.
// Variables already set in the environment are left alone.
func LoadDotEnv() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}
	return nil
}

// Load implements ports.ConfigProvider. A missing file is created from the
// embedded defaults.
func (l *FileLoader) Load(context.Context) (domain.Config, error) {
	path := l.Path()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			cfg, err := defaultConfig()
			if err != nil {
				return domain.Config{}, err
			}
			if err := writeDefault(path); err != nil {
				return domain.Config{}, err
			}
			return cfg, nil
		}
		return domain.Config{}, fmt.Errorf("read config: %w", err)
	}

	var cfg domain.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return domain.Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return hydrateDefaults(cfg), nil
}

// Path resolves the configuration file location.
func (l *FileLoader) Path() string {
	if l.overridePath != "" {
		return filesystem.ExpandPath(l.overridePath)
	}
	if custom := os.Getenv(EnvConfigPath); custom != "" {
		return filesystem.ExpandPath(custom)
	}
	return filepath.Join(filesystem.UserHomeDir(), ".movieshell", "config.yaml")
}

func writeDefault(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), domain.DirectoryPermissions); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	return os.WriteFile(path, assets.DefaultConfigYAML, domain.SecureFilePermissions)
}

func defaultConfig() (domain.Config, error) {
	var cfg domain.Config
	if err := yaml.Unmarshal(assets.DefaultConfigYAML, &cfg); err != nil {
		return domain.Config{}, fmt.Errorf("parse embedded config: %w", err)
	}
	return hydrateDefaults(cfg), nil
}

func hydrateDefaults(cfg domain.Config) domain.Config {
	if cfg.ConfigFormatVersion == "" {
		cfg.ConfigFormatVersion = "1"
	}
	if cfg.Console.Prompt == "" {
		cfg.Console.Prompt = domain.DefaultPrompt
	}
	if cfg.History.Backend == "" {
		cfg.History.Backend = domain.HistoryBackendSQLite
	}
	if cfg.History.Limit <= 0 {
		cfg.History.Limit = domain.DefaultHistoryLimit
	}
	if cfg.Dump.Indent <= 0 {
		cfg.Dump.Indent = 2
	}
	return cfg
}

var _ ports.ConfigProvider = (*FileLoader)(nil)
