// Package config manages amhub configuration settings.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/adrg/xdg"
)

const (
	configDirName  = "amhub"
	configFileName = "config.json"
	logFileName    = "amhub.log"
)

// DefaultCategories is the category bar shown when the config names none.
// It may list categories that no preset uses.
var DefaultCategories = []string{"Full Pack", "Transitions", "Color Correction", "Text", "Shake"}

type Config struct {
	ExportDir   string   `json:"export_dir"`
	CatalogPath string   `json:"catalog_path"`
	Categories  []string `json:"categories"`
	LogLevel    string   `json:"log_level"`
}

func init() {
	// On Darwin (macOS), prefer ~/.config for CLI tools instead of
	// ~/Library/Application Support, but only if XDG_CONFIG_HOME is not set
	if runtime.GOOS == "darwin" && os.Getenv("XDG_CONFIG_HOME") == "" {
		xdg.ConfigHome = filepath.Join(xdg.Home, ".config")
	}
}

// WithDefaults fills unset fields. An explicitly empty categories list is
// kept so the category bar falls back to the catalog's own categories.
func (c Config) WithDefaults() Config {
	if strings.TrimSpace(c.ExportDir) == "" {
		c.ExportDir = "."
	}
	if c.Categories == nil {
		c.Categories = append([]string(nil), DefaultCategories...)
	}
	if strings.TrimSpace(c.LogLevel) == "" {
		c.LogLevel = "info"
	}
	return c
}

func GetConfigDir() (string, error) {
	return filepath.Join(xdg.ConfigHome, configDirName), nil
}

func GetConfigPath() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFileName), nil
}

// GetLogPath returns the TUI log file location, creating its directory.
func GetLogPath() (string, error) {
	dir := filepath.Join(xdg.StateHome, configDirName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create state dir: %w", err)
	}
	return filepath.Join(dir, logFileName), nil
}

func LoadConfig() (Config, error) {
	path, err := GetConfigPath()
	if err != nil {
		return Config{}, err
	}
	return LoadConfigFrom(path)
}

// LoadConfigFrom reads the config at path. A missing file yields defaults.
func LoadConfigFrom(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}.WithDefaults(), nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return cfg.WithDefaults(), nil
}

func SaveConfig(cfg Config) error {
	path, err := GetConfigPath()
	if err != nil {
		return err
	}
	return SaveConfigTo(path, cfg)
}

func SaveConfigTo(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
