package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Config captures everything coolant needs to reach the inventory API.
type Config struct {
	APIBaseURL string
	LogDir     string
}

const (
	defaultConfigPath = "~/.config/coolant/config.toml"
	defaultLogDir     = "~/.local/share/coolant/logs"
	defaultAPIBaseURL = "https://localhost:7063"

	// EnvAPIBaseURL overrides the API base URL from the environment.
	EnvAPIBaseURL = "COOLANT_API_URL"
)

// Load locates and parses the coolant config, falling back to defaults when
// missing. The COOLANT_API_URL environment variable wins over the file.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{APIBaseURL: defaultAPIBaseURL, LogDir: defaultLogDir}

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			cfg.LogDir = mustExpand(defaultLogDir)
			return applyEnv(cfg), nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		APIURL string `toml:"api_url"`
		LogDir string `toml:"log_dir"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	cfg.APIBaseURL = strings.TrimSpace(raw.APIURL)
	if cfg.APIBaseURL == "" {
		cfg.APIBaseURL = defaultAPIBaseURL
	}

	cfg.LogDir = strings.TrimSpace(raw.LogDir)
	if cfg.LogDir == "" {
		cfg.LogDir = defaultLogDir
	}
	cfg.LogDir = mustExpand(cfg.LogDir)

	return applyEnv(cfg), nil
}

// LogFilePath returns the path of coolant's own debug log.
func (c Config) LogFilePath() string {
	if strings.TrimSpace(c.LogDir) == "" {
		return mustExpand(defaultLogDir + "/coolant.log")
	}
	return filepath.Join(c.LogDir, "coolant.log")
}

func applyEnv(cfg Config) Config {
	if fromEnv := strings.TrimSpace(os.Getenv(EnvAPIBaseURL)); fromEnv != "" {
		cfg.APIBaseURL = fromEnv
	}
	return cfg
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
