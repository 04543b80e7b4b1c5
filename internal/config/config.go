package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Tarp distance and chart limits accepted in the config
const (
	minTarpDistance  = 11.0
	maxTarpDistance  = 60.5
	minChartSamples  = 2
	maxChartSamples  = 200
	configDirName    = ".pitchtarp"
	configFileName   = "config.json"
	profilesFileName = "pitch_data.csv"
	logFileName      = "debug.log"
)

// Config represents the application configuration
type Config struct {
	Store   StoreConfig   `json:"store"`
	Display DisplayConfig `json:"display"`
	Log     LogConfig     `json:"log"`
}

// StoreConfig holds the location of the profiles file
type StoreConfig struct {
	Path string `json:"path"`
}

// DisplayConfig holds display preferences
type DisplayConfig struct {
	DefaultTarpDistance float64 `json:"default_tarp_distance"`
	ChartSamples        int     `json:"chart_samples"`
}

// LogConfig holds the developer log destination
type LogConfig struct {
	File string `json:"file"`
}

// ErrNoConfig is returned when the config file doesn't exist
var ErrNoConfig = errors.New("config file not found")

// DefaultConfig returns the default configuration
func DefaultConfig() Config {
	return Config{
		Store: StoreConfig{
			Path: filepath.Join("~", configDirName, profilesFileName),
		},
		Display: DisplayConfig{
			DefaultTarpDistance: maxTarpDistance,
			ChartSamples:        40,
		},
		Log: LogConfig{
			File: filepath.Join("~", configDirName, logFileName),
		},
	}
}

// Load reads the configuration from ~/.pitchtarp/config.json
func Load() (*Config, error) {
	path, err := getConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFile(path)
}

// LoadFile reads the configuration from path, filling in defaults for missing values
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, ErrNoConfig
	}
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	// Apply defaults for missing values
	defaults := DefaultConfig()
	if cfg.Store.Path == "" {
		cfg.Store.Path = defaults.Store.Path
	}
	if cfg.Display.DefaultTarpDistance == 0 {
		cfg.Display.DefaultTarpDistance = defaults.Display.DefaultTarpDistance
	}
	if cfg.Display.ChartSamples == 0 {
		cfg.Display.ChartSamples = defaults.Display.ChartSamples
	}
	if cfg.Log.File == "" {
		cfg.Log.File = defaults.Log.File
	}

	return &cfg, nil
}

// Save writes the configuration to ~/.pitchtarp/config.json
func Save(cfg *Config) error {
	path, err := getConfigPath()
	if err != nil {
		return err
	}
	return SaveFile(path, cfg)
}

// SaveFile writes the configuration to path
func SaveFile(path string, cfg *Config) error {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// CreateExample writes the default config if none exists
func CreateExample() error {
	path, err := getConfigPath()
	if err != nil {
		return err
	}

	// Check if config already exists
	if _, err := os.Stat(path); err == nil {
		return nil // Config exists, don't overwrite
	}

	example := DefaultConfig()
	return SaveFile(path, &example)
}

// Validate checks the config values are usable
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Store.Path) == "" {
		return errors.New("store.path is required")
	}

	d := c.Display.DefaultTarpDistance
	if d < minTarpDistance || d > maxTarpDistance {
		return fmt.Errorf("display.default_tarp_distance must be between %v and %v, got %v", minTarpDistance, maxTarpDistance, d)
	}

	n := c.Display.ChartSamples
	if n < minChartSamples || n > maxChartSamples {
		return fmt.Errorf("display.chart_samples must be between %d and %d, got %d", minChartSamples, maxChartSamples, n)
	}

	return nil
}

// StorePath returns the profiles file path with a leading ~ expanded
func (c *Config) StorePath() (string, error) {
	return ExpandHome(c.Store.Path)
}

// LogPath returns the log file path with a leading ~ expanded
func (c *Config) LogPath() (string, error) {
	return ExpandHome(c.Log.File)
}

// ExpandHome replaces a leading "~" with the user's home directory
func ExpandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") && !strings.HasPrefix(path, "~"+string(filepath.Separator)) {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFileName), nil
}

// GetConfigDir returns the path to the config directory
func GetConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, configDirName), nil
}
