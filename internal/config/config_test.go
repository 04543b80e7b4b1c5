package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Store.Path != filepath.Join("~", ".pitchtarp", "pitch_data.csv") {
		t.Errorf("Store.Path = %q, want ~/.pitchtarp/pitch_data.csv", cfg.Store.Path)
	}
	if cfg.Display.DefaultTarpDistance != 60.5 {
		t.Errorf("Display.DefaultTarpDistance = %v, want 60.5", cfg.Display.DefaultTarpDistance)
	}
	if cfg.Display.ChartSamples != 40 {
		t.Errorf("Display.ChartSamples = %v, want 40", cfg.Display.ChartSamples)
	}
	if cfg.Log.File == "" {
		t.Error("Log.File should have a default")
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestConfigValidate(t *testing.T) {
	valid := func() Config { return DefaultConfig() }

	tests := []struct {
		name        string
		mutate      func(c *Config)
		expectError bool
		errContains string
	}{
		{
			name:   "valid config",
			mutate: func(c *Config) {},
		},
		{
			name:        "empty store path",
			mutate:      func(c *Config) { c.Store.Path = "  " },
			expectError: true,
			errContains: "store.path",
		},
		{
			name:        "tarp too close",
			mutate:      func(c *Config) { c.Display.DefaultTarpDistance = 10.5 },
			expectError: true,
			errContains: "default_tarp_distance",
		},
		{
			name:        "tarp past the plate",
			mutate:      func(c *Config) { c.Display.DefaultTarpDistance = 61 },
			expectError: true,
			errContains: "default_tarp_distance",
		},
		{
			name:   "tarp at the minimum",
			mutate: func(c *Config) { c.Display.DefaultTarpDistance = 11 },
		},
		{
			name:        "too few chart samples",
			mutate:      func(c *Config) { c.Display.ChartSamples = 1 },
			expectError: true,
			errContains: "chart_samples",
		},
		{
			name:        "too many chart samples",
			mutate:      func(c *Config) { c.Display.ChartSamples = 500 },
			expectError: true,
			errContains: "chart_samples",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.expectError {
				if err == nil {
					t.Error("expected error, got nil")
				} else if tt.errContains != "" && !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("error %q should contain %q", err.Error(), tt.errContains)
				}
			} else if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadFile(filepath.Join(dir, "missing.json"))
		if !errors.Is(err, ErrNoConfig) {
			t.Errorf("LoadFile() error = %v, want ErrNoConfig", err)
		}
	})

	t.Run("invalid json", func(t *testing.T) {
		path := filepath.Join(dir, "broken.json")
		if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
			t.Fatalf("failed to write config: %v", err)
		}
		_, err := LoadFile(path)
		if err == nil || errors.Is(err, ErrNoConfig) {
			t.Errorf("LoadFile() error = %v, want a parse error", err)
		}
	})

	t.Run("partial file gets defaults", func(t *testing.T) {
		path := filepath.Join(dir, "partial.json")
		content := `{"store": {"path": "/tmp/pitches.csv"}, "display": {"default_tarp_distance": 45}}`
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("failed to write config: %v", err)
		}

		cfg, err := LoadFile(path)
		if err != nil {
			t.Fatalf("LoadFile() error = %v", err)
		}
		if cfg.Store.Path != "/tmp/pitches.csv" {
			t.Errorf("Store.Path = %q, want /tmp/pitches.csv", cfg.Store.Path)
		}
		if cfg.Display.DefaultTarpDistance != 45 {
			t.Errorf("Display.DefaultTarpDistance = %v, want 45", cfg.Display.DefaultTarpDistance)
		}
		if cfg.Display.ChartSamples != 40 {
			t.Errorf("Display.ChartSamples = %v, want default 40", cfg.Display.ChartSamples)
		}
		if cfg.Log.File != DefaultConfig().Log.File {
			t.Errorf("Log.File = %q, want default", cfg.Log.File)
		}
	})

	t.Run("save then load", func(t *testing.T) {
		path := filepath.Join(dir, "nested", "config.json")
		want := Config{
			Store:   StoreConfig{Path: "/data/pitch_data.csv"},
			Display: DisplayConfig{DefaultTarpDistance: 30.5, ChartSamples: 80},
			Log:     LogConfig{File: "/var/log/pitchtarp.log"},
		}
		if err := SaveFile(path, &want); err != nil {
			t.Fatalf("SaveFile() error = %v", err)
		}

		got, err := LoadFile(path)
		if err != nil {
			t.Fatalf("LoadFile() error = %v", err)
		}
		if *got != want {
			t.Errorf("LoadFile() = %+v, want %+v", *got, want)
		}
	})
}

func TestExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	tests := []struct {
		in   string
		want string
	}{
		{"~", home},
		{"~/.pitchtarp/pitch_data.csv", filepath.Join(home, ".pitchtarp", "pitch_data.csv")},
		{"/abs/pitch_data.csv", "/abs/pitch_data.csv"},
		{"relative.csv", "relative.csv"},
		{"~other/file.csv", "~other/file.csv"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ExpandHome(tt.in)
			if err != nil {
				t.Fatalf("ExpandHome() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("ExpandHome(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}

	cfg := DefaultConfig()
	storePath, err := cfg.StorePath()
	if err != nil {
		t.Fatalf("StorePath() error = %v", err)
	}
	if storePath != filepath.Join(home, ".pitchtarp", "pitch_data.csv") {
		t.Errorf("StorePath() = %q", storePath)
	}
}
