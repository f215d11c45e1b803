// Package config loads the weft CLI's own settings. This is the tool's
// configuration (platform host, credentials location, logging), not the
// project manifest; the manifest is owned by internal/manifest.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config is the CLI configuration, read from .weftrc.yaml and WEFT_*
// environment variables.
type Config struct {
	Host     string      `mapstructure:"host"`
	AuthFile string      `mapstructure:"auth_file"`
	Sync     SyncConfig  `mapstructure:"sync"`
	Watch    WatchConfig `mapstructure:"watch"`
}

// SyncConfig holds sync command settings.
type SyncConfig struct {
	// BundleDir is where exported design bundles are staged for sync.
	BundleDir string `mapstructure:"bundle_dir"`
}

// WatchConfig holds watch command settings.
type WatchConfig struct {
	DebounceMs int `mapstructure:"debounce_ms"`
}

// Load reads the configuration, falling back to defaults when no .weftrc
// file exists.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("host", "https://studio.weft.dev")
	v.SetDefault("auth_file", defaultAuthFile())
	v.SetDefault("sync.bundle_dir", ".weft/bundle")
	v.SetDefault("watch.debounce_ms", 200)

	v.SetConfigName(".weftrc")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(home)
	}

	v.SetEnvPrefix("WEFT")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &cfg, nil
}

func defaultAuthFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".weft-auth.json"
	}
	return filepath.Join(home, ".weft", "auth.json")
}

// FindProjectRoot walks up from dir looking for a weft.json (codegen
// scheme) or .weft/weft.json (loader scheme).
func FindProjectRoot(dir string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "weft.json")); err == nil {
			return dir, nil
		}
		if _, err := os.Stat(filepath.Join(dir, ".weft", "weft.json")); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("not in a weft project (no weft.json found)")
		}
		dir = parent
	}
}

// InProject reports whether dir is inside a weft project.
func InProject(dir string) bool {
	_, err := FindProjectRoot(dir)
	return err == nil
}
