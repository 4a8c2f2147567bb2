package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	DefaultIndexURL = "https://json.tikey.art/index.json"
	DefaultBaseURL  = "https://json.tikey.art/"
)

// Config holds the persisted user settings. It is loaded once and passed
// explicitly into the jobs that need it.
type Config struct {
	IndexURL    string `toml:"index_url" mapstructure:"index_url"`
	BaseURL     string `toml:"base_url" mapstructure:"base_url"`
	OutputDir   string `toml:"output_dir" mapstructure:"output_dir"`
	WithPreview bool   `toml:"with_preview" mapstructure:"with_preview"`
}

// Load reads the settings file, writing one with defaults on first run.
// Environment variables prefixed WORLDS_ override file values.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("toml")

	dir := configDir()
	v.AddConfigPath(dir)
	v.AddConfigPath(".")
	v.SetEnvPrefix("WORLDS")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	home, _ := os.UserHomeDir()
	v.SetDefault("index_url", DefaultIndexURL)
	v.SetDefault("base_url", DefaultBaseURL)
	v.SetDefault("output_dir", filepath.Join(home, "Downloads", "worlds"))
	v.SetDefault("with_preview", true)

	if err := os.MkdirAll(dir, os.ModePerm); err == nil {
		if err := v.SafeWriteConfigAs(filepath.Join(dir, "config.toml")); err != nil {
			if _, ok := err.(viper.ConfigFileAlreadyExistsError); !ok {
				return nil, err
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func configDir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return "."
	}
	return filepath.Join(base, "worlds")
}
