package config

import (
	"path/filepath"
)

const credentialName = "password.dat"

// Config holds runtime settings for the diary.
type Config struct {
	BaseDir      string `json:"base_dir" yaml:"base_dir"`
	DataDir      string `json:"data_dir" yaml:"data_dir"`
	PasswordFile string `json:"password_file" yaml:"password_file"`
	LogLevel     string `json:"log_level" yaml:"log_level"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BaseDir = "."
	c.DataDir = "data"
	c.PasswordFile = ""
	c.LogLevel = "info"
}

// CredentialPath returns the credential file path relative to BaseDir.
func (c *Config) CredentialPath() string {
	if c.PasswordFile != "" {
		return c.PasswordFile
	}
	return filepath.Join(c.DataDir, credentialName)
}

// Load constructs a Config, applies defaults, then overlays values from the
// file at path (if path is not empty).
func Load(path string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseFile(cfg, path); err != nil {
		return nil, err
	}
	return cfg, nil
}
