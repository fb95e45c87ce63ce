package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// parseFile overlays cfg with the non-empty values found in the file at path.
// An empty path leaves cfg untouched.
func parseFile(cfg *Config, path string) error {
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	var fc Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &fc)
	default:
		err = json.Unmarshal(data, &fc)
	}
	if err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	overlay(cfg, fc)
	return nil
}

func overlay(dst *Config, src Config) {
	if src.BaseDir != "" {
		dst.BaseDir = src.BaseDir
	}
	if src.DataDir != "" {
		dst.DataDir = src.DataDir
	}
	if src.PasswordFile != "" {
		dst.PasswordFile = src.PasswordFile
	}
	if src.LogLevel != "" {
		dst.LogLevel = src.LogLevel
	}
}
