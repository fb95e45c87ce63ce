package config

import (
	"github.com/spf13/pflag"
)

// Flag names shared by the command tree.
const (
	FlagConfig       = "config"
	FlagBaseDir      = "base-dir"
	FlagDataDir      = "data-dir"
	FlagPasswordFile = "password-file"
	FlagVerbose      = "verbose"
)

// RegisterFlags declares the configuration flags on fs.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.StringP(FlagConfig, "c", "", "path to a JSON or YAML config file")
	fs.StringP(FlagBaseDir, "b", "", "directory the diary data lives under")
	fs.StringP(FlagDataDir, "d", "", "entry directory, relative to the base directory")
	fs.String(FlagPasswordFile, "", "credential file, relative to the base directory")
	fs.BoolP(FlagVerbose, "v", false, "enable debug logging")
}

// ApplyFlags overlays cfg with the flags the user actually set on fs.
func ApplyFlags(cfg *Config, fs *pflag.FlagSet) {
	str := func(name string, dst *string) {
		if f := fs.Lookup(name); f != nil && f.Changed {
			*dst = f.Value.String()
		}
	}
	str(FlagBaseDir, &cfg.BaseDir)
	str(FlagDataDir, &cfg.DataDir)
	str(FlagPasswordFile, &cfg.PasswordFile)

	if v, err := fs.GetBool(FlagVerbose); err == nil && v {
		cfg.LogLevel = "debug"
	}
}

// ConfigPath returns the value of the --config flag, if declared.
func ConfigPath(fs *pflag.FlagSet) string {
	p, err := fs.GetString(FlagConfig)
	if err != nil {
		return ""
	}
	return p
}
