// Package config loads runtime configuration for the diary.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional config file selected with -c / --config. Files ending in
//     .yaml or .yml are read as YAML, anything else as JSON.
//  3. Command-line flags (see ApplyFlags), which override earlier values.
//
// # File schema
//
//	{
//	  "base_dir": "/home/me/diary",
//	  "data_dir": "data",
//	  "password_file": "data/password.dat",
//	  "log_level": "info"
//	}
//
// data_dir and password_file are resolved inside base_dir. When
// password_file is empty the credential lives in data_dir as password.dat.
//
// Note: This package does not read environment variables.
package config
