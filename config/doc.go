// Package config loads logger configuration from YAML files and
// environment variables.
//
// Values resolve in viper's order: ALOG_-prefixed environment
// variables override the config file (an explicit path, or alog.yaml
// found in the search paths), which overrides the built-in defaults.
package config
