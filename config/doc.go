// Package config loads application configuration from a YAML file with
// environment variable overrides for deployment-sensitive values.
package config
