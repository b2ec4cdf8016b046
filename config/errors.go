package config

import "errors"

var (
	// ErrReadConfig is returned when the configuration file cannot be read.
	ErrReadConfig = errors.New("cannot read config file")

	// ErrParseConfig is returned when the configuration file is not valid YAML.
	ErrParseConfig = errors.New("cannot parse config file")

	// ErrInvalidConfig is returned when a configuration value is out of range.
	ErrInvalidConfig = errors.New("invalid configuration")
)
