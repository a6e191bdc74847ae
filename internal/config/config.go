// Package config provides runtime configuration loaded from environment variables.
package config

import "github.com/kelseyhightower/envconfig"

// Config holds echo-stf runtime configuration. The request document on
// stdin is the only functional input; everything here affects diagnostics
// only. Unknown LOG_LEVEL and LOG_FORMAT values fall back to info/text at
// logging setup rather than failing the invocation.
type Config struct {
	ServiceName string `envconfig:"STF_NAME" default:"echo-stf"`
	LogLevel    string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat   string `envconfig:"LOG_FORMAT" default:"text"`
}

// LoadConfig loads configuration from environment variables.
func LoadConfig() (*Config, error) {
	var c Config
	if err := envconfig.Process("", &c); err != nil {
		return nil, err
	}
	return &c, nil
}
