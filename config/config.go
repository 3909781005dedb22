package config

import (
	"github.com/kelseyhightower/envconfig"
)

type (
	// Env holds the values of environment variable based configuration
	Env struct {
		Host           string `envconfig:"HOST" default:"0.0.0.0"`
		Port           int    `envconfig:"PORT" default:"8000"`
		ConfigFilePath string `envconfig:"MOCKER_CONFIG" default:"./config.json"`
		MockerBasePath string `envconfig:"MOCKER_BASE_PATH" default:"/mocker"`
		LogLevel       string `envconfig:"LOG_LEVEL" default:"info"`
	}
)

// New returns a new Env config
func New() *Env {
	cfg := &Env{}

	envconfig.MustProcess("", cfg)

	return cfg
}
