// Package config loads the CLI tool configuration from an optional YAML
// file and the environment.
package config

import (
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/maxbolgarin/errm"
	"github.com/maxbolgarin/lang"

	"github.com/maxbolgarin/gitq"
)

// Config represents the CLI tool configuration.
type Config struct {
	Repo gitq.Config `yaml:"repo"`
	Log  LogConfig   `yaml:"log"`
}

// LogConfig represents logging configuration.
type LogConfig struct {
	Level  string `yaml:"level" env:"GITQ_LOG_LEVEL"`
	Pretty bool   `yaml:"pretty" env:"GITQ_LOG_PRETTY"`
}

// LoadConfig reads the configuration from path (when non-empty) and the
// environment, then fills defaults and validates.
func LoadConfig(path string) (Config, error) {
	var cfg Config

	if path != "" {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return Config{}, errm.Wrap(err, "read config file", "path", path)
		}
	} else {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return Config{}, errm.Wrap(err, "read environment")
		}
	}

	cfg.Log.Level = lang.Check(cfg.Log.Level, "info")
	if err := cfg.Repo.PrepareAndValidate(); err != nil {
		return Config{}, errm.Wrap(err, "validate repo config")
	}

	return cfg, nil
}
