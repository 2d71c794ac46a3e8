/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package docstore

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	dserrors "github.com/suparena/docstore/errors"
)

// Config is the configuration surface of a DocStore instance.
//
// Local mode routes to a development endpoint (typically DynamoDB Local)
// with explicit credentials. In hosted mode the endpoint and credentials are
// omitted and the AWS SDK resolves both from the execution environment.
type Config struct {
	// Region is the AWS region. Optional in hosted mode, where the ambient
	// environment supplies it.
	Region string `yaml:"region"`

	// Endpoint is the development endpoint URL. Only used in local mode.
	Endpoint string `yaml:"endpoint"`

	// AccessKey and SecretKey are static credentials. Only used in local mode.
	AccessKey string `yaml:"accessKey"`
	SecretKey string `yaml:"secretKey"`

	// Local selects the development endpoint with explicit credentials.
	Local bool `yaml:"local"`
}

// LoadConfig reads a YAML configuration file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config file: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ConfigFromEnv builds a Config from DOCSTORE_* environment variables.
// Combine with godotenv.Load() to bootstrap from a .env file.
func ConfigFromEnv() Config {
	return Config{
		Region:    os.Getenv("DOCSTORE_REGION"),
		Endpoint:  os.Getenv("DOCSTORE_ENDPOINT"),
		AccessKey: os.Getenv("DOCSTORE_ACCESS_KEY"),
		SecretKey: os.Getenv("DOCSTORE_SECRET_KEY"),
		Local:     os.Getenv("DOCSTORE_LOCAL") == "true",
	}
}

func (c Config) validate() error {
	if c.Local && c.Endpoint == "" {
		return dserrors.NewValidationError("endpoint", "local mode requires an endpoint")
	}
	return nil
}
