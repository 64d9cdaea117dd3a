package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/go-yaml/yaml"

	"github.com/soda-altruism/portal/core"
)

type Config struct {
	Server Server           `yaml:"server"`
	Soda   core.ConfigInput `yaml:"soda"`
}

type Server struct {
	Listen        string `yaml:"listen" env:"SODA_LISTEN"`
	Dsn           string `yaml:"dsn" env:"SODA_DSN"`
	RedisAddr     string `yaml:"redisAddr" env:"SODA_REDIS_ADDR"`
	RedisDB       int    `yaml:"redisDB" env:"SODA_REDIS_DB"`
	MemcachedAddr string `yaml:"memcachedAddr" env:"SODA_MEMCACHED_ADDR"`
	EnableTrace   bool   `yaml:"enableTrace" env:"SODA_ENABLE_TRACE"`
	TraceEndpoint string `yaml:"traceEndpoint" env:"SODA_TRACE_ENDPOINT"`
}

// Load loads config from given path, then applies environment overrides.
// A missing file leaves the environment as the only source.
func (c *Config) Load(path string) error {
	f, err := os.Open(path)
	if err == nil {
		defer f.Close()

		err = yaml.NewDecoder(f).Decode(c)
		if err != nil {
			return fmt.Errorf("failed to load configuration file: %w", err)
		}
	} else if os.IsNotExist(err) {
		slog.Warn(fmt.Sprintf("configuration file %s not found, using environment only", path))
	} else {
		return fmt.Errorf("failed to open configuration file: %w", err)
	}

	err = env.Parse(c)
	if err != nil {
		return fmt.Errorf("parse env: %w", err)
	}

	if c.Server.Listen == "" {
		c.Server.Listen = ":8000"
	}

	return nil
}
