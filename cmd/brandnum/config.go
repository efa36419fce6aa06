package main

import (
	"fmt"
	"strconv"

	"github.com/alecthomas/kong"
	"github.com/caarlos0/env/v11"
)

// Config holds the environment defaults of the command line; flags override them.
type Config struct {
	Seed   int64  `env:"BRANDNUM_SEED"   envDefault:"0"`
	Format string `env:"BRANDNUM_FORMAT" envDefault:"text"`
	Domain string `env:"BRANDNUM_DOMAIN" envDefault:"FiniteNumber"`
}

// ParseConfig loads Config from the environment.
func ParseConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	return cfg, nil
}

// vars exposes cfg to kong default:"${...}" interpolation.
func (c Config) vars() kong.Vars {
	return kong.Vars{
		"default_seed":   strconv.FormatInt(c.Seed, 10),
		"default_format": c.Format,
		"default_domain": c.Domain,
	}
}
