// Package config reads game settings from the environment and command line.
package config

import (
	"errors"
	"flag"
	"fmt"

	"github.com/caarlos0/env/v11"
	log "github.com/sirupsen/logrus"
	"github.com/zucenko/ladders/engine"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	// Seed 0 draws a seed from crypto/rand.
	Seed         int64   `env:"LADDERS_SEED"`
	Ladders      int     `env:"LADDERS_LADDERS"       envDefault:"5"`
	Snakes       int     `env:"LADDERS_SNAKES"        envDefault:"5"`
	BoardFile    string  `env:"LADDERS_BOARD"`
	SpectateAddr string  `env:"LADDERS_SPECTATE_ADDR"`
	LogLevel     string  `env:"LADDERS_LOG_LEVEL"     envDefault:"info"`
	Scale        float64 `env:"LADDERS_SCALE"         envDefault:"1"`
}

// ParseConfig parses environment and flags into a Config. Flags win.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "seed for board placement and dice (0 picks one)")
	fs.IntVar(&cfg.Ladders, "ladders", cfg.Ladders, "number of ladders to place")
	fs.IntVar(&cfg.Snakes, "snakes", cfg.Snakes, "number of snakes to place")
	fs.StringVar(&cfg.BoardFile, "board", cfg.BoardFile, "fixed board layout file instead of random placement")
	fs.StringVar(&cfg.SpectateAddr, "spectate-addr", cfg.SpectateAddr, "serve a read-only spectator feed on this address")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level")
	fs.Float64Var(&cfg.Scale, "scale", cfg.Scale, "window scale")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Ladders < 0 || c.Snakes < 0 {
		return fmt.Errorf("%w: negative ladder or snake count", ErrInvalidConfig)
	}
	if c.Scale <= 0 {
		return fmt.Errorf("%w: scale %v", ErrInvalidConfig, c.Scale)
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// Options turns the config into session options, loading the board file if set.
func (c Config) Options() (engine.Options, error) {
	opts := engine.DefaultOptions()
	opts.Ladders = c.Ladders
	opts.Snakes = c.Snakes
	if c.BoardFile != "" {
		layout, err := engine.LoadLayout(c.BoardFile, opts.Size)
		if err != nil {
			return engine.Options{}, err
		}
		opts.Layout = layout
	}
	return opts, nil
}

// ResolveSeed returns the configured seed, or a fresh one when unset.
func (c Config) ResolveSeed() (int64, error) {
	if c.Seed != 0 {
		return c.Seed, nil
	}
	return engine.NewSeed()
}

// SetupLogging applies the log level. Call after Validate.
func (c Config) SetupLogging() {
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
}
