// Package config loads process settings from .env files and SOLITAIRE_*
// environment variables.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/MarcusTL12/solitare/engine"
)

// Environment variable names.
const (
	EnvSeed                  = "SOLITAIRE_SEED"
	EnvTwiceWidth            = "SOLITAIRE_TWICE_WIDTH"
	EnvLogLevel              = "SOLITAIRE_LOG_LEVEL"
	EnvLogFile               = "SOLITAIRE_LOG_FILE"
	EnvAllowFoundationReturn = "SOLITAIRE_ALLOW_FOUNDATION_RETURN"
	EnvCheckRunOrder         = "SOLITAIRE_CHECK_RUN_ORDER"
	EnvCheckInvariants       = "SOLITAIRE_CHECK_INVARIANTS"
)

// Config holds everything the CLI needs to start a session.
type Config struct {
	Seed                  uint64 // 0 = derive from the clock
	TwiceWidth            bool   // pad every card glyph to two cells
	LogLevel              string
	LogFile               string // empty = discard logs
	AllowFoundationReturn bool
	CheckRunOrder         bool
	CheckInvariants       bool
}

// Default returns the built-in settings.
func Default() Config {
	rules := engine.DefaultRules()
	return Config{
		LogLevel:              "info",
		AllowFoundationReturn: rules.AllowFoundationReturn,
		CheckRunOrder:         rules.CheckRunOrder,
	}
}

// Load reads the given .env files (missing files are skipped) and then
// applies SOLITAIRE_* variables on top of Default. Variables already set in
// the process environment win over .env contents.
func Load(files ...string) (Config, error) {
	for _, f := range files {
		if _, err := os.Stat(f); errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return Config{}, fmt.Errorf("load env file %s: %w", f, err)
		}
	}

	cfg := Default()
	var err error
	if v, ok := os.LookupEnv(EnvSeed); ok {
		if cfg.Seed, err = strconv.ParseUint(strings.TrimSpace(v), 10, 64); err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvSeed, err)
		}
	}
	if v, ok := os.LookupEnv(EnvLogLevel); ok {
		cfg.LogLevel = strings.TrimSpace(v)
	}
	if v, ok := os.LookupEnv(EnvLogFile); ok {
		cfg.LogFile = strings.TrimSpace(v)
	}

	bools := []struct {
		name string
		dst  *bool
	}{
		{EnvTwiceWidth, &cfg.TwiceWidth},
		{EnvAllowFoundationReturn, &cfg.AllowFoundationReturn},
		{EnvCheckRunOrder, &cfg.CheckRunOrder},
		{EnvCheckInvariants, &cfg.CheckInvariants},
	}
	for _, b := range bools {
		v, ok := os.LookupEnv(b.name)
		if !ok {
			continue
		}
		if *b.dst, err = strconv.ParseBool(strings.TrimSpace(v)); err != nil {
			return Config{}, fmt.Errorf("%s: %w", b.name, err)
		}
	}

	if _, err := logrus.ParseLevel(cfg.LogLevel); err != nil {
		return Config{}, fmt.Errorf("%s: %w", EnvLogLevel, err)
	}
	return cfg, nil
}

// Rules converts the rule toggles to engine rules.
func (c Config) Rules() engine.Rules {
	return engine.Rules{
		AllowFoundationReturn: c.AllowFoundationReturn,
		CheckRunOrder:         c.CheckRunOrder,
	}
}

// NewLogger builds a logrus logger writing to LogFile, or discarding output
// when no file is set. The terminal belongs to the UI, so logs never go to
// stderr. The returned close function must be called on exit.
func (c Config) NewLogger() (*logrus.Logger, func() error, error) {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("parse log level: %w", err)
	}
	log := logrus.New()
	log.SetLevel(level)
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, DisableColors: true})

	if c.LogFile == "" {
		log.SetOutput(io.Discard)
		return log, func() error { return nil }, nil
	}
	f, err := os.OpenFile(c.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	log.SetOutput(f)
	return log, f.Close, nil
}
