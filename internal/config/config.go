// Package config resolves hexblend settings from the environment and an
// optional .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/nikolasavic/hexblend/internal/color"
)

// Environment variables.
const (
	EnvOutput   = "HEXBLEND_OUTPUT"
	EnvRatio    = "HEXBLEND_RATIO"
	EnvLogLevel = "HEXBLEND_LOG_LEVEL"
	EnvEnvFile  = "HEXBLEND_ENV_FILE"
)

// Defaults.
const (
	DefaultOutput   = "blended_colors2.svg"
	DefaultEnvFile  = ".env"
	DefaultLogLevel = logrus.WarnLevel
)

// Source indicates where a setting came from.
type Source int

const (
	SourceDefault Source = iota
	SourceEnvFile
	SourceEnv
	SourceFlag
	SourcePrompt
)

// String returns a human-readable name for the source.
func (s Source) String() string {
	switch s {
	case SourceDefault:
		return "default"
	case SourceEnvFile:
		return "env-file"
	case SourceEnv:
		return "env"
	case SourceFlag:
		return "flag"
	case SourcePrompt:
		return "prompt"
	default:
		return "unknown"
	}
}

// Config is the resolved settings for one run.
type Config struct {
	Output       string
	OutputSource Source

	// Ratio is only meaningful when HasRatio is set; otherwise the caller
	// asks for one.
	Ratio       float64
	HasRatio    bool
	RatioSource Source

	LogLevel       logrus.Level
	LogLevelSource Source

	// EnvFile is the .env path that was consulted, loaded or not.
	EnvFile string
}

// Injectable for testability.
var lookupEnvFn = os.LookupEnv

// Overrides are command-line values. Empty fields are unset.
type Overrides struct {
	Output   string
	Ratio    string
	LogLevel string
}

// Load resolves settings with precedence: overrides, process environment,
// the .env file named by HEXBLEND_ENV_FILE (default ".env"), then defaults.
// Only the winning value of each setting is parsed. A missing .env file is
// not an error.
func Load(ov Overrides) (*Config, error) {
	envFile := DefaultEnvFile
	if v, ok := lookupEnvFn(EnvEnvFile); ok && v != "" {
		envFile = v
	}

	fileVars, err := godotenv.Read(envFile)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("config: read %s: %w", envFile, err)
		}
		fileVars = map[string]string{}
	}

	lookup := func(key, override string) (string, Source, bool) {
		if override != "" {
			return override, SourceFlag, true
		}
		if v, ok := lookupEnvFn(key); ok && v != "" {
			return v, SourceEnv, true
		}
		if v, ok := fileVars[key]; ok && v != "" {
			return v, SourceEnvFile, true
		}
		return "", SourceDefault, false
	}

	cfg := &Config{
		Output:   DefaultOutput,
		LogLevel: DefaultLogLevel,
		EnvFile:  envFile,
	}

	if v, src, ok := lookup(EnvOutput, ov.Output); ok {
		cfg.Output, cfg.OutputSource = v, src
	}

	if v, src, ok := lookup(EnvRatio, ov.Ratio); ok {
		if err := cfg.SetRatio(v, src); err != nil {
			return nil, fmt.Errorf("config: ratio from %s: %w", src, err)
		}
	}

	if v, src, ok := lookup(EnvLogLevel, ov.LogLevel); ok {
		lvl, err := logrus.ParseLevel(v)
		if err != nil {
			return nil, fmt.Errorf("config: log level from %s: %w", src, err)
		}
		cfg.LogLevel, cfg.LogLevelSource = lvl, src
	}

	return cfg, nil
}

// SetRatio parses text as the blend ratio and records its source.
func (c *Config) SetRatio(text string, src Source) error {
	r, err := color.ParseRatio(text)
	if err != nil {
		return err
	}
	c.Ratio, c.HasRatio, c.RatioSource = r, true, src
	return nil
}
