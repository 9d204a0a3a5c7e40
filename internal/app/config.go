package app

import (
	"errors"
	"strings"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	Inputs    []string // schema files or directories of *.proto files
	OutputDir string

	HeaderName    string
	SourceName    string
	DescriptorSet string // optional FileDescriptorSet from the schema compiler

	Strict bool // abort on identifier collisions
	Check  bool // compare instead of writing

	LogFormat string
	LogLevel  string
}

// NewConfig validates cfg and returns a copy.
func NewConfig(cfg Config) (*Config, error) {
	if len(cfg.Inputs) == 0 {
		return nil, errors.New("at least one schema file is required")
	}
	if strings.TrimSpace(cfg.OutputDir) == "" {
		return nil, errors.New("OutputDir is a required configuration field and cannot be empty")
	}
	for _, name := range []string{cfg.HeaderName, cfg.SourceName} {
		if strings.ContainsAny(name, `/\`) {
			return nil, errors.New("output file names must not contain path separators: " + name)
		}
	}
	if cfg.HeaderName != "" && cfg.HeaderName == cfg.SourceName {
		return nil, errors.New("header and source file names must differ")
	}

	inputs := make([]string, len(cfg.Inputs))
	copy(inputs, cfg.Inputs)
	cfg.Inputs = inputs
	return &cfg, nil
}
