package app

import "github.com/pkg/errors"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	ProgramPath string // hcl file or directory
	TargetPath  string // optional hcl target description
	OutputPath  string // empty writes the scheduled program to stdout

	LogFormat   string
	LogLevel    string
	WorkerCount int

	Report bool // print a per-instruction schedule table
	Verify bool // re-check every schedule against its original order
}

func NewConfig(cfg Config) (*Config, error) {
	if cfg.ProgramPath == "" {
		return nil, errors.New("ProgramPath is a required configuration field and cannot be empty")
	}
	if cfg.WorkerCount < 0 {
		return nil, errors.Errorf("WorkerCount must not be negative, got %d", cfg.WorkerCount)
	}

	return &cfg, nil
}
