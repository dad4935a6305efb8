package config

import (
	"context"

	"github.com/specialistvlad/blocksched/internal/ir"
	"github.com/specialistvlad/blocksched/internal/target"
)

// Loader is the interface for a format-specific program and target loader.
type Loader interface {
	// LoadProgram reads every program file found below paths and builds the
	// functions they declare.
	LoadProgram(ctx context.Context, paths ...string) (*ir.Program, error)

	// LoadTarget reads a single machine description.
	LoadTarget(ctx context.Context, path string) (*target.Target, error)
}
