package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/specialistvlad/blocksched/internal/app"
	"github.com/specialistvlad/blocksched/internal/ir"
	"github.com/specialistvlad/blocksched/internal/target"
	"github.com/stretchr/testify/require"
)

func TestRun_Schedules(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	program := `
function "main" {
  block "entry" {
    inst "M" {
      op   = "mov"
      defs = ["%r1"]
      srcs = ["%r0"]
    }
    inst "T" {
      op   = "tex"
      defs = ["%r2"]
      srcs = ["%r0"]
    }
    inst "X" {
      op = "exit"
    }
  }
}
`
	tempDir := t.TempDir()
	filePath := filepath.Join(tempDir, "main.hcl")
	require.NoError(t, os.WriteFile(filePath, []byte(program), 0600))
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}

	// --- Act ---
	err := run(out, errOut, []string{"-verify", "-workers=2", filePath})

	// --- Assert ---
	require.NoError(t, err)
	require.Equal(t, "function main {\nentry:\n  T: %r2 = tex %r0\n  M: %r1 = mov %r0\n  X: exit\n}\n", out.String())
	require.Empty(t, errOut.String(), "nothing is logged at the default level")
}

func TestRun_PanicRecovery(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// An HCL string with a syntax error is guaranteed to cause a panic during
	// the loading phase inside app.NewApp().
	invalidHCL := `
		function "main" {
			block "entry" {
		// Missing closing brace here
	`
	tempDir := t.TempDir()
	filePath := filepath.Join(tempDir, "main.hcl")
	err := os.WriteFile(filePath, []byte(invalidHCL), 0600)
	require.NoError(t, err, "failed to set up test file")

	out := &bytes.Buffer{}

	// --- Act ---
	runErr := run(out, &bytes.Buffer{}, []string{filePath})

	// --- Assert ---
	require.Error(t, runErr, "run() should have returned an error after recovering from a panic")

	errStr := runErr.Error()
	require.True(t, strings.Contains(errStr, "application startup panicked"), "The error message should indicate that a panic was recovered.")
	require.True(t, strings.Contains(errStr, "failed to parse"), "The error message should contain the underlying reason for the panic.")
}

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	err := run(out, &bytes.Buffer{}, []string{"-h"})

	require.NoError(t, err, "run() should return a nil error when shouldExit is true")
	require.Contains(t, out.String(), "Usage:", "Expected help text to be printed to the output buffer")
}

func TestRun_ParseError(t *testing.T) {
	t.Parallel()

	err := run(&bytes.Buffer{}, &bytes.Buffer{}, []string{"--this-is-not-a-valid-flag"})

	require.Error(t, err, "run() should return an error when argument parsing fails")
	require.Contains(t, err.Error(), "flag provided but not defined: -this-is-not-a-valid-flag")
}

func TestRun_TargetError(t *testing.T) {
	t.Parallel()

	tempDir := t.TempDir()
	targetPath := filepath.Join(tempDir, "gpu.hcl")
	require.NoError(t, os.WriteFile(targetPath, []byte(`target "gpu" { speed = 1 }`), 0600))
	programPath := filepath.Join(tempDir, "prog")
	require.NoError(t, os.Mkdir(programPath, 0700))

	err := run(&bytes.Buffer{}, &bytes.Buffer{}, []string{"-target", targetPath, programPath})
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to load target")
}

// panickingLoader fails the way a broken loader would, outside any error path.
type panickingLoader struct{}

func (panickingLoader) LoadProgram(context.Context, ...string) (*ir.Program, error) {
	panic("loader exploded")
}

func (panickingLoader) LoadTarget(context.Context, string) (*target.Target, error) {
	return target.Default(), nil
}

func TestStartApp_RecoversLoadPanics(t *testing.T) {
	t.Parallel()

	a, err := startApp(&bytes.Buffer{}, &bytes.Buffer{}, &app.Config{ProgramPath: "x"}, panickingLoader{})
	require.Nil(t, a)
	require.EqualError(t, err, "application startup panicked: loader exploded")
}

func TestRun_RejectsRegisterRedefinition(t *testing.T) {
	t.Parallel()

	// A second definition of %r1 would let the printed order read the wrong
	// value once B and C swap, so the program is refused at load time.
	program := `
function "main" {
  block "entry" {
    inst "A" {
      op   = "ld"
      defs = ["%r1"]
      srcs = ["g[0]"]
    }
    inst "B" {
      op   = "add"
      defs = ["%r2"]
      srcs = ["%r1", 1]
    }
    inst "C" {
      op   = "sin"
      defs = ["%r1"]
      srcs = [5]
    }
    inst "E" {
      op = "exit"
    }
  }
}
`
	filePath := filepath.Join(t.TempDir(), "main.hcl")
	require.NoError(t, os.WriteFile(filePath, []byte(program), 0600))
	out := &bytes.Buffer{}

	err := run(out, &bytes.Buffer{}, []string{filePath})

	require.Error(t, err)
	require.Contains(t, err.Error(), "instruction C: register %r1 is already defined by A")
	require.Empty(t, out.String(), "nothing is printed for a rejected program")
}
