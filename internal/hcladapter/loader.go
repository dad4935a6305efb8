package hcladapter

import (
	"context"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/pkg/errors"
	"github.com/specialistvlad/blocksched/internal/config"
	"github.com/specialistvlad/blocksched/internal/ctxlog"
	"github.com/specialistvlad/blocksched/internal/fsutil"
	"github.com/specialistvlad/blocksched/internal/ir"
	"github.com/specialistvlad/blocksched/internal/target"
)

var _ config.Loader = (*Loader)(nil)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL loader.
func NewLoader() *Loader {
	return &Loader{}
}

// LoadProgram parses every .hcl file below paths and builds the functions
// they declare, in file order. Files may hold any mix of top-level blocks;
// blocks other than `function` are ignored.
func (l *Loader) LoadProgram(ctx context.Context, paths ...string) (*ir.Program, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL program loader started.", "path_count", len(paths))

	hclFiles, err := l.findAllHCLFiles(paths)
	if err != nil {
		return nil, err
	}
	logger.Debug("Discovered HCL files.", "count", len(hclFiles))

	parser := hclparse.NewParser()
	prog := &ir.Program{}
	seen := make(map[string]string)

	for _, file := range hclFiles {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, errors.Wrapf(diags, "failed to parse HCL file %s", file)
		}

		var root programRoot
		diags = gohcl.DecodeBody(hclFile.Body, nil, &root)
		if diags.HasErrors() {
			return nil, errors.Wrapf(diags, "failed to decode HCL file %s", file)
		}

		for _, fb := range root.Functions {
			if prev, dup := seen[fb.Name]; dup {
				return nil, errors.Errorf("%s: function %q already declared in %s", file, fb.Name, prev)
			}
			seen[fb.Name] = file

			fn, err := l.translateFunction(ctx, fb)
			if err != nil {
				return nil, errors.Wrap(err, file)
			}
			prog.Functions = append(prog.Functions, fn)
		}
	}

	logger.Debug("HCL program loading complete.", "files", len(hclFiles), "functions", len(prog.Functions))
	return prog, nil
}

// LoadTarget reads a single target description. The file must declare
// exactly one `target` block.
func (l *Loader) LoadTarget(ctx context.Context, path string) (*target.Target, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL target loader started.", "path", path)

	hclFile, diags := hclparse.NewParser().ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, errors.Wrapf(diags, "failed to parse HCL file %s", path)
	}

	var root targetRoot
	diags = gohcl.DecodeBody(hclFile.Body, nil, &root)
	if diags.HasErrors() {
		return nil, errors.Wrapf(diags, "failed to decode HCL file %s", path)
	}
	if len(root.Targets) != 1 {
		return nil, errors.Errorf("%s: expected exactly one target block, found %d", path, len(root.Targets))
	}

	t := translateTarget(root.Targets[0])
	if err := t.Validate(); err != nil {
		return nil, errors.Wrap(err, path)
	}

	logger.Debug("HCL target loading complete.", "target", t.Name, "op_overrides", len(root.Targets[0].Ops))
	return t, nil
}

// findAllHCLFiles walks all given paths and returns a flat list of all .hcl files found.
func (l *Loader) findAllHCLFiles(paths []string) ([]string, error) {
	return fsutil.FindFiles(paths, ".hcl")
}
