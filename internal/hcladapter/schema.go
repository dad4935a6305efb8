package hcladapter

import "github.com/hashicorp/hcl/v2"

// programRoot decodes every top-level block a program file may hold.
type programRoot struct {
	Functions []*functionBlock `hcl:"function,block"`
	Remain    hcl.Body         `hcl:",remain"`
}

// functionBlock is a `function "name" { ... }` block.
type functionBlock struct {
	Name   string        `hcl:"name,label"`
	Blocks []*blockBlock `hcl:"block,block"`
}

// blockBlock is a `block "label" { ... }` block holding the instructions of
// one basic block in program order.
type blockBlock struct {
	Label string       `hcl:"label,label"`
	Insts []*instBlock `hcl:"inst,block"`
}

// instBlock is an `inst "name" { ... }` block. Defs and Srcs are lists that
// mix operand strings and integer immediates.
type instBlock struct {
	Name  string         `hcl:"name,label"`
	Op    string         `hcl:"op"`
	Defs  hcl.Expression `hcl:"defs,optional"`
	Srcs  hcl.Expression `hcl:"srcs,optional"`
	Fixed *bool          `hcl:"fixed,optional"`
}

// targetRoot decodes a target description file.
type targetRoot struct {
	Targets []*targetBlock `hcl:"target,block"`
	Remain  hcl.Body       `hcl:",remain"`
}

// targetBlock overrides parts of the built-in profile. Every figure left out
// keeps its default.
type targetBlock struct {
	Name              string      `hcl:"name,label"`
	DefaultLatency    *int        `hcl:"default_latency,optional"`
	DefaultThroughput *int        `hcl:"default_throughput,optional"`
	Costs             *costsBlock `hcl:"costs,block"`
	Ops               []*opBlock  `hcl:"op,block"`
}

type costsBlock struct {
	Atomic   *int `hcl:"atomic,optional"`
	Interp   *int `hcl:"interp,optional"`
	Texture  *int `hcl:"texture,optional"`
	Load     *int `hcl:"load,optional"`
	SrcLocal *int `hcl:"src_local,optional"`
	SrcOther *int `hcl:"src_other,optional"`
	DefLocal *int `hcl:"def_local,optional"`
	DefOther *int `hcl:"def_other,optional"`
}

// opBlock is an `op "name" { ... }` timing override.
type opBlock struct {
	Name       string `hcl:"name,label"`
	Latency    *int   `hcl:"latency,optional"`
	Throughput *int   `hcl:"throughput,optional"`
}
