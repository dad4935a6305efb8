package sched

import (
	"context"

	"github.com/specialistvlad/blocksched/internal/ctxlog"
	"github.com/specialistvlad/blocksched/internal/ir"
)

// buildGraph constructs the dependency graph of bb.
func buildGraph(ctx context.Context, bb *ir.BasicBlock) *graph {
	logger := ctxlog.FromContext(ctx)

	// First pass: one node per instruction.
	g := newGraph(bb)
	logger.Debug("Build: Node creation complete.", "block", bb.Label(), "node_count", len(g.nodes))

	// Second pass: hazards.
	g.calcDeps()
	logger.Debug("Build: Dependency linking complete.", "block", bb.Label(), "edge_count", g.edges)

	return g
}

// calcDeps adds the fixed-order, register RAW and memory RAW/WAW/WAR edges.
// Memory is tracked per address space only, so two accesses of the same space
// are ordered even when their addresses cannot alias.
func (g *graph) calcDeps() {
	var lastWrite, nextWrite [ir.MemorySpaces]int
	for i := range lastWrite {
		lastWrite[i] = noNode
		nextWrite[i] = noNode
	}

	for n := range g.nodes {
		inst := g.nodes[n].inst

		if inst.Fixed() {
			for before := 0; before < n; before++ {
				g.addDep(before, n)
			}
			for after := n + 1; after < len(g.nodes); after++ {
				g.addDep(n, after)
			}
		}

		// Memory RAW
		for _, v := range inst.Srcs() {
			if v.Class().IsMemory() {
				if w := lastWrite[v.Class().MemoryIndex()]; w != noNode {
					g.addDep(w, n)
				}
			}
		}

		for _, v := range inst.Defs() {
			switch {
			case v.Class().IsRegister():
				// Register RAW. Readers in other blocks are not ours to order.
				for _, use := range v.Uses() {
					if u, ok := g.lookup(use); ok {
						g.addDep(n, u)
					}
				}
			case v.Class().IsMemory():
				// Memory WAW
				space := v.Class().MemoryIndex()
				if w := lastWrite[space]; w != noNode {
					g.addDep(w, n)
				}
				lastWrite[space] = n
			}
		}
	}

	// Memory WAR
	for n := len(g.nodes) - 1; n >= 0; n-- {
		inst := g.nodes[n].inst
		for _, v := range inst.Srcs() {
			if v.Class().IsMemory() {
				if w := nextWrite[v.Class().MemoryIndex()]; w != noNode {
					g.addDep(n, w)
				}
			}
		}
		for _, v := range inst.Defs() {
			if v.Class().IsMemory() {
				nextWrite[v.Class().MemoryIndex()] = n
			}
		}
	}
}
