package sched

import "github.com/specialistvlad/blocksched/internal/ir"

// noNode marks an empty node handle.
const noNode = -1

// node is the scheduling state of one instruction. Nodes live in the graph's
// arena and refer to each other by index.
type node struct {
	inst *ir.Instruction

	children []int
	parents  []int

	parentCount int
	childCount  int

	depth          int
	preferredCycle int
	cost           int

	retired bool
}

// graph is the dependency graph of one block. Arena order equals the
// original program order, so the last index is the block's terminator.
type graph struct {
	bb    *ir.BasicBlock
	nodes []node
	index map[*ir.Instruction]int
	edges int
}

// newGraph creates one node per instruction of bb.
func newGraph(bb *ir.BasicBlock) *graph {
	g := &graph{
		bb:    bb,
		nodes: make([]node, 0, bb.Len()),
		index: make(map[*ir.Instruction]int, bb.Len()),
	}
	for inst := bb.Entry(); inst != nil; inst = inst.Next() {
		g.index[inst] = len(g.nodes)
		g.nodes = append(g.nodes, node{inst: inst, depth: -1})
	}
	return g
}

// lookup returns the node of inst if inst belongs to the scheduled block.
func (g *graph) lookup(inst *ir.Instruction) (int, bool) {
	n, ok := g.index[inst]
	return n, ok
}

// addDep records that after must not issue before before.
func (g *graph) addDep(before, after int) {
	b, a := &g.nodes[before], &g.nodes[after]
	b.children = append(b.children, after)
	b.childCount++
	a.parents = append(a.parents, before)
	a.parentCount++
	g.edges++
}

// retire drops the node once its instruction has been placed.
func (g *graph) retire(n int) {
	nd := &g.nodes[n]
	invariant(!nd.retired, "node %s retired twice", nd.inst.Label())
	nd.retired = true
	delete(g.index, nd.inst)
}

func (g *graph) terminator() int {
	return len(g.nodes) - 1
}
