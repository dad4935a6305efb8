package sched

import "github.com/pkg/errors"

// detectCycles checks the graph for circular dependencies using DFS.
func (g *graph) detectCycles() error {
	visiting := make([]bool, len(g.nodes))
	visited := make([]bool, len(g.nodes))

	var visit func(n int) error
	visit = func(n int) error {
		visiting[n] = true
		for _, c := range g.nodes[n].children {
			if visiting[c] {
				return errors.Errorf("cycle detected involving '%s'", g.nodes[c].inst.Label())
			}
			if !visited[c] {
				if err := visit(c); err != nil {
					return err
				}
			}
		}
		visiting[n] = false
		visited[n] = true
		return nil
	}

	for n := range g.nodes {
		if !visited[n] {
			if err := visit(n); err != nil {
				return err
			}
		}
	}
	return nil
}
