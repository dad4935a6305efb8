package sched

// calcDepth sets every node's depth to the length, in edges, of the longest
// chain of dependents below it. Sinks seed the work list; a parent is queued
// again each time one of its children proposes a longer chain, so the result
// is final only once the list drains.
func (g *graph) calcDepth() {
	queue := make([]int, 0, len(g.nodes))
	for n := range g.nodes {
		nd := &g.nodes[n]
		if nd.childCount == 0 {
			nd.depth = 0
			queue = append(queue, n)
		}
	}

	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]

		d := g.nodes[n].depth + 1
		for _, p := range g.nodes[n].parents {
			if parent := &g.nodes[p]; parent.depth < d {
				parent.depth = d
				queue = append(queue, p)
			}
		}
	}
}
