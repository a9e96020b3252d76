package wgraph

// ContractMany folds every vertex in vs into u: for each neighbor w of a
// v in vs (w not in {u} ∪ vs), the capacity of (u, w) is increased by
// c(v, w) — or the edge is created if it doesn't yet exist. Edges
// between two members of vs are discarded rather than becoming
// self-loops on u. Every v in vs is then removed from the graph, and
// vs, together with u's prior Combined set, is recorded as u's new
// Combined set.
//
// ContractMany fails with ErrSelfContraction if u appears in vs.
func (g *Graph) ContractMany(u string, vs map[string]struct{}) error {
	if _, ok := vs[u]; ok {
		return ErrSelfContraction
	}
	if !g.HasVertex(u) {
		return ErrVertexNotFound
	}

	for v := range vs {
		adj, ok := g.adjacency[v]
		if !ok {
			continue
		}
		for w, c := range adj {
			if w == u {
				continue
			}
			if _, absorbed := vs[w]; absorbed {
				continue
			}
			if existing, ok := g.adjacency[u][w]; ok {
				g.adjacency[u][w] = existing + c
				g.adjacency[w][u] = existing + c
			} else {
				g.adjacency[u][w] = c
				g.adjacency[w][u] = c
			}
		}
	}

	for v := range vs {
		g.RemoveVertex(v)
	}

	ut := g.vertices[u]
	for v := range vs {
		ut.combined[v] = struct{}{}
	}

	return nil
}

// ContractOne folds the single vertex v into u. It is sugar for
// ContractMany(u, {v}).
func (g *Graph) ContractOne(u, v string) error {
	return g.ContractMany(u, map[string]struct{}{v: {}})
}
