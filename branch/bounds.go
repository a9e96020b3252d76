package branch

import "github.com/marvel2010/ktcut/wgraph"

// bounds computes the node-level lower and upper bound from a working
// graph: E_TT (capacity of edges with both endpoints terminals) and
// E_TU (capacity of edges with exactly one terminal endpoint).
//
//	LB = E_TT + E_TU/2
//	UB = E_TT + E_TU
func bounds(g *wgraph.Graph, terminals []string) (lb, ub float64) {
	isTerminal := make(map[string]struct{}, len(terminals))
	for _, t := range terminals {
		isTerminal[t] = struct{}{}
	}

	var ett, etu float64
	g.Edges(func(u, v string, c float64) {
		_, uT := isTerminal[u]
		_, vT := isTerminal[v]
		switch {
		case uT && vT:
			ett += c
		case uT || vT:
			etu += c
		}
	})

	return ett + etu/2, ett + etu
}
