package search

import "github.com/marvel2010/ktcut/wgraph"

// SelectionPolicy chooses which unassigned vertex a node branches on next.
// It is a one-method interface rather than a func type so the public API
// only ever exposes the two concrete policies below; callers select a
// policy by value, not by supplying an arbitrary closure.
type SelectionPolicy interface {
	// Choose returns one element of unassigned. unassigned is always
	// non-empty; g is the node's working graph and terminals its
	// terminal set, both made available for degree lookups.
	Choose(g *wgraph.Graph, terminals []string, unassigned []string) string
}

// HighestWeightedDegree picks the unassigned vertex with the largest
// capacity-weighted degree in the node's working graph, breaking ties by
// the smaller vertex ID for determinism. This is the documented default:
// the highest-degree unassigned vertex most strongly influences the node's
// bounds and most often triggers large isolating-cut contractions in its
// children.
type HighestWeightedDegree struct{}

func (HighestWeightedDegree) Choose(g *wgraph.Graph, _ []string, unassigned []string) string {
	best := unassigned[0]
	bestDegree := g.Degree(best)
	for _, v := range unassigned[1:] {
		d := g.Degree(v)
		if d > bestDegree || (d == bestDegree && v < best) {
			best, bestDegree = v, d
		}
	}
	return best
}

// LowestVertexID always picks the lexicographically smallest unassigned
// vertex ID. It is fully independent of edge weights, which makes it a
// deterministic fallback used by tests.
type LowestVertexID struct{}

func (LowestVertexID) Choose(_ *wgraph.Graph, _ []string, unassigned []string) string {
	best := unassigned[0]
	for _, v := range unassigned[1:] {
		if v < best {
			best = v
		}
	}
	return best
}
