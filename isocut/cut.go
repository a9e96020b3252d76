package isocut

import "github.com/marvel2010/ktcut/wgraph"

// superSource and superSink are reserved auxiliary node IDs added to the
// residual network for the duration of Cut. They never appear in the
// graph the caller passes in (wgraph.Graph vertex IDs are whatever the
// caller chose), and they never leak into Cut's return value.
const (
	superSource = "\x00isocut-source\x00"
	superSink   = "\x00isocut-sink\x00"
)

// Cut returns the source-maximal minimum S-K cut of g: a set S* with
// S ⊆ S* ⊆ V(g) \ K, and its weight — the total capacity of edges of g
// with exactly one endpoint in S*. S* is source-maximal: the source
// side of any other minimum S-K cut is a subset of S*.
//
// If S or K is empty, Cut returns (a copy of S, 0, nil) per the spec's
// degenerate case. Cut fails with ErrOverlappingCutSets if S and K
// share a vertex.
func Cut(g *wgraph.Graph, sources, sinks map[string]struct{}) (map[string]struct{}, float64, error) {
	for s := range sources {
		if _, ok := sinks[s]; ok {
			return nil, 0, ErrOverlappingCutSets
		}
	}

	if len(sources) == 0 || len(sinks) == 0 {
		out := make(map[string]struct{}, len(sources))
		for s := range sources {
			out[s] = struct{}{}
		}
		return out, 0, nil
	}

	r := newResidual()
	var totalCapacity float64
	g.Edges(func(u, v string, c float64) {
		totalCapacity += c
		r.addArc(u, v, c)
		r.addArc(v, u, c)
	})
	// Every vertex must have a residual-graph entry even if isolated, so
	// the level-graph BFS and the sink-side BFS both see it.
	for _, id := range g.Vertices() {
		r.ensure(id)
	}

	infinite := 2*totalCapacity + 1
	for s := range sources {
		r.addArc(superSource, s, infinite)
	}
	for k := range sinks {
		r.addArc(k, superSink, infinite)
	}

	weight := r.maxFlow(superSource, superSink)

	sinkSide := r.ancestorsOf(superSink)
	if _, ok := sinkSide[superSink]; !ok {
		panic("isocut: super-sink unreachable from itself (broken residual graph)")
	}
	if _, ok := sinkSide[superSource]; ok {
		panic("isocut: super-source ended up on the sink side of its own cut")
	}

	sourceSide := make(map[string]struct{})
	for u := range r.cap {
		if u == superSource || u == superSink {
			continue
		}
		if _, onSinkSide := sinkSide[u]; !onSinkSide {
			sourceSide[u] = struct{}{}
		}
	}
	for s := range sources {
		if _, ok := sourceSide[s]; !ok {
			panic("isocut: a source vertex ended up on the sink side of its own cut")
		}
	}

	return sourceSide, weight, nil
}

// ancestorsOf returns every node that can still reach t via arcs with
// positive residual capacity — the spec's "reverse direction from τ"
// reachability search. Because addArc always creates a (possibly zero)
// entry in both directions, a node's key set in r.cap already contains
// every candidate predecessor, so no separate reverse-adjacency index
// is needed.
func (r *residual) ancestorsOf(t string) map[string]struct{} {
	visited := map[string]struct{}{t: {}}
	queue := []string{t}
	for i := 0; i < len(queue); i++ {
		u := queue[i]
		for y := range r.cap[u] {
			if _, seen := visited[y]; seen {
				continue
			}
			if r.cap[y][u] > dinicEpsilon {
				visited[y] = struct{}{}
				queue = append(queue, y)
			}
		}
	}
	return visited
}
