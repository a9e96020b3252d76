package wgraph

import "fmt"

// vertex is an internal node record. Combined holds the set of original
// (caller-supplied) vertex IDs this vertex now represents; it starts
// empty and only ever grows, via ContractMany, as contraction proceeds.
type vertex struct {
	id       string
	combined map[string]struct{}
}

// Graph is an undirected simple graph with positive edge capacities.
// Each branch node in the search owns an independent Graph (see Clone);
// nothing in this package mutates a caller's graph after AddEdge has
// returned it to them, and nothing in this package is safe for
// concurrent use by design — a Graph is always exclusively owned by
// whichever branch node holds it at a given moment (spec: single-owner,
// single-threaded search).
type Graph struct {
	vertices  map[string]*vertex
	adjacency map[string]map[string]float64
}

// NewGraph returns an empty working graph.
func NewGraph() *Graph {
	return &Graph{
		vertices:  make(map[string]*vertex),
		adjacency: make(map[string]map[string]float64),
	}
}

// AddVertex inserts id into the graph if not already present. It is a
// no-op if the vertex already exists.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	if _, ok := g.vertices[id]; ok {
		return nil
	}
	g.vertices[id] = &vertex{id: id, combined: make(map[string]struct{})}
	g.adjacency[id] = make(map[string]float64)
	return nil
}

// HasVertex reports whether id is present in the graph.
func (g *Graph) HasVertex(id string) bool {
	_, ok := g.vertices[id]
	return ok
}

// AddEdge adds an undirected edge between u and v with the given
// capacity, adding either endpoint if it does not yet exist. Capacity
// must be strictly positive (spec: "c(u,v) > 0 for every present edge");
// callers that want to represent an absent edge simply omit it.
// Calling AddEdge twice for the same unordered pair overwrites the
// capacity rather than accumulating it — accumulation is the job of
// ContractMany, not of AddEdge.
func (g *Graph) AddEdge(u, v string, capacity float64) error {
	if u == v {
		return fmt.Errorf("wgraph: AddEdge(%q, %q): %w", u, v, ErrSelfLoop)
	}
	if capacity <= 0 {
		return fmt.Errorf("wgraph: AddEdge(%q, %q): %w", u, v, ErrNonPositiveCapacity)
	}
	if err := g.AddVertex(u); err != nil {
		return err
	}
	if err := g.AddVertex(v); err != nil {
		return err
	}
	g.adjacency[u][v] = capacity
	g.adjacency[v][u] = capacity
	return nil
}

// RemoveVertex deletes id and every edge incident to it.
func (g *Graph) RemoveVertex(id string) {
	if _, ok := g.vertices[id]; !ok {
		return
	}
	for w := range g.adjacency[id] {
		delete(g.adjacency[w], id)
	}
	delete(g.adjacency, id)
	delete(g.vertices, id)
}

// Vertices returns the IDs of every vertex currently in the graph. The
// order is unspecified; callers that need determinism should sort it.
func (g *Graph) Vertices() []string {
	out := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		out = append(out, id)
	}
	return out
}

// NumVertices returns the number of vertices in the graph.
func (g *Graph) NumVertices() int {
	return len(g.vertices)
}

// Neighbors returns the IDs of vertices adjacent to v. Returns nil if v
// is not in the graph.
func (g *Graph) Neighbors(v string) []string {
	adj, ok := g.adjacency[v]
	if !ok {
		return nil
	}
	out := make([]string, 0, len(adj))
	for w := range adj {
		out = append(out, w)
	}
	return out
}

// Capacity returns the capacity of the edge between u and v, and
// whether that edge is present.
func (g *Graph) Capacity(u, v string) (float64, bool) {
	adj, ok := g.adjacency[u]
	if !ok {
		return 0, false
	}
	c, ok := adj[v]
	return c, ok
}

// Degree returns the capacity-weighted degree of v: the sum of the
// capacities of every edge incident to v. Used by the highest-weighted-
// degree vertex-selection policy (spec §4.5).
func (g *Graph) Degree(v string) float64 {
	var total float64
	for _, c := range g.adjacency[v] {
		total += c
	}
	return total
}

// Combined returns the set of original vertex IDs that v currently
// represents (empty, never nil, if v has absorbed nothing yet).
func (g *Graph) Combined(v string) map[string]struct{} {
	vt, ok := g.vertices[v]
	if !ok {
		return nil
	}
	return vt.combined
}

// Edges calls fn once for each undirected edge, in unspecified order,
// with u < v lexicographically so every edge is visited exactly once.
func (g *Graph) Edges(fn func(u, v string, capacity float64)) {
	for u, adj := range g.adjacency {
		for v, c := range adj {
			if u < v {
				fn(u, v, c)
			}
		}
	}
}
