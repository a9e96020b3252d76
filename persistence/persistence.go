package persistence

import "github.com/marvel2010/ktcut/wgraph"

// Mode selects how aggressively Solve restricts terminals_by_vertex from
// the LP relaxation's optimum.
type Mode int

const (
	// ModeNone assigns every vertex the full terminal set; no LP is
	// solved.
	ModeNone Mode = iota
	// ModeWeak fixes a vertex to a single terminal only when some
	// x_{i,k} rounds to 1 within RoundingTolerance; all other vertices
	// remain free.
	ModeWeak
	// ModeStrong restricts each vertex to the terminals with a
	// non-negligible x_{i,k} in the LP optimum.
	ModeStrong
)

// RoundingTolerance is the tolerance spec §6 specifies for all LP-derived
// equality tests: a fractional x_{i,k} within this distance of 1 (weak
// mode) or of 0 (strong mode) is treated as exactly 1 or 0.
const RoundingTolerance = 1e-5

// Solve returns terminals_by_vertex: for each vertex in g, the set of
// terminals the branch-and-bound search is allowed to assign it to. With
// ModeNone this is computed without touching the LP solver at all.
func Solve(g *wgraph.Graph, terminals []string, mode Mode) (map[string][]string, error) {
	full := append([]string(nil), terminals...)

	if mode == ModeNone {
		return fullAssignment(g, full), nil
	}

	r := build(g, terminals)
	sol, err := r.solve()
	if err != nil {
		return nil, err
	}

	result := make(map[string][]string, len(r.vertices))
	for i, v := range r.vertices {
		switch mode {
		case ModeWeak:
			result[v] = weakAssignment(r, sol, i, full)
		case ModeStrong:
			result[v] = strongAssignment(r, sol, i)
		}
	}
	return result, nil
}

func fullAssignment(g *wgraph.Graph, full []string) map[string][]string {
	result := make(map[string][]string, g.NumVertices())
	for _, v := range g.Vertices() {
		result[v] = full
	}
	return result
}

func weakAssignment(r *relaxation, sol *relaxationSolved, i int, full []string) []string {
	for t, term := range r.terminals {
		if r.x(sol, i, t) >= 1-RoundingTolerance {
			return []string{term}
		}
	}
	return full
}

func strongAssignment(r *relaxation, sol *relaxationSolved, i int) []string {
	var allowed []string
	for t, term := range r.terminals {
		if r.x(sol, i, t) > RoundingTolerance {
			allowed = append(allowed, term)
		}
	}
	return allowed
}
