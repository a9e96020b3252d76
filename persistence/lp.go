package persistence

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize/convex/lp"

	"github.com/marvel2010/ktcut/wgraph"
)

// lpSimplexTolerance is the numerical tolerance handed to lp.Simplex for
// its own feasibility/optimality checks; distinct from RoundingTolerance,
// which governs how a solved LP's fractional x values are rounded into
// persistence decisions.
const lpSimplexTolerance = 1e-9

type edge struct {
	u, v string
	cap  float64
}

// relaxation holds the flattened dense LP in standard equality form
// (A x = b, x >= 0) together with the variable layout needed to read
// x_{i,k} back out of the solver's solution vector. Flattening the
// problem into dense linear algebra before handing it to a numeric
// routine mirrors tsp/bound_onetree.go's approach to turning a
// combinatorial relaxation into matrix form.
type relaxation struct {
	vertices  []string
	terminals []string
	edges     []edge

	// xIndex[i][k] is the column of x_{vertices[i], terminals[k]}.
	xIndex [][]int
	numCol int

	a *mat.Dense
	b []float64
	c []float64
}

// build assembles the LP relaxation of spec §4.6:
//
//	minimize   (1/2) * sum_{(i,j) in E, k} c_ij * z_{ij,k}
//	subject to sum_k x_{i,k} = 1                      for every vertex i
//	           x_{k,k} = 1                            for every terminal k
//	           z_{ij,k} - x_{i,k} + x_{j,k} >= 0       for every edge, k
//	           z_{ij,k} + x_{i,k} - x_{j,k} >= 0       for every edge, k
//
// The two inequality families are converted to equalities with
// non-negative slack variables, the standard move to reach the A x = b,
// x >= 0 form lp.Simplex requires. Since every x_{i,k} is non-negative and
// the per-vertex terms sum to exactly 1, no explicit x_{i,k} <= 1 upper
// bound is needed; the same argument bounds z implicitly through the
// minimization pressure on its cost.
func build(g *wgraph.Graph, terminals []string) *relaxation {
	vertices := g.Vertices()

	var edges []edge
	g.Edges(func(u, v string, c float64) {
		edges = append(edges, edge{u: u, v: v, cap: c})
	})

	n, k, m := len(vertices), len(terminals), len(edges)

	r := &relaxation{vertices: vertices, terminals: terminals, edges: edges}
	r.xIndex = make([][]int, n)
	col := 0
	for i := range vertices {
		r.xIndex[i] = make([]int, k)
		for t := 0; t < k; t++ {
			r.xIndex[i][t] = col
			col++
		}
	}
	zBase := col
	col += m * k
	s1Base := col
	col += m * k
	s2Base := col
	col += m * k
	r.numCol = col

	vertexIdx := make(map[string]int, n)
	for i, v := range vertices {
		vertexIdx[v] = i
	}
	terminalIdx := make(map[string]int, k)
	for t, term := range terminals {
		terminalIdx[term] = t
	}

	numRows := n + k + 2*m*k
	a := mat.NewDense(numRows, col, nil)
	b := make([]float64, numRows)
	c := make([]float64, col)

	row := 0
	for i := range vertices {
		for t := 0; t < k; t++ {
			a.Set(row, r.xIndex[i][t], 1)
		}
		b[row] = 1
		row++
	}
	for t, term := range terminals {
		a.Set(row, r.xIndex[vertexIdx[term]][t], 1)
		b[row] = 1
		row++
	}
	for e, ed := range edges {
		ui, vi := vertexIdx[ed.u], vertexIdx[ed.v]
		for t := 0; t < k; t++ {
			zCol := zBase + e*k + t
			c[zCol] = ed.cap / 2

			s1Col := s1Base + e*k + t
			a.Set(row, zCol, 1)
			a.Set(row, r.xIndex[ui][t], -1)
			a.Set(row, r.xIndex[vi][t], 1)
			a.Set(row, s1Col, -1)
			row++

			s2Col := s2Base + e*k + t
			a.Set(row, zCol, 1)
			a.Set(row, r.xIndex[ui][t], 1)
			a.Set(row, r.xIndex[vi][t], -1)
			a.Set(row, s2Col, -1)
			row++
		}
	}

	r.a, r.b, r.c = a, b, c
	return r
}

// relaxationSolved holds the solution vector lp.Simplex returns for a
// relaxation's standard-form inputs a, b, c.
type relaxationSolved struct {
	x []float64
}

func (r *relaxation) solve() (*relaxationSolved, error) {
	_, x, err := lp.Simplex(r.c, r.a, r.b, lpSimplexTolerance)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSolverFailure, err)
	}
	return &relaxationSolved{x: x}, nil
}

// x returns x_{vertices[i], terminals[t]} from a solved relaxation.
func (r *relaxation) x(sol *relaxationSolved, i, t int) float64 {
	return sol.x[r.xIndex[i][t]]
}
