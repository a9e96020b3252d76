package branch

import (
	"fmt"
	"math"

	"github.com/marvel2010/ktcut/isocut"
	"github.com/marvel2010/ktcut/wgraph"
)

// Node is one node of the isolation-branching search tree. It owns its
// working graph exclusively (Graph is a fresh clone taken at
// construction time — see New) and is never mutated by a sibling or by
// its own children once they exist.
type Node struct {
	Graph      *wgraph.Graph
	Terminals  []string
	Depth      int
	LowerBound float64
	UpperBound float64

	// AssignedVertex/AssignedTerminal record the branching decision that
	// produced this node from its parent; both are empty for the root
	// node built directly from Root's preprocessed graph.
	AssignedVertex   string
	AssignedTerminal string

	// Trace is the ordered list of branching decisions on the path from
	// the tree's root node to this one: which vertex was folded into
	// which terminal, and at what depth, in the order those decisions
	// were made.
	Trace []Decision

	branched bool
}

// Decision records one branching step: vertex was assigned to terminal at
// the given depth.
type Decision struct {
	Vertex   string
	Terminal string
	Depth    int
}

// NoParentBound signals New that there is no parent lower bound to
// check monotonicity against (used for the tree's very first node).
const NoParentBound = math.Inf(-1)

// New constructs a node from parentGraph, terminals, and the branching
// decision (newVertex assigned to newTerminal). Pass newVertex == ""
// to build the initial node directly from a preprocessed graph with no
// branching decision yet (used once, for the node Root's output seeds).
//
// Construction always takes an independent deep copy of parentGraph
// first (spec §4.3 step 1) so that siblings — and the parent itself —
// never share graph state.
func New(parentGraph *wgraph.Graph, terminals []string, newVertex, newTerminal string, depth int, parentLowerBound float64) (*Node, error) {
	g := parentGraph.Clone()

	if newVertex != "" {
		if err := g.ContractOne(newTerminal, newVertex); err != nil {
			return nil, fmt.Errorf("branch: contracting %q into %q: %w", newVertex, newTerminal, err)
		}

		sinks := make(map[string]struct{}, len(terminals)-1)
		for _, t := range terminals {
			if t != newTerminal {
				sinks[t] = struct{}{}
			}
		}
		sourceSide, _, err := isocut.Cut(g, map[string]struct{}{newTerminal: {}}, sinks)
		if err != nil {
			return nil, fmt.Errorf("branch: isolating cut for %q: %w", newTerminal, err)
		}
		delete(sourceSide, newTerminal)
		if err := g.ContractMany(newTerminal, sourceSide); err != nil {
			return nil, fmt.Errorf("branch: absorbing isolating-cut source side into %q: %w", newTerminal, err)
		}
	}

	lb, ub := bounds(g, terminals)
	if parentLowerBound != NoParentBound && lb < parentLowerBound-boundTolerance {
		return nil, fmt.Errorf("%w: child LB %.12g < parent LB %.12g", ErrInvariantViolation, lb, parentLowerBound)
	}

	return &Node{
		Graph:            g,
		Terminals:        terminals,
		Depth:            depth,
		LowerBound:       lb,
		UpperBound:       ub,
		AssignedVertex:   newVertex,
		AssignedTerminal: newTerminal,
	}, nil
}

// Unassigned returns the vertices of n.Graph that are not terminals —
// exactly the set a leaf node has none of.
func (n *Node) Unassigned() []string {
	isTerminal := make(map[string]struct{}, len(n.Terminals))
	for _, t := range n.Terminals {
		isTerminal[t] = struct{}{}
	}
	var out []string
	for _, v := range n.Graph.Vertices() {
		if _, ok := isTerminal[v]; !ok {
			out = append(out, v)
		}
	}
	return out
}

// IsLeaf reports whether n has no unassigned vertices: its graph
// consists of exactly the terminals, and LowerBound == UpperBound is
// the objective value of the partition n represents.
func (n *Node) IsLeaf() bool {
	return len(n.Unassigned()) == 0
}

// Children builds one child per terminal in allowed, each assigning v
// to that terminal. n must not have branched before (spec: "nodes
// branch at most once").
func (n *Node) Children(v string, allowed []string) ([]*Node, error) {
	if n.branched {
		return nil, ErrAlreadyBranched
	}
	n.branched = true

	children := make([]*Node, 0, len(allowed))
	for _, t := range allowed {
		child, err := New(n.Graph, n.Terminals, v, t, n.Depth+1, n.LowerBound)
		if err != nil {
			return nil, err
		}
		child.Trace = append(append(make([]Decision, 0, len(n.Trace)+1), n.Trace...), Decision{
			Vertex: v, Terminal: t, Depth: child.Depth,
		})
		children = append(children, child)
	}
	return children, nil
}
