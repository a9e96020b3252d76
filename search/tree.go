package search

import (
	"container/heap"
	"context"
	"fmt"
	"math"
	"time"

	"github.com/marvel2010/ktcut/branch"
	"github.com/marvel2010/ktcut/wgraph"
)

// Tree is the best-first branch-and-bound engine. It is built once per
// solve call from the already-rooted working graph (see branch.Root) and
// is not reusable across calls: Run consumes it.
type Tree struct {
	// RootGraph has already been through branch.Root's per-terminal
	// isolating-cut preprocessing.
	RootGraph *wgraph.Graph
	Terminals []string
	Selection SelectionPolicy
	// TerminalsByVertex restricts branching at vertex v to the listed
	// terminals; a missing or empty entry defaults to every terminal
	// (spec.md's terminals_by_vertex, produced by LP persistence). A nil
	// map means no restriction is in effect at all.
	TerminalsByVertex map[string][]string
	Reporting         bool
}

// allowedFor returns the terminal set Children should branch v over.
func (t *Tree) allowedFor(v string) []string {
	if t.TerminalsByVertex == nil {
		return t.Terminals
	}
	if a, ok := t.TerminalsByVertex[v]; ok && len(a) > 0 {
		return a
	}
	return t.Terminals
}

// Run executes the main loop of spec.md §4.5: repeatedly pop the
// best-LB live node, stop at the first popped leaf (which is then
// provably optimal because of the min-heap pop order and the
// monotonicity invariant), or stop early once the frontier's best lower
// bound meets or exceeds the best known upper bound. ctx is checked once
// per pop; on expiry Run returns the best leaf found so far with
// Status = StatusTimeBudgetExceeded.
func (t *Tree) Run(ctx context.Context) (*Result, error) {
	if len(t.Terminals) < 2 {
		return nil, ErrNoTerminals
	}

	start := time.Now()

	root, err := branch.New(t.RootGraph, t.Terminals, "", "", 0, branch.NoParentBound)
	if err != nil {
		return nil, fmt.Errorf("search: building initial node: %w", err)
	}

	fr := &frontier{root}
	heap.Init(fr)

	bestLower := root.LowerBound
	bestUpper := math.Inf(1)
	var bestLeaf *branch.Node
	nodeCount := 1

	var steps []Step

	for {
		if err := ctx.Err(); err != nil {
			if bestLeaf == nil {
				return nil, ErrNoFeasibleSolutionYet
			}
			return t.finish(bestLeaf, bestLower, bestLeaf.UpperBound, StatusTimeBudgetExceeded, steps, nodeCount, time.Since(start)), nil
		}

		if bestLower >= bestUpper {
			if bestLeaf == nil {
				return nil, ErrEmptyFrontier
			}
			return t.finish(bestLeaf, bestLower, bestLeaf.UpperBound, StatusOptimal, steps, nodeCount, time.Since(start)), nil
		}

		if fr.Len() == 0 {
			return nil, ErrEmptyFrontier
		}
		n := heap.Pop(fr).(*branch.Node)

		if n.IsLeaf() {
			bestLeaf = n
			return t.finish(n, n.LowerBound, n.UpperBound, StatusOptimal, steps, nodeCount, time.Since(start)), nil
		}

		if t.Reporting {
			frontierBest, _ := fr.minLowerBound()
			steps = append(steps, Step{
				Depth:          n.Depth,
				LowerBound:     n.LowerBound,
				UpperBound:     n.UpperBound,
				FrontierBestLB: frontierBest,
				GlobalBestUB:   bestUpper,
				Unexplored:     fr.Len(),
				Elapsed:        time.Since(start),
			})
		}

		unassigned := n.Unassigned()
		v := t.Selection.Choose(n.Graph, t.Terminals, unassigned)
		allowed := t.allowedFor(v)

		children, err := n.Children(v, allowed)
		if err != nil {
			return nil, fmt.Errorf("search: branching on %q: %w", v, err)
		}
		nodeCount += len(children)
		for _, c := range children {
			heap.Push(fr, c)
			if c.UpperBound < bestUpper {
				bestUpper = c.UpperBound
			}
			if c.IsLeaf() && (bestLeaf == nil || c.UpperBound < bestLeaf.UpperBound) {
				bestLeaf = c
			}
		}
		if lb, ok := fr.minLowerBound(); ok {
			bestLower = lb
		}
	}
}

// finish builds a Result from the node whose graph represents the chosen
// partition, per spec.md §4.5's "Final extraction": for each terminal t,
// the returned source set is combined(t) ∪ {t}.
func (t *Tree) finish(n *branch.Node, bestLower, bestUpper float64, status Status, steps []Step, nodeCount int, elapsed time.Duration) *Result {
	partition := make(map[string]map[string]struct{}, len(t.Terminals))
	for _, term := range t.Terminals {
		set := make(map[string]struct{})
		for v := range n.Graph.Combined(term) {
			set[v] = struct{}{}
		}
		set[term] = struct{}{}
		partition[term] = set
	}

	gap := 0.0
	if status != StatusOptimal {
		gap = bestUpper - bestLower
	}

	return &Result{
		Partition:     partition,
		CutValue:      n.LowerBound,
		Status:        status,
		Gap:           gap,
		Steps:         steps,
		Trace:         n.Trace,
		NodesExplored: nodeCount,
		Elapsed:       elapsed,
	}
}
