package ktcut

import (
	"context"
	"errors"
	"fmt"

	"github.com/marvel2010/ktcut/branch"
	"github.com/marvel2010/ktcut/persistence"
	"github.com/marvel2010/ktcut/search"
	"github.com/marvel2010/ktcut/wgraph"
)

// Edge is one input edge. Capacity is a pointer so a caller can
// distinguish "unspecified" (nil, defaulted to 1.0) from an explicit
// capacity of 0 (treated as absent: the edge is dropped before it ever
// reaches wgraph, which — by design — rejects non-positive capacities
// rather than silently tolerating them).
type Edge struct {
	U, V     string
	Capacity *float64
}

// Solve finds the minimum-capacity partition of vertices into len(terminals)
// parts, one per terminal, minimizing the total capacity of edges crossing
// between parts. vertices must include every terminal and every edge
// endpoint; isolated vertices (including isolated terminals) are legal.
func Solve(vertices []string, edges []Edge, terminals []string, opts ...Option) (*Result, error) {
	if len(vertices) == 0 {
		return nil, ErrEmptyGraph
	}
	if len(terminals) < 2 {
		return nil, ErrTooFewTerminals
	}
	seen := make(map[string]struct{}, len(terminals))
	for _, t := range terminals {
		if _, dup := seen[t]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateTerminal, t)
		}
		seen[t] = struct{}{}
	}

	g := wgraph.NewGraph()
	for _, v := range vertices {
		if err := g.AddVertex(v); err != nil {
			return nil, fmt.Errorf("ktcut: %w", err)
		}
	}
	for t := range seen {
		if !g.HasVertex(t) {
			return nil, fmt.Errorf("%w: %q", ErrTerminalNotInGraph, t)
		}
	}
	for _, e := range edges {
		capacity := 1.0
		if e.Capacity != nil {
			capacity = *e.Capacity
		}
		if capacity <= 0 {
			continue
		}
		if err := g.AddEdge(e.U, e.V, capacity); err != nil {
			return nil, fmt.Errorf("ktcut: %w", err)
		}
	}

	options := resolveOptions(opts)

	rootGraph, err := branch.Root(g, terminals)
	if err != nil {
		return nil, fmt.Errorf("ktcut: %w", err)
	}

	var terminalsByVertex map[string][]string
	if options.persistenceMode != persistence.ModeNone {
		m, err := persistence.Solve(rootGraph, terminals, options.persistenceMode)
		if err != nil {
			if !errors.Is(err, persistence.ErrSolverFailure) {
				return nil, fmt.Errorf("ktcut: %w", err)
			}
			// Persistence is an optimization; fall back to an
			// unconstrained search per spec §7.
		} else {
			terminalsByVertex = m
		}
	}

	tree := &search.Tree{
		RootGraph:         rootGraph,
		Terminals:         terminals,
		Selection:         options.selection,
		TerminalsByVertex: terminalsByVertex,
		Reporting:         options.reporting,
	}

	ctx := context.Background()
	if options.timeLimit > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, options.timeLimit)
		defer cancel()
	}

	sr, err := tree.Run(ctx)
	if err != nil {
		return nil, fmt.Errorf("ktcut: %w", err)
	}

	sourceSetSizes := make(map[string]int, len(terminals))
	for t, set := range sr.Partition {
		sourceSetSizes[t] = len(set)
	}

	trace := make([]ContractionStep, len(sr.Trace))
	for i, d := range sr.Trace {
		trace[i] = ContractionStep{Vertex: d.Vertex, Terminal: d.Terminal, Depth: d.Depth}
	}

	return &Result{
		Partition: sr.Partition,
		CutValue:  roundCutValue(sr.CutValue),
		Status:    sr.Status,
		Gap:       sr.Gap,
		Report: Report{
			SourceSetSizes: sourceSetSizes,
			NodesExplored:  sr.NodesExplored,
			BestLowerBound: sr.CutValue - sr.Gap,
			BestUpperBound: sr.CutValue,
			Elapsed:        sr.Elapsed,
			Steps:          sr.Steps,
		},
		ContractionTrace: trace,
	}, nil
}
