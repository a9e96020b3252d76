package search

import (
	"time"

	"github.com/marvel2010/ktcut/branch"
)

// Status reports how a Run terminated.
type Status int

const (
	// StatusOptimal means the search proved best_lower >= best_upper (or
	// popped a leaf directly): Result.CutValue is the exact optimum.
	StatusOptimal Status = iota
	// StatusTimeBudgetExceeded means the context deadline elapsed before
	// the search could prove optimality. Result.Gap reports how far
	// apart the best known bounds were at that point.
	StatusTimeBudgetExceeded
)

func (s Status) String() string {
	switch s {
	case StatusOptimal:
		return "optimal"
	case StatusTimeBudgetExceeded:
		return "time_budget_exceeded"
	default:
		return "unknown"
	}
}

// Step is one diagnostic record emitted per popped frontier node that is
// branched, when reporting is enabled; a popped leaf ends the run without
// a Step.
type Step struct {
	Depth          int
	LowerBound     float64
	UpperBound     float64
	FrontierBestLB float64
	GlobalBestUB   float64
	Unexplored     int
	Elapsed        time.Duration
}

// Result is what Tree.Run returns: the partition (keyed by terminal,
// values are sets of original vertex IDs including the terminal itself),
// the cut value the partition achieves, the termination status, the
// optimality gap (zero when Status is StatusOptimal), and the optional
// per-step trace.
type Result struct {
	Partition map[string]map[string]struct{}
	CutValue  float64
	Status    Status
	Gap       float64
	Steps     []Step
	// Trace is the winning leaf's branching history: the order in which
	// unassigned vertices were folded into terminals to reach this
	// partition.
	Trace []branch.Decision
	// NodesExplored counts every branch.Node constructed during the
	// run, including the root.
	NodesExplored int
	Elapsed       time.Duration
}
