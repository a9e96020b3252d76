package ktcut

import (
	"math"
	"time"

	"github.com/marvel2010/ktcut/search"
)

// ContractionStep is one entry of a Result's ContractionTrace: vertex was
// folded into terminal at the given search-tree depth.
type ContractionStep struct {
	Vertex   string
	Terminal string
	Depth    int
}

// Report is the final diagnostic record spec.md §6 describes: source-set
// sizes, node counts, bounds, and elapsed time. It is always populated;
// Steps is only non-empty when WithReporting was passed to Solve.
type Report struct {
	SourceSetSizes map[string]int
	NodesExplored  int
	BestLowerBound float64
	BestUpperBound float64
	Elapsed        time.Duration
	Steps          []search.Step
}

// Result is what Solve returns.
type Result struct {
	// Partition maps each terminal to the set of original vertices
	// assigned to it, including the terminal itself.
	Partition map[string]map[string]struct{}
	// CutValue is the total capacity of edges crossing the partition,
	// rounded to 8 decimal places per spec.md's rounding convention.
	CutValue float64
	// Status reports whether the search proved optimality or stopped
	// early on a time budget.
	Status search.Status
	// Gap is BestUpperBound - BestLowerBound; zero when Status is
	// search.StatusOptimal.
	Gap    float64
	Report Report
	// ContractionTrace is the winning leaf's branching history: the
	// order in which unassigned vertices were folded into terminals to
	// reach this partition.
	ContractionTrace []ContractionStep
}

const cutValueScale = 1e8

func roundCutValue(v float64) float64 {
	return math.Round(v*cutValueScale) / cutValueScale
}
