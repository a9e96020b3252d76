package search

import (
	"container/heap"

	"github.com/marvel2010/ktcut/branch"
)

// frontier is a binary min-heap of live nodes ordered by LowerBound, with a
// fully deterministic tie-break so that node construction order never
// depends on map iteration or heap-internal shuffling: equal bounds are
// broken first by Depth (shallower first), then lexicographically by the
// branching decision that produced the node.
type frontier []*branch.Node

var _ heap.Interface = (*frontier)(nil)

func (f frontier) Len() int { return len(f) }

func (f frontier) Less(i, j int) bool {
	a, b := f[i], f[j]
	if a.LowerBound != b.LowerBound {
		return a.LowerBound < b.LowerBound
	}
	if a.Depth != b.Depth {
		return a.Depth < b.Depth
	}
	if a.AssignedVertex != b.AssignedVertex {
		return a.AssignedVertex < b.AssignedVertex
	}
	return a.AssignedTerminal < b.AssignedTerminal
}

func (f frontier) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

func (f *frontier) Push(x any) {
	*f = append(*f, x.(*branch.Node))
}

func (f *frontier) Pop() any {
	old := *f
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*f = old[:n-1]
	return item
}

// minLowerBound returns the smallest LowerBound among live nodes, used for
// the best_lower reported alongside each step and for the termination test.
// The heap root always holds this value, so no scan is needed.
func (f frontier) minLowerBound() (float64, bool) {
	if len(f) == 0 {
		return 0, false
	}
	return f[0].LowerBound, true
}
