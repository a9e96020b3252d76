// Package search implements the Search Tree: a best-first branch-and-bound
// loop over branch.Node values. It owns the frontier (a min-heap keyed on
// lower bound), the unassigned-vertex selection policies, termination, and
// the optional per-step diagnostic reporting.
package search

import "errors"

// ErrNoTerminals indicates Tree was constructed with fewer than two
// terminals; the search has nothing to partition against.
var ErrNoTerminals = errors.New("search: at least two terminals are required")

// ErrEmptyFrontier indicates Run was asked to continue after the frontier
// was already exhausted without reaching a leaf — a programming error in
// the caller, since Run itself always stops at either a leaf or a
// best_lower >= best_upper crossing.
var ErrEmptyFrontier = errors.New("search: frontier exhausted without a terminating leaf")

// ErrNoFeasibleSolutionYet indicates the time budget expired before any
// leaf node (a fully assigned, concretely extractable partition) had been
// found. Run has nothing to return in this case; the caller should retry
// with a larger time budget.
var ErrNoFeasibleSolutionYet = errors.New("search: time budget expired before any feasible leaf was found")
