// Package persistence implements LP Persistence: an optional preprocessing
// step that solves a linear-programming relaxation of the multiway cut
// problem and uses its optimum to restrict each vertex's candidate
// terminal set before the branch-and-bound search runs.
package persistence

import "errors"

// ErrSolverFailure indicates the underlying LP solver returned an error
// (infeasible, unbounded, or a numerical failure). Persistence is an
// optimization, not a correctness requirement, so callers are expected to
// fall back to Mode none and continue the unconstrained search.
var ErrSolverFailure = errors.New("persistence: lp solver failed")
