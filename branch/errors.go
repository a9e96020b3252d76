// Package branch implements the Branch Node and Branch Root of the
// isolation-branching search: the per-node graph transform (single-
// vertex contraction, minimum isolating cut, further contraction), the
// E_TT/E_TU bound computation, child construction, and the root-only
// preprocessing that isolates every terminal's provably-assigned side
// before the tree's first live node is created.
package branch

import "errors"

// ErrAlreadyBranched indicates Children was called a second time on a
// node that has already produced children (spec: "nodes branch at most
// once").
var ErrAlreadyBranched = errors.New("branch: node has already branched")

// ErrInvariantViolation indicates a child's lower bound fell below its
// parent's by more than the floating-point tolerance, or a root cut's
// source side did not contain its own terminal. Both indicate a bug in
// the search, not a property of the input.
var ErrInvariantViolation = errors.New("branch: invariant violation")

// boundTolerance absorbs floating-point noise in the monotonicity
// assertion LB(child) >= LB(parent); per spec §9, implementations using
// floating-point max-flow should compare with a tolerance rather than
// abort on sub-ULP violations.
const boundTolerance = 1e-9
