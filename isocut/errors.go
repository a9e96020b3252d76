// Package isocut implements the minimum isolating cut primitive: given a
// working graph and two disjoint vertex sets S (sources) and K (sinks),
// it returns the source-maximal minimum S-K cut and its weight.
//
// The algorithm builds an auxiliary graph with a super-source connected
// to every vertex of S and a super-sink connected from every vertex of
// K, both via effectively-infinite capacity edges, runs Dinic's
// blocking-flow max-flow algorithm, and reads the source-maximal cut off
// the residual graph's reachability from the super-sink. This mirrors
// the super-source/super-sink construction in
// gonum.org/v1/gonum/graph/network.MaxFlowDinic and reuses the teacher's
// (flow.Dinic) level-graph-plus-blocking-flow loop shape.
package isocut

import "errors"

// ErrOverlappingCutSets indicates S and K share at least one vertex.
var ErrOverlappingCutSets = errors.New("isocut: source and sink sets overlap")

// ErrEmptySourceOrSink is not returned by Cut: Cut treats S == ∅ or
// K == ∅ as the degenerate zero-weight cut described by the spec rather
// than an error; see Cut's doc comment.
var ErrEmptySourceOrSink = errors.New("isocut: source or sink set is empty")
