// Package ktcut solves the exact k-terminal cut problem: given an
// undirected, capacity-weighted graph and a set of k terminal vertices, it
// finds the minimum-capacity partition of the vertex set into k parts,
// one per terminal, such that no two terminals share a part.
//
// The algorithm is isolation branching: a branch-and-bound search
// (package branch, package search) over which terminal absorbs each
// remaining vertex, pruned by minimum-isolating-cut bounds (package
// isocut) computed on a working graph (package wgraph) and optionally
// tightened ahead of time by an LP relaxation (package persistence).
package ktcut

import "errors"

// ErrEmptyGraph indicates the input graph has no vertices.
var ErrEmptyGraph = errors.New("ktcut: graph is empty")

// ErrTooFewTerminals indicates fewer than two terminals were supplied; a
// cut needs at least two sides.
var ErrTooFewTerminals = errors.New("ktcut: at least two terminals are required")

// ErrTerminalNotInGraph indicates a requested terminal is not a vertex of
// the input graph.
var ErrTerminalNotInGraph = errors.New("ktcut: terminal not present in graph")

// ErrDuplicateTerminal indicates the same vertex was listed as a terminal
// more than once.
var ErrDuplicateTerminal = errors.New("ktcut: duplicate terminal")
