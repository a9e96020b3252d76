// Package wgraph implements the undirected, capacity-weighted working
// graph used throughout ktcut's search: vertices, edges, and the
// contraction operation that folds a set of vertices into one
// representative while recording which original vertices it now stands
// for.
package wgraph

import "errors"

// ErrEmptyVertexID indicates a vertex was added with an empty ID.
var ErrEmptyVertexID = errors.New("wgraph: vertex ID is empty")

// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
var ErrVertexNotFound = errors.New("wgraph: vertex not found")

// ErrSelfLoop indicates AddEdge was called with identical endpoints.
var ErrSelfLoop = errors.New("wgraph: self-loops are not allowed")

// ErrNonPositiveCapacity indicates an edge capacity was not strictly positive.
var ErrNonPositiveCapacity = errors.New("wgraph: capacity must be positive")

// ErrSelfContraction indicates ContractMany was asked to fold u into
// itself (u present in the set of vertices being absorbed).
var ErrSelfContraction = errors.New("wgraph: cannot contract a vertex into itself")
