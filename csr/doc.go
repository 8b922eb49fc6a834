// Package csr provides an immutable-shape, CSR-backed directed weighted
// graph addressed by dense nonnegative integer node ids.
//
// A Graph owns three parallel structures: a node-value slice (indexed by
// id), an outgoing CSR (offsets + targets + weights) and a mirror
// incoming CSR. Building from an edge list is O(V+E): out/in degrees are
// counted, two exclusive prefix sums produce the offset arrays, and a
// single scatter pass fills the target/weight arrays.
//
// Mutation (AddNode, AddEdge, RemoveNode, RemoveEdge) is supported for
// graph-construction and editing workflows but is not meant to run
// concurrently with reads: callers that need that hold their own lock
// one level up in the call stack (oracle builds treat the graph as
// read-only for the duration of a build).
//
// Capability interfaces (Graph, CoordGraph) let algorithms in sibling
// packages (pathing, oracle) depend on only the behavior they use,
// instead of the concrete *Graph type.
package csr
