// Package pathing implements Dijkstra's shortest-path algorithm over a
// csr.DirectedGraph, a per-source memoization cache, and the radius
// primitive the oracle builder needs.
//
// Dijkstra computes a partial single-source shortest-path tree: given a
// source and a target set, it stops once every target has been popped
// off the frontier or the frontier empties, whichever comes first. The
// returned Result always contains the source and every node popped
// before termination; it does not promise coverage of unreached nodes.
//
// The priority queue uses a lazy-decrease-key heap: stale entries are
// pushed rather than updated in place, and skipped on pop once a node
// is marked visited.
package pathing
