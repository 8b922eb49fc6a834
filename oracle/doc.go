// Package oracle builds and serves beer-path detour oracles: for a
// fixed point of interest p and tolerance ε, the oracle answers
// "does some ε-bounded detour through p exist between roughly here and
// roughly there?" in R-tree time, without ever running Dijkstra at
// query time.
//
// The builder recursively subdivides the graph's bounding rectangle
// into block-pairs (S, T), classifying each as in-path (kept),
// not-in-path (discarded), or undecided (subdivided further) against
// the Katsikouli-Tsigas detour bounds. Kept pairs are indexed spatially
// by an R-tree of their S and T rectangles.
package oracle
