package oracle

import "errors"

// Sentinel errors for the oracle package.
var (
	// ErrEmptyGraph indicates the graph has no bounding rectangle (no nodes).
	ErrEmptyGraph = errors.New("oracle: graph has no nodes")

	// ErrUnresolvedPredecessor indicates path reconstruction failed while
	// computing a block-pair's cached metrics.
	ErrUnresolvedPredecessor = errors.New("oracle: dijkstra path unexpectedly unresolved")
)
