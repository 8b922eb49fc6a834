package pathing

import "errors"

// Sentinel errors for the pathing package.
var (
	// ErrSourceNotFound indicates the requested source id is not in the graph.
	ErrSourceNotFound = errors.New("pathing: source not found")

	// ErrNegativeWeight indicates an edge with a negative weight was encountered
	// during relaxation; Dijkstra requires non-negative weights.
	ErrNegativeWeight = errors.New("pathing: negative edge weight")
)
