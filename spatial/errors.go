package spatial

import "errors"

// Sentinel errors for the spatial package.
var (
	// ErrNodeNotFound indicates Insert/Remove referenced a node absent from the underlying graph.
	ErrNodeNotFound = errors.New("spatial: node not found")
)
