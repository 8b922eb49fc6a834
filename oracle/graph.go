package oracle

import (
	"github.com/beerpath/burp/csr"
	"github.com/beerpath/burp/pathing"
)

// Graph is the capability the builder needs: coordinate-aware directed
// traversal plus envelope queries, i.e. exactly what pathing.Radius and
// the classifier's representative-node search require, plus the
// bounding rectangle that seeds the root block-pair. spatial.Graph
// satisfies this directly.
type Graph interface {
	pathing.RegionGraph
	BoundingRect() csr.Rect
}
