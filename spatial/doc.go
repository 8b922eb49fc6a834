// Package spatial wraps a csr.Graph with a bulk-loaded R-tree over node
// coordinates, giving the oracle builder and the radius primitive
// nearest-neighbor and envelope queries without scanning every node.
//
// Graph embeds *csr.Graph so it satisfies csr.DirectedGraph and
// csr.CoordGraph directly; LocateInEnvelope is the one addition needed
// to also satisfy pathing.RegionGraph. During a single build the
// underlying graph is read-only, so concurrent readers are safe;
// mutation (Insert/Remove) takes an exclusive lock.
package spatial
