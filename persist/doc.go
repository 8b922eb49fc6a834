// Package persist encodes and decodes the three on-disk units the CLI
// and query server exchange: a graph (".gmp"), a single POI's oracle
// (".omp"), and a split-tree (".smp"). Every shape here is a logical
// schema, not a fixed byte layout — github.com/vmihailenco/msgpack/v5
// handles the actual framing, field ordering, and omitted-field
// defaults, the same self-describing-binary-codec role it plays in
// other manifests across the retrieval pack.
//
// The R-tree inside an Oracle is never persisted; oracle.Restore
// rebuilds it from the decoded block-pair slice. Likewise a SplitTree's
// child lists are derived on load from each node's parent index rather
// than stored directly.
package persist
