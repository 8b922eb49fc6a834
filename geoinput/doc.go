// Package geoinput is the GeoJSON ingestion collaborator: it reads a
// FeatureCollection (or a single Feature) of LineString /
// MultiLineString / MultiPolygon geometries, applies the road-network
// property filter, and emits a deduplicated node-coordinate list plus
// a haversine-weighted directed edge list. The core builds a csr.Graph
// (and, via the spatial package, its R-tree) from that output; this
// package never touches csr or spatial directly.
package geoinput
