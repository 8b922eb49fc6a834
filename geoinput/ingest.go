package geoinput

import (
	"io"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/paulmach/orb/geojson"

	"github.com/beerpath/burp/csr"
)

// Result is the collaborator's output: deduplicated node coordinates
// and the directed, haversine-weighted edge list a consecutive
// coordinate pair contributes in both directions.
type Result struct {
	Values []csr.NodeValue
	Edges  []csr.Edge
}

type builder struct {
	nodeIndex map[orb.Point]int
	values    []csr.NodeValue
	edges     []csr.Edge
}

func newBuilder() *builder {
	return &builder{nodeIndex: make(map[orb.Point]int)}
}

func (b *builder) nodeFor(p orb.Point) int {
	if id, ok := b.nodeIndex[p]; ok {
		return id
	}
	id := len(b.values)
	b.nodeIndex[p] = id
	b.values = append(b.values, csr.NodeValue{Coord: csr.Point{X: p[0], Y: p[1]}})
	return id
}

func (b *builder) addLine(ls orb.LineString) {
	for i := 0; i+1 < len(ls); i++ {
		a, c := ls[i], ls[i+1]
		u := b.nodeFor(a)
		v := b.nodeFor(c)
		w := geo.Distance(a, c)
		b.edges = append(b.edges, csr.Edge{U: u, V: v, W: w}, csr.Edge{U: v, V: u, W: w})
	}
}

func (b *builder) addGeometry(g orb.Geometry) {
	switch geom := g.(type) {
	case orb.LineString:
		b.addLine(geom)
	case orb.MultiLineString:
		for _, ls := range geom {
			b.addLine(ls)
		}
	case orb.MultiPolygon:
		for _, poly := range geom {
			for _, ring := range poly {
				b.addLine(orb.LineString(ring))
			}
		}
	}
}

// Parse reads a GeoJSON document from r — a FeatureCollection or a
// single Feature — and returns the filtered edge-list ingestion
// result.
func Parse(r io.Reader) (*Result, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return ParseBytes(data)
}

// ParseBytes is Parse over an in-memory document, used directly by
// tests and by callers that already hold the bytes (e.g. a second
// GeoJSON file supplying POI features).
func ParseBytes(data []byte) (*Result, error) {
	b := newBuilder()

	if fc, err := geojson.UnmarshalFeatureCollection(data); err == nil {
		for _, f := range fc.Features {
			if !keep(f.Properties) {
				continue
			}
			b.addGeometry(f.Geometry)
		}
		return &Result{Values: b.values, Edges: b.edges}, nil
	}

	f, err := geojson.UnmarshalFeature(data)
	if err != nil {
		return nil, err
	}
	if keep(f.Properties) {
		b.addGeometry(f.Geometry)
	}
	return &Result{Values: b.values, Edges: b.edges}, nil
}
