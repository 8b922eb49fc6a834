package geoinput

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/beerpath/burp/csr"
)

// POI is one point-of-interest feature read from a GeoJSON document: a
// coordinate plus its raw property payload, attached to a graph node
// by nearest-neighbor match once the graph itself is built.
type POI struct {
	Coord csr.Point
	Data  csr.POIData
}

// ParsePOIs reads a GeoJSON FeatureCollection of Point features from
// data and returns every one passing filter. A nil filter keeps every
// point; the CLI's "-p" flag uses this to attach a second GeoJSON
// file's points-of-interest to an already-built graph.
func ParsePOIs(data []byte, filter func(props geojson.Properties) bool) ([]POI, error) {
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, err
	}

	var out []POI
	for _, f := range fc.Features {
		pt, ok := f.Geometry.(orb.Point)
		if !ok {
			continue
		}
		if filter != nil && !filter(f.Properties) {
			continue
		}
		out = append(out, POI{Coord: csr.Point{X: pt[0], Y: pt[1]}, Data: csr.POIData(f.Properties)})
	}
	return out, nil
}
