package geoinput

import "github.com/paulmach/orb/geojson"

// dropHighway is the set of highway property values excluded from the
// road network: cycleway, path, footway, steps, and corridor are not
// ways a vehicle beer-path query should route through.
var dropHighway = map[string]bool{
	"cycleway": true,
	"path":     true,
	"footway":  true,
	"steps":    true,
	"corridor": true,
}

// keep applies the road-network property filter: a feature with no
// highway property (or a null one) is dropped, as is one whose highway
// value names a non-road way; a non-null footway value drops the
// feature regardless of its highway value.
func keep(props geojson.Properties) bool {
	highway, has := props["highway"]
	if !has || highway == nil {
		return false
	}
	if s, ok := highway.(string); ok && dropHighway[s] {
		return false
	}
	if footway, has := props["footway"]; has && footway != nil {
		return false
	}
	return true
}
