package geoinput

import (
	"testing"

	"github.com/paulmach/orb/geojson"
	"github.com/stretchr/testify/require"
)

const poiFeatureCollection = `{
  "type": "FeatureCollection",
  "features": [
    {"type": "Feature", "properties": {"amenity": "pub"}, "geometry": {"type": "Point", "coordinates": [13.4, 52.5]}},
    {"type": "Feature", "properties": {"amenity": "bank"}, "geometry": {"type": "Point", "coordinates": [13.5, 52.6]}},
    {"type": "Feature", "properties": {"highway": "residential"}, "geometry": {"type": "LineString", "coordinates": [[0,0],[1,0]]}}
  ]
}`

func TestParsePOIs_SkipsNonPointGeometry(t *testing.T) {
	pois, err := ParsePOIs([]byte(poiFeatureCollection), nil)
	require.NoError(t, err)
	require.Len(t, pois, 2)
}

func TestParsePOIs_AppliesFilter(t *testing.T) {
	onlyPubs := func(props geojson.Properties) bool {
		return props["amenity"] == "pub"
	}
	pois, err := ParsePOIs([]byte(poiFeatureCollection), onlyPubs)
	require.NoError(t, err)
	require.Len(t, pois, 1)
	require.Equal(t, "pub", pois[0].Data["amenity"])
	require.Equal(t, 13.4, pois[0].Coord.X)
}
