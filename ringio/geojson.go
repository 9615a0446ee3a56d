package ringio

import (
	"github.com/osuushi/polyops/coords"
	"github.com/pkg/errors"
	geom "github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/geojson"
)

// ReadGeoJSON reads a GeoJSON geometry. Every linear ring of a Polygon or
// MultiPolygon becomes a ring (holes included, in file order), as does every
// LineString. Geometry collections are flattened.
func ReadGeoJSON(data []byte) ([]*coords.Buffer, error) {
	var g geom.T
	if err := geojson.Unmarshal(data, &g); err != nil {
		return nil, errors.Wrap(err, "parsing geojson")
	}
	return ringsOf(g)
}

func ringsOf(g geom.T) ([]*coords.Buffer, error) {
	var rings []*coords.Buffer
	switch v := g.(type) {
	case *geom.Polygon:
		for i := 0; i < v.NumLinearRings(); i++ {
			rings = append(rings, copyFlat(coords.NewFlatCoordsFromRing(v.LinearRing(i))))
		}
	case *geom.MultiPolygon:
		for i := 0; i < v.NumPolygons(); i++ {
			polygonRings, err := ringsOf(v.Polygon(i))
			if err != nil {
				return nil, err
			}
			rings = append(rings, polygonRings...)
		}
	case *geom.LineString:
		rings = append(rings, copyFlat(coords.NewFlatCoords(v.Layout(), v.FlatCoords())))
	case *geom.GeometryCollection:
		for _, child := range v.Geoms() {
			childRings, err := ringsOf(child)
			if err != nil {
				return nil, err
			}
			rings = append(rings, childRings...)
		}
	default:
		return nil, errors.Errorf("geometry type %T has no rings", g)
	}
	return rings, nil
}

func copyFlat(f *coords.FlatCoords) *coords.Buffer {
	return coords.NewBufferFromCollection(f)
}
