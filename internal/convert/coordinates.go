// internal/convert/coordinates.go - Shapes from command-line coordinates
package convert

import (
	"fmt"
	"strings"

	"github.com/spf13/cast"

	"github.com/valpere/geo_bson/internal"
	"github.com/valpere/geo_bson/pkg/geo"
)

// ParseCoordinates parses a comma separated list of numbers such as
// "-74.0,40.7,-73.9,40.8"
func ParseCoordinates(s string) ([]float64, error) {
	parts := strings.Split(s, ",")
	values := make([]float64, 0, len(parts))
	for i, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			return nil, fmt.Errorf("empty coordinate at position %d", i)
		}
		v, err := cast.ToFloat64E(part)
		if err != nil {
			return nil, fmt.Errorf("invalid coordinate %q at position %d: %w", part, i, err)
		}
		values = append(values, v)
	}
	return values, nil
}

// ShapeFromCoordinates builds a shape of the given kind from flat coordinates:
//
//	box     x1,y1,x2,y2
//	circle  x,y,radius
//	sphere  x,y,radius
//	polygon x1,y1,x2,y2,x3,y3,...
//
// The radius of circles and spheres is measured in metric.
func ShapeFromCoordinates(kind internal.ValueKind, coords []float64, metric geo.Metric) (geo.Shape, error) {
	switch kind {
	case internal.KindBox:
		if len(coords) != 4 {
			return nil, fmt.Errorf("box needs 4 coordinates, got %d", len(coords))
		}
		return geo.NewBox(geo.NewPoint(coords[0], coords[1]), geo.NewPoint(coords[2], coords[3])), nil
	case internal.KindCircle, internal.KindSphere:
		if len(coords) != 3 {
			return nil, fmt.Errorf("%s needs 3 coordinates, got %d", kind, len(coords))
		}
		center := geo.NewPoint(coords[0], coords[1])
		radius := geo.NewDistanceIn(coords[2], metric)
		if kind == internal.KindSphere {
			return geo.NewSphereWithDistance(center, radius), nil
		}
		return geo.NewCircleWithDistance(center, radius), nil
	case internal.KindPolygon:
		if len(coords) < 6 || len(coords)%2 != 0 {
			return nil, fmt.Errorf("polygon needs an even number of at least 6 coordinates, got %d", len(coords))
		}
		points := make([]geo.Point, 0, len(coords)/2)
		for i := 0; i < len(coords); i += 2 {
			points = append(points, geo.NewPoint(coords[i], coords[i+1]))
		}
		return geo.NewPolygon(points...), nil
	default:
		return nil, fmt.Errorf("kind %s cannot be built from coordinates", kind)
	}
}
