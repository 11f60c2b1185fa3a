// pkg/geoconv/command.go - Geo query command encoding
package geoconv

import (
	"github.com/paulmach/orb"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/valpere/geo_bson/pkg/geo"
)

// EncodeGeoCommand converts the shape wrapped by cmd into its query operator
// document:
//
//	box     {"$box": [[x1, y1], [x2, y2]]}
//	circle  {"$center": [[x, y], r]}
//	polygon {"$polygon": [[x, y], ...]}
//	sphere  {"$centerSphere": [[x, y], r]}
//
// Radii are normalized by their metric, so spheres measured in kilometers or
// miles are sent in radians.
func EncodeGeoCommand(cmd geo.GeoCommand) (bson.D, error) {
	var argument bson.A

	switch shape := cmd.Shape.(type) {
	case geo.Box:
		argument = bson.A{ToList(shape.First), ToList(shape.Second)}
	case geo.Circle:
		argument = bson.A{ToList(shape.Center), shape.Radius.Normalized()}
	case geo.Polygon:
		argument = make(bson.A, 0, len(shape.Points))
		for _, point := range shape.Points {
			argument = append(argument, ToList(point))
		}
	case geo.Sphere:
		argument = bson.A{ToList(shape.Center), shape.Radius.Normalized()}
	default:
		return nil, unsupportedShape(cmd.Shape)
	}

	return bson.D{{Key: cmd.Command(), Value: argument}}, nil
}

// EncodeGeometryCommand wraps a GeoJSON geometry into {"$geometry": {...}}
// for $geoWithin and $geoIntersects queries
func EncodeGeometryCommand(g orb.Geometry) (bson.D, error) {
	doc, err := EncodeGeoJSON(g)
	if err != nil {
		return nil, err
	}
	return bson.D{{Key: "$geometry", Value: doc}}, nil
}
