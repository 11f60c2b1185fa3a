// pkg/geoconv/polygon.go - Polygon codec
package geoconv

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/valpere/geo_bson/pkg/geo"
)

const fieldPoints = "points"

// EncodePolygon converts a polygon into {points: [Point, ...]}
func EncodePolygon(p geo.Polygon) bson.D {
	points := make(bson.A, 0, len(p.Points))
	for _, point := range p.Points {
		points = append(points, EncodePoint(point))
	}
	return bson.D{{Key: fieldPoints, Value: points}}
}

// DecodePolygon reads a polygon from {points: [...]} keeping the stored order
func DecodePolygon(doc Document) (geo.Polygon, error) {
	doc, err := normalize("", doc)
	if err != nil {
		return geo.Polygon{}, err
	}

	elements, err := arrayField(doc, fieldPoints)
	if err != nil {
		return geo.Polygon{}, err
	}

	points := make([]geo.Point, 0, len(elements))
	for i, element := range elements {
		path := fieldPoints + "." + indexField(i)
		point, err := DecodePoint(element)
		if err != nil {
			return geo.Polygon{}, inField(path, err)
		}
		points = append(points, point)
	}

	return geo.Polygon{Points: points}, nil
}
