// pkg/geoconv/point.go - Point codec
package geoconv

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/valpere/geo_bson/pkg/geo"
)

const (
	fieldX = "x"
	fieldY = "y"
)

// EncodePoint converts a point into {x, y}
func EncodePoint(p geo.Point) bson.D {
	return bson.D{
		{Key: fieldX, Value: p.X},
		{Key: fieldY, Value: p.Y},
	}
}

// DecodePoint reads a point from {x, y}. Both coordinates may be stored as any
// numeric kind.
func DecodePoint(doc Document) (geo.Point, error) {
	doc, err := normalize("", doc)
	if err != nil {
		return geo.Point{}, err
	}

	x, err := numberField(doc, fieldX)
	if err != nil {
		return geo.Point{}, err
	}
	y, err := numberField(doc, fieldY)
	if err != nil {
		return geo.Point{}, err
	}

	return geo.NewPoint(x, y), nil
}

// decodePointField decodes the point document stored under key
func decodePointField(doc Document, key string) (geo.Point, error) {
	sub, err := subDocument(doc, key)
	if err != nil {
		return geo.Point{}, err
	}
	p, err := DecodePoint(sub)
	if err != nil {
		return geo.Point{}, inField(key, err)
	}
	return p, nil
}
