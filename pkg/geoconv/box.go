// pkg/geoconv/box.go - Box codec
package geoconv

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/valpere/geo_bson/pkg/geo"
)

const (
	fieldFirst  = "first"
	fieldSecond = "second"
)

// EncodeBox converts a box into {first: Point, second: Point}
func EncodeBox(b geo.Box) bson.D {
	return bson.D{
		{Key: fieldFirst, Value: EncodePoint(b.First)},
		{Key: fieldSecond, Value: EncodePoint(b.Second)},
	}
}

// DecodeBox reads a box from {first, second}. The legacy form of a two
// element array of coordinate pairs is accepted as well. Corners keep their
// stored order.
func DecodeBox(doc interface{}) (geo.Box, error) {
	if pairs, err := sequence("", doc); err == nil {
		return decodeBoxPairs(pairs)
	}

	doc, err := normalize("", doc)
	if err != nil {
		return geo.Box{}, err
	}

	first, err := decodePointField(doc, fieldFirst)
	if err != nil {
		return geo.Box{}, err
	}
	second, err := decodePointField(doc, fieldSecond)
	if err != nil {
		return geo.Box{}, err
	}

	return geo.NewBox(first, second), nil
}

func decodeBoxPairs(pairs []interface{}) (geo.Box, error) {
	if len(pairs) != 2 {
		return geo.Box{}, &Error{Code: CodeTypeMismatch, Expected: "two corners", Actual: "array of length " + indexField(len(pairs))}
	}
	first, err := FromList(indexField(0), pairs[0])
	if err != nil {
		return geo.Box{}, err
	}
	second, err := FromList(indexField(1), pairs[1])
	if err != nil {
		return geo.Box{}, err
	}
	return geo.NewBox(first, second), nil
}
