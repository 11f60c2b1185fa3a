// pkg/geoconv/list.go - Coordinate pair conversion
package geoconv

import (
	"github.com/valpere/geo_bson/pkg/geo"
)

// ToList returns the point as an [x, y] pair, the form query operators expect
func ToList(p geo.Point) []float64 {
	return []float64{p.X, p.Y}
}

// FromList reads a point from an [x, y] pair
func FromList(field string, v interface{}) (geo.Point, error) {
	pair, err := sequence(field, v)
	if err != nil {
		return geo.Point{}, err
	}
	if len(pair) != 2 {
		return geo.Point{}, &Error{Code: CodeTypeMismatch, Field: field, Expected: "coordinate pair", Actual: "array of length " + indexField(len(pair))}
	}
	x, err := ToFloat64(field+".0", pair[0])
	if err != nil {
		return geo.Point{}, err
	}
	y, err := ToFloat64(field+".1", pair[1])
	if err != nil {
		return geo.Point{}, err
	}
	return geo.NewPoint(x, y), nil
}
