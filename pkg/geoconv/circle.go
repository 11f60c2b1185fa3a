// pkg/geoconv/circle.go - Circle and Sphere codecs
package geoconv

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/valpere/geo_bson/pkg/geo"
)

const (
	fieldCenter = "center"
	fieldRadius = "radius"
	fieldMetric = "metric"
)

// EncodeCircle converts a circle into {center, radius, metric}. The metric key
// is left out for unitless radii.
func EncodeCircle(c geo.Circle) bson.D {
	return encodeRound(c.Center, c.Radius)
}

// DecodeCircle reads a circle from {center, radius, metric?}
func DecodeCircle(doc Document) (geo.Circle, error) {
	center, radius, err := decodeRound(doc)
	if err != nil {
		return geo.Circle{}, err
	}
	return geo.NewCircleWithDistance(center, radius), nil
}

// EncodeSphere converts a sphere into {center, radius, metric}. The document
// has the same shape as a circle's.
func EncodeSphere(s geo.Sphere) bson.D {
	return encodeRound(s.Center, s.Radius)
}

// DecodeSphere reads a sphere from {center, radius, metric?}
func DecodeSphere(doc Document) (geo.Sphere, error) {
	center, radius, err := decodeRound(doc)
	if err != nil {
		return geo.Sphere{}, err
	}
	return geo.NewSphereWithDistance(center, radius), nil
}

func encodeRound(center geo.Point, radius geo.Distance) bson.D {
	doc := bson.D{
		{Key: fieldCenter, Value: EncodePoint(center)},
		{Key: fieldRadius, Value: radius.Value},
	}
	if !radius.Metric.IsNeutral() {
		doc = put(doc, fieldMetric, radius.Metric.String())
	}
	return doc
}

func decodeRound(doc Document) (geo.Point, geo.Distance, error) {
	doc, err := normalize("", doc)
	if err != nil {
		return geo.Point{}, geo.Distance{}, err
	}

	center, err := decodePointField(doc, fieldCenter)
	if err != nil {
		return geo.Point{}, geo.Distance{}, err
	}

	value, err := numberField(doc, fieldRadius)
	if err != nil {
		return geo.Point{}, geo.Distance{}, err
	}

	radius := geo.NewDistance(value)
	if contains(doc, fieldMetric) {
		name, err := stringField(doc, fieldMetric)
		if err != nil {
			return geo.Point{}, geo.Distance{}, err
		}
		metric, err := geo.ParseMetric(name)
		if err != nil {
			return geo.Point{}, geo.Distance{}, &Error{Code: CodeTypeMismatch, Field: fieldMetric, Expected: "metric name", Actual: name, Cause: err}
		}
		radius = geo.NewDistanceIn(value, metric)
	}

	return center, radius, nil
}
