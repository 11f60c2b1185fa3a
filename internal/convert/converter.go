// internal/convert/converter.go - Kind-keyed conversion between values and documents
package convert

import (
	"encoding/json"
	"fmt"

	"github.com/paulmach/orb/geojson"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/valpere/geo_bson/internal"
	"github.com/valpere/geo_bson/pkg/geo"
	"github.com/valpere/geo_bson/pkg/geoconv"
)

// Converter translates between the JSON form of one value kind and its
// document form
type Converter struct {
	kind internal.ValueKind
}

// NewConverter creates a converter for kind
func NewConverter(kind internal.ValueKind) (*Converter, error) {
	if !kind.IsValid() {
		return nil, internal.NewError(internal.ErrorCodeValidation, fmt.Sprintf("unsupported kind %q, must be one of %v", kind, internal.ValueKinds), nil)
	}
	return &Converter{kind: kind}, nil
}

// Kind returns the value kind handled by the converter
func (c *Converter) Kind() internal.ValueKind {
	return c.kind
}

// Encode parses the JSON form of a value and returns its document
func (c *Converter) Encode(data []byte) (bson.D, error) {
	if c.kind == internal.KindGeoJSON {
		geometry, err := geojson.UnmarshalGeometry(data)
		if err != nil {
			return nil, errors.Wrap(err, "invalid GeoJSON geometry")
		}
		doc, err := geoconv.EncodeGeoJSON(geometry.Geometry())
		if err != nil {
			return nil, c.conversionError("encode", err)
		}
		return doc, nil
	}

	value, err := c.parseValue(data)
	if err != nil {
		return nil, err
	}

	switch v := value.(type) {
	case geo.Point:
		return geoconv.EncodePoint(v), nil
	case geo.Box:
		return geoconv.EncodeBox(v), nil
	case geo.Circle:
		return geoconv.EncodeCircle(v), nil
	case geo.Sphere:
		return geoconv.EncodeSphere(v), nil
	case geo.Polygon:
		return geoconv.EncodePolygon(v), nil
	}
	return nil, errors.Errorf("no encoder for kind %s", c.kind)
}

// Decode reads a value of the converter's kind from doc. GeoJSON geometries
// are returned as *geojson.Geometry so they serialize as GeoJSON. Codec
// failures are returned as conversion errors wrapping the geoconv error.
func (c *Converter) Decode(doc interface{}) (interface{}, error) {
	value, err := c.decode(doc)
	if err != nil {
		return nil, c.conversionError("decode", err)
	}
	return value, nil
}

func (c *Converter) decode(doc interface{}) (interface{}, error) {
	switch c.kind {
	case internal.KindPoint:
		return geoconv.DecodePoint(doc)
	case internal.KindBox:
		return geoconv.DecodeBox(doc)
	case internal.KindCircle:
		return geoconv.DecodeCircle(doc)
	case internal.KindSphere:
		return geoconv.DecodeSphere(doc)
	case internal.KindPolygon:
		return geoconv.DecodePolygon(doc)
	case internal.KindGeoJSON:
		geometry, err := geoconv.DecodeGeoJSON(doc)
		if err != nil {
			return nil, err
		}
		return geojson.NewGeometry(geometry), nil
	}
	return nil, errors.Errorf("no decoder for kind %s", c.kind)
}

// Command parses the JSON form of a shape and returns its query operator
// document
func (c *Converter) Command(data []byte) (bson.D, error) {
	if c.kind == internal.KindGeoJSON {
		geometry, err := geojson.UnmarshalGeometry(data)
		if err != nil {
			return nil, errors.Wrap(err, "invalid GeoJSON geometry")
		}
		doc, err := geoconv.EncodeGeometryCommand(geometry.Geometry())
		if err != nil {
			return nil, c.conversionError("build command for", err)
		}
		return doc, nil
	}

	value, err := c.parseValue(data)
	if err != nil {
		return nil, err
	}
	shape, ok := value.(geo.Shape)
	if !ok {
		return nil, internal.NewError(internal.ErrorCodeValidation, fmt.Sprintf("kind %s cannot be used as a query shape", c.kind), geoconv.ErrUnsupportedShape)
	}
	doc, err := geoconv.EncodeGeoCommand(geo.NewGeoCommand(shape))
	if err != nil {
		return nil, c.conversionError("build command for", err)
	}
	return doc, nil
}

func (c *Converter) conversionError(action string, err error) error {
	return internal.NewError(internal.ErrorCodeConversion, fmt.Sprintf("cannot %s %s", action, c.kind), err)
}

func (c *Converter) parseValue(data []byte) (interface{}, error) {
	var (
		value interface{}
		err   error
	)

	switch c.kind {
	case internal.KindPoint:
		var v geo.Point
		err = json.Unmarshal(data, &v)
		value = v
	case internal.KindBox:
		var v geo.Box
		err = json.Unmarshal(data, &v)
		value = v
	case internal.KindCircle:
		var v geo.Circle
		err = json.Unmarshal(data, &v)
		value = v
	case internal.KindSphere:
		var v geo.Sphere
		err = json.Unmarshal(data, &v)
		value = v
	case internal.KindPolygon:
		var v geo.Polygon
		err = json.Unmarshal(data, &v)
		value = v
	default:
		return nil, errors.Errorf("no value type for kind %s", c.kind)
	}

	if err != nil {
		return nil, internal.NewError(internal.ErrorCodeInput, fmt.Sprintf("invalid %s value", c.kind), err)
	}
	return value, nil
}
