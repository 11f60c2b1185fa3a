// pkg/geoconv/registry.go - bson registry wiring for geo types
package geoconv

import (
	"fmt"
	"reflect"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsoncodec"
	"go.mongodb.org/mongo-driver/bson/bsonrw"
	"go.mongodb.org/mongo-driver/bson/bsontype"

	"github.com/valpere/geo_bson/pkg/geo"
)

var (
	tPoint   = reflect.TypeOf(geo.Point{})
	tBox     = reflect.TypeOf(geo.Box{})
	tCircle  = reflect.TypeOf(geo.Circle{})
	tSphere  = reflect.TypeOf(geo.Sphere{})
	tPolygon = reflect.TypeOf(geo.Polygon{})
)

// NewRegistry returns a bson registry that stores geo values through the
// codecs of this package, so structs holding them can be passed to
// bson.MarshalWithRegistry and bson.UnmarshalWithRegistry directly.
func NewRegistry() *bsoncodec.Registry {
	return RegisterCodecs(bson.NewRegistryBuilder()).Build()
}

// RegisterCodecs adds the geo encoders and decoders to rb
func RegisterCodecs(rb *bsoncodec.RegistryBuilder) *bsoncodec.RegistryBuilder {
	rb.RegisterTypeEncoder(tPoint, valueEncoder(func(v interface{}) (bson.D, error) {
		return EncodePoint(v.(geo.Point)), nil
	}))
	rb.RegisterTypeEncoder(tBox, valueEncoder(func(v interface{}) (bson.D, error) {
		return EncodeBox(v.(geo.Box)), nil
	}))
	rb.RegisterTypeEncoder(tCircle, valueEncoder(func(v interface{}) (bson.D, error) {
		return EncodeCircle(v.(geo.Circle)), nil
	}))
	rb.RegisterTypeEncoder(tSphere, valueEncoder(func(v interface{}) (bson.D, error) {
		return EncodeSphere(v.(geo.Sphere)), nil
	}))
	rb.RegisterTypeEncoder(tPolygon, valueEncoder(func(v interface{}) (bson.D, error) {
		return EncodePolygon(v.(geo.Polygon)), nil
	}))

	rb.RegisterTypeDecoder(tPoint, valueDecoder(tPoint, func(doc interface{}) (interface{}, error) {
		return DecodePoint(doc)
	}))
	rb.RegisterTypeDecoder(tBox, valueDecoder(tBox, func(doc interface{}) (interface{}, error) {
		return DecodeBox(doc)
	}))
	rb.RegisterTypeDecoder(tCircle, valueDecoder(tCircle, func(doc interface{}) (interface{}, error) {
		return DecodeCircle(doc)
	}))
	rb.RegisterTypeDecoder(tSphere, valueDecoder(tSphere, func(doc interface{}) (interface{}, error) {
		return DecodeSphere(doc)
	}))
	rb.RegisterTypeDecoder(tPolygon, valueDecoder(tPolygon, func(doc interface{}) (interface{}, error) {
		return DecodePolygon(doc)
	}))

	return rb
}

func valueEncoder(encode func(interface{}) (bson.D, error)) bsoncodec.ValueEncoderFunc {
	return func(ec bsoncodec.EncodeContext, vw bsonrw.ValueWriter, val reflect.Value) error {
		doc, err := encode(val.Interface())
		if err != nil {
			return err
		}
		enc, err := ec.LookupEncoder(reflect.TypeOf(doc))
		if err != nil {
			return err
		}
		return enc.EncodeValue(ec, vw, reflect.ValueOf(doc))
	}
}

func valueDecoder(t reflect.Type, decode func(interface{}) (interface{}, error)) bsoncodec.ValueDecoderFunc {
	return func(dc bsoncodec.DecodeContext, vr bsonrw.ValueReader, val reflect.Value) error {
		if !val.CanSet() || val.Type() != t {
			return bsoncodec.ValueDecoderError{Name: t.Name() + "Decoder", Types: []reflect.Type{t}, Received: val}
		}

		bt, data, err := bsonrw.Copier{}.CopyValueToBytes(vr)
		if err != nil {
			return err
		}

		var source interface{}
		raw := bson.RawValue{Type: bt, Value: data}
		switch bt {
		case bsontype.Null, bsontype.Undefined:
			val.Set(reflect.Zero(t))
			return nil
		case bsontype.EmbeddedDocument:
			source = raw.Document()
		case bsontype.Array:
			var elements bson.A
			if err := raw.Unmarshal(&elements); err != nil {
				return err
			}
			source = elements
		default:
			return fmt.Errorf("cannot decode %s into %s", bt, t)
		}

		decoded, err := decode(source)
		if err != nil {
			return err
		}
		val.Set(reflect.ValueOf(decoded))
		return nil
	}
}
