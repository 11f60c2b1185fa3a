// pkg/geoconv/geojson.go - GeoJSON geometry codec
package geoconv

import (
	"github.com/paulmach/orb"
	"go.mongodb.org/mongo-driver/bson"
)

const (
	fieldType        = "type"
	fieldCoordinates = "coordinates"
	fieldGeometries  = "geometries"
)

// GeoJSON geometry type names as stored in documents
const (
	TypePoint              = "Point"
	TypeMultiPoint         = "MultiPoint"
	TypeLineString         = "LineString"
	TypeMultiLineString    = "MultiLineString"
	TypePolygon            = "Polygon"
	TypeMultiPolygon       = "MultiPolygon"
	TypeGeometryCollection = "GeometryCollection"
)

// EncodeGeoJSON converts an orb geometry into a GeoJSON document of the form
// {type, coordinates}, or {type, geometries} for collections. Rings and
// bounds are written as single-ring polygons.
func EncodeGeoJSON(g orb.Geometry) (bson.D, error) {
	switch geom := g.(type) {
	case orb.Point:
		return geoJSONDoc(TypePoint, pointCoordinates(geom)), nil
	case orb.MultiPoint:
		return geoJSONDoc(TypeMultiPoint, pathCoordinates(geom)), nil
	case orb.LineString:
		return geoJSONDoc(TypeLineString, pathCoordinates(geom)), nil
	case orb.MultiLineString:
		lines := make(bson.A, 0, len(geom))
		for _, line := range geom {
			lines = append(lines, pathCoordinates(line))
		}
		return geoJSONDoc(TypeMultiLineString, lines), nil
	case orb.Ring:
		return geoJSONDoc(TypePolygon, polygonCoordinates(orb.Polygon{geom})), nil
	case orb.Bound:
		return geoJSONDoc(TypePolygon, polygonCoordinates(geom.ToPolygon())), nil
	case orb.Polygon:
		return geoJSONDoc(TypePolygon, polygonCoordinates(geom)), nil
	case orb.MultiPolygon:
		polygons := make(bson.A, 0, len(geom))
		for _, polygon := range geom {
			polygons = append(polygons, polygonCoordinates(polygon))
		}
		return geoJSONDoc(TypeMultiPolygon, polygons), nil
	case orb.Collection:
		geometries := make(bson.A, 0, len(geom))
		for i, member := range geom {
			doc, err := EncodeGeoJSON(member)
			if err != nil {
				return nil, inField(fieldGeometries+"."+indexField(i), err)
			}
			geometries = append(geometries, doc)
		}
		return bson.D{
			{Key: fieldType, Value: TypeGeometryCollection},
			{Key: fieldGeometries, Value: geometries},
		}, nil
	default:
		return nil, unsupportedShape(g)
	}
}

// DecodeGeoJSON reads an orb geometry from a GeoJSON document. Every
// coordinate goes through ToFloat64.
func DecodeGeoJSON(doc Document) (orb.Geometry, error) {
	doc, err := normalize("", doc)
	if err != nil {
		return nil, err
	}

	kind, err := stringField(doc, fieldType)
	if err != nil {
		return nil, err
	}

	if kind == TypeGeometryCollection {
		members, err := arrayField(doc, fieldGeometries)
		if err != nil {
			return nil, err
		}
		collection := make(orb.Collection, 0, len(members))
		for i, member := range members {
			g, err := DecodeGeoJSON(member)
			if err != nil {
				return nil, inField(fieldGeometries+"."+indexField(i), err)
			}
			collection = append(collection, g)
		}
		return collection, nil
	}

	coordinates, ok := lookup(doc, fieldCoordinates)
	if !ok {
		return nil, missingField(fieldCoordinates)
	}

	switch kind {
	case TypePoint:
		p, err := FromList(fieldCoordinates, coordinates)
		if err != nil {
			return nil, err
		}
		return p.Orb(), nil
	case TypeMultiPoint:
		points, err := decodePath(fieldCoordinates, coordinates)
		if err != nil {
			return nil, err
		}
		return orb.MultiPoint(points), nil
	case TypeLineString:
		points, err := decodePath(fieldCoordinates, coordinates)
		if err != nil {
			return nil, err
		}
		return orb.LineString(points), nil
	case TypeMultiLineString:
		lines, err := sequence(fieldCoordinates, coordinates)
		if err != nil {
			return nil, err
		}
		result := make(orb.MultiLineString, 0, len(lines))
		for i, line := range lines {
			points, err := decodePath(fieldCoordinates+"."+indexField(i), line)
			if err != nil {
				return nil, err
			}
			result = append(result, orb.LineString(points))
		}
		return result, nil
	case TypePolygon:
		return decodePolygonRings(fieldCoordinates, coordinates)
	case TypeMultiPolygon:
		polygons, err := sequence(fieldCoordinates, coordinates)
		if err != nil {
			return nil, err
		}
		result := make(orb.MultiPolygon, 0, len(polygons))
		for i, polygon := range polygons {
			decoded, err := decodePolygonRings(fieldCoordinates+"."+indexField(i), polygon)
			if err != nil {
				return nil, err
			}
			result = append(result, decoded)
		}
		return result, nil
	default:
		return nil, &Error{Code: CodeUnsupportedShape, Field: fieldType, Expected: "GeoJSON geometry type", Actual: kind}
	}
}

func geoJSONDoc(kind string, coordinates interface{}) bson.D {
	return bson.D{
		{Key: fieldType, Value: kind},
		{Key: fieldCoordinates, Value: coordinates},
	}
}

func pointCoordinates(p orb.Point) []float64 {
	return []float64{p[0], p[1]}
}

func pathCoordinates(points []orb.Point) bson.A {
	path := make(bson.A, 0, len(points))
	for _, p := range points {
		path = append(path, pointCoordinates(p))
	}
	return path
}

func polygonCoordinates(polygon orb.Polygon) bson.A {
	rings := make(bson.A, 0, len(polygon))
	for _, ring := range polygon {
		rings = append(rings, pathCoordinates(ring))
	}
	return rings
}

func decodePath(field string, v interface{}) ([]orb.Point, error) {
	elements, err := sequence(field, v)
	if err != nil {
		return nil, err
	}
	points := make([]orb.Point, 0, len(elements))
	for i, element := range elements {
		p, err := FromList(field+"."+indexField(i), element)
		if err != nil {
			return nil, err
		}
		points = append(points, p.Orb())
	}
	return points, nil
}

func decodePolygonRings(field string, v interface{}) (orb.Polygon, error) {
	rings, err := sequence(field, v)
	if err != nil {
		return nil, err
	}
	polygon := make(orb.Polygon, 0, len(rings))
	for i, ring := range rings {
		points, err := decodePath(field+"."+indexField(i), ring)
		if err != nil {
			return nil, err
		}
		polygon = append(polygon, orb.Ring(points))
	}
	return polygon, nil
}
