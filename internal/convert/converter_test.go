// internal/convert/converter_test.go - Unit tests for the kind-keyed converter
package convert

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/valpere/geo_bson/internal"
	"github.com/valpere/geo_bson/pkg/geo"
	"github.com/valpere/geo_bson/pkg/geoconv"
)

func TestNewConverter(t *testing.T) {
	for _, kind := range internal.ValueKinds {
		c, err := NewConverter(kind)
		require.NoError(t, err)
		assert.Equal(t, kind, c.Kind())
	}

	_, err := NewConverter("triangle")
	assert.Error(t, err)
}

func TestEncodeDecode(t *testing.T) {
	tests := []struct {
		kind  internal.ValueKind
		input string
		want  interface{}
	}{
		{internal.KindPoint, `{"x":1,"y":2}`, geo.NewPoint(1, 2)},
		{internal.KindBox, `{"first":{"x":1,"y":2},"second":{"x":3,"y":4}}`, geo.NewBox(geo.NewPoint(1, 2), geo.NewPoint(3, 4))},
		{internal.KindCircle, `{"center":{"x":1,"y":2},"radius":{"value":3,"metric":"MILES"}}`, geo.NewCircleWithDistance(geo.NewPoint(1, 2), geo.NewDistanceIn(3, geo.Miles))},
		{internal.KindSphere, `{"center":{"x":1,"y":2},"radius":{"value":3}}`, geo.NewSphere(geo.NewPoint(1, 2), 3)},
		{internal.KindPolygon, `{"points":[{"x":1,"y":2},{"x":2,"y":3},{"x":3,"y":4}]}`, geo.NewPolygon(geo.NewPoint(1, 2), geo.NewPoint(2, 3), geo.NewPoint(3, 4))},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			c, err := NewConverter(tt.kind)
			require.NoError(t, err)

			doc, err := c.Encode([]byte(tt.input))
			require.NoError(t, err)

			value, err := c.Decode(doc)
			require.NoError(t, err)
			assert.Equal(t, tt.want, value)
		})
	}
}

func TestEncodeInvalidInput(t *testing.T) {
	c, err := NewConverter(internal.KindCircle)
	require.NoError(t, err)

	_, err = c.Encode([]byte(`{"center":`))
	assert.Error(t, err)

	_, err = c.Encode([]byte(`{"center":{"x":1,"y":2},"radius":{"value":3,"metric":"LEAGUES"}}`))
	assert.Error(t, err)
}

func TestDecodeExtJSONDocument(t *testing.T) {
	var doc bson.D
	require.NoError(t, bson.UnmarshalExtJSON([]byte(`{"center":{"x":1,"y":2},"radius":{"$numberLong":"3"}}`), false, &doc))

	c, err := NewConverter(internal.KindSphere)
	require.NoError(t, err)

	value, err := c.Decode(doc)
	require.NoError(t, err)
	assert.Equal(t, geo.NewSphere(geo.NewPoint(1, 2), 3), value)
}

func TestGeoJSONKind(t *testing.T) {
	c, err := NewConverter(internal.KindGeoJSON)
	require.NoError(t, err)

	input := `{"type":"LineString","coordinates":[[1,2],[3,4]]}`
	doc, err := c.Encode([]byte(input))
	require.NoError(t, err)
	assert.Equal(t, bson.E{Key: "type", Value: "LineString"}, doc[0])

	value, err := c.Decode(doc)
	require.NoError(t, err)
	geometry, ok := value.(*geojson.Geometry)
	require.True(t, ok)
	assert.Equal(t, orb.LineString{{1, 2}, {3, 4}}, geometry.Geometry())

	data, err := json.Marshal(value)
	require.NoError(t, err)
	assert.JSONEq(t, input, string(data))

	cmd, err := c.Command([]byte(input))
	require.NoError(t, err)
	assert.Equal(t, "$geometry", cmd[0].Key)
}

func TestCommand(t *testing.T) {
	c, err := NewConverter(internal.KindBox)
	require.NoError(t, err)

	doc, err := c.Command([]byte(`{"first":{"x":1,"y":2},"second":{"x":3,"y":4}}`))
	require.NoError(t, err)
	assert.Equal(t, bson.D{{Key: "$box", Value: bson.A{[]float64{1, 2}, []float64{3, 4}}}}, doc)

	point, err := NewConverter(internal.KindPoint)
	require.NoError(t, err)
	_, err = point.Command([]byte(`{"x":1,"y":2}`))
	assert.ErrorIs(t, err, geoconv.ErrUnsupportedShape)
}

func TestParseCoordinates(t *testing.T) {
	coords, err := ParseCoordinates("-74.0, 40.7,-73.9,40.8")
	require.NoError(t, err)
	assert.Equal(t, []float64{-74.0, 40.7, -73.9, 40.8}, coords)

	_, err = ParseCoordinates("1,,2")
	assert.Error(t, err)

	_, err = ParseCoordinates("1,north")
	assert.Error(t, err)
}

func TestShapeFromCoordinates(t *testing.T) {
	tests := []struct {
		name    string
		kind    internal.ValueKind
		coords  []float64
		want    geo.Shape
		wantErr bool
	}{
		{"box", internal.KindBox, []float64{1, 2, 3, 4}, geo.NewBox(geo.NewPoint(1, 2), geo.NewPoint(3, 4)), false},
		{"circle", internal.KindCircle, []float64{1, 2, 3}, geo.NewCircleWithDistance(geo.NewPoint(1, 2), geo.NewDistanceIn(3, geo.Kilometers)), false},
		{"sphere", internal.KindSphere, []float64{1, 2, 3}, geo.NewSphereWithDistance(geo.NewPoint(1, 2), geo.NewDistanceIn(3, geo.Kilometers)), false},
		{"polygon", internal.KindPolygon, []float64{0, 0, 1, 0, 1, 1}, geo.NewPolygon(geo.NewPoint(0, 0), geo.NewPoint(1, 0), geo.NewPoint(1, 1)), false},
		{"short box", internal.KindBox, []float64{1, 2, 3}, nil, true},
		{"odd polygon", internal.KindPolygon, []float64{0, 0, 1, 0, 1, 1, 2}, nil, true},
		{"point", internal.KindPoint, []float64{1, 2}, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shape, err := ShapeFromCoordinates(tt.kind, tt.coords, geo.Kilometers)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, shape)
		})
	}
}

func TestDecodeConversionError(t *testing.T) {
	c, err := NewConverter(internal.KindBox)
	require.NoError(t, err)

	_, err = c.Decode(bson.D{{Key: "first", Value: bson.D{{Key: "x", Value: 1.0}, {Key: "y", Value: 2.0}}}})
	require.Error(t, err)

	var appErr *internal.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, internal.ErrorCodeConversion, appErr.Code)
	assert.ErrorIs(t, err, geoconv.ErrMissingField)

	var codecErr *geoconv.Error
	require.True(t, errors.As(err, &codecErr))
	assert.Equal(t, "second", codecErr.Field)
}
