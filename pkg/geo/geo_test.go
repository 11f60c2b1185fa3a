// pkg/geo/geo_test.go - Unit tests for geo value types
package geo

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMetric(t *testing.T) {
	tests := []struct {
		input   string
		want    Metric
		wantErr bool
	}{
		{"KILOMETERS", Kilometers, false},
		{"kilometers", Kilometers, false},
		{"km", Kilometers, false},
		{"MILES", Miles, false},
		{"mi", Miles, false},
		{"NEUTRAL", Neutral, false},
		{"furlongs", Neutral, true},
		{"", Neutral, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseMetric(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDistanceNormalized(t *testing.T) {
	assert.Equal(t, 3.0, NewDistance(3).Normalized())
	assert.InDelta(t, 1.0, NewDistanceIn(6378.137, Kilometers).Normalized(), 1e-12)
	assert.InDelta(t, 1.0, NewDistanceIn(3963.191, Miles).Normalized(), 1e-12)
}

func TestDistanceEquality(t *testing.T) {
	assert.Equal(t, NewDistanceIn(3, Miles), NewDistanceIn(3, Miles))
	assert.NotEqual(t, NewDistanceIn(3, Miles), NewDistanceIn(3, Kilometers))
	assert.NotEqual(t, NewDistance(3), NewDistanceIn(3, Miles))
}

func TestDistanceJSON(t *testing.T) {
	data, err := json.Marshal(NewDistanceIn(2.5, Kilometers))
	require.NoError(t, err)
	assert.JSONEq(t, `{"value":2.5,"metric":"KILOMETERS"}`, string(data))

	var d Distance
	require.NoError(t, json.Unmarshal([]byte(`{"value":4,"metric":"mi"}`), &d))
	assert.Equal(t, NewDistanceIn(4, Miles), d)

	var unitless Distance
	require.NoError(t, json.Unmarshal([]byte(`{"value":4}`), &unitless))
	assert.Equal(t, NewDistance(4), unitless)

	var unknown Distance
	assert.Error(t, json.Unmarshal([]byte(`{"value":4,"metric":"parsecs"}`), &unknown))
}

func TestShapeKinds(t *testing.T) {
	tests := []struct {
		shape   Shape
		kind    ShapeKind
		command string
	}{
		{NewBox(NewPoint(1, 2), NewPoint(3, 4)), KindBox, "$box"},
		{NewCircle(NewPoint(1, 2), 3), KindCircle, "$center"},
		{NewPolygon(NewPoint(0, 0), NewPoint(1, 0), NewPoint(1, 1)), KindPolygon, "$polygon"},
		{NewSphere(NewPoint(1, 2), 3), KindSphere, "$centerSphere"},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			assert.Equal(t, tt.kind, tt.shape.Kind())
			assert.Equal(t, tt.command, NewGeoCommand(tt.shape).Command())
		})
	}

	assert.Equal(t, "", GeoCommand{}.Command())
	assert.False(t, ShapeKind("triangle").IsValid())
}

func TestSphereFromCircle(t *testing.T) {
	c := NewCircleWithDistance(NewPoint(1, 2), NewDistanceIn(3, Kilometers))
	s := SphereFromCircle(c)
	assert.Equal(t, c.Center, s.Center)
	assert.Equal(t, c.Radius, s.Radius)
	assert.Equal(t, KindSphere, s.Kind())
}

func TestOrbInterop(t *testing.T) {
	p := NewPoint(-73.99, 40.73)
	assert.Equal(t, orb.Point{-73.99, 40.73}, p.Orb())
	assert.Equal(t, p, PointFromOrb(p.Orb()))

	box := NewBox(NewPoint(3, 4), NewPoint(1, 2))
	bound := box.Bound()
	assert.Equal(t, orb.Point{1, 2}, bound.Min)
	assert.Equal(t, orb.Point{3, 4}, bound.Max)
	assert.Equal(t, NewBox(NewPoint(1, 2), NewPoint(3, 4)), BoxFromBound(bound))

	polygon := NewPolygon(NewPoint(0, 0), NewPoint(4, 0), NewPoint(4, 4))
	ring := polygon.Ring()
	require.Len(t, ring, 4)
	assert.True(t, ring.Closed())
	assert.True(t, polygon.Equal(PolygonFromRing(ring)))
}

func TestPolygonEqual(t *testing.T) {
	a := NewPolygon(NewPoint(1, 2), NewPoint(2, 3), NewPoint(3, 4))
	b := NewPolygon(NewPoint(1, 2), NewPoint(2, 3), NewPoint(3, 4))
	c := NewPolygon(NewPoint(2, 3), NewPoint(1, 2), NewPoint(3, 4))

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(NewPolygon(NewPoint(1, 2))))
}

func TestMetricTextInvalid(t *testing.T) {
	_, err := Metric(42).MarshalText()
	assert.Error(t, err)
	assert.Equal(t, 1.0, Metric(42).Multiplier())
	assert.False(t, math.IsNaN(NewDistanceIn(1, Metric(42)).Normalized()))
}
