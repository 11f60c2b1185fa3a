// pkg/geo/point.go - Point value type
package geo

import (
	"fmt"

	"github.com/paulmach/orb"
)

// Point is a two-dimensional coordinate. For geographic data X is the longitude
// and Y the latitude.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// NewPoint creates a point from its coordinates
func NewPoint(x, y float64) Point {
	return Point{X: x, Y: y}
}

// PointFromOrb converts an orb point into a Point
func PointFromOrb(p orb.Point) Point {
	return Point{X: p[0], Y: p[1]}
}

// Orb returns the point as an orb.Point
func (p Point) Orb() orb.Point {
	return orb.Point{p.X, p.Y}
}

// String returns a string representation of the point
func (p Point) String() string {
	return fmt.Sprintf("Point [x=%f, y=%f]", p.X, p.Y)
}
