// pkg/geo/box.go - Box value type
package geo

import (
	"fmt"

	"github.com/paulmach/orb"
)

// Box is a rectangle described by two opposite corners. The corners are kept
// in the order they were given.
type Box struct {
	First  Point `json:"first"`
	Second Point `json:"second"`
}

// NewBox creates a box from two corners
func NewBox(first, second Point) Box {
	return Box{First: first, Second: second}
}

// BoxFromBound converts an orb bound into a Box with Min as the first corner
func BoxFromBound(b orb.Bound) Box {
	return Box{First: PointFromOrb(b.Min), Second: PointFromOrb(b.Max)}
}

// Bound returns the smallest orb.Bound containing both corners
func (b Box) Bound() orb.Bound {
	return orb.MultiPoint{b.First.Orb(), b.Second.Orb()}.Bound()
}

func (Box) shape() {}

// Kind returns the shape kind of the box
func (Box) Kind() ShapeKind {
	return KindBox
}

// String returns a string representation of the box
func (b Box) String() string {
	return fmt.Sprintf("Box [%s, %s]", b.First, b.Second)
}
