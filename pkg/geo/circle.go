// pkg/geo/circle.go - Circle and Sphere value types
package geo

import "fmt"

// Circle is a flat circle around a center point
type Circle struct {
	Center Point    `json:"center"`
	Radius Distance `json:"radius"`
}

// NewCircle creates a circle with a unitless radius
func NewCircle(center Point, radius float64) Circle {
	return Circle{Center: center, Radius: NewDistance(radius)}
}

// NewCircleWithDistance creates a circle with the given radius
func NewCircleWithDistance(center Point, radius Distance) Circle {
	return Circle{Center: center, Radius: radius}
}

func (Circle) shape() {}

// Kind returns the shape kind of the circle
func (Circle) Kind() ShapeKind {
	return KindCircle
}

// String returns a string representation of the circle
func (c Circle) String() string {
	return fmt.Sprintf("Circle [center=%s, radius=%s]", c.Center, c.Radius)
}

// Sphere is a circle on the surface of a sphere. It has the same fields as
// Circle but queries against it use spherical geometry.
type Sphere struct {
	Center Point    `json:"center"`
	Radius Distance `json:"radius"`
}

// NewSphere creates a sphere with a unitless radius
func NewSphere(center Point, radius float64) Sphere {
	return Sphere{Center: center, Radius: NewDistance(radius)}
}

// NewSphereWithDistance creates a sphere with the given radius
func NewSphereWithDistance(center Point, radius Distance) Sphere {
	return Sphere{Center: center, Radius: radius}
}

// SphereFromCircle creates a sphere with the center and radius of c
func SphereFromCircle(c Circle) Sphere {
	return Sphere{Center: c.Center, Radius: c.Radius}
}

func (Sphere) shape() {}

// Kind returns the shape kind of the sphere
func (Sphere) Kind() ShapeKind {
	return KindSphere
}

// String returns a string representation of the sphere
func (s Sphere) String() string {
	return fmt.Sprintf("Sphere [center=%s, radius=%s]", s.Center, s.Radius)
}
