// pkg/geo/shape.go - Shape union and geo query command
package geo

// ShapeKind identifies the concrete type of a Shape
type ShapeKind string

const (
	KindBox     ShapeKind = "box"
	KindCircle  ShapeKind = "circle"
	KindPolygon ShapeKind = "polygon"
	KindSphere  ShapeKind = "sphere"
)

// Shape is implemented by Box, Circle, Polygon and Sphere only
type Shape interface {
	Kind() ShapeKind
	shape()
}

// Command returns the query operator used to select documents within the shape
func (k ShapeKind) Command() string {
	switch k {
	case KindBox:
		return "$box"
	case KindCircle:
		return "$center"
	case KindPolygon:
		return "$polygon"
	case KindSphere:
		return "$centerSphere"
	default:
		return ""
	}
}

// IsValid checks if the kind names one of the shapes
func (k ShapeKind) IsValid() bool {
	return k.Command() != ""
}

// String returns the kind name
func (k ShapeKind) String() string {
	return string(k)
}

// GeoCommand wraps a shape used as a query operand
type GeoCommand struct {
	Shape Shape
}

// NewGeoCommand creates a command for the given shape
func NewGeoCommand(shape Shape) GeoCommand {
	return GeoCommand{Shape: shape}
}

// Command returns the operator name for the wrapped shape, or "" when the
// shape is nil
func (c GeoCommand) Command() string {
	if c.Shape == nil {
		return ""
	}
	return c.Shape.Kind().Command()
}
