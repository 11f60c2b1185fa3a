// pkg/geo/polygon.go - Polygon value type
package geo

import (
	"fmt"
	"strings"

	"github.com/paulmach/orb"
)

// Polygon is an ordered list of vertices. The ring is implicitly closed and
// no well-formedness checks are made.
type Polygon struct {
	Points []Point `json:"points"`
}

// NewPolygon creates a polygon from its vertices
func NewPolygon(points ...Point) Polygon {
	copied := make([]Point, len(points))
	copy(copied, points)
	return Polygon{Points: copied}
}

// PolygonFromRing converts an orb ring into a Polygon. A closing point equal to
// the first one is dropped.
func PolygonFromRing(r orb.Ring) Polygon {
	points := make([]Point, 0, len(r))
	for _, p := range r {
		points = append(points, PointFromOrb(p))
	}
	if n := len(points); n > 1 && points[0] == points[n-1] {
		points = points[:n-1]
	}
	return Polygon{Points: points}
}

// Ring returns the polygon as a closed orb.Ring
func (p Polygon) Ring() orb.Ring {
	ring := make(orb.Ring, 0, len(p.Points)+1)
	for _, point := range p.Points {
		ring = append(ring, point.Orb())
	}
	if len(ring) > 0 && !ring.Closed() {
		ring = append(ring, ring[0])
	}
	return ring
}

// Equal reports whether both polygons have the same vertices in the same order
func (p Polygon) Equal(other Polygon) bool {
	if len(p.Points) != len(other.Points) {
		return false
	}
	for i := range p.Points {
		if p.Points[i] != other.Points[i] {
			return false
		}
	}
	return true
}

func (Polygon) shape() {}

// Kind returns the shape kind of the polygon
func (Polygon) Kind() ShapeKind {
	return KindPolygon
}

// String returns a string representation of the polygon
func (p Polygon) String() string {
	parts := make([]string, len(p.Points))
	for i, point := range p.Points {
		parts[i] = point.String()
	}
	return fmt.Sprintf("Polygon [%s]", strings.Join(parts, ", "))
}
