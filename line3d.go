package geometry

import "fmt"

// Line3D is an infinite line through Origin along a unit Direction.
type Line3D struct {
	origin    Point3D
	direction Vector3D
}

func NewLine3D(origin Point3D, direction Vector3D) Line3D {
	return Line3D{origin, direction.Normalize()}
}

func Line3DThroughPoints(p, q Point3D) Line3D {
	return NewLine3D(p, p.VectorTo(q))
}

func (l Line3D) Origin() Point3D { return l.origin }
func (l Line3D) Direction() Vector3D { return l.direction }

func (l Line3D) PointAt(t float64) Point3D {
	return l.origin.Add(l.direction.Scale(t))
}

// Projection is the foot of the perpendicular from p. Parameter is the signed
// position of the foot from Origin; Distance is unsigned.
func (l Line3D) Projection(p Point3D) ProjectionResult[Point3D] {
	t := l.origin.VectorTo(p).Dot(l.direction)
	foot := l.PointAt(t)
	return ProjectionResult[Point3D]{
		Point:     foot,
		Parameter: t,
		Distance:  foot.DistanceTo(p),
	}
}

func (l Line3D) DistanceTo(p Point3D) float64 {
	return l.origin.VectorTo(p).Cross(l.direction).Length()
}

func (l Line3D) Contains(p Point3D) bool {
	return IsZero(l.DistanceTo(p))
}

func (l Line3D) String() string {
	return fmt.Sprintf("%v + t%v", l.origin, l.direction)
}
