package geometry

import (
	"fmt"
	"math"
)

// Plane3D is an infinite plane in implicit form: Ax + By + Cz = D. The normal
// (A, B, C) picks the positive side for DistanceTo.
type Plane3D struct {
	a, b, c, d float64
}

func NewPlane3D(a, b, c, d float64) Plane3D {
	return Plane3D{a, b, c, d}
}

// Plane3DFromNormalAndOffset is n·p = d. With a unit normal, d is the signed
// distance of the plane from the origin.
func Plane3DFromNormalAndOffset(normal Vector3D, d float64) Plane3D {
	return Plane3D{normal.X, normal.Y, normal.Z, d}
}

func Plane3DFromNormalAndPoint(normal Vector3D, p Point3D) Plane3D {
	return Plane3D{normal.X, normal.Y, normal.Z, normal.Dot(p.Vector())}
}

func PlaneXY() Plane3D { return Plane3D{0, 0, 1, 0} }
func PlaneYZ() Plane3D { return Plane3D{1, 0, 0, 0} }
func PlaneZX() Plane3D { return Plane3D{0, 1, 0, 0} }

func (p Plane3D) Coefficients() (a, b, c, d float64) {
	return p.a, p.b, p.c, p.d
}

func (p Plane3D) Normal() Vector3D {
	return Vector3D{p.a, p.b, p.c}.Normalize()
}

func (p Plane3D) normalLength() float64 {
	return math.Sqrt(p.a*p.a + p.b*p.b + p.c*p.c)
}

// Signed distance from the origin to the plane along the unit normal
func (p Plane3D) offset() float64 {
	return p.d / p.normalLength()
}

// DistanceTo is the signed distance from the plane to q.
func (p Plane3D) DistanceTo(q Point3D) float64 {
	return (p.a*q.X + p.b*q.Y + p.c*q.Z - p.d) / p.normalLength()
}

func (p Plane3D) Projection(q Point3D) ProjectionResult[Point3D] {
	d := p.DistanceTo(q)
	return ProjectionResult[Point3D]{
		Point:    q.Sub(p.Normal().Scale(d)),
		Distance: d,
	}
}

// ContainsPoint is the coplanarity test for a point.
func (p Plane3D) ContainsPoint(q Point3D) bool {
	return IsZero(p.DistanceTo(q))
}

// ContainsLine is true when the whole line lies in the plane.
func (p Plane3D) ContainsLine(l Line3D) bool {
	return IsZero(l.Direction().Dot(p.Normal())) && p.ContainsPoint(l.Origin())
}

// AngleTo is the angle between the vector and the plane itself, so a vector
// along the normal gives π/2 and one lying in the plane gives 0. Vectors on
// the negative side give negative angles.
func (p Plane3D) AngleTo(v Vector3D) float64 {
	return math.Pi/2 - v.AngleTo(p.Normal())
}

// Intersect casts a line from point along direction (both ways) and returns
// where it meets the plane. A point already on the plane is returned as is;
// otherwise a direction parallel to the plane has no intersection.
func (p Plane3D) Intersect(point Point3D, direction Vector3D) (Point3D, bool) {
	d := p.DistanceTo(point)
	if IsZero(d) {
		return point, true
	}
	u := direction.Normalize()
	cos := u.Dot(p.Normal())
	if IsZero(cos) {
		return Point3D{}, false
	}
	return point.Sub(u.Scale(d / cos)), true
}

// IntersectLine is Intersect for a Line3D.
func (p Plane3D) IntersectLine(l Line3D) (Point3D, bool) {
	return p.Intersect(l.Origin(), l.Direction())
}

// IntersectSegment only reports crossings between the segment's endpoints
// (inclusive). A segment lying in the plane reports its start.
func (p Plane3D) IntersectSegment(s Segment3D) (Point3D, bool) {
	ds, de := p.DistanceTo(s.Start), p.DistanceTo(s.End)
	switch {
	case IsZero(ds):
		return s.Start, true
	case IsZero(de):
		return s.End, true
	case (ds > 0) == (de > 0):
		return Point3D{}, false
	}
	return s.PointAt(ds / (ds - de)), true
}

func (p Plane3D) String() string {
	return fmt.Sprintf("%gx + %gy + %gz = %g", p.a, p.b, p.c, p.d)
}
