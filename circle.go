package geometry

import (
	"fmt"
	"math"
)

type Circle2D struct {
	Center Point2D
	Radius float64
}

func (c Circle2D) Area() float64 { return math.Pi * c.Radius * c.Radius }
func (c Circle2D) Perimeter() float64 { return 2 * math.Pi * c.Radius }

// Contains is true for points inside the disc, boundary included.
func (c Circle2D) Contains(p Point2D) bool {
	return c.Center.DistanceTo(p) <= c.Radius+Tolerance()
}

// OnBoundary is true for points on the circle itself.
func (c Circle2D) OnBoundary(p Point2D) bool {
	return Equal(c.Center.DistanceTo(p), c.Radius)
}

// IntersectLine gives zero, one (tangent) or two points. Two points are ordered
// along the line's direction.
func (c Circle2D) IntersectLine(l Line2D) []IntersectResult[Point2D] {
	projection := l.Projection(c.Center)
	return chordPoints2D(projection.Point, math.Abs(projection.Distance), c.Radius, l.Direction())
}

// Shared by circles and arcs: the line passes at distance d from the center,
// and foot is the closest point to the center.
func chordPoints2D(foot Point2D, d, r float64, dir Vector2D) []IntersectResult[Point2D] {
	switch {
	case Equal(r, d):
		return []IntersectResult[Point2D]{{Point: foot}}
	case r-d > Tolerance():
		half := math.Sqrt(r*r - d*d)
		return []IntersectResult[Point2D]{
			{Point: foot.Sub(dir.Scale(half))},
			{Point: foot.Add(dir.Scale(half))},
		}
	}
	return nil
}

// IntersectCircle handles circles that touch from the outside (one point) and
// circles that properly cross (two points). Circles that are disjoint, nested,
// concentric or touching from the inside give nothing.
//
// For the crossing case, the law of cosines gives the angle at this circle's
// center between the line of centers and each intersection:
//
//	          P
//	     r1 / |  \ r2
//	       /θ |   \
//	     C1 ------ C2
//	          d
func (c Circle2D) IntersectCircle(other Circle2D) []IntersectResult[Point2D] {
	r1, r2 := c.Radius, other.Radius
	toOther := c.Center.VectorTo(other.Center)
	d := toOther.Length()
	if IsZero(d) {
		return nil
	}
	dir := toOther.Scale(1 / d)

	switch {
	case Equal(d, r1+r2):
		return []IntersectResult[Point2D]{{Point: c.Center.Add(dir.Scale(r1))}}
	case d < r1+r2-Tolerance() && d > math.Abs(r1-r2)+Tolerance():
		theta := math.Acos(clampUnit((r1*r1 + d*d - r2*r2) / (2 * r1 * d)))
		return []IntersectResult[Point2D]{
			{Point: c.Center.Add(Rotation2D(theta).OfVector(dir).Scale(r1))},
			{Point: c.Center.Add(Rotation2D(-theta).OfVector(dir).Scale(r1))},
		}
	}
	return nil
}

func (c Circle2D) String() string {
	return fmt.Sprintf("circle(%v, r=%g)", c.Center, c.Radius)
}

// Circle3D is a circle lying in the plane through Center with the given Normal.
type Circle3D struct {
	Center Point3D
	Normal Vector3D
	Radius float64
}

func (c Circle3D) Plane() Plane3D {
	return Plane3DFromNormalAndPoint(c.Normal, c.Center)
}

func (c Circle3D) Area() float64 { return math.Pi * c.Radius * c.Radius }
func (c Circle3D) Perimeter() float64 { return 2 * math.Pi * c.Radius }

// IntersectLine works in two ways. A line in the circle's plane is handled like
// the 2D case, from the foot of the perpendicular from the center. Any other
// line can only meet the circle where it pierces the plane, so that point
// counts if it's at the right distance from the center.
func (c Circle3D) IntersectLine(l Line3D) []IntersectResult[Point3D] {
	plane := c.Plane()
	if plane.ContainsLine(l) {
		projection := l.Projection(c.Center)
		r, d := c.Radius, projection.Distance
		dir := l.Direction()
		switch {
		case Equal(r, d):
			return []IntersectResult[Point3D]{{Point: projection.Point}}
		case r-d > Tolerance():
			half := math.Sqrt(r*r - d*d)
			return []IntersectResult[Point3D]{
				{Point: projection.Point.Sub(dir.Scale(half))},
				{Point: projection.Point.Add(dir.Scale(half))},
			}
		}
		return nil
	}

	pierce, ok := plane.IntersectLine(l)
	if !ok || !Equal(pierce.DistanceTo(c.Center), c.Radius) {
		return nil
	}
	return []IntersectResult[Point3D]{{Point: pierce}}
}

func (c Circle3D) String() string {
	return fmt.Sprintf("circle(%v, n=%v, r=%g)", c.Center, c.Normal, c.Radius)
}
