package geometry

import (
	"fmt"
	"math"
)

// Line2D is an infinite line in implicit form: Ax + By = C.
//
// The coefficients carry an orientation. Direction() is (-B, A) normalized and
// Normal() is (A, B) normalized, which points to the right of the direction.
// DistanceTo is positive on the normal's side.
type Line2D struct {
	a, b, c float64
}

func NewLine2D(a, b, c float64) Line2D {
	return Line2D{a, b, c}
}

// Line2DFromSlope is y = kx + b.
func Line2DFromSlope(k, b float64) Line2D {
	return Line2D{k, -1, -b}
}

// Line2DFromSlopeAndPoint is the line of slope k through p.
func Line2DFromSlopeAndPoint(k float64, p Point2D) Line2D {
	return Line2D{k, -1, k*p.X - p.Y}
}

func Line2DFromPointAndDirection(p Point2D, direction Vector2D) Line2D {
	return Line2D{direction.Y, -direction.X, direction.Y*p.X - direction.X*p.Y}
}

// Line2DThroughPoints is directed from p to q. Swapping the points flips the
// sign of DistanceTo but not its magnitude.
func Line2DThroughPoints(p, q Point2D) Line2D {
	return Line2DFromPointAndDirection(p, p.VectorTo(q))
}

func (l Line2D) Coefficients() (a, b, c float64) {
	return l.a, l.b, l.c
}

func (l Line2D) Direction() Vector2D {
	return Vector2D{-l.b, l.a}.Normalize()
}

func (l Line2D) Normal() Vector2D {
	return Vector2D{l.a, l.b}.Normalize()
}

// PointAtX is where the line crosses the vertical x. Vertical lines have no
// such point.
func (l Line2D) PointAtX(x float64) (Point2D, bool) {
	if l.isVertical() {
		return Point2D{}, false
	}
	return Point2D{x, (l.c - l.a*x) / l.b}, true
}

// PointAtY is where the line crosses the horizontal y.
func (l Line2D) PointAtY(y float64) (Point2D, bool) {
	if l.isHorizontal() {
		return Point2D{}, false
	}
	return Point2D{(l.c - l.b*y) / l.a, y}, true
}

func (l Line2D) isVertical() bool { return IsZero(l.b) }
func (l Line2D) isHorizontal() bool { return IsZero(l.a) }

// DistanceTo is the signed distance from the line to p.
func (l Line2D) DistanceTo(p Point2D) float64 {
	return (l.a*p.X + l.b*p.Y - l.c) / math.Hypot(l.a, l.b)
}

// Projection drops a perpendicular from p to the line. Parameter is the
// position of the foot along Direction(), measured from the point of the line
// closest to the origin.
func (l Line2D) Projection(p Point2D) ProjectionResult[Point2D] {
	d := l.DistanceTo(p)
	var foot Point2D
	switch {
	case l.isHorizontal():
		foot = Point2D{p.X, l.c / l.b}
	case l.isVertical():
		foot = Point2D{l.c / l.a, p.Y}
	default:
		foot = p.Sub(l.Normal().Scale(d))
	}
	return ProjectionResult[Point2D]{
		Point:     foot,
		Parameter: foot.Vector().Dot(l.Direction()),
		Distance:  d,
	}
}

func (l Line2D) Contains(p Point2D) bool {
	return IsZero(l.DistanceTo(p))
}

// IsParallel also holds for coincident lines.
func (l Line2D) IsParallel(other Line2D) bool {
	return IsZero(l.Normal().Cross(other.Normal()))
}

// Intersect solves the 2x2 system with Cramer's rule. Parallel lines, including
// coincident ones, have no single intersection.
func (l Line2D) Intersect(other Line2D) (Point2D, bool) {
	if l.IsParallel(other) {
		return Point2D{}, false
	}
	det := l.a*other.b - l.b*other.a
	return Point2D{
		(l.c*other.b - l.b*other.c) / det,
		(l.a*other.c - l.c*other.a) / det,
	}, true
}

func (l Line2D) String() string {
	return fmt.Sprintf("%gx + %gy = %g", l.a, l.b, l.c)
}
