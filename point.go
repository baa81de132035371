package geometry

import (
	"fmt"
	"math"
)

// Point2D is a location in the plane. Points can be moved by vectors and
// subtracted into vectors, but never added together.
type Point2D struct {
	X, Y float64
}

// Vector is the position vector of the point (from the origin).
func (p Point2D) Vector() Vector2D { return Vector2D{p.X, p.Y} }

// VectorTo is the vector from p to q.
func (p Point2D) VectorTo(q Point2D) Vector2D { return Vector2D{q.X - p.X, q.Y - p.Y} }

func (p Point2D) Add(v Vector2D) Point2D { return Point2D{p.X + v.X, p.Y + v.Y} }
func (p Point2D) Sub(v Vector2D) Point2D { return Point2D{p.X - v.X, p.Y - v.Y} }

// Scale scales the point about the origin.
func (p Point2D) Scale(f float64) Point2D { return Point2D{p.X * f, p.Y * f} }

func (p Point2D) DistanceTo(q Point2D) float64 {
	return math.Hypot(q.X-p.X, q.Y-p.Y)
}

func (p Point2D) SquareDistanceTo(q Point2D) float64 {
	return p.VectorTo(q).SquareLength()
}

// IsAlmostEqualTo is true when the points are closer than tol.
func (p Point2D) IsAlmostEqualTo(q Point2D, tol float64) bool {
	return p.DistanceTo(q) < tol
}

func (p Point2D) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

type Point3D struct {
	X, Y, Z float64
}

func Point3DFrom2D(p Point2D, z float64) Point3D {
	return Point3D{p.X, p.Y, z}
}

func (p Point3D) Vector() Vector3D { return Vector3D{p.X, p.Y, p.Z} }

func (p Point3D) VectorTo(q Point3D) Vector3D {
	return Vector3D{q.X - p.X, q.Y - p.Y, q.Z - p.Z}
}

func (p Point3D) Add(v Vector3D) Point3D { return Point3D{p.X + v.X, p.Y + v.Y, p.Z + v.Z} }
func (p Point3D) Sub(v Vector3D) Point3D { return Point3D{p.X - v.X, p.Y - v.Y, p.Z - v.Z} }

func (p Point3D) Scale(f float64) Point3D { return Point3D{p.X * f, p.Y * f, p.Z * f} }

func (p Point3D) XY() Point2D { return Point2D{p.X, p.Y} }

func (p Point3D) DistanceTo(q Point3D) float64 {
	return p.VectorTo(q).Length()
}

func (p Point3D) SquareDistanceTo(q Point3D) float64 {
	return p.VectorTo(q).SquareLength()
}

// ProjectDistanceTo is the distance between the points seen from above, i.e.
// ignoring Z.
func (p Point3D) ProjectDistanceTo(q Point3D) float64 {
	return math.Hypot(q.X-p.X, q.Y-p.Y)
}

func (p Point3D) IsAlmostEqualTo(q Point3D, tol float64) bool {
	return p.DistanceTo(q) < tol
}

func (p Point3D) String() string {
	return fmt.Sprintf("(%g, %g, %g)", p.X, p.Y, p.Z)
}
