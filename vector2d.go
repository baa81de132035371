package geometry

import (
	"fmt"
	"math"
)

// Vector2D is a free vector. Unlike Point2D, it has no location.
type Vector2D struct {
	X, Y float64
}

func BasisX2D() Vector2D { return Vector2D{1, 0} }
func BasisY2D() Vector2D { return Vector2D{0, 1} }

func (v Vector2D) Add(o Vector2D) Vector2D { return Vector2D{v.X + o.X, v.Y + o.Y} }
func (v Vector2D) Sub(o Vector2D) Vector2D { return Vector2D{v.X - o.X, v.Y - o.Y} }
func (v Vector2D) Scale(f float64) Vector2D {
	return Vector2D{v.X * f, v.Y * f}
}
func (v Vector2D) Negate() Vector2D { return Vector2D{-v.X, -v.Y} }

// Vertical is the vector rotated a quarter turn counter-clockwise.
func (v Vector2D) Vertical() Vector2D { return Vector2D{-v.Y, v.X} }

func (v Vector2D) Dot(o Vector2D) float64 { return v.X*o.X + v.Y*o.Y }

// Cross is the Z component of the 3D cross product. Positive means o is
// counter-clockwise from v.
func (v Vector2D) Cross(o Vector2D) float64 { return v.X*o.Y - v.Y*o.X }

func (v Vector2D) SquareLength() float64 { return v.X*v.X + v.Y*v.Y }
func (v Vector2D) Length() float64 { return math.Hypot(v.X, v.Y) }

// Normalize returns the unit vector in the same direction. The zero vector
// gives NaNs.
func (v Vector2D) Normalize() Vector2D {
	length := v.Length()
	return Vector2D{v.X / length, v.Y / length}
}

// AngleTo is the unsigned angle between the vectors, in [0, π].
func (v Vector2D) AngleTo(o Vector2D) float64 {
	return math.Abs(math.Atan2(v.Cross(o), v.Dot(o)))
}

// CcwAngleTo is the angle you have to turn v counter-clockwise to line up with
// o, in [0, 2π).
func (v Vector2D) CcwAngleTo(o Vector2D) float64 {
	return normalizeAngle(math.Atan2(v.Cross(o), v.Dot(o)))
}

// IsCounterClockwise reports whether o is reached from v by a counter-clockwise
// turn of at most π. Collinear vectors count.
func (v Vector2D) IsCounterClockwise(o Vector2D) bool {
	return v.X*o.Y >= v.Y*o.X
}

// IsEqualTo compares components within the tolerance.
func (v Vector2D) IsEqualTo(o Vector2D) bool {
	return Equal(v.X, o.X) && Equal(v.Y, o.Y)
}

// IsParallel is true for both same and opposite directions.
func (v Vector2D) IsParallel(o Vector2D) bool {
	return IsZero(v.Normalize().Cross(o.Normalize()))
}

func (v Vector2D) String() string {
	return fmt.Sprintf("(%g, %g)", v.X, v.Y)
}
