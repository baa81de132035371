package geometry

import (
	"fmt"
	"math"
)

type Vector3D struct {
	X, Y, Z float64
}

func BasisX3D() Vector3D { return Vector3D{1, 0, 0} }
func BasisY3D() Vector3D { return Vector3D{0, 1, 0} }
func BasisZ3D() Vector3D { return Vector3D{0, 0, 1} }

func Vector3DFrom2D(v Vector2D, z float64) Vector3D {
	return Vector3D{v.X, v.Y, z}
}

func (v Vector3D) Add(o Vector3D) Vector3D { return Vector3D{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vector3D) Sub(o Vector3D) Vector3D { return Vector3D{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v Vector3D) Scale(f float64) Vector3D {
	return Vector3D{v.X * f, v.Y * f, v.Z * f}
}
func (v Vector3D) Negate() Vector3D { return Vector3D{-v.X, -v.Y, -v.Z} }

func (v Vector3D) Dot(o Vector3D) float64 { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }

func (v Vector3D) Cross(o Vector3D) Vector3D {
	return Vector3D{
		v.Y*o.Z - v.Z*o.Y,
		v.Z*o.X - v.X*o.Z,
		v.X*o.Y - v.Y*o.X,
	}
}

func (v Vector3D) SquareLength() float64 { return v.Dot(v) }
func (v Vector3D) Length() float64 { return math.Sqrt(v.Dot(v)) }

func (v Vector3D) Normalize() Vector3D {
	length := v.Length()
	return Vector3D{v.X / length, v.Y / length, v.Z / length}
}

// XY drops the Z component.
func (v Vector3D) XY() Vector2D { return Vector2D{v.X, v.Y} }

// AngleTo is the unsigned angle between the vectors, in [0, π].
func (v Vector3D) AngleTo(o Vector3D) float64 {
	return math.Atan2(v.Cross(o).Length(), v.Dot(o))
}

// CcwAngleTo is the angle from v to o, turning counter-clockwise when looking
// down normal (i.e. with normal pointing at the viewer), in [0, 2π).
func (v Vector3D) CcwAngleTo(o Vector3D, normal Vector3D) float64 {
	cross := v.Cross(o)
	sin := cross.Length()
	if cross.Dot(normal) < 0 {
		sin = -sin
	}
	return normalizeAngle(math.Atan2(sin, v.Dot(o)))
}

// IsAlmostEqualTo reports whether the vectors point the same way: their cross
// product vanishes and they aren't opposed. Length is ignored.
func (v Vector3D) IsAlmostEqualTo(o Vector3D) bool {
	return v.Dot(o) > 0 && IsZero(v.Normalize().Cross(o.Normalize()).Length())
}

// IsEqualTo compares components within the tolerance.
func (v Vector3D) IsEqualTo(o Vector3D) bool {
	return Equal(v.X, o.X) && Equal(v.Y, o.Y) && Equal(v.Z, o.Z)
}

// IsParallel is true for both same and opposite directions.
func (v Vector3D) IsParallel(o Vector3D) bool {
	return IsZero(v.Normalize().Cross(o.Normalize()).Length())
}

// IsPerpendicular uses the normalized dot product.
func (v Vector3D) IsPerpendicular(o Vector3D) bool {
	return IsZero(v.Normalize().Dot(o.Normalize()))
}

func (v Vector3D) String() string {
	return fmt.Sprintf("(%g, %g, %g)", v.X, v.Y, v.Z)
}
