package geometry

import (
	"math"

	"github.com/osuushi/geometry/matrix"
	"github.com/pkg/errors"
)

// Transform2D is an affine map of the plane, kept as a homogeneous 3x3 matrix.
// The columns are basisX, basisY and origin, so a point (x, y) lands on
// origin + x·basisX + y·basisY. The bases don't have to be orthonormal.
//
// The zero value is not the identity; use Identity2D.
type Transform2D struct {
	m [3][3]float64
}

func Identity2D() Transform2D {
	return NewTransform2D(Point2D{}, BasisX2D(), BasisY2D())
}

func NewTransform2D(origin Point2D, basisX, basisY Vector2D) Transform2D {
	return Transform2D{m: [3][3]float64{
		{basisX.X, basisY.X, origin.X},
		{basisX.Y, basisY.Y, origin.Y},
		{0, 0, 1},
	}}
}

// Transform2DFromMatrix wraps a 3x3 homogeneous matrix. The bottom row has to be
// (0, …, 0, 1) within the tolerance, and is stored exactly.
func Transform2DFromMatrix(m matrix.Matrix[float64]) (Transform2D, error) {
	if m.Rows() != 3 || m.Cols() != 3 {
		return Transform2D{}, errors.Wrapf(ErrTransformShape, "expected 3x3, got %dx%d", m.Rows(), m.Cols())
	}
	for j := 0; j < 3; j++ {
		expected := 0.0
		if j == 2 {
			expected = 1
		}
		if !Equal(m.At(2, j), expected) {
			return Transform2D{}, errors.Wrapf(ErrTransformShape, "bottom row is %v, not affine", m.ToRows()[2])
		}
	}
	var t Transform2D
	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			t.m[i][j] = m.At(i, j)
		}
	}
	t.m[2][2] = 1
	return t, nil
}

func Translation2D(v Vector2D) Transform2D {
	return NewTransform2D(Point2D{}.Add(v), BasisX2D(), BasisY2D())
}

// Rotation2D rotates counter-clockwise about the origin.
func Rotation2D(angle float64) Transform2D {
	sin, cos := math.Sincos(angle)
	return NewTransform2D(Point2D{}, Vector2D{cos, sin}, Vector2D{-sin, cos})
}

func RotationAt2D(angle float64, center Point2D) Transform2D {
	return at2D(Rotation2D(angle), center)
}

func Scale2D(x, y float64) Transform2D {
	return NewTransform2D(Point2D{}, Vector2D{x, 0}, Vector2D{0, y})
}

func ScaleAt2D(x, y float64, center Point2D) Transform2D {
	return at2D(Scale2D(x, y), center)
}

// Reflection2D mirrors across the line through the origin along axis. Each
// basis vector e maps to 2(a·e)a - e, where a is the unit axis.
func Reflection2D(axis Vector2D) Transform2D {
	a := axis.Normalize()
	switch {
	case IsZero(a.Y):
		return Scale2D(1, -1)
	case IsZero(a.X):
		return Scale2D(-1, 1)
	}
	mirror := func(e Vector2D) Vector2D {
		return a.Scale(2 * a.Dot(e)).Sub(e)
	}
	return NewTransform2D(Point2D{}, mirror(BasisX2D()), mirror(BasisY2D()))
}

// ReflectionAt2D mirrors across the line through point along axis.
func ReflectionAt2D(axis Vector2D, point Point2D) Transform2D {
	return at2D(Reflection2D(axis), point)
}

// Moves the fixed point of op from the origin to center: T(c) ∘ op ∘ T(-c)
func at2D(op Transform2D, center Point2D) Transform2D {
	c := center.Vector()
	return Translation2D(c).Multiply(op).Multiply(Translation2D(c.Negate()))
}

func (t Transform2D) BasisX() Vector2D { return Vector2D{t.m[0][0], t.m[1][0]} }
func (t Transform2D) BasisY() Vector2D { return Vector2D{t.m[0][1], t.m[1][1]} }
func (t Transform2D) Origin() Point2D { return Point2D{t.m[0][2], t.m[1][2]} }

// IsRightHanded is false for transforms that flip orientation, like
// reflections.
func (t Transform2D) IsRightHanded() bool {
	return t.BasisX().Cross(t.BasisY()) > 0
}

// OfPoint applies the whole map, translation included.
func (t Transform2D) OfPoint(p Point2D) Point2D {
	return Point2D{
		t.m[0][0]*p.X + t.m[0][1]*p.Y + t.m[0][2],
		t.m[1][0]*p.X + t.m[1][1]*p.Y + t.m[1][2],
	}
}

// OfVector applies only the linear part.
func (t Transform2D) OfVector(v Vector2D) Vector2D {
	return Vector2D{
		t.m[0][0]*v.X + t.m[0][1]*v.Y,
		t.m[1][0]*v.X + t.m[1][1]*v.Y,
	}
}

// Multiply composes the transforms so that other is applied first:
// t.Multiply(o).OfPoint(p) == t.OfPoint(o.OfPoint(p)).
func (t Transform2D) Multiply(other Transform2D) Transform2D {
	product, err := t.Matrix().Mul(other.Matrix())
	if err != nil {
		fatalf("multiplying transforms: %v", err)
	}
	result, err := Transform2DFromMatrix(product)
	if err != nil {
		fatalf("multiplying transforms: %v", err)
	}
	return result
}

// Inverse fails only when the bases are linearly dependent.
func (t Transform2D) Inverse() (Transform2D, error) {
	inverse, err := t.Matrix().Inverse()
	if err != nil {
		return Transform2D{}, errors.Wrap(err, "inverting transform")
	}
	return Transform2DFromMatrix(inverse)
}

// Matrix copies the transform out as a homogeneous matrix.
func (t Transform2D) Matrix() matrix.Matrix[float64] {
	m := matrix.New[float64](3, 3)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			m.Set(i, j, t.m[i][j])
		}
	}
	return m
}

// IsEqualTo compares every matrix element within the tolerance.
func (t Transform2D) IsEqualTo(o Transform2D) bool {
	return t.Matrix().Equal(o.Matrix(), Tolerance())
}
