package geometry

import (
	"math"

	"github.com/osuushi/geometry/matrix"
	"github.com/pkg/errors"
)

// Transform3D is the 3D counterpart of Transform2D: a homogeneous 4x4 matrix
// whose columns are basisX, basisY, basisZ and origin.
type Transform3D struct {
	m [4][4]float64
}

func Identity3D() Transform3D {
	return NewTransform3D(Point3D{}, BasisX3D(), BasisY3D(), BasisZ3D())
}

func NewTransform3D(origin Point3D, basisX, basisY, basisZ Vector3D) Transform3D {
	return Transform3D{m: [4][4]float64{
		{basisX.X, basisY.X, basisZ.X, origin.X},
		{basisX.Y, basisY.Y, basisZ.Y, origin.Y},
		{basisX.Z, basisY.Z, basisZ.Z, origin.Z},
		{0, 0, 0, 1},
	}}
}

// Transform3DFromMatrix wraps a 4x4 homogeneous matrix. The bottom row has to be
// (0, …, 0, 1) within the tolerance, and is stored exactly.
func Transform3DFromMatrix(m matrix.Matrix[float64]) (Transform3D, error) {
	if m.Rows() != 4 || m.Cols() != 4 {
		return Transform3D{}, errors.Wrapf(ErrTransformShape, "expected 4x4, got %dx%d", m.Rows(), m.Cols())
	}
	for j := 0; j < 4; j++ {
		expected := 0.0
		if j == 3 {
			expected = 1
		}
		if !Equal(m.At(3, j), expected) {
			return Transform3D{}, errors.Wrapf(ErrTransformShape, "bottom row is %v, not affine", m.ToRows()[3])
		}
	}
	var t Transform3D
	for i := 0; i < 3; i++ {
		for j := 0; j < 4; j++ {
			t.m[i][j] = m.At(i, j)
		}
	}
	t.m[3][3] = 1
	return t, nil
}

func Translation3D(v Vector3D) Transform3D {
	return NewTransform3D(Point3D{}.Add(v), BasisX3D(), BasisY3D(), BasisZ3D())
}

// Rotation3D rotates by angle about axis through the origin, counter-clockwise
// when the axis points at the viewer. The axis doesn't need to be normalized.
//
// This is Rodrigues' formula written out as a matrix:
//
//	R = cos·I + sin·[k]× + (1-cos)·kkᵀ
func Rotation3D(axis Vector3D, angle float64) Transform3D {
	k := axis.Normalize()
	sin, cos := math.Sincos(angle)
	c := 1 - cos
	return NewTransform3D(
		Point3D{},
		Vector3D{cos + k.X*k.X*c, k.Y*k.X*c + k.Z*sin, k.Z*k.X*c - k.Y*sin},
		Vector3D{k.X*k.Y*c - k.Z*sin, cos + k.Y*k.Y*c, k.Z*k.Y*c + k.X*sin},
		Vector3D{k.X*k.Z*c + k.Y*sin, k.Y*k.Z*c - k.X*sin, cos + k.Z*k.Z*c},
	)
}

func RotationAt3D(axis Vector3D, angle float64, center Point3D) Transform3D {
	return at3D(Rotation3D(axis, angle), center)
}

func Scale3D(x, y, z float64) Transform3D {
	return NewTransform3D(Point3D{}, Vector3D{x, 0, 0}, Vector3D{0, y, 0}, Vector3D{0, 0, z})
}

func ScaleAt3D(x, y, z float64, center Point3D) Transform3D {
	return at3D(Scale3D(x, y, z), center)
}

// Reflection3D mirrors across a plane. The linear part is the Householder
// matrix I - 2nnᵀ; the origin moves to 2dn, where d is the plane's offset
// along its unit normal.
func Reflection3D(plane Plane3D) Transform3D {
	n := plane.Normal()
	d := plane.offset()
	householder := func(e Vector3D) Vector3D {
		return e.Sub(n.Scale(2 * n.Dot(e)))
	}
	return NewTransform3D(
		Point3D{}.Add(n.Scale(2*d)),
		householder(BasisX3D()),
		householder(BasisY3D()),
		householder(BasisZ3D()),
	)
}

func at3D(op Transform3D, center Point3D) Transform3D {
	c := center.Vector()
	return Translation3D(c).Multiply(op).Multiply(Translation3D(c.Negate()))
}

func (t Transform3D) BasisX() Vector3D { return Vector3D{t.m[0][0], t.m[1][0], t.m[2][0]} }
func (t Transform3D) BasisY() Vector3D { return Vector3D{t.m[0][1], t.m[1][1], t.m[2][1]} }
func (t Transform3D) BasisZ() Vector3D { return Vector3D{t.m[0][2], t.m[1][2], t.m[2][2]} }
func (t Transform3D) Origin() Point3D { return Point3D{t.m[0][3], t.m[1][3], t.m[2][3]} }

func (t Transform3D) IsRightHanded() bool {
	return t.BasisX().Cross(t.BasisY()).Dot(t.BasisZ()) > 0
}

func (t Transform3D) OfPoint(p Point3D) Point3D {
	return Point3D{
		t.m[0][0]*p.X + t.m[0][1]*p.Y + t.m[0][2]*p.Z + t.m[0][3],
		t.m[1][0]*p.X + t.m[1][1]*p.Y + t.m[1][2]*p.Z + t.m[1][3],
		t.m[2][0]*p.X + t.m[2][1]*p.Y + t.m[2][2]*p.Z + t.m[2][3],
	}
}

func (t Transform3D) OfVector(v Vector3D) Vector3D {
	return Vector3D{
		t.m[0][0]*v.X + t.m[0][1]*v.Y + t.m[0][2]*v.Z,
		t.m[1][0]*v.X + t.m[1][1]*v.Y + t.m[1][2]*v.Z,
		t.m[2][0]*v.X + t.m[2][1]*v.Y + t.m[2][2]*v.Z,
	}
}

// Multiply composes the transforms so that other is applied first.
func (t Transform3D) Multiply(other Transform3D) Transform3D {
	product, err := t.Matrix().Mul(other.Matrix())
	if err != nil {
		fatalf("multiplying transforms: %v", err)
	}
	result, err := Transform3DFromMatrix(product)
	if err != nil {
		fatalf("multiplying transforms: %v", err)
	}
	return result
}

func (t Transform3D) Inverse() (Transform3D, error) {
	inverse, err := t.Matrix().Inverse()
	if err != nil {
		return Transform3D{}, errors.Wrap(err, "inverting transform")
	}
	return Transform3DFromMatrix(inverse)
}

func (t Transform3D) Matrix() matrix.Matrix[float64] {
	m := matrix.New[float64](4, 4)
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			m.Set(i, j, t.m[i][j])
		}
	}
	return m
}

func (t Transform3D) IsEqualTo(o Transform3D) bool {
	return t.Matrix().Equal(o.Matrix(), Tolerance())
}
