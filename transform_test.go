package geometry

import (
	"math"
	"testing"

	"github.com/osuushi/geometry/matrix"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransform2D(t *testing.T) {
	t.Run("translation", func(t *testing.T) {
		tr := Translation2D(Vector2D{0.5, 0})
		assertPoint2D(t, Point2D{1, 0.5}, tr.OfPoint(Point2D{0.5, 0.5}))
		// Vectors don't move
		assertVector2D(t, Vector2D{0.5, 0.5}, tr.OfVector(Vector2D{0.5, 0.5}))
	})

	t.Run("scale at point", func(t *testing.T) {
		tr := ScaleAt2D(0.1, 0.5, Point2D{1, 1})
		assertPoint2D(t, Point2D{1.1, 1.5}, tr.OfPoint(Point2D{2, 2}))
	})

	t.Run("rotation", func(t *testing.T) {
		assertPoint2D(t, Point2D{0, 1}, Rotation2D(math.Pi/2).OfPoint(Point2D{1, 0}))
		assertPoint2D(t, Point2D{2, 0}, RotationAt2D(math.Pi, Point2D{1, 0}).OfPoint(Point2D{0, 0}))
	})

	t.Run("reflection", func(t *testing.T) {
		assertPoint2D(t, Point2D{-1, 1}, Reflection2D(Vector2D{0, 1}).OfPoint(Point2D{1, 1}))
		assertPoint2D(t, Point2D{1, -1}, Reflection2D(Vector2D{3, 0}).OfPoint(Point2D{1, 1}))
		assertPoint2D(t, Point2D{0, 2}, ReflectionAt2D(Vector2D{0, 1}, Point2D{1, 1}).OfPoint(Point2D{2, 2}))
		assertPoint2D(t, Point2D{0, 1}, Reflection2D(Vector2D{1, 1}).OfPoint(Point2D{1, 0}))
		assertPoint2D(t, Point2D{-2, 1}, Reflection2D(Vector2D{-1, 1}).OfPoint(Point2D{-1, 2}))
		assert.False(t, Reflection2D(Vector2D{1, 1}).IsRightHanded())
		assert.True(t, Rotation2D(1).IsRightHanded())
	})

	t.Run("multiply applies the argument first", func(t *testing.T) {
		tr := Translation2D(Vector2D{1, 0}).Multiply(Rotation2D(math.Pi / 2))
		assertPoint2D(t, Point2D{1, 1}, tr.OfPoint(Point2D{1, 0}))
	})

	t.Run("inverse round trip", func(t *testing.T) {
		tr := Translation2D(Vector2D{1, 2}).Multiply(Rotation2D(0.3)).Multiply(Scale2D(2, 3))
		inverse, err := tr.Inverse()
		require.NoError(t, err)
		for _, p := range []Point2D{{0, 0}, {1, -4}, {-2.5, 7}} {
			assertPoint2D(t, p, inverse.OfPoint(tr.OfPoint(p)))
		}
		assert.True(t, tr.Multiply(inverse).IsEqualTo(Identity2D()))
	})

	t.Run("singular", func(t *testing.T) {
		_, err := Scale2D(0, 1).Inverse()
		assert.True(t, errors.Is(err, matrix.ErrSingular))
	})

	t.Run("from matrix", func(t *testing.T) {
		m, err := matrix.FromRows([][]float64{{0, -1, 3}, {1, 0, 4}, {0, 0, 1}})
		require.NoError(t, err)
		tr, err := Transform2DFromMatrix(m)
		require.NoError(t, err)
		assertVector2D(t, Vector2D{0, 1}, tr.BasisX())
		assertVector2D(t, Vector2D{-1, 0}, tr.BasisY())
		assertPoint2D(t, Point2D{3, 4}, tr.Origin())
		assert.True(t, tr.Matrix().Equal(m, epsilon))

		_, err = Transform2DFromMatrix(matrix.Identity[float64](4))
		assert.True(t, errors.Is(err, ErrTransformShape))

		// A projective bottom row can't be represented
		for _, bottom := range [][]float64{{0.5, 0, 1}, {0, 0, 2}, {0, 0, 0}} {
			_, err = Transform2DFromMatrix(m.With(2, 0, bottom[0]).With(2, 1, bottom[1]).With(2, 2, bottom[2]))
			assert.True(t, errors.Is(err, ErrTransformShape), "bottom row %v", bottom)
		}

		// Round-off in the bottom row is dropped
		tr, err = Transform2DFromMatrix(m.With(2, 2, 1+1e-13).With(2, 0, -1e-14))
		require.NoError(t, err)
		assert.Equal(t, [][]float64{{0, -1, 3}, {1, 0, 4}, {0, 0, 1}}, tr.Matrix().ToRows())
	})
}

func TestTransform3D(t *testing.T) {
	t.Run("rotation", func(t *testing.T) {
		rotated := Rotation3D(BasisZ3D(), math.Pi/2).OfVector(Vector3D{1, 1, 0})
		assertVector3D(t, Vector3D{-1, 1, 0}, rotated)
		assert.InDelta(t, math.Pi/4, rotated.AngleTo(BasisY3D()), epsilon)

		// The axis gets normalized
		assert.True(t, Rotation3D(Vector3D{0, 0, 5}, 1).IsEqualTo(Rotation3D(BasisZ3D(), 1)))

		assertPoint3D(t, Point3D{0, 0, 1}, Rotation3D(BasisX3D(), math.Pi/2).OfPoint(Point3D{0, 1, 0}))
		assertPoint3D(t, Point3D{1, 0, 0}, Rotation3D(Vector3D{1, 1, 1}, 2*math.Pi/3).OfPoint(Point3D{0, 0, 1}))
		assertPoint3D(t, Point3D{2, 0, 0}, RotationAt3D(BasisZ3D(), math.Pi, Point3D{1, 0, 0}).OfPoint(Point3D{}))
	})

	t.Run("reflection", func(t *testing.T) {
		assertPoint3D(t, Point3D{-1, 1, 0}, Reflection3D(PlaneYZ()).OfPoint(Point3D{1, 1, 0}))

		plane := Plane3DFromNormalAndPoint(Vector3D{1, 1, 0}, Point3D{})
		assertPoint3D(t, Point3D{0, -1, 0}, Reflection3D(plane).OfPoint(Point3D{1, 0, 0}))

		plane = Plane3DFromNormalAndPoint(Vector3D{1, 1, 0}, Point3D{1, 0, 0})
		assertPoint3D(t, Point3D{1, 1, 0}, Reflection3D(plane).OfPoint(Point3D{}))

		plane = Plane3DFromNormalAndPoint(Vector3D{1, -1, 0}, Point3D{1, 0, 0})
		assertPoint3D(t, Point3D{1, -1, 0}, Reflection3D(plane).OfPoint(Point3D{}))

		assert.False(t, Reflection3D(plane).IsRightHanded())
	})

	t.Run("scale and translate", func(t *testing.T) {
		tr := ScaleAt3D(2, 3, 4, Point3D{1, 1, 1})
		assertPoint3D(t, Point3D{3, 4, 5}, tr.OfPoint(Point3D{2, 2, 2}))
		assertVector3D(t, Vector3D{2, 3, 4}, tr.OfVector(Vector3D{1, 1, 1}))
		assertPoint3D(t, Point3D{1, 2, 3}, Translation3D(Vector3D{1, 2, 3}).OfPoint(Point3D{}))
	})

	t.Run("inverse round trip", func(t *testing.T) {
		tr := Translation3D(Vector3D{1, -2, 3}).
			Multiply(Rotation3D(Vector3D{1, 2, 3}, 0.7)).
			Multiply(Scale3D(2, 0.5, 3))
		inverse, err := tr.Inverse()
		require.NoError(t, err)
		for _, p := range []Point3D{{0, 0, 0}, {1, -4, 2}, {-2.5, 7, 0.1}} {
			assertPoint3D(t, p, inverse.OfPoint(tr.OfPoint(p)))
		}
		assert.True(t, inverse.Multiply(tr).IsEqualTo(Identity3D()))
	})

	t.Run("singular", func(t *testing.T) {
		_, err := Scale3D(1, 0, 1).Inverse()
		assert.True(t, errors.Is(err, matrix.ErrSingular))
	})

	t.Run("from matrix", func(t *testing.T) {
		tr, err := Transform3DFromMatrix(Translation3D(Vector3D{1, 2, 3}).Matrix())
		require.NoError(t, err)
		assertPoint3D(t, Point3D{1, 2, 3}, tr.Origin())
		assertVector3D(t, BasisZ3D(), tr.BasisZ())

		_, err = Transform3DFromMatrix(matrix.Identity[float64](3))
		assert.True(t, errors.Is(err, ErrTransformShape))

		_, err = Transform3DFromMatrix(matrix.Identity[float64](4).With(3, 1, 0.25))
		assert.True(t, errors.Is(err, ErrTransformShape))
		_, err = Transform3DFromMatrix(matrix.Identity[float64](4).With(3, 3, 3))
		assert.True(t, errors.Is(err, ErrTransformShape))

		inverse, err := Rotation3D(Vector3D{1, 2, 3}, 0.7).Multiply(Translation3D(Vector3D{-4, 5, 6})).Inverse()
		require.NoError(t, err)
		assert.Equal(t, []float64{0, 0, 0, 1}, inverse.Matrix().ToRows()[3])
	})
}
