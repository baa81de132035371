package geometry

import (
	"math"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurvePath2D(t *testing.T) {
	bottom := Segment2D{Point2D{0, 0}, Point2D{2, 0}}
	corner, err := Arc2DFromAngle(Point2D{2, 1}, Point2D{2, 0}, math.Pi, true)
	require.NoError(t, err)
	top := Segment2D{Point2D{2, 2}, Point2D{0, 2}}
	left := Segment2D{Point2D{0, 2}, Point2D{0, 0}}

	path, err := NewCurvePath2D(bottom, corner, top)
	require.NoError(t, err)
	assert.Equal(t, 3, path.Len())
	assert.False(t, path.IsClosed())
	assert.InDelta(t, 4+math.Pi, path.Length(), epsilon)

	closed, err := path.Append(left)
	require.NoError(t, err)
	assert.True(t, closed.IsClosed())
	// Appending leaves path alone
	assert.Equal(t, 3, path.Len())

	_, err = path.Append(Segment2D{Point2D{5, 5}, Point2D{6, 6}})
	assert.True(t, errors.Is(err, ErrDiscontinuous))

	_, err = NewCurvePath2D(bottom, top)
	assert.True(t, errors.Is(err, ErrDiscontinuous))

	moved := closed.Transformed(Translation2D(Vector2D{10, 0}))
	assert.True(t, moved.IsClosed())
	assertPoint2D(t, Point2D{10, 0}, moved.Curves()[0].StartPoint())
	assertPoint2D(t, Point2D{12, 2}, moved.Curves()[1].EndPoint())

	assert.True(t, IsContinuous(closed.Curves(), DefaultPointTolerance))
	assert.False(t, IsContinuous([]Curve2D{bottom, top}, DefaultPointTolerance))

	single, err := NewCurvePath2D(bottom)
	require.NoError(t, err)
	assert.False(t, single.IsClosed())
}
