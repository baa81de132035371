package geometry

import (
	"math"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSegment2D(t *testing.T) {
	s := Segment2D{Point2D{0, 0}, Point2D{4, 0}}
	assert.InDelta(t, 4, s.Length(), epsilon)
	assertVector2D(t, Vector2D{1, 0}, s.Direction())
	assertPoint2D(t, Point2D{1, 0}, s.PointAt(0.25))

	extended := s.Extend(0.5, 0.25)
	assertPoint2D(t, Point2D{-2, 0}, extended.Start)
	assertPoint2D(t, Point2D{5, 0}, extended.End)

	offset := s.Offset(1).(Segment2D)
	assertPoint2D(t, Point2D{0, 1}, offset.Start)
	assertPoint2D(t, Point2D{4, 1}, offset.End)

	reversed := s.Reversed().(Segment2D)
	assert.Equal(t, s.End, reversed.Start)

	moved := s.Transformed(Rotation2D(math.Pi / 2)).(Segment2D)
	assertPoint2D(t, Point2D{0, 4}, moved.End)

	perpendicular := s.PerpendicularLine(0.5)
	assert.True(t, perpendicular.Contains(Point2D{2, 7}))
	assert.True(t, perpendicular.Contains(Point2D{2, -3}))
}

func TestSegment2DIntersect(t *testing.T) {
	s := Segment2D{Point2D{0, 0}, Point2D{4, 0}}

	hit, ok := s.IntersectLine(Line2DThroughPoints(Point2D{1, -1}, Point2D{1, 1}))
	require.True(t, ok)
	assertPoint2D(t, Point2D{1, 0}, hit.Point)
	assert.InDelta(t, 0.25, hit.U, epsilon)

	hit, ok = s.IntersectLine(Line2DThroughPoints(Point2D{4, -1}, Point2D{4, 1}))
	require.True(t, ok)
	assert.InDelta(t, 1, hit.U, epsilon)

	_, ok = s.IntersectLine(Line2DThroughPoints(Point2D{5, -1}, Point2D{5, 1}))
	assert.False(t, ok)
	_, ok = s.IntersectLine(Line2DFromSlope(0, 0))
	assert.False(t, ok)

	hit, ok = s.IntersectSegment(Segment2D{Point2D{3, -1}, Point2D{3, 3}})
	require.True(t, ok)
	assertPoint2D(t, Point2D{3, 0}, hit.Point)
	assert.InDelta(t, 0.75, hit.U, epsilon)
	assert.InDelta(t, 0.25, hit.V, epsilon)

	_, ok = s.IntersectSegment(Segment2D{Point2D{3, 1}, Point2D{3, 3}})
	assert.False(t, ok)
}

func TestSegment2DIntersectCurves(t *testing.T) {
	s := Segment2D{Point2D{-2, 0}, Point2D{0.5, 0}}
	hits := s.IntersectCircle(Circle2D{Radius: 1})
	require.Len(t, hits, 1)
	assertPoint2D(t, Point2D{-1, 0}, hits[0].Point)
	assert.InDelta(t, 0.4, hits[0].U, epsilon)

	upper, err := Arc2DFromAngle(Point2D{}, Point2D{1, 0}, math.Pi, true)
	require.NoError(t, err)
	hits = Segment2D{Point2D{0, -2}, Point2D{0, 2}}.IntersectArc(upper)
	require.Len(t, hits, 1)
	assertPoint2D(t, Point2D{0, 1}, hits[0].Point)
	assert.InDelta(t, 0.75, hits[0].U, epsilon)
	assert.InDelta(t, 0.5, hits[0].V, epsilon)

	assert.Empty(t, Segment2D{Point2D{1, 1}, Point2D{1, 1}}.IntersectCircle(Circle2D{Radius: 1}))
}

func TestSegment3D(t *testing.T) {
	s := Segment3D{Point3D{0, 0, 0}, Point3D{0, 0, 2}}
	assert.InDelta(t, 2, s.Length(), epsilon)
	assertPoint3D(t, Point3D{0, 0, 1}, s.PointAt(0.5))
	assertVector3D(t, BasisZ3D(), s.Line().Direction())

	offset := s.OffsetAlong(1, BasisX3D())
	// X × Z = -Y
	assertPoint3D(t, Point3D{0, -1, 0}, offset.Start)

	moved := s.Transformed(Translation3D(Vector3D{1, 1, 1})).(Segment3D)
	assertPoint3D(t, Point3D{1, 1, 3}, moved.End)
	assert.Equal(t, s.Start, s.Reversed().EndPoint())
	assertPoint3D(t, Point3D{0, 0, 3}, s.Extend(0, 0.5).End)
}

func TestOffsetPolyline(t *testing.T) {
	polyline := []Segment3D{
		{Point3D{0, 0, 0}, Point3D{2, 0, 0}},
		{Point3D{2, 0, 0}, Point3D{2, 2, 0}},
		{Point3D{2, 2, 0}, Point3D{2, 4, 0}},
	}
	result, err := OffsetPolyline(polyline, 1, BasisZ3D())
	require.NoError(t, err)
	require.Len(t, result, 3)
	assertPoint3D(t, Point3D{0, 1, 0}, result[0].Start)
	assertPoint3D(t, Point3D{1, 1, 0}, result[0].End)
	assertPoint3D(t, Point3D{1, 1, 0}, result[1].Start)
	assertPoint3D(t, Point3D{1, 2, 0}, result[1].End)
	assertPoint3D(t, Point3D{1, 4, 0}, result[2].End)
	assert.True(t, IsPolylineContinuous(result, epsilon))

	_, err = OffsetPolyline([]Segment3D{polyline[0], polyline[2]}, 1, BasisZ3D())
	assert.True(t, errors.Is(err, ErrDiscontinuous))
}
