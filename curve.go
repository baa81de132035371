package geometry

import (
	"math"

	"github.com/pkg/errors"
)

// Curve2D is a bounded planar curve with a start and an end. It is implemented
// by Segment2D and Arc2D.
type Curve2D interface {
	StartPoint() Point2D
	EndPoint() Point2D
	Length() float64
	Transformed(t Transform2D) Curve2D
	// Offset moves the curve sideways by d. Segments move to the left of their
	// direction of travel; arcs grow their radius.
	Offset(d float64) Curve2D
	Reversed() Curve2D
}

// Curve3D is a bounded curve in space, implemented by Segment3D and Arc3D.
type Curve3D interface {
	StartPoint() Point3D
	EndPoint() Point3D
	Length() float64
	Transformed(t Transform3D) Curve3D
	Reversed() Curve3D
}

var (
	_ Curve2D = Segment2D{}
	_ Curve2D = Arc2D{}
	_ Curve3D = Segment3D{}
	_ Curve3D = Arc3D{}
)

// IsContinuous reports whether each curve starts where the previous one ends,
// within tol.
func IsContinuous(curves []Curve2D, tol float64) bool {
	for i := 1; i < len(curves); i++ {
		if !curves[i-1].EndPoint().IsAlmostEqualTo(curves[i].StartPoint(), tol) {
			return false
		}
	}
	return true
}

// IsPolylineContinuous is IsContinuous for a chain of 3D segments.
func IsPolylineContinuous(segments []Segment3D, tol float64) bool {
	for i := 1; i < len(segments); i++ {
		if !segments[i-1].End.IsAlmostEqualTo(segments[i].Start, tol) {
			return false
		}
	}
	return true
}

// OffsetPolyline offsets a chain of segments lying in the plane with the given
// normal, the same way Segment3D.OffsetAlong offsets a single one. Corners are
// mitered: consecutive offset segments meet on the bisector of the corner, so
// the result stays a connected chain.
func OffsetPolyline(segments []Segment3D, d float64, normal Vector3D) ([]Segment3D, error) {
	if !IsPolylineContinuous(segments, DefaultPointTolerance) {
		return nil, errors.Wrap(ErrDiscontinuous, "offsetting polyline")
	}
	if len(segments) == 0 {
		return nil, nil
	}
	side := func(s Segment3D) Vector3D {
		return normal.Cross(s.Direction()).Normalize()
	}

	result := make([]Segment3D, 0, len(segments))
	start := segments[0].Start.Add(side(segments[0]).Scale(d))
	for i := 0; i < len(segments)-1; i++ {
		current, next := segments[i], segments[i+1]
		var end Point3D
		if current.Direction().IsParallel(next.Direction()) {
			end = current.End.Add(side(current).Scale(d))
		} else {
			// The miter runs along the bisector of the two offset directions, and has
			// to be longer than d to reach both offset lines.
			miter := side(current).Add(side(next)).Normalize()
			halfTurn := current.Direction().AngleTo(next.Direction()) / 2
			end = current.End.Add(miter.Scale(d / math.Cos(halfTurn)))
		}
		result = append(result, Segment3D{start, end})
		start = end
	}
	last := segments[len(segments)-1]
	result = append(result, Segment3D{start, last.End.Add(side(last).Scale(d))})
	return result, nil
}
