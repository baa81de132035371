package geometry

import "fmt"

// Segment2D is the straight piece between two points.
type Segment2D struct {
	Start, End Point2D
}

func (s Segment2D) StartPoint() Point2D { return s.Start }
func (s Segment2D) EndPoint() Point2D { return s.End }

func (s Segment2D) Length() float64 { return s.Start.DistanceTo(s.End) }

// Direction is the unit vector from Start to End.
func (s Segment2D) Direction() Vector2D { return s.Start.VectorTo(s.End).Normalize() }

// PointAt interpolates between Start (0) and End (1). Ratios outside of [0, 1]
// extrapolate along the same line.
func (s Segment2D) PointAt(ratio float64) Point2D {
	return s.Start.Add(s.Start.VectorTo(s.End).Scale(ratio))
}

func (s Segment2D) Line() Line2D { return Line2DThroughPoints(s.Start, s.End) }

// Extend grows the segment on both ends by the given fractions of its current
// length. Negative values shrink it.
func (s Segment2D) Extend(start, end float64) Segment2D {
	return Segment2D{s.PointAt(-start), s.PointAt(1 + end)}
}

// IntersectLine returns the crossing with the line when it lies on the segment
// (endpoints included). U is the ratio along the segment.
func (s Segment2D) IntersectLine(l Line2D) (IntersectResult[Point2D], bool) {
	ds, de := l.DistanceTo(s.Start), l.DistanceTo(s.End)
	switch {
	case IsZero(ds) && IsZero(de):
		// Lying along the line. There's no single answer.
		return IntersectResult[Point2D]{}, false
	case IsZero(ds):
		return IntersectResult[Point2D]{Point: s.Start}, true
	case IsZero(de):
		return IntersectResult[Point2D]{Point: s.End, U: 1}, true
	case (ds > 0) == (de > 0):
		return IntersectResult[Point2D]{}, false
	}
	u := ds / (ds - de)
	return IntersectResult[Point2D]{Point: s.PointAt(u), U: u}, true
}

// IntersectSegment finds the crossing of two segments. U is the ratio along s
// and V the ratio along other.
func (s Segment2D) IntersectSegment(other Segment2D) (IntersectResult[Point2D], bool) {
	hit, ok := s.IntersectLine(other.Line())
	if !ok {
		return hit, false
	}
	v, ok := other.ratioOf(hit.Point)
	if !ok {
		return IntersectResult[Point2D]{}, false
	}
	hit.V = v
	return hit, true
}

// IntersectCircle keeps the points where the segment's line crosses the circle
// that fall on the segment. U is the ratio along the segment.
func (s Segment2D) IntersectCircle(c Circle2D) []IntersectResult[Point2D] {
	return s.keepOnSegment(c.IntersectLine(s.Line()))
}

// IntersectArc is IntersectCircle for arcs. V is the fraction of the arc's span
// before the point.
func (s Segment2D) IntersectArc(a Arc2D) []IntersectResult[Point2D] {
	return s.keepOnSegment(a.IntersectLine(s.Line()))
}

func (s Segment2D) keepOnSegment(candidates []IntersectResult[Point2D]) []IntersectResult[Point2D] {
	if IsZero(s.Length()) {
		return nil
	}
	var result []IntersectResult[Point2D]
	for _, candidate := range candidates {
		u, ok := s.ratioOf(candidate.Point)
		if !ok {
			continue
		}
		result = append(result, IntersectResult[Point2D]{Point: candidate.Point, U: u, V: candidate.U})
	}
	return result
}

// Where p falls along the segment, if it's on it at all
func (s Segment2D) ratioOf(p Point2D) (float64, bool) {
	length := s.Length()
	if IsZero(length) {
		return 0, s.Start.IsAlmostEqualTo(p, Tolerance())
	}
	ratio := s.Start.VectorTo(p).Dot(s.Direction()) / length
	tolRatio := Tolerance() / length
	if ratio < -tolRatio || ratio > 1+tolRatio {
		return 0, false
	}
	return ratio, true
}

// PerpendicularLine is the line crossing the segment at a right angle at the
// given ratio.
func (s Segment2D) PerpendicularLine(ratio float64) Line2D {
	return Line2DFromPointAndDirection(s.PointAt(ratio), s.Start.VectorTo(s.End).Vertical())
}

func (s Segment2D) Transformed(t Transform2D) Curve2D {
	return Segment2D{t.OfPoint(s.Start), t.OfPoint(s.End)}
}

func (s Segment2D) Offset(d float64) Curve2D {
	shift := s.Direction().Vertical().Scale(d)
	return Segment2D{s.Start.Add(shift), s.End.Add(shift)}
}

func (s Segment2D) Reversed() Curve2D {
	return Segment2D{s.End, s.Start}
}

func (s Segment2D) String() string {
	return fmt.Sprintf("%v → %v", s.Start, s.End)
}

// Segment3D is the straight piece between two points in space.
type Segment3D struct {
	Start, End Point3D
}

func (s Segment3D) StartPoint() Point3D { return s.Start }
func (s Segment3D) EndPoint() Point3D { return s.End }

func (s Segment3D) Length() float64 { return s.Start.DistanceTo(s.End) }
func (s Segment3D) Direction() Vector3D { return s.Start.VectorTo(s.End).Normalize() }

func (s Segment3D) PointAt(ratio float64) Point3D {
	return s.Start.Add(s.Start.VectorTo(s.End).Scale(ratio))
}

func (s Segment3D) Line() Line3D { return Line3DThroughPoints(s.Start, s.End) }

func (s Segment3D) Extend(start, end float64) Segment3D {
	return Segment3D{s.PointAt(-start), s.PointAt(1 + end)}
}

// OffsetAlong moves the segment sideways by d, in the plane with the given
// normal. Positive d goes to the left of the direction of travel, looking down
// the normal.
func (s Segment3D) OffsetAlong(d float64, normal Vector3D) Segment3D {
	shift := normal.Cross(s.Direction()).Normalize().Scale(d)
	return Segment3D{s.Start.Add(shift), s.End.Add(shift)}
}

func (s Segment3D) Transformed(t Transform3D) Curve3D {
	return Segment3D{t.OfPoint(s.Start), t.OfPoint(s.End)}
}

func (s Segment3D) Reversed() Curve3D {
	return Segment3D{s.End, s.Start}
}

func (s Segment3D) String() string {
	return fmt.Sprintf("%v → %v", s.Start, s.End)
}
