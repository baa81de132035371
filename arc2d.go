package geometry

import (
	"fmt"
	"math"

	"github.com/pkg/errors"
)

// Arc2D is a circular arc. It lives in a local frame whose origin is the
// center: the arc runs from startAngle to endAngle measured from the frame's
// basisX towards its basisY. A frame with basisY clockwise from basisX
// (left-handed) makes the arc run clockwise in world coordinates.
//
// The constructors always put basisX on the start point, so startAngle is 0
// until the arc is extended.
type Arc2D struct {
	frame                Transform2D
	radius               float64
	startAngle, endAngle float64
}

// NewArc2D builds an arc from its frame directly. The span (end - start) must
// be in (0, 2π]. Only the direction of basisX is used as given; basisY just
// picks the side, and is replaced by the unit vector perpendicular to basisX on
// that side.
func NewArc2D(center Point2D, radius, startAngle, endAngle float64, basisX, basisY Vector2D) (Arc2D, error) {
	if IsZero(radius) {
		return Arc2D{}, ErrZeroRadius
	}
	if err := checkSpan(endAngle-startAngle, radius); err != nil {
		return Arc2D{}, err
	}
	bx, by := basisX.Normalize(), basisY.Normalize()
	side := bx.Cross(by)
	if IsZero(side) || math.IsNaN(side) {
		return Arc2D{}, errors.Wrapf(ErrDegenerateFrame, "bases %v and %v", basisX, basisY)
	}
	return Arc2D{
		frame:      arcFrame(center, bx, side > 0),
		radius:     radius,
		startAngle: startAngle,
		endAngle:   endAngle,
	}, nil
}

func checkSpan(span, radius float64) error {
	if span <= 0 || span > 2*math.Pi+angularTolerance(radius) {
		return errors.Wrapf(ErrArcSpan, "got %v", span)
	}
	return nil
}

// The tolerance is a distance, so on a circle it's worth tol/r radians.
func angularTolerance(radius float64) float64 {
	return Tolerance() / radius
}

// Arc2DThroughPoints builds the arc that starts at start, passes through mid,
// and ends at end. The three points must not be collinear.
func Arc2DThroughPoints(start, end, mid Point2D) (Arc2D, error) {
	// Walking start → mid → end turns the same way as the arc does.
	triangle := Triangle2D{start, mid, end}
	center, err := triangle.CircumCenter()
	if err != nil {
		return Arc2D{}, errors.Wrap(err, "arc through collinear points")
	}
	return Arc2DFromEndpoints(center, start, end, triangle.IsCounterClockwise())
}

// Arc2DFromEndpoints builds the arc around center from start to end, turning
// counter-clockwise if ccw is set. Both points have to be the same distance
// from center. Coincident endpoints give a full circle.
func Arc2DFromEndpoints(center, start, end Point2D, ccw bool) (Arc2D, error) {
	r1, r2 := center.DistanceTo(start), center.DistanceTo(end)
	if !Equal(r1, r2) {
		return Arc2D{}, errors.Wrapf(ErrRadiusMismatch, "radii %v and %v", r1, r2)
	}
	radius := (r1 + r2) / 2
	if IsZero(radius) {
		return Arc2D{}, ErrZeroRadius
	}

	toStart, toEnd := center.VectorTo(start), center.VectorTo(end)
	span := sweepAngle(toStart, toEnd, ccw)
	tol := angularTolerance(radius)
	if start.IsAlmostEqualTo(end, Tolerance()) || span < tol || span > 2*math.Pi-tol {
		span = 2 * math.Pi
	}
	return Arc2D{
		frame:    arcFrame(center, toStart, ccw),
		radius:   radius,
		endAngle: span,
	}, nil
}

// Arc2DFromAngle sweeps start around center by angle, counter-clockwise if ccw
// is set. A negative angle sweeps the other way.
func Arc2DFromAngle(center, start Point2D, angle float64, ccw bool) (Arc2D, error) {
	if angle < 0 {
		angle, ccw = -angle, !ccw
	}
	radius := center.DistanceTo(start)
	if IsZero(radius) {
		return Arc2D{}, ErrZeroRadius
	}
	if err := checkSpan(angle, radius); err != nil {
		return Arc2D{}, err
	}
	return Arc2D{
		frame:    arcFrame(center, center.VectorTo(start), ccw),
		radius:   radius,
		endAngle: math.Min(angle, 2*math.Pi),
	}, nil
}

func arcFrame(center Point2D, toStart Vector2D, ccw bool) Transform2D {
	basisX := toStart.Normalize()
	basisY := basisX.Vertical()
	if !ccw {
		basisY = basisY.Negate()
	}
	return NewTransform2D(center, basisX, basisY)
}

// The angle needed to turn from one vector to another going the given way, in
// [0, 2π)
func sweepAngle(from, to Vector2D, ccw bool) float64 {
	if ccw {
		return from.CcwAngleTo(to)
	}
	return to.CcwAngleTo(from)
}

func (a Arc2D) Center() Point2D { return a.frame.Origin() }
func (a Arc2D) Radius() float64 { return a.radius }
func (a Arc2D) StartAngle() float64 { return a.startAngle }
func (a Arc2D) EndAngle() float64 { return a.endAngle }
func (a Arc2D) Span() float64 { return a.endAngle - a.startAngle }
func (a Arc2D) Length() float64 { return a.radius * a.Span() }
func (a Arc2D) Frame() Transform2D { return a.frame }
func (a Arc2D) IsCounterClockwise() bool { return a.frame.IsRightHanded() }

func (a Arc2D) Circle() Circle2D {
	return Circle2D{Center: a.Center(), Radius: a.radius}
}

func (a Arc2D) StartPoint() Point2D { return a.PointAt(0) }
func (a Arc2D) EndPoint() Point2D { return a.PointAt(1) }

func (a Arc2D) angleAt(ratio float64) float64 {
	return a.startAngle + ratio*a.Span()
}

// PointAt walks the given fraction of the way along the arc.
func (a Arc2D) PointAt(ratio float64) Point2D {
	sin, cos := math.Sincos(a.angleAt(ratio))
	return a.frame.OfPoint(Point2D{a.radius * cos, a.radius * sin})
}

// TangentAt is the unit tangent in the direction of travel.
func (a Arc2D) TangentAt(ratio float64) Vector2D {
	sin, cos := math.Sincos(a.angleAt(ratio))
	return a.frame.OfVector(Vector2D{-sin, cos}).Normalize()
}

// IntersectLine intersects the line with the full circle first, then keeps the
// points that are on the arc. A point P is on the arc when the angle from the
// start to P plus the angle from P to the end (both measured in the arc's
// direction of travel) adds up to the span. For points off the arc the sum
// comes out a full turn larger. U is the fraction of the span before P.
func (a Arc2D) IntersectLine(l Line2D) []IntersectResult[Point2D] {
	candidates := a.Circle().IntersectLine(l)
	if candidates == nil {
		return nil
	}

	ccw := a.IsCounterClockwise()
	center := a.Center()
	toStart := center.VectorTo(a.StartPoint())
	toEnd := center.VectorTo(a.EndPoint())
	span := a.Span()
	tol := angularTolerance(a.radius)

	// A tiny negative cross product turns an angle of ~0 into ~2π.
	wrap := func(angle float64) float64 {
		if angle > 2*math.Pi-tol {
			return 0
		}
		return angle
	}

	var result []IntersectResult[Point2D]
	for _, candidate := range candidates {
		toPoint := center.VectorTo(candidate.Point)
		before := wrap(sweepAngle(toStart, toPoint, ccw))
		if span >= 2*math.Pi-tol {
			result = append(result, IntersectResult[Point2D]{Point: candidate.Point, U: before / span})
			continue
		}
		after := wrap(sweepAngle(toPoint, toEnd, ccw))
		if math.Abs(before+after-span) <= tol {
			result = append(result, IntersectResult[Point2D]{Point: candidate.Point, U: before / span})
		}
	}
	return result
}

// Extend grows the arc backwards from the start and forwards from the end, by
// fractions of the current span. The result can't go beyond a full circle.
func (a Arc2D) Extend(start, end float64) (Arc2D, error) {
	span := a.Span()
	result := a
	result.startAngle -= start * span
	result.endAngle += end * span
	if err := checkSpan(result.Span(), a.radius); err != nil {
		return Arc2D{}, errors.Wrap(err, "extending arc")
	}
	return result, nil
}

// Transformed maps the arc through t. This is only meaningful for transforms
// that keep circles circular (rigid motions, reflections and uniform scales).
// A reflection flips the direction of travel along with the frame.
func (a Arc2D) Transformed(t Transform2D) Curve2D {
	basisX := t.OfVector(a.frame.BasisX())
	basisY := t.OfVector(a.frame.BasisY())
	result := a
	result.radius = a.radius * basisX.Length()
	result.frame = NewTransform2D(t.OfPoint(a.Center()), basisX.Normalize(), basisY.Normalize())
	return result
}

// Offset grows the radius by d, keeping the center and angles.
func (a Arc2D) Offset(d float64) Curve2D {
	result := a
	result.radius += d
	return result
}

// Reversed runs the same arc from the end back to the start.
func (a Arc2D) Reversed() Curve2D {
	result := a
	result.frame = arcFrame(a.Center(), a.Center().VectorTo(a.EndPoint()), !a.IsCounterClockwise())
	result.startAngle = 0
	result.endAngle = a.Span()
	return result
}

func (a Arc2D) String() string {
	direction := "cw"
	if a.IsCounterClockwise() {
		direction = "ccw"
	}
	return fmt.Sprintf("arc(%v, r=%g, %v → %v, %s)", a.Center(), a.radius, a.StartPoint(), a.EndPoint(), direction)
}
