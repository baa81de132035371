package geometry

import (
	"fmt"
	"math"

	"github.com/pkg/errors"
)

// Arc3D is a circular arc in space. Like Arc2D it's kept in a local frame
// centered on the circle, with the arc running from startAngle to endAngle
// counter-clockwise around the frame's basisZ, which is the arc's normal.
type Arc3D struct {
	frame                Transform3D
	radius               float64
	startAngle, endAngle float64
}

// NewArc3D builds an arc from its frame. basisY is made perpendicular to basisX
// in the plane they span, and the normal is basisX × basisY.
func NewArc3D(center Point3D, radius, startAngle, endAngle float64, basisX, basisY Vector3D) (Arc3D, error) {
	if IsZero(radius) {
		return Arc3D{}, ErrZeroRadius
	}
	if err := checkSpan(endAngle-startAngle, radius); err != nil {
		return Arc3D{}, err
	}
	normal := basisX.Normalize().Cross(basisY.Normalize())
	if IsZero(normal.Length()) || math.IsNaN(normal.X) {
		return Arc3D{}, errors.Wrapf(ErrDegenerateFrame, "bases %v and %v", basisX, basisY)
	}
	return Arc3D{
		frame:      arcFrame3D(center, basisX, normal),
		radius:     radius,
		startAngle: startAngle,
		endAngle:   endAngle,
	}, nil
}

// Arc3DThroughPoints builds the arc from start through mid to end. The normal
// is chosen so that the arc runs counter-clockwise around it.
func Arc3DThroughPoints(start, end, mid Point3D) (Arc3D, error) {
	triangle := Triangle3D{start, mid, end}
	center, err := triangle.CircumCenter()
	if err != nil {
		return Arc3D{}, errors.Wrap(err, "arc through collinear points")
	}
	frame := arcFrame3D(center, center.VectorTo(start), triangle.Normal())
	span := arcAngleInFrame(frame, end)
	radius := center.DistanceTo(start)
	return Arc3D{frame: frame, radius: radius, endAngle: span}, nil
}

// Arc3DFromAngle sweeps start around the axis through center along normal, by
// angle (counter-clockwise looking down the normal). A negative angle sweeps
// the other way.
func Arc3DFromAngle(center, start Point3D, normal Vector3D, angle float64) (Arc3D, error) {
	if angle < 0 {
		angle, normal = -angle, normal.Negate()
	}
	toStart := center.VectorTo(start)
	radius := toStart.Length()
	if IsZero(radius) {
		return Arc3D{}, ErrZeroRadius
	}
	if !toStart.IsPerpendicular(normal) {
		return Arc3D{}, errors.Wrap(ErrRadiusMismatch, "start point is not in the plane of the arc")
	}
	if err := checkSpan(angle, radius); err != nil {
		return Arc3D{}, err
	}
	return Arc3D{
		frame:    arcFrame3D(center, toStart, normal),
		radius:   radius,
		endAngle: math.Min(angle, 2*math.Pi),
	}, nil
}

func arcFrame3D(center Point3D, toStart, normal Vector3D) Transform3D {
	basisZ := normal.Normalize()
	basisX := toStart.Normalize()
	basisY := basisZ.Cross(basisX).Normalize()
	return NewTransform3D(center, basisX, basisY, basisZ)
}

// The angle of p around the frame's Z axis, measured from its X axis, in
// [0, 2π). Points on the X axis itself come out as a full turn, since that's
// what an arc ending there spans.
func arcAngleInFrame(frame Transform3D, p Point3D) float64 {
	v := frame.Origin().VectorTo(p)
	angle := normalizeAngle(math.Atan2(v.Dot(frame.BasisY()), v.Dot(frame.BasisX())))
	tol := angularTolerance(v.Length())
	if angle < tol || angle > 2*math.Pi-tol {
		return 2 * math.Pi
	}
	return angle
}

func (a Arc3D) Center() Point3D { return a.frame.Origin() }
func (a Arc3D) Radius() float64 { return a.radius }
func (a Arc3D) StartAngle() float64 { return a.startAngle }
func (a Arc3D) EndAngle() float64 { return a.endAngle }
func (a Arc3D) Span() float64 { return a.endAngle - a.startAngle }
func (a Arc3D) Length() float64 { return a.radius * a.Span() }
func (a Arc3D) Frame() Transform3D { return a.frame }
func (a Arc3D) Normal() Vector3D { return a.frame.BasisZ() }

func (a Arc3D) Circle() Circle3D {
	return Circle3D{Center: a.Center(), Normal: a.Normal(), Radius: a.radius}
}

func (a Arc3D) StartPoint() Point3D { return a.PointAt(0) }
func (a Arc3D) EndPoint() Point3D { return a.PointAt(1) }

func (a Arc3D) PointAt(ratio float64) Point3D {
	sin, cos := math.Sincos(a.startAngle + ratio*a.Span())
	return a.frame.OfPoint(Point3D{a.radius * cos, a.radius * sin, 0})
}

func (a Arc3D) TangentAt(ratio float64) Vector3D {
	sin, cos := math.Sincos(a.startAngle + ratio*a.Span())
	return a.frame.OfVector(Vector3D{-sin, cos, 0}).Normalize()
}

// IntersectLine keeps the circle intersections that fall within the arc's
// angular range. U is the fraction of the span before the point.
func (a Arc3D) IntersectLine(l Line3D) []IntersectResult[Point3D] {
	candidates := a.Circle().IntersectLine(l)
	if candidates == nil {
		return nil
	}
	span := a.Span()
	tol := angularTolerance(a.radius)
	var result []IntersectResult[Point3D]
	for _, candidate := range candidates {
		v := a.Center().VectorTo(candidate.Point)
		angle := math.Atan2(v.Dot(a.frame.BasisY()), v.Dot(a.frame.BasisX()))
		before := normalizeAngle(angle - a.startAngle)
		if before > 2*math.Pi-tol {
			before = 0
		}
		if before <= span+tol {
			result = append(result, IntersectResult[Point3D]{Point: candidate.Point, U: math.Min(before/span, 1)})
		}
	}
	return result
}

func (a Arc3D) Extend(start, end float64) (Arc3D, error) {
	span := a.Span()
	result := a
	result.startAngle -= start * span
	result.endAngle += end * span
	if err := checkSpan(result.Span(), a.radius); err != nil {
		return Arc3D{}, errors.Wrap(err, "extending arc")
	}
	return result, nil
}

// Transformed maps the arc through a transform that keeps circles circular.
func (a Arc3D) Transformed(t Transform3D) Curve3D {
	basisX := t.OfVector(a.frame.BasisX())
	basisY := t.OfVector(a.frame.BasisY())
	result := a
	result.radius = a.radius * basisX.Length()
	result.frame = arcFrame3D(t.OfPoint(a.Center()), basisX, basisX.Cross(basisY))
	return result
}

// Offset grows the radius by d.
func (a Arc3D) Offset(d float64) Arc3D {
	result := a
	result.radius += d
	return result
}

// Reversed runs the arc backwards: it starts at the old end and turns around
// the opposite normal.
func (a Arc3D) Reversed() Curve3D {
	center := a.Center()
	return Arc3D{
		frame:    arcFrame3D(center, center.VectorTo(a.EndPoint()), a.Normal().Negate()),
		radius:   a.radius,
		endAngle: a.Span(),
	}
}

func (a Arc3D) String() string {
	return fmt.Sprintf("arc(%v, r=%g, n=%v, %v → %v)", a.Center(), a.radius, a.Normal(), a.StartPoint(), a.EndPoint())
}
