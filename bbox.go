package geometry

import "math"

// BBox2D is an axis aligned box. The zero value is a box around the origin
// with no size, so build boxes that should start empty with BBox2DOf.
type BBox2D struct {
	Min, Max Point2D
}

// BBox2DOf is the smallest box around the points. With no points, it returns
// an inverted box that acts as the identity for Union.
func BBox2DOf(points ...Point2D) BBox2D {
	box := BBox2D{
		Min: Point2D{math.Inf(1), math.Inf(1)},
		Max: Point2D{math.Inf(-1), math.Inf(-1)},
	}
	for _, p := range points {
		box.Min = Point2D{math.Min(box.Min.X, p.X), math.Min(box.Min.Y, p.Y)}
		box.Max = Point2D{math.Max(box.Max.X, p.X), math.Max(box.Max.Y, p.Y)}
	}
	return box
}

func (b BBox2D) IsEmpty() bool {
	return b.Min.X > b.Max.X || b.Min.Y > b.Max.Y
}

// Union is the smallest box holding both. Empty boxes don't count.
func (b BBox2D) Union(o BBox2D) BBox2D {
	switch {
	case b.IsEmpty():
		return o
	case o.IsEmpty():
		return b
	}
	return BBox2DOf(b.Min, b.Max, o.Min, o.Max)
}

func (b BBox2D) Contains(p Point2D) bool {
	tol := Tolerance()
	return p.X >= b.Min.X-tol && p.X <= b.Max.X+tol &&
		p.Y >= b.Min.Y-tol && p.Y <= b.Max.Y+tol
}

func (b BBox2D) Center() Point2D {
	return Point2D{(b.Min.X + b.Max.X) / 2, (b.Min.Y + b.Max.Y) / 2}
}

func (b BBox2D) Size() Vector2D {
	return b.Min.VectorTo(b.Max)
}

type BBox3D struct {
	Min, Max Point3D
}

func BBox3DOf(points ...Point3D) BBox3D {
	box := BBox3D{
		Min: Point3D{math.Inf(1), math.Inf(1), math.Inf(1)},
		Max: Point3D{math.Inf(-1), math.Inf(-1), math.Inf(-1)},
	}
	for _, p := range points {
		box.Min = Point3D{math.Min(box.Min.X, p.X), math.Min(box.Min.Y, p.Y), math.Min(box.Min.Z, p.Z)}
		box.Max = Point3D{math.Max(box.Max.X, p.X), math.Max(box.Max.Y, p.Y), math.Max(box.Max.Z, p.Z)}
	}
	return box
}

func (b BBox3D) IsEmpty() bool {
	return b.Min.X > b.Max.X || b.Min.Y > b.Max.Y || b.Min.Z > b.Max.Z
}

func (b BBox3D) Union(o BBox3D) BBox3D {
	switch {
	case b.IsEmpty():
		return o
	case o.IsEmpty():
		return b
	}
	return BBox3DOf(b.Min, b.Max, o.Min, o.Max)
}

func (b BBox3D) Contains(p Point3D) bool {
	tol := Tolerance()
	return p.X >= b.Min.X-tol && p.X <= b.Max.X+tol &&
		p.Y >= b.Min.Y-tol && p.Y <= b.Max.Y+tol &&
		p.Z >= b.Min.Z-tol && p.Z <= b.Max.Z+tol
}

func (b BBox3D) Center() Point3D {
	return b.Min.Add(b.Size().Scale(0.5))
}

func (b BBox3D) Size() Vector3D {
	return b.Min.VectorTo(b.Max)
}

// Bounding boxes of the 2D shapes. These are what the scene renderer uses to
// fit a drawing to the canvas.

func (s Segment2D) Bounds() BBox2D { return BBox2DOf(s.Start, s.End) }

func (c Circle2D) Bounds() BBox2D {
	r := Vector2D{c.Radius, c.Radius}
	return BBox2DOf(c.Center.Sub(r), c.Center.Add(r))
}

func (t Triangle2D) Bounds() BBox2D { return BBox2DOf(t.A, t.B, t.C) }

// An arc's box is set by its endpoints, plus whichever of the circle's four
// extreme points the arc passes.
func (a Arc2D) Bounds() BBox2D {
	points := []Point2D{a.StartPoint(), a.EndPoint()}
	center := a.Center()
	toStart := center.VectorTo(a.StartPoint())
	ccw := a.IsCounterClockwise()
	for _, axis := range []Vector2D{{1, 0}, {0, 1}, {-1, 0}, {0, -1}} {
		if sweepAngle(toStart, axis, ccw) <= a.Span() {
			points = append(points, center.Add(axis.Scale(a.radius)))
		}
	}
	return BBox2DOf(points...)
}
