package geometry

import "github.com/pkg/errors"

// CurvePath2D is a chain of curves where each one starts where the previous
// one ends. Continuity is checked with DefaultPointTolerance.
type CurvePath2D struct {
	curves []Curve2D
}

func NewCurvePath2D(curves ...Curve2D) (CurvePath2D, error) {
	var path CurvePath2D
	for i, c := range curves {
		var err error
		if path, err = path.Append(c); err != nil {
			return CurvePath2D{}, errors.Wrapf(err, "curve %d", i)
		}
	}
	return path, nil
}

// Append returns a new path with c added at the end.
func (p CurvePath2D) Append(c Curve2D) (CurvePath2D, error) {
	if n := len(p.curves); n > 0 {
		last := p.curves[n-1]
		if !last.EndPoint().IsAlmostEqualTo(c.StartPoint(), DefaultPointTolerance) {
			return p, errors.Wrapf(ErrDiscontinuous, "path ends at %v, curve starts at %v", last.EndPoint(), c.StartPoint())
		}
	}
	curves := make([]Curve2D, len(p.curves), len(p.curves)+1)
	copy(curves, p.curves)
	return CurvePath2D{append(curves, c)}, nil
}

func (p CurvePath2D) Len() int { return len(p.curves) }

// Curves copies out the curves in order.
func (p CurvePath2D) Curves() []Curve2D {
	return append([]Curve2D(nil), p.curves...)
}

func (p CurvePath2D) Length() float64 {
	var length float64
	for _, c := range p.curves {
		length += c.Length()
	}
	return length
}

// IsClosed is true when the path ends where it started. A single curve never
// counts, even a full circle.
func (p CurvePath2D) IsClosed() bool {
	if len(p.curves) <= 1 {
		return false
	}
	return p.curves[0].StartPoint().IsAlmostEqualTo(p.curves[len(p.curves)-1].EndPoint(), DefaultPointTolerance)
}

func (p CurvePath2D) Transformed(t Transform2D) CurvePath2D {
	curves := make([]Curve2D, len(p.curves))
	for i, c := range p.curves {
		curves[i] = c.Transformed(t)
	}
	return CurvePath2D{curves}
}
