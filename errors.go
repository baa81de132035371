package geometry

import "github.com/pkg/errors"

var (
	ErrTransformShape     = errors.New("transform matrix has the wrong shape")
	ErrRadiusMismatch     = errors.New("arc endpoints are not equidistant from the center")
	ErrArcSpan            = errors.New("arc span must be in (0, 2π]")
	ErrDegenerateTriangle = errors.New("triangle is degenerate")
	ErrDiscontinuous      = errors.New("curve does not start where the path ends")
	ErrDegenerateFrame    = errors.New("frame bases are parallel")
)

// Some internal steps can't fail for the inputs we give them (multiplying two
// 3x3 matrices, say), but the matrix engine reports errors anyway. Rather than
// threading impossible errors through every transform, we panic.
func fatalf(format string, args ...interface{}) {
	panic(errors.Errorf(format, args...))
}

var ErrZeroRadius = errors.New("arc radius is zero")
