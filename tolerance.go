package geometry

import (
	"math"
	"sync/atomic"

	"github.com/pkg/errors"
)

// DefaultTolerance is the absolute tolerance every comparison in the package
// starts out with.
const DefaultTolerance = 1e-9

// DefaultPointTolerance is the looser distance used when deciding whether two
// curve ends meet, e.g. for CurvePath2D continuity.
const DefaultPointTolerance = 0.01

var ErrInvalidTolerance = errors.New("tolerance must be a positive finite number")

// The tolerance is global so that every predicate in the package agrees on it.
// It's stored as float bits in an atomic so that a config reload can't race
// with readers.
var tolerance atomic.Uint64

func init() {
	tolerance.Store(math.Float64bits(DefaultTolerance))
}

// Tolerance returns the current absolute comparison tolerance.
func Tolerance() float64 {
	return math.Float64frombits(tolerance.Load())
}

// UseTolerance changes the tolerance for the whole process. Changing it while
// other goroutines are computing is safe, but their results will depend on
// which value they happened to read.
func UseTolerance(t float64) error {
	if !(t > 0) || math.IsInf(t, 0) {
		return errors.Wrapf(ErrInvalidTolerance, "got %v", t)
	}
	tolerance.Store(math.Float64bits(t))
	return nil
}

// To compensate for imprecision in floats, equality is tolerance based. Almost
// every decision in this package (tangent or secant, parallel or not, on the
// edge or inside) goes through one of these.
func Equal(a, b float64) bool {
	return math.Abs(a-b) <= Tolerance()
}

func IsZero(a float64) bool {
	return math.Abs(a) <= Tolerance()
}

// Clamp to [-1, 1] before acos, since a dot product of two unit vectors can
// drift just outside of it.
func clampUnit(x float64) float64 {
	return math.Max(-1, math.Min(1, x))
}

// Normalizes an angle into [0, 2π)
func normalizeAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	// -ε + 2π rounds to 2π for tiny ε
	if a >= 2*math.Pi {
		return 0
	}
	return a
}
