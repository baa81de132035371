package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const epsilon = 1e-9

func assertPoint2D(t *testing.T, expected, actual Point2D, msgAndArgs ...interface{}) {
	t.Helper()
	assert.InDelta(t, expected.X, actual.X, epsilon, msgAndArgs...)
	assert.InDelta(t, expected.Y, actual.Y, epsilon, msgAndArgs...)
}

func assertPoint3D(t *testing.T, expected, actual Point3D, msgAndArgs ...interface{}) {
	t.Helper()
	assert.InDelta(t, expected.X, actual.X, epsilon, msgAndArgs...)
	assert.InDelta(t, expected.Y, actual.Y, epsilon, msgAndArgs...)
	assert.InDelta(t, expected.Z, actual.Z, epsilon, msgAndArgs...)
}

func assertVector2D(t *testing.T, expected, actual Vector2D, msgAndArgs ...interface{}) {
	t.Helper()
	assert.InDelta(t, expected.X, actual.X, epsilon, msgAndArgs...)
	assert.InDelta(t, expected.Y, actual.Y, epsilon, msgAndArgs...)
}

func assertVector3D(t *testing.T, expected, actual Vector3D, msgAndArgs ...interface{}) {
	t.Helper()
	assert.InDelta(t, expected.X, actual.X, epsilon, msgAndArgs...)
	assert.InDelta(t, expected.Y, actual.Y, epsilon, msgAndArgs...)
	assert.InDelta(t, expected.Z, actual.Z, epsilon, msgAndArgs...)
}

// Runs fn with a different global tolerance, putting the old one back after.
func withTolerance(t *testing.T, tol float64, fn func()) {
	t.Helper()
	old := Tolerance()
	assert.NoError(t, UseTolerance(tol))
	defer func() { _ = UseTolerance(old) }()
	fn()
}
