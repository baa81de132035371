// Package geometry is a small 2D/3D analytic geometry kernel. It has value
// types for vectors, points, lines, planes, circles, arcs, segments and
// triangles, homogeneous transforms built on the matrix package, and the
// distance, projection, intersection and containment queries between them.
//
// Every value is immutable; operations that "change" something return a new
// value. All comparisons are made against a global tolerance (see Tolerance
// and UseTolerance).
//
// Queries that may have no answer return either a (value, bool) pair or a nil
// slice. Errors are reserved for inputs that can't describe the requested
// shape at all, like an arc whose endpoints lie on different circles.
package geometry

// Location is the set of point types the generic result records can carry.
type Location interface {
	Point2D | Point3D
}

// IntersectResult is one intersection point. U and V are the parameters of the
// point along the first and second operand, for the operands that have one
// (segments and arcs use [0, 1]). Unbounded operands leave them at zero.
type IntersectResult[P Location] struct {
	Point P
	U, V  float64
}

// ProjectionResult is the closest point on a shape to a query point.
// Parameter is the position along the shape when it has one; Distance is
// signed for lines and planes and unsigned otherwise.
type ProjectionResult[P Location] struct {
	Point     P
	Parameter float64
	Distance  float64
}
