package geometry

import (
	"fmt"
	"math"

	"github.com/osuushi/geometry/matrix"
	"github.com/pkg/errors"
)

type Triangle2D struct {
	A, B, C Point2D
}

// SignedArea is positive for counter-clockwise triangles and negative for
// clockwise ones.
func (t Triangle2D) SignedArea() float64 {
	return t.A.VectorTo(t.B).Cross(t.A.VectorTo(t.C)) / 2
}

func (t Triangle2D) Area() float64 {
	return math.Abs(t.SignedArea())
}

func (t Triangle2D) IsCounterClockwise() bool {
	n1, n2 := t.A.VectorTo(t.B), t.A.VectorTo(t.C)
	return n1.X*n2.Y > n1.Y*n2.X
}

func (t Triangle2D) IsDegenerate() bool {
	return IsZero(t.SignedArea())
}

// CircumCenter is the center of the circle through all three vertices. It's
// the solution of
//
//	2(B-A)·X = |B|² - |A|²
//	2(C-A)·X = |C|² - |A|²
func (t Triangle2D) CircumCenter() (Point2D, error) {
	if t.IsDegenerate() {
		return Point2D{}, errors.Wrapf(ErrDegenerateTriangle, "no circumcenter for %v", t)
	}
	ab, ac := t.A.VectorTo(t.B), t.A.VectorTo(t.C)
	a2 := t.A.Vector().SquareLength()
	r1 := (t.B.Vector().SquareLength() - a2) / 2
	r2 := (t.C.Vector().SquareLength() - a2) / 2
	det := ab.Cross(ac)
	return Point2D{
		(r1*ac.Y - ab.Y*r2) / det,
		(ab.X*r2 - r1*ac.X) / det,
	}, nil
}

// Contains tests p against the triangle with barycentric coordinates. Points
// on an edge or a vertex (within the tolerance) count as inside only if edge is
// set.
func (t Triangle2D) Contains(p Point2D, edge bool) bool {
	v0, v1, v2 := t.A.VectorTo(t.C), t.A.VectorTo(t.B), t.A.VectorTo(p)
	return barycentricInside(v0.Dot(v0), v0.Dot(v1), v0.Dot(v2), v1.Dot(v1), v1.Dot(v2), edge)
}

// Shared by the 2D and 3D containment tests. The dots are between the edge
// vectors AC (0), AB (1) and the vector to the query point (2).
func barycentricInside(d00, d01, d02, d11, d12 float64, edge bool) bool {
	// den is (2·area)², so this is the same cut as IsDegenerate.
	den := d00*d11 - d01*d01
	if den <= 0 || IsZero(math.Sqrt(den)/2) {
		return false
	}
	u := (d11*d02 - d01*d12) / den
	v := (d00*d12 - d01*d02) / den

	tol := Tolerance()
	if u < -tol || v < -tol || u+v > 1+tol {
		return false
	}
	if u <= tol || v <= tol || u+v >= 1-tol {
		return edge
	}
	return true
}

func (t Triangle2D) String() string {
	return fmt.Sprintf("△(%v, %v, %v)", t.A, t.B, t.C)
}

type Triangle3D struct {
	A, B, C Point3D
}

// IsCounterClockwise looks at the triangle from above, i.e. only at X and Y.
func (t Triangle3D) IsCounterClockwise() bool {
	return Triangle2D{t.A.XY(), t.B.XY(), t.C.XY()}.IsCounterClockwise()
}

func (t Triangle3D) crossOfEdges() Vector3D {
	return t.A.VectorTo(t.B).Cross(t.A.VectorTo(t.C))
}

// Normal follows the right hand rule around A → B → C.
func (t Triangle3D) Normal() Vector3D {
	return t.crossOfEdges().Normalize()
}

func (t Triangle3D) Plane() Plane3D {
	return Plane3DFromNormalAndPoint(t.Normal(), t.A)
}

func (t Triangle3D) Area() float64 {
	return t.crossOfEdges().Length() / 2
}

func (t Triangle3D) IsDegenerate() bool {
	return IsZero(t.Area())
}

// CircumCenter solves the 2D system plus the constraint that the center lies
// in the triangle's plane, with Cramer's rule.
func (t Triangle3D) CircumCenter() (Point3D, error) {
	if t.IsDegenerate() {
		return Point3D{}, errors.Wrapf(ErrDegenerateTriangle, "no circumcenter for %v", t)
	}
	ab, ac, n := t.A.VectorTo(t.B), t.A.VectorTo(t.C), t.Normal()
	a2 := t.A.Vector().SquareLength()
	rhs := []float64{
		(t.B.Vector().SquareLength() - a2) / 2,
		(t.C.Vector().SquareLength() - a2) / 2,
		n.Dot(t.A.Vector()),
	}
	system, err := matrix.FromRows([][]float64{
		{ab.X, ab.Y, ab.Z},
		{ac.X, ac.Y, ac.Z},
		{n.X, n.Y, n.Z},
	})
	if err != nil {
		fatalf("building circumcenter system: %v", err)
	}
	det := mustDet(system)

	var solution [3]float64
	for col := range solution {
		replaced := system
		for row, value := range rhs {
			replaced = replaced.With(row, col, value)
		}
		solution[col] = mustDet(replaced) / det
	}
	return Point3D{solution[0], solution[1], solution[2]}, nil
}

func mustDet(m matrix.Matrix[float64]) float64 {
	det, err := m.Det()
	if err != nil {
		fatalf("determinant: %v", err)
	}
	return det
}

// tripleProduct is the determinant of the matrix whose columns are the vectors
// from p to each vertex. It's six times the signed volume of the tetrahedron
// they form, so it vanishes exactly when p is in the triangle's plane.
func (t Triangle3D) tripleProduct(p Point3D) float64 {
	va, vb, vc := p.VectorTo(t.A), p.VectorTo(t.B), p.VectorTo(t.C)
	m, err := matrix.FromRows([][]float64{
		{va.X, vb.X, vc.X},
		{va.Y, vb.Y, vc.Y},
		{va.Z, vb.Z, vc.Z},
	})
	if err != nil {
		fatalf("building coplanarity matrix: %v", err)
	}
	return mustDet(m)
}

// IsCoplanar checks p against the triangle's plane. The determinant is divided
// by the edge cross product so that it can be compared to a distance.
func (t Triangle3D) IsCoplanar(p Point3D) bool {
	return IsZero(t.tripleProduct(p) / t.crossOfEdges().Length())
}

// Contains is true for points in the triangle (edges included). Seen from a
// point inside, the three vertices subtend angles that add up to a full turn;
// from anywhere else they add up to less.
func (t Triangle3D) Contains(p Point3D) bool {
	if !t.IsCoplanar(p) {
		return false
	}
	va, vb, vc := p.VectorTo(t.A), p.VectorTo(t.B), p.VectorTo(t.C)
	tol := Tolerance()
	if va.Length() <= tol || vb.Length() <= tol || vc.Length() <= tol {
		return true
	}
	sum := va.AngleTo(vb) + vb.AngleTo(vc) + vc.AngleTo(va)
	return Equal(sum, 2*math.Pi)
}

// ContainsProjection tests p against the triangle seen from above, ignoring Z
// on everything.
func (t Triangle3D) ContainsProjection(p Point3D, edge bool) bool {
	flat := Triangle2D{t.A.XY(), t.B.XY(), t.C.XY()}
	return flat.Contains(p.XY(), edge)
}

func (t Triangle3D) containsCoplanar(p Point3D, edge bool) bool {
	v0, v1, v2 := t.A.VectorTo(t.C), t.A.VectorTo(t.B), t.A.VectorTo(p)
	return barycentricInside(v0.Dot(v0), v0.Dot(v1), v0.Dot(v2), v1.Dot(v1), v1.Dot(v2), edge)
}

// IntersectSegment finds where the segment pierces the triangle. Hits on the
// triangle's edges count only if edge is set.
func (t Triangle3D) IntersectSegment(s Segment3D, edge bool) (Point3D, bool) {
	hit, ok := t.Plane().IntersectSegment(s)
	if !ok || !t.containsCoplanar(hit, edge) {
		return Point3D{}, false
	}
	return hit, true
}

func (t Triangle3D) String() string {
	return fmt.Sprintf("△(%v, %v, %v)", t.A, t.B, t.C)
}

// Tetrahedron is four vertices. When D is on the side of A, B, C that the
// counter-clockwise normal of ABC points to, every face's normal points out.
type Tetrahedron struct {
	A, B, C, D Point3D
}

// Face returns one of the four faces, wound so that its normal is outward.
func (t Tetrahedron) Face(i int) (Triangle3D, bool) {
	switch i {
	case 0:
		return Triangle3D{t.C, t.B, t.A}, true
	case 1:
		return Triangle3D{t.A, t.B, t.D}, true
	case 2:
		return Triangle3D{t.B, t.C, t.D}, true
	case 3:
		return Triangle3D{t.C, t.A, t.D}, true
	}
	return Triangle3D{}, false
}

// Volume is positive when the faces are wound outward.
func (t Tetrahedron) Volume() float64 {
	return -Triangle3D{t.A, t.B, t.C}.tripleProduct(t.D) / 6
}
