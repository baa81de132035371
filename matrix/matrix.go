// Package matrix is a small dense matrix engine over any float type. It backs
// the homogeneous transforms in the geometry package, but it is general enough
// to be used on its own for small systems.
package matrix

import (
	"fmt"
	"math"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

var (
	ErrDimensionMismatch = errors.New("matrix dimensions do not match")
	ErrNotSquare         = errors.New("matrix is not square")
	ErrSingular          = errors.New("matrix is singular")
	ErrRagged            = errors.New("matrix rows have different lengths")
	ErrEmpty             = errors.New("matrix has no elements")
	ErrOutOfRange        = errors.New("matrix index out of range")
)

// Matrix is a rectangular, row-major matrix. The dimensions are fixed when the
// matrix is built. All the arithmetic methods return fresh matrices and leave
// the receiver alone.
type Matrix[T constraints.Float] struct {
	rows, cols int
	data       []T
}

// New makes a zero matrix with the given shape.
func New[T constraints.Float](rows, cols int) Matrix[T] {
	if rows < 0 || cols < 0 {
		panic(fmt.Sprintf("matrix: negative dimensions %dx%d", rows, cols))
	}
	return Matrix[T]{rows: rows, cols: cols, data: make([]T, rows*cols)}
}

// FromRows copies a slice of rows into a matrix.
func FromRows[T constraints.Float](rows [][]T) (Matrix[T], error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return Matrix[T]{}, ErrEmpty
	}
	m := New[T](len(rows), len(rows[0]))
	for i, row := range rows {
		if len(row) != m.cols {
			return Matrix[T]{}, errors.Wrapf(ErrRagged, "row %d has %d elements, expected %d", i, len(row), m.cols)
		}
		copy(m.data[i*m.cols:], row)
	}
	return m, nil
}

func Identity[T constraints.Float](n int) Matrix[T] {
	m := New[T](n, n)
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}
	return m
}

func (m Matrix[T]) Rows() int { return m.rows }
func (m Matrix[T]) Cols() int { return m.cols }

func (m Matrix[T]) IsSquare() bool { return m.rows == m.cols }

func (m Matrix[T]) inRange(i, j int) bool {
	return i >= 0 && i < m.rows && j >= 0 && j < m.cols
}

// Like slice indexing, a bad index is a programming error and panics. The
// panic value wraps ErrOutOfRange.
func (m Matrix[T]) index(i, j int) int {
	if !m.inRange(i, j) {
		panic(errors.Wrapf(ErrOutOfRange, "element (%d, %d) of %dx%d", i, j, m.rows, m.cols))
	}
	return i*m.cols + j
}

func (m Matrix[T]) At(i, j int) T {
	return m.data[m.index(i, j)]
}

// Set writes one element in place. It's meant for filling in a matrix that was
// just built with New; shared matrices should be changed with With instead.
func (m Matrix[T]) Set(i, j int, v T) {
	m.data[m.index(i, j)] = v
}

// With returns a copy of the matrix with one element replaced.
func (m Matrix[T]) With(i, j int, v T) Matrix[T] {
	result := m.clone()
	result.Set(i, j, v)
	return result
}

// ToRows copies the matrix out as a slice of rows.
func (m Matrix[T]) ToRows() [][]T {
	rows := make([][]T, m.rows)
	for i := range rows {
		rows[i] = make([]T, m.cols)
		copy(rows[i], m.data[i*m.cols:(i+1)*m.cols])
	}
	return rows
}

func (m Matrix[T]) clone() Matrix[T] {
	data := make([]T, len(m.data))
	copy(data, m.data)
	return Matrix[T]{rows: m.rows, cols: m.cols, data: data}
}

func (m Matrix[T]) sameShape(other Matrix[T]) bool {
	return m.rows == other.rows && m.cols == other.cols
}

func (m Matrix[T]) Add(other Matrix[T]) (Matrix[T], error) {
	if !m.sameShape(other) {
		return Matrix[T]{}, errors.Wrapf(ErrDimensionMismatch, "cannot add %dx%d and %dx%d", m.rows, m.cols, other.rows, other.cols)
	}
	result := m.clone()
	for i, v := range other.data {
		result.data[i] += v
	}
	return result, nil
}

func (m Matrix[T]) Sub(other Matrix[T]) (Matrix[T], error) {
	if !m.sameShape(other) {
		return Matrix[T]{}, errors.Wrapf(ErrDimensionMismatch, "cannot subtract %dx%d and %dx%d", m.rows, m.cols, other.rows, other.cols)
	}
	result := m.clone()
	for i, v := range other.data {
		result.data[i] -= v
	}
	return result, nil
}

func (m Matrix[T]) Scale(k T) Matrix[T] {
	result := m.clone()
	for i := range result.data {
		result.data[i] *= k
	}
	return result
}

// Mul computes m × other. The number of columns on the left has to match the
// number of rows on the right.
func (m Matrix[T]) Mul(other Matrix[T]) (Matrix[T], error) {
	if m.cols != other.rows {
		return Matrix[T]{}, errors.Wrapf(ErrDimensionMismatch, "cannot multiply %dx%d by %dx%d", m.rows, m.cols, other.rows, other.cols)
	}
	result := New[T](m.rows, other.cols)
	for i := 0; i < m.rows; i++ {
		for j := 0; j < other.cols; j++ {
			var sum T
			for k := 0; k < m.cols; k++ {
				sum += m.At(i, k) * other.At(k, j)
			}
			result.Set(i, j, sum)
		}
	}
	return result, nil
}

func (m Matrix[T]) Transpose() Matrix[T] {
	result := New[T](m.cols, m.rows)
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			result.Set(j, i, m.At(i, j))
		}
	}
	return result
}

// Cofactor returns the minor matrix left over after removing row m and column
// n. The sign is applied by the callers that need it (Det and Adjoint).
func (m Matrix[T]) Cofactor(row, col int) (Matrix[T], error) {
	if !m.inRange(row, col) {
		return Matrix[T]{}, errors.Wrapf(ErrOutOfRange, "cofactor (%d, %d) of %dx%d", row, col, m.rows, m.cols)
	}
	return m.minor(row, col), nil
}

func (m Matrix[T]) minor(row, col int) Matrix[T] {
	result := New[T](m.rows-1, m.cols-1)
	r := 0
	for i := 0; i < m.rows; i++ {
		if i == row {
			continue
		}
		c := 0
		for j := 0; j < m.cols; j++ {
			if j == col {
				continue
			}
			result.Set(r, c, m.At(i, j))
			c++
		}
		r++
	}
	return result
}

// Det computes the determinant by cofactor expansion along the first row. This
// is O(n!), which is fine for the 3x3 and 4x4 matrices the transforms use, and
// not something you want to throw a 12x12 at.
func (m Matrix[T]) Det() (T, error) {
	if !m.IsSquare() {
		return 0, errors.Wrapf(ErrNotSquare, "determinant of %dx%d", m.rows, m.cols)
	}
	if m.rows == 0 {
		return 0, ErrEmpty
	}
	return m.det(), nil
}

func (m Matrix[T]) det() T {
	switch m.rows {
	case 1:
		return m.data[0]
	case 2:
		return m.data[0]*m.data[3] - m.data[1]*m.data[2]
	}
	var result T
	sign := T(1)
	for j := 0; j < m.cols; j++ {
		if a := m.At(0, j); a != 0 {
			result += sign * a * m.minor(0, j).det()
		}
		sign = -sign
	}
	return result
}

// Adjoint is the adjugate: the transpose of the signed cofactor matrix.
func (m Matrix[T]) Adjoint() (Matrix[T], error) {
	if !m.IsSquare() {
		return Matrix[T]{}, errors.Wrapf(ErrNotSquare, "adjoint of %dx%d", m.rows, m.cols)
	}
	if m.rows == 0 {
		return Matrix[T]{}, ErrEmpty
	}
	result := New[T](m.rows, m.cols)
	if m.rows == 1 {
		result.data[0] = 1
		return result, nil
	}
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			cofactor := m.minor(j, i).det()
			if (i+j)%2 == 1 {
				cofactor = -cofactor
			}
			result.Set(i, j, cofactor)
		}
	}
	return result, nil
}

// Inverse is the adjugate divided by the determinant. Only an exactly zero
// determinant is rejected: the engine has no notion of scale, so a tiny
// determinant may still belong to a perfectly good (just small) transform.
func (m Matrix[T]) Inverse() (Matrix[T], error) {
	det, err := m.Det()
	if err != nil {
		return Matrix[T]{}, err
	}
	if det == 0 || math.IsNaN(float64(det)) {
		return Matrix[T]{}, ErrSingular
	}
	adj, err := m.Adjoint()
	if err != nil {
		return Matrix[T]{}, err
	}
	return adj.Scale(1 / det), nil
}

// Equal compares element-wise within tol.
func (m Matrix[T]) Equal(other Matrix[T], tol T) bool {
	if !m.sameShape(other) {
		return false
	}
	for i, v := range m.data {
		d := v - other.data[i]
		if d < -tol || d > tol {
			return false
		}
	}
	return true
}

func (m Matrix[T]) String() string {
	var sb strings.Builder
	for i := 0; i < m.rows; i++ {
		sb.WriteString("[")
		for j := 0; j < m.cols; j++ {
			if j > 0 {
				sb.WriteString(" ")
			}
			fmt.Fprintf(&sb, "%g", float64(m.At(i, j)))
		}
		sb.WriteString("]")
		if i < m.rows-1 {
			sb.WriteString("\n")
		}
	}
	return sb.String()
}
