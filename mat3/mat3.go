// Package mat3 implements the small fixed-size vector and matrix arithmetic
// needed for color conversions. All values are plain arrays, so nothing here
// allocates.
package mat3

import (
	"errors"
	"fmt"
	"math"
)

// ErrSingular is returned when inverting a matrix whose determinant is too
// close to zero.
var ErrSingular = errors.New("singular matrix")

// Vec3 is a 3-component column vector.
type Vec3 [3]Float

// Mat3 is a row-major 3x3 matrix.
type Mat3 [3][3]Float

// Identity is the 3x3 identity matrix.
var Identity = Mat3{
	{1, 0, 0},
	{0, 1, 0},
	{0, 0, 1},
}

// Dot returns the dot product of a and b.
func Dot(a, b Vec3) Float {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

// Scale returns v with every component multiplied by s.
func (v Vec3) Scale(s Float) Vec3 {
	return Vec3{v[0] * s, v[1] * s, v[2] * s}
}

// Diag returns the diagonal matrix with v on its diagonal.
func Diag(v Vec3) Mat3 {
	return Mat3{
		{v[0], 0, 0},
		{0, v[1], 0},
		{0, 0, v[2]},
	}
}

// FromCols builds a matrix from its three columns.
func FromCols(c0, c1, c2 Vec3) Mat3 {
	return Mat3{
		{c0[0], c1[0], c2[0]},
		{c0[1], c1[1], c2[1]},
		{c0[2], c1[2], c2[2]},
	}
}

// Col returns column i of m.
func (m Mat3) Col(i int) Vec3 {
	return Vec3{m[0][i], m[1][i], m[2][i]}
}

// Row returns row i of m.
func (m Mat3) Row(i int) Vec3 {
	return Vec3(m[i])
}

// Apply returns the matrix-vector product m·v.
func (m Mat3) Apply(v Vec3) Vec3 {
	return Vec3{
		m[0][0]*v[0] + m[0][1]*v[1] + m[0][2]*v[2],
		m[1][0]*v[0] + m[1][1]*v[1] + m[1][2]*v[2],
		m[2][0]*v[0] + m[2][1]*v[1] + m[2][2]*v[2],
	}
}

// Mul returns the matrix product a·b, i.e. b is applied first.
func Mul(a, b Mat3) Mat3 {
	var c Mat3
	for i := range 3 {
		for j := range 3 {
			c[i][j] = a[i][0]*b[0][j] + a[i][1]*b[1][j] + a[i][2]*b[2][j]
		}
	}
	return c
}

// Chain composes matrices given in application order: the result applies
// ms[0] first and ms[len(ms)-1] last.
func Chain(ms ...Mat3) Mat3 {
	res := Identity
	for _, m := range ms {
		res = Mul(m, res)
	}
	return res
}

// Transpose returns the transpose of m.
func (m Mat3) Transpose() Mat3 {
	return Mat3{
		{m[0][0], m[1][0], m[2][0]},
		{m[0][1], m[1][1], m[2][1]},
		{m[0][2], m[1][2], m[2][2]},
	}
}

// Det returns the determinant of m.
func (m Mat3) Det() Float {
	return m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
}

// Inverse returns the inverse of m, computed from the adjugate.
// If |det(m)| is below SingularEpsilon, ErrSingular is returned.
func (m Mat3) Inverse() (Mat3, error) {
	a := +(m[1][1]*m[2][2] - m[1][2]*m[2][1])
	b := -(m[1][0]*m[2][2] - m[1][2]*m[2][0])
	c := +(m[1][0]*m[2][1] - m[1][1]*m[2][0])

	det := m[0][0]*a + m[0][1]*b + m[0][2]*c
	if !(abs(det) >= SingularEpsilon) {
		return Mat3{}, fmt.Errorf("%w (det=%g)", ErrSingular, det)
	}

	d := -(m[0][1]*m[2][2] - m[0][2]*m[2][1])
	e := +(m[0][0]*m[2][2] - m[0][2]*m[2][0])
	f := -(m[0][0]*m[2][1] - m[0][1]*m[2][0])

	g := +(m[0][1]*m[1][2] - m[0][2]*m[1][1])
	h := -(m[0][0]*m[1][2] - m[0][2]*m[1][0])
	i := +(m[0][0]*m[1][1] - m[0][1]*m[1][0])

	inv := 1 / det
	return Mat3{
		{a * inv, d * inv, g * inv},
		{b * inv, e * inv, h * inv},
		{c * inv, f * inv, i * inv},
	}, nil
}

// ApproxEqual reports whether all entries of a and b differ by at most eps.
func ApproxEqual(a, b Mat3, eps Float) bool {
	for i := range 3 {
		if !VecApproxEqual(Vec3(a[i]), Vec3(b[i]), eps) {
			return false
		}
	}
	return true
}

// VecApproxEqual reports whether all components of a and b differ by at
// most eps.
func VecApproxEqual(a, b Vec3, eps Float) bool {
	for i := range 3 {
		if !(abs(a[i]-b[i]) <= eps) {
			return false
		}
	}
	return true
}

// IsFinite reports whether all components of v are finite.
func (v Vec3) IsFinite() bool {
	for _, x := range v {
		f := float64(x)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return false
		}
	}
	return true
}

func abs(x Float) Float {
	if x < 0 {
		return -x
	}
	return x
}
