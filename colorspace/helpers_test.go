package colorspace

import (
	"math"

	"colorconv/mat3"
)

type floatT = mat3.Float

func vec(x, y, z float64) mat3.Vec3 {
	return mat3.Vec3{floatT(x), floatT(y), floatT(z)}
}

// tol widens a tolerance for float32 builds.
func tol(eps float64) mat3.Float {
	if mat3.SingularEpsilon > 1e-9 {
		return floatT(max(eps, 1e-4))
	}
	return floatT(eps)
}

func approxVec(a, b mat3.Vec3, eps float64) bool {
	return mat3.VecApproxEqual(a, b, tol(eps))
}

func approxMat(a, b mat3.Mat3, eps float64) bool {
	return mat3.ApproxEqual(a, b, tol(eps))
}

func maxAbsDiff(a, b mat3.Mat3) float64 {
	var d float64
	for i := range 3 {
		for j := range 3 {
			d = max(d, math.Abs(float64(a[i][j]-b[i][j])))
		}
	}
	return d
}
