//go:build !colorf32

package mat3

// Float is the floating point width used throughout the module.
// Build with the colorf32 tag to switch to float32.
type Float = float64

// SingularEpsilon is the determinant magnitude below which a matrix is
// treated as not invertible.
const SingularEpsilon Float = 1e-12

// Epsilon bounds degeneracy checks of color data, such as collinear
// primaries or vanishing cone responses.
const Epsilon Float = 1e-7
