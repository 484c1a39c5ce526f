//go:build colorf32

package mat3

// Float is the floating point width used throughout the module.
type Float = float32

// SingularEpsilon is the determinant magnitude below which a matrix is
// treated as not invertible.
const SingularEpsilon Float = 1e-7

// Epsilon bounds degeneracy checks of color data, such as collinear
// primaries or vanishing cone responses.
const Epsilon Float = 1e-5
