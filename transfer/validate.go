package transfer

import (
	"errors"
	"fmt"
	"math"

	"colorconv/mat3"
)

// ErrInvalidParameters is returned by Validate for curves whose parameters
// do not describe a monotonic, invertible function.
var ErrInvalidParameters = errors.New("invalid transfer function parameters")

// Validate checks the parameters of f.
func Validate(f Func) error {
	switch f := f.(type) {
	case nil:
		return fmt.Errorf("%w: missing transfer function", ErrInvalidParameters)
	case Linear, SRGB, HLG:
		return nil
	case Gamma:
		if !positive(f.Exponent) {
			return fmt.Errorf("%w: gamma exponent %g", ErrInvalidParameters, f.Exponent)
		}
	case PQ:
		if !positive(f.Luminance) {
			return fmt.Errorf("%w: PQ luminance %g", ErrInvalidParameters, f.Luminance)
		}
	case Parametric:
		if !positive(f.G) || !positive(f.A) {
			return fmt.Errorf("%w: %s", ErrInvalidParameters, f)
		}
		if f.D > 0 && !positive(f.C) {
			return fmt.Errorf("%w: %s", ErrInvalidParameters, f)
		}
		if !finite(f.B) || !finite(f.D) {
			return fmt.Errorf("%w: %s", ErrInvalidParameters, f)
		}
	default:
		return fmt.Errorf("%w: unknown curve %T", ErrInvalidParameters, f)
	}
	return nil
}

func positive(x mat3.Float) bool {
	return x > 0 && finite(x)
}

func finite(x mat3.Float) bool {
	return !math.IsNaN(float64(x)) && !math.IsInf(float64(x), 0)
}
