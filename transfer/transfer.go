// Package transfer implements the nonlinear encoding curves of RGB color
// spaces.
//
// A curve maps linear light to encoded ("display-ready") values with Encode
// and back with Decode. The set of curves is closed: every implementation of
// Func lives in this package. All curves are continued to negative inputs by
// odd symmetry, f(-x) = -f(x), so that out-of-gamut values pass through a
// round trip unchanged instead of being clamped or turning into NaN.
package transfer

import (
	"fmt"
	"math"

	"colorconv/mat3"
)

// Func is a transfer function. Values of all implementations are small,
// immutable and comparable with ==.
type Func interface {
	// Encode maps a linear value to its encoded form.
	Encode(x mat3.Float) mat3.Float
	// Decode maps an encoded value back to linear light.
	Decode(x mat3.Float) mat3.Float
	// IsLinear reports whether Encode and Decode are the identity.
	IsLinear() bool

	fmt.Stringer
	isFunc()
}

// EncodeVec applies f.Encode to every component of v.
func EncodeVec(f Func, v mat3.Vec3) mat3.Vec3 {
	return mat3.Vec3{f.Encode(v[0]), f.Encode(v[1]), f.Encode(v[2])}
}

// DecodeVec applies f.Decode to every component of v.
func DecodeVec(f Func, v mat3.Vec3) mat3.Vec3 {
	return mat3.Vec3{f.Decode(v[0]), f.Decode(v[1]), f.Decode(v[2])}
}

// odd evaluates f on |x| and restores the sign of x.
func odd(x mat3.Float, f func(float64) float64) mat3.Float {
	if x < 0 {
		return -mat3.Float(f(float64(-x)))
	}
	return mat3.Float(f(float64(x)))
}

// == Linear ==================================================================

// Linear is the identity curve of linear-light spaces.
type Linear struct{}

func (Linear) Encode(x mat3.Float) mat3.Float { return x }
func (Linear) Decode(x mat3.Float) mat3.Float { return x }
func (Linear) IsLinear() bool                 { return true }
func (Linear) String() string                 { return "linear" }
func (Linear) isFunc()                        {}

// == Gamma ===================================================================

// Gamma is a pure power law: Decode(x) = x^Exponent.
type Gamma struct {
	Exponent mat3.Float
}

func (g Gamma) Encode(x mat3.Float) mat3.Float {
	inv := 1 / float64(g.Exponent)
	return odd(x, func(v float64) float64 { return math.Pow(v, inv) })
}

func (g Gamma) Decode(x mat3.Float) mat3.Float {
	e := float64(g.Exponent)
	return odd(x, func(v float64) float64 { return math.Pow(v, e) })
}

func (g Gamma) IsLinear() bool { return g.Exponent == 1 }
func (g Gamma) String() string { return fmt.Sprintf("gamma %g", g.Exponent) }
func (Gamma) isFunc()          {}

// == sRGB ====================================================================

// Constants of the IEC 61966-2-1 sRGB curve.
const (
	srgbDecodeBreak = 0.04045
	srgbEncodeBreak = 0.0031308
	srgbSlope       = 12.92
	srgbOffset      = 0.055
	srgbExponent    = 2.4
)

// SRGB is the piecewise sRGB curve with its published constants.
type SRGB struct{}

func (SRGB) Encode(x mat3.Float) mat3.Float {
	return odd(x, func(v float64) float64 {
		if v <= srgbEncodeBreak {
			return v * srgbSlope
		}
		return (1+srgbOffset)*math.Pow(v, 1/srgbExponent) - srgbOffset
	})
}

func (SRGB) Decode(x mat3.Float) mat3.Float {
	return odd(x, func(v float64) float64 {
		if v <= srgbDecodeBreak {
			return v / srgbSlope
		}
		return math.Pow((v+srgbOffset)/(1+srgbOffset), srgbExponent)
	})
}

func (SRGB) IsLinear() bool { return false }
func (SRGB) String() string { return "sRGB" }
func (SRGB) isFunc()        {}

// == Parametric ==============================================================

// Parametric is the ICC parametric curve of type 3:
//
//	Decode(x) = (A·x + B)^G  for x >= D
//	Decode(x) = C·x          for x <  D
//
// The curve must be continuous at D for Encode to be its exact inverse.
type Parametric struct {
	G, A, B, C, D mat3.Float
}

// BT709 is the ITU-R BT.709 / BT.2020 camera curve written as a
// parametric decode curve.
var BT709 = Parametric{
	G: 1 / 0.45,
	A: 1 / 1.099,
	B: 0.099 / 1.099,
	C: 1 / 4.5,
	D: 0.081,
}

func (p Parametric) Encode(x mat3.Float) mat3.Float {
	g, a, b, c, d := float64(p.G), float64(p.A), float64(p.B), float64(p.C), float64(p.D)
	return odd(x, func(v float64) float64 {
		if v < c*d {
			return v / c
		}
		return (math.Pow(v, 1/g) - b) / a
	})
}

func (p Parametric) Decode(x mat3.Float) mat3.Float {
	g, a, b, c, d := float64(p.G), float64(p.A), float64(p.B), float64(p.C), float64(p.D)
	return odd(x, func(v float64) float64 {
		if v < d {
			return c * v
		}
		return math.Pow(a*v+b, g)
	})
}

func (p Parametric) IsLinear() bool {
	return p.G == 1 && p.A == 1 && p.B == 0 && (p.D <= 0 || p.C == 1)
}

func (p Parametric) String() string {
	return fmt.Sprintf("parametric g=%g a=%g b=%g c=%g d=%g", p.G, p.A, p.B, p.C, p.D)
}

func (Parametric) isFunc() {}

// == PQ ======================================================================

// Constants of the SMPTE ST 2084 perceptual quantizer.
const (
	pqM1 = 2610.0 / 16384
	pqM2 = 2523.0 / 4096 * 128
	pqC1 = 3424.0 / 4096
	pqC2 = 2413.0 / 4096 * 32
	pqC3 = 2392.0 / 4096 * 32

	// PQMaxLuminance is the luminance in cd/m² of an encoded value of 1.
	PQMaxLuminance = 10000
)

// PQ is the SMPTE ST 2084 curve. A linear value of 1 corresponds to
// Luminance cd/m²; use PQMaxLuminance for the native normalisation.
type PQ struct {
	Luminance mat3.Float
}

func (p PQ) Encode(x mat3.Float) mat3.Float {
	scale := float64(p.Luminance) / PQMaxLuminance
	return odd(x, func(v float64) float64 {
		ym := math.Pow(v*scale, pqM1)
		return math.Pow((pqC1+pqC2*ym)/(1+pqC3*ym), pqM2)
	})
}

func (p PQ) Decode(x mat3.Float) mat3.Float {
	scale := PQMaxLuminance / float64(p.Luminance)
	return odd(x, func(v float64) float64 {
		e := math.Pow(v, 1/pqM2)
		num := max(e-pqC1, 0)
		den := pqC2 - pqC3*e
		if den <= 0 {
			// past the pole of the curve, far above any real luminance
			return math.MaxFloat32
		}
		return math.Pow(num/den, 1/pqM1) * scale
	})
}

func (PQ) IsLinear() bool   { return false }
func (p PQ) String() string { return fmt.Sprintf("PQ %g cd/m²", p.Luminance) }
func (PQ) isFunc()          {}

// == HLG =====================================================================

// Constants of the ARIB STD-B67 hybrid log-gamma curve.
const (
	hlgA = 0.17883277
	hlgB = 1 - 4*hlgA
)

var hlgC = 0.5 - hlgA*math.Log(4*hlgA)

// HLG is the BT.2100 hybrid log-gamma OETF on scene-linear values in [0, 1].
type HLG struct{}

func (HLG) Encode(x mat3.Float) mat3.Float {
	return odd(x, func(v float64) float64 {
		if v <= 1.0/12 {
			return math.Sqrt(3 * v)
		}
		return hlgA*math.Log(12*v-hlgB) + hlgC
	})
}

func (HLG) Decode(x mat3.Float) mat3.Float {
	return odd(x, func(v float64) float64 {
		if v <= 0.5 {
			return v * v / 3
		}
		return (math.Exp((v-hlgC)/hlgA) + hlgB) / 12
	})
}

func (HLG) IsLinear() bool { return false }
func (HLG) String() string { return "HLG" }
func (HLG) isFunc()        {}
